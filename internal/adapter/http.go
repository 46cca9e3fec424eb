// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/warbler/internal/logger"
	"github.com/MKhiriev/warbler/internal/utils"
	"github.com/MKhiriev/warbler/models"
)

// DefaultTimeout bounds every request when Config.Timeout is zero.
const DefaultTimeout = 15 * time.Second

type Config struct {
	// Address is "host:port" or a full base URL.
	Address string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter returns a [WarblerAPI] talking to cfg.Address.
func NewHTTPServerAdapter(cfg Config, logger *logger.Logger) (WarblerAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// request starts a request bound to ctx, authenticated when a token is set.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpServerAdapter) Signup(ctx context.Context, signup models.SignupRequest) (models.User, error) {
	return h.startSession(ctx, "/api/users/signup", signup)
}

func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (models.User, error) {
	return h.startSession(ctx, "/api/users/login", models.LoginRequest{Username: username, Password: password})
}

// startSession posts body to path and keeps the bearer token from the
// Authorization response header.
func (h *httpServerAdapter) startSession(ctx context.Context, path string, body any) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&user).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("path", path).Int64("user_id", user.ID).Msg("session started")
	return user, nil
}

func (h *httpServerAdapter) GetProfile(ctx context.Context, userID int64) (Profile, error) {
	var profile Profile

	resp, err := h.request(ctx).
		SetResult(&profile).
		Get("/api/users/" + strconv.FormatInt(userID, 10))
	if err != nil {
		return Profile{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return Profile{}, err
	}

	return profile, nil
}

func (h *httpServerAdapter) Follow(ctx context.Context, userID int64) error {
	return h.postNoContent(ctx, "/api/users/follow/"+strconv.FormatInt(userID, 10))
}

func (h *httpServerAdapter) Unfollow(ctx context.Context, userID int64) error {
	return h.postNoContent(ctx, "/api/users/stop-following/"+strconv.FormatInt(userID, 10))
}

func (h *httpServerAdapter) DeleteMessage(ctx context.Context, messageID int64) error {
	return h.postNoContent(ctx, "/api/messages/"+strconv.FormatInt(messageID, 10)+"/delete")
}

func (h *httpServerAdapter) postNoContent(ctx context.Context, path string) error {
	resp, err := h.request(ctx).Post(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Post(ctx context.Context, text string) (models.Message, error) {
	var msg models.Message

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.NewMessageRequest{Text: text}).
		SetResult(&msg).
		Post("/api/messages")
	if err != nil {
		return models.Message{}, fmt.Errorf("post message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}

	return msg, nil
}

// Feed asks for at most limit messages; zero lets the server pick.
func (h *httpServerAdapter) Feed(ctx context.Context, limit uint64) ([]models.Message, error) {
	var messages []models.Message

	req := h.request(ctx).SetResult(&messages)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(limit, 10))
	}

	resp, err := req.Get("/api/feed")
	if err != nil {
		return nil, fmt.Errorf("feed request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return messages, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.request(ctx).SetResult(&version).Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}
