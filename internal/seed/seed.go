// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package seed fills a development database with fake users, messages and
// follow edges.
//
// Every record goes through the service layer, so seeded data obeys the
// same validation, hashing and uniqueness rules as data created over HTTP.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/MKhiriev/warbler/internal/logger"
	"github.com/MKhiriev/warbler/internal/service"
	"github.com/MKhiriev/warbler/internal/store"
	"github.com/MKhiriev/warbler/models"
)

// Defaults used when the corresponding Options field is zero.
const (
	DefaultUsers           = 10
	DefaultMessagesPerUser = 5
	DefaultFollowsPerUser  = 3
	DefaultPassword        = "password123"

	// maxUsernameAttempts bounds retries after a username or email
	// collision.
	maxUsernameAttempts = 5
)

var ErrInvalidOptions = errors.New("invalid seed options")

type Options struct {
	Users           int
	MessagesPerUser int
	FollowsPerUser  int

	// Password is shared by all seeded accounts so they can log in.
	Password string

	// RandomSeed makes a run reproducible; zero seeds from the clock.
	RandomSeed int64
}

// Result summarizes what a run created.
type Result struct {
	Users    []models.User
	Messages int
	Follows  int
}

type Seeder struct {
	services *service.Services
	opts     Options
	faker    *gofakeit.Faker

	logger *logger.Logger
}

func NewSeeder(services *service.Services, opts Options, logger *logger.Logger) (*Seeder, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	randomSeed := opts.RandomSeed
	if randomSeed == 0 {
		randomSeed = time.Now().UnixNano()
	}

	return &Seeder{
		services: services,
		opts:     opts,
		faker:    gofakeit.New(randomSeed),
		logger:   logger,
	}, nil
}

func (o Options) withDefaults() (Options, error) {
	if o.Users < 0 || o.MessagesPerUser < 0 || o.FollowsPerUser < 0 {
		return o, fmt.Errorf("%w: counts must not be negative", ErrInvalidOptions)
	}
	if o.Users == 0 {
		o.Users = DefaultUsers
	}
	if o.MessagesPerUser == 0 {
		o.MessagesPerUser = DefaultMessagesPerUser
	}
	if o.FollowsPerUser == 0 {
		o.FollowsPerUser = DefaultFollowsPerUser
	}
	if o.Password == "" {
		o.Password = DefaultPassword
	}
	return o, nil
}

// Run creates users first, then their messages, then random follow edges
// between them.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var res Result

	for i := 0; i < s.opts.Users; i++ {
		user, err := s.createUser(ctx)
		if err != nil {
			return res, err
		}
		res.Users = append(res.Users, user)
	}
	s.logger.Info().Int("users", len(res.Users)).Msg("seeded users")

	for _, user := range res.Users {
		for i := 0; i < s.opts.MessagesPerUser; i++ {
			if _, err := s.services.MessageService.Post(ctx, user.ID, s.messageText()); err != nil {
				return res, fmt.Errorf("seeding message for user %d: %w", user.ID, err)
			}
			res.Messages++
		}
	}
	s.logger.Info().Int("messages", res.Messages).Msg("seeded messages")

	follows, err := s.follow(ctx, res.Users)
	res.Follows = follows
	if err != nil {
		return res, err
	}
	s.logger.Info().Int("follows", res.Follows).Msg("seeded follow edges")

	return res, nil
}

func (s *Seeder) createUser(ctx context.Context) (models.User, error) {
	var lastErr error
	for attempt := 0; attempt < maxUsernameAttempts; attempt++ {
		user, err := s.services.UserService.Signup(ctx, models.SignupRequest{
			Username: fmt.Sprintf("%s%d", s.faker.Username(), s.faker.Number(100, 999)),
			Email:    s.faker.Email(),
			Password: s.opts.Password,
		})
		if err == nil {
			return s.withBio(ctx, user)
		}
		if !errors.Is(err, store.ErrUniqueViolation) {
			return models.User{}, fmt.Errorf("seeding user: %w", err)
		}
		lastErr = err
		s.logger.Debug().Err(err).Int("attempt", attempt).Msg("seed user collided, retrying")
	}
	return models.User{}, fmt.Errorf("seeding user: %w", lastErr)
}

func (s *Seeder) withBio(ctx context.Context, user models.User) (models.User, error) {
	bio := s.faker.HipsterSentence(8)
	updated, err := s.services.UserService.UpdateProfile(ctx, user.ID, models.ProfileUpdate{
		Bio:      &bio,
		Password: s.opts.Password,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("seeding bio for user %d: %w", user.ID, err)
	}
	return updated, nil
}

// follow makes every user follow up to FollowsPerUser random others.
// Repeated picks are harmless since following twice is a no-op.
func (s *Seeder) follow(ctx context.Context, users []models.User) (int, error) {
	if len(users) < 2 {
		return 0, nil
	}

	created := 0
	for _, follower := range users {
		seen := make(map[int64]struct{}, s.opts.FollowsPerUser)
		for i := 0; i < s.opts.FollowsPerUser; i++ {
			followed := users[s.faker.Number(0, len(users)-1)]
			if followed.ID == follower.ID {
				continue
			}
			if _, ok := seen[followed.ID]; ok {
				continue
			}
			if err := s.services.FollowService.Follow(ctx, follower.ID, followed.ID); err != nil {
				return created, fmt.Errorf("seeding follow %d -> %d: %w", follower.ID, followed.ID, err)
			}
			seen[followed.ID] = struct{}{}
			created++
		}
	}
	return created, nil
}

func (s *Seeder) messageText() string {
	text := strings.TrimSpace(s.faker.HackerPhrase())
	if text == "" {
		text = s.faker.Sentence(6)
	}
	if utf8.RuneCountInString(text) > models.MaxMessageLength {
		text = string([]rune(text)[:models.MaxMessageLength])
	}
	return text
}
