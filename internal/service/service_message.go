// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/warbler/internal/logger"
	"github.com/MKhiriev/warbler/internal/store"
	"github.com/MKhiriev/warbler/internal/validators"
	"github.com/MKhiriev/warbler/models"
)

// DefaultFeedLimit is the number of messages returned by Feed and
// ListForAuthor when the caller passes a zero limit.
const DefaultFeedLimit = 100

// messageService is the concrete implementation of MessageService.
// A message moves from active to deleted exactly once, through Delete.
type messageService struct {
	db                store.Executor
	messageRepository store.MessageRepository

	validator validators.Validator

	logger *logger.Logger
}

func NewMessageService(storages *store.Storages, logger *logger.Logger) MessageService {
	return &messageService{
		db:                storages.DB,
		messageRepository: storages.MessageRepository,
		validator:         validators.NewValidator(),
		logger:            logger,
	}
}

// Post stores text as a new message of authorID, stamped with the current
// UTC time.
//
// Returns ErrUnauthorized for a missing author identity, a
// *validators.ValidationError for empty or oversized text and
// store.ErrUserNotFound when the author no longer exists.
func (s *messageService) Post(ctx context.Context, authorID int64, text string) (models.Message, error) {
	log := logger.FromContext(ctx)

	if authorID <= 0 {
		log.Warn().Str("func", "*messageService.Post").Msg("message without author rejected")
		return models.Message{}, ErrUnauthorized
	}

	if err := s.validator.Validate(ctx, models.NewMessageRequest{Text: text}); err != nil {
		return models.Message{}, err
	}

	msg := models.Message{
		Text:      strings.TrimSpace(text),
		Timestamp: time.Now().UTC(),
		UserID:    authorID,
	}

	err := s.db.InTransaction(ctx, func(ctx context.Context, q store.Querier) error {
		created, err := s.messageRepository.CreateMessage(ctx, q, msg)
		if err != nil {
			return err
		}
		msg = created
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*messageService.Post").Int64("user_id", authorID).Msg("message creation failed")
		return models.Message{}, fmt.Errorf("message creation failed: %w", err)
	}

	return msg, nil
}

// Delete removes messageID if requesterID owns it. The ownership check and
// the removal are a single conditional statement; when nothing was removed
// a follow-up lookup tells a missing message from a foreign one.
func (s *messageService) Delete(ctx context.Context, messageID, requesterID int64) error {
	log := logger.FromContext(ctx)

	if requesterID <= 0 {
		return ErrUnauthorized
	}

	err := s.db.InTransaction(ctx, func(ctx context.Context, q store.Querier) error {
		deleted, err := s.messageRepository.DeleteOwnedMessage(ctx, q, messageID, requesterID)
		if err != nil {
			return err
		}
		if deleted {
			return nil
		}

		if _, err = s.messageRepository.GetMessage(ctx, q, messageID); err != nil {
			return err
		}
		return ErrUnauthorized
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrUnauthorized):
		log.Warn().
			Str("func", "*messageService.Delete").
			Int64("message_id", messageID).
			Int64("requester_id", requesterID).
			Msg("delete by non-owner rejected")
		return ErrUnauthorized
	case errors.Is(err, store.ErrMessageNotFound):
		return store.ErrMessageNotFound
	default:
		log.Err(err).Str("func", "*messageService.Delete").Int64("message_id", messageID).Msg("message deletion failed")
		return fmt.Errorf("message deletion failed: %w", err)
	}
}

func (s *messageService) Get(ctx context.Context, id int64) (*models.Message, error) {
	msg, err := s.messageRepository.GetMessage(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, store.ErrMessageNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting message: %w", err)
	}

	return &msg, nil
}

func (s *messageService) ListForAuthor(ctx context.Context, userID int64, limit uint64) ([]models.Message, error) {
	if limit == 0 {
		limit = DefaultFeedLimit
	}

	messages, err := s.messageRepository.ListByAuthor(ctx, s.db, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	return messages, nil
}

func (s *messageService) Feed(ctx context.Context, userID int64, limit uint64) ([]models.Message, error) {
	if userID <= 0 {
		return nil, ErrUnauthorized
	}
	if limit == 0 {
		limit = DefaultFeedLimit
	}

	messages, err := s.messageRepository.ListFeed(ctx, s.db, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error building feed: %w", err)
	}
	return messages, nil
}
