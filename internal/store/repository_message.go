// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/warbler/internal/logger"
	"github.com/MKhiriev/warbler/models"
)

// messageRepository is the SQL implementation of [MessageRepository].
type messageRepository struct {
	queries
	classifier ErrorClassificator
}

func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		queries:    newQueries(db.builder),
		classifier: db.errorClassificator,
	}
}

// CreateMessage inserts msg. A foreign key failure means the author does
// not exist and is reported as [ErrUserNotFound].
func (r *messageRepository) CreateMessage(ctx context.Context, q Querier, msg models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.insertMessage(msg)
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := q.QueryRowContext(ctx, query, args...).Scan(&msg.ID); err != nil {
		log.Err(err).
			Str("func", "*messageRepository.CreateMessage").
			Int64("user_id", msg.UserID).
			Msg("error inserting message")
		return models.Message{}, r.classifier.Translate(err, ErrExecutingStatement)
	}

	return msg, nil
}

func (r *messageRepository) GetMessage(ctx context.Context, q Querier, id int64) (models.Message, error) {
	query, args, err := r.selectMessageByID(id)
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	msg, err := scanMessage(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Message{}, ErrMessageNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*messageRepository.GetMessage").Int64("message_id", id).Msg("error selecting message")
		return models.Message{}, r.classifier.Translate(err, ErrExecutingQuery)
	}

	return msg, nil
}

func (r *messageRepository) DeleteOwnedMessage(ctx context.Context, q Querier, id, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.deleteOwnedMessage(id, userID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*messageRepository.DeleteOwnedMessage").
			Int64("message_id", id).
			Int64("user_id", userID).
			Msg("failed to delete message")
		return false, r.classifier.Translate(err, ErrExecutingStatement)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return n > 0, nil
}

func (r *messageRepository) ListByAuthor(ctx context.Context, q Querier, userID int64, limit uint64) ([]models.Message, error) {
	query, args, err := r.selectMessagesByAuthor(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.list(ctx, q, "*messageRepository.ListByAuthor", userID, query, args)
}

func (r *messageRepository) ListFeed(ctx context.Context, q Querier, userID int64, limit uint64) ([]models.Message, error) {
	query, args, err := r.selectFeed(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.list(ctx, q, "*messageRepository.ListFeed", userID, query, args)
}

func (r *messageRepository) list(ctx context.Context, q Querier, fn string, userID int64, query string, args []any) ([]models.Message, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Int64("user_id", userID).Msg("failed to list messages")
		return nil, r.classifier.Translate(err, ErrExecutingQuery)
	}

	return collect(rows, scanMessage)
}
