// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MaxMessageLength is the upper bound for message text, in characters.
const MaxMessageLength = 140

// Message is a short post attributed to exactly one user.
// Messages are immutable after creation; the only transition is deletion.
type Message struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`

	// UserID references the owning user and is never zero for a
	// persisted message.
	UserID int64 `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}
