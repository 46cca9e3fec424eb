// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Follow is a directed edge of the follow graph: FollowerID follows FollowedID.
// The pair is unique.
type Follow struct {
	FollowerID int64 `json:"follower_id"`
	FollowedID int64 `json:"followed_id"`
}

// TableName returns the name of the database table
// associated with the Follow model.
func (f Follow) TableName() string {
	return "follows"
}
