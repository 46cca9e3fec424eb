// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/warbler/models"
)

const (
	usersTable    = "users"
	messagesTable = "messages"
	followsTable  = "follows"
)

var (
	userColumns    = []string{"id", "username", "email", "password", "image_url", "header_image_url", "bio", "created_at"}
	messageColumns = []string{"id", "text", "timestamp", "user_id"}
)

// queries builds every SQL statement used by the repositories. The
// placeholder format of sb decides the dialect ($1 for postgres, ? for sqlite).
type queries struct {
	sb sq.StatementBuilderType
}

func newQueries(sb sq.StatementBuilderType) queries {
	return queries{sb: sb}
}

func qualified(table string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = table + "." + c
	}
	return out
}

// escapeLike escapes LIKE wildcards so the query matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// ── users ─────────────────────────────────────────────────────────────────────

func (b queries) insertUser(user models.User) (string, []any, error) {
	return b.sb.Insert(usersTable).
		Columns(userColumns[1:]...).
		Values(user.Username, user.Email, user.Password, user.ImageURL, user.HeaderImageURL, user.Bio, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func (b queries) selectUserByID(id int64) (string, []any, error) {
	return b.sb.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (b queries) selectUserByUsername(username string) (string, []any, error) {
	return b.sb.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func (b queries) searchUsers(query string, limit uint64) (string, []any, error) {
	sel := b.sb.Select(userColumns...).
		From(usersTable).
		OrderBy("username")

	if query != "" {
		sel = sel.Where(sq.Expr(`LOWER(username) LIKE ? ESCAPE '\'`, "%"+strings.ToLower(escapeLike(query))+"%"))
	}
	if limit > 0 {
		sel = sel.Limit(limit)
	}

	return sel.ToSql()
}

// updateUser returns an error from squirrel when upd sets nothing.
func (b queries) updateUser(id int64, upd models.ProfileUpdate) (string, []any, error) {
	set := make(map[string]any, 5)
	if upd.Username != nil {
		set["username"] = *upd.Username
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.ImageURL != nil {
		set["image_url"] = *upd.ImageURL
	}
	if upd.HeaderImageURL != nil {
		set["header_image_url"] = *upd.HeaderImageURL
	}
	if upd.Bio != nil {
		set["bio"] = *upd.Bio
	}

	return b.sb.Update(usersTable).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (b queries) deleteUser(id int64) (string, []any, error) {
	return b.sb.Delete(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (b queries) selectUserCounters(id int64) (string, []any, error) {
	return b.sb.Select().
		Column(sq.Expr("(SELECT COUNT(*) FROM messages WHERE user_id = ?)", id)).
		Column(sq.Expr("(SELECT COUNT(*) FROM follows WHERE followed_id = ?)", id)).
		Column(sq.Expr("(SELECT COUNT(*) FROM follows WHERE follower_id = ?)", id)).
		ToSql()
}

// ── follows ───────────────────────────────────────────────────────────────────

func (b queries) insertFollow(followerID, followedID int64) (string, []any, error) {
	return b.sb.Insert(followsTable).
		Columns("follower_id", "followed_id").
		Values(followerID, followedID).
		Suffix("ON CONFLICT (follower_id, followed_id) DO NOTHING").
		ToSql()
}

func (b queries) deleteFollow(followerID, followedID int64) (string, []any, error) {
	return b.sb.Delete(followsTable).
		Where(sq.Eq{"follower_id": followerID}).
		Where(sq.Eq{"followed_id": followedID}).
		ToSql()
}

func (b queries) countFollow(followerID, followedID int64) (string, []any, error) {
	return b.sb.Select("COUNT(*)").
		From(followsTable).
		Where(sq.Eq{"follower_id": followerID}).
		Where(sq.Eq{"followed_id": followedID}).
		ToSql()
}

// selectFollowers lists users on the follower side of edges pointing at userID.
func (b queries) selectFollowers(userID int64) (string, []any, error) {
	return b.sb.Select(qualified(usersTable, userColumns)...).
		From(usersTable).
		Join("follows ON follows.follower_id = users.id").
		Where(sq.Eq{"follows.followed_id": userID}).
		OrderBy("users.username").
		ToSql()
}

// selectFollowing lists users on the followed side of edges leaving userID.
func (b queries) selectFollowing(userID int64) (string, []any, error) {
	return b.sb.Select(qualified(usersTable, userColumns)...).
		From(usersTable).
		Join("follows ON follows.followed_id = users.id").
		Where(sq.Eq{"follows.follower_id": userID}).
		OrderBy("users.username").
		ToSql()
}

// ── messages ──────────────────────────────────────────────────────────────────

func (b queries) insertMessage(msg models.Message) (string, []any, error) {
	return b.sb.Insert(messagesTable).
		Columns(messageColumns[1:]...).
		Values(msg.Text, msg.Timestamp, msg.UserID).
		Suffix("RETURNING id").
		ToSql()
}

func (b queries) selectMessageByID(id int64) (string, []any, error) {
	return b.sb.Select(messageColumns...).
		From(messagesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// deleteOwnedMessage matches on both id and owner so a non-owner deletes
// nothing.
func (b queries) deleteOwnedMessage(id, userID int64) (string, []any, error) {
	return b.sb.Delete(messagesTable).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (b queries) selectMessagesByAuthor(userID int64, limit uint64) (string, []any, error) {
	sel := b.sb.Select(messageColumns...).
		From(messagesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("timestamp DESC", "id DESC")
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	return sel.ToSql()
}

func (b queries) selectFeed(userID int64, limit uint64) (string, []any, error) {
	sel := b.sb.Select(messageColumns...).
		From(messagesTable).
		Where(sq.Or{
			sq.Eq{"user_id": userID},
			sq.Expr("user_id IN (SELECT followed_id FROM follows WHERE follower_id = ?)", userID),
		}).
		OrderBy("timestamp DESC", "id DESC")
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	return sel.ToSql()
}
