// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const sessionsTable = "sessions"

func buildSelectToken(server string) (string, []any, error) {
	return sq.Select("token").
		From(sessionsTable).
		Where(sq.Eq{"server": server}).
		Limit(1).
		ToSql()
}

// buildUpsertToken inserts the token or replaces the one already stored for
// the server.
func buildUpsertToken(server, token string, now time.Time) (string, []any, error) {
	return sq.Insert(sessionsTable).
		Columns("server", "token", "updated_at").
		Values(server, token, now.UTC()).
		Suffix("ON CONFLICT(server) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteToken(server string) (string, []any, error) {
	return sq.Delete(sessionsTable).
		Where(sq.Eq{"server": server}).
		ToSql()
}
