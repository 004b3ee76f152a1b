package postgres

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
)

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

// isUniqueViolation reports whether err is a postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

func unixToTime(unix int64) time.Time {
	if unix == 0 {
		return time.Time{}
	}
	return time.Unix(unix, 0).UTC()
}

func timeToUnix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func nullableUnix(t *time.Time) *int64 {
	if t == nil || t.IsZero() {
		return nil
	}
	unix := t.Unix()
	return &unix
}

func nullUnixToTimePtr(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.Unix(v.Int64, 0).UTC()
	return &t
}

func nullInt64ToPtr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}
