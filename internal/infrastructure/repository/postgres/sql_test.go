package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches 23505 code", func(t *testing.T) {
		err := &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for unique violation error")
		}
	})

	t.Run("ignores other pq codes", func(t *testing.T) {
		err := &pq.Error{Code: "23503", Message: "foreign key violation"}
		if isUniqueViolation(err) {
			t.Fatalf("expected false for foreign key violation")
		}
	})

	t.Run("ignores non pq errors", func(t *testing.T) {
		if isUniqueViolation(sql.ErrNoRows) {
			t.Fatalf("expected false for non pq error")
		}
	})
}

func TestUnixHelpers(t *testing.T) {
	t.Run("round trips a timestamp", func(t *testing.T) {
		at := time.Date(2026, 3, 1, 14, 30, 0, 0, time.UTC)
		if got := unixToTime(timeToUnix(at)); !got.Equal(at) {
			t.Fatalf("expected %v, got %v", at, got)
		}
	})

	t.Run("zero time maps to zero unix", func(t *testing.T) {
		if got := timeToUnix(time.Time{}); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
		if got := unixToTime(0); !got.IsZero() {
			t.Fatalf("expected zero time, got %v", got)
		}
	})
}

func TestNullableUnix(t *testing.T) {
	t.Run("nil pointer maps to null", func(t *testing.T) {
		if got := nullableUnix(nil); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
		if got := nullUnixToTimePtr(sql.NullInt64{}); got != nil {
			t.Fatalf("expected nil time pointer, got %v", got)
		}
	})

	t.Run("round trips a pointer", func(t *testing.T) {
		at := time.Date(2026, 3, 1, 14, 30, 0, 0, time.UTC)
		unix := nullableUnix(&at)
		if unix == nil {
			t.Fatalf("expected unix value")
		}
		got := nullUnixToTimePtr(sql.NullInt64{Int64: *unix, Valid: true})
		if got == nil || !got.Equal(at) {
			t.Fatalf("expected %v, got %v", at, got)
		}
	})
}

func TestNullInt64ToPtr(t *testing.T) {
	got := nullInt64ToPtr(sql.NullInt64{Int64: 5000, Valid: true})
	if got == nil || *got != 5000 {
		t.Fatalf("expected 5000, got %v", got)
	}
	if nullInt64ToPtr(sql.NullInt64{}) != nil {
		t.Fatalf("expected nil for null value")
	}
}
