package match

import (
	"strings"
	"time"
)

// Status tracks the match lifecycle supplied by the live-score collaborator.
// Settlement only ever triggers on StatusCompleted.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
)

// ParseStatus maps raw input onto the closed status set; unknown values are
// rejected rather than defaulted.
func ParseStatus(raw string) (Status, bool) {
	switch status := Status(strings.ToLower(strings.TrimSpace(raw))); status {
	case StatusUpcoming, StatusLive, StatusCompleted:
		return status, true
	default:
		return "", false
	}
}

func NormalizeStatus(raw string) Status {
	switch Status(raw) {
	case StatusUpcoming, StatusLive, StatusCompleted:
		return Status(raw)
	default:
		return StatusUpcoming
	}
}

type Match struct {
	ID         string
	Title      string
	Status     Status
	StartsAt   time.Time
	ArchivedAt *time.Time
}

func (m Match) IsCompleted() bool {
	return m.Status == StatusCompleted
}
