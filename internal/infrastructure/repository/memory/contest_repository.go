package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sunnygoyal1983/play11-w-sub002/internal/domain/contest"
)

type ContestRepository struct {
	mu       sync.RWMutex
	contests map[string]contest.Contest
	entries  map[string]contest.Entry
	now      func() time.Time
}

func NewContestRepository(contests []contest.Contest, entries []contest.Entry) *ContestRepository {
	contestsByID := make(map[string]contest.Contest, len(contests))
	for _, item := range contests {
		contestsByID[item.ID] = item
	}
	entriesByID := make(map[string]contest.Entry, len(entries))
	for _, item := range entries {
		entriesByID[item.ID] = cloneEntry(item)
	}
	return &ContestRepository{
		contests: contestsByID,
		entries:  entriesByID,
		now:      time.Now,
	}
}

func (r *ContestRepository) GetByID(_ context.Context, contestID string) (contest.Contest, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.contests[contestID]
	return item, ok, nil
}

func (r *ContestRepository) ListByMatch(_ context.Context, matchID string) ([]contest.Contest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]contest.Contest, 0)
	for _, item := range r.contests {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *ContestRepository) MarkSettled(_ context.Context, contestID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.contests[contestID]
	if !ok || item.SettledAt != nil {
		return nil
	}
	at := r.now().UTC()
	item.SettledAt = &at
	r.contests[contestID] = item
	return nil
}

func (r *ContestRepository) ListEntriesByContest(_ context.Context, contestID string) ([]contest.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]contest.Entry, 0)
	for _, item := range r.entries {
		if item.ContestID == contestID {
			out = append(out, cloneEntry(item))
		}
	}
	return out, nil
}

func (r *ContestRepository) ListWinningEntries(_ context.Context, windowDays int) ([]contest.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cutoff := r.now().UTC().AddDate(0, 0, -windowDays)
	out := make([]contest.Entry, 0)
	for _, item := range r.entries {
		if item.WonAmount() <= 0 {
			continue
		}
		parent, ok := r.contests[item.ContestID]
		if !ok || parent.SettledAt == nil || parent.SettledAt.Before(cutoff) {
			continue
		}
		out = append(out, cloneEntry(item))
	}
	return out, nil
}

func (r *ContestRepository) UpdateEntryPoints(_ context.Context, entryID string, points float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.entries[entryID]
	if !ok {
		return nil
	}
	item.Points = points
	r.entries[entryID] = item
	return nil
}

func (r *ContestRepository) UpdateEntrySettlement(_ context.Context, entry contest.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.entries[entry.ID]
	if !ok {
		return nil
	}
	item.Rank = entry.Rank
	item.WinAmount = cloneWinAmount(entry.WinAmount)
	item.Status = entry.Status
	r.entries[entry.ID] = item
	return nil
}

func cloneEntry(item contest.Entry) contest.Entry {
	item.WinAmount = cloneWinAmount(item.WinAmount)
	return item
}

func cloneWinAmount(v *int64) *int64 {
	if v == nil {
		return nil
	}
	amount := *v
	return &amount
}
