package controllers

import (
	"time"

	"github.com/amaumene/seasonsync/internal/models"
	"github.com/patrickmn/go-cache"
)

// SkipSet holds series that are left alone until the window elapses.
// Entries never expire individually; the whole set is cleared at once.
// A nil SkipSet or a zero window disables skipping.
type SkipSet struct {
	entries *cache.Cache
	window  time.Duration
	start   time.Time
}

// NewSkipSet creates an empty skip-set whose window starts at now
func NewSkipSet(window time.Duration, now time.Time) *SkipSet {
	return &SkipSet{
		entries: cache.New(cache.NoExpiration, 0),
		window:  window,
		start:   now,
	}
}

func (s *SkipSet) enabled() bool {
	return s != nil && s.window > 0
}

// Mark adds a series to the set
func (s *SkipSet) Mark(id models.SeriesID) {
	if !s.enabled() {
		return
	}
	s.entries.Set(id.String(), struct{}{}, cache.NoExpiration)
}

// ShouldSkip reports whether the series is in the set
func (s *SkipSet) ShouldSkip(id models.SeriesID) bool {
	if !s.enabled() {
		return false
	}
	_, found := s.entries.Get(id.String())
	return found
}

// MaybeReset clears every entry once more than the window has elapsed since the
// last reset, and reports whether it did.
func (s *SkipSet) MaybeReset(now time.Time) bool {
	if !s.enabled() {
		return false
	}
	if now.Sub(s.start) <= s.window {
		return false
	}
	s.entries.Flush()
	s.start = now
	return true
}

// Len returns the number of series in the set
func (s *SkipSet) Len() int {
	if !s.enabled() {
		return 0
	}
	return s.entries.ItemCount()
}
