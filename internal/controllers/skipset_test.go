package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSkipSetMarkAndSkip(t *testing.T) {
	skip := NewSkipSet(time.Hour, t0)

	assert.False(t, skip.ShouldSkip(7))
	skip.Mark(7)
	skip.Mark(7)
	assert.True(t, skip.ShouldSkip(7))
	assert.False(t, skip.ShouldSkip(8))
	assert.Equal(t, 1, skip.Len())
}

func TestSkipSetResetsWholeSet(t *testing.T) {
	skip := NewSkipSet(time.Hour, t0)

	skip.Mark(7)
	skip.Mark(8)

	// the window boundary itself does not reset
	assert.False(t, skip.MaybeReset(t0.Add(time.Hour)))
	assert.Equal(t, 2, skip.Len())

	// entries marked late in the window clear together with early ones
	skip.Mark(9)
	assert.True(t, skip.MaybeReset(t0.Add(time.Hour+time.Second)))
	assert.Equal(t, 0, skip.Len())
	assert.False(t, skip.ShouldSkip(7))
	assert.False(t, skip.ShouldSkip(9))

	// the next window starts at the reset
	skip.Mark(7)
	assert.False(t, skip.MaybeReset(t0.Add(2*time.Hour)))
	assert.True(t, skip.ShouldSkip(7))
}

func TestSkipSetDisabled(t *testing.T) {
	var nilSet *SkipSet
	nilSet.Mark(7)
	assert.False(t, nilSet.ShouldSkip(7))
	assert.False(t, nilSet.MaybeReset(t0.Add(24*time.Hour)))
	assert.Equal(t, 0, nilSet.Len())

	zero := NewSkipSet(0, t0)
	zero.Mark(7)
	assert.False(t, zero.ShouldSkip(7))
	assert.Equal(t, 0, zero.Len())
}
