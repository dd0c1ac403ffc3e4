package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func at(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFindConflict(t *testing.T) {
	checker := NewChecker(Config{})
	other := uuid.New()

	tests := []struct {
		name      string
		candidate time.Time
		busy      []Busy
		conflict  bool
	}{
		{
			name:      "free calendar",
			candidate: at("2025-10-15 10:00"),
			busy:      nil,
			conflict:  false,
		},
		{
			name:      "overlapping windows same day",
			candidate: at("2025-10-15 11:30"),
			busy:      []Busy{{EventID: other, Title: "Tech Talk", StartsAt: at("2025-10-15 10:00")}},
			conflict:  true,
		},
		{
			name:      "afternoon event clears the morning window",
			candidate: at("2025-10-15 14:00"),
			busy:      []Busy{{EventID: other, StartsAt: at("2025-10-15 10:00")}},
			conflict:  false,
		},
		{
			name:      "same start time",
			candidate: at("2025-10-15 10:00"),
			busy:      []Busy{{EventID: other, StartsAt: at("2025-10-15 10:00")}},
			conflict:  true,
		},
		{
			name:      "windows touch exactly",
			candidate: at("2025-10-15 13:00"),
			busy:      []Busy{{EventID: other, StartsAt: at("2025-10-15 10:00")}},
			conflict:  false,
		},
		{
			name:      "same clock time different dates",
			candidate: at("2025-10-16 10:00"),
			busy:      []Busy{{EventID: other, StartsAt: at("2025-10-15 10:00")}},
			conflict:  false,
		},
		{
			name:      "commitment with no start time is skipped",
			candidate: at("2025-10-15 10:00"),
			busy:      []Busy{{EventID: other}},
			conflict:  false,
		},
		{
			name:      "second commitment conflicts",
			candidate: at("2025-10-15 18:00"),
			busy: []Busy{
				{EventID: uuid.New(), StartsAt: at("2025-10-15 09:00")},
				{EventID: other, Title: "Hackathon", StartsAt: at("2025-10-15 19:00")},
			},
			conflict: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := checker.FindConflict(tt.candidate, tt.busy)
			assert.Equal(t, tt.conflict, ok)
			if tt.conflict {
				assert.Equal(t, other, got.EventID)
			}
		})
	}
}

func TestFindConflictCustomBuffers(t *testing.T) {
	// 30m/30m buffers: events two hours apart do not collide.
	checker := NewChecker(Config{PreBuffer: 30 * time.Minute, PostBuffer: 30 * time.Minute})
	busy := []Busy{{EventID: uuid.New(), StartsAt: at("2025-10-15 10:00")}}

	_, ok := checker.FindConflict(at("2025-10-15 12:00"), busy)
	assert.False(t, ok)

	_, ok = checker.FindConflict(at("2025-10-15 10:45"), busy)
	assert.True(t, ok)
}

func TestFindConflictDeterministic(t *testing.T) {
	checker := NewChecker(Config{})
	busy := []Busy{
		{EventID: uuid.New(), StartsAt: at("2025-10-15 09:00")},
		{EventID: uuid.New(), StartsAt: at("2025-10-15 12:00")},
	}
	first, ok := checker.FindConflict(at("2025-10-15 10:00"), busy)
	assert.True(t, ok)
	for i := 0; i < 10; i++ {
		again, ok := checker.FindConflict(at("2025-10-15 10:00"), busy)
		assert.True(t, ok)
		assert.Equal(t, first, again)
	}
}
