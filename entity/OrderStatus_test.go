package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusPreparing, true},
		{StatusPending, StatusReady, true},
		{StatusPending, StatusCompleted, true},
		{StatusPreparing, StatusReady, true},
		{StatusReady, StatusCompleted, true},
		{StatusPreparing, StatusPending, false},
		{StatusCompleted, StatusReady, false},
		{StatusCompleted, StatusCompleted, false},
		{StatusPending, StatusPending, false},
		{"cooking", StatusReady, false},
		{StatusPending, "cooking", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestKnownStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, KnownStatus(StatusPending))
	assert.True(t, KnownStatus(StatusCompleted))
	assert.False(t, KnownStatus(""))
	assert.False(t, KnownStatus("cancelled"))
}
