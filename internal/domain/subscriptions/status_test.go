package subscriptions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"active to paused", StatusActive, StatusPaused, true},
		{"paused to active", StatusPaused, StatusActive, true},
		{"active to cancelled", StatusActive, StatusCancelled, true},
		{"paused to cancelled", StatusPaused, StatusCancelled, true},

		{"active to active", StatusActive, StatusActive, false},
		{"paused to paused", StatusPaused, StatusPaused, false},
		{"cancelled to active", StatusCancelled, StatusActive, false},
		{"cancelled to paused", StatusCancelled, StatusPaused, false},
		{"cancelled to cancelled", StatusCancelled, StatusCancelled, false},
		{"past_due to active", StatusPastDue, StatusActive, false},
		{"past_due to cancelled", StatusPastDue, StatusCancelled, false},
		{"active to past_due", StatusActive, StatusPastDue, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestStatusNonTerminal(t *testing.T) {
	assert.True(t, StatusActive.NonTerminal())
	assert.True(t, StatusPaused.NonTerminal())
	assert.False(t, StatusCancelled.NonTerminal())
	assert.False(t, StatusPastDue.NonTerminal())
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusActive, StatusPaused, StatusCancelled, StatusPastDue} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Status("expired").Valid())
	assert.False(t, Status("").Valid())
}
