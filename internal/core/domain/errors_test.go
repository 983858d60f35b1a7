package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrAlreadyExists", ErrAlreadyExists},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrConflict", ErrConflict},
		{"ErrNotImplemented", ErrNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrNotFound tests ErrNotFound error
func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrAlreadyExists))
}

// TestConflictError tests the structured conflict error
func TestConflictError(t *testing.T) {
	candidate := Task{Title: "Overlap", StartMinutes: 570, EndMinutes: 630}
	neighbor := Task{Title: "Standup", StartMinutes: 540, EndMinutes: 600}
	err := &ConflictError{Candidate: candidate, Neighbor: neighbor}

	assert.Equal(t, `schedule conflict: "Overlap" (09:30-10:30) overlaps "Standup" (09:00-10:00)`, err.Error())

	// Matches the sentinel.
	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrNotFound))

	// The neighbour is recoverable via errors.As.
	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "Standup", conflict.Neighbor.Title)
}

// TestConflictError_Wrapped tests matching through additional wrapping
func TestConflictError_Wrapped(t *testing.T) {
	inner := &ConflictError{
		Candidate: Task{Title: "B", StartMinutes: 60, EndMinutes: 120},
		Neighbor:  Task{Title: "A", StartMinutes: 90, EndMinutes: 150},
	}
	wrapped := errors.Join(errors.New("add failed"), inner)

	assert.True(t, errors.Is(wrapped, ErrConflict))

	var conflict *ConflictError
	require.True(t, errors.As(wrapped, &conflict))
	assert.Equal(t, "A", conflict.Neighbor.Title)
}
