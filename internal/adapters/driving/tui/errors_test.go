package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrMissingScheduler_Message(t *testing.T) {
	assert.Contains(t, ErrMissingScheduler.Error(), "task scheduler")
}
