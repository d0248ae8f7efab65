package nudge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helpmate/helpmate-api/utils"
)

// utils duplicates the task list name to avoid importing this package; the
// trigger would silently dispatch into the void if the two ever diverged
func TestTaskListNameMatchesTrigger(t *testing.T) {
	assert.Equal(t, utils.NudgeTaskListName, TaskListName)
}
