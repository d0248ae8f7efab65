package nudge

import (
	"os"
	"testing"
)

var nudgeWorker *NudgeWorker

func TestMain(m *testing.M) {
	nudgeWorker = NewNudgeWorker("test", nil)
	nudgeWorker.Register()
	os.Exit(m.Run())
}
