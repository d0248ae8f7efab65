package utils

import (
	"context"
	"fmt"
	"time"

	cadenceClient "go.uber.org/cadence/client"

	"github.com/helpmate/helpmate-api/external/cadence"
)

// FIXME: there will be an import cycle if we use `github.com/helpmate/helpmate-api/background/nudge`
const NudgeTaskListName = "helpmate-nudge-tasks"

// TriggerFeedbackReminder is a helper function to start the reminder
// workflow for each account that just gained a pending feedback.
func TriggerFeedbackReminder(client cadence.CadenceClient, c context.Context, accountNumbers []string) error {
	for _, a := range accountNumbers {
		if _, err := client.SignalWithStartWorkflow(c,
			fmt.Sprintf("feedback-reminder-%s", a), "feedbackCheckSignal", nil,
			cadenceClient.StartWorkflowOptions{
				ID:                           fmt.Sprintf("feedback-reminder-%s", a),
				TaskList:                     NudgeTaskListName,
				// each run waits out one full check interval before deciding
				ExecutionStartToCloseTimeout: 25 * time.Hour,
				WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyAllowDuplicate,
			}, "FeedbackReminderNudgeWorkflow", a); err != nil {
			return err
		}
	}
	return nil
}
