package nudge

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/helpmate/helpmate-api/schema"
)

const (
	FeedbackCheckInterval = 24 * time.Hour
)

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    time.Minute,
	HeartbeatTimeout:       time.Second * 20,
}

// FeedbackReminderNudgeWorkflow periodically looks up the completed services
// a given account has not rated yet and reminds it by a notification. The
// workflow ends itself once nothing is left to rate.
func (n *NudgeWorker) FeedbackReminderNudgeWorkflow(ctx workflow.Context, accountNumber string) error {

	ctx = workflow.WithActivityOptions(ctx, activityOptions)
	signalChan := workflow.GetSignalChannel(ctx, "feedbackCheckSignal")
	defer signalChan.Close()

	logger := workflow.GetLogger(ctx)

	selector := workflow.NewSelector(ctx)

	timerCancelCtx, cancelTimerHandler := workflow.WithCancel(ctx)
	timerFuture := workflow.NewTimer(timerCancelCtx, FeedbackCheckInterval)
	selector.AddFuture(timerFuture, func(f workflow.Future) {
		logger.Info("Start periodical feedback reminder check")
	})

	selector.AddReceive(signalChan, func(c workflow.Channel, more bool) {
		cancelTimerHandler()
		signalChan.Receive(ctx, nil)
		logger.Info("Start feedback reminder check by signal")
	})

	selector.Select(ctx)

	logger.Info("Check pending feedbacks for reminder")
	pending := make([]schema.ServiceTransaction, 0)
	err := workflow.ExecuteActivity(ctx, n.PendingFeedbacksActivity, accountNumber).Get(ctx, &pending)
	if err != nil {
		logger.Error("Fail to check pending feedbacks for user", zap.Error(err), zap.String("accountNumber", accountNumber))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, n.FeedbackReminderNudgeWorkflow, accountNumber)
	}

	if len(pending) == 0 {
		logger.Info("No pending feedbacks left, stop reminding", zap.String("accountNumber", accountNumber))
		return nil
	}

	if err := workflow.ExecuteActivity(ctx, n.NotifyFeedbackReminderActivity, accountNumber, pending).Get(ctx, nil); err != nil {
		logger.Error("Fail to notify user", zap.Error(err))
		sentry.CaptureException(err)
	}

	return workflow.NewContinueAsNewError(ctx, n.FeedbackReminderNudgeWorkflow, accountNumber)
}
