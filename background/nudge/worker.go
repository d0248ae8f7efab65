package nudge

import (
	"net/http"
	"time"

	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/helpmate/helpmate-api/background"
	"github.com/helpmate/helpmate-api/external/onesignal"
	"github.com/helpmate/helpmate-api/store"
)

const TaskListName = "helpmate-nudge-tasks"

type NudgeWorker struct {
	domain   string
	store    store.MarketCore
	notifier background.NotificationCenter
}

func NewNudgeWorker(domain string, marketStore store.MarketCore) *NudgeWorker {
	o := onesignal.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	return &NudgeWorker{
		domain:   domain,
		store:    marketStore,
		notifier: background.NewOnesignalNotificationCenter(viper.GetString("onesignal.appid"), o),
	}
}

func (n *NudgeWorker) Register() {
	workflow.RegisterWithOptions(n.FeedbackReminderNudgeWorkflow, workflow.RegisterOptions{Name: "FeedbackReminderNudgeWorkflow"})

	activity.RegisterWithOptions(n.PendingFeedbacksActivity, activity.RegisterOptions{Name: "PendingFeedbacksActivity"})
	activity.RegisterWithOptions(n.NotifyFeedbackReminderActivity, activity.RegisterOptions{Name: "NotifyFeedbackReminderActivity"})
}

func (n *NudgeWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) {
	// TaskListName identifies set of client workflows, activities, and workers.
	// It could be your group or client or application name.
	workerOptions := worker.Options{
		Logger:       logger,
		MetricsScope: tally.NewTestScope(TaskListName, map[string]string{}),
	}

	worker := worker.New(
		service,
		n.domain,
		TaskListName,
		workerOptions)

	if err := worker.Start(); err != nil {
		panic("Failed to start worker")
	}

	logger.Info("Started Worker.", zap.String("worker", TaskListName))

	select {}
}
