package nudge

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"go.uber.org/cadence/testsuite"
	"go.uber.org/cadence/worker"
	"go.uber.org/zap"

	"github.com/helpmate/helpmate-api/external/cadence"
	"github.com/helpmate/helpmate-api/schema"
)

type NudgeWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite
	env               *testsuite.TestWorkflowEnvironment
	worker            *NudgeWorker
	testAccountNumber string
}

func (ts *NudgeWorkflowTestSuite) SetupSuite() {
	ts.SetLogger(zap.NewNop())
	ts.testAccountNumber = "b51f34cc40b56ab033efd2f4b0a776a2f06bdce17cbeeabedb6153e083386db2"
	ts.worker = NewNudgeWorker("test", nil)
}

func (ts *NudgeWorkflowTestSuite) SetupTest() {
	ts.env = ts.NewTestWorkflowEnvironment()
	ts.env.SetWorkerOptions(worker.Options{
		DataConverter: cadence.NewMsgPackDataConverter(),
	})
}

func (ts *NudgeWorkflowTestSuite) TestFeedbackReminderWorkflowNothingPending() {
	ts.env.OnActivity(ts.worker.PendingFeedbacksActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, accountNumber string) ([]schema.ServiceTransaction, error) {
			ts.Equal(ts.testAccountNumber, accountNumber)
			return nil, nil
		})

	ts.env.ExecuteWorkflow(ts.worker.FeedbackReminderNudgeWorkflow, ts.testAccountNumber)

	ts.True(ts.env.IsWorkflowCompleted())
	ts.NoError(ts.env.GetWorkflowError())
}

func (ts *NudgeWorkflowTestSuite) TestFeedbackReminderWorkflowOneReminder() {
	pending := []schema.ServiceTransaction{
		{ID: uuid.New(), ServiceStatus: schema.ServiceStateCompleted},
	}

	ts.env.OnActivity(ts.worker.PendingFeedbacksActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, accountNumber string) ([]schema.ServiceTransaction, error) {
			ts.Equal(ts.testAccountNumber, accountNumber)
			return pending, nil
		})

	ts.env.OnActivity("NotifyFeedbackReminderActivity", mock.Anything, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, accountNumber string, pending []schema.ServiceTransaction) error {
			ts.Equal(ts.testAccountNumber, accountNumber)
			ts.Len(pending, 1)
			return nil
		})

	ts.env.ExecuteWorkflow(ts.worker.FeedbackReminderNudgeWorkflow, ts.testAccountNumber)

	ts.env.AssertNumberOfCalls(ts.T(), "NotifyFeedbackReminderActivity", 1)
	ts.True(ts.env.IsWorkflowCompleted())
	ts.Error(ts.env.GetWorkflowError(), "ContinueAsNew")
}

func TestNudgeWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(NudgeWorkflowTestSuite))
}
