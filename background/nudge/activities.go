package nudge

import (
	"context"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/cadence/activity"
	"go.uber.org/zap"

	"github.com/helpmate/helpmate-api/background"
	"github.com/helpmate/helpmate-api/external/onesignal"
	"github.com/helpmate/helpmate-api/schema"
	"github.com/helpmate/helpmate-api/utils"
)

// PendingFeedbacksActivity returns the completed services the given account
// has not rated yet
func (n *NudgeWorker) PendingFeedbacksActivity(ctx context.Context, accountNumber string) ([]schema.ServiceTransaction, error) {
	return n.store.ListPendingFeedbacks(accountNumber)
}

// FeedbackReminderMessage returns headings and contents in a map where its
// keys are languages
func FeedbackReminderMessage(pendingCount int) (map[string]string, map[string]string, error) {
	headings := map[string]string{}
	contents := map[string]string{}

	for key, lang := range background.OneSignalLanguageCode {
		loc := utils.NewLocalizer(lang)

		heading, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: "notification.feedback_reminder.heading",
		})
		if err != nil {
			return nil, nil, err
		}

		headings[key] = heading

		content, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: "notification.feedback_reminder.content",
			TemplateData: map[string]interface{}{
				"Count": pendingCount,
			},
		})
		if err != nil {
			return nil, nil, err
		}

		contents[key] = content
	}

	return headings, contents, nil
}

// NotifyFeedbackReminderActivity sends a localized reminder listing the
// services still waiting for the account's rating
func (n *NudgeWorker) NotifyFeedbackReminderActivity(ctx context.Context, accountNumber string, pending []schema.ServiceTransaction) error {
	logger := activity.GetLogger(ctx)

	var transactionIDs = make([]string, 0)
	for _, tx := range pending {
		transactionIDs = append(transactionIDs, tx.ID.String())
	}

	headings, contents, err := FeedbackReminderMessage(len(pending))
	if err != nil {
		logger.Error("can not generate feedback reminder message", zap.Error(err))
		return err
	}

	if err := n.notifier.NotifyAccountByText(accountNumber,
		headings, contents,
		map[string]interface{}{
			"notification_type": "FEEDBACK_REMINDER",
			"transaction_ids":   transactionIDs,
		},
	); err != nil {
		if !onesignal.IsErrAllPlayersNotSubscribed(err) {
			return err
		}
		logger.Warn("account is not subscribed in onesignal", zap.String("accountNumber", accountNumber))
	}

	return nil
}
