package background

import (
	"context"

	"github.com/helpmate/helpmate-api/external/onesignal"
)

// OneSignalLanguageCode maps onesignal language codes to i18n catalog names.
var OneSignalLanguageCode = map[string]string{
	"zh-Hant": "zh_tw",
	"en":      "en",
}

const localChannelID = "marketplace_alert"

// onesignal caps the filter list of one notification request
const filterBatchSize = 100

type NotificationCenter interface {
	NotifyAccountByText(accountNumber string, headings, contents map[string]string, data map[string]interface{}) error
	NotifyAccountsByTemplate(accountNumbers []string, templateID string, data map[string]interface{}) error
}

type OnesignalNotificationCenter struct {
	appID  string
	client *onesignal.OneSignalClient
}

func NewOnesignalNotificationCenter(appID string, client *onesignal.OneSignalClient) *OnesignalNotificationCenter {
	return &OnesignalNotificationCenter{
		appID:  appID,
		client: client,
	}
}

func (o *OnesignalNotificationCenter) NotifyAccountByText(accountNumber string, headings, contents map[string]string, data map[string]interface{}) error {
	filters := []map[string]string{
		{
			"field":    "tag",
			"key":      "account_number",
			"relation": "=",
			"value":    accountNumber,
		},
	}

	req := &onesignal.NotificationRequest{
		AppID:          o.appID,
		Headings:       headings,
		Contents:       contents,
		Filters:        filters,
		Data:           data,
		LocalChannelID: localChannelID,
	}
	return o.client.SendNotification(context.Background(), req)
}

func accountTagFilter(accountNumber string) map[string]string {
	return map[string]string{
		"field":    "tag",
		"key":      "account_number",
		"relation": "=",
		"value":    accountNumber,
	}
}

// NotifyAccountsByTemplate consolidates account numbers into OR'd tag filters
// and delivers the cohort in requests of at most filterBatchSize accounts.
func (o *OnesignalNotificationCenter) NotifyAccountsByTemplate(accountNumbers []string, templateID string, data map[string]interface{}) error {
	sendBatch := func(filters []map[string]string) error {
		req := &onesignal.NotificationRequest{
			AppID:          o.appID,
			TemplateID:     templateID,
			Filters:        filters,
			Data:           data,
			LocalChannelID: localChannelID,
		}
		return o.client.SendNotification(context.Background(), req)
	}

	filters := []map[string]string{}
	for i, a := range accountNumbers {
		if i%filterBatchSize != 0 {
			filters = append(filters, map[string]string{"operator": "OR"})
		}
		filters = append(filters, accountTagFilter(a))

		if i%filterBatchSize == filterBatchSize-1 {
			if err := sendBatch(filters); err != nil {
				return err
			}
			filters = []map[string]string{}
		}
	}

	// an empty filter list would broadcast to every player
	if len(filters) == 0 {
		return nil
	}
	return sendBatch(filters)
}
