package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	logPrefix   = "onesignal"
	endpointURL = "https://onesignal.com/api/v1/notifications"
)

// NotificationRequest is the payload of a onesignal notification create call.
// Either TemplateID or Headings/Contents is set, never both.
type NotificationRequest struct {
	AppID            string                 `json:"app_id"`
	TemplateID       string                 `json:"template_id,omitempty"`
	Headings         map[string]string      `json:"headings,omitempty"`
	Contents         map[string]string      `json:"contents,omitempty"`
	Filters          []map[string]string    `json:"filters,omitempty"`
	IncludedSegments []string               `json:"included_segments,omitempty"`
	Data             map[string]interface{} `json:"data,omitempty"`
	LocalChannelID   string                 `json:"existing_android_channel_id,omitempty"`
}

type OneSignalClient struct {
	client *http.Client
	apiKey string
}

func NewClient(client *http.Client) *OneSignalClient {
	return &OneSignalClient{
		client: client,
		apiKey: viper.GetString("onesignal.apikey"),
	}
}

// SendNotification submits a notification create request and fails on any
// non-2xx response.
func (c *OneSignalClient) SendNotification(ctx context.Context, notification *NotificationRequest) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointURL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Basic %s", c.apiKey))

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := ioutil.ReadAll(resp.Body)
		if bytes.Contains(respBody, []byte("All included players are not subscribed")) {
			return ErrAllPlayersNotSubscribed
		}
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"status": resp.StatusCode,
			"body":   string(respBody),
		}).Error("send notification")
		return fmt.Errorf("onesignal responds with status: %d", resp.StatusCode)
	}

	return nil
}

// ErrAllPlayersNotSubscribed is returned when every targeted device has
// opted out of notifications.
var ErrAllPlayersNotSubscribed = errors.New("all included players are not subscribed")

func IsErrAllPlayersNotSubscribed(err error) bool {
	return err == ErrAllPlayersNotSubscribed
}
