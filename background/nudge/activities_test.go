package nudge

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/helpmate/helpmate-api/utils"
)

func initTestI18N() {
	os.Setenv("TEST_I18N_DIR", "../../i18n")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("test")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	utils.InitI18NBundle()
}

func TestFeedbackReminderMessage(t *testing.T) {
	initTestI18N()

	headings, contents, err := FeedbackReminderMessage(3)
	assert.NoError(t, err)
	assert.NotEmpty(t, headings["zh-Hant"])
	assert.NotEmpty(t, headings["en"])
	assert.NotEmpty(t, contents["zh-Hant"])
	assert.NotEmpty(t, contents["en"])
	assert.Contains(t, contents["en"], "3")
}

func TestFeedbackReminderMessageSinglePending(t *testing.T) {
	initTestI18N()

	headings, contents, err := FeedbackReminderMessage(1)
	assert.NoError(t, err)
	assert.NotEmpty(t, headings["en"])
	assert.Contains(t, contents["en"], "1")
}
