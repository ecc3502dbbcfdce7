package telegram

import (
	"errors"
	"strings"
	"testing"
	"time"

	"golang-stock-sentiment/internal/entity"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	msg := c.(tgbotapi.MessageConfig)
	f.sent = append(f.sent, msg.Text)
	return tgbotapi.Message{}, nil
}

func TestNewClientRequiresToken(t *testing.T) {
	_, err := NewClient("", 1)
	assert.Error(t, err)
}

func TestSendMessageSplitsLongText(t *testing.T) {
	bot := &fakeSender{}
	c := &client{bot: bot, chatID: 42}

	line := strings.Repeat("x", 99) + "\n"
	require.NoError(t, c.SendMessage(strings.Repeat(line, 100)))

	require.Len(t, bot.sent, 3)
	for _, part := range bot.sent {
		assert.LessOrEqual(t, len(part), maxMessageLen)
		assert.True(t, strings.HasSuffix(part, "\n"))
	}
	assert.Equal(t, strings.Repeat(line, 100), strings.Join(bot.sent, ""))
}

func TestSendMessageError(t *testing.T) {
	c := &client{bot: &fakeSender{err: errors.New("forbidden")}, chatID: 42}
	assert.ErrorContains(t, c.SendMessage("hi"), "forbidden")
}

func TestSplitMessageWithoutNewlines(t *testing.T) {
	parts := SplitMessage(strings.Repeat("é", 10), 5)
	assert.Equal(t, strings.Repeat("é", 10), strings.Join(parts, ""))
	for _, p := range parts {
		assert.LessOrEqual(t, len(p), 5)
	}
}

func TestFormatJobCreated(t *testing.T) {
	msg := FormatJobCreated(entity.Job{
		ID:          "job-1",
		Instruction: entity.Instruction{Action: "buy", Target: "AAPL", Quantity: "10", Condition: "price<150"},
		CreatedAt:   time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
	})

	assert.Contains(t, msg, "Job is created!")
	assert.Contains(t, msg, "🟢 *Action:* BUY")
	assert.Contains(t, msg, "`AAPL`")
	assert.Contains(t, msg, "*Condition:* price<150")
	assert.NotContains(t, msg, "Time Frame")
	assert.Contains(t, msg, "Mon, 01 Jan 2024 09:30 UTC")
}
