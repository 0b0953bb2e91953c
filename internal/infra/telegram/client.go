// internal/infra/telegram/client.go
package telegram

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

// NewBot creates a send-only bot. Telebot validates the token with getMe here,
// so a revoked token fails at startup rather than on the first notification.
// An empty apiURL means the public Bot API.
func NewBot(token, apiURL string, logger *logrus.Entry) (*telebot.Bot, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		URL:    apiURL,
		Token:  token,
		Client: &http.Client{Timeout: 30 * time.Second},
		OnError: func(err error, _ telebot.Context) {
			logger.WithError(err).Error("telebot error")
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return bot, nil
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// SendMessage sends a text message to the specified chat.
func (tba *TelebotAdapter) SendMessage(recipientChatID int64, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}

	recipient := &telebot.Chat{ID: recipientChatID}
	_, err := tba.bot.Send(recipient, text, options)
	return err
}
