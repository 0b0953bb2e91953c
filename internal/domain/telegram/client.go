// Package telegram declares the messaging port used to deliver notifications.
package telegram

import "gopkg.in/telebot.v3"

// Client sends a text to a chat. Options may be nil.
type Client interface {
	SendMessage(chatID int64, text string, options *telebot.SendOptions) error
}
