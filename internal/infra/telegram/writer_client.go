package telegram

import (
	"fmt"
	"io"

	"gopkg.in/telebot.v3"
)

// WriterClient prints messages instead of sending them. Used by dry runs.
type WriterClient struct {
	w io.Writer
}

func NewWriterClient(w io.Writer) *WriterClient {
	return &WriterClient{w: w}
}

func (c *WriterClient) SendMessage(recipientChatID int64, text string, _ *telebot.SendOptions) error {
	_, err := fmt.Fprintf(c.w, "[chat %d] %s\n", recipientChatID, text)
	return err
}
