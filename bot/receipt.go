package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// SendReceipt posts text to the staff chat. The Telegram client does not
// take a context, so ctx is only checked before sending.
func (b *Bot) SendReceipt(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(b.chatID, text)
	msg.DisableWebPagePreview = true
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("send receipt to chat %d: %w", b.chatID, err)
	}
	return nil
}
