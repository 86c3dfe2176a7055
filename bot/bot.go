package bot

import (
	"context"
	"fmt"
	"strings"

	"restaurant-pos/models"
	"restaurant-pos/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Desk is the slice of the point-of-sale the staff bot can reach.
type Desk interface {
	MenuItems() []models.MenuItem
	PendingOrders() int
	ProcessNext(ctx context.Context) (services.Bill, bool, error)
}

// Bot posts receipts to the staff chat and answers staff commands sent from
// that chat. Messages from any other chat are refused.
type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
	log    *zap.SugaredLogger
}

func New(token string, chatID int64, log *zap.SugaredLogger) (*Bot, error) {
	if chatID == 0 {
		return nil, fmt.Errorf("receipt chat id is not set")
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{api: api, chatID: chatID, log: log}, nil
}

func (b *Bot) Username() string {
	return b.api.Self.UserName
}

func (b *Bot) setBotCommands() error {
	cfg := tgbotapi.SetMyCommandsConfig{
		Commands: []tgbotapi.BotCommand{
			{Command: "menu", Description: "Show the menu"},
			{Command: "pending", Description: "Orders waiting in the queue"},
			{Command: "next", Description: "Process the next order"},
		},
	}
	_, err := b.api.Request(cfg)
	return err
}

// Run polls for updates and answers commands until ctx is cancelled.
func (b *Bot) Run(ctx context.Context, desk Desk) {
	if err := b.setBotCommands(); err != nil {
		b.log.Warnw("set bot commands failed", "error", err)
	}
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	b.log.Infow("staff bot started", "bot", b.Username(), "chat_id", b.chatID)
	for {
		select {
		case <-ctx.Done():
			b.log.Infow("staff bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			msg := update.Message
			reply := handleCommand(ctx, desk, b.chatID, msg.Chat.ID, strings.TrimSpace(msg.Text))
			if reply == "" {
				continue
			}
			b.send(msg.Chat.ID, reply)
		}
	}
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Errorw("send error", "chat_id", chatID, "error", err)
	}
}

// handleCommand returns the reply for text, or "" when there is nothing to say.
func handleCommand(ctx context.Context, desk Desk, staffChat, chatID int64, text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	if chatID != staffChat {
		return "Unauthorized."
	}

	cmd := strings.Fields(text)[0]
	// "/menu@SomeBot" in group chats
	if i := strings.IndexByte(cmd, '@'); i > 0 {
		cmd = cmd[:i]
	}

	switch cmd {
	case "/start", "/help":
		return "Commands:\n/menu - show the menu\n/pending - orders waiting\n/next - process the next order"
	case "/menu":
		return formatMenu(desk.MenuItems())
	case "/pending":
		return fmt.Sprintf("Pending orders: %d", desk.PendingOrders())
	case "/next":
		bill, ok, err := desk.ProcessNext(ctx)
		if !ok {
			if err != nil {
				return "Processing failed: " + err.Error()
			}
			return "No pending orders."
		}
		return formatBill(bill)
	default:
		return "Unknown command."
	}
}

func formatMenu(items []models.MenuItem) string {
	if len(items) == 0 {
		return "The menu is empty."
	}
	var sb strings.Builder
	sb.WriteString("Menu:\n")
	for _, it := range items {
		fmt.Fprintf(&sb, "\n%s (%s) - $%s", it.Name, it.Category, services.FormatAmount(it.Price))
	}
	return sb.String()
}

func formatBill(bill services.Bill) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Order %s is ready for payment\n", bill.OrderID)
	for _, line := range bill.Lines {
		fmt.Fprintf(&sb, "\n%s - $%s", line.Item.Name, services.FormatAmount(line.Charge))
		if line.Discounted {
			sb.WriteString(" (-10%)")
		}
	}
	fmt.Fprintf(&sb, "\n\nTotal: $%s", services.FormatAmount(bill.Total))
	return sb.String()
}
