package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/CinemaDistrict/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts registration and booking events to an operations
// chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyUserRegistered(ctx context.Context, user *domain.User) {
	text := fmt.Sprintf(
		"*New user registered*\n\n"+"Name: %s\n"+"Email: %s",
		escape(user.Name), escape(user.Email),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, user *domain.User, c *domain.Confirmation) {
	b := c.Booking

	movie, theater := "-", "-"
	if b.Movie != nil {
		movie = b.Movie.Title
	}
	if b.Theater != nil {
		theater = b.Theater.Name
	}

	text := fmt.Sprintf(
		"*Booking confirmed!*\n\n"+"Booking: %s\n"+"Customer: %s\n"+"Movie: %s\n"+"Theater: %s\n"+"Show: %s %s\n"+"Seats: %s\n"+"Paid: ₹%d",
		c.BookingID,
		escape(user.Email),
		escape(movie),
		escape(theater),
		b.Date, b.Showtime,
		strings.Join(b.SeatIDs(), ", "),
		c.Totals.Total,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}
