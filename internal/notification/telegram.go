package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006 15:04"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyHoldCreated(ctx context.Context, customer domain.Customer, hold *domain.PreReservation) {
	n.send(ctx, customer.TelegramChatID, holdCreatedText(hold))
}

func (n *TelegramNotifier) NotifyHoldExpired(ctx context.Context, customer domain.Customer, hold *domain.PreReservation) {
	n.send(ctx, customer.TelegramChatID, holdExpiredText(hold))
}

func (n *TelegramNotifier) NotifyReservationConfirmed(ctx context.Context, customer domain.Customer, res *domain.Reservation) {
	n.send(ctx, customer.TelegramChatID, reservationConfirmedText(res))
}

func (n *TelegramNotifier) NotifyReservationCancelled(ctx context.Context, customer domain.Customer, res *domain.Reservation) {
	n.send(ctx, customer.TelegramChatID, reservationCancelledText(res))
}

func holdCreatedText(hold *domain.PreReservation) string {
	return fmt.Sprintf(
		"*Pre-reserva creada*\n\n"+"Total: %s %s\n"+"%s"+"Confirme antes de %s (UTC), de lo contrario se liberará.",
		hold.Total.StringFixed(2), hold.Currency,
		itinerary(hold.Itinerary),
		hold.ExpiresAt.UTC().Format(dateLayout),
	)
}

func holdExpiredText(hold *domain.PreReservation) string {
	return fmt.Sprintf(
		"*Pre-reserva expirada*\n\n"+"El bloqueo por %s %s venció el %s (UTC).",
		hold.Total.StringFixed(2), hold.Currency,
		hold.ExpiresAt.UTC().Format(dateLayout),
	)
}

func reservationConfirmedText(res *domain.Reservation) string {
	return fmt.Sprintf(
		"*Reserva confirmada*\n\n"+"Reserva: %s\n"+"Total: %s %s\n"+"%s",
		res.ID, res.Total.StringFixed(2), res.Currency,
		itinerary(res.Lines),
	)
}

func reservationCancelledText(res *domain.Reservation) string {
	return fmt.Sprintf(
		"*Reserva cancelada*\n\n"+"Reserva: %s\n"+"Los pagos capturados serán reembolsados.",
		res.ID,
	)
}

func itinerary(lines []domain.ReservationLine) string {
	var b strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&b, "- %s %s x%d: %s\n", l.ServiceType, l.OfferingID, l.Quantity, l.Subtotal.StringFixed(2))
	}
	return b.String()
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
