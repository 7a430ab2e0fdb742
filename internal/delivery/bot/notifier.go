// Package bot is the family-facing Telegram transport: a long-poll command
// loop plus the outbound notifier the coordinator uses to reach accounts.
package bot

import (
	"context"

	"github.com/ogarmar/Compa/config"
	"github.com/ogarmar/Compa/internal/domain/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
)

// NewBotAPI authenticates against the Telegram Bot API.
func NewBotAPI(cfg *config.Config) (*tgbotapi.BotAPI, error) {
	if cfg.Telegram == nil || cfg.Telegram.Token == "" {
		return nil, errors.New("telegram token is required")
	}

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create telegram bot api")
	}

	return api, nil
}

// notifier implements service.AccountNotifier over the bot API. It is
// provided separately from the command loop so the pairing coordinator can
// message accounts without depending on the delivery.
type notifier struct {
	api *tgbotapi.BotAPI
}

// NewNotifier is the constructor for notifier.
func NewNotifier(api *tgbotapi.BotAPI) service.AccountNotifier {
	return &notifier{api: api}
}

// NotifyAccount sends a plain text message to the account's chat.
func (n *notifier) NotifyAccount(_ context.Context, accountID int64, text string) error {
	msg := tgbotapi.NewMessage(accountID, text)
	if _, err := n.api.Send(msg); err != nil {
		return errors.Wrap(err, "failed to send telegram message")
	}

	return nil
}
