package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ogarmar/Compa/config"
	"github.com/ogarmar/Compa/internal/delivery"
	"github.com/ogarmar/Compa/internal/domain/entity"
	domainerrors "github.com/ogarmar/Compa/internal/domain/errors"
	"github.com/ogarmar/Compa/internal/usecase"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BotParams holds dependencies for the bot delivery, injected by Fx.
type BotParams struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	API       *tgbotapi.BotAPI
	PairingUC usecase.PairingUsecase
	RelayUC   usecase.RelayUsecase
	Logger    *slog.Logger
}

type botDelivery struct {
	cfg       *config.Config
	api       *tgbotapi.BotAPI
	pairingUC usecase.PairingUsecase
	relayUC   usecase.RelayUsecase
	logger    *slog.Logger
}

// NewDelivery is the constructor for the bot delivery.
func NewDelivery(params BotParams) delivery.Delivery {
	d := &botDelivery{
		cfg:       params.Config,
		api:       params.API,
		pairingUC: params.PairingUC,
		relayUC:   params.RelayUC,
		logger:    params.Logger,
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			d.api.StopReceivingUpdates()

			return nil
		},
	})

	return d
}

// Serve long-polls Telegram for updates until the channel closes.
func (d *botDelivery) Serve(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = d.cfg.Telegram.PollTimeout

	d.logger.Info("Starting Telegram bot", slog.String("username", d.api.Self.UserName))

	updates := d.api.GetUpdatesChan(updateConfig)
	for {
		select {
		case <-ctx.Done():
			d.api.StopReceivingUpdates()

			return nil

		case update, ok := <-updates:
			if !ok {
				return nil
			}
			d.handleUpdate(ctx, update)
		}
	}
}

func (d *botDelivery) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	if !msg.IsCommand() {
		d.reply(msg.Chat.ID, "I only understand commands. Try /help.")

		return
	}

	args := msg.CommandArguments()

	switch msg.Command() {
	case "start":
		// A deep-link start carries the device code as payload
		if code := strings.TrimSpace(args); code != "" {
			d.handleConnect(ctx, msg, code)

			return
		}
		d.reply(msg.Chat.ID, helpText)

	case "help":
		d.reply(msg.Chat.ID, helpText)

	case "connect":
		code := strings.TrimSpace(args)
		if code == "" {
			d.reply(msg.Chat.ID, "Usage: /connect <code>")

			return
		}
		d.handleConnect(ctx, msg, code)

	case "alias":
		target, alias, ok := splitAliasAndText(args)
		if !ok {
			d.reply(msg.Chat.ID, "Usage: /alias <code or alias> <name>")

			return
		}
		d.handleAlias(ctx, msg, target, alias)

	case "disconnect":
		alias := strings.TrimSpace(args)
		if alias == "" {
			d.reply(msg.Chat.ID, "Usage: /disconnect <alias>")

			return
		}
		d.handleDisconnect(ctx, msg, alias)

	case "send", "m":
		alias, text, ok := splitAliasAndText(args)
		if !ok {
			d.reply(msg.Chat.ID, "Usage: /send <alias> <text>")

			return
		}
		d.handleSend(ctx, msg, alias, text)

	default:
		d.reply(msg.Chat.ID, "Unknown command. Try /help.")
	}
}

func (d *botDelivery) handleConnect(ctx context.Context, msg *tgbotapi.Message, code string) {
	result, err := d.pairingUC.RequestConnection(ctx, &usecase.ConnectRequest{
		DeviceCode: code,
		Requester: entity.RequesterInfo{
			AccountID: msg.Chat.ID,
			Username:  msg.From.UserName,
			FullName:  displayName(msg.From.FirstName, msg.From.LastName, msg.From.UserName),
		},
	})
	if err != nil {
		d.replyError(msg.Chat.ID, err)

		return
	}

	if result.AlreadyPaired {
		if result.Connection.Named() {
			d.reply(msg.Chat.ID, fmt.Sprintf("You are already connected to this device as %q.", result.Connection.Alias))
		} else {
			d.reply(msg.Chat.ID, "You are already connected to this device.")
		}

		return
	}

	d.reply(msg.Chat.ID, "Request sent to the device. You will hear back once its owner answers.")
}

func (d *botDelivery) handleAlias(ctx context.Context, msg *tgbotapi.Message, target, alias string) {
	conn, err := d.pairingUC.SetAlias(ctx, msg.Chat.ID, target, alias)
	if err != nil {
		d.replyError(msg.Chat.ID, err)

		return
	}

	d.reply(msg.Chat.ID, fmt.Sprintf("Done. You can now message the device with /send %s <text>.", conn.Alias))
}

func (d *botDelivery) handleDisconnect(ctx context.Context, msg *tgbotapi.Message, alias string) {
	if _, err := d.pairingUC.Disconnect(ctx, msg.Chat.ID, alias); err != nil {
		d.replyError(msg.Chat.ID, err)

		return
	}

	d.reply(msg.Chat.ID, fmt.Sprintf("Disconnected from %q.", alias))
}

func (d *botDelivery) handleSend(ctx context.Context, msg *tgbotapi.Message, alias, text string) {
	_, err := d.relayUC.Send(ctx, &usecase.SendMessage{
		AccountID:  msg.Chat.ID,
		SenderName: displayName(msg.From.FirstName, msg.From.LastName, msg.From.UserName),
		Alias:      alias,
		Body:       text,
	})
	if err != nil {
		d.replyError(msg.Chat.ID, err)

		return
	}

	d.reply(msg.Chat.ID, fmt.Sprintf("Message sent to %q.", alias))
}

// replyError translates domain errors into chat-friendly phrasing.
func (d *botDelivery) replyError(chatID int64, err error) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		d.reply(chatID, appErr.Message()+".")

		return
	}

	d.logger.Error("Unhandled error in bot command", "chatID", chatID, "error", err)
	d.reply(chatID, "Something went wrong. Please try again.")
}

func (d *botDelivery) reply(chatID int64, text string) {
	if _, err := d.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		d.logger.Warn("Failed to send reply", "chatID", chatID, "error", err)
	}
}
