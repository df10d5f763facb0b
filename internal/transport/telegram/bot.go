package telegram

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_services.go -package=mocks . GameService,OpsService

import (
	"context"
	"encoding/json"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/codevote/codevote/internal/application/game"
	appOps "github.com/codevote/codevote/internal/application/ops"
	"github.com/codevote/codevote/internal/domain/chat"
	"github.com/codevote/codevote/internal/domain/code"
	domainOps "github.com/codevote/codevote/internal/domain/ops"
	"github.com/codevote/codevote/internal/domain/poll"
	"github.com/codevote/codevote/internal/generator"
)

// GameService is the slice of the ledger the bot drives.
type GameService interface {
	RegisterChat(ctx context.Context, chatID int64) (*chat.Chat, error)
	SetChatAdmins(ctx context.Context, chatID int64, adminIDs []int64) error
	StartRound(ctx context.Context, in game.StartRoundInput) (*poll.Poll, error)
	BindTransportIDs(ctx context.Context, pollID int64, transportPollID string, messageID int64) error
	RegisterVote(ctx context.Context, transportPollID string, voterID *int64, optionIndex int) error
	FinishPoll(ctx context.Context, transportPollID string) (*game.FinishResult, error)
	FailPoll(ctx context.Context, pollID int64) error
	ResetHistory(ctx context.Context, chatID int64) (*chat.Chat, error)
	CurrentCode(ctx context.Context, chatID int64) ([]string, error)
	SaveCompleted(ctx context.Context, chatID int64, text string, oracleReq, oracleResp json.RawMessage) (*code.Snapshot, error)
	ActivePoll(ctx context.Context, chatID int64) (*poll.Poll, error)
}

// OpsService is the slice of operational reporting the bot exposes.
type OpsService interface {
	Health(ctx context.Context, chatID int64) (*appOps.HealthReport, error)
	RecentLogs(ctx context.Context, limit int) ([]*domainOps.LogEntry, error)
	AllLogs(ctx context.Context, limit int) ([]*domainOps.LogEntry, error)
}

// botAPI is what the bot needs from tgbotapi.BotAPI. Narrowed for tests.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	StopPoll(config tgbotapi.StopPollConfig) (tgbotapi.Poll, error)
	GetChatAdministrators(config tgbotapi.ChatAdministratorsConfig) ([]tgbotapi.ChatMember, error)
}

// Config carries the bot's runtime knobs.
type Config struct {
	// OwnerIDs are globally privileged users, independent of chat admin
	// status.
	OwnerIDs []int64
	// PollTimeout bounds how long a round stays open before the sweeper
	// closes it. Zero disables the deadline.
	PollTimeout time.Duration
	// RecentLogLimit is how many entries /logs returns.
	RecentLogLimit int
}

// Bot wires Telegram updates to the game ledger: commands open and close
// rounds, poll answers become votes.
type Bot struct {
	api    botAPI
	game   GameService
	ops    OpsService
	oracle generator.Oracle
	cfg    Config
	logger zerolog.Logger
}

func NewBot(api botAPI, gameSvc GameService, opsSvc OpsService, oracle generator.Oracle, cfg Config, logger zerolog.Logger) *Bot {
	if cfg.RecentLogLimit <= 0 {
		cfg.RecentLogLimit = 50
	}
	return &Bot{
		api:    api,
		game:   gameSvc,
		ops:    opsSvc,
		oracle: oracle,
		cfg:    cfg,
		logger: logger.With().Str("service", "telegram").Logger(),
	}
}

// Run consumes the long-poll update stream until ctx is cancelled. Only
// message and poll_answer updates are requested; everything else stays
// server-side.
func (b *Bot) Run(ctx context.Context, api *tgbotapi.BotAPI) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	u.AllowedUpdates = []string{"message", "poll_answer"}
	updates := api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.dispatch(ctx, update)
		}
	}
}

func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.PollAnswer != nil:
		b.handlePollAnswer(ctx, update.PollAnswer)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("send message")
	}
}

func (b *Bot) replyMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("send message")
	}
}
