package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/codevote/codevote/internal/application/game"
	"github.com/codevote/codevote/internal/domain/chat"
	domainOps "github.com/codevote/codevote/internal/domain/ops"
	"github.com/codevote/codevote/internal/domain/poll"
	"github.com/codevote/codevote/internal/generator"
)

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if _, err := b.game.RegisterChat(ctx, chatID); err != nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("register chat")
		return
	}

	role := b.resolveRole(ctx, msg)

	if !msg.IsCommand() {
		b.handlePlainMessage(msg, role)
		return
	}

	command := msg.Command()
	if !allowed(role, command) && command != "help" {
		b.reply(chatID, "This command is not available to you.")
		return
	}

	switch command {
	case "start":
		b.cmdStart(ctx, chatID)
	case "code":
		b.cmdCode(ctx, chatID)
	case "code_completed":
		b.cmdCodeCompleted(ctx, chatID)
	case "send_now":
		b.cmdSendNow(ctx, chatID)
	case "health":
		b.cmdHealth(ctx, chatID)
	case "logs":
		b.cmdLogs(ctx, chatID, b.cfg.RecentLogLimit)
	case "alllogs":
		b.cmdLogs(ctx, chatID, 0)
	case "help":
		b.reply(chatID, "Vote on the next line of code. /code shows the program so far.")
	default:
		b.reply(chatID, "Unknown command. See the keyboard for what I can do.")
	}
}

// handlePlainMessage greets the chat when the bot joins and otherwise shows
// the role keyboard.
func (b *Bot) handlePlainMessage(msg *tgbotapi.Message, role Role) {
	reply := tgbotapi.NewMessage(msg.Chat.ID, "Here is what I can do (check the menu).")
	if len(msg.NewChatMembers) > 0 {
		reply.Text = "Hi! I have joined the chat."
	}
	reply.ReplyMarkup = keyboardForRole(role)
	if _, err := b.api.Send(reply); err != nil {
		b.logger.Error().Err(err).Int64("chat_id", msg.Chat.ID).Msg("send keyboard")
	}
}

// resolveRole classifies the sender: configured owners first, then chat
// administrators reported by Telegram. The fetched admin set is also written
// back to the chat record so the ledger knows it.
func (b *Bot) resolveRole(ctx context.Context, msg *tgbotapi.Message) Role {
	if msg.From == nil {
		return RoleUser
	}
	userID := msg.From.ID
	for _, id := range b.cfg.OwnerIDs {
		if id == userID {
			return RoleOwner
		}
	}
	if msg.Chat.IsPrivate() {
		return RoleUser
	}

	admins, err := b.api.GetChatAdministrators(tgbotapi.ChatAdministratorsConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: msg.Chat.ID},
	})
	if err != nil {
		b.logger.Warn().Err(err).Int64("chat_id", msg.Chat.ID).Msg("fetch chat administrators")
		return RoleUser
	}
	adminIDs := make([]int64, 0, len(admins))
	isAdmin := false
	for _, a := range admins {
		adminIDs = append(adminIDs, a.User.ID)
		if a.User.ID == userID {
			isAdmin = true
		}
	}
	if err := b.game.SetChatAdmins(ctx, msg.Chat.ID, adminIDs); err != nil {
		b.logger.Warn().Err(err).Int64("chat_id", msg.Chat.ID).Msg("store chat admins")
	}
	if isAdmin {
		return RoleGroupAdmin
	}
	return RoleUser
}

// cmdStart wipes the visible history and opens the first round of a fresh
// game. Old rounds stay in the ledger under their own epoch.
func (b *Bot) cmdStart(ctx context.Context, chatID int64) {
	if _, err := b.game.ResetHistory(ctx, chatID); err != nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("reset history")
		b.reply(chatID, "Could not restart the game.")
		return
	}
	b.reply(chatID, "History cleared, sending the first poll.")
	b.startRound(ctx, chatID)
}

func (b *Bot) cmdCode(ctx context.Context, chatID int64) {
	lines, err := b.game.CurrentCode(ctx, chatID)
	if err != nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("load current code")
		b.reply(chatID, "Could not load the code.")
		return
	}
	if len(lines) == 0 {
		b.reply(chatID, "No code yet. An admin can /start a game.")
		return
	}
	b.replyMarkdown(chatID, "```\n"+strings.Join(lines, "\n")+"\n```")
}

func (b *Bot) cmdCodeCompleted(ctx context.Context, chatID int64) {
	lines, err := b.game.CurrentCode(ctx, chatID)
	if err != nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("load current code")
		b.reply(chatID, "Could not load the code.")
		return
	}
	if len(lines) == 0 {
		b.reply(chatID, "Nothing to complete yet.")
		return
	}
	comp, err := b.oracle.Complete(ctx, lines)
	if err != nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("complete code")
		b.reply(chatID, "Completion failed, try again later.")
		return
	}
	if _, err := b.game.SaveCompleted(ctx, chatID, comp.Text, comp.Request, comp.Response); err != nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("save snapshot")
	}
	b.replyMarkdown(chatID, "Completed program:\n```\n"+comp.Text+"\n```")
}

// cmdSendNow closes the chat's open round immediately and opens the next
// one.
func (b *Bot) cmdSendNow(ctx context.Context, chatID int64) {
	p, err := b.game.ActivePoll(ctx, chatID)
	if err != nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("load active poll")
		b.reply(chatID, "Could not close the poll.")
		return
	}
	if p == nil {
		b.reply(chatID, "No open poll in this chat.")
		return
	}
	if err := b.finishAndAnnounce(ctx, p); err != nil {
		b.reply(chatID, "Could not close the poll.")
		return
	}
	b.reply(chatID, "Poll finished, sending the next one.")
	b.startRound(ctx, chatID)
}

func (b *Bot) cmdHealth(ctx context.Context, chatID int64) {
	report, err := b.ops.Health(ctx, chatID)
	if err != nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("health report")
		b.reply(chatID, "Health check failed.")
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Bot up for %s.\n", report.Uptime)
	if report.NextRunAt != nil {
		fmt.Fprintf(&sb, "Next sweep at %s.\n", report.NextRunAt.Format("15:04:05"))
	}
	fmt.Fprintf(&sb, "Active jobs: %s\n", string(report.ActiveJobs))
	fmt.Fprintf(&sb, "History epoch: %d, lines: %d.\n", report.HistoryEpoch, report.CodeLines)
	if report.HasActivePoll {
		sb.WriteString("There is an open poll in this chat.")
	} else {
		sb.WriteString("No open poll.")
	}
	b.reply(chatID, sb.String())
}

func (b *Bot) cmdLogs(ctx context.Context, chatID int64, limit int) {
	var entries []*domainOps.LogEntry
	var err error
	if limit > 0 {
		entries, err = b.ops.RecentLogs(ctx, limit)
	} else {
		entries, err = b.ops.AllLogs(ctx, 0)
	}
	if err != nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("load logs")
		b.reply(chatID, "Could not load logs.")
		return
	}
	if len(entries) == 0 {
		b.reply(chatID, "Logs are empty.")
		return
	}
	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "[%s][%s] %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Level, e.Message)
	}
	b.reply(chatID, sb.String())
}

// startRound asks the oracle for candidate lines, records the round and
// sends the Telegram poll. The transport ids are bound only after the send
// succeeds; a failed send marks the round failed so the chat is not stuck.
func (b *Bot) startRound(ctx context.Context, chatID int64) {
	history, err := b.game.CurrentCode(ctx, chatID)
	if err != nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("load history")
		b.reply(chatID, "Could not start a round.")
		return
	}

	proposal, err := b.propose(ctx, history)
	if err != nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("oracle proposal")
		b.reply(chatID, "Could not generate candidate lines.")
		return
	}

	in := game.StartRoundInput{
		ChatID:         chatID,
		Options:        proposal.Options,
		OracleRequest:  proposal.Request,
		OracleResponse: proposal.Response,
	}
	if b.cfg.PollTimeout > 0 {
		deadline := time.Now().Add(b.cfg.PollTimeout)
		in.TimeoutAt = &deadline
	}
	p, err := b.game.StartRound(ctx, in)
	if err != nil {
		if errors.Is(err, chat.ErrActivePoll) {
			b.reply(chatID, "There is already an open poll in this chat.")
			return
		}
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("start round")
		b.reply(chatID, "Could not start a round.")
		return
	}

	pollCfg := tgbotapi.NewPoll(chatID, "Choose the next line of code:", proposal.Options...)
	pollCfg.IsAnonymous = false
	pollCfg.AllowsMultipleAnswers = false
	sent, err := b.api.Send(pollCfg)
	if err != nil || sent.Poll == nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Int64("poll_id", p.ID).Msg("send poll")
		if ferr := b.game.FailPoll(ctx, p.ID); ferr != nil {
			b.logger.Error().Err(ferr).Int64("poll_id", p.ID).Msg("mark poll failed")
		}
		b.reply(chatID, "Could not send the poll.")
		return
	}
	if err := b.game.BindTransportIDs(ctx, p.ID, sent.Poll.ID, int64(sent.MessageID)); err != nil {
		b.logger.Error().Err(err).Int64("poll_id", p.ID).Msg("bind transport ids")
	}
}

func (b *Bot) propose(ctx context.Context, history []string) (*generator.Proposal, error) {
	if len(history) == 0 {
		return b.oracle.ProposeFirst(ctx)
	}
	return b.oracle.ProposeNext(ctx, history)
}

// finishAndAnnounce stops the Telegram poll, resolves the round in the
// ledger and posts the winning line.
func (b *Bot) finishAndAnnounce(ctx context.Context, p *poll.Poll) error {
	if p.TransportPollID == "" {
		// Never bound: the poll message did not go out.
		return b.game.FailPoll(ctx, p.ID)
	}
	if _, err := b.api.StopPoll(tgbotapi.NewStopPoll(p.ChatID, int(p.TransportMessageID))); err != nil {
		// The poll may already be stopped on Telegram's side; resolution in
		// the ledger still proceeds.
		b.logger.Warn().Err(err).Int64("poll_id", p.ID).Msg("stop telegram poll")
	}
	res, err := b.game.FinishPoll(ctx, p.TransportPollID)
	if err != nil {
		b.logger.Error().Err(err).Int64("poll_id", p.ID).Msg("finish poll")
		return err
	}
	if res.Appended {
		b.replyMarkdown(p.ChatID, "Winning line:\n```\n"+res.Winner.Text+"\n```")
	}
	return nil
}

// FinishRound lets the sweeper close a timed-out round through the same
// path a manual close takes.
func (b *Bot) FinishRound(ctx context.Context, p *poll.Poll) error {
	if p.TransportPollID == "" {
		return b.game.FailPoll(ctx, p.ID)
	}
	if err := b.finishAndAnnounce(ctx, p); err != nil {
		return err
	}
	b.startRound(ctx, p.ChatID)
	return nil
}

func (b *Bot) handlePollAnswer(ctx context.Context, answer *tgbotapi.PollAnswer) {
	if len(answer.OptionIDs) == 0 {
		// A retracted vote. The ledger keeps the previous ballot.
		return
	}
	var voterID *int64
	if answer.User.ID != 0 {
		id := answer.User.ID
		voterID = &id
	}
	err := b.game.RegisterVote(ctx, answer.PollID, voterID, answer.OptionIDs[0])
	switch {
	case err == nil:
	case errors.Is(err, poll.ErrNotFound):
		b.logger.Warn().Str("transport_poll_id", answer.PollID).Msg("vote for unknown poll")
	case errors.Is(err, poll.ErrOptionIndexOutOfRange):
		b.logger.Warn().Str("transport_poll_id", answer.PollID).Ints("option_ids", answer.OptionIDs).Msg("vote index out of range")
	default:
		b.logger.Error().Err(err).Str("transport_poll_id", answer.PollID).Msg("register vote")
	}
}
