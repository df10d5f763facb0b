package generator

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_oracle.go -package=mocks . Oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Proposal is one batch of candidate lines plus the raw upstream exchange
// that produced them.
type Proposal struct {
	Options  []string
	Request  json.RawMessage
	Response json.RawMessage
}

// Completion is a finished full-program text plus its upstream exchange.
type Completion struct {
	Text     string
	Request  json.RawMessage
	Response json.RawMessage
}

// Oracle proposes content for the game: candidate first lines, candidate
// next lines given the accepted history, and a completed program.
type Oracle interface {
	ProposeFirst(ctx context.Context) (*Proposal, error)
	ProposeNext(ctx context.Context, history []string) (*Proposal, error)
	Complete(ctx context.Context, history []string) (*Completion, error)
}

const (
	draftTemperature = 0.6
	judgeTemperature = 0.1
)

// LLMOracle generates content through a chat-completions endpoint: a draft
// call proposes six lines, a judge call scores them, pickBest keeps four.
type LLMOracle struct {
	client *Client
	logger zerolog.Logger
}

func NewLLMOracle(client *Client, logger zerolog.Logger) *LLMOracle {
	return &LLMOracle{
		client: client,
		logger: logger.With().Str("service", "oracle").Logger(),
	}
}

func (o *LLMOracle) ProposeFirst(ctx context.Context) (*Proposal, error) {
	return o.propose(ctx, firstLinePrompt, nil)
}

func (o *LLMOracle) ProposeNext(ctx context.Context, history []string) (*Proposal, error) {
	prompt := fmt.Sprintf(nextLinePrompt, strings.Join(history, "\n"))
	return o.propose(ctx, prompt, history)
}

func (o *LLMOracle) propose(ctx context.Context, prompt string, history []string) (*Proposal, error) {
	text, reqRaw, respRaw, err := o.client.chat(ctx, prompt, draftTemperature)
	if err != nil {
		return nil, err
	}
	var drafts []string
	if err := json.Unmarshal([]byte(sanitizeJSONText(text)), &drafts); err != nil {
		return nil, fmt.Errorf("generator: parse drafts: %w", err)
	}
	if len(drafts) == 0 {
		return nil, fmt.Errorf("generator: no drafts returned")
	}

	scores, err := o.judge(ctx, history, drafts)
	if err != nil {
		// A failed judge call degrades to structural scoring only.
		o.logger.Warn().Err(err).Msg("judge call failed, ranking drafts structurally")
		scores = map[string]int{}
	}

	options := pickBest(drafts, scores)
	if len(options) < 2 {
		return nil, fmt.Errorf("generator: only %d usable drafts", len(options))
	}
	return &Proposal{Options: options, Request: reqRaw, Response: respRaw}, nil
}

func (o *LLMOracle) judge(ctx context.Context, history, drafts []string) (map[string]int, error) {
	candidates, err := json.Marshal(drafts)
	if err != nil {
		return nil, err
	}
	prompt := fmt.Sprintf(evaluationPrompt, strings.Join(history, "\n"), string(candidates))
	text, _, _, err := o.client.chat(ctx, prompt, judgeTemperature)
	if err != nil {
		return nil, err
	}
	var scores map[string]int
	if err := json.Unmarshal([]byte(sanitizeJSONText(text)), &scores); err != nil {
		return nil, fmt.Errorf("generator: parse scores: %w", err)
	}
	return scores, nil
}

func (o *LLMOracle) Complete(ctx context.Context, history []string) (*Completion, error) {
	prompt := fmt.Sprintf(completePrompt, strings.Join(history, "\n"))
	text, reqRaw, respRaw, err := o.client.chat(ctx, prompt, judgeTemperature)
	if err != nil {
		return nil, err
	}
	return &Completion{Text: strings.TrimSpace(text), Request: reqRaw, Response: respRaw}, nil
}
