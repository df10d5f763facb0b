package generator

import (
	"context"
	"fmt"
	"strings"
)

// FixedOracle serves canned candidate lines. Used when no upstream endpoint
// is configured, so the game stays playable in development.
type FixedOracle struct{}

func NewFixedOracle() *FixedOracle {
	return &FixedOracle{}
}

var fixedFirstLines = []string{
	"import os",
	"def main():",
	"class Game:",
	"import random",
}

var fixedNextLines = []string{
	"    pass",
	"    return None",
	"    print('ok')",
	"    x = 0",
}

func (o *FixedOracle) ProposeFirst(ctx context.Context) (*Proposal, error) {
	opts := make([]string, len(fixedFirstLines))
	copy(opts, fixedFirstLines)
	return &Proposal{Options: opts}, nil
}

func (o *FixedOracle) ProposeNext(ctx context.Context, history []string) (*Proposal, error) {
	opts := make([]string, len(fixedNextLines))
	copy(opts, fixedNextLines)
	return &Proposal{Options: opts}, nil
}

func (o *FixedOracle) Complete(ctx context.Context, history []string) (*Completion, error) {
	text := strings.Join(history, "\n")
	if text == "" {
		text = "pass"
	}
	return &Completion{Text: fmt.Sprintf("%s\n", text)}, nil
}
