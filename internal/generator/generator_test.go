package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionBody(t *testing.T, content string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"content": content}},
		},
	})
	require.NoError(t, err)
	return body
}

func newOracleAgainst(t *testing.T, handler http.HandlerFunc) *LLMOracle {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewClient(ClientConfig{BaseURL: srv.URL, Model: "test-model"})
	require.NoError(t, err)
	return NewLLMOracle(client, zerolog.Nop())
}

func TestProposeFirst(t *testing.T) {
	calls := 0
	oracle := newOracleAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		switch calls {
		case 1:
			w.Write(completionBody(t, `["import os","def main():","class Game:","import sys","import os","import json"]`))
		default:
			w.Write(completionBody(t, `{"import os": 80, "def main():": 90, "class Game:": 70, "import sys": 60, "import json": 50}`))
		}
	})

	prop, err := oracle.ProposeFirst(context.Background())
	require.NoError(t, err)
	assert.Len(t, prop.Options, 4)
	assert.Equal(t, "def main():", prop.Options[0])
	dups := 0
	for _, o := range prop.Options {
		if o == "import os" {
			dups++
		}
	}
	assert.Equal(t, 1, dups, "duplicate draft must collapse to one option")
	assert.NotEmpty(t, prop.Request)
	assert.NotEmpty(t, prop.Response)
}

func TestProposeNext_FencedJSONTolerated(t *testing.T) {
	calls := 0
	oracle := newOracleAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		switch calls {
		case 1:
			w.Write(completionBody(t, "```json\n[\"    pass\",\"    return None\"]\n```"))
		default:
			w.Write(completionBody(t, `{"    pass": 50, "    return None": 60}`))
		}
	})

	prop, err := oracle.ProposeNext(context.Background(), []string{"def main():"})
	require.NoError(t, err)
	assert.Equal(t, []string{"    return None", "    pass"}, prop.Options)
}

func TestPropose_JudgeFailureDegrades(t *testing.T) {
	calls := 0
	oracle := newOracleAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		switch calls {
		case 1:
			w.Write(completionBody(t, `["a = 1","b = 2","c = 3"]`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	prop, err := oracle.ProposeFirst(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a = 1", "b = 2", "c = 3"}, prop.Options)
}

func TestPropose_UnparsableDrafts(t *testing.T) {
	oracle := newOracleAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(completionBody(t, "here are some ideas: import os"))
	})

	_, err := oracle.ProposeFirst(context.Background())
	assert.Error(t, err)
}

func TestComplete(t *testing.T) {
	oracle := newOracleAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(completionBody(t, "def main():\n    pass\n"))
	})

	comp, err := oracle.Complete(context.Background(), []string{"def main():"})
	require.NoError(t, err)
	assert.Equal(t, "def main():\n    pass", comp.Text)
	assert.NotEmpty(t, comp.Request)
}

func TestFixedOracle(t *testing.T) {
	oracle := NewFixedOracle()

	prop, err := oracle.ProposeFirst(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(prop.Options), 2)

	comp, err := oracle.Complete(context.Background(), []string{"import os"})
	require.NoError(t, err)
	assert.Contains(t, comp.Text, "import os")
}
