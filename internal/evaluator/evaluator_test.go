package evaluator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCompleter struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func newTestEvaluator(stub *stubCompleter) *Evaluator {
	return New(stub, time.Second, nil, zap.NewNop())
}

func TestEvaluateAdequate(t *testing.T) {
	stub := &stubCompleter{response: "ADEQUATE\nSolid explanation of the request lifecycle."}
	e := newTestEvaluator(stub)

	outcome, feedback := e.Evaluate(context.Background(), "What is a REST API?",
		"REST APIs expose resources over HTTP verbs", 3, "English")

	assert.Equal(t, OutcomeAdequate, outcome)
	assert.Equal(t, "Solid explanation of the request lifecycle.", feedback)
	assert.Contains(t, stub.lastPrompt, "What is a REST API?")
	assert.Contains(t, stub.lastPrompt, "3 years")
}

func TestEvaluateNeedsClarification(t *testing.T) {
	stub := &stubCompleter{response: "NEEDS_CLARIFICATION\nYou did not mention status codes."}
	e := newTestEvaluator(stub)

	outcome, feedback := e.Evaluate(context.Background(), "q", "a", 1, "English")

	assert.Equal(t, OutcomeNeedsClarification, outcome)
	assert.Equal(t, "You did not mention status codes.", feedback)
}

func TestEvaluateIrrelevant(t *testing.T) {
	stub := &stubCompleter{response: "IRRELEVANT\nThe question was about databases."}
	e := newTestEvaluator(stub)

	outcome, _ := e.Evaluate(context.Background(), "q", "a", 1, "English")

	assert.Equal(t, OutcomeIrrelevant, outcome)
}

func TestEvaluateTokenWithoutFeedback(t *testing.T) {
	stub := &stubCompleter{response: "ADEQUATE"}
	e := newTestEvaluator(stub)

	outcome, feedback := e.Evaluate(context.Background(), "q", "a", 1, "English")

	assert.Equal(t, OutcomeAdequate, outcome)
	assert.NotEmpty(t, feedback)
}

func TestEvaluateMalformedResponseFallsBack(t *testing.T) {
	cases := []struct {
		name     string
		response string
	}{
		{"empty", ""},
		{"no token", "The answer looks fine to me."},
		{"similar but different word", "INADEQUATE: missing the main point."},
		{"multiple tokens", "ADEQUATE or maybe IRRELEVANT, hard to say."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubCompleter{response: tc.response}
			e := newTestEvaluator(stub)

			outcome, feedback := e.Evaluate(context.Background(), "q", "a", 1, "English")

			assert.Equal(t, OutcomeNeedsClarification, outcome)
			assert.NotEmpty(t, feedback)
		})
	}
}

func TestEvaluateCallErrorFallsBack(t *testing.T) {
	stub := &stubCompleter{err: errors.New("capability unavailable")}
	e := newTestEvaluator(stub)

	outcome, feedback := e.Evaluate(context.Background(), "q", "a", 1, "English")

	assert.Equal(t, OutcomeNeedsClarification, outcome)
	assert.NotEmpty(t, feedback)
}

func TestParseEvaluationTokenInSentence(t *testing.T) {
	outcome, feedback, err := parseEvaluation("Classification: ADEQUATE\nWell done.")
	require.NoError(t, err)
	assert.Equal(t, OutcomeAdequate, outcome)
	assert.Equal(t, "Well done.", feedback)
}
