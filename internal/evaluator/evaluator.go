package evaluator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/Devp21/talentscout-hiring-chatbot/internal/metrics"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/prompts"
)

// Outcome is the semantic classification of a validated answer.
type Outcome string

const (
	OutcomeAdequate           Outcome = "ADEQUATE"
	OutcomeNeedsClarification Outcome = "NEEDS_CLARIFICATION"
	OutcomeIrrelevant         Outcome = "IRRELEVANT"
)

// ErrParse is returned internally when the model response cannot be
// mapped onto exactly one classification token.
var ErrParse = errors.New("evaluation response does not match expected shape")

const fallbackFeedback = "Thank you for your answer. Could you please elaborate a bit more or provide more specific details?"

// ChatCompleter is the language-generation capability consumed by the
// evaluator. Implementations must be safe for concurrent use.
type ChatCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Evaluator classifies answers through the external language
// capability. It holds no state between calls; every invocation is
// one outbound request.
type Evaluator struct {
	client  ChatCompleter
	timeout time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func New(client ChatCompleter, timeout time.Duration, m *metrics.Metrics, logger *zap.Logger) *Evaluator {
	return &Evaluator{
		client:  client,
		timeout: timeout,
		metrics: m,
		logger:  logger,
	}
}

// Evaluate classifies the answer and returns feedback for the
// candidate. External failures (timeout, malformed response) never
// propagate: the answer is downgraded to NEEDS_CLARIFICATION with
// generic feedback and the error is only logged.
func (e *Evaluator) Evaluate(ctx context.Context, question, answer string, experienceYears int, language string) (Outcome, string) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	prompt := prompts.BuildEvaluationPrompt(question, answer, experienceYears, language)

	response, err := e.client.Complete(ctx, prompt)
	if err != nil {
		e.logger.Warn("answer evaluation call failed, using fallback",
			zap.Error(err),
		)
		return e.fallback()
	}

	outcome, feedback, err := parseEvaluation(response)
	if err != nil {
		e.logger.Warn("answer evaluation response unparseable, using fallback",
			zap.Error(err),
			zap.String("response", truncate(response, 200)),
		)
		return e.fallback()
	}

	return outcome, feedback
}

func (e *Evaluator) fallback() (Outcome, string) {
	if e.metrics != nil {
		e.metrics.IncrementFallbacksUsed()
	}
	return OutcomeNeedsClarification, fallbackFeedback
}

// parseEvaluation enforces the expected response shape: exactly one
// classification token on the first line, feedback on the rest.
func parseEvaluation(response string) (Outcome, string, error) {
	response = strings.TrimSpace(response)
	if response == "" {
		return "", "", fmt.Errorf("%w: empty response", ErrParse)
	}

	firstLine := response
	rest := ""
	if idx := strings.IndexByte(response, '\n'); idx != -1 {
		firstLine = response[:idx]
		rest = strings.TrimSpace(response[idx+1:])
	}

	words := strings.FieldsFunc(strings.ToUpper(firstLine), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '_'
	})

	var found []Outcome
	// Exact word match only: "INADEQUATE" must not read as ADEQUATE. A
	// rambling first line mentioning several tokens counts as malformed.
	for _, candidate := range []Outcome{OutcomeAdequate, OutcomeNeedsClarification, OutcomeIrrelevant} {
		for _, w := range words {
			if w == string(candidate) {
				found = append(found, candidate)
				break
			}
		}
	}

	if len(found) != 1 {
		return "", "", fmt.Errorf("%w: found %d classification tokens in %q", ErrParse, len(found), firstLine)
	}

	feedback := rest
	if feedback == "" {
		feedback = feedbackFor(found[0])
	}

	return found[0], feedback, nil
}

// feedbackFor fills in candidate-facing feedback when the model only
// returned the bare token.
func feedbackFor(outcome Outcome) string {
	switch outcome {
	case OutcomeAdequate:
		return "Good answer! Moving to the next question."
	case OutcomeIrrelevant:
		return "That seems off-topic. Please address the question that was asked."
	default:
		return fallbackFeedback
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
