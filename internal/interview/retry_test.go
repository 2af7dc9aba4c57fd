package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Devp21/talentscout-hiring-chatbot/internal/evaluator"
)

func TestDecide(t *testing.T) {
	cases := []struct {
		name     string
		attempt  int
		outcome  evaluator.Outcome
		expected Decision
	}{
		{"adequate on first attempt", 1, evaluator.OutcomeAdequate, AdvanceToNextQuestion},
		{"adequate on second attempt", 2, evaluator.OutcomeAdequate, AdvanceToNextQuestion},
		{"needs clarification on first attempt", 1, evaluator.OutcomeNeedsClarification, RetrySameQuestion},
		{"irrelevant on first attempt", 1, evaluator.OutcomeIrrelevant, RetrySameQuestion},
		{"needs clarification on second attempt", 2, evaluator.OutcomeNeedsClarification, AdvanceToNextQuestion},
		{"irrelevant on second attempt", 2, evaluator.OutcomeIrrelevant, AdvanceToNextQuestion},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Decide(tc.attempt, tc.outcome))
		})
	}
}
