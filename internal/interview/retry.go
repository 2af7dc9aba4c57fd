package interview

import "github.com/Devp21/talentscout-hiring-chatbot/internal/evaluator"

// Decision is the progression verdict after one attempt.
type Decision int

const (
	RetrySameQuestion Decision = iota
	AdvanceToNextQuestion
)

// MaxAttempts is how many attempts a candidate gets per question.
const MaxAttempts = 2

// Decide applies the retry policy to one attempt:
//
//	ADEQUATE            -> advance, regardless of attempt number
//	non-ADEQUATE, try 1 -> retry the same question
//	try 2               -> advance, the outcome is recorded verbatim
//
// Locally rejected answers follow the same rule; a rejection still
// consumes an attempt.
func Decide(attempt int, outcome evaluator.Outcome) Decision {
	if outcome == evaluator.OutcomeAdequate {
		return AdvanceToNextQuestion
	}

	if attempt >= MaxAttempts {
		return AdvanceToNextQuestion
	}

	return RetrySameQuestion
}
