package validator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Devp21/talentscout-hiring-chatbot/internal/config"
)

// Outcome is the result of the heuristic answer pre-check.
type Outcome string

const (
	OutcomeValid              Outcome = "valid"
	OutcomeBlankOrTooShort    Outcome = "blank_or_too_short"
	OutcomeGibberish          Outcome = "gibberish"
	OutcomeInsufficientDetail Outcome = "insufficient_detail"
)

// Validator runs local heuristics over a raw answer before any
// semantic evaluation is attempted. It is a pure check: no side
// effects, no external calls.
type Validator struct {
	cfg config.ValidationConfig
}

func New(cfg config.ValidationConfig) *Validator {
	return &Validator{cfg: cfg}
}

// Validate applies the rules in order, first match wins:
// blank/too short, then gibberish, then insufficient detail.
func (v *Validator) Validate(raw string) Outcome {
	text := strings.TrimSpace(raw)

	if text == "" || utf8.RuneCountInString(text) < v.cfg.MinChars {
		return OutcomeBlankOrTooShort
	}

	if dominantRuneRatio(text) > v.cfg.MaxRepeatRatio {
		return OutcomeGibberish
	}

	if longestAlphaRun(text) < v.cfg.MinAlphaRun {
		return OutcomeGibberish
	}

	if len(strings.Fields(text)) < v.cfg.MinTokens {
		return OutcomeInsufficientDetail
	}

	return OutcomeValid
}

// CorrectivePrompt returns the locally generated re-prompt shown to
// the candidate when an answer is rejected before evaluation.
func CorrectivePrompt(outcome Outcome) string {
	switch outcome {
	case OutcomeBlankOrTooShort:
		return "Your answer looks blank or very short. Please provide a more detailed answer."
	case OutcomeGibberish:
		return "I couldn't make sense of that answer. Please answer the question in full sentences."
	case OutcomeInsufficientDetail:
		return "Could you please elaborate more on your answer or provide more specific details?"
	default:
		return ""
	}
}

// dominantRuneRatio returns the share of the text taken by its most
// frequent non-space rune. Keyboard mashing tends to be dominated by
// one character.
func dominantRuneRatio(text string) float64 {
	counts := make(map[rune]int)
	total := 0

	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		counts[r]++
		total++
	}

	if total == 0 {
		return 1
	}

	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}

	return float64(max) / float64(total)
}

// longestAlphaRun returns the length of the longest consecutive run
// of letters in the text.
func longestAlphaRun(text string) int {
	longest, current := 0, 0

	for _, r := range text {
		if unicode.IsLetter(r) {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}

	return longest
}
