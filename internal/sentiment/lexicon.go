package sentiment

import (
	"strings"
	"unicode"
)

// LexiconScorer is the default local Scorer: a small polarity lexicon
// over word tokens. Good enough for tracking interview mood without
// an extra network call per turn.
type LexiconScorer struct{}

func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{}
}

var positiveWords = map[string]struct{}{
	"good": {}, "great": {}, "excellent": {}, "love": {}, "like": {},
	"enjoy": {}, "happy": {}, "excited": {}, "interesting": {}, "awesome": {},
	"best": {}, "easy": {}, "clear": {}, "helpful": {}, "thanks": {},
	"thank": {}, "nice": {}, "fun": {}, "confident": {}, "glad": {},
	"perfect": {}, "fantastic": {}, "amazing": {}, "wonderful": {}, "comfortable": {},
}

var negativeWords = map[string]struct{}{
	"bad": {}, "terrible": {}, "hate": {}, "dislike": {}, "hard": {},
	"difficult": {}, "confusing": {}, "confused": {}, "frustrated": {}, "frustrating": {},
	"annoying": {}, "boring": {}, "worst": {}, "awful": {}, "horrible": {},
	"angry": {}, "sad": {}, "stressed": {}, "unhappy": {}, "impossible": {},
	"problem": {}, "wrong": {}, "fail": {}, "failed": {}, "nervous": {},
}

// Score returns the normalized polarity of the text: the signed share
// of sentiment-bearing words among all tokens, in [-1, 1].
func (s *LexiconScorer) Score(text string) (float64, error) {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	if len(tokens) == 0 {
		return 0, nil
	}

	var polarity int
	for _, token := range tokens {
		if _, ok := positiveWords[token]; ok {
			polarity++
		}
		if _, ok := negativeWords[token]; ok {
			polarity--
		}
	}

	score := float64(polarity) / float64(len(tokens))
	if score > 1 {
		score = 1
	}
	if score < -1 {
		score = -1
	}

	return score, nil
}
