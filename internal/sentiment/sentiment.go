package sentiment

import (
	"sync"

	"go.uber.org/zap"
)

// Scorer is the sentiment capability: it maps text to a polarity in
// [-1, 1]. Implementations must be safe for concurrent use.
type Scorer interface {
	Score(text string) (float64, error)
}

const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"

	// Polarity cutoffs for labeling a score.
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// Label classifies a polarity score.
func Label(score float64) string {
	switch {
	case score > positiveThreshold:
		return LabelPositive
	case score < negativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// Summary is the aggregate sentiment profile of a session.
type Summary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Label string  `json:"label"`
}

// Tracker maintains the running sentiment profile across all answers
// in one session. Observing never fails a turn: a scorer error is
// recorded as a neutral 0.0 and processing continues.
type Tracker struct {
	scorer Scorer
	logger *zap.Logger

	mu     sync.Mutex
	scores []float64
}

func NewTracker(scorer Scorer, logger *zap.Logger) *Tracker {
	return &Tracker{
		scorer: scorer,
		logger: logger,
	}
}

// Observe scores one submitted answer and appends it to the profile.
func (t *Tracker) Observe(text string) float64 {
	score, err := t.scorer.Score(text)
	if err != nil {
		t.logger.Warn("sentiment capture failed, recording neutral score",
			zap.Error(err),
		)
		score = 0
	}

	if score > 1 {
		score = 1
	}
	if score < -1 {
		score = -1
	}

	t.mu.Lock()
	t.scores = append(t.scores, score)
	t.mu.Unlock()

	return score
}

// Summary returns the aggregate over everything observed so far.
func (t *Tracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.scores) == 0 {
		return Summary{Label: LabelNeutral}
	}

	var sum float64
	for _, s := range t.scores {
		sum += s
	}
	mean := sum / float64(len(t.scores))

	return Summary{
		Count: len(t.scores),
		Mean:  mean,
		Label: Label(mean),
	}
}
