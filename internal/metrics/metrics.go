package metrics

import (
	"sync"
	"time"
)

// Metrics are process-wide interview counters, safe for concurrent
// sessions.
type Metrics struct {
	mu                 sync.RWMutex
	SessionsStarted    int64
	SessionsCompleted  int64
	SessionsEnded      int64
	QuestionsGenerated int64
	AnswersEvaluated   int64
	AnswersRejected    int64
	FallbacksUsed      int64
	APICallsTotal      int64
	APICallsSuccessful int64
	LastUpdateTime     time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{
		LastUpdateTime: time.Now(),
	}
}

func (m *Metrics) IncrementSessionsStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SessionsStarted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementSessionsCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SessionsCompleted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementSessionsEnded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SessionsEnded++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) AddQuestionsGenerated(n int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QuestionsGenerated += n
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementAnswersEvaluated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnswersEvaluated++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementAnswersRejected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnswersRejected++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementFallbacksUsed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FallbacksUsed++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementAPICall(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.APICallsTotal++
	if success {
		m.APICallsSuccessful++
	}
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) GetSnapshot() Metrics {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Metrics{
		SessionsStarted:    m.SessionsStarted,
		SessionsCompleted:  m.SessionsCompleted,
		SessionsEnded:      m.SessionsEnded,
		QuestionsGenerated: m.QuestionsGenerated,
		AnswersEvaluated:   m.AnswersEvaluated,
		AnswersRejected:    m.AnswersRejected,
		FallbacksUsed:      m.FallbacksUsed,
		APICallsTotal:      m.APICallsTotal,
		APICallsSuccessful: m.APICallsSuccessful,
		LastUpdateTime:     m.LastUpdateTime,
	}
}
