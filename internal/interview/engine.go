package interview

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Devp21/talentscout-hiring-chatbot/internal/config"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/evaluator"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/metrics"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/questions"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/sentiment"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/validator"
)

// session pairs the record with everything per-session that is not
// part of the persisted aggregate. One turn is resolved fully before
// the next is accepted; the mutex serializes turns per session.
type session struct {
	mu           sync.Mutex
	record       *SessionRecord
	tracker      *sentiment.Tracker
	formIndex    formField
	formProfile  CandidateProfile
	lastActivity time.Time
}

// Engine is the stage state machine sequencing Consent -> Form ->
// Interview -> Completion/Ended. It owns all live sessions; each
// session is an independent aggregate with no shared mutable state.
type Engine struct {
	cfg       *config.Config
	validator *validator.Validator
	evaluator *evaluator.Evaluator
	generator *questions.Generator
	scorer    sentiment.Scorer
	recorder  Recorder
	metrics   *metrics.Metrics
	logger    *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*session
}

func NewEngine(
	cfg *config.Config,
	val *validator.Validator,
	eval *evaluator.Evaluator,
	gen *questions.Generator,
	scorer sentiment.Scorer,
	recorder Recorder,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Engine {
	e := &Engine{
		cfg:       cfg,
		validator: val,
		evaluator: eval,
		generator: gen,
		scorer:    scorer,
		recorder:  recorder,
		metrics:   m,
		logger:    logger,
		sessions:  make(map[string]*session),
	}
	e.startSessionCleanup()
	return e
}

func (e *Engine) startSessionCleanup() {
	ticker := time.NewTicker(1 * time.Hour)
	go func() {
		for range ticker.C {
			e.cleanupInactiveSessions()
		}
	}()
}

func (e *Engine) cleanupInactiveSessions() {
	e.mu.Lock()
	defer e.mu.Unlock()

	cutoff := time.Now().Add(-24 * time.Hour)
	for id, sess := range e.sessions {
		if sess.lastActivity.Before(cutoff) {
			delete(e.sessions, id)
		}
	}
}

// StartSession creates a new session in the Consent stage and returns
// the consent prompt.
func (e *Engine) StartSession() *TurnResult {
	record := &SessionRecord{
		SessionID: uuid.New().String(),
		Stage:     StageConsent,
		Attempt:   1,
		CreatedAt: time.Now(),
	}

	sess := &session{
		record:       record,
		tracker:      sentiment.NewTracker(e.scorer, e.logger),
		lastActivity: time.Now(),
	}

	e.mu.Lock()
	e.sessions[record.SessionID] = sess
	e.mu.Unlock()

	e.metrics.IncrementSessionsStarted()
	e.logger.Info("session started", zap.String("session_id", record.SessionID))

	return &TurnResult{
		SessionID: record.SessionID,
		Prompt:    consentPrompt,
		Stage:     StageConsent,
	}
}

// SubmitTurn routes one user turn through the current stage. A turn
// against an unknown session or a session that already reached a
// terminal stage is a contract violation and returns an error; every
// runtime failure inside a turn is absorbed by a fallback instead.
func (e *Engine) SubmitTurn(ctx context.Context, sessionID, rawText string) (*TurnResult, error) {
	e.mu.RLock()
	sess, ok := e.sessions[sessionID]
	e.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.record.Terminal() {
		return nil, fmt.Errorf("%w: %s", ErrSessionClosed, sessionID)
	}

	sess.lastActivity = time.Now()
	text := strings.TrimSpace(rawText)

	switch sess.record.Stage {
	case StageConsent:
		return e.handleConsent(sess, text), nil
	case StageForm:
		return e.handleForm(ctx, sess, text), nil
	case StageInterview:
		return e.handleInterview(ctx, sess, text), nil
	default:
		return nil, fmt.Errorf("session %s is in unexpected stage %s", sessionID, sess.record.Stage)
	}
}

// Snapshot returns a copy of the session record for read-only use.
func (e *Engine) Snapshot(sessionID string) (*SessionRecord, error) {
	e.mu.RLock()
	sess, ok := e.sessions[sessionID]
	e.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	snapshot := *sess.record
	snapshot.Questions = append([]questions.Question(nil), sess.record.Questions...)
	snapshot.Attempts = append([]AttemptRecord(nil), sess.record.Attempts...)
	snapshot.Sentiment = sess.tracker.Summary()
	return &snapshot, nil
}

func isAffirmative(text string) bool {
	switch strings.ToLower(text) {
	case "yes", "y", "i consent", "agree", "i agree", "sure", "ok":
		return true
	}
	return false
}

func isDecline(text string) bool {
	switch strings.ToLower(text) {
	case "no", "n", "decline", "i do not consent", "i don't consent":
		return true
	}
	return false
}

func isTerminationKeyword(text string) bool {
	switch strings.ToLower(text) {
	case "end", "quit", "stop":
		return true
	}
	return false
}

func (e *Engine) handleConsent(sess *session, text string) *TurnResult {
	record := sess.record

	if isDecline(text) {
		e.closeSession(sess, StageEnded, TerminationEndedByUser)
		return &TurnResult{
			SessionID: record.SessionID,
			Prompt:    declineFarewell,
			Stage:     record.Stage,
			Terminal:  true,
		}
	}

	if !isAffirmative(text) {
		return &TurnResult{
			SessionID: record.SessionID,
			Prompt:    consentRePrompt,
			Stage:     record.Stage,
		}
	}

	record.Stage = StageForm
	sess.formIndex = fieldFullName

	return &TurnResult{
		SessionID: record.SessionID,
		Prompt:    formWelcome() + "\n\n" + e.fieldPrompt(sess.formIndex),
		Stage:     record.Stage,
	}
}

func (e *Engine) handleForm(ctx context.Context, sess *session, text string) *TurnResult {
	record := sess.record

	if msg := e.applyField(&sess.formProfile, sess.formIndex, text); msg != "" {
		return &TurnResult{
			SessionID: record.SessionID,
			Prompt:    "❌ " + msg + "\n\n" + e.fieldPrompt(sess.formIndex),
			Stage:     record.Stage,
		}
	}

	sess.formIndex++
	if sess.formIndex < fieldCount {
		return &TurnResult{
			SessionID: record.SessionID,
			Prompt:    e.fieldPrompt(sess.formIndex),
			Stage:     record.Stage,
		}
	}

	// All fields collected: freeze the profile and generate the
	// question set as part of the Form -> Interview transition.
	sess.formProfile.SubmittedAt = time.Now()
	record.Profile = sess.formProfile
	record.Questions = e.generator.Generate(ctx,
		record.Profile.TechStack, record.Profile.ExperienceYears, record.Profile.Language)
	record.Stage = StageInterview
	record.Cursor = 0
	record.Attempt = 1

	e.metrics.AddQuestionsGenerated(int64(len(record.Questions)))
	e.logger.Info("interview stage entered",
		zap.String("session_id", record.SessionID),
		zap.Strings("tech_stack", record.Profile.TechStack),
		zap.Int("questions", len(record.Questions)),
	)

	total := len(record.Questions)
	return &TurnResult{
		SessionID: record.SessionID,
		Prompt: interviewWelcome(record.Profile, total) + "\n\n" +
			formatQuestion(record.Questions[0], total),
		Stage: record.Stage,
	}
}

func (e *Engine) handleInterview(ctx context.Context, sess *session, text string) *TurnResult {
	record := sess.record

	if isTerminationKeyword(text) {
		e.closeSession(sess, StageEnded, TerminationEndedByUser)
		return &TurnResult{
			SessionID: record.SessionID,
			Prompt:    endedFarewell,
			Stage:     record.Stage,
			Terminal:  true,
		}
	}

	// Sentiment is orthogonal to correctness: every submitted answer
	// is observed, including ones the validator rejects.
	score := sess.tracker.Observe(text)

	total := len(record.Questions)
	question := record.Questions[record.Cursor]
	attempt := record.Attempt

	valOutcome := e.validator.Validate(text)

	var evalOutcome evaluator.Outcome
	var feedback string
	decisionOutcome := evaluator.OutcomeNeedsClarification

	if valOutcome == validator.OutcomeValid {
		evalOutcome, feedback = e.evaluator.Evaluate(ctx,
			question.Text, text, record.Profile.ExperienceYears, record.Profile.Language)
		decisionOutcome = evalOutcome
		e.metrics.IncrementAnswersEvaluated()
	} else {
		// Rejected before evaluation: locally generated corrective
		// prompt, evaluation stays absent, the attempt is consumed.
		feedback = validator.CorrectivePrompt(valOutcome)
		e.metrics.IncrementAnswersRejected()
	}

	record.Attempts = append(record.Attempts, AttemptRecord{
		QuestionNumber: question.Number,
		Question:       question.Text,
		Answer:         text,
		Attempt:        attempt,
		Validation:     valOutcome,
		Evaluation:     evalOutcome,
		Feedback:       feedback,
		SentimentScore: score,
		SentimentLabel: sentiment.Label(score),
		CreatedAt:      time.Now(),
	})

	if Decide(attempt, decisionOutcome) == RetrySameQuestion {
		record.Attempt = attempt + 1
		return &TurnResult{
			SessionID: record.SessionID,
			Prompt:    feedback + "\n\n" + formatRetry(question, total),
			Stage:     record.Stage,
		}
	}

	record.Cursor++
	record.Attempt = 1

	if record.Cursor >= total {
		e.closeSession(sess, StageCompleted, TerminationCompleted)
		return &TurnResult{
			SessionID: record.SessionID,
			Prompt:    feedback + "\n\n" + completedFarewell,
			Stage:     record.Stage,
			Terminal:  true,
		}
	}

	return &TurnResult{
		SessionID: record.SessionID,
		Prompt:    feedback + "\n\n" + formatQuestion(record.Questions[record.Cursor], total),
		Stage:     record.Stage,
	}
}

// closeSession moves the record to a terminal stage, freezes the
// aggregates and hands the record to the persistence collaborator.
// Persistence failure is logged but never surfaces to the candidate.
func (e *Engine) closeSession(sess *session, stage Stage, reason TerminationReason) {
	record := sess.record
	record.Stage = stage
	record.Termination = reason
	record.QuestionsCompleted = record.Cursor
	record.Sentiment = sess.tracker.Summary()
	record.ClosedAt = time.Now()

	switch stage {
	case StageCompleted:
		e.metrics.IncrementSessionsCompleted()
	case StageEnded:
		e.metrics.IncrementSessionsEnded()
	}

	if err := e.recorder.SaveSession(record); err != nil {
		e.logger.Error("failed to persist session record",
			zap.String("session_id", record.SessionID),
			zap.Error(err),
		)
	}

	e.logger.Info("session closed",
		zap.String("session_id", record.SessionID),
		zap.String("stage", string(stage)),
		zap.String("reason", string(reason)),
		zap.Int("questions_completed", record.QuestionsCompleted),
		zap.Int("attempts", len(record.Attempts)),
	)
}
