package interview

import (
	"errors"
	"time"

	"github.com/Devp21/talentscout-hiring-chatbot/internal/evaluator"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/questions"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/sentiment"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/validator"
)

// Stage is the coarse phase of a session.
type Stage string

const (
	StageConsent   Stage = "consent"
	StageForm      Stage = "form"
	StageInterview Stage = "interview"
	StageCompleted Stage = "completed"
	StageEnded     Stage = "ended"
)

// TerminationReason records how a session closed.
type TerminationReason string

const (
	TerminationNone        TerminationReason = ""
	TerminationCompleted   TerminationReason = "completed"
	TerminationEndedByUser TerminationReason = "ended_by_user"
)

// Contract errors. These indicate misuse of the engine interface by
// the calling collaborator, not runtime conditions; everything that
// can go wrong during a turn is absorbed by fallbacks instead.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionClosed   = errors.New("session already reached a terminal stage")
)

// CandidateProfile is the candidate data collected during the Form
// stage. Immutable once the stage completes.
type CandidateProfile struct {
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	ExperienceYears int       `json:"experience_years"`
	Position        string    `json:"position"`
	Location        string    `json:"location"`
	TechStack       []string  `json:"tech_stack"`
	Language        string    `json:"language"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

// AttemptRecord is one candidate answer toward one question.
// Immutable once appended. Evaluation is empty when the local
// pre-check rejected the answer before semantic evaluation.
type AttemptRecord struct {
	QuestionNumber int               `json:"question_number"`
	Question       string            `json:"question"`
	Answer         string            `json:"answer"`
	Attempt        int               `json:"attempt"`
	Validation     validator.Outcome `json:"validation"`
	Evaluation     evaluator.Outcome `json:"evaluation,omitempty"`
	Feedback       string            `json:"feedback"`
	SentimentScore float64           `json:"sentiment_score"`
	SentimentLabel string            `json:"sentiment_label"`
	CreatedAt      time.Time         `json:"created_at"`
}

// SessionRecord is the aggregate for one interview session, mutated
// only by the engine and handed to the persistence collaborator once
// the session reaches a terminal stage.
type SessionRecord struct {
	SessionID          string               `json:"session_id"`
	Profile            CandidateProfile     `json:"candidate"`
	Questions          []questions.Question `json:"questions,omitempty"`
	Attempts           []AttemptRecord      `json:"attempts"`
	Stage              Stage                `json:"stage"`
	Cursor             int                  `json:"current_question"`
	Attempt            int                  `json:"current_attempt"`
	Sentiment          sentiment.Summary    `json:"sentiment"`
	Termination        TerminationReason    `json:"termination_reason,omitempty"`
	QuestionsCompleted int                  `json:"questions_completed"`
	CreatedAt          time.Time            `json:"created_at"`
	ClosedAt           time.Time            `json:"closed_at,omitempty"`
}

// Terminal reports whether the record reached a terminal stage.
func (r *SessionRecord) Terminal() bool {
	return r.Stage == StageCompleted || r.Stage == StageEnded
}

// TurnResult is what the engine returns for one submitted turn: the
// next prompt to display and where the session stands.
type TurnResult struct {
	SessionID string `json:"session_id"`
	Prompt    string `json:"prompt"`
	Stage     Stage  `json:"stage"`
	Terminal  bool   `json:"terminal"`
}

// Recorder is the persistence collaborator. It receives a completed
// or terminated SessionRecord; on-disk layout, grouping and backups
// are its concern.
type Recorder interface {
	SaveSession(record *SessionRecord) error
}
