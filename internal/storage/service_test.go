package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Devp21/talentscout-hiring-chatbot/internal/interview"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/sentiment"
)

func testRecord(id string, stage interview.Stage, mean float64) *interview.SessionRecord {
	closed := time.Date(2026, 8, 23, 15, 4, 5, 0, time.UTC)
	return &interview.SessionRecord{
		SessionID: id,
		Profile: interview.CandidateProfile{
			FullName:  "Jordan Lee",
			Email:     "jordan.lee@example.com",
			TechStack: []string{"Python", "SQL"},
			Language:  "English",
		},
		Attempts: []interview.AttemptRecord{
			{QuestionNumber: 1, Answer: "an answer", Attempt: 1},
		},
		Stage:              stage,
		Sentiment:          sentiment.Summary{Count: 1, Mean: mean, Label: sentiment.Label(mean)},
		QuestionsCompleted: 1,
		CreatedAt:          closed.Add(-10 * time.Minute),
		ClosedAt:           closed,
	}
}

func TestSaveSessionWritesRecordAndBackup(t *testing.T) {
	baseDir := t.TempDir()
	s := New(baseDir, zap.NewNop())

	record := testRecord("abc-123", interview.StageCompleted, 0.2)
	require.NoError(t, s.SaveSession(record))

	primary := filepath.Join(baseDir, "2026-08-23", "candidate_abc-123.json")
	backup := filepath.Join(baseDir, "backups", "2026-08-23", "candidate_abc-123.json")

	for _, path := range []string{primary, backup} {
		data, err := os.ReadFile(path)
		require.NoError(t, err, path)

		var loaded interview.SessionRecord
		require.NoError(t, json.Unmarshal(data, &loaded))
		assert.Equal(t, "abc-123", loaded.SessionID)
		assert.Equal(t, interview.StageCompleted, loaded.Stage)
	}
}

func TestLoadSession(t *testing.T) {
	baseDir := t.TempDir()
	s := New(baseDir, zap.NewNop())

	require.NoError(t, s.SaveSession(testRecord("abc-123", interview.StageCompleted, 0)))

	record, err := s.LoadSession("abc-123")
	require.NoError(t, err)
	assert.Equal(t, "Jordan Lee", record.Profile.FullName)
	assert.Len(t, record.Attempts, 1)

	_, err = s.LoadSession("missing")
	assert.Error(t, err)
}

func TestListSessions(t *testing.T) {
	baseDir := t.TempDir()
	s := New(baseDir, zap.NewNop())

	ids, err := s.ListSessions()
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, s.SaveSession(testRecord("one", interview.StageCompleted, 0)))
	require.NoError(t, s.SaveSession(testRecord("two", interview.StageEnded, 0)))

	ids, err = s.ListSessions()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"one", "two"}, ids)
}

func TestAnalyticsAggregation(t *testing.T) {
	baseDir := t.TempDir()
	s := New(baseDir, zap.NewNop())

	require.NoError(t, s.SaveSession(testRecord("one", interview.StageCompleted, 0.4)))
	require.NoError(t, s.SaveSession(testRecord("two", interview.StageEnded, -0.2)))

	data, err := os.ReadFile(filepath.Join(baseDir, analyticsFile))
	require.NoError(t, err)

	var analytics Analytics
	require.NoError(t, json.Unmarshal(data, &analytics))

	assert.Equal(t, int64(2), analytics.TotalSessions)
	assert.Equal(t, int64(1), analytics.Completed)
	assert.Equal(t, int64(1), analytics.EndedEarly)
	assert.Equal(t, int64(2), analytics.AnswersRecorded)
	assert.InDelta(t, 0.1, analytics.AverageSentiment, 0.0001)
	assert.NotEmpty(t, analytics.UpdatedAt)
}
