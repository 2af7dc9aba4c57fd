package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Devp21/talentscout-hiring-chatbot/internal/interview"
)

const (
	backupsDir    = "backups"
	analyticsFile = "analytics.json"
)

// Service persists closed session records as JSON files grouped by
// date, keeps a backup copy of each, and maintains an aggregate
// analytics file across all sessions.
type Service struct {
	baseDir string
	logger  *zap.Logger

	mu sync.Mutex
}

// Analytics is the aggregate updated once per closed session.
type Analytics struct {
	TotalSessions    int64   `json:"total_sessions"`
	Completed        int64   `json:"completed"`
	EndedEarly       int64   `json:"ended_early"`
	AnswersRecorded  int64   `json:"answers_recorded"`
	AverageSentiment float64 `json:"average_sentiment"`
	UpdatedAt        string  `json:"updated_at"`
}

func New(baseDir string, logger *zap.Logger) *Service {
	return &Service{
		baseDir: baseDir,
		logger:  logger,
	}
}

// SaveSession writes the record into <base>/<YYYY-MM-DD>/, mirrors it
// under <base>/backups/<YYYY-MM-DD>/ and folds it into the analytics
// aggregate.
func (s *Service) SaveSession(record *interview.SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := record.ClosedAt
	if day.IsZero() {
		day = record.CreatedAt
	}

	jsonData, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializing session record: %w", err)
	}

	filename := fmt.Sprintf("candidate_%s.json", record.SessionID)
	dateDir := day.Format("2006-01-02")

	for _, dir := range []string{
		filepath.Join(s.baseDir, dateDir),
		filepath.Join(s.baseDir, backupsDir, dateDir),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory %s: %w", dir, err)
		}
		path := filepath.Join(dir, filename)
		if err := os.WriteFile(path, jsonData, 0644); err != nil {
			return fmt.Errorf("error writing file %s: %w", path, err)
		}
	}

	if err := s.updateAnalytics(record); err != nil {
		// The primary record is already on disk; a broken aggregate
		// must not fail the handoff.
		s.logger.Warn("analytics update failed", zap.Error(err))
	}

	s.logger.Info("session record saved",
		zap.String("session_id", record.SessionID),
		zap.String("date", dateDir),
	)

	return nil
}

// LoadSession finds a saved record by session ID across date
// directories.
func (s *Service) LoadSession(sessionID string) (*interview.SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filename := fmt.Sprintf("candidate_%s.json", sessionID)

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", s.baseDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() || entry.Name() == backupsDir {
			continue
		}

		path := filepath.Join(s.baseDir, entry.Name(), filename)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var record interview.SessionRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("error deserializing %s: %w", path, err)
		}
		return &record, nil
	}

	return nil, fmt.Errorf("session record %s not found", sessionID)
}

// ListSessions returns the IDs of all saved records.
func (s *Service) ListSessions() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.baseDir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", s.baseDir, err)
	}

	var ids []string
	for _, entry := range entries {
		if !entry.IsDir() || entry.Name() == backupsDir {
			continue
		}

		files, err := os.ReadDir(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}

		for _, file := range files {
			name := file.Name()
			if strings.HasPrefix(name, "candidate_") && strings.HasSuffix(name, ".json") {
				ids = append(ids, strings.TrimSuffix(strings.TrimPrefix(name, "candidate_"), ".json"))
			}
		}
	}

	return ids, nil
}

func (s *Service) updateAnalytics(record *interview.SessionRecord) error {
	path := filepath.Join(s.baseDir, analyticsFile)

	var analytics Analytics
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &analytics); err != nil {
			return fmt.Errorf("error parsing %s: %w", path, err)
		}
	}

	prev := float64(analytics.TotalSessions)
	analytics.AverageSentiment = (analytics.AverageSentiment*prev + record.Sentiment.Mean) / (prev + 1)
	analytics.TotalSessions++
	analytics.AnswersRecorded += int64(len(record.Attempts))

	switch record.Stage {
	case interview.StageCompleted:
		analytics.Completed++
	case interview.StageEnded:
		analytics.EndedEarly++
	}

	analytics.UpdatedAt = time.Now().Format(time.RFC3339)

	jsonData, err := json.MarshalIndent(analytics, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializing analytics: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("error writing file %s: %w", path, err)
	}

	return nil
}
