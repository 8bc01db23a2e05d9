package service

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pageza/nutrimentor/backend/internal/models"
)

var feedbackCSVHeader = []string{"timestamp", "user_id", "response_id", "content", "kind"}

// CSVFeedbackStore persists feedback as one append-only CSV log per user.
// Appends to the same user's log are serialized through a per-user mutex;
// different users never contend.
type CSVFeedbackStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

var _ IFeedbackStore = (*CSVFeedbackStore)(nil)

// NewCSVFeedbackStore creates a store rooted at dir. The directory and the
// per-user logs are created lazily on first write.
func NewCSVFeedbackStore(dir string) *CSVFeedbackStore {
	return &CSVFeedbackStore{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *CSVFeedbackStore) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

func (s *CSVFeedbackStore) filename(userID string) string {
	return filepath.Join(s.dir, fmt.Sprintf("user_%s_feedback.csv", userID))
}

// Append writes one feedback record to the user's log, creating the log with
// a header row if it does not exist yet. Content is truncated to
// models.MaxFeedbackContentLen runes before storage.
func (s *CSVFeedbackStore) Append(userID, responseID, kind, content string) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create feedback directory: %w", err)
	}

	filename := s.filename(userID)
	_, statErr := os.Stat(filename)
	needHeader := os.IsNotExist(statErr)

	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open feedback log: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if needHeader {
		if err := writer.Write(feedbackCSVHeader); err != nil {
			return fmt.Errorf("failed to write feedback header: %w", err)
		}
	}

	row := []string{
		time.Now().UTC().Format(time.RFC3339Nano),
		userID,
		responseID,
		truncateContent(content),
		kind,
	}
	if err := writer.Write(row); err != nil {
		return fmt.Errorf("failed to write feedback record: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush feedback record: %w", err)
	}
	return nil
}

// Load returns all records for a user in append order. A missing log is not
// an error: it returns an empty slice.
func (s *CSVFeedbackStore) Load(userID string) ([]models.FeedbackRecord, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	file, err := os.Open(s.filename(userID))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open feedback log: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read feedback log: %w", err)
	}

	var records []models.FeedbackRecord
	for i, row := range rows {
		if i == 0 || len(row) < 5 {
			// Header row, or a row a crashed writer left incomplete.
			continue
		}
		ts, _ := time.Parse(time.RFC3339Nano, row[0])
		records = append(records, models.FeedbackRecord{
			Timestamp:  ts,
			UserID:     row[1],
			ResponseID: row[2],
			Content:    row[3],
			Kind:       row[4],
		})
	}
	return records, nil
}

func truncateContent(content string) string {
	runes := []rune(content)
	if len(runes) > models.MaxFeedbackContentLen {
		return string(runes[:models.MaxFeedbackContentLen])
	}
	return content
}
