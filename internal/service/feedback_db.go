package service

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/pageza/nutrimentor/backend/internal/models"
)

// DBFeedbackStore keeps the feedback log in the relational database. It
// implements the same append-only contract as CSVFeedbackStore; the database
// serializes concurrent appends itself.
type DBFeedbackStore struct {
	db *gorm.DB
}

var _ IFeedbackStore = (*DBFeedbackStore)(nil)

func NewDBFeedbackStore(db *gorm.DB) *DBFeedbackStore {
	return &DBFeedbackStore{db: db}
}

func (s *DBFeedbackStore) Append(userID, responseID, kind, content string) error {
	record := models.FeedbackRecord{
		Timestamp:  time.Now().UTC(),
		UserID:     userID,
		ResponseID: responseID,
		Content:    truncateContent(content),
		Kind:       kind,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to create feedback record: %w", err)
	}
	return nil
}

func (s *DBFeedbackStore) Load(userID string) ([]models.FeedbackRecord, error) {
	var records []models.FeedbackRecord
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load feedback records: %w", err)
	}
	return records, nil
}
