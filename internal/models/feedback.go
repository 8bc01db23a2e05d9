package models

import "time"

// Feedback kinds accepted by the store.
const (
	FeedbackLike    = "like"
	FeedbackDislike = "dislike"
)

// FeedbackRecord is one immutable like/dislike event. Records are append-only:
// never updated, never deleted. Content is truncated to MaxFeedbackContentLen
// runes before storage.
type FeedbackRecord struct {
	ID         uint      `gorm:"primarykey" json:"-"`
	Timestamp  time.Time `gorm:"not null" json:"timestamp"`
	UserID     string    `gorm:"type:varchar(36);not null;index" json:"user_id"`
	ResponseID string    `gorm:"type:varchar(36);not null" json:"response_id"`
	Content    string    `gorm:"type:text" json:"content"`
	Kind       string    `gorm:"size:10;not null" json:"kind"`
}

// MaxFeedbackContentLen caps stored response content so a single record
// cannot grow without bound.
const MaxFeedbackContentLen = 500
