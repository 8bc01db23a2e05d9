package models

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
}

// UserProfile carries the nutrition attributes rendered into every prompt.
// BMI is derived from height and weight and recomputed on update, never set
// directly by clients.
type UserProfile struct {
	ID                uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID            uuid.UUID      `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Age               int            `json:"age"`
	Gender            string         `gorm:"size:20" json:"gender"`
	Diet              string         `gorm:"size:50" json:"diet"`
	Goal              string         `gorm:"size:100" json:"goal"`
	HeightCm          float64        `json:"height_cm"`
	WeightKg          float64        `json:"weight_kg"`
	BMI               float64        `json:"bmi"`
	MedicalConditions string         `gorm:"type:text" json:"medical_conditions"`
	PreferredLanguage string         `gorm:"size:20;not null;default:'en-US'" json:"preferred_language"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// CalculateBMI returns the body mass index for the given height and weight,
// rounded to one decimal place. Returns 0 when height is not set.
func CalculateBMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	meters := heightCm / 100
	bmi := weightKg / (meters * meters)
	return math.Round(bmi*10) / 10
}
