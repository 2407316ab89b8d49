package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common fields for all models with UUID primary keys
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}

// DayKey normalizes a timestamp to its business-day key: date only, UTC midnight.
// All DailyTask rows and queries go through this so that a day compares equal
// regardless of the time-of-day the caller held.
func DayKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKeyString formats a business-day key as YYYY-MM-DD.
func DayKeyString(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDayKey parses a YYYY-MM-DD string into a business-day key.
func ParseDayKey(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}
