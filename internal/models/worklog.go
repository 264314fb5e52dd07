package models

import (
	"time"
)

// DateLayout is the calendar-date form used for duplicate detection.
// One WorkLog per calendar date.
const DateLayout = "2006-01-02"

// WorkLog represents one completed (or projected) shift in the history
type WorkLog struct {
	ID        string    `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Date            string `gorm:"not null;index" json:"date"` // YYYY-MM-DD
	LoginDisplay    string `gorm:"not null" json:"login_time"` // e.g. "9:00 AM"
	LogoutDisplay   string `gorm:"not null" json:"logout_time"`
	TimestampMillis int64  `gorm:"not null" json:"timestamp"`
}

// DisplayDate renders the log's date like "Mon, Jan 2" for lists.
func (w WorkLog) DisplayDate() string {
	d, err := time.ParseInLocation(DateLayout, w.Date, time.Local)
	if err != nil {
		return w.Date
	}
	return d.Format("Mon, Jan 2")
}
