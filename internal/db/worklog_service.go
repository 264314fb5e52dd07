package db

import (
	"errors"
	"fmt"
	"iter"

	"gorm.io/gorm"

	"github.com/dkaragoz/clockwise/internal/models"
)

// ErrDuplicateDate is returned when a log for the entry's calendar date
// already exists and the caller did not ask to overwrite it.
var ErrDuplicateDate = errors.New("a log for this date already exists")

// SaveLog persists a work log entry. The history keeps at most one
// entry per calendar date: a conflicting save fails with
// ErrDuplicateDate unless overwrite is set, in which case the old entry
// is replaced.
func SaveLog(entry models.WorkLog, overwrite bool) (*models.WorkLog, error) {
	var existing models.WorkLog
	err := DB.Where("date = ?", entry.Date).First(&existing).Error
	switch {
	case err == nil:
		if !overwrite {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDate, entry.Date)
		}
		if err := DB.Delete(&existing).Error; err != nil {
			return nil, err
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	if err := DB.Create(&entry).Error; err != nil {
		return nil, err
	}

	return &entry, nil
}

// GetLogs returns all saved shifts, newest first. Ties on timestamp
// keep insertion order.
func GetLogs() ([]models.WorkLog, error) {
	var logs []models.WorkLog

	err := DB.Order("timestamp_millis DESC, created_at ASC").Find(&logs).Error
	if err != nil {
		return nil, err
	}

	return logs, nil
}

// AllLogs returns a restartable sequence over the saved shifts, newest
// first. Each range restarts the query, so the sequence always reflects
// the current store.
func AllLogs() iter.Seq[models.WorkLog] {
	return func(yield func(models.WorkLog) bool) {
		logs, err := GetLogs()
		if err != nil {
			return
		}
		for _, log := range logs {
			if !yield(log) {
				return
			}
		}
	}
}

// CountLogs returns the number of saved shifts.
func CountLogs() (int64, error) {
	var count int64
	err := DB.Model(&models.WorkLog{}).Count(&count).Error
	return count, err
}

// ClearLogs deletes the entire shift history. Callers are expected to
// confirm with the user first.
func ClearLogs() error {
	return DB.Where("1 = 1").Delete(&models.WorkLog{}).Error
}
