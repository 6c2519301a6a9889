package calendar

import (
	"fmt"
	"time"

	"github.com/username/assistant-bot/pkg/dateutil"
)

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
)

func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	}
	return "unknown"
}

// maxShiftDays bounds the search for the next working day
const maxShiftDays = 31

// DayInfo represents information about a specific day
type DayInfo struct {
	Date      time.Time
	Type      DayType
	IsWorkday bool
	Note      string
}

// Calendar interface for checking working days
type Calendar interface {
	// IsWorkday checks if the given date is a working day
	IsWorkday(date time.Time) (bool, error)

	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(date time.Time) (*DayInfo, error)
}

// WeekendCalendar treats Monday-Friday as working days and nothing else
type WeekendCalendar struct{}

// NewWeekendCalendar creates a new WeekendCalendar
func NewWeekendCalendar() *WeekendCalendar {
	return &WeekendCalendar{}
}

// IsWorkday checks if the given date is a working day
func (WeekendCalendar) IsWorkday(date time.Time) (bool, error) {
	return dateutil.IsWeekday(date), nil
}

// GetDayInfo returns detailed info for a specific day
func (WeekendCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	info := &DayInfo{
		Date:      dateutil.StartOfDay(date),
		Type:      DayTypeWorkday,
		IsWorkday: true,
	}
	if dateutil.IsWeekend(date) {
		info.Type = DayTypeWeekend
		info.IsWorkday = false
	}
	return info, nil
}

// NextWorkday returns the first working day on or after date
func NextWorkday(cal Calendar, date time.Time) (time.Time, error) {
	day := dateutil.StartOfDay(date)
	for i := 0; i <= maxShiftDays; i++ {
		isWorkday, err := cal.IsWorkday(day)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to check %s: %w", dateutil.FormatISODate(day), err)
		}
		if isWorkday {
			return day, nil
		}
		day = day.AddDate(0, 0, 1)
	}

	return time.Time{}, fmt.Errorf("no working day within %d days of %s", maxShiftDays, dateutil.FormatISODate(date))
}
