package addressbook

import (
	"fmt"
	"sort"
	"time"

	"github.com/username/assistant-bot/internal/calendar"
	"github.com/username/assistant-bot/pkg/dateutil"
	"go.uber.org/zap"
)

// DefaultHorizonDays is the default size of the upcoming-birthday window
const DefaultHorizonDays = 7

// LeapDayPolicy decides where a February 29 birthday falls in a common year
type LeapDayPolicy string

const (
	LeapDayMarch1 LeapDayPolicy = "march1"
	LeapDayFeb28  LeapDayPolicy = "feb28"
	LeapDaySkip   LeapDayPolicy = "skip"
)

// ParseLeapDayPolicy validates a policy name; empty means LeapDayMarch1
func ParseLeapDayPolicy(s string) (LeapDayPolicy, error) {
	switch p := LeapDayPolicy(s); p {
	case "":
		return LeapDayMarch1, nil
	case LeapDayMarch1, LeapDayFeb28, LeapDaySkip:
		return p, nil
	}
	return "", fmt.Errorf("unknown leap day policy %q (want march1, feb28 or skip)", s)
}

// UpcomingBirthday is a contact whose birthday falls inside the window,
// with the date it is observed on after the working-day shift
type UpcomingBirthday struct {
	Name string
	Date time.Time
}

// ISODate returns Date as YYYY-MM-DD
func (u UpcomingBirthday) ISODate() string {
	return dateutil.FormatISODate(u.Date)
}

// BirthdayPlanner finds birthdays inside a window of days and moves the ones
// landing on a day off to the next working day
type BirthdayPlanner struct {
	calendar calendar.Calendar
	leapDay  LeapDayPolicy
	logger   *zap.Logger
}

// NewBirthdayPlanner creates a new planner
func NewBirthdayPlanner(cal calendar.Calendar, leapDay LeapDayPolicy, logger *zap.Logger) *BirthdayPlanner {
	if cal == nil {
		cal = calendar.NewWeekendCalendar()
	}
	if leapDay == "" {
		leapDay = LeapDayMarch1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BirthdayPlanner{
		calendar: cal,
		leapDay:  leapDay,
		logger:   logger,
	}
}

// DefaultBirthdayPlanner uses the weekend rule and the March 1 leap-day policy
func DefaultBirthdayPlanner() *BirthdayPlanner {
	return NewBirthdayPlanner(nil, LeapDayMarch1, nil)
}

// Upcoming returns the records whose next birthday is between today and
// today+days inclusive, sorted by observed date. Inclusion is decided on the
// actual anniversary; only the reported date is shifted.
func (p *BirthdayPlanner) Upcoming(book *Book, today time.Time, days int) ([]UpcomingBirthday, error) {
	if days < 0 {
		return nil, &ValidationError{Field: "days", Message: "horizon must not be negative"}
	}
	today = dateutil.StartOfDay(today)

	var upcoming []UpcomingBirthday
	for _, record := range book.All() {
		birthday, ok := record.Birthday()
		if !ok {
			continue
		}

		candidate, ok := p.nextAnniversary(birthday.Date(), today)
		if !ok {
			p.logger.Warn("No birthday anniversary this year, skipping",
				zap.String("name", record.Name()),
				zap.String("birthday", birthday.String()))
			continue
		}

		diff := dateutil.DaysBetween(today, candidate)
		if diff < 0 || diff > days {
			continue
		}

		observed, err := calendar.NextWorkday(p.calendar, candidate)
		if err != nil {
			return nil, fmt.Errorf("failed to shift birthday of %s: %w", record.Name(), err)
		}

		if observed.Equal(candidate) {
			p.logger.Debug("Upcoming birthday",
				zap.String("name", record.Name()),
				zap.String("anniversary", dateutil.FormatISODate(candidate)))
		} else {
			p.logShift(record.Name(), candidate, observed)
		}

		upcoming = append(upcoming, UpcomingBirthday{Name: record.Name(), Date: observed})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})

	return upcoming, nil
}

// logShift records why an anniversary was moved off its own date
func (p *BirthdayPlanner) logShift(name string, candidate, observed time.Time) {
	fields := []zap.Field{
		zap.String("name", name),
		zap.String("anniversary", dateutil.FormatISODate(candidate)),
		zap.String("observed", dateutil.FormatISODate(observed)),
	}

	info, err := p.calendar.GetDayInfo(candidate)
	if err != nil {
		fields = append(fields, zap.Error(err))
	} else {
		fields = append(fields, zap.Stringer("day_type", info.Type))
		if info.Note != "" {
			fields = append(fields, zap.String("note", info.Note))
		}
	}

	p.logger.Info("Birthday falls on a day off, moved to next working day", fields...)
}

// nextAnniversary returns the first anniversary of birth on or after today.
// It reports false only under LeapDaySkip when neither this year nor the
// next has a February 29.
func (p *BirthdayPlanner) nextAnniversary(birth, today time.Time) (time.Time, bool) {
	candidate, ok := p.anniversary(birth, today.Year(), today.Location())
	if !ok || candidate.Before(today) {
		candidate, ok = p.anniversary(birth, today.Year()+1, today.Location())
	}
	return candidate, ok
}

func (p *BirthdayPlanner) anniversary(birth time.Time, year int, loc *time.Location) (time.Time, bool) {
	month, day := birth.Month(), birth.Day()
	if month == time.February && day == 29 && !dateutil.IsLeapYear(year) {
		switch p.leapDay {
		case LeapDayFeb28:
			day = 28
		case LeapDaySkip:
			return time.Time{}, false
		default:
			return time.Date(year, time.March, 1, 0, 0, 0, 0, loc), true
		}
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc), true
}
