package calendar

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/username/assistant-bot/pkg/dateutil"
	"go.uber.org/zap"
)

// FileCalendar implements Calendar interface using a local text file of
// day overrides (public holidays, working weekends)
type FileCalendar struct {
	filePath string
	logger   *zap.Logger
	data     map[string]*DayInfo // key: "YYYY-MM-DD"
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
		data:     make(map[string]*DayInfo),
	}
}

// Load loads calendar data from file
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Format: YYYY-MM-DD type [note], fields separated by any whitespace
		// Example: 2025-01-01 holiday New Year
		fields := strings.Fields(line)
		if len(fields) < 2 {
			fc.logger.Warn("Invalid line format", zap.String("line", line))
			continue
		}

		date, err := time.ParseInLocation(dateutil.ISODateLayout, fields[0], time.Local)
		if err != nil {
			fc.logger.Warn("Failed to parse date", zap.String("date", fields[0]), zap.Error(err))
			continue
		}

		dayInfo := &DayInfo{Date: date}
		switch fields[1] {
		case "workday":
			dayInfo.Type = DayTypeWorkday
			dayInfo.IsWorkday = true
		case "weekend":
			dayInfo.Type = DayTypeWeekend
		case "holiday":
			dayInfo.Type = DayTypeHoliday
		default:
			fc.logger.Warn("Unknown day type", zap.String("type", fields[1]))
			continue
		}
		dayInfo.Note = strings.Join(fields[2:], " ")

		fc.data[dateutil.FormatISODate(date)] = dayInfo
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading calendar file: %w", err)
	}

	fc.logger.Info("Calendar file loaded",
		zap.String("file", fc.filePath),
		zap.Int("days", len(fc.data)))

	return nil
}

// IsWorkday checks if the given date is a working day
func (fc *FileCalendar) IsWorkday(date time.Time) (bool, error) {
	dayInfo, err := fc.GetDayInfo(date)
	if err != nil {
		return false, err
	}

	return dayInfo.IsWorkday, nil
}

// GetDayInfo returns detailed info for a specific day
func (fc *FileCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	key := dateutil.FormatISODate(date)
	dayInfo, ok := fc.data[key]
	if !ok {
		return nil, fmt.Errorf("day not found in calendar: %s", key)
	}

	return dayInfo, nil
}
