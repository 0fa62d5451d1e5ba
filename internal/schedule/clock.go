package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidTime = errors.New("invalid time")

// Clock is a 24-hour wall clock time.
type Clock struct {
	Hour   int
	Minute int
}

// Slot returns the half-hour slot index counted from midnight.
func (c Clock) Slot() int {
	return c.Hour*2 + c.Minute/30
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ParseClock parses "H:MM am|pm". The meridiem may be attached to the
// minutes; tokens after it (a zone abbreviation, for instance) are ignored.
// A missing meridiem is read as am.
func ParseClock(s string) (Clock, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Clock{}, fmt.Errorf("%w: empty", ErrInvalidTime)
	}

	hours, rest, ok := strings.Cut(fields[0], ":")
	if !ok {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	minutes := strings.TrimRight(rest, "aApPmM")
	meridiem := strings.ToLower(rest[len(minutes):])
	if meridiem == "" && len(fields) > 1 {
		meridiem = strings.ToLower(fields[1])
	}

	hour, err := strconv.Atoi(hours)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	minute, err := strconv.Atoi(minutes)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	isPM := meridiem == "pm"
	if isPM && hour < 12 {
		hour += 12
	}
	if !isPM && hour == 12 {
		hour = 0
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("%w: %q out of range", ErrInvalidTime, s)
	}

	return Clock{Hour: hour, Minute: minute}, nil
}

// ParseRange parses "start - end".
func ParseRange(s string) (Clock, Clock, error) {
	from, to, ok := strings.Cut(s, " - ")
	if !ok {
		return Clock{}, Clock{}, fmt.Errorf("%w: range %q", ErrInvalidTime, s)
	}

	start, err := ParseClock(from)
	if err != nil {
		return Clock{}, Clock{}, err
	}
	end, err := ParseClock(to)
	if err != nil {
		return Clock{}, Clock{}, err
	}

	return start, end, nil
}
