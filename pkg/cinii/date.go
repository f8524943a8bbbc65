// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cinii

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrUnrecognizedDateType is returned when a date-valued option cannot be
// expressed as a year or year-month calendar point.
var ErrUnrecognizedDateType = errors.New("unrecognized date type")

// CalendarPoint is a year with an optional month. Month 0 means the point
// has year precision only.
type CalendarPoint struct {
	Year  int
	Month int
}

// Year returns a year-precision calendar point.
func Year(y int) *CalendarPoint {
	return &CalendarPoint{Year: y}
}

// YearMonth returns a month-precision calendar point.
func YearMonth(y, m int) *CalendarPoint {
	return &CalendarPoint{Year: y, Month: m}
}

// FromTime truncates t to month precision.
func FromTime(t time.Time) *CalendarPoint {
	return &CalendarPoint{Year: t.Year(), Month: int(t.Month())}
}

// Format renders the point as YYYY or YYYYMM.
func (p CalendarPoint) Format() (string, error) {
	if p.Year < 0 || p.Year > 9999 {
		return "", fmt.Errorf("year %d: %w", p.Year, ErrUnrecognizedDateType)
	}
	switch {
	case p.Month == 0:
		return fmt.Sprintf("%04d", p.Year), nil
	case p.Month >= 1 && p.Month <= 12:
		return fmt.Sprintf("%04d%02d", p.Year, p.Month), nil
	}
	return "", fmt.Errorf("month %d: %w", p.Month, ErrUnrecognizedDateType)
}

// String returns the wire form, or a diagnostic for invalid points.
func (p CalendarPoint) String() string {
	s, err := p.Format()
	if err != nil {
		return fmt.Sprintf("invalid(%d-%d)", p.Year, p.Month)
	}
	return s
}

// ParseCalendarPoint accepts YYYY, YYYYMM or YYYY-MM.
func ParseCalendarPoint(s string) (*CalendarPoint, error) {
	s = strings.TrimSpace(s)
	digits := strings.Replace(s, "-", "", 1)
	if len(digits) != 4 && len(digits) != 6 {
		return nil, fmt.Errorf("parsing %q: %w", s, ErrUnrecognizedDateType)
	}
	if strings.Contains(s, "-") && (len(s) != 7 || s[4] != '-') {
		return nil, fmt.Errorf("parsing %q: %w", s, ErrUnrecognizedDateType)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("parsing %q: %w", s, ErrUnrecognizedDateType)
		}
	}

	y, _ := strconv.Atoi(digits[:4])
	p := &CalendarPoint{Year: y}
	if len(digits) == 6 {
		p.Month, _ = strconv.Atoi(digits[4:])
		if p.Month < 1 || p.Month > 12 {
			return nil, fmt.Errorf("parsing %q: month out of range: %w", s, ErrUnrecognizedDateType)
		}
	}
	return p, nil
}

// formatDate normalizes an optional calendar point; nil yields ok=false.
func formatDate(p *CalendarPoint) (s string, ok bool, err error) {
	if p == nil {
		return "", false, nil
	}
	s, err = p.Format()
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}
