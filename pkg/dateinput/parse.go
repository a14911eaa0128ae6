package dateinput

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrUnrecognised = errors.New("unrecognised date")

// Parse turns what the user typed into a due date at the start of a day.
// An empty string means no due date.
func Parse(s string, now time.Time) (*time.Time, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, nil
	}
	today := StartOfDay(now)
	switch s {
	case "today", "tod", "now":
		return &today, nil
	case "tomorrow", "tom":
		d := today.AddDate(0, 0, 1)
		return &d, nil
	case "yesterday", "yday":
		d := today.AddDate(0, 0, -1)
		return &d, nil
	}
	if wd, ok := parseWeekday(s); ok {
		d := nextWeekday(today, wd)
		return &d, nil
	}
	if days, err := parseRelative(s); err == nil {
		d := today.AddDate(0, 0, days)
		return &d, nil
	}
	s = ordinal.ReplaceAllString(s, "$1")
	if d, err := parseAbsolute(s, today); err == nil {
		return &d, nil
	}
	return nil, ErrUnrecognised
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

var ordinal = regexp.MustCompile(`([0-9])(st|nd|rd|th)\b`)

type multiplier struct {
	key   string
	value int
}

var multipliers = []multiplier{
	{"days", 1},
	{"weeks", 7},
	{"months", 30},
	{"years", 365},
}

// parseRelative reads offsets like "3", "+3", "in 2 weeks", "1m" or "2 days ago"
func parseRelative(s string) (int, error) {
	s = strings.TrimPrefix(s, "in")
	s = strings.TrimSpace(s)
	negative := false
	if strings.HasSuffix(s, "ago") {
		negative = true
		s = strings.TrimSpace(strings.TrimSuffix(s, "ago"))
	}
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		negative = negative || s[0] == '-'
		s = s[1:]
	}

	// parse quantity
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, errors.New("expected a number")
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, err
	}
	s = strings.TrimSpace(s[i:])

	multiplier := 1
	if len(s) > 0 {
		multiplier = 0
		for _, m := range multipliers {
			end := min(len(m.key), len(s))
			if m.key[:end] == s {
				multiplier = m.value
				break
			}
		}
		if multiplier == 0 {
			return 0, errors.New("unexpected postfix")
		}
	}
	if negative {
		n = -n
	}
	return n * multiplier, nil
}

func parseWeekday(s string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if len(s) >= 3 && strings.HasPrefix(name, s) {
			return d, true
		}
	}
	return 0, false
}

// nextWeekday is today when today is that weekday
func nextWeekday(t time.Time, d time.Weekday) time.Time {
	day := d - t.Weekday()
	if day < 0 {
		day += 7
	}
	return t.AddDate(0, 0, int(day))
}

type layout struct {
	format string
	month  bool
	year   bool
}

var formats = []layout{
	{"_2", false, false},
	{"_2/01", true, false},
	{"_2/01/06", true, true},
	{"_2/01/2006", true, true},
	{"_2-01", true, false},
	{"_2-01-06", true, true},
	{"_2-01-2006", true, true},
	{"2006-01-02", true, true},
	{"Jan _2", true, false},
	{"Jan _2 06", true, true},
	{"Jan _2 2006", true, true},
	{"January _2", true, false},
	{"January _2 06", true, true},
	{"January _2 2006", true, true},
	{"_2 Jan", true, false},
	{"_2 Jan 06", true, true},
	{"_2 Jan 2006", true, true},
	{"_2 January", true, false},
	{"_2 January 06", true, true},
	{"_2 January 2006", true, true},
}

// parseAbsolute fills a missing month or year from now
func parseAbsolute(s string, now time.Time) (time.Time, error) {
	for _, l := range formats {
		t, err := time.Parse(l.format, s)
		if err != nil {
			continue
		}
		year, month := now.Year(), now.Month()
		if l.year {
			year = t.Year()
		}
		if l.month {
			month = t.Month()
		}
		return time.Date(year, month, t.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	return time.Time{}, errors.New("format not found")
}
