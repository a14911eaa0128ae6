package dateinput

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matryer/is"
)

func Test_parseRelative(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"in1", 1, false},
		{"in 1", 1, false},
		{"1", 1, false},
		{"+1", 1, false},
		{"-1", -1, false},
		{"in 11", 11, false},
		{"in 231", 231, false},
		{"in 1 day", 1, false},
		{"in 1 days", 1, false},
		{"1d", 1, false},
		{"in 1 week", 7, false},
		{"in 1 month", 30, false},
		{"in 2 year", 365 * 2, false},
		{"in 1w", 7, false},
		{"2 days ago", -2, false},
		{"in 1wek", 0, true},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseRelative(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseRelative() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("%s\ngot:  %v\nwant: %v", tt.input, got, tt.want)
			}
		})
	}
}

func Test_parseAbsolute(t *testing.T) {
	now, _ := time.Parse("02-01-2006", "01-02-2006")
	tests := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{"21-04", now.AddDate(0, 2, 20), false},
		{"21", now.AddDate(0, 0, 20), false},
		{"21-04-06", now.AddDate(0, 2, 20), false},
		{"feb 21", now.AddDate(0, 0, 20), false},
		{"february 21", now.AddDate(0, 0, 20), false},
		{"jan 5", now.AddDate(0, -1, 4), false},
		{"21 april 2027", time.Date(2027, 4, 21, 0, 0, 0, 0, time.UTC), false},
		{"2006-03-01", now.AddDate(0, 1, 0), false},
		{"someday", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseAbsolute(tt.input, now)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseAbsolute() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("%s\ngot:  %v\nwant: %v", tt.input, got.Format("02-01-2006"), tt.want.Format("02-01-2006"))
			}
		})
	}
}

func TestParse(t *testing.T) {
	// a Wednesday afternoon
	now := time.Date(2026, 10, 14, 15, 4, 5, 0, time.UTC)
	today := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		input string
		want  time.Time
	}{
		{"today", today},
		{"ToDay", today},
		{"tom", today.AddDate(0, 0, 1)},
		{"yesterday", today.AddDate(0, 0, -1)},
		{"wed", today},
		{"thursday", today.AddDate(0, 0, 1)},
		{"mon", today.AddDate(0, 0, 5)},
		{"in 3 days", today.AddDate(0, 0, 3)},
		{"2w", today.AddDate(0, 0, 14)},
		{"21st", time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)},
		{"1st dec", time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)},
		{"24/12/2026", time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			is := is.New(t)
			got, err := Parse(tt.input, now)
			is.NoErr(err)
			is.True(got != nil)
			is.Equal(*got, tt.want)
		})
	}

	t.Run("empty means no date", func(t *testing.T) {
		is := is.New(t)
		got, err := Parse("   ", now)
		is.NoErr(err)
		is.True(got == nil)
	})

	t.Run("garbage", func(t *testing.T) {
		is := is.New(t)
		_, err := Parse("whenever", now)
		is.Equal(err, ErrUnrecognised)
	})
}

func TestModel(t *testing.T) {
	is := is.New(t)
	now := time.Date(2026, 10, 14, 15, 4, 5, 0, time.UTC)
	m := NewModel()
	m.Now = func() time.Time { return now }
	m.Focus()

	for _, r := range "tom" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	is.NoErr(m.Err())
	is.Equal(*m.Value(), time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	is.Equal(m.Err(), ErrUnrecognised)
	is.True(m.Value() == nil)

	m.SetValue(nil)
	is.NoErr(m.Err())
	is.True(m.Value() == nil)
}
