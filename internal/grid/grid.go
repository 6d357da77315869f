// Package grid models the hour-by-hour activity grid of one month: every cell is an
// (day, hour) slot tagged with a single category letter or left empty.
package grid

import (
	"sort"
	"strings"
	"time"
)

const HoursPerDay = 24

type CellID struct {
	Day  int `json:"day"`
	Hour int `json:"hour"`
}

func (c CellID) less(o CellID) bool {
	if c.Day != o.Day {
		return c.Day < o.Day
	}
	return c.Hour < o.Hour
}

type Cell struct {
	Day   int    `json:"day"`
	Hour  int    `json:"hour"`
	Value string `json:"value"`
}

type Month struct {
	Year  int
	Month time.Month
	Cells map[CellID]string
}

func NewMonth(year int, month time.Month) *Month {
	return &Month{
		Year:  year,
		Month: month,
		Cells: make(map[CellID]string),
	}
}

func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (m *Month) Days() int {
	return DaysIn(m.Year, m.Month)
}

func (m *Month) Contains(c CellID) bool {
	return c.Day >= 1 && c.Day <= m.Days() && c.Hour >= 0 && c.Hour < HoursPerDay
}

func (m *Month) Value(c CellID) string {
	return m.Cells[c]
}

func (m *Month) set(c CellID, v string) {
	if v == "" {
		delete(m.Cells, c)
		return
	}
	m.Cells[c] = v
}

// List returns the non-empty cells ordered by day, then hour.
func (m *Month) List() []Cell {
	ids := make([]CellID, 0, len(m.Cells))
	for id := range m.Cells {
		ids = append(ids, id)
	}
	sortCells(ids)
	out := make([]Cell, 0, len(ids))
	for _, id := range ids {
		out = append(out, Cell{Day: id.Day, Hour: id.Hour, Value: m.Cells[id]})
	}
	return out
}

// NormalizeValue accepts an empty string or a single letter and returns it upper-cased.
func NormalizeValue(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", true
	}
	r := []rune(strings.ToUpper(v))
	if len(r) != 1 || r[0] < 'A' || r[0] > 'Z' {
		return "", false
	}
	return string(r), true
}

// firstLetter keeps the first letter of a spreadsheet value.
func firstLetter(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", true
	}
	r := []rune(strings.ToUpper(v))[0]
	if r < 'A' || r > 'Z' {
		return "", false
	}
	return string(r), true
}

func sortCells(ids []CellID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].less(ids[j]) })
}
