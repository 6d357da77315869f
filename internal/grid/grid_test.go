package grid_test

import (
	"strings"
	"testing"
	"time"

	"github.com/limbo/twentyfourseven/internal/grid"
	"github.com/stretchr/testify/assert"
)

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, grid.DaysIn(2024, time.February))
	assert.Equal(t, 28, grid.DaysIn(2023, time.February))
	assert.Equal(t, 31, grid.DaysIn(2024, time.December))
	assert.Equal(t, 30, grid.DaysIn(2024, time.April))
}

func TestNormalizeValue(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
		Ok  bool
	}{
		{In: "w", Out: "W", Ok: true},
		{In: " L ", Out: "L", Ok: true},
		{In: "", Out: "", Ok: true},
		{In: "WL", Ok: false},
		{In: "1", Ok: false},
		{In: "é", Ok: false},
	}
	for _, tc := range testCases {
		out, ok := grid.NormalizeValue(tc.In)
		assert.Equal(t, tc.Ok, ok, tc.In)
		assert.Equal(t, tc.Out, out, tc.In)
	}
}

func TestCellKeys(t *testing.T) {
	key := grid.CellKey(2024, time.January, grid.CellID{Day: 15, Hour: 23})
	assert.Equal(t, "twentyfourseven-2024-1-15-23", key)

	year, month, id, ok := grid.ParseCellKey(key)
	assert.True(t, ok)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.January, month)
	assert.Equal(t, grid.CellID{Day: 15, Hour: 23}, id)

	for _, bad := range []string{
		"twentyfourseven-settings",
		"twentyfourseven-notes-2024-1",
		"twentyfourseven-2024-13-1-1",
		"twentyfourseven-2023-2-29-1",
		"twentyfourseven-2024-1-1-24",
		"other-2024-1-1-1",
	} {
		assert.False(t, grid.IsCellKey(bad), bad)
	}
}

func TestMonthKeyPrefixDoesNotOverlap(t *testing.T) {
	jan := grid.MonthKeyPrefix(2024, time.January)
	oct := grid.CellKey(2024, time.October, grid.CellID{Day: 1, Hour: 1})
	assert.False(t, strings.HasPrefix(oct, jan))
}

func TestTotals(t *testing.T) {
	m := grid.NewMonth(2024, time.March)
	e := grid.NewEditor(m, 5)
	e.SetCell(grid.CellID{Day: 1, Hour: 9}, "W")
	e.SetCell(grid.CellID{Day: 1, Hour: 10}, "W")
	e.SetCell(grid.CellID{Day: 2, Hour: 9}, "L")

	assert.Equal(t, grid.Totals{"W": 2, "L": 1}, grid.MonthTotals(m))
	assert.Equal(t, grid.Totals{"W": 2}, grid.DayTotals(m, 1))
	daily := grid.DailyTotals(m)
	assert.Len(t, daily, 31)
	assert.Equal(t, grid.Totals{"L": 1}, daily[1])

	all := grid.Totals{"W": 1}
	all.Add(grid.MonthTotals(m))
	assert.Equal(t, 4, all.Hours())
	assert.Equal(t, []grid.Cell{
		{Day: 1, Hour: 9, Value: "W"},
		{Day: 1, Hour: 10, Value: "W"},
		{Day: 2, Hour: 9, Value: "L"},
	}, m.List())
}
