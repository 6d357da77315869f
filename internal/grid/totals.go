package grid

// Totals counts tracked hours per category key.
type Totals map[string]int

func (t Totals) Add(o Totals) {
	for k, v := range o {
		t[k] += v
	}
}

func (t Totals) Hours() int {
	sum := 0
	for _, v := range t {
		sum += v
	}
	return sum
}

func MonthTotals(m *Month) Totals {
	t := make(Totals)
	for _, v := range m.Cells {
		t[v]++
	}
	return t
}

func DayTotals(m *Month, day int) Totals {
	t := make(Totals)
	for id, v := range m.Cells {
		if id.Day == day {
			t[v]++
		}
	}
	return t
}

// DailyTotals returns one Totals per day of the month, index 0 is day 1.
func DailyTotals(m *Month) []Totals {
	days := make([]Totals, m.Days())
	for i := range days {
		days[i] = make(Totals)
	}
	for id, v := range m.Cells {
		days[id.Day-1][v]++
	}
	return days
}
