package notes

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// KeyPrefix starts the storage key of every notes month.
const KeyPrefix = "twentyfourseven-notes-"

// MonthKey is twentyfourseven-notes-{year}-{month} with a 0-based month, unlike cell keys:
// January is twentyfourseven-notes-2024-0.
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%s%d-%d", KeyPrefix, year, int(month)-1)
}

func ParseMonthKey(key string) (int, time.Month, bool) {
	rest, found := strings.CutPrefix(key, KeyPrefix)
	if !found {
		return 0, 0, false
	}
	y, m, found := strings.Cut(rest, "-")
	if !found {
		return 0, 0, false
	}
	year, err := strconv.Atoi(y)
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(m)
	if err != nil || month < 0 || month > 11 {
		return 0, 0, false
	}
	return year, time.Month(month + 1), true
}
