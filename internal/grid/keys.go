package grid

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// KeyPrefix starts every persisted key of the application.
const KeyPrefix = "twentyfourseven"

// CellKey encodes one activity cell: twentyfourseven-{year}-{month}-{day}-{hour}, month 1-based.
func CellKey(year int, month time.Month, id CellID) string {
	return fmt.Sprintf("%s-%d-%d-%d-%d", KeyPrefix, year, int(month), id.Day, id.Hour)
}

// MonthKeyPrefix matches every cell key of one month and nothing else.
func MonthKeyPrefix(year int, month time.Month) string {
	return fmt.Sprintf("%s-%d-%d-", KeyPrefix, year, int(month))
}

// ParseCellKey reverses CellKey.
func ParseCellKey(key string) (year int, month time.Month, id CellID, ok bool) {
	rest, found := strings.CutPrefix(key, KeyPrefix+"-")
	if !found {
		return 0, 0, CellID{}, false
	}
	parts := strings.Split(rest, "-")
	if len(parts) != 4 {
		return 0, 0, CellID{}, false
	}
	nums := make([]int, 4)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, CellID{}, false
		}
		nums[i] = n
	}
	if nums[1] < 1 || nums[1] > 12 {
		return 0, 0, CellID{}, false
	}
	id = CellID{Day: nums[2], Hour: nums[3]}
	m := Month{Year: nums[0], Month: time.Month(nums[1])}
	if !m.Contains(id) {
		return 0, 0, CellID{}, false
	}
	return nums[0], time.Month(nums[1]), id, true
}

func IsCellKey(key string) bool {
	_, _, _, ok := ParseCellKey(key)
	return ok
}
