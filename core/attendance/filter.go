package attendance

import (
	"sort"
	"strings"

	"github.com/trezcool/bunk/core"
)

// Filter returns the records whose StudentName contains search, ignoring case.
// The result is a new slice in the original order; records is left untouched.
func Filter(records []Record, search string) []Record {
	filtered := make([]Record, 0, len(records))
	for _, rec := range records {
		if search == "" || core.ContainsFold(rec.StudentName, search) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// Sort orders records in place by the given orderings, first one wins.
// Ties keep their current (newest first) order.
func Sort(records []Record, orderings []core.Ordering) {
	if len(orderings) == 0 {
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		for _, ord := range orderings {
			c := compare(records[i], records[j], ord.Field)
			if c == 0 {
				continue
			}
			if ord.Ascending {
				return c < 0
			}
			return c > 0
		}
		return false
	})
}

func compare(a, b Record, field string) int {
	switch field {
	case OrderByDate:
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
	case OrderByStudentName:
		return strings.Compare(strings.ToLower(a.StudentName), strings.ToLower(b.StudentName))
	case OrderByPercentage:
		switch {
		case a.Percentage < b.Percentage:
			return -1
		case a.Percentage > b.Percentage:
			return 1
		}
	}
	return 0
}
