package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/bunk/core"
)

func names(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.StudentName)
	}
	return out
}

func TestFilter(t *testing.T) {
	records := []Record{
		{ID: 3, StudentName: "Alice"},
		{ID: 2, StudentName: "Bob"},
		{ID: 1, StudentName: "Malik"},
		{ID: 0, StudentName: "Jo Ann"},
	}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "empty search", search: "", want: []string{"Alice", "Bob", "Malik", "Jo Ann"}},
		{name: "upper case", search: "AL", want: []string{"Alice", "Malik"}},
		{name: "lower case", search: "bo", want: []string{"Bob"}},
		{name: "no match", search: "zed", want: []string{}},
		{name: "space only matches names holding one", search: " ", want: []string{"Jo Ann"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(records, tt.search)
			assert.Equal(t, tt.want, names(got))
		})
	}

	t.Run("source untouched", func(t *testing.T) {
		got := Filter(records, "")
		got[0].StudentName = "Changed"
		assert.Equal(t, "Alice", records[0].StudentName)
	})
}

func TestSort(t *testing.T) {
	newRecords := func() []Record {
		return []Record{
			{ID: 4, StudentName: "carol", Percentage: 50},
			{ID: 3, StudentName: "Alice", Percentage: 90},
			{ID: 2, StudentName: "bob", Percentage: 50},
			{ID: 1, StudentName: "Alice", Percentage: 80},
		}
	}

	tests := []struct {
		name      string
		orderings []core.Ordering
		want      []int64
	}{
		{name: "no ordering keeps newest first", want: []int64{4, 3, 2, 1}},
		{name: "date", orderings: []core.Ordering{{Field: OrderByDate, Ascending: true}}, want: []int64{1, 2, 3, 4}},
		{name: "-date", orderings: []core.Ordering{{Field: OrderByDate}}, want: []int64{4, 3, 2, 1}},
		{name: "studentName ignores case", orderings: []core.Ordering{{Field: OrderByStudentName, Ascending: true}}, want: []int64{3, 1, 2, 4}},
		{name: "percentage keeps ties stable", orderings: []core.Ordering{{Field: OrderByPercentage, Ascending: true}}, want: []int64{4, 2, 1, 3}},
		{
			name: "studentName,-percentage",
			orderings: []core.Ordering{
				{Field: OrderByStudentName, Ascending: true},
				{Field: OrderByPercentage},
			},
			want: []int64{3, 1, 2, 4},
		},
		{
			name: "-percentage,date",
			orderings: []core.Ordering{
				{Field: OrderByPercentage},
				{Field: OrderByDate, Ascending: true},
			},
			want: []int64{3, 1, 2, 4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := newRecords()
			Sort(records, tt.orderings)

			ids := make([]int64, 0, len(records))
			for _, rec := range records {
				ids = append(ids, rec.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
