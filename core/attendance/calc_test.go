package attendance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/bunk/core"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		attended int
		want     Result
		wantErr  error
		field    string
	}{
		{name: "below threshold", total: 100, attended: 70, want: Result{Percentage: 70, Deficit: 5, RequiredClasses: 20}},
		{name: "above threshold", total: 40, attended: 35, want: Result{Percentage: 87.5}},
		{name: "exactly threshold", total: 4, attended: 3, want: Result{Percentage: 75}},
		{name: "nothing attended", total: 10, attended: 0, want: Result{Percentage: 0, Deficit: 75, RequiredClasses: 30}},
		{name: "everything attended", total: 10, attended: 10, want: Result{Percentage: 100}},
		{name: "one class missed", total: 3, attended: 2, want: Result{Percentage: 200.0 / 3, Deficit: 75 - 200.0/3, RequiredClasses: 1}},
		{name: "zero total", total: 0, attended: 0, wantErr: ErrInvalidTotal, field: "totalClasses"},
		{name: "negative total", total: -5, attended: 0, wantErr: ErrInvalidTotal, field: "totalClasses"},
		{name: "negative attended", total: 5, attended: -1, wantErr: ErrAttendedOutOfRange, field: "attendedClasses"},
		{name: "attended above total", total: 5, attended: 6, wantErr: ErrAttendedOutOfRange, field: "attendedClasses"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.total, tt.attended)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "err = %v; want %v", err, tt.wantErr)
				var vErr *core.ValidationError
				if assert.True(t, errors.As(err, &vErr)) && assert.Len(t, vErr.Fields, 1) {
					assert.Equal(t, tt.field, vErr.Fields[0].Field)
				}
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.want.Percentage, got.Percentage, 1e-9)
			assert.InDelta(t, tt.want.Deficit, got.Deficit, 1e-9)
			assert.Equal(t, tt.want.RequiredClasses, got.RequiredClasses)
		})
	}
}

func TestCalculate_requiredClassesRestoreThreshold(t *testing.T) {
	for total := 1; total <= 60; total++ {
		for attended := 0; attended <= total; attended++ {
			res, err := Calculate(total, attended)
			if !assert.NoError(t, err) {
				return
			}
			if res.Percentage >= Threshold {
				assert.Zero(t, res.RequiredClasses, "total=%d attended=%d", total, attended)
				assert.Zero(t, res.Deficit, "total=%d attended=%d", total, attended)
				continue
			}

			x := res.RequiredClasses
			assert.Greater(t, x, 0)
			assert.GreaterOrEqual(t, 4*(attended+x), 3*(total+x), "total=%d attended=%d: %d classes are not enough", total, attended, x)
			assert.Less(t, 4*(attended+x-1), 3*(total+x-1), "total=%d attended=%d: %d classes are too many", total, attended, x)
		}
	}
}
