package eqint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_buildTable(t *testing.T) {
	tests := []struct {
		name      string
		bounds    Bounds
		wantKeys  []int
		wantXs    []int
		wantRates []int
		wantEmpty bool
	}{
		{
			name:      "fully unbounded has no breakpoints",
			bounds:    Bounds{Unbounded(), Unbounded()},
			wantEmpty: true,
		},
		{
			name:      "one-sided lower, one fully unbounded above",
			bounds:    Bounds{Between(5, 10), LowerInt(5)},
			wantKeys:  []int{10, 20},
			wantXs:    []int{5, 10},
			wantRates: []int{2, 1},
		},
		{
			name:      "distinct breakpoints, rate rises then falls",
			bounds:    Bounds{Between(-5, 10), LowerInt(5)},
			wantKeys:  []int{0, 10, 20},
			wantXs:    []int{-5, 5, 10},
			wantRates: []int{1, 2, 1},
		},
		{
			name:      "three slots with a shared value on both sides",
			bounds:    Bounds{Between(5, 10), Between(5, 10), Between(10, 30)},
			wantKeys:  []int{20, 30, 50},
			wantXs:    []int{5, 10, 30},
			wantRates: []int{2, 1, 0},
		},
		{
			name:      "lower-unbounded slot contributes to the extrapolation rate",
			bounds:    Bounds{UpperInt(10), Between(5, 10), Between(10, 30)},
			wantKeys:  []int{20, 30, 50},
			wantXs:    []int{5, 10, 30},
			wantRates: []int{2, 1, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := buildTable(tt.bounds)
			if tt.wantEmpty {
				assert.True(t, table.empty())
				return
			}
			assert.Equal(t, tt.wantKeys, table.keys)
			assert.Equal(t, tt.wantXs, table.xs)
			assert.Equal(t, tt.wantRates, table.rates)

			// keys must be strictly increasing
			for i := 1; i < len(table.keys); i++ {
				assert.Less(t, table.keys[i-1], table.keys[i])
			}
		})
	}
}
