package services

import (
	"reflect"
	"testing"
)

func TestDedupeIDs(t *testing.T) {
	cases := []struct {
		name string
		in   []int64
		want []int64
	}{
		{"empty", []int64{}, []int64{}},
		{"no duplicates", []int64{1, 2, 3}, []int64{1, 2, 3}},
		{"keeps first occurrence order", []int64{3, 1, 3, 2, 1}, []int64{3, 1, 2}},
		{"all same", []int64{5, 5, 5}, []int64{5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := dedupeIDs(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("dedupeIDs(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
