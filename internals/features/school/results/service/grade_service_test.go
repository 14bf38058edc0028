// file: internals/features/school/results/service/grade_service_test.go
package service

import "testing"

func TestComputeTotal(t *testing.T) {
	cases := []struct {
		name   string
		scores map[string]float64
		want   float64
	}{
		{"kosong", nil, 0},
		{"satu mapel", map[string]float64{"Matematika": 88}, 88},
		{"rata-rata", map[string]float64{"Matematika": 80, "IPA": 90}, 85},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeTotal(tc.scores); got != tc.want {
				t.Fatalf("ComputeTotal = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGradeFor(t *testing.T) {
	cases := []struct {
		total float64
		want  string
	}{
		{95, "A"},
		{90, "A"},
		{89.9, "B"},
		{80, "B"},
		{75, "C"},
		{65, "D"},
		{59.9, "E"},
		{0, "E"},
	}
	for _, tc := range cases {
		if got := GradeFor(tc.total); got != tc.want {
			t.Errorf("GradeFor(%v) = %q, want %q", tc.total, got, tc.want)
		}
	}
}
