// file: internals/features/school/results/service/grade_service.go
package service

// ComputeTotal merata-ratakan nilai per mapel; map kosong = 0.
func ComputeTotal(scores map[string]float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, v := range scores {
		sum += v
	}
	return sum / float64(len(scores))
}

// GradeFor memetakan rata-rata ke huruf rapor.
func GradeFor(total float64) string {
	switch {
	case total >= 90:
		return "A"
	case total >= 80:
		return "B"
	case total >= 70:
		return "C"
	case total >= 60:
		return "D"
	default:
		return "E"
	}
}
