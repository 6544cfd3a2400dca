package domain

// PassThreshold is the minimum pass ratio, in percent, over non-N/A items.
const PassThreshold = 70.0

// CalculateScores folds a submitted checklist into totals and an overall
// status. The report stays pending while any item is pending; otherwise it
// passes only when every required item passed and the score clears the
// threshold.
func CalculateScores(categories []CheckCategory) Scores {
	var s Scores
	requiredNotPassed := false

	for _, category := range categories {
		for _, item := range category.Items {
			s.Total++
			if item.Required && item.Status != StatusPass {
				requiredNotPassed = true
			}
			switch item.Status {
			case StatusPass:
				s.Passed++
			case StatusFail:
				s.Failed++
			case StatusNA:
				s.NA++
			default:
				s.Pending++
			}
		}
	}

	if scored := s.Total - s.NA; scored > 0 {
		s.Score = float64(s.Passed) / float64(scored) * 100
	}

	switch {
	case s.Pending > 0:
		s.Status = "pending"
	case !requiredNotPassed && s.Score >= PassThreshold:
		s.Status = "passed"
	default:
		s.Status = "failed"
	}
	return s
}
