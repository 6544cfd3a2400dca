package domain

// DecideRework maps defect counts to a rework priority. Any critical
// defect forces critical priority regardless of the other counts.
func DecideRework(defects []Defect) ReworkDecision {
	var critical, major, minor int
	for _, defect := range defects {
		switch defect.Severity {
		case SeverityCritical:
			critical++
		case SeverityMajor:
			major++
		case SeverityMinor:
			minor++
		}
	}

	switch {
	case critical > 0:
		return ReworkDecision{Required: true, Priority: ReworkCritical}
	case major >= 3:
		return ReworkDecision{Required: true, Priority: ReworkHigh}
	case major >= 1:
		return ReworkDecision{Required: true, Priority: ReworkMedium}
	case minor >= 5:
		return ReworkDecision{Required: true, Priority: ReworkLow}
	default:
		return ReworkDecision{Required: false, Priority: ReworkNone}
	}
}
