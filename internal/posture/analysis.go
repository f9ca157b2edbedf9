package posture

// Warning is a single posture correction suggestion derived from the
// current score band.
type Warning struct {
	Text   string
	Urgent bool
}

// Analyze returns the correction suggestions for a score. Bands stack:
// a score below 30 also carries the below-70 and below-50 suggestions.
// A score of 70 or above produces no warnings.
func Analyze(score float64) []Warning {
	var warnings []Warning

	if score < 70 {
		warnings = append(warnings,
			Warning{Text: "Keep your back straighter"},
			Warning{Text: "Sit further away from the screen"},
		)
	}
	if score < 50 {
		warnings = append(warnings,
			Warning{Text: "Pull your shoulders back"},
			Warning{Text: "Keep your neck upright"},
		)
	}
	if score < 30 {
		warnings = append(warnings,
			Warning{Text: "Urgent: fix your posture now", Urgent: true},
			Warning{Text: "Take a 5 minute break", Urgent: true},
		)
	}

	return warnings
}
