package insights

// Level is a display severity for thresholded metrics. The mapping from
// Level to color lives with the styles, next to the rendering code.
type Level string

const (
	LevelGood Level = "good"
	LevelWarn Level = "warn"
	LevelBad  Level = "bad"
)

// Match Quality Thresholds (0-100 scale)
const (
	matchExcellentMin = 80.0
	matchModerateMin  = 60.0
)

// Funnel Conversion Thresholds (0-1 scale)
const (
	conversionGoodMin = 0.70
	conversionWarnMin = 0.50
)

// Time-To-Hire Threshold (days)
const timeToHireGoodMax = 30.0

// MatchQuality buckets a 0-100 match percentage into a label and level.
func MatchQuality(pct float64) (string, Level) {
	switch {
	case pct >= matchExcellentMin:
		return "Excellent", LevelGood
	case pct >= matchModerateMin:
		return "Moderate", LevelWarn
	default:
		return "Poor", LevelBad
	}
}

// ConversionLevel buckets a 0-1 funnel conversion rate.
func ConversionLevel(rate float64) Level {
	switch {
	case rate >= conversionGoodMin:
		return LevelGood
	case rate >= conversionWarnMin:
		return LevelWarn
	default:
		return LevelBad
	}
}

// TimeToHireLevel buckets a time-to-hire in days.
func TimeToHireLevel(days float64) Level {
	if days <= timeToHireGoodMax {
		return LevelGood
	}
	return LevelWarn
}
