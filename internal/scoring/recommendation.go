package scoring

// Recommendation tiers in descending order of fit.
const (
	RecommendationHighPriority  = "high priority"
	RecommendationGoodMatch     = "good match"
	RecommendationModerateMatch = "moderate match"
	RecommendationLowMatch      = "low match / skip"
)

// Recommend maps a rounded total score onto its tier. Lower bounds are
// inclusive, so exactly 80.0 is already high priority.
func Recommend(total float64) string {
	switch {
	case total >= 80:
		return RecommendationHighPriority
	case total >= 70:
		return RecommendationGoodMatch
	case total >= 60:
		return RecommendationModerateMatch
	default:
		return RecommendationLowMatch
	}
}
