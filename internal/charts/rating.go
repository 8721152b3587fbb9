package charts

// RatingGroup buckets a fine-grained content rating into one of three
// categories. The function is total: unknown codes and absent ratings land
// in "Family/Kids". That conflates explicitly kid-rated with unrated
// content; it matches the analysis this set was designed for.
func RatingGroup(rating any) string {
	s, _ := rating.(string)
	switch s {
	case "TV-MA", "R", "NC-17":
		return "Mature"
	case "TV-14", "PG-13":
		return "Teen"
	default:
		return "Family/Kids"
	}
}
