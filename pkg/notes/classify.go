package notes

import "strings"

// GeneralCourseType is the fallback classification label. Course types are
// open strings on purpose: new categories arrive through configuration data,
// not code changes.
const GeneralCourseType = "general"

// classifyCourseType derives a baseline course type from the leading digits
// of a course id. Course-mapping entries in the template configuration
// override this baseline during variant resolution.
func classifyCourseType(courseID string) string {
	switch {
	case strings.HasPrefix(courseID, "01"):
		return "math"
	case strings.HasPrefix(courseID, "02"):
		return "programming"
	case strings.HasPrefix(courseID, "25"):
		return "physics"
	case strings.HasPrefix(courseID, "22"):
		return "electronics"
	case strings.HasPrefix(courseID, "28"):
		return "environment"
	case strings.HasPrefix(courseID, "31"):
		return "mechanics"
	default:
		return GeneralCourseType
	}
}

// classifyAssignmentType guesses the assignment kind from title keywords.
func classifyAssignmentType(title string) string {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "programming") || strings.Contains(lower, "code"):
		return "programming"
	case strings.Contains(lower, "analysis") || strings.Contains(lower, "research"):
		return "research"
	case strings.Contains(lower, "problem") || strings.Contains(lower, "exercise"):
		return "theoretical"
	case strings.Contains(lower, "lab") || strings.Contains(lower, "experiment"):
		return "practical"
	default:
		return GeneralCourseType
	}
}
