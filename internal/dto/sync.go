package dto

// ImportFailure records a single course that could not be imported.
// Failures never abort the run; the remaining courses are still processed.
type ImportFailure struct {
	CourseTitle string `json:"course_title"`
	Reason      string `json:"reason"`
}

// ImportResult summarizes one catalog import run. A second run against an
// unchanged catalog reports zero created rows.
type ImportResult struct {
	CoursesCreated int             `json:"courses_created"`
	ModulesCreated int             `json:"modules_created"`
	Failures       []ImportFailure `json:"failures,omitempty"`
}
