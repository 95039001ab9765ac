package dto

// ModuleStatsResponse aggregates the attempt scores of a module.
// Mean, Min and Max are null when the module has no attempts.
type ModuleStatsResponse struct {
	ModuleID string   `json:"module_id"`
	Count    int      `json:"count"`
	Mean     *float64 `json:"mean"`
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
}

// CourseStatsResponse lists per-module stats for a course.
type CourseStatsResponse struct {
	CourseID string                `json:"course_id"`
	Modules  []ModuleStatsResponse `json:"modules"`
}
