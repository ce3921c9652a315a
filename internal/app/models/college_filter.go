package models

import "strings"

// CollegeFilter describes a college search. Empty fields are inactive.
type CollegeFilter struct {
	Country     string
	Program     string
	Type        string
	CourseName  string
	CollegeName string
	Page        int
}

// Normalize trims surrounding whitespace from every filter value.
func (f CollegeFilter) Normalize() CollegeFilter {
	f.Country = strings.TrimSpace(f.Country)
	f.Program = strings.TrimSpace(f.Program)
	f.Type = strings.TrimSpace(f.Type)
	f.CourseName = strings.TrimSpace(f.CourseName)
	f.CollegeName = strings.TrimSpace(f.CollegeName)
	if f.Page < 1 {
		f.Page = 1
	}
	return f
}

// HasCollegePredicates reports whether any filter applies to college fields.
func (f CollegeFilter) HasCollegePredicates() bool {
	return f.Country != "" || f.CollegeName != ""
}

// HasCoursePredicates reports whether any filter applies to course fields.
func (f CollegeFilter) HasCoursePredicates() bool {
	return f.Program != "" || f.Type != "" || f.CourseName != ""
}

// Active reports whether any filter is set.
func (f CollegeFilter) Active() bool {
	return f.HasCollegePredicates() || f.HasCoursePredicates()
}
