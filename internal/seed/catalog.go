package seed

import (
	"fmt"
	"sort"

	"github.com/yigit/collegehub/internal/app/models"
)

// Catalog is a self-contained set of catalog records
type Catalog struct {
	Colleges      []models.College
	Courses       []models.Course
	Scholarships  []models.Scholarship
	FilterOptions models.UniqueFilterOptions
}

// seedID returns a stable 24 character hex id so both backends share identifiers
func seedID(n int) string {
	return fmt.Sprintf("%024x", n)
}

// DemoCatalog returns a small catalog for local development
func DemoCatalog() Catalog {
	colleges := []models.College{
		{ID: seedID(1), Name: "Indian Institute of Technology Delhi", Address: "Hauz Khas, New Delhi", Country: "India",
			Landing: map[string]interface{}{"established": 1961, "ranking": "NIRF 2"}},
		{ID: seedID(2), Name: "Institute of Management Ahmedabad", Address: "Vastrapur, Ahmedabad", Country: "India",
			Landing: map[string]interface{}{"established": 1961}},
		{ID: seedID(3), Name: "Pacific Technical University", Address: "Portland, Oregon", Country: "USA"},
		{ID: seedID(4), Name: "Lakeside Arts College", Address: "Toronto, Ontario", Country: "Canada"},
	}

	type courseSpec struct {
		college       int
		program, kind string
		name          string
	}
	specs := []courseSpec{
		{0, "B.Tech", "Full Time", "Computer Science and Engineering"},
		{0, "B.Tech", "Full Time", "Electrical Engineering"},
		{0, "M.Tech", "Full Time", "Data Science"},
		{1, "MBA", "Full Time", "Post Graduate Programme in Management"},
		{1, "MBA", "Part Time", "Executive Programme in Data Analytics"},
		{2, "B.Sc", "Full Time", "Applied Data Science"},
	}

	courses := make([]models.Course, 0, len(specs))
	for i, s := range specs {
		courses = append(courses, models.Course{
			ID:         seedID(100 + i),
			CollegeID:  colleges[s.college].ID,
			Program:    s.program,
			CourseType: s.kind,
			CourseName: s.name,
			HTML:       fmt.Sprintf("<h2>%s</h2><p>%s at %s.</p>", s.name, s.program, colleges[s.college].Name),
		})
	}

	scholarships := []models.Scholarship{
		{ID: seedID(200), CollegeID: colleges[0].ID, HTML: "<h2>Merit Scholarship</h2><p>Full tuition waiver.</p>"},
		{ID: seedID(201), CollegeID: colleges[2].ID, HTML: "<h2>International Student Grant</h2>"},
	}

	return Catalog{
		Colleges:      colleges,
		Courses:       courses,
		Scholarships:  scholarships,
		FilterOptions: buildFilterOptions(seedID(300), colleges, courses),
	}
}

// buildFilterOptions collects the distinct, sorted filter values of a catalog
func buildFilterOptions(id string, colleges []models.College, courses []models.Course) models.UniqueFilterOptions {
	countries := map[string]struct{}{}
	programs := map[string]struct{}{}
	types := map[string]struct{}{}

	for _, c := range colleges {
		countries[c.Country] = struct{}{}
	}
	for _, c := range courses {
		programs[c.Program] = struct{}{}
		types[c.CourseType] = struct{}{}
	}

	return models.UniqueFilterOptions{
		ID:        id,
		Countries: sortedKeys(countries),
		Programs:  sortedKeys(programs),
		Types:     sortedKeys(types),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
