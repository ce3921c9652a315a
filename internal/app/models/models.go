package models

// Collection names shared by every storage backend
const (
	CollectionColleges            = "colleges"
	CollectionCourses             = "courses"
	CollectionScholarships        = "scholarships"
	CollectionUniqueFilterOptions = "uniqueFilterOptions"
)

// Content is the HTML body of a single course or scholarship.
type Content struct {
	ID   string `json:"_id" bson:"_id"`
	HTML string `json:"html" bson:"html"`
}

// UniqueFilterOptions is the precomputed list of valid filter values
// that clients use to populate their filter UI.
type UniqueFilterOptions struct {
	ID        string   `json:"_id" bson:"_id"`
	Countries []string `json:"countries" bson:"countries"`
	Programs  []string `json:"programs" bson:"programs"`
	Types     []string `json:"types" bson:"types"`
}
