package models

// College represents a college in the catalog.
// Courses and scholarships reference it through CollegeID, the hex form of ID.
type College struct {
	ID      string      `json:"_id" bson:"_id"`
	Name    string      `json:"name" bson:"name"`
	Address string      `json:"address" bson:"address"`
	Country string      `json:"country" bson:"country"`
	Landing interface{} `json:"landing,omitempty" bson:"landing,omitempty"` // Overview blob, shape varies per college
}

// CollegeDetail is a college joined with its courses and scholarships.
// The joined records never carry their HTML bodies.
type CollegeDetail struct {
	College            `bson:",inline"`
	CourseDetails      []Course      `json:"courseDetails" bson:"courseDetails"`
	ScholarshipDetails []Scholarship `json:"scholarshipDetails" bson:"scholarshipDetails"`
}

// CollegeCourseRow is one result row of a college search: a college paired
// with one of its courses that satisfied the course filters.
type CollegeCourseRow struct {
	ID              string `json:"_id" bson:"_id"`
	Name            string `json:"name" bson:"name"`
	Address         string `json:"address" bson:"address"`
	Country         string `json:"country" bson:"country"`
	NumberOfCourses int    `json:"numberOfCourses" bson:"numberOfCourses"`
	CourseID        string `json:"courseId" bson:"courseId"`
	CourseName      string `json:"courseName" bson:"courseName"`
	Program         string `json:"program" bson:"program"`
	CourseType      string `json:"courseType" bson:"courseType"`
}

// CollegePage holds one page of search rows and the total number of matching rows.
type CollegePage struct {
	Rows       []CollegeCourseRow
	TotalCount int64
	Page       int
	PageSize   int
}
