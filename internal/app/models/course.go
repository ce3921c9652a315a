package models

// Course represents a course offered by a college.
type Course struct {
	ID         string `json:"_id" bson:"_id"`
	CollegeID  string `json:"collegeId" bson:"collegeId"`
	Program    string `json:"program" bson:"program"`
	CourseType string `json:"courseType" bson:"courseType"`
	CourseName string `json:"courseName" bson:"courseName"`
	HTML       string `json:"html,omitempty" bson:"html,omitempty"`
}
