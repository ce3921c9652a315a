package models

// Scholarship represents a scholarship offered by a college.
type Scholarship struct {
	ID        string `json:"_id" bson:"_id"`
	CollegeID string `json:"collegeId" bson:"collegeId"`
	HTML      string `json:"html,omitempty" bson:"html,omitempty"`
}
