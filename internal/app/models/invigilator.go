package models

// Invigilator represents a member of staff who can supervise exams.
// Code is the external staff code and is unique.
type Invigilator struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}
