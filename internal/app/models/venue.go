package models

// Venue represents an examination venue registered by the faculty exam office.
// Capacity is fixed at creation; there is no update path.
type Venue struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}
