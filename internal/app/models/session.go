package models

// Session is a named, reusable examination time window (e.g. "Morning",
// 09:00-12:00). Times are wall-clock HH:MM strings; all venues share one
// campus clock, so no timezone handling applies anywhere in the system.
type Session struct {
	ID        int64  `json:"id"`
	Label     string `json:"label"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
