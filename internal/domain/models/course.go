// internal/domain/models/course.go
package models

// Course is a course record as returned by the course API.
type Course struct {
	CourseID     int    `json:"courseId"`
	CourseName   string `json:"courseName"`
	Description  string `json:"description"`
	MaxSeats     int    `json:"maxSeats"`
	CurrentSeats int    `json:"currentSeats"`
	StartDate    Date   `json:"startDate"`
	EndDate      Date   `json:"endDate"`
}
