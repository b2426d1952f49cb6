// internal/domain/models/enrollment.go
package models

// Enrollment is a student's association with one course.
//
// Progress is a percentage in 0..100 and may be absent.
type Enrollment struct {
	CourseName       string `json:"courseName"`
	CompletionStatus string `json:"completionStatus"`
	Progress         *int   `json:"progress,omitempty"`
}
