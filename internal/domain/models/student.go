// internal/domain/models/student.go
package models

// Student is a student record as listed on the admin dashboard.
type Student struct {
	StudentID int    `json:"studentId"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
}
