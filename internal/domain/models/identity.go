// internal/domain/models/identity.go
package models

// Identity is the navigation context handed to the dashboard when a user
// enters it. The dashboard reads it and never changes it.
type Identity struct {
	FullName string   `json:"fullName"`
	UserID   string   `json:"userId"`
	UserType UserType `json:"-"`
}
