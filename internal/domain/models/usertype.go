// internal/domain/models/usertype.go
package models

// UserType selects which dashboard a viewer gets.
//
// The zero value is UserTypeStudent so that a missing identity falls into
// the student view.
type UserType int

const (
	UserTypeStudent UserType = iota
	UserTypeAdmin
)

// Wire codes used by the login collaborator.
const (
	userTypeCodeAdmin   = 1
	userTypeCodeStudent = 2
)

// ParseUserType maps a wire code to a UserType. ok is false for any code
// other than 1 (admin) or 2 (student); the returned type is then the zero
// value and the caller decides how to treat it.
func ParseUserType(code int) (UserType, bool) {
	switch code {
	case userTypeCodeAdmin:
		return UserTypeAdmin, true
	case userTypeCodeStudent:
		return UserTypeStudent, true
	default:
		return UserTypeStudent, false
	}
}

// Code returns the wire code for t.
func (t UserType) Code() int {
	if t == UserTypeAdmin {
		return userTypeCodeAdmin
	}
	return userTypeCodeStudent
}

// IsAdmin reports whether t is the admin variant.
func (t UserType) IsAdmin() bool { return t == UserTypeAdmin }

func (t UserType) String() string {
	if t == UserTypeAdmin {
		return "admin"
	}
	return "student"
}
