package models

// RoleAdmin is the backend role name that grants administrative rights even
// when the is_admin flag is absent.
const RoleAdmin = "admin"

// User is the profile of the authenticated account as returned by the backend.
// The client never persists it: it lives in memory for the lifetime of a
// session and mirrors the server-side record.
type User struct {
	// ID is the backend identifier of the account (a UUID string).
	ID string `json:"id,omitempty"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the login identifier of the account.
	Email string `json:"email"`

	// USN is the university seat number of a student, if provided.
	USN string `json:"usn,omitempty"`

	// Course and Semester describe the student's enrolment.
	Course   string `json:"course,omitempty"`
	Semester string `json:"semester,omitempty"`

	// IsAdmin is the backend flag granting the right to manage resources.
	IsAdmin bool `json:"is_admin"`

	// Role is the backend role name ("student", "admin").
	Role string `json:"role,omitempty"`

	// ProfilePhoto is the backend-relative URL of the uploaded photo.
	ProfilePhoto string `json:"profile_photo,omitempty"`

	// Verified reports whether the email address was confirmed.
	Verified bool `json:"verified,omitempty"`

	CreatedAt Timestamp `json:"created_at,omitempty"`
	UpdatedAt Timestamp `json:"updated_at,omitempty"`
}

// Admin reports whether the user may perform administrative operations.
// It is derived from the user record on every call.
func (u User) Admin() bool {
	return u.IsAdmin || u.Role == RoleAdmin
}
