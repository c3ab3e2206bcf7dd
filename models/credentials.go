package models

// Credentials is the body of a login request.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Registration is the body of a register request. Only Name, Email and
// Password are required by the backend.
type Registration struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	USN      string `json:"usn,omitempty" validate:"omitempty,max=32"`
	Course   string `json:"course,omitempty" validate:"omitempty,max=100"`
	Semester string `json:"semester,omitempty" validate:"omitempty,max=16"`
}

// PasswordChange is the body of a password update for the current user.
type PasswordChange struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6,nefield=OldPassword"`
}

// PasswordReset completes a password reset started by a forgot-password
// request; Token is the one received by email.
type PasswordReset struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// EmailRequest is the body of requests that only carry an email address
// (verification resend, forgot password).
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ProfileUpdate carries the editable profile fields. Empty fields are not
// sent, at least one field has to be set.
type ProfileUpdate struct {
	Name     string `json:"name,omitempty" validate:"omitempty,max=100"`
	USN      string `json:"usn,omitempty" validate:"omitempty,max=32"`
	Course   string `json:"course,omitempty" validate:"omitempty,max=100"`
	Semester string `json:"semester,omitempty" validate:"omitempty,max=16"`
}

// IsEmpty reports whether no field of the update is set.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Name == "" && p.USN == "" && p.Course == "" && p.Semester == ""
}
