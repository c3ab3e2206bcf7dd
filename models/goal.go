package models

// Goal is a learning goal set by the user.
type Goal struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	TargetDate  string    `json:"target_date,omitempty"`
	Progress    int       `json:"progress"`
	Completed   bool      `json:"completed"`
	CreatedAt   Timestamp `json:"created_at"`
	UpdatedAt   Timestamp `json:"updated_at"`
}

// GoalInput is the body of a goal create or update. Nil pointers are not
// sent, so an update only touches the fields that are set.
type GoalInput struct {
	Title       string `json:"title,omitempty" validate:"omitempty,max=200"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
	TargetDate  string `json:"target_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Progress    *int   `json:"progress,omitempty" validate:"omitempty,min=0,max=100"`
	Completed   *bool  `json:"completed,omitempty"`
}
