package models

// Achievement is a badge the backend awards for activity milestones.
type Achievement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	Category    string     `json:"category,omitempty"`
	Progress    int        `json:"progress"`
	Target      int        `json:"target"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *Timestamp `json:"unlocked_at,omitempty"`
}
