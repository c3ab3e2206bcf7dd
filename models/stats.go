package models

// Stats is the dashboard summary of the backend.
type Stats struct {
	TotalUsers     int            `json:"total_users"`
	TotalPapers    int            `json:"total_papers"`
	TotalNotes     int            `json:"total_notes"`
	TotalSyllabus  int            `json:"total_syllabus"`
	TotalBookmarks int            `json:"total_bookmarks"`
	UserPapers     int            `json:"user_papers"`
	UserNotes      int            `json:"user_notes"`
	UserSyllabus   int            `json:"user_syllabus"`
	UserBookmarks  int            `json:"user_bookmarks"`
	RecentActivity RecentActivity `json:"recent_activity"`
}

// RecentActivity counts the current user's uploads of the last seven days.
type RecentActivity struct {
	PapersThisWeek int `json:"papers_this_week"`
	NotesThisWeek  int `json:"notes_this_week"`
}
