package models

// AdminDashboard is the administrator's landing summary.
type AdminDashboard struct {
	Message string         `json:"message"`
	Stats   DashboardStats `json:"stats"`
}

// DashboardStats counts the registered accounts.
type DashboardStats struct {
	TotalUsers    int `json:"total_users"`
	TotalAdmins   int `json:"total_admins"`
	TotalStudents int `json:"total_students"`
}

// SiteContent is the public content shown on the landing page.
type SiteContent struct {
	WelcomeMessage string      `json:"welcome_message"`
	LatestNews     []NewsItem  `json:"latest_news"`
	ContactInfo    ContactInfo `json:"contact_info"`
}

type NewsItem struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ContactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}
