package models

// DefaultStatus is applied to students and courses created without an
// explicit status. The field itself is free-form text; nothing beyond the
// default is enforced.
const DefaultStatus = "active"

// DashboardStats is the aggregate returned by GET /api/dashboard/stats.
type DashboardStats struct {
	TotalStudents  int64 `json:"totalStudents"`
	ActiveStudents int64 `json:"activeStudents"`
	TotalCourses   int64 `json:"totalCourses"`
}
