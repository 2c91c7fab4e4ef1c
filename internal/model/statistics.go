package model

type StatisticsOverview struct {
	TotalUsers        int                `json:"totalUsers"`
	TotalCourses      int                `json:"totalCourses"`
	TotalEnrollments  int                `json:"totalEnrollments"`
	RecentEnrollments []DailyEnrollments `json:"recentEnrollments"`
}

type DailyEnrollments struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type TopCourse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Students int    `json:"students"`
}

type InstructorStat struct {
	UserID        string `json:"userId"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	CoursesCount  int    `json:"coursesCount"`
	TotalStudents int    `json:"totalStudents"`
}

// Page is one page of a moderation listing.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}
