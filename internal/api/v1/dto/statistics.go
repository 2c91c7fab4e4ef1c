package dto

type StatisticsOverviewDTO struct {
	Overview struct {
		TotalUsers       Number `json:"totalUsers"`
		TotalCourses     Number `json:"totalCourses"`
		TotalEnrollments Number `json:"totalEnrollments"`
	} `json:"overview"`
	RecentEnrollments []struct {
		Date  string `json:"date"`
		Count Number `json:"count"`
	} `json:"recentEnrollments"`
}

// TopCourseDTO is a row of /statistics/reports/top-courses. Counts arrive
// as strings from raw aggregate queries.
type TopCourseDTO struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Students Number `json:"students"`
}

// InstructorStatDTO is a row of /statistics/reports/instructor-stats.
type InstructorStatDTO struct {
	UserID        string `json:"user_id"`
	UserFullName  string `json:"user_fullName"`
	UserEmail     string `json:"user_email"`
	CoursesCount  Number `json:"courses_count"`
	TotalStudents Number `json:"total_students"`
}
