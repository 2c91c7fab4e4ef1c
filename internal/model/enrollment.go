package model

import "time"

// Enrollment links a user to a course with progress tracking.
type Enrollment struct {
	ID                 string   `json:"id"`
	CourseID           string   `json:"courseId"`
	UserID             string   `json:"userId,omitempty"`
	ProgressPercent    int      `json:"progressPercent"`
	LastAccessed       string   `json:"lastAccessed"`
	CompletedLessonIDs []string `json:"completedLessonIds,omitempty"`
}

// EnrolledCourse is an enrollment joined with its course.
type EnrolledCourse struct {
	Enrollment
	Course *Course `json:"course"`
}

type WishlistItem struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	CourseID  string  `json:"courseId"`
	Course    *Course `json:"course,omitempty"`
	CreatedAt string  `json:"createdAt,omitempty"`
}

type Payment struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	CourseID    string    `json:"courseId"`
	CourseTitle string    `json:"courseTitle"`
}
