package dto

// EnrollmentDTO links a user to a course with progress tracking.
type EnrollmentDTO struct {
	ID                 string   `json:"id" validate:"required"`
	CourseID           string   `json:"courseId" validate:"required"`
	UserID             string   `json:"userId,omitempty"`
	ProgressPercent    Number   `json:"progressPercent"`
	LastAccessed       string   `json:"lastAccessed,omitempty"`
	CompletedLessonIDs []string `json:"completedLessonIds,omitempty"`
}

// EnrollmentCreateDTO is the body of POST /enrollments.
type EnrollmentCreateDTO struct {
	UserID          string `json:"userId" validate:"required"`
	CourseID        string `json:"courseId" validate:"required"`
	ProgressPercent *int   `json:"progressPercent,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// EnrollmentUpdateDTO is the body of PATCH /enrollments/{id}.
type EnrollmentUpdateDTO struct {
	ProgressPercent    *int     `json:"progressPercent,omitempty" validate:"omitempty,gte=0,lte=100"`
	CompletedLessonIDs []string `json:"completedLessonIds,omitempty"`
}
