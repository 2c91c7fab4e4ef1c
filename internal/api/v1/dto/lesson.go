package dto

import "time"

// LessonDTO is a lesson as returned by the backend.
type LessonDTO struct {
	ID              string     `json:"id" validate:"required"`
	Title           string     `json:"title"`
	Order           *int       `json:"order,omitempty"`
	DurationMinutes *Number    `json:"durationMinutes,omitempty"`
	IsPreview       *bool      `json:"isPreview,omitempty"`
	CourseID        string     `json:"courseId"`
	ModuleID        *string    `json:"moduleId,omitempty"`
	VideoStatus     string     `json:"videoStatus,omitempty" validate:"omitempty,oneof=PENDING PROCESSING READY FAILED"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
	VideoURL        *string    `json:"videoUrl,omitempty"`
	Content         *string    `json:"content,omitempty"`
}

// LessonCreateDTO is the body of POST /lessons.
type LessonCreateDTO struct {
	Title           string  `json:"title" validate:"required"`
	CourseID        string  `json:"courseId" validate:"required"`
	DurationMinutes *int    `json:"durationMinutes,omitempty" validate:"omitempty,gte=0"`
	Order           *int    `json:"order,omitempty" validate:"omitempty,gte=0"`
	IsPreview       *bool   `json:"isPreview,omitempty"`
	ModuleID        *string `json:"moduleId,omitempty"`
	VideoURL        *string `json:"videoUrl,omitempty"`
	Content         *string `json:"content,omitempty"`
}

// LessonUpdateDTO is the body of PATCH /lessons/{id}.
type LessonUpdateDTO struct {
	Title           *string `json:"title,omitempty" validate:"omitempty,min=1"`
	CourseID        *string `json:"courseId,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty" validate:"omitempty,gte=0"`
	Order           *int    `json:"order,omitempty" validate:"omitempty,gte=0"`
	IsPreview       *bool   `json:"isPreview,omitempty"`
	ModuleID        *string `json:"moduleId,omitempty"`
	VideoURL        *string `json:"videoUrl,omitempty"`
	Content         *string `json:"content,omitempty"`
}

// VideoUploadResponseDTO is returned by POST /lessons/video.
type VideoUploadResponseDTO struct {
	VideoURL string `json:"videoUrl"`
}
