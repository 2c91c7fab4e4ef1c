package dto

import "time"

type QuizOptionDTO struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	IsCorrect   bool    `json:"isCorrect"`
	Explanation *string `json:"explanation,omitempty"`
}

type QuizQuestionDTO struct {
	ID      string          `json:"id"`
	Prompt  string          `json:"prompt"`
	Points  int             `json:"points"`
	Order   int             `json:"order"`
	Options []QuizOptionDTO `json:"options"`
}

// QuizDTO is a quiz as returned by the backend. LessonID is nil for
// course-wide quizzes.
type QuizDTO struct {
	ID               string            `json:"id" validate:"required"`
	Title            string            `json:"title"`
	Description      *string           `json:"description,omitempty"`
	TimeLimitSeconds *int              `json:"timeLimitSeconds,omitempty"`
	IsPublished      *bool             `json:"isPublished,omitempty"`
	Order            *int              `json:"order,omitempty"`
	CourseID         string            `json:"courseId"`
	LessonID         *string           `json:"lessonId,omitempty"`
	Questions        []QuizQuestionDTO `json:"questions,omitempty"`
	CreatedAt        *time.Time        `json:"createdAt,omitempty"`
	UpdatedAt        *time.Time        `json:"updatedAt,omitempty"`
}

type QuizOptionPayloadDTO struct {
	Label       string  `json:"label" validate:"required"`
	Explanation *string `json:"explanation,omitempty"`
	IsCorrect   *bool   `json:"isCorrect,omitempty"`
}

type QuizQuestionPayloadDTO struct {
	Prompt  string                 `json:"prompt" validate:"required"`
	Order   *int                   `json:"order,omitempty"`
	Points  *int                   `json:"points,omitempty" validate:"omitempty,gte=0"`
	Options []QuizOptionPayloadDTO `json:"options" validate:"required,min=1,dive"`
}

// QuizCreateDTO is the body of POST /quizzes.
type QuizCreateDTO struct {
	Title            string                   `json:"title" validate:"required"`
	CourseID         string                   `json:"courseId" validate:"required"`
	Description      *string                  `json:"description,omitempty"`
	LessonID         *string                  `json:"lessonId,omitempty"`
	Order            *int                     `json:"order,omitempty"`
	TimeLimitSeconds *int                     `json:"timeLimitSeconds,omitempty" validate:"omitempty,gt=0"`
	IsPublished      *bool                    `json:"isPublished,omitempty"`
	Questions        []QuizQuestionPayloadDTO `json:"questions,omitempty" validate:"dive"`
}

// QuizUpdateDTO is the body of PATCH /quizzes/{id}.
type QuizUpdateDTO struct {
	Title            *string                  `json:"title,omitempty" validate:"omitempty,min=1"`
	CourseID         *string                  `json:"courseId,omitempty"`
	Description      *string                  `json:"description,omitempty"`
	LessonID         *string                  `json:"lessonId,omitempty"`
	Order            *int                     `json:"order,omitempty"`
	TimeLimitSeconds *int                     `json:"timeLimitSeconds,omitempty" validate:"omitempty,gt=0"`
	IsPublished      *bool                    `json:"isPublished,omitempty"`
	Questions        []QuizQuestionPayloadDTO `json:"questions,omitempty" validate:"dive"`
}
