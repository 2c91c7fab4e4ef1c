package model

import "time"

// VideoStatus tracks transcoding of a lesson video.
type VideoStatus string

const (
	VideoPending    VideoStatus = "PENDING"
	VideoProcessing VideoStatus = "PROCESSING"
	VideoReady      VideoStatus = "READY"
	VideoFailed     VideoStatus = "FAILED"
)

type Lesson struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	DurationMinutes int         `json:"durationMinutes"`
	IsPreview       bool        `json:"isPreview"`
	VideoStatus     VideoStatus `json:"videoStatus,omitempty"`
	Order           int         `json:"order"`
	CourseID        string      `json:"courseId,omitempty"`
	ModuleID        *string     `json:"moduleId"`
	Quizzes         []Quiz      `json:"quizzes,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
	VideoURL        *string     `json:"videoUrl"`
	Content         *string     `json:"content"`
}

type QuizOption struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	IsCorrect   bool    `json:"isCorrect"`
	Explanation *string `json:"explanation,omitempty"`
}

type QuizQuestion struct {
	ID      string       `json:"id"`
	Prompt  string       `json:"prompt"`
	Points  int          `json:"points"`
	Order   int          `json:"order"`
	Options []QuizOption `json:"options"`
}

// Quiz belongs to a course and, when LessonID is set, to one lesson.
type Quiz struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Description      *string        `json:"description,omitempty"`
	CourseID         string         `json:"courseId"`
	LessonID         *string        `json:"lessonId"`
	TimeLimitSeconds *int           `json:"timeLimitSeconds,omitempty"`
	IsPublished      bool           `json:"isPublished"`
	Order            int            `json:"order"`
	Questions        []QuizQuestion `json:"questions,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// CourseWide reports whether the quiz is not tied to a lesson.
func (q Quiz) CourseWide() bool {
	return q.LessonID == nil || *q.LessonID == ""
}
