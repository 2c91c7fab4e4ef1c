package dto

import "time"

type CommentDTO struct {
	ID        string       `json:"id" validate:"required"`
	LessonID  string       `json:"lessonId"`
	UserID    string       `json:"userId"`
	ParentID  *string      `json:"parentId,omitempty"`
	Content   string       `json:"content"`
	User      *AuthorDTO   `json:"user,omitempty"`
	Replies   []CommentDTO `json:"replies,omitempty" validate:"dive"`
	CreatedAt time.Time    `json:"createdAt"`
}

// CommentCreateDTO is the body of POST /comments.
type CommentCreateDTO struct {
	LessonID string  `json:"lessonId" validate:"required"`
	Content  string  `json:"content" validate:"required"`
	ParentID *string `json:"parentId,omitempty"`
}
