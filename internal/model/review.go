package model

import "time"

// Author is the display identity attached to reviews and comments.
type Author struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type Review struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"courseId"`
	CourseTitle string    `json:"courseTitle,omitempty"`
	UserID      string    `json:"userId"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	Author      Author    `json:"author"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Comment is a lesson discussion entry. Only top-level comments carry
// replies.
type Comment struct {
	ID        string    `json:"id"`
	LessonID  string    `json:"lessonId"`
	UserID    string    `json:"userId"`
	ParentID  *string   `json:"parentId,omitempty"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	Replies   []Comment `json:"replies,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
