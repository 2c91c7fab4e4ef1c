package dto

import "time"

// AuthorDTO is the user summary embedded in reviews and comments.
type AuthorDTO struct {
	ID        string  `json:"id,omitempty"`
	Name      *string `json:"name,omitempty"`
	FullName  *string `json:"fullName,omitempty"`
	Email     *string `json:"email,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

type ReviewDTO struct {
	ID       string     `json:"id" validate:"required"`
	CourseID string     `json:"courseId,omitempty"`
	UserID   string     `json:"userId,omitempty"`
	Rating   int        `json:"rating" validate:"gte=1,lte=5"`
	Comment  string     `json:"comment"`
	User     *AuthorDTO `json:"user,omitempty"`
	Course   *struct {
		Title string `json:"title"`
	} `json:"course,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewCreateDTO is the body of POST /reviews.
type ReviewCreateDTO struct {
	CourseID string `json:"courseId" validate:"required"`
	Rating   int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment  string `json:"comment"`
}
