package dto

import "time"

// InstructorDTO is the instructor summary embedded in course payloads.
type InstructorDTO struct {
	ID        string  `json:"id" validate:"required"`
	Name      *string `json:"name,omitempty"`
	FullName  *string `json:"full_name,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}

// CourseMetadataDTO lists the extras the backend stores in a course's
// metadata bag. Every field is optional.
type CourseMetadataDTO struct {
	Rating             *Number  `json:"rating,omitempty"`
	RatingCount        *Number  `json:"ratingCount,omitempty"`
	Students           *Number  `json:"students,omitempty"`
	Price              *Number  `json:"price,omitempty"`
	Language           *Text    `json:"language,omitempty"`
	UpdatedAt          *Text    `json:"updatedAt,omitempty"`
	InstructorTitle    *Text    `json:"instructorTitle,omitempty"`
	InstructorStudents *Number  `json:"instructorStudents,omitempty"`
	InstructorReviews  *Number  `json:"instructorReviews,omitempty"`
	Highlights         []string `json:"highlights,omitempty"`
	WhatYouWillLearn   []string `json:"whatYouWillLearn,omitempty"`
	Requirements       []string `json:"requirements,omitempty"`
}

// ModuleDTO groups lessons inside a course.
type ModuleDTO struct {
	ID          string      `json:"id" validate:"required"`
	Title       string      `json:"title"`
	Description *string     `json:"description,omitempty"`
	Lessons     []LessonDTO `json:"lessons" validate:"dive"`
}

// CourseDTO is a course as returned by the backend.
type CourseDTO struct {
	ID               string             `json:"id" validate:"required"`
	Title            string             `json:"title"`
	Slug             string             `json:"slug"`
	Description      *string            `json:"description,omitempty"`
	Level            string             `json:"level" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	DurationMinutes  Number             `json:"durationMinutes"`
	Tags             []string           `json:"tags"`
	ThumbnailURL     *string            `json:"thumbnailUrl,omitempty"`
	IsPublished      bool               `json:"isPublished"`
	WhatYouWillLearn []string           `json:"whatYouWillLearn,omitempty"`
	Modules          []ModuleDTO        `json:"modules,omitempty" validate:"dive"`
	Lessons          []LessonDTO        `json:"lessons,omitempty" validate:"dive"`
	Instructor       *InstructorDTO     `json:"instructor,omitempty" validate:"omitempty"`
	Metadata         *CourseMetadataDTO `json:"metadata,omitempty"`
}

// CourseCreateDTO is the body of POST /courses.
type CourseCreateDTO struct {
	Title           string   `json:"title" validate:"required"`
	Slug            string   `json:"slug" validate:"required"`
	Description     *string  `json:"description,omitempty"`
	Level           string   `json:"level" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	DurationMinutes int      `json:"durationMinutes" validate:"gte=0"`
	IsPublished     bool     `json:"isPublished"`
	Tags            []string `json:"tags,omitempty"`
	ThumbnailURL    *string  `json:"thumbnailUrl,omitempty"`
	InstructorID    string   `json:"instructorId" validate:"required"`
}

// CourseUpdateDTO is the body of PATCH /courses/{id}.
type CourseUpdateDTO struct {
	Title           *string  `json:"title,omitempty" validate:"omitempty,min=1"`
	Slug            *string  `json:"slug,omitempty" validate:"omitempty,min=1"`
	Description     *string  `json:"description,omitempty"`
	Level           *string  `json:"level,omitempty" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	DurationMinutes *int     `json:"durationMinutes,omitempty" validate:"omitempty,gte=0"`
	IsPublished     *bool    `json:"isPublished,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	ThumbnailURL    *string  `json:"thumbnailUrl,omitempty"`
	InstructorID    *string  `json:"instructorId,omitempty"`
}

// AdminCourseDTO is a row of GET /courses/admin.
type AdminCourseDTO struct {
	ID          string    `json:"id" validate:"required"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	IsPublished bool      `json:"isPublished"`
	IsFeatured  bool      `json:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt"`
	Instructor  struct {
		ID       string  `json:"id"`
		FullName *string `json:"fullName,omitempty"`
		Email    string  `json:"email"`
	} `json:"instructor"`
	Rating      Number `json:"rating"`
	RatingCount Number `json:"ratingCount"`
}

// CourseStatusDTO is the body of PATCH /courses/{id}/status.
type CourseStatusDTO struct {
	IsPublished bool `json:"isPublished"`
}

// CourseFeatureDTO is the body of PATCH /courses/{id}/feature.
type CourseFeatureDTO struct {
	IsFeatured bool `json:"isFeatured"`
}
