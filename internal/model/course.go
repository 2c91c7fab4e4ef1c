package model

import "time"

// CourseLevel is the difficulty tier of a course.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "BEGINNER"
	LevelIntermediate CourseLevel = "INTERMEDIATE"
	LevelAdvanced     CourseLevel = "ADVANCED"
)

// Instructor is the course author as shown on catalog pages.
type Instructor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	AvatarURL string `json:"avatarUrl"`
	Bio       string `json:"bio"`
	Students  int    `json:"students"`
	Reviews   int    `json:"reviews"`
}

// CourseModule groups lessons in the curriculum.
type CourseModule struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Lessons     []Lesson `json:"lessons"`
}

// Course is the catalog view of a course with every optional backend field
// resolved to a concrete value.
type Course struct {
	ID               string         `json:"id"`
	Slug             string         `json:"slug"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Level            CourseLevel    `json:"level"`
	IsPublished      bool           `json:"isPublished"`
	DurationMinutes  int            `json:"durationMinutes"`
	Rating           float64        `json:"rating"`
	RatingCount      int            `json:"ratingCount"`
	Students         int            `json:"students"`
	Price            float64        `json:"price"`
	Currency         string         `json:"currency"`
	Language         string         `json:"language"`
	Tags             []string       `json:"tags"`
	Categories       []string       `json:"categories"`
	ThumbnailURL     *string        `json:"thumbnailUrl"`
	ThumbnailColor   string         `json:"thumbnailColor"`
	UpdatedAt        string         `json:"updatedAt"`
	Instructor       Instructor     `json:"instructor"`
	Modules          []CourseModule `json:"modules"`
	Lessons          []Lesson       `json:"lessons"`
	Highlights       []string       `json:"highlights"`
	WhatYouWillLearn []string       `json:"whatYouWillLearn"`
	Requirements     []string       `json:"requirements"`
}

// AdminCourse is a row of the course moderation table.
type AdminCourse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	IsPublished     bool      `json:"isPublished"`
	IsFeatured      bool      `json:"isFeatured"`
	CreatedAt       time.Time `json:"createdAt"`
	InstructorID    string    `json:"instructorId"`
	InstructorName  string    `json:"instructorName"`
	InstructorEmail string    `json:"instructorEmail"`
	Rating          float64   `json:"rating"`
	RatingCount     int       `json:"ratingCount"`
}

// Testimonial is a learner quote shown on the landing page.
type Testimonial struct {
	ID          string `json:"id"`
	Quote       string `json:"quote"`
	LearnerName string `json:"learnerName"`
	Role        string `json:"role"`
	CourseID    string `json:"courseId"`
}

// LearningPath is a curated sequence of steps across courses.
type LearningPath struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}
