package service

import (
	"vulearn/internal/mockdata"
	"vulearn/internal/model"
)

// ContentService serves the static marketing content bundled with the
// client.
type ContentService interface {
	Testimonials() []model.Testimonial
	Categories() []string
	LearningPaths() []model.LearningPath
}

type contentService struct{}

func NewContentService() ContentService {
	return contentService{}
}

func (contentService) Testimonials() []model.Testimonial { return mockdata.Testimonials() }

func (contentService) Categories() []string { return mockdata.Categories() }

func (contentService) LearningPaths() []model.LearningPath { return mockdata.LearningPaths() }
