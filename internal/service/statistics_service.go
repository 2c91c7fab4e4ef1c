package service

import (
	"context"

	"vulearn/internal/api/v1/dto"
	"vulearn/internal/apiclient"
	"vulearn/internal/model"

	"github.com/rs/zerolog"
)

// StatisticsService reads the admin dashboard and report aggregates.
type StatisticsService interface {
	Overview(ctx context.Context) (*model.StatisticsOverview, error)
	TopCourses(ctx context.Context) ([]model.TopCourse, error)
	InstructorStats(ctx context.Context) ([]model.InstructorStat, error)
}

type statisticsService struct {
	backend
}

func NewStatisticsService(client *apiclient.Client, logger zerolog.Logger) StatisticsService {
	return &statisticsService{backend: newBackend(client, logger, "StatisticsService")}
}

func (s *statisticsService) Overview(ctx context.Context) (*model.StatisticsOverview, error) {
	o, err := fetchOne[dto.StatisticsOverviewDTO](ctx, &s.backend, "/statistics/overview", noStore(), authOnly)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrStatsUnavailable
	}
	overview := transformOverview(*o)
	return &overview, nil
}

func (s *statisticsService) TopCourses(ctx context.Context) ([]model.TopCourse, error) {
	items, err := fetchList[dto.TopCourseDTO](ctx, &s.backend, "/statistics/reports/top-courses", nil, authOrMock)
	if err != nil {
		return nil, err
	}
	out := make([]model.TopCourse, 0, len(items))
	for _, c := range items {
		out = append(out, model.TopCourse{ID: c.ID, Title: c.Title, Slug: c.Slug, Students: c.Students.Int()})
	}
	return out, nil
}

func (s *statisticsService) InstructorStats(ctx context.Context) ([]model.InstructorStat, error) {
	items, err := fetchList[dto.InstructorStatDTO](ctx, &s.backend, "/statistics/reports/instructor-stats", nil, authOrMock)
	if err != nil {
		return nil, err
	}
	out := make([]model.InstructorStat, 0, len(items))
	for _, st := range items {
		out = append(out, model.InstructorStat{
			UserID:        st.UserID,
			FullName:      st.UserFullName,
			Email:         st.UserEmail,
			CoursesCount:  st.CoursesCount.Int(),
			TotalStudents: st.TotalStudents.Int(),
		})
	}
	return out, nil
}
