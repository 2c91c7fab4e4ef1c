package service

import (
	"context"
	"net/http"

	"vulearn/internal/api/v1/dto"
	"vulearn/internal/apiclient"
	"vulearn/internal/model"

	"github.com/rs/zerolog"
)

type EnrollmentService interface {
	// Mine returns the signed-in user's enrollments joined with their courses.
	Mine(ctx context.Context) ([]model.EnrolledCourse, error)
	// Enroll may return (nil, nil) when the backend answers with no body.
	Enroll(ctx context.Context, payload dto.EnrollmentCreateDTO) (*model.Enrollment, error)
	// ForCourse returns the user's enrollment in a course, or nil.
	ForCourse(ctx context.Context, userID, courseID string) (*model.Enrollment, error)
	Update(ctx context.Context, enrollmentID string, payload dto.EnrollmentUpdateDTO) (*model.Enrollment, error)
}

type enrollmentService struct {
	backend
	courses CourseService
}

func NewEnrollmentService(client *apiclient.Client, courses CourseService, logger zerolog.Logger) EnrollmentService {
	return &enrollmentService{backend: newBackend(client, logger, "EnrollmentService"), courses: courses}
}

func (s *enrollmentService) Mine(ctx context.Context) ([]model.EnrolledCourse, error) {
	courses, err := s.courses.List(ctx, ListOptions{Live: true})
	if err != nil {
		return nil, err
	}
	items, err := fetchList[dto.EnrollmentDTO](ctx, &s.backend, "/enrollments/user/me", noStore(), authOnly)
	if err != nil {
		return nil, err
	}
	return joinEnrollments(items, courses), nil
}

// joinEnrollments attaches each enrollment's course. An enrollment whose
// course is not in the catalog is shown with the first course.
func joinEnrollments(items []dto.EnrollmentDTO, courses []model.Course) []model.EnrolledCourse {
	byID := make(map[string]int, len(courses))
	for i, c := range courses {
		byID[c.ID] = i
	}
	out := make([]model.EnrolledCourse, 0, len(items))
	for _, e := range items {
		ec := model.EnrolledCourse{Enrollment: transformEnrollment(e)}
		if i, ok := byID[e.CourseID]; ok {
			ec.Course = &courses[i]
		} else if len(courses) > 0 {
			ec.Course = &courses[0]
		}
		out = append(out, ec)
	}
	return out
}

func (s *enrollmentService) Enroll(ctx context.Context, payload dto.EnrollmentCreateDTO) (*model.Enrollment, error) {
	if err := s.checkPayload(payload); err != nil {
		return nil, err
	}
	e, err := fetchOne[dto.EnrollmentDTO](ctx, &s.backend, "/enrollments", send(http.MethodPost, payload), authOnly)
	if err != nil {
		return nil, err
	}
	if sess := s.client.Session(); sess != nil {
		sess.NotifyEnrollmentChanged()
	}
	if e == nil {
		return nil, nil
	}
	enrollment := transformEnrollment(*e)
	s.logger.Info().Str("course_id", enrollment.CourseID).Str("user_id", payload.UserID).Msg("Enrolled in course")
	return &enrollment, nil
}

func (s *enrollmentService) ForCourse(ctx context.Context, userID, courseID string) (*model.Enrollment, error) {
	items, err := fetchList[dto.EnrollmentDTO](ctx, &s.backend, "/enrollments/user/"+seg(userID), noStore(), authOnly)
	if err != nil {
		return nil, err
	}
	for _, e := range items {
		if e.CourseID == courseID {
			enrollment := transformEnrollment(e)
			return &enrollment, nil
		}
	}
	return nil, nil
}

func (s *enrollmentService) Update(ctx context.Context, enrollmentID string, payload dto.EnrollmentUpdateDTO) (*model.Enrollment, error) {
	if err := s.checkPayload(payload); err != nil {
		return nil, err
	}
	e, err := fetchOne[dto.EnrollmentDTO](ctx, &s.backend, "/enrollments/"+seg(enrollmentID), send(http.MethodPatch, payload), authOnly)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, emptyResponse("Enrollment update returned an empty response.")
	}
	if sess := s.client.Session(); sess != nil {
		sess.NotifyEnrollmentChanged()
	}
	enrollment := transformEnrollment(*e)
	return &enrollment, nil
}
