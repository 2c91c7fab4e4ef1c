package service

import (
	"context"
	"net/http"

	"vulearn/internal/api/v1/dto"
	"vulearn/internal/apiclient"
	"vulearn/internal/mockdata"
	"vulearn/internal/model"

	"github.com/rs/zerolog"
)

// featuredCount is how many courses the landing page features.
const featuredCount = 3

// ListOptions controls how the course catalog is loaded.
type ListOptions struct {
	// Live tries an uncached, no-fallback request first.
	Live bool
	// NoMockFallback returns an empty catalog instead of the bundled sample
	// courses when the backend has none.
	NoMockFallback bool
}

// CourseService defines the interface for course catalog operations
type CourseService interface {
	// List returns the catalog, substituting sample courses unless disabled
	List(ctx context.Context, opts ListOptions) ([]model.Course, error)
	// ListLive returns the backend catalog or ErrNoLiveCourses
	ListLive(ctx context.Context) ([]model.Course, error)
	// Featured returns the first courses of the live-first catalog
	Featured(ctx context.Context) ([]model.Course, error)
	// BySlug returns a course by slug, or ErrCourseNotFound
	BySlug(ctx context.Context, slug string) (*model.Course, error)
	// InstructorCourses lists the signed-in instructor's courses
	InstructorCourses(ctx context.Context) ([]model.Course, error)
	Create(ctx context.Context, payload dto.CourseCreateDTO) (*model.Course, error)
	Update(ctx context.Context, id string, payload dto.CourseUpdateDTO) (*model.Course, error)
	Delete(ctx context.Context, id string) error
}

// courseService is the implementation of CourseService
type courseService struct {
	backend
}

// NewCourseService creates a new CourseService
func NewCourseService(client *apiclient.Client, logger zerolog.Logger) CourseService {
	return &courseService{backend: newBackend(client, logger, "CourseService")}
}

func (s *courseService) transformAll(items []dto.CourseDTO) []model.Course {
	now := s.now()
	courses := make([]model.Course, 0, len(items))
	for _, c := range items {
		courses = append(courses, TransformCourse(c, now))
	}
	return courses
}

// tryLive swallows every failure; callers fall through to the cached path.
func (s *courseService) tryLive(ctx context.Context) []model.Course {
	items, err := fetchList[dto.CourseDTO](ctx, &s.backend, "/courses", noStore(), noFallback)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Live courses request failed")
		return nil
	}
	if len(items) == 0 {
		return nil
	}
	return s.transformAll(items)
}

func (s *courseService) List(ctx context.Context, opts ListOptions) ([]model.Course, error) {
	if opts.Live {
		if live := s.tryLive(ctx); len(live) > 0 {
			return live, nil
		}
	}

	var req *apiclient.Request
	if opts.Live {
		req = noStore()
	}
	fallback := !opts.NoMockFallback
	items, err := fetchList[dto.CourseDTO](ctx, &s.backend, "/courses", req, apiclient.Options{FallbackToMock: fallback})
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		return s.transformAll(items), nil
	}
	if fallback {
		s.logger.Debug().Msg("Serving sample courses")
		return mockdata.Courses(), nil
	}
	return []model.Course{}, nil
}

func (s *courseService) ListLive(ctx context.Context) ([]model.Course, error) {
	live := s.tryLive(ctx)
	if len(live) == 0 {
		return nil, ErrNoLiveCourses
	}
	return live, nil
}

func (s *courseService) Featured(ctx context.Context) ([]model.Course, error) {
	courses, err := s.List(ctx, ListOptions{Live: true})
	if err != nil {
		return nil, err
	}
	if len(courses) > featuredCount {
		courses = courses[:featuredCount]
	}
	return courses, nil
}

func (s *courseService) BySlug(ctx context.Context, slug string) (*model.Course, error) {
	if slug == "" {
		return nil, ErrCourseNotFound
	}
	c, err := fetchOne[dto.CourseDTO](ctx, &s.backend, "/courses/slug/"+seg(slug), noStore(), noFallback)
	if err != nil {
		s.logger.Warn().Err(err).Str("slug", slug).Msg("Failed to fetch course by slug")
		return nil, ErrCourseNotFound
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}
	course := TransformCourse(*c, s.now())
	return &course, nil
}

func (s *courseService) InstructorCourses(ctx context.Context) ([]model.Course, error) {
	items, err := fetchList[dto.CourseDTO](ctx, &s.backend, "/courses/instructor/me", noStore(), authOnly)
	if err != nil {
		return nil, err
	}
	return s.transformAll(items), nil
}

func (s *courseService) Create(ctx context.Context, payload dto.CourseCreateDTO) (*model.Course, error) {
	if err := s.checkPayload(payload); err != nil {
		return nil, err
	}
	c, err := fetchOne[dto.CourseDTO](ctx, &s.backend, "/courses", send(http.MethodPost, payload), authOnly)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, emptyResponse("Course API returned an empty response.")
	}
	course := TransformCourse(*c, s.now())
	s.logger.Info().Str("course_id", course.ID).Msg("Course created")
	return &course, nil
}

func (s *courseService) Update(ctx context.Context, id string, payload dto.CourseUpdateDTO) (*model.Course, error) {
	if err := s.checkPayload(payload); err != nil {
		return nil, err
	}
	c, err := fetchOne[dto.CourseDTO](ctx, &s.backend, "/courses/"+seg(id), send(http.MethodPatch, payload), authOnly)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, emptyResponse("Course update returned an empty response.")
	}
	course := TransformCourse(*c, s.now())
	return &course, nil
}

func (s *courseService) Delete(ctx context.Context, id string) error {
	return s.call(ctx, "/courses/"+seg(id), send(http.MethodDelete, nil), authOnly)
}
