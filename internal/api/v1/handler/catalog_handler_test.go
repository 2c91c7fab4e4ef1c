package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vulearn/internal/apiclient"
	"vulearn/internal/model"
	"vulearn/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCourses struct {
	service.CourseService
	courses []model.Course
	gotOpts service.ListOptions
	listErr error
	slugErr error
	bySlug  map[string]model.Course
}

func (f *fakeCourses) List(_ context.Context, opts service.ListOptions) ([]model.Course, error) {
	f.gotOpts = opts
	return f.courses, f.listErr
}

func (f *fakeCourses) Featured(context.Context) ([]model.Course, error) {
	if len(f.courses) > 1 {
		return f.courses[:1], nil
	}
	return f.courses, nil
}

func (f *fakeCourses) BySlug(_ context.Context, slug string) (*model.Course, error) {
	if f.slugErr != nil {
		return nil, f.slugErr
	}
	c, ok := f.bySlug[slug]
	if !ok {
		return nil, service.ErrCourseNotFound
	}
	return &c, nil
}

type fakeLessons struct {
	service.LessonService
	byCourse map[string][]model.Lesson
}

func (f fakeLessons) ForCourse(_ context.Context, courseID string) []model.Lesson {
	return f.byCourse[courseID]
}

type fakeQuizzes struct {
	service.QuizService
	err error
}

func (f fakeQuizzes) ForCourse(_ context.Context, courseID string) ([]model.Quiz, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []model.Quiz{{ID: "q1", CourseID: courseID}}, nil
}

type fakeReviews struct {
	service.ReviewService
}

func (fakeReviews) ForCourse(_ context.Context, courseID string) ([]model.Review, error) {
	return []model.Review{{ID: "r1", CourseID: courseID, Rating: 5}}, nil
}

func newRouter(courses *fakeCourses, quizzes fakeQuizzes) *mux.Router {
	h := NewCatalogHandler(
		courses,
		fakeLessons{byCourse: map[string][]model.Lesson{"c1": {{ID: "l1", CourseID: "c1"}}}},
		quizzes,
		fakeReviews{},
		service.NewContentService(),
		zerolog.Nop(),
	)
	r := mux.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestListCourses(t *testing.T) {
	courses := &fakeCourses{courses: []model.Course{{ID: "c1", Slug: "go"}, {ID: "c2", Slug: "rust"}}}
	r := newRouter(courses, fakeQuizzes{})

	rec := get(t, r, "/courses?live=true")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.True(t, courses.gotOpts.Live)
	assert.Len(t, decode[[]model.Course](t, rec), 2)
}

func TestListCoursesRejectsBadLiveFlag(t *testing.T) {
	r := newRouter(&fakeCourses{}, fakeQuizzes{})

	rec := get(t, r, "/courses?live=maybe")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCoursesEmptyIsArray(t *testing.T) {
	r := newRouter(&fakeCourses{}, fakeQuizzes{})

	rec := get(t, r, "/courses")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestFeaturedIsNotTreatedAsSlug(t *testing.T) {
	courses := &fakeCourses{courses: []model.Course{{ID: "c1"}, {ID: "c2"}}}
	r := newRouter(courses, fakeQuizzes{})

	rec := get(t, r, "/courses/featured")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Course](t, rec), 1)
}

func TestGetCourse(t *testing.T) {
	courses := &fakeCourses{bySlug: map[string]model.Course{"go": {ID: "c1", Slug: "go"}}}
	r := newRouter(courses, fakeQuizzes{})

	rec := get(t, r, "/courses/go")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "c1", decode[model.Course](t, rec).ID)

	rec = get(t, r, "/courses/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpstreamErrorsAreBadGateway(t *testing.T) {
	courses := &fakeCourses{listErr: &apiclient.APIError{StatusCode: http.StatusInternalServerError, Message: "down"}}
	r := newRouter(courses, fakeQuizzes{err: &apiclient.APIError{StatusCode: http.StatusNotFound, Message: "gone"}})

	assert.Equal(t, http.StatusBadGateway, get(t, r, "/courses").Code)
	assert.Equal(t, http.StatusNotFound, get(t, r, "/courses/c1/quizzes").Code)
}

func TestCourseChildren(t *testing.T) {
	r := newRouter(&fakeCourses{}, fakeQuizzes{})

	lessons := decode[[]model.Lesson](t, get(t, r, "/courses/c1/lessons"))
	require.Len(t, lessons, 1)
	assert.Equal(t, "l1", lessons[0].ID)

	assert.JSONEq(t, "[]", get(t, r, "/courses/unknown/lessons").Body.String())

	quizzes := decode[[]model.Quiz](t, get(t, r, "/courses/c1/quizzes"))
	require.Len(t, quizzes, 1)
	assert.Equal(t, "c1", quizzes[0].CourseID)

	reviews := decode[[]model.Review](t, get(t, r, "/courses/c1/reviews"))
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)
}

func TestContentEndpoints(t *testing.T) {
	r := newRouter(&fakeCourses{}, fakeQuizzes{})

	assert.Len(t, decode[[]string](t, get(t, r, "/categories")), 6)
	assert.Len(t, decode[[]model.Testimonial](t, get(t, r, "/testimonials")), 2)
	assert.Equal(t, map[string]string{"status": "ok"}, decode[map[string]string](t, get(t, r, "/healthz")))
}

func TestMethodNotAllowed(t *testing.T) {
	r := newRouter(&fakeCourses{}, fakeQuizzes{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/courses", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
