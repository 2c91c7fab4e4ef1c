package service

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"vulearn/internal/api/v1/dto"
	"vulearn/internal/mockdata"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func courseDTOs(n int) []dto.CourseDTO {
	out := make([]dto.CourseDTO, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, dto.CourseDTO{ID: fmt.Sprintf("c%d", i), Title: fmt.Sprintf("Course %d", i), Slug: fmt.Sprintf("course-%d", i), Level: "BEGINNER"})
	}
	return out
}

func TestCourseListFallsBackToMockData(t *testing.T) {
	svc := NewCourseService(unreachableClient(t), zerolog.Nop())

	courses, err := svc.List(context.Background(), ListOptions{})
	require.NoError(t, err)
	require.Len(t, courses, 3)
	assert.Equal(t, mockdata.Courses()[0].Slug, courses[0].Slug)

	courses, err = svc.List(context.Background(), ListOptions{Live: true})
	require.NoError(t, err)
	assert.Len(t, courses, 3)
}

func TestCourseListWithoutFallback(t *testing.T) {
	svc := NewCourseService(unreachableClient(t), zerolog.Nop())
	_, err := svc.List(context.Background(), ListOptions{NoMockFallback: true})
	require.Error(t, err)

	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []dto.CourseDTO{})
	}))
	svc = NewCourseService(api.client, zerolog.Nop())
	courses, err := svc.List(context.Background(), ListOptions{NoMockFallback: true})
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestCourseListLive(t *testing.T) {
	var hits atomic.Int32
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "no-store", r.Header.Get("Cache-Control"))
		writeJSON(w, http.StatusOK, courseDTOs(5))
	}))
	svc := NewCourseService(api.client, zerolog.Nop())
	ctx := context.Background()

	courses, err := svc.List(ctx, ListOptions{Live: true})
	require.NoError(t, err)
	require.Len(t, courses, 5)
	assert.Equal(t, "Premium curriculum crafted for ambitious course creators.", courses[0].Description)
	assert.Equal(t, int32(1), hits.Load())

	featured, err := svc.Featured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 3)
	assert.Equal(t, "c3", featured[2].ID)
}

func TestCourseListLiveEmpty(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []dto.CourseDTO{})
	}))
	svc := NewCourseService(api.client, zerolog.Nop())

	_, err := svc.ListLive(context.Background())
	require.ErrorIs(t, err, ErrNoLiveCourses)
	assert.Equal(t, "Unable to load courses from the API.", err.Error())
}

func TestCourseListSkipsInvalidCourses(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": "c1", "title": "Valid", "slug": "valid", "level": "BEGINNER"},
			{"id": "c2", "title": "Bad level", "slug": "bad", "level": "EXPERT"},
			{"title": "No id", "slug": "no-id"},
		})
	}))
	svc := NewCourseService(api.client, zerolog.Nop())

	courses, err := svc.List(context.Background(), ListOptions{})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "c1", courses[0].ID)
}

func TestCourseListKeepsCoursesWithMalformedFields(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"id": "live-1", "title": "Rated by hand", "slug": "live-1", "level": "BEGINNER", "metadata": {"rating": "N/A"}},
			{"id": "live-2", "title": "Fractional", "slug": "live-2", "level": "BEGINNER", "durationMinutes": 12.5},
			{"id": "live-3", "title": "Numeric language", "slug": "live-3", "level": "BEGINNER", "metadata": {"language": 7}},
			{"id": 4, "title": "Numeric id", "slug": "live-4"}
		]`)
	}))
	svc := NewCourseService(api.client, zerolog.Nop())

	courses, err := svc.List(context.Background(), ListOptions{})
	require.NoError(t, err)

	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"live-1", "live-2", "live-3"}, ids)
	assert.Equal(t, 4.8, courses[0].Rating)
	assert.Equal(t, 12, courses[1].DurationMinutes)
	assert.Equal(t, "7", courses[2].Language)
}

func TestCourseBySlug(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /courses/slug/{slug}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("slug") != "go-basics" {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Course not found"})
			return
		}
		writeJSON(w, http.StatusOK, dto.CourseDTO{ID: "c1", Title: "Go Basics", Slug: "go-basics", Level: "BEGINNER"})
	})
	api := newTestAPI(t, mux)
	svc := NewCourseService(api.client, zerolog.Nop())
	ctx := context.Background()

	c, err := svc.BySlug(ctx, "go-basics")
	require.NoError(t, err)
	assert.Equal(t, "Go Basics", c.Title)

	_, err = svc.BySlug(ctx, "nope")
	require.ErrorIs(t, err, ErrCourseNotFound)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.BySlug(ctx, "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCourseWrites(t *testing.T) {
	var deleted atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc("POST /courses", func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r)
		writeJSON(w, http.StatusCreated, dto.CourseDTO{ID: "c9", Title: "New", Slug: "new", Level: "ADVANCED"})
	})
	mux.HandleFunc("PATCH /courses/c9", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("DELETE /courses/c9", func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r)
		deleted.Store(true)
		w.WriteHeader(http.StatusNoContent)
	})
	api := newTestAPI(t, mux)
	svc := NewCourseService(api.client, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CourseCreateDTO{Title: "New", Slug: "new", Level: "EXPERT", InstructorID: "u1"})
	require.Error(t, err)

	c, err := svc.Create(ctx, dto.CourseCreateDTO{Title: "New", Slug: "new", Level: "ADVANCED", InstructorID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "c9", c.ID)

	_, err = svc.Update(ctx, "c9", dto.CourseUpdateDTO{Title: ptr("Renamed")})
	require.ErrorIs(t, err, ErrEmptyResponse)
	assert.Equal(t, "Course update returned an empty response.", err.Error())

	require.NoError(t, svc.Delete(ctx, "c9"))
	assert.True(t, deleted.Load())
}
