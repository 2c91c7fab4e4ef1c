package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"vulearn/internal/apiclient"
	"vulearn/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// CatalogHandler serves the public, read-only course catalog.
type CatalogHandler struct {
	courses service.CourseService
	lessons service.LessonService
	quizzes service.QuizService
	reviews service.ReviewService
	content service.ContentService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(
	courses service.CourseService,
	lessons service.LessonService,
	quizzes service.QuizService,
	reviews service.ReviewService,
	content service.ContentService,
	logger zerolog.Logger,
) *CatalogHandler {
	return &CatalogHandler{
		courses: courses,
		lessons: lessons,
		quizzes: quizzes,
		reviews: reviews,
		content: content,
		logger:  logger.With().Str("handler", "CatalogHandler").Logger(),
	}
}

// RegisterRoutes mounts catalog routes. /courses/featured must be registered
// before /courses/{slug}.
func (h *CatalogHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/healthz", h.healthz).Methods(http.MethodGet)
	r.HandleFunc("/courses", h.listCourses).Methods(http.MethodGet)
	r.HandleFunc("/courses/featured", h.featuredCourses).Methods(http.MethodGet)
	r.HandleFunc("/courses/{slug}", h.getCourse).Methods(http.MethodGet)
	r.HandleFunc("/courses/{courseId}/lessons", h.courseLessons).Methods(http.MethodGet)
	r.HandleFunc("/courses/{courseId}/quizzes", h.courseQuizzes).Methods(http.MethodGet)
	r.HandleFunc("/courses/{courseId}/reviews", h.courseReviews).Methods(http.MethodGet)
	r.HandleFunc("/categories", h.categories).Methods(http.MethodGet)
	r.HandleFunc("/testimonials", h.testimonials).Methods(http.MethodGet)
}

// healthz godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *CatalogHandler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// listCourses godoc
// @Summary List courses
// @Description Returns the course catalog. With live=true the backend is asked first without caching.
// @Tags courses
// @Produce json
// @Param live query bool false "Prefer the live catalog"
// @Success 200 {array} model.Course
// @Failure 400 {string} string "Invalid live parameter"
// @Failure 502 {string} string "Failed to list courses"
// @Router /courses [get]
func (h *CatalogHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	var opts service.ListOptions
	if raw := r.URL.Query().Get("live"); raw != "" {
		live, err := strconv.ParseBool(raw)
		if err != nil {
			http.Error(w, "Invalid live parameter: "+err.Error(), http.StatusBadRequest)
			return
		}
		opts.Live = live
	}
	courses, err := h.courses.List(r.Context(), opts)
	if err != nil {
		h.fail(w, "Failed to list courses", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(courses))
}

// featuredCourses godoc
// @Summary Featured courses
// @Tags courses
// @Produce json
// @Success 200 {array} model.Course
// @Failure 502 {string} string "Failed to list featured courses"
// @Router /courses/featured [get]
func (h *CatalogHandler) featuredCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.Featured(r.Context())
	if err != nil {
		h.fail(w, "Failed to list featured courses", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(courses))
}

// getCourse godoc
// @Summary Get a course
// @Description Retrieves a course by its slug.
// @Tags courses
// @Produce json
// @Param slug path string true "Course slug"
// @Success 200 {object} model.Course
// @Failure 404 {string} string "Course not found"
// @Router /courses/{slug} [get]
func (h *CatalogHandler) getCourse(w http.ResponseWriter, r *http.Request) {
	course, err := h.courses.BySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.fail(w, "Failed to retrieve course", err)
		return
	}
	writeJSON(w, http.StatusOK, course)
}

// courseLessons godoc
// @Summary Lessons of a course
// @Tags lessons
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {array} model.Lesson
// @Router /courses/{courseId}/lessons [get]
func (h *CatalogHandler) courseLessons(w http.ResponseWriter, r *http.Request) {
	lessons := h.lessons.ForCourse(r.Context(), mux.Vars(r)["courseId"])
	writeJSON(w, http.StatusOK, nonNil(lessons))
}

// courseQuizzes godoc
// @Summary Quizzes of a course
// @Tags quizzes
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {array} model.Quiz
// @Failure 502 {string} string "Failed to list quizzes"
// @Router /courses/{courseId}/quizzes [get]
func (h *CatalogHandler) courseQuizzes(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.quizzes.ForCourse(r.Context(), mux.Vars(r)["courseId"])
	if err != nil {
		h.fail(w, "Failed to list quizzes", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(quizzes))
}

// courseReviews godoc
// @Summary Reviews of a course
// @Tags reviews
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {array} model.Review
// @Failure 502 {string} string "Failed to list reviews"
// @Router /courses/{courseId}/reviews [get]
func (h *CatalogHandler) courseReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.ForCourse(r.Context(), mux.Vars(r)["courseId"])
	if err != nil {
		h.fail(w, "Failed to list reviews", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(reviews))
}

// categories godoc
// @Summary Course categories
// @Tags content
// @Produce json
// @Success 200 {array} string
// @Router /categories [get]
func (h *CatalogHandler) categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, nonNil(h.content.Categories()))
}

// testimonials godoc
// @Summary Student testimonials
// @Tags content
// @Produce json
// @Success 200 {array} model.Testimonial
// @Router /testimonials [get]
func (h *CatalogHandler) testimonials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, nonNil(h.content.Testimonials()))
}

// fail maps service errors onto gateway responses. Backend failures are
// reported as 502 so clients can tell them apart from gateway bugs.
func (h *CatalogHandler) fail(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case apiclient.StatusCode(err) == http.StatusNotFound:
		http.Error(w, msg+": "+err.Error(), http.StatusNotFound)
	case apiclient.StatusCode(err) > 0:
		h.logger.Warn().Err(err).Int("upstream_status", apiclient.StatusCode(err)).Msg(msg)
		http.Error(w, msg+": "+err.Error(), http.StatusBadGateway)
	default:
		h.logger.Error().Err(err).Msg(msg)
		http.Error(w, msg+": "+err.Error(), http.StatusBadGateway)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// nonNil keeps empty lists encoding as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
