package service

import (
	"errors"
	"fmt"
	"net/http"

	"vulearn/internal/apiclient"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrEmptyResponse = errors.New("empty response")

	ErrAuthNoResponse   = errors.New("Authentication service did not respond.")
	ErrRegisterEmpty    = errors.New("Registration failed with an empty response.")
	ErrNoLiveCourses    = errors.New("Unable to load courses from the API.")
	ErrVideoUpload      = errors.New("Video upload failed. Please try again.")
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrCourseNotFound   = fmt.Errorf("course %w", ErrNotFound)
	ErrLessonNotFound   = fmt.Errorf("lesson %w", ErrNotFound)
	ErrQuizNotFound     = fmt.Errorf("quiz %w", ErrNotFound)
	ErrStatsUnavailable = errors.New("Failed to fetch statistics")
)

// EmptyResponseError is returned when a write succeeded at the HTTP level
// but carried no entity back.
type EmptyResponseError struct {
	Message string
}

func (e *EmptyResponseError) Error() string { return e.Message }

func (e *EmptyResponseError) Is(target error) bool { return target == ErrEmptyResponse }

func emptyResponse(msg string) error {
	return &EmptyResponseError{Message: msg}
}

// isNotFound reports whether err is a 404 from the backend.
func isNotFound(err error) bool {
	return apiclient.StatusCode(err) == http.StatusNotFound
}
