package service

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"vulearn/internal/api/v1/dto"
	"vulearn/internal/apiclient"
	"vulearn/internal/model"

	"github.com/rs/zerolog"
)

type LessonService interface {
	// ForCourse never fails; errors are logged and yield an empty list.
	ForCourse(ctx context.Context, courseID string) []model.Lesson
	Get(ctx context.Context, id string) (*model.Lesson, error)
	Create(ctx context.Context, payload dto.LessonCreateDTO) (*model.Lesson, error)
	Update(ctx context.Context, id string, payload dto.LessonUpdateDTO) (*model.Lesson, error)
	Delete(ctx context.Context, id string) error
	// UploadVideo sends a video file and returns its hosted URL.
	UploadVideo(ctx context.Context, filename string, video io.Reader) (string, error)
}

type lessonService struct {
	backend
}

func NewLessonService(client *apiclient.Client, logger zerolog.Logger) LessonService {
	return &lessonService{backend: newBackend(client, logger, "LessonService")}
}

func (s *lessonService) ForCourse(ctx context.Context, courseID string) []model.Lesson {
	if courseID == "" {
		return []model.Lesson{}
	}
	// t busts intermediary caches.
	path := fmt.Sprintf("/lessons/course/%s?t=%d", seg(courseID), s.now().UnixMilli())
	items, err := fetchList[dto.LessonDTO](ctx, &s.backend, path, noStore(), apiclient.DefaultOptions())
	if err != nil {
		s.logger.Error().Err(err).Str("course_id", courseID).Msg("Failed to get lessons")
		return []model.Lesson{}
	}
	now := s.now()
	lessons := make([]model.Lesson, 0, len(items))
	for _, l := range items {
		lessons = append(lessons, TransformLesson(l, now))
	}
	return lessons
}

func (s *lessonService) Get(ctx context.Context, id string) (*model.Lesson, error) {
	if id == "" {
		return nil, ErrLessonNotFound
	}
	l, err := fetchOne[dto.LessonDTO](ctx, &s.backend, "/lessons/"+seg(id), nil, apiclient.DefaultOptions())
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLessonNotFound
	}
	lesson := TransformLesson(*l, s.now())
	return &lesson, nil
}

func (s *lessonService) Create(ctx context.Context, payload dto.LessonCreateDTO) (*model.Lesson, error) {
	if err := s.checkPayload(payload); err != nil {
		return nil, err
	}
	l, err := fetchOne[dto.LessonDTO](ctx, &s.backend, "/lessons", send(http.MethodPost, payload), authOnly)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, emptyResponse("Lesson API returned an empty response.")
	}
	lesson := TransformLesson(*l, s.now())
	return &lesson, nil
}

func (s *lessonService) Update(ctx context.Context, id string, payload dto.LessonUpdateDTO) (*model.Lesson, error) {
	if err := s.checkPayload(payload); err != nil {
		return nil, err
	}
	l, err := fetchOne[dto.LessonDTO](ctx, &s.backend, "/lessons/"+seg(id), send(http.MethodPatch, payload), authOnly)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, emptyResponse("Lesson update returned an empty response.")
	}
	lesson := TransformLesson(*l, s.now())
	return &lesson, nil
}

func (s *lessonService) Delete(ctx context.Context, id string) error {
	return s.call(ctx, "/lessons/"+seg(id), send(http.MethodDelete, nil), authOnly)
}

func (s *lessonService) UploadVideo(ctx context.Context, filename string, video io.Reader) (string, error) {
	form := apiclient.NewForm().AddFile("video", filename, video)
	req := &apiclient.Request{Method: http.MethodPost, Body: form, NoStore: true}
	resp, err := apiclient.Fetch[dto.VideoUploadResponseDTO](ctx, s.client, "/lessons/video", req, authOnly)
	if err != nil {
		return "", err
	}
	if resp == nil || resp.VideoURL == "" {
		return "", ErrVideoUpload
	}
	s.logger.Info().Str("filename", filename).Str("video_url", resp.VideoURL).Msg("Lesson video uploaded")
	return resp.VideoURL, nil
}
