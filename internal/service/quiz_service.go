package service

import (
	"context"
	"fmt"
	"net/http"

	"vulearn/internal/api/v1/dto"
	"vulearn/internal/apiclient"
	"vulearn/internal/model"

	"github.com/rs/zerolog"
)

type QuizService interface {
	ForCourse(ctx context.Context, courseID string) ([]model.Quiz, error)
	Get(ctx context.Context, id string) (*model.Quiz, error)
	Create(ctx context.Context, payload dto.QuizCreateDTO) (*model.Quiz, error)
	Update(ctx context.Context, id string, payload dto.QuizUpdateDTO) (*model.Quiz, error)
	Delete(ctx context.Context, id string) error
}

type quizService struct {
	backend
}

func NewQuizService(client *apiclient.Client, logger zerolog.Logger) QuizService {
	return &quizService{backend: newBackend(client, logger, "QuizService")}
}

func (s *quizService) ForCourse(ctx context.Context, courseID string) ([]model.Quiz, error) {
	if courseID == "" {
		return []model.Quiz{}, nil
	}
	path := fmt.Sprintf("/quizzes/course/%s?t=%d", seg(courseID), s.now().UnixMilli())
	items, err := fetchList[dto.QuizDTO](ctx, &s.backend, path, noStore(), apiclient.DefaultOptions())
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("course_id", courseID).Int("count", len(items)).Msg("Fetched quizzes")
	now := s.now()
	quizzes := make([]model.Quiz, 0, len(items))
	for _, q := range items {
		quizzes = append(quizzes, TransformQuiz(q, now))
	}
	return quizzes, nil
}

func (s *quizService) Get(ctx context.Context, id string) (*model.Quiz, error) {
	if id == "" {
		return nil, ErrQuizNotFound
	}
	q, err := fetchOne[dto.QuizDTO](ctx, &s.backend, "/quizzes/"+seg(id), nil, apiclient.DefaultOptions())
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}
	quiz := TransformQuiz(*q, s.now())
	return &quiz, nil
}

func (s *quizService) Create(ctx context.Context, payload dto.QuizCreateDTO) (*model.Quiz, error) {
	if err := s.checkPayload(payload); err != nil {
		return nil, err
	}
	q, err := fetchOne[dto.QuizDTO](ctx, &s.backend, "/quizzes", send(http.MethodPost, payload), authOnly)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, emptyResponse("Quiz API returned an empty response.")
	}
	quiz := TransformQuiz(*q, s.now())
	return &quiz, nil
}

func (s *quizService) Update(ctx context.Context, id string, payload dto.QuizUpdateDTO) (*model.Quiz, error) {
	if err := s.checkPayload(payload); err != nil {
		return nil, err
	}
	q, err := fetchOne[dto.QuizDTO](ctx, &s.backend, "/quizzes/"+seg(id), send(http.MethodPatch, payload), authOnly)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, emptyResponse("Quiz update returned an empty response.")
	}
	quiz := TransformQuiz(*q, s.now())
	return &quiz, nil
}

func (s *quizService) Delete(ctx context.Context, id string) error {
	return s.call(ctx, "/quizzes/"+seg(id), send(http.MethodDelete, nil), authOnly)
}
