package service

import (
	"context"
	"net/http"

	"vulearn/internal/api/v1/dto"
	"vulearn/internal/apiclient"
	"vulearn/internal/model"

	"github.com/rs/zerolog"
)

type CommentService interface {
	// ForLesson returns the lesson's discussion with replies nested under
	// their parents.
	ForLesson(ctx context.Context, lessonID string) ([]model.Comment, error)
	Create(ctx context.Context, payload dto.CommentCreateDTO) (*model.Comment, error)
	Delete(ctx context.Context, id string) error
}

type commentService struct {
	backend
}

func NewCommentService(client *apiclient.Client, logger zerolog.Logger) CommentService {
	return &commentService{backend: newBackend(client, logger, "CommentService")}
}

func (s *commentService) ForLesson(ctx context.Context, lessonID string) ([]model.Comment, error) {
	items, err := fetchList[dto.CommentDTO](ctx, &s.backend, "/comments/lesson/"+seg(lessonID), noStore(), noFallback)
	if err != nil {
		return nil, err
	}
	comments := make([]model.Comment, 0, len(items))
	for _, c := range items {
		comments = append(comments, transformComment(c))
	}
	return Thread(comments), nil
}

func (s *commentService) Create(ctx context.Context, payload dto.CommentCreateDTO) (*model.Comment, error) {
	if err := s.checkPayload(payload); err != nil {
		return nil, err
	}
	c, err := fetchOne[dto.CommentDTO](ctx, &s.backend, "/comments", send(http.MethodPost, payload), authOnly)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, emptyResponse("Failed to create comment")
	}
	comment := transformComment(*c)
	return &comment, nil
}

func (s *commentService) Delete(ctx context.Context, id string) error {
	return s.call(ctx, "/comments/"+seg(id), send(http.MethodDelete, nil), authOnly)
}

// Thread nests flat comments under their parents. Replies the backend
// already nested are kept, comments whose parent is missing stay top level,
// and input order is preserved at every level.
func Thread(comments []model.Comment) []model.Comment {
	index := make(map[string]int, len(comments))
	for i, c := range comments {
		index[c.ID] = i
	}

	children := make(map[string][]int)
	var roots []int
	for i, c := range comments {
		if c.ParentID != nil && *c.ParentID != "" && *c.ParentID != c.ID {
			if _, ok := index[*c.ParentID]; ok {
				children[*c.ParentID] = append(children[*c.ParentID], i)
				continue
			}
		}
		roots = append(roots, i)
	}

	placed := make(map[int]bool, len(comments))
	visiting := make(map[string]bool)
	var build func(i int) model.Comment
	build = func(i int) model.Comment {
		c := comments[i]
		placed[i] = true
		visiting[c.ID] = true
		replies := append([]model.Comment(nil), c.Replies...)
		for _, j := range children[c.ID] {
			if placed[j] || visiting[comments[j].ID] {
				continue
			}
			replies = append(replies, build(j))
		}
		delete(visiting, c.ID)
		c.Replies = replies
		return c
	}

	out := make([]model.Comment, 0, len(roots))
	for _, i := range roots {
		out = append(out, build(i))
	}
	// Parent cycles leave comments unreachable from any root.
	for i := range comments {
		if !placed[i] {
			out = append(out, build(i))
		}
	}
	return out
}
