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

type WishlistService interface {
	// ForUser falls back to the bundled wishlist when the backend returns
	// nothing.
	ForUser(ctx context.Context, userID string) ([]model.WishlistItem, error)
	Add(ctx context.Context, payload dto.WishlistCreateDTO) (*model.WishlistItem, error)
	Remove(ctx context.Context, userID, courseID string) error
}

type wishlistService struct {
	backend
}

func NewWishlistService(client *apiclient.Client, logger zerolog.Logger) WishlistService {
	return &wishlistService{backend: newBackend(client, logger, "WishlistService")}
}

func (s *wishlistService) ForUser(ctx context.Context, userID string) ([]model.WishlistItem, error) {
	items, err := fetchList[dto.WishlistItemDTO](ctx, &s.backend, "/wishlist/user/"+seg(userID), noStore(), authOnly)
	if err != nil {
		return nil, err
	}
	if items != nil {
		now := s.now()
		out := make([]model.WishlistItem, 0, len(items))
		for _, w := range items {
			out = append(out, transformWishlistItem(w, now))
		}
		return out, nil
	}

	out := []model.WishlistItem{}
	for _, item := range mockdata.WishlistItems() {
		if item.UserID != userID {
			continue
		}
		if c, ok := mockdata.CourseByID(item.CourseID); ok {
			item.Course = &c
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *wishlistService) Add(ctx context.Context, payload dto.WishlistCreateDTO) (*model.WishlistItem, error) {
	if err := s.checkPayload(payload); err != nil {
		return nil, err
	}
	w, err := fetchOne[dto.WishlistItemDTO](ctx, &s.backend, "/wishlist", send(http.MethodPost, payload), authOnly)
	if err != nil || w == nil {
		return nil, err
	}
	item := transformWishlistItem(*w, s.now())
	return &item, nil
}

func (s *wishlistService) Remove(ctx context.Context, userID, courseID string) error {
	return s.call(ctx, "/wishlist/"+seg(userID)+"/"+seg(courseID), send(http.MethodDelete, nil), authOnly)
}
