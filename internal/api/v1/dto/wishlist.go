package dto

type WishlistItemDTO struct {
	ID        string     `json:"id" validate:"required"`
	UserID    string     `json:"userId"`
	CourseID  string     `json:"courseId" validate:"required"`
	Course    *CourseDTO `json:"course,omitempty" validate:"omitempty"`
	CreatedAt string     `json:"createdAt,omitempty"`
}

// WishlistCreateDTO is the body of POST /wishlist.
type WishlistCreateDTO struct {
	UserID   string `json:"userId" validate:"required"`
	CourseID string `json:"courseId" validate:"required"`
}
