package dto

// Page is the envelope of the paginated admin listings.
type Page[T any] struct {
	Data  []T `json:"data" validate:"dive"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}
