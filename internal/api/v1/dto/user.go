package dto

import "time"

// SessionUserDTO is the user record returned alongside a token pair.
type SessionUserDTO struct {
	ID        string  `json:"id" validate:"required"`
	Email     string  `json:"email" validate:"required"`
	Name      *string `json:"name,omitempty"`
	FullName  *string `json:"fullName,omitempty"`
	Role      string  `json:"role" validate:"required,oneof=STUDENT INSTRUCTOR ADMIN"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}

// LoginDTO is the body of POST /auth/login.
type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponseDTO is returned by /auth/login and /auth/refresh.
type LoginResponseDTO struct {
	User         SessionUserDTO `json:"user"`
	AccessToken  string         `json:"accessToken" validate:"required"`
	RefreshToken string         `json:"refreshToken" validate:"required"`
	ExpiresIn    int64          `json:"expiresIn" validate:"gte=0"`
}

// RefreshDTO is the body of POST /auth/refresh.
type RefreshDTO struct {
	RefreshToken string `json:"refreshToken"`
}

// RegisterDTO is the body of POST /users.
type RegisterDTO struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	FullName  string  `json:"fullName" validate:"required"`
	Role      string  `json:"role" validate:"required,oneof=STUDENT INSTRUCTOR ADMIN"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}

// RegisterResponseDTO is returned by POST /users.
type RegisterResponseDTO struct {
	ID        string  `json:"id" validate:"required"`
	Email     string  `json:"email"`
	FullName  *string `json:"fullName,omitempty"`
	Name      *string `json:"name,omitempty"`
	Role      string  `json:"role" validate:"omitempty,oneof=STUDENT INSTRUCTOR ADMIN"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}

// AdminUserDTO is a row of GET /users.
type AdminUserDTO struct {
	ID        string    `json:"id" validate:"required"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role" validate:"omitempty,oneof=STUDENT INSTRUCTOR ADMIN"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	AvatarURL *string   `json:"avatarUrl,omitempty"`
}

// UserStatusDTO is the body of PATCH /users/{id}/status.
type UserStatusDTO struct {
	IsActive bool `json:"isActive"`
}

// UserRoleDTO is the body of PATCH /users/{id}/role.
type UserRoleDTO struct {
	Role string `json:"role" validate:"required,oneof=STUDENT INSTRUCTOR ADMIN"`
}
