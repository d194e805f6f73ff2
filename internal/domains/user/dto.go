package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// MaxPageSize is the hard cap on list page sizes, applied regardless of the
// requested limit.
const MaxPageSize = 100

// CreateUserRequest - POST /users
type CreateUserRequest struct {
	Username string  `json:"username" binding:"required"`
	Email    string  `json:"email" binding:"required"`
	FullName *string `json:"full_name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(3, 50).Error("username must be 3-50 characters"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.FullName,
			validation.When(r.FullName != nil, validation.Length(0, 100)),
		),
	)
}

// ToUser builds the entity to persist. is_active defaults to true when the
// client does not send it.
func (r CreateUserRequest) ToUser() *User {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &User{
		Username: r.Username,
		Email:    r.Email,
		FullName: r.FullName,
		IsActive: active,
	}
}

// UpdateUserRequest - PATCH /users/:id
// All fields are pointers so only the fields present in the request body
// are applied.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.When(r.Username != nil, validation.Length(3, 50).Error("username must be 3-50 characters")),
		),
		validation.Field(&r.Email,
			validation.When(r.Email != nil, is.Email.Error("invalid email format")),
		),
		validation.Field(&r.FullName,
			validation.When(r.FullName != nil, validation.Length(0, 100)),
		),
	)
}

// Changes returns the column changes for the fields present in the request.
func (r UpdateUserRequest) Changes() map[string]any {
	changes := map[string]any{}
	if r.Username != nil {
		changes["username"] = *r.Username
	}
	if r.Email != nil {
		changes["email"] = *r.Email
	}
	if r.FullName != nil {
		changes["full_name"] = *r.FullName
	}
	if r.IsActive != nil {
		changes["is_active"] = *r.IsActive
	}
	return changes
}

// ListUsersRequest - GET /users query parameters
type ListUsersRequest struct {
	Skip  int `form:"skip"`
	Limit int `form:"limit"`
}

// SetDefaults applies the default page size and clamps out-of-range values.
func (r *ListUsersRequest) SetDefaults() {
	if r.Skip < 0 {
		r.Skip = 0
	}
	if r.Limit <= 0 || r.Limit > MaxPageSize {
		r.Limit = MaxPageSize
	}
}
