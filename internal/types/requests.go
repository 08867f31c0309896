// Package types provides request and response types shared by the HTTP API.
package types

import (
	"github.com/go-playground/validator/v10"

	"github.com/jonathan/devfolio/internal/db"
)

// GoogleLoginRequest carries the Google ID token obtained by the client.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// LoginResponse is returned after a successful Google sign-in.
type LoginResponse struct {
	Token string   `json:"token"`
	User  *db.User `json:"user"`
}

// CreateProjectRequest is the payload for creating a project.
type CreateProjectRequest struct {
	Title       string   `json:"title" validate:"required,min=1"`
	Description string   `json:"description" validate:"required,min=1"`
	ImageURL    string   `json:"imageUrl" validate:"required,url"`
	Link        string   `json:"link" validate:"required,url"`
	Tags        []string `json:"tags"`
}

// UpdateProjectRequest is the payload for a partial project update.
type UpdateProjectRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1"`
	Description *string  `json:"description" validate:"omitempty,min=1"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty,url"`
	Link        *string  `json:"link" validate:"omitempty,url"`
	Tags        []string `json:"tags"`
}

// CreateSkillRequest is the payload for creating a skill. Level is a pointer
// so that an explicit 0 is distinguishable from a missing field.
type CreateSkillRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Level    *int   `json:"level" validate:"required,gte=0,lte=100"`
	Category string `json:"category"`
}

// UpdateSkillRequest is the payload for a partial skill update.
type UpdateSkillRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Level    *int    `json:"level" validate:"omitempty,gte=0,lte=100"`
	Category *string `json:"category"`
}

// UpdateProfileRequest is the payload for overwriting the profile.
type UpdateProfileRequest struct {
	Name     string  `json:"name" validate:"required,min=1"`
	Title    string  `json:"title" validate:"required,min=1"`
	Bio      string  `json:"bio" validate:"required,min=1"`
	Email    string  `json:"email" validate:"required,email"`
	Github   *string `json:"github"`
	Linkedin *string `json:"linkedin"`
	Twitter  *string `json:"twitter"`
}

// UpdateSettingsRequest is the payload for overwriting the site settings.
type UpdateSettingsRequest struct {
	GithubURL   *string `json:"githubUrl" validate:"omitempty,url"`
	LinkedinURL *string `json:"linkedinUrl" validate:"omitempty,url"`
	ResumeURL   *string `json:"resumeUrl" validate:"omitempty,url"`
	Email       *string `json:"email" validate:"omitempty,email"`
}

// UpdateAnalyticsRequest is the payload for a partial analytics overwrite.
// Absent fields keep their stored values.
type UpdateAnalyticsRequest struct {
	TotalViews             *int `json:"totalViews" validate:"omitempty,gte=0"`
	ProjectClicks          *int `json:"projectClicks" validate:"omitempty,gte=0"`
	ContactInquiries       *int `json:"contactInquiries" validate:"omitempty,gte=0"`
	PreviousMonthViews     *int `json:"previousMonthViews" validate:"omitempty,gte=0"`
	PreviousMonthClicks    *int `json:"previousMonthClicks" validate:"omitempty,gte=0"`
	PreviousMonthInquiries *int `json:"previousMonthInquiries" validate:"omitempty,gte=0"`
}

// UploadResponse is returned by the image upload proxy.
type UploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// Validate validates the GoogleLoginRequest using the validator.
func (r *GoogleLoginRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the CreateProjectRequest using the validator.
func (r *CreateProjectRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the UpdateProjectRequest using the validator.
func (r *UpdateProjectRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the CreateSkillRequest using the validator.
func (r *CreateSkillRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the UpdateSkillRequest using the validator.
func (r *UpdateSkillRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the UpdateProfileRequest using the validator.
func (r *UpdateProfileRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the UpdateSettingsRequest using the validator.
func (r *UpdateSettingsRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the UpdateAnalyticsRequest using the validator.
func (r *UpdateAnalyticsRequest) Validate() error {
	return validator.New().Struct(r)
}
