package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents a Google Sign-In identity.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	GoogleID  *string   `json:"googleId,omitempty"`
	Avatar    *string   `json:"avatar,omitempty"`
	IsAllowed bool      `json:"isAllowed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Project represents a portfolio project card.
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Link        string    `json:"link"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProjectInput holds the caller-supplied fields for creating a project.
type ProjectInput struct {
	Title       string
	Description string
	ImageURL    string
	Link        string
	Tags        []string
}

// ProjectPatch holds optional fields for a partial project update.
// Nil fields keep their stored values.
type ProjectPatch struct {
	Title       *string
	Description *string
	ImageURL    *string
	Link        *string
	Tags        []string
}

// Profile represents the site owner's bio shown on the public page.
type Profile struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Title    string  `json:"title"`
	Bio      string  `json:"bio"`
	Email    string  `json:"email"`
	Github   *string `json:"github,omitempty"`
	Linkedin *string `json:"linkedin,omitempty"`
	Twitter  *string `json:"twitter,omitempty"`
}

// ProfileInput holds the full profile payload; PUT overwrites the row.
type ProfileInput struct {
	Name     string
	Title    string
	Bio      string
	Email    string
	Github   *string
	Linkedin *string
	Twitter  *string
}

// Skill represents one entry of the ordered skill collection.
// Order is the position induced by the sort_order column.
type Skill struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Level     int       `json:"level"`
	Category  string    `json:"category"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}

// SkillInput holds the caller-supplied fields for creating a skill.
// The sort order is never caller-supplied; it is computed on insert.
type SkillInput struct {
	Name     string
	Level    int
	Category string
}

// SkillPatch holds optional fields for a partial skill update.
type SkillPatch struct {
	Name     *string
	Level    *int
	Category *string
}

// Settings represents the site-wide link settings.
type Settings struct {
	ID          int64     `json:"id"`
	GithubURL   *string   `json:"githubUrl"`
	LinkedinURL *string   `json:"linkedinUrl"`
	ResumeURL   *string   `json:"resumeUrl"`
	Email       *string   `json:"email"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SettingsInput holds the full settings payload; PUT overwrites the row.
type SettingsInput struct {
	GithubURL   *string
	LinkedinURL *string
	ResumeURL   *string
	Email       *string
}

// Analytics is the aggregate counter singleton. The previousMonth* fields
// are caller-supplied snapshots, never derived by the increment operations.
type Analytics struct {
	ID                     int       `json:"id"`
	TotalViews             int       `json:"totalViews"`
	ProjectClicks          int       `json:"projectClicks"`
	ContactInquiries       int       `json:"contactInquiries"`
	PreviousMonthViews     int       `json:"previousMonthViews"`
	PreviousMonthClicks    int       `json:"previousMonthClicks"`
	PreviousMonthInquiries int       `json:"previousMonthInquiries"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// AnalyticsPatch holds optional fields for a partial analytics overwrite.
type AnalyticsPatch struct {
	TotalViews             *int
	ProjectClicks          *int
	ContactInquiries       *int
	PreviousMonthViews     *int
	PreviousMonthClicks    *int
	PreviousMonthInquiries *int
}

// DailyViews is one row of the per-date view ledger.
type DailyViews struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Views     int       `json:"views"`
	CreatedAt time.Time `json:"createdAt"`
}
