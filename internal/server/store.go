package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/devfolio/internal/db"
)

// Store is the persistence interface consumed by the HTTP handlers.
// *db.DB implements it; tests substitute an in-memory fake.
type Store interface {
	// Users
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	UpsertGoogleUser(ctx context.Context, email, name, googleID, avatar string) (*db.User, error)

	// Projects
	ListProjects(ctx context.Context) ([]db.Project, error)
	GetProject(ctx context.Context, id int64) (*db.Project, error)
	CreateProject(ctx context.Context, in db.ProjectInput) (*db.Project, error)
	UpdateProject(ctx context.Context, id int64, patch db.ProjectPatch) (*db.Project, error)
	DeleteProject(ctx context.Context, id int64) (bool, error)

	// Skills and their display order
	ListSkills(ctx context.Context) ([]db.Skill, error)
	GetSkill(ctx context.Context, id int64) (*db.Skill, error)
	CreateSkill(ctx context.Context, in db.SkillInput) (*db.Skill, error)
	UpdateSkill(ctx context.Context, id int64, patch db.SkillPatch) (*db.Skill, error)
	DeleteSkill(ctx context.Context, id int64) (bool, error)
	ReorderSkills(ctx context.Context, skillIDs []int64) error

	// Profile and settings singletons
	GetProfile(ctx context.Context) (*db.Profile, error)
	UpdateProfile(ctx context.Context, in db.ProfileInput) (*db.Profile, error)
	GetSettings(ctx context.Context) (*db.Settings, error)
	UpdateSettings(ctx context.Context, in db.SettingsInput) (*db.Settings, error)

	// Analytics counters and daily ledger
	GetAnalytics(ctx context.Context) (*db.Analytics, error)
	UpdateAnalytics(ctx context.Context, patch db.AnalyticsPatch) (*db.Analytics, error)
	IncrementView(ctx context.Context) error
	IncrementProjectClick(ctx context.Context) (*db.Analytics, error)
	IncrementContactInquiry(ctx context.Context) (*db.Analytics, error)
	ListDailyViews(ctx context.Context, days int) ([]db.DailyViews, error)
}

var _ Store = (*db.DB)(nil)
