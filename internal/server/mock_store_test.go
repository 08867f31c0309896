package server

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/devfolio/internal/config"
	"github.com/jonathan/devfolio/internal/db"
	"github.com/jonathan/devfolio/internal/upload"
)

// mockStore is an in-memory Store implementation for handler tests.
// It is safe for concurrent use so increment handlers can be hammered
// from multiple goroutines.
type mockStore struct {
	mu sync.Mutex

	users    map[uuid.UUID]*db.User
	projects map[int64]*db.Project
	skills   map[int64]*db.Skill
	profile  *db.Profile
	settings *db.Settings

	analytics  *db.Analytics
	dailyViews map[string]*db.DailyViews

	nextProjectID int64
	nextSkillID   int64
	nextDailyID   int64

	// failWith, when set, makes every method return this error.
	failWith error
}

func newMockStore() *mockStore {
	return &mockStore{
		users:         make(map[uuid.UUID]*db.User),
		projects:      make(map[int64]*db.Project),
		skills:        make(map[int64]*db.Skill),
		dailyViews:    make(map[string]*db.DailyViews),
		nextProjectID: 1,
		nextSkillID:   1,
		nextDailyID:   1,
	}
}

func (m *mockStore) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (m *mockStore) UpsertGoogleUser(_ context.Context, email, name, googleID, avatar string) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, user := range m.users {
		if user.Email == email {
			user.Name = name
			user.GoogleID = &googleID
			user.Avatar = &avatar
			user.IsAllowed = true
			copied := *user
			return &copied, nil
		}
	}
	user := &db.User{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		GoogleID:  &googleID,
		Avatar:    &avatar,
		IsAllowed: true,
		CreatedAt: time.Now(),
	}
	m.users[user.ID] = user
	copied := *user
	return &copied, nil
}

func (m *mockStore) ListProjects(_ context.Context) ([]db.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := make([]db.Project, 0, len(m.projects))
	for _, p := range m.projects {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *mockStore) GetProject(_ context.Context, id int64) (*db.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	p, ok := m.projects[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (m *mockStore) CreateProject(_ context.Context, in db.ProjectInput) (*db.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	p := &db.Project{
		ID:          m.nextProjectID,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Link:        in.Link,
		Tags:        in.Tags,
		CreatedAt:   time.Now(),
	}
	m.nextProjectID++
	m.projects[p.ID] = p
	copied := *p
	return &copied, nil
}

func (m *mockStore) UpdateProject(_ context.Context, id int64, patch db.ProjectPatch) (*db.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	p, ok := m.projects[id]
	if !ok {
		return nil, nil
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Link != nil {
		p.Link = *patch.Link
	}
	if patch.Tags != nil {
		p.Tags = patch.Tags
	}
	copied := *p
	return &copied, nil
}

func (m *mockStore) DeleteProject(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return false, m.failWith
	}
	if _, ok := m.projects[id]; !ok {
		return false, nil
	}
	delete(m.projects, id)
	return true, nil
}

func (m *mockStore) ListSkills(_ context.Context) ([]db.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := make([]db.Skill, 0, len(m.skills))
	for _, s := range m.skills {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *mockStore) GetSkill(_ context.Context, id int64) (*db.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	s, ok := m.skills[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (m *mockStore) CreateSkill(_ context.Context, in db.SkillInput) (*db.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	order := 0
	for _, s := range m.skills {
		if s.Order >= order {
			order = s.Order + 1
		}
	}
	category := in.Category
	if category == "" {
		category = "Other"
	}
	s := &db.Skill{
		ID:        m.nextSkillID,
		Name:      in.Name,
		Level:     in.Level,
		Category:  category,
		Order:     order,
		CreatedAt: time.Now(),
	}
	m.nextSkillID++
	m.skills[s.ID] = s
	copied := *s
	return &copied, nil
}

func (m *mockStore) UpdateSkill(_ context.Context, id int64, patch db.SkillPatch) (*db.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	s, ok := m.skills[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Level != nil {
		s.Level = *patch.Level
	}
	if patch.Category != nil {
		s.Category = *patch.Category
	}
	copied := *s
	return &copied, nil
}

func (m *mockStore) DeleteSkill(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return false, m.failWith
	}
	if _, ok := m.skills[id]; !ok {
		return false, nil
	}
	delete(m.skills, id)
	return true, nil
}

func (m *mockStore) ReorderSkills(_ context.Context, skillIDs []int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	for i, id := range skillIDs {
		if s, ok := m.skills[id]; ok {
			s.Order = i
		}
	}
	return nil
}

func (m *mockStore) GetProfile(_ context.Context) (*db.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	if m.profile == nil {
		return nil, nil
	}
	copied := *m.profile
	return &copied, nil
}

func (m *mockStore) UpdateProfile(_ context.Context, in db.ProfileInput) (*db.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.profile = &db.Profile{
		ID:       1,
		Name:     in.Name,
		Title:    in.Title,
		Bio:      in.Bio,
		Email:    in.Email,
		Github:   in.Github,
		Linkedin: in.Linkedin,
		Twitter:  in.Twitter,
	}
	copied := *m.profile
	return &copied, nil
}

func (m *mockStore) GetSettings(_ context.Context) (*db.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	if m.settings == nil {
		return nil, nil
	}
	copied := *m.settings
	return &copied, nil
}

func (m *mockStore) UpdateSettings(_ context.Context, in db.SettingsInput) (*db.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.settings = &db.Settings{
		ID:          1,
		GithubURL:   in.GithubURL,
		LinkedinURL: in.LinkedinURL,
		ResumeURL:   in.ResumeURL,
		Email:       in.Email,
		UpdatedAt:   time.Now(),
	}
	copied := *m.settings
	return &copied, nil
}

// ensureAnalyticsLocked creates the zeroed singleton. Caller holds mu.
func (m *mockStore) ensureAnalyticsLocked() *db.Analytics {
	if m.analytics == nil {
		m.analytics = &db.Analytics{ID: 1, UpdatedAt: time.Now()}
	}
	return m.analytics
}

func (m *mockStore) GetAnalytics(_ context.Context) (*db.Analytics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	copied := *m.ensureAnalyticsLocked()
	return &copied, nil
}

func (m *mockStore) UpdateAnalytics(_ context.Context, patch db.AnalyticsPatch) (*db.Analytics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	a := m.ensureAnalyticsLocked()
	if patch.TotalViews != nil {
		a.TotalViews = *patch.TotalViews
	}
	if patch.ProjectClicks != nil {
		a.ProjectClicks = *patch.ProjectClicks
	}
	if patch.ContactInquiries != nil {
		a.ContactInquiries = *patch.ContactInquiries
	}
	if patch.PreviousMonthViews != nil {
		a.PreviousMonthViews = *patch.PreviousMonthViews
	}
	if patch.PreviousMonthClicks != nil {
		a.PreviousMonthClicks = *patch.PreviousMonthClicks
	}
	if patch.PreviousMonthInquiries != nil {
		a.PreviousMonthInquiries = *patch.PreviousMonthInquiries
	}
	a.UpdatedAt = time.Now()
	copied := *a
	return &copied, nil
}

func (m *mockStore) IncrementView(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.ensureAnalyticsLocked().TotalViews++

	today := time.Now().UTC().Format("2006-01-02")
	if row, ok := m.dailyViews[today]; ok {
		row.Views++
	} else {
		m.dailyViews[today] = &db.DailyViews{
			ID:        m.nextDailyID,
			Date:      today,
			Views:     1,
			CreatedAt: time.Now(),
		}
		m.nextDailyID++
	}
	return nil
}

func (m *mockStore) IncrementProjectClick(_ context.Context) (*db.Analytics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	a := m.ensureAnalyticsLocked()
	a.ProjectClicks++
	copied := *a
	return &copied, nil
}

func (m *mockStore) IncrementContactInquiry(_ context.Context) (*db.Analytics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	a := m.ensureAnalyticsLocked()
	a.ContactInquiries++
	copied := *a
	return &copied, nil
}

func (m *mockStore) ListDailyViews(_ context.Context, days int) ([]db.DailyViews, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := make([]db.DailyViews, 0, len(m.dailyViews))
	for _, row := range m.dailyViews {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	if len(out) > days {
		out = out[len(out)-days:]
	}
	return out, nil
}

var _ Store = (*mockStore)(nil)

// fakeVerifier returns a canned profile or error.
type fakeVerifier struct {
	profile *GoogleProfile
	err     error
}

func (f *fakeVerifier) Verify(_ context.Context, _ string) (*GoogleProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

// fakeUploader records the last upload and returns a fixed result.
type fakeUploader struct {
	err error
}

func (f *fakeUploader) UploadImage(_ context.Context, r io.Reader) (*upload.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, err := io.ReadAll(r); err != nil {
		return nil, err
	}
	return &upload.Result{
		URL:      "https://res.cloudinary.com/demo/image/upload/v1/Devfolio/assets/test.png",
		PublicID: "Devfolio/assets/test",
	}, nil
}

// errStore is the sentinel store failure used by error-path tests.
var errStore = fmt.Errorf("store unavailable")

// testServer wires a Server around the mock store.
type testServer struct {
	*Server
	mock *mockStore
}

func newTestServer() *testServer {
	mock := newMockStore()
	s := &Server{
		store: mock,
		jwtService: NewJWTService(&config.JWTConfig{
			Secret:          "test-secret-key",
			ExpirationHours: 1,
		}),
		verifier:     &fakeVerifier{profile: &GoogleProfile{Email: "owner@example.com", Name: "Owner", Subject: "sub-1"}},
		uploader:     &fakeUploader{},
		allowedEmail: "owner@example.com",
	}
	return &testServer{Server: s, mock: mock}
}
