package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/devfolio/internal/db"
)

func seedProject(t *testing.T, m *mockStore) *db.Project {
	t.Helper()
	project, err := m.CreateProject(t.Context(), db.ProjectInput{
		Title:       "Devfolio",
		Description: "Portfolio backend",
		ImageURL:    "https://example.com/img.png",
		Link:        "https://example.com",
		Tags:        []string{"go", "postgres"},
	})
	require.NoError(t, err)
	return project
}

func TestHandleCreateProject(t *testing.T) {
	s := newTestServer()

	body := `{
		"title": "Devfolio",
		"description": "Portfolio backend",
		"imageUrl": "https://example.com/img.png",
		"link": "https://example.com",
		"tags": ["go"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	s.handleCreateProject(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var project db.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	assert.Equal(t, "Devfolio", project.Title)
	assert.Equal(t, []string{"go"}, project.Tags)
	assert.NotZero(t, project.ID)
}

func TestHandleCreateProject_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing title", body: `{"description": "d", "imageUrl": "https://e.com/i.png", "link": "https://e.com"}`},
		{name: "bad image url", body: `{"title": "t", "description": "d", "imageUrl": "not-a-url", "link": "https://e.com"}`},
		{name: "bad link", body: `{"title": "t", "description": "d", "imageUrl": "https://e.com/i.png", "link": "nope"}`},
		{name: "not json", body: `title=t`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()
			req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			s.handleCreateProject(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleGetProject(t *testing.T) {
	s := newTestServer()
	seeded := seedProject(t, s.mock)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/1", nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	s.handleGetProject(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var project db.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	assert.Equal(t, seeded.ID, project.ID)
	assert.Equal(t, seeded.Title, project.Title)
}

func TestHandleGetProject_NotFound(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/projects/99", nil)
	req.SetPathValue("id", "99")
	w := httptest.NewRecorder()

	s.handleGetProject(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetProject_InvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/projects/abc", nil)
	req.SetPathValue("id", "abc")
	w := httptest.NewRecorder()

	s.handleGetProject(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "Invalid project ID")
}

func TestHandleUpdateProject(t *testing.T) {
	s := newTestServer()
	seedProject(t, s.mock)

	body := `{"title": "Renamed"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/projects/1", bytes.NewBufferString(body))
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	s.handleUpdateProject(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var project db.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	assert.Equal(t, "Renamed", project.Title)
	assert.Equal(t, "Portfolio backend", project.Description, "unpatched fields keep their values")
}

func TestHandleUpdateProject_NotFound(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPatch, "/api/projects/5", bytes.NewBufferString(`{"title": "x"}`))
	req.SetPathValue("id", "5")
	w := httptest.NewRecorder()

	s.handleUpdateProject(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleDeleteProject(t *testing.T) {
	s := newTestServer()
	seedProject(t, s.mock)

	req := httptest.NewRequest(http.MethodDelete, "/api/projects/1", nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	s.handleDeleteProject(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)

	projects, err := s.mock.ListProjects(t.Context())
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestHandleDeleteProject_NotFound(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodDelete, "/api/projects/1", nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	s.handleDeleteProject(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleListProjects_NewestFirst(t *testing.T) {
	s := newTestServer()
	seedProject(t, s.mock)
	second, err := s.mock.CreateProject(t.Context(), db.ProjectInput{
		Title:       "Second",
		Description: "d",
		ImageURL:    "https://example.com/2.png",
		Link:        "https://example.com/2",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	w := httptest.NewRecorder()

	s.handleListProjects(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var projects []db.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	require.Len(t, projects, 2)
	assert.Equal(t, second.ID, projects[0].ID)
}
