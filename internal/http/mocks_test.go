package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"job-portal/internal/domain"
	"job-portal/internal/repository"
	"job-portal/internal/service"
)

type mockUserRepo struct {
	usersByID    map[string]domain.User
	usersByEmail map[string]string
	err          error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		usersByID:    make(map[string]domain.User),
		usersByEmail: make(map[string]string),
	}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.usersByEmail[user.Email]; ok {
		return repository.ErrDuplicate
	}
	m.usersByID[user.ID] = user
	m.usersByEmail[user.Email] = user.ID
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	if m.err != nil {
		return domain.User{}, m.err
	}
	user, ok := m.usersByID[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	if m.err != nil {
		return domain.User{}, m.err
	}
	id, ok := m.usersByEmail[email]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.usersByID[id], nil
}

type mockProfileRepo struct {
	byEmail map[string]domain.Profile
	err     error
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{byEmail: make(map[string]domain.Profile)}
}

func (m *mockProfileRepo) Upsert(_ context.Context, profile domain.Profile) (domain.Profile, error) {
	if m.err != nil {
		return domain.Profile{}, m.err
	}
	if existing, ok := m.byEmail[profile.Email]; ok {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	}
	m.byEmail[profile.Email] = profile
	return profile, nil
}

func (m *mockProfileRepo) GetByEmail(_ context.Context, email string) (domain.Profile, error) {
	if m.err != nil {
		return domain.Profile{}, m.err
	}
	p, ok := m.byEmail[email]
	if !ok {
		return domain.Profile{}, pgx.ErrNoRows
	}
	return p, nil
}

func (m *mockProfileRepo) List(_ context.Context) ([]domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.Profile, 0, len(m.byEmail))
	for _, p := range m.byEmail {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

type mockJobRepo struct {
	jobs []domain.Job
	err  error
}

func (m *mockJobRepo) Create(_ context.Context, job domain.Job) error {
	if m.err != nil {
		return m.err
	}
	m.jobs = append(m.jobs, job)
	return nil
}

func (m *mockJobRepo) List(_ context.Context) ([]domain.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]domain.Job{}, m.jobs...), nil
}

type mockGitHubRepo struct {
	byEmail map[string]domain.GitHubLink
	err     error
}

func (m *mockGitHubRepo) Upsert(_ context.Context, link domain.GitHubLink) (domain.GitHubLink, error) {
	if m.err != nil {
		return domain.GitHubLink{}, m.err
	}
	m.byEmail[link.Email] = link
	return link, nil
}

type testServer struct {
	router   *gin.Engine
	users    *mockUserRepo
	profiles *mockProfileRepo
	jobs     *mockJobRepo
	links    *mockGitHubRepo
	tokens   *service.JWTService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &testServer{
		users:    newMockUserRepo(),
		profiles: newMockProfileRepo(),
		jobs:     &mockJobRepo{},
		links:    &mockGitHubRepo{byEmail: make(map[string]domain.GitHubLink)},
		tokens:   service.NewJWTService("test-secret", time.Hour),
	}
	logger := zap.NewNop()
	authSvc := service.NewAuthService(logger, s.users, s.tokens, nil, bcrypt.MinCost)

	s.router = NewRouter(
		logger,
		RouterOptions{AllowedOrigins: []string{"*"}},
		JWTAuthMiddleware(logger, s.tokens, nil),
		NewAuthHandler(logger, authSvc),
		NewProfileHandler(logger, service.NewProfileService(s.users, s.profiles)),
		NewJobHandler(logger, service.NewJobService(s.jobs)),
		NewGitHubHandler(logger, service.NewGitHubService(s.links)),
	)
	return s
}

func performRequest(r http.Handler, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return body
}

func (s *testServer) signup(t *testing.T, email, password string) string {
	t.Helper()
	rec := performRequest(s.router, http.MethodPost, "/signup", map[string]string{
		"full_name":    "A",
		"email":        email,
		"phone_number": "1",
		"password":     password,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	token, _ := decodeBody(t, rec)["token"].(string)
	if token == "" {
		t.Fatalf("signup: expected token in response")
	}
	return token
}
