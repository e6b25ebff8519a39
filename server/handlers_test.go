package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techagentng/itsm-backend/config"
	apiError "github.com/techagentng/itsm-backend/errors"
	"github.com/techagentng/itsm-backend/models"
	"github.com/techagentng/itsm-backend/services/jwt"
)

const testSecret = "test-secret"

type fakeAuthService struct {
	loginResp *models.LoginResponse
	loginErr  *apiError.Error
	changeErr *apiError.Error
	resetErr  *apiError.Error

	loginCalls  int
	changedFor  uint
	changedFrom string
	changedTo   string
	resetFor    uint
}

func (f *fakeAuthService) Login(req *models.LoginRequest) (*models.LoginResponse, *apiError.Error) {
	f.loginCalls++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResp, nil
}

func (f *fakeAuthService) ChangePassword(userID uint, currentPassword, newPassword string) *apiError.Error {
	f.changedFor = userID
	f.changedFrom = currentPassword
	f.changedTo = newPassword
	return f.changeErr
}

func (f *fakeAuthService) ResetPassword(userID uint, newPassword string) *apiError.Error {
	f.resetFor = userID
	return f.resetErr
}

type fakeUserService struct {
	user    *models.User
	users   []models.User
	err     *apiError.Error
	created *models.CreateUserInput
}

func (f *fakeUserService) CreateUser(input *models.CreateUserInput) (*models.User, *apiError.Error) {
	f.created = input
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeUserService) GetUser(id uint) (*models.User, *apiError.Error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeUserService) GetAllUsers() ([]models.User, *apiError.Error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}

func (f *fakeUserService) ReplaceUser(input *models.ReplaceUserInput) (*models.User, *apiError.Error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeUserService) DeleteUser(id uint) (*models.User, *apiError.Error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakeAssetService struct {
	assets []models.Asset
	err    *apiError.Error
}

func (f *fakeAssetService) CreateAsset(input *models.CreateAssetInput) (*models.Asset, *apiError.Error) {
	return nil, f.err
}

func (f *fakeAssetService) GetAsset(id uint) (*models.Asset, *apiError.Error) {
	return nil, f.err
}

func (f *fakeAssetService) GetAllAssets() ([]models.Asset, *apiError.Error) {
	return f.assets, f.err
}

func (f *fakeAssetService) UpdateAsset(input *models.UpdateAssetInput) (*models.Asset, *apiError.Error) {
	return nil, f.err
}

func (f *fakeAssetService) DeleteAsset(id uint) *apiError.Error {
	return f.err
}

func (f *fakeAssetService) AssetsByType() ([]models.NameCount, *apiError.Error) {
	return nil, f.err
}

func (f *fakeAssetService) TopAssetOwner() (*models.TopAssetOwner, *apiError.Error) {
	return nil, f.err
}

func (f *fakeAssetService) RecentAssets() ([]models.Asset, *apiError.Error) {
	return f.assets, f.err
}

type fakeIncidentService struct {
	incident *models.Incident
	err      *apiError.Error
	created  *models.CreateIncidentInput
	updated  *models.UpdateIncidentInput
}

func (f *fakeIncidentService) CreateIncident(input *models.CreateIncidentInput) (*models.Incident, *apiError.Error) {
	f.created = input
	if f.err != nil {
		return nil, f.err
	}
	return f.incident, nil
}

func (f *fakeIncidentService) GetIncident(id uint) (*models.Incident, *apiError.Error) {
	return f.incident, f.err
}

func (f *fakeIncidentService) GetAllIncidents() ([]models.Incident, *apiError.Error) {
	return nil, f.err
}

func (f *fakeIncidentService) UpdateIncident(input *models.UpdateIncidentInput) (*models.Incident, *apiError.Error) {
	f.updated = input
	if f.err != nil {
		return nil, f.err
	}
	return f.incident, nil
}

func (f *fakeIncidentService) DeleteIncident(id uint) *apiError.Error {
	return f.err
}

func (f *fakeIncidentService) IncidentsByPriority() ([]models.NameCount, *apiError.Error) {
	return nil, f.err
}

func (f *fakeIncidentService) AssetWithMostIncidents() (*models.TopIncidentAsset, *apiError.Error) {
	return nil, f.err
}

func (f *fakeIncidentService) TopIncidentResolver() (*models.TopIncidentResolver, *apiError.Error) {
	return nil, f.err
}

func (f *fakeIncidentService) RecentIncidents() ([]models.Incident, *apiError.Error) {
	return nil, f.err
}

func newTestRouter(t *testing.T, s *Server) *gin.Engine {
	t.Helper()
	t.Setenv("GIN_MODE", "test")
	gin.SetMode(gin.TestMode)
	if s.Config == nil {
		s.Config = &config.Config{JWTSecret: testSecret}
	}
	return s.setupRouter()
}

func doRequest(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestHandleLoginSuccess(t *testing.T) {
	auth := &fakeAuthService{
		loginResp: &models.LoginResponse{
			User:  &models.User{ID: 1, Name: "Ada", Email: "ada@example.com", HashedPassword: "bcrypt-hash"},
			Token: "signed-token",
		},
	}
	router := newTestRouter(t, &Server{AuthService: auth})

	w := doRequest(router, http.MethodPost, "/auth/login",
		`{"email":"ada@example.com","password":"correct horse"}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, "login successful", envelope["message"])
	assert.Equal(t, "OK", envelope["status"])
	assert.Nil(t, envelope["errors"])

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "signed-token", data["token"])

	user := data["user"].(map[string]interface{})
	assert.Equal(t, "ada@example.com", user["email"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "hashedPassword")
	assert.NotContains(t, w.Body.String(), "bcrypt-hash")
}

func TestHandleLoginInvalidCredentials(t *testing.T) {
	auth := &fakeAuthService{loginErr: apiError.ErrInvalidCredentials}
	router := newTestRouter(t, &Server{AuthService: auth})

	w := doRequest(router, http.MethodPost, "/auth/login",
		`{"email":"ada@example.com","password":"wrong"}`, nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Contains(t, envelope["errors"], "invalid email or password")
	assert.Nil(t, envelope["data"])
}

func TestHandleLoginRejectsUnknownFields(t *testing.T) {
	auth := &fakeAuthService{}
	router := newTestRouter(t, &Server{AuthService: auth})

	w := doRequest(router, http.MethodPost, "/auth/login",
		`{"email":"ada@example.com","password":"pw","admin":true}`, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, auth.loginCalls)
}

func TestHandleLoginValidatesEmail(t *testing.T) {
	auth := &fakeAuthService{}
	router := newTestRouter(t, &Server{AuthService: auth})

	w := doRequest(router, http.MethodPost, "/auth/login",
		`{"email":"not-an-email","password":"pw"}`, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, auth.loginCalls)
}

func TestChangePasswordRequiresToken(t *testing.T) {
	auth := &fakeAuthService{}
	router := newTestRouter(t, &Server{AuthService: auth})

	w := doRequest(router, http.MethodPatch, "/auth/change-password",
		`{"currentPassword":"old","newPassword":"new password 123"}`, nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, auth.changedFor)
}

func TestChangePasswordRejectsBadToken(t *testing.T) {
	auth := &fakeAuthService{}
	router := newTestRouter(t, &Server{AuthService: auth})

	w := doRequest(router, http.MethodPatch, "/auth/change-password",
		`{"currentPassword":"old","newPassword":"new password 123"}`,
		map[string]string{"Authorization": "Bearer not-a-token"})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, auth.changedFor)
}

func TestChangePasswordWithValidToken(t *testing.T) {
	auth := &fakeAuthService{}
	router := newTestRouter(t, &Server{AuthService: auth})

	token, err := jwt.GenerateToken(7, "ada@example.com", testSecret)
	require.NoError(t, err)

	w := doRequest(router, http.MethodPatch, "/auth/change-password",
		`{"currentPassword":"old password","newPassword":"new password 123"}`,
		map[string]string{"Authorization": "Bearer " + token})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), auth.changedFor)
	assert.Equal(t, "old password", auth.changedFrom)
	assert.Equal(t, "new password 123", auth.changedTo)
}

func TestResetPasswordWithValidToken(t *testing.T) {
	auth := &fakeAuthService{}
	router := newTestRouter(t, &Server{AuthService: auth})

	token, err := jwt.GenerateToken(1, "admin@example.com", testSecret)
	require.NoError(t, err)

	w := doRequest(router, http.MethodPatch, "/auth/reset-password/9",
		`{"newPassword":"new password 123"}`,
		map[string]string{"Authorization": "Bearer " + token})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(9), auth.resetFor)
}

func TestGetUserRejectsNonNumericID(t *testing.T) {
	router := newTestRouter(t, &Server{UserService: &fakeUserService{}})

	w := doRequest(router, http.MethodGet, "/users/abc", "", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserOmitsPasswordHash(t *testing.T) {
	users := &fakeUserService{
		user: &models.User{ID: 1, Name: "Ada", Email: "ada@example.com", HashedPassword: "bcrypt-hash"},
	}
	router := newTestRouter(t, &Server{UserService: users})

	w := doRequest(router, http.MethodGet, "/users/1", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "bcrypt-hash")
}

func TestCreateUserRejectsUnknownFields(t *testing.T) {
	users := &fakeUserService{}
	router := newTestRouter(t, &Server{UserService: users})

	w := doRequest(router, http.MethodPost, "/users",
		`{"name":"Ada","email":"ada@example.com","password":"correct horse","role":"admin"}`, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, users.created)
}

func TestCreateUserSuccess(t *testing.T) {
	users := &fakeUserService{
		user: &models.User{ID: 1, Name: "Ada", Email: "ada@example.com"},
	}
	router := newTestRouter(t, &Server{UserService: users})

	w := doRequest(router, http.MethodPost, "/users",
		`{"name":"  Ada  ","email":"ADA@EXAMPLE.COM","password":"correct horse"}`, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, users.created)
	assert.Equal(t, "Ada", users.created.Name)
	assert.Equal(t, "ada@example.com", users.created.Email)
}

func TestRecentAssets(t *testing.T) {
	assets := &fakeAssetService{
		assets: []models.Asset{
			{ID: 2, Name: "Router"},
			{ID: 1, Name: "Laptop"},
		},
	}
	router := newTestRouter(t, &Server{AssetService: assets})

	w := doRequest(router, http.MethodGet, "/assets/recent", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	data := envelope["data"].([]interface{})
	assert.Len(t, data, 2)
}

func TestServiceErrorStatusIsRendered(t *testing.T) {
	assets := &fakeAssetService{err: apiError.NotFound("asset")}
	router := newTestRouter(t, &Server{AssetService: assets})

	w := doRequest(router, http.MethodGet, "/assets/5", "", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, "Not Found", envelope["status"])
}

func TestCreateRequiresCategories(t *testing.T) {
	incidents := &fakeIncidentService{}
	assets := &fakeAssetService{}
	router := newTestRouter(t, &Server{
		IncidentService: incidents,
		AssetService:    assets,
	})

	cases := []struct {
		name string
		path string
		body string
	}{
		{
			name: "incident empty categories",
			path: "/incidents",
			body: `{"title":"t","description":"d","reporterId":1,"categories":[]}`,
		},
		{
			name: "incident missing categories",
			path: "/incidents",
			body: `{"title":"t","description":"d","reporterId":1}`,
		},
		{
			name: "asset empty categories",
			path: "/assets",
			body: `{"name":"n","description":"d","purchasedAt":"2024-01-02T00:00:00Z","categories":[]}`,
		},
		{
			name: "request missing categories",
			path: "/requests",
			body: `{"title":"t","description":"d","requestorId":1,"plannedForDate":"2024-01-02T00:00:00Z"}`,
		},
		{
			name: "article empty categories",
			path: "/knowledgearticles",
			body: `{"title":"t","docUrl":"https://example.com/doc","createdById":1,"categories":[]}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, tc.path, tc.body, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	assert.Nil(t, incidents.created)
}

func TestUpdateIncidentAllowsEmptyCategories(t *testing.T) {
	incidents := &fakeIncidentService{incident: &models.Incident{ID: 3}}
	router := newTestRouter(t, &Server{IncidentService: incidents})

	w := doRequest(router, http.MethodPut, "/incidents",
		`{"id":3,"title":"t","description":"d","reporterId":1,"categories":[]}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, incidents.updated)
	assert.Empty(t, incidents.updated.Categories)
}

func TestDocsEndpoint(t *testing.T) {
	router := newTestRouter(t, &Server{})

	w := doRequest(router, http.MethodGet, "/api", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "itsm-backend")
}
