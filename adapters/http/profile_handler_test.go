package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	profileUC "github.com/nhattranq/profilehub/internal/application/usecase/profile"
	"github.com/nhattranq/profilehub/internal/domain/profile"
	"github.com/nhattranq/profilehub/internal/domain/user"
	"github.com/nhattranq/profilehub/pkg/auth"
	"github.com/nhattranq/profilehub/pkg/logger"
)

type memUserRepo struct {
	users map[uuid.UUID]*user.User
}

func (r *memUserRepo) Create(ctx context.Context, u *user.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *memUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *memUserRepo) UpdateUsername(ctx context.Context, id uuid.UUID, username string) error {
	r.users[id].Username = username
	return nil
}

func (r *memUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	r.users[id].PasswordHash = hash
	return nil
}

type memProfileRepo struct {
	sections map[uuid.UUID]map[profile.SectionKey]any
}

func (r *memProfileRepo) GetAggregate(ctx context.Context, userID uuid.UUID) (*profile.Aggregate, error) {
	agg := profile.EmptyAggregate()
	for key, data := range r.sections[userID] {
		switch key {
		case profile.SectionProfile:
			agg.Profile = data.(profile.Profile)
		case profile.SectionSkills:
			agg.Skills = data.([]string)
		}
	}
	return agg, nil
}

func (r *memProfileRepo) ReplaceSection(ctx context.Context, userID uuid.UUID, key profile.SectionKey, data any) error {
	if r.sections[userID] == nil {
		r.sections[userID] = map[profile.SectionKey]any{}
	}
	r.sections[userID][key] = data
	return nil
}

type ProfileHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	jwtSvc *auth.JWTService
	owner  *user.User
}

func (s *ProfileHandlerTestSuite) SetupTest() {
	appLogger := logger.NewZapLogger("development")

	userRepo := &memUserRepo{users: map[uuid.UUID]*user.User{}}
	profileRepo := &memProfileRepo{sections: map[uuid.UUID]map[profile.SectionKey]any{}}

	s.owner = &user.User{ID: uuid.New(), Username: "jane", Email: "jane@example.com"}
	s.Require().NoError(userRepo.Create(context.Background(), s.owner))

	s.jwtSvc = auth.NewJWTService("test-secret", time.Hour)

	getUC := profileUC.NewGetAggregateUseCase(profileRepo, nil)
	updateUC := profileUC.NewUpdateSectionUseCase(profileRepo, nil, nil, appLogger)
	handler := NewProfileHandler(getUC, updateUC, userRepo, appLogger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(appLogger))
	router.GET("/profiledata/:userId", OptionalAuthMiddleware(s.jwtSvc), handler.GetProfileData)
	for _, key := range profile.SectionKeys {
		router.PUT("/"+string(key)+"/me", AuthMiddleware(s.jwtSvc), handler.UpdateSection(key))
	}
	s.router = router
}

func TestProfileHandler(t *testing.T) {
	suite.Run(t, new(ProfileHandlerTestSuite))
}

func (s *ProfileHandlerTestSuite) bearer() string {
	token, err := s.jwtSvc.GenerateToken(s.owner.ID)
	s.Require().NoError(err)
	return "Bearer " + token
}

func (s *ProfileHandlerTestSuite) Test_UpdateSection_RequiresToken() {
	req := httptest.NewRequest(http.MethodPut, "/skills/me", bytes.NewBufferString(`{"skills":[]}`))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *ProfileHandlerTestSuite) Test_UpdateSkills_RoundTrip() {
	body := `{"skills":["Litigation","Contracts"]}`
	req := httptest.NewRequest(http.MethodPut, "/skills/me", bytes.NewBufferString(body))
	req.Header.Set("Authorization", s.bearer())
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		SkillRecord struct {
			Skills []string `json:"skills"`
		} `json:"skillRecord"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal([]string{"Litigation", "Contracts"}, resp.SkillRecord.Skills)

	// The saved skills come back in the aggregate.
	req = httptest.NewRequest(http.MethodGet, "/profiledata/"+s.owner.ID.String(), nil)
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Require().Equal(http.StatusOK, w.Code)
	var agg struct {
		Data struct {
			Skills struct {
				Skills []string `json:"skills"`
			} `json:"skills"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &agg))
	s.Equal([]string{"Litigation", "Contracts"}, agg.Data.Skills.Skills)
}

func (s *ProfileHandlerTestSuite) Test_UpdateEducation_ValidationErrors() {
	body := `[{"degree":"","institution":"MIT","startDate":"","description":"x"}]`
	req := httptest.NewRequest(http.MethodPut, "/education/me", bytes.NewBufferString(body))
	req.Header.Set("Authorization", s.bearer())
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Require().Equal(http.StatusBadRequest, w.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Degree is required", resp.Fields["0.degree"])
	s.Equal("Start date is required", resp.Fields["0.startDate"])
}

func (s *ProfileHandlerTestSuite) Test_GetProfileData_UnknownUser() {
	req := httptest.NewRequest(http.MethodGet, "/profiledata/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
	s.JSONEq(`{"message":"Profile data not found"}`, w.Body.String())
}

func (s *ProfileHandlerTestSuite) Test_GetProfileData_InvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/profiledata/not-a-uuid", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
}
