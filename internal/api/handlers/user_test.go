package handlers_test

import (
	"net/http"
	"testing"

	"lab-portal-backend/internal/api/handlers"
	"lab-portal-backend/internal/authz"
	"lab-portal-backend/internal/database/models"
	apperrors "lab-portal-backend/internal/errors"
	"lab-portal-backend/internal/mocks"
	"lab-portal-backend/internal/service"
	"lab-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockUserServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	principal   authz.Principal
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.principal = authz.Principal{ID: uuid.New(), Email: "member@lab.test", Role: models.RoleTeamMember}

	handler := handlers.NewUserHandler(suite.mockService)
	public := suite.httpSuite.Router.Group("/api/v1")
	public.POST("/users/register", handler.Register)
	public.POST("/users/login", handler.Login)
	public.GET("/users", handler.ListUsers)
	public.GET("/users/:id", handler.GetUser)

	authed := suite.httpSuite.Router.Group("/api/v1", withPrincipal(suite.principal))
	authed.GET("/users/profile", handler.GetProfile)
	authed.PUT("/users/profile", handler.UpdateProfile)
	authed.PUT("/users/:id", handler.UpdateUser)
	authed.DELETE("/users/:id", handler.DeleteUser)
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestRegisterSuccess tests POST /users/register
func (suite *UserHandlerTestSuite) TestRegisterSuccess() {
	expected := &service.UserResponse{
		ID:        uuid.New(),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@lab.test",
		Role:      models.RoleTeamMember,
	}
	suite.mockService.EXPECT().Register(gomock.Any()).Return(expected, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/users/register", map[string]interface{}{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@lab.test",
		"password":   "password123",
	})

	var resp service.UserResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	suite.Equal("ada@lab.test", resp.Email)
	suite.Equal(models.RoleTeamMember, resp.Role)
}

// TestRegisterDuplicateEmail tests that a taken email is rejected with a 400
func (suite *UserHandlerTestSuite) TestRegisterDuplicateEmail() {
	suite.mockService.EXPECT().Register(gomock.Any()).Return(nil, apperrors.ErrUserExists)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/users/register", map[string]interface{}{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@lab.test",
		"password":   "password123",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "user already exists")
}

// TestLoginSuccess tests POST /users/login
func (suite *UserHandlerTestSuite) TestLoginSuccess() {
	expected := &service.LoginResponse{
		AccessToken: "signed-token",
		TokenType:   "Bearer",
		ExpiresIn:   86400,
		User:        service.UserResponse{ID: uuid.New(), Email: "ada@lab.test"},
	}
	suite.mockService.EXPECT().Login(gomock.Any()).Return(expected, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/users/login", map[string]interface{}{
		"email":    "ada@lab.test",
		"password": "password123",
	})

	var resp service.LoginResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal("signed-token", resp.AccessToken)
	suite.Equal("Bearer", resp.TokenType)
}

// TestLoginInvalidCredentials tests the 401 mapping
func (suite *UserHandlerTestSuite) TestLoginInvalidCredentials() {
	suite.mockService.EXPECT().Login(gomock.Any()).Return(nil, apperrors.ErrInvalidCredentials)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/users/login", map[string]interface{}{
		"email":    "ada@lab.test",
		"password": "wrong-password",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "invalid email or password")
}

// TestGetProfile tests GET /users/profile
func (suite *UserHandlerTestSuite) TestGetProfile() {
	expected := &service.UserResponse{ID: suite.principal.ID, Email: suite.principal.Email}
	suite.mockService.EXPECT().GetByID(suite.principal.ID).Return(expected, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/users/profile", nil)

	var resp service.UserResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(suite.principal.ID, resp.ID)
}

// TestUpdateProfile tests PUT /users/profile
func (suite *UserHandlerTestSuite) TestUpdateProfile() {
	expected := &service.UserResponse{ID: suite.principal.ID, FirstName: "Augusta"}
	suite.mockService.EXPECT().
		Update(suite.principal.ID, gomock.Any(), suite.principal).
		Return(expected, nil)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/users/profile", map[string]interface{}{
		"first_name": "Augusta",
	})

	var resp service.UserResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal("Augusta", resp.FirstName)
}

// TestListUsers tests GET /users
func (suite *UserHandlerTestSuite) TestListUsers() {
	users := []service.UserResponse{
		{ID: uuid.New(), Email: "a@lab.test"},
		{ID: uuid.New(), Email: "b@lab.test"},
	}
	suite.mockService.EXPECT().List().Return(users, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/users", nil)

	var resp []service.UserResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Len(resp, 2)
}

// TestGetUserInvalidID tests a non-UUID path parameter
func (suite *UserHandlerTestSuite) TestGetUserInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/users/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid user ID")
}

// TestGetUserNotFound tests the 404 mapping
func (suite *UserHandlerTestSuite) TestGetUserNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().GetByID(id).Return(nil, apperrors.ErrUserNotFound)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/users/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

// TestUpdateUserForbidden tests the 403 mapping
func (suite *UserHandlerTestSuite) TestUpdateUserForbidden() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Update(id, gomock.Any(), suite.principal).
		Return(nil, apperrors.ErrForbidden)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/users/"+id.String(), map[string]interface{}{
		"first_name": "Augusta",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "permission")
}

// TestDeleteUserSuccess tests DELETE /users/:id
func (suite *UserHandlerTestSuite) TestDeleteUserSuccess() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(id, suite.principal).Return(nil)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/users/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

// TestDeleteUserStillReferenced tests that a delete blocked by remaining
// references maps to a 400
func (suite *UserHandlerTestSuite) TestDeleteUserStillReferenced() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(id, suite.principal).Return(apperrors.ErrUserReferenced)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/users/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "still leads a team")
}

// TestProfileRequiresAuth tests that profile routes reject anonymous requests
func (suite *UserHandlerTestSuite) TestProfileRequiresAuth() {
	router := testutils.SetupHTTPTest()
	handler := handlers.NewUserHandler(suite.mockService)
	router.Router.GET("/api/v1/users/profile", handler.GetProfile)

	recorder := router.MakeRequest("GET", "/api/v1/users/profile", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Authentication required")
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
