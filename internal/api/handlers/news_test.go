package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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

// NewsHandlerTestSuite defines the test suite for NewsHandler
type NewsHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockNewsServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	principal   authz.Principal
}

// SetupTest sets up the test suite
func (suite *NewsHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockNewsServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.principal = authz.Principal{ID: uuid.New(), Email: "author@lab.test", Role: models.RoleTeamMember}

	handler := handlers.NewNewsHandler(suite.mockService)
	authed := suite.httpSuite.Router.Group("/api/v1", withPrincipal(suite.principal))
	authed.POST("/news", handler.CreateNews)
	authed.POST("/news/upload", handler.UploadImage)
	authed.PUT("/news/:id", handler.UpdateNews)
	authed.DELETE("/news/:id", handler.DeleteNews)

	public := suite.httpSuite.Router.Group("/api/v1")
	public.GET("/news", handler.ListNews)
	public.GET("/news/:id", handler.GetNews)
}

// TearDownTest cleans up after each test
func (suite *NewsHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateNewsSuccess tests POST /news
func (suite *NewsHandlerTestSuite) TestCreateNewsSuccess() {
	expected := &service.NewsResponse{
		ID:          uuid.New(),
		Title:       "New sequencer installed",
		Content:     "Details inside.",
		AuthorID:    suite.principal.ID,
		PublishDate: time.Now(),
	}
	suite.mockService.EXPECT().Create(gomock.Any(), suite.principal).Return(expected, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/news", map[string]interface{}{
		"title":   "New sequencer installed",
		"content": "Details inside.",
	})

	var resp service.NewsResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	suite.Equal(suite.principal.ID, resp.AuthorID)
}

// TestListNews tests GET /news
func (suite *NewsHandlerTestSuite) TestListNews() {
	posts := []service.NewsResponse{
		{ID: uuid.New(), Title: "First"},
		{ID: uuid.New(), Title: "Second"},
	}
	suite.mockService.EXPECT().List().Return(posts, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/news", nil)

	var resp []service.NewsResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Len(resp, 2)
}

// TestUpdateNewsForbidden tests the 403 mapping for a non-author
func (suite *NewsHandlerTestSuite) TestUpdateNewsForbidden() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Update(id, gomock.Any(), suite.principal).
		Return(nil, apperrors.ErrForbidden)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/news/"+id.String(), map[string]interface{}{
		"title": "Edited",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "permission")
}

// TestDeleteNewsSuccess tests DELETE /news/:id
func (suite *NewsHandlerTestSuite) TestDeleteNewsSuccess() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(id, suite.principal).Return(nil)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/news/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

// TestUploadImage tests POST /news/upload with a multipart body
func (suite *NewsHandlerTestSuite) TestUploadImage() {
	suite.mockService.EXPECT().
		UploadImage(gomock.Any()).
		Return("http://localhost:7100/uploads/abc.png", nil)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "photo.png")
	suite.Require().NoError(err)
	_, err = part.Write([]byte("fake png bytes"))
	suite.Require().NoError(err)
	suite.Require().NoError(writer.Close())

	req, _ := http.NewRequest("POST", "/api/v1/news/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	var resp map[string]string
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	suite.Equal("http://localhost:7100/uploads/abc.png", resp["url"])
}

// TestUploadImageMissingFile tests an upload without the image field
func (suite *NewsHandlerTestSuite) TestUploadImageMissingFile() {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	suite.Require().NoError(writer.Close())

	req, _ := http.NewRequest("POST", "/api/v1/news/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "image file is required")
}

// TestUploadImageRejected tests the 400 mapping for an invalid file
func (suite *NewsHandlerTestSuite) TestUploadImageRejected() {
	suite.mockService.EXPECT().
		UploadImage(gomock.Any()).
		Return("", apperrors.NewValidationError("image", "unsupported image type \".exe\""))

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "malware.exe")
	suite.Require().NoError(err)
	_, err = part.Write([]byte("nope"))
	suite.Require().NoError(err)
	suite.Require().NoError(writer.Close())

	req, _ := http.NewRequest("POST", "/api/v1/news/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "unsupported image type")
}

// TestNewsHandlerTestSuite runs the test suite
func TestNewsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NewsHandlerTestSuite))
}
