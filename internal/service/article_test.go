package service_test

import (
	"testing"
	"time"

	"lab-portal-backend/internal/database/models"
	apperrors "lab-portal-backend/internal/errors"
	"lab-portal-backend/internal/mocks"
	"lab-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ArticleServiceTestSuite defines the test suite for ArticleService
type ArticleServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockArticleRepositoryInterface
	articleService *service.ArticleService
}

// SetupTest sets up the test suite
func (suite *ArticleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockArticleRepositoryInterface(suite.ctrl)
	suite.articleService = service.NewArticleService(suite.mockRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *ArticleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func testArticle(id, authorID uuid.UUID) *models.Article {
	return &models.Article{
		BaseModel:   models.BaseModel{ID: id},
		Title:       "Long-read assembly of repeat regions",
		Content:     "We present an assembly pipeline for repeat-dense loci.",
		AuthorID:    authorID,
		PublishDate: time.Now(),
	}
}

// TestCreateArticleWithLinks tests creating an article with both links
func (suite *ArticleServiceTestSuite) TestCreateArticleWithLinks() {
	authorID := uuid.New()
	req := &service.CreateArticleRequest{
		Title:       "Long-read assembly of repeat regions",
		Content:     "Abstract and full text.",
		PDFLink:     "https://papers.lab.test/assembly.pdf",
		JournalLink: "https://journal.example.org/article/42",
	}

	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *models.Article) error {
		suite.Equal(authorID, a.AuthorID)
		a.ID = uuid.New()
		return nil
	})

	resp, err := suite.articleService.Create(req, memberPrincipal(authorID))

	suite.NoError(err)
	suite.Equal("https://papers.lab.test/assembly.pdf", resp.PDFLink)
	suite.Equal(authorID, resp.AuthorID)
}

// TestCreateArticleBadLink tests link validation
func (suite *ArticleServiceTestSuite) TestCreateArticleBadLink() {
	req := &service.CreateArticleRequest{
		Title:   "Long-read assembly of repeat regions",
		Content: "Abstract.",
		PDFLink: "not-a-url",
	}

	resp, err := suite.articleService.Create(req, memberPrincipal(uuid.New()))

	suite.Nil(resp)
	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

// TestUpdateArticleByAuthor tests that the author can update their article
func (suite *ArticleServiceTestSuite) TestUpdateArticleByAuthor() {
	authorID := uuid.New()
	article := testArticle(uuid.New(), authorID)
	newLink := "https://journal.example.org/article/43"
	req := &service.UpdateArticleRequest{JournalLink: &newLink}

	suite.mockRepo.EXPECT().GetByID(article.ID).Return(article, nil)
	suite.mockRepo.EXPECT().Update(article).Return(nil)

	resp, err := suite.articleService.Update(article.ID, req, memberPrincipal(authorID))

	suite.NoError(err)
	suite.Equal(newLink, resp.JournalLink)
}

// TestUpdateArticleForbidden tests that a non-author cannot update the article
func (suite *ArticleServiceTestSuite) TestUpdateArticleForbidden() {
	article := testArticle(uuid.New(), uuid.New())
	newTitle := "Edited"
	req := &service.UpdateArticleRequest{Title: &newTitle}

	suite.mockRepo.EXPECT().GetByID(article.ID).Return(article, nil)

	resp, err := suite.articleService.Update(article.ID, req, memberPrincipal(uuid.New()))

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// TestDeleteArticleByLabLeader tests that the LabLeader can delete any article
func (suite *ArticleServiceTestSuite) TestDeleteArticleByLabLeader() {
	article := testArticle(uuid.New(), uuid.New())

	suite.mockRepo.EXPECT().GetByID(article.ID).Return(article, nil)
	suite.mockRepo.EXPECT().Delete(article.ID).Return(nil)

	err := suite.articleService.Delete(article.ID, labLeaderPrincipal(uuid.New()))

	suite.NoError(err)
}

// TestGetArticleNotFound tests the not found mapping
func (suite *ArticleServiceTestSuite) TestGetArticleNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.articleService.GetByID(id)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrArticleNotFound)
}

// TestArticleServiceTestSuite runs the test suite
func TestArticleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ArticleServiceTestSuite))
}
