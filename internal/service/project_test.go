package service_test

import (
	"testing"

	"lab-portal-backend/internal/authz"
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

// ProjectServiceTestSuite defines the test suite for ProjectService
type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockProjectRepositoryInterface
	mockTeamRepo   *mocks.MockTeamRepositoryInterface
	projectService *service.ProjectService
}

// SetupTest sets up the test suite
func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.projectService = service.NewProjectService(suite.mockRepo, suite.mockTeamRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func testProject(id, teamID uuid.UUID) *models.Project {
	return &models.Project{
		BaseModel:   models.BaseModel{ID: id},
		Name:        "Genome Browser",
		Description: "Interactive genome browser",
		State:       models.ProjectStateInProgress,
		TeamID:      teamID,
	}
}

// TestCreateProjectByTeamLeader tests that the owning team's leader can
// create projects under the team
func (suite *ProjectServiceTestSuite) TestCreateProjectByTeamLeader() {
	leaderID := uuid.New()
	team := testTeam(uuid.New(), leaderID)
	req := &service.CreateProjectRequest{Name: "Genome Browser", TeamID: team.ID}

	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Project) error {
		suite.Equal(models.ProjectStatePlanning, p.State)
		p.ID = uuid.New()
		return nil
	})

	principal := authz.Principal{ID: leaderID, Role: models.RoleTeamLeader}
	resp, err := suite.projectService.Create(req, principal)

	suite.NoError(err)
	suite.Equal("Genome Browser", resp.Name)
	suite.Equal(models.ProjectStatePlanning, resp.State)
	suite.Equal(team.ID, resp.TeamID)
}

// TestCreateProjectTeamNotFound tests creating under a missing team
func (suite *ProjectServiceTestSuite) TestCreateProjectTeamNotFound() {
	teamID := uuid.New()
	req := &service.CreateProjectRequest{Name: "Genome Browser", TeamID: teamID}

	suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.projectService.Create(req, labLeaderPrincipal(uuid.New()))

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

// TestCreateProjectForbidden tests that a plain member cannot create projects
func (suite *ProjectServiceTestSuite) TestCreateProjectForbidden() {
	team := testTeam(uuid.New(), uuid.New())
	req := &service.CreateProjectRequest{Name: "Genome Browser", TeamID: team.ID}

	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)

	resp, err := suite.projectService.Create(req, memberPrincipal(uuid.New()))

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// TestCreateProjectInvalidState tests state validation
func (suite *ProjectServiceTestSuite) TestCreateProjectInvalidState() {
	req := &service.CreateProjectRequest{Name: "Genome Browser", State: "SHIPPED", TeamID: uuid.New()}

	resp, err := suite.projectService.Create(req, labLeaderPrincipal(uuid.New()))

	suite.Nil(resp)
	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

// TestUpdateProjectStateByLeader tests a state change by the owning team's leader
func (suite *ProjectServiceTestSuite) TestUpdateProjectStateByLeader() {
	leaderID := uuid.New()
	team := testTeam(uuid.New(), leaderID)
	project := testProject(uuid.New(), team.ID)
	project.Team = team
	state := models.ProjectStateCompleted
	req := &service.UpdateProjectRequest{State: &state}

	suite.mockRepo.EXPECT().GetWithTeam(project.ID).Return(project, nil)
	suite.mockRepo.EXPECT().Update(project).Return(nil)

	principal := authz.Principal{ID: leaderID, Role: models.RoleTeamLeader}
	resp, err := suite.projectService.Update(project.ID, req, principal)

	suite.NoError(err)
	suite.Equal(models.ProjectStateCompleted, resp.State)
}

// TestUpdateProjectForbidden tests that authorization resolves through the
// owning team's leader
func (suite *ProjectServiceTestSuite) TestUpdateProjectForbidden() {
	team := testTeam(uuid.New(), uuid.New())
	project := testProject(uuid.New(), team.ID)
	project.Team = team
	state := models.ProjectStateCompleted
	req := &service.UpdateProjectRequest{State: &state}

	suite.mockRepo.EXPECT().GetWithTeam(project.ID).Return(project, nil)

	resp, err := suite.projectService.Update(project.ID, req, memberPrincipal(uuid.New()))

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// TestUpdateProjectMoveTeam tests moving a project to another team
func (suite *ProjectServiceTestSuite) TestUpdateProjectMoveTeam() {
	team := testTeam(uuid.New(), uuid.New())
	target := testTeam(uuid.New(), uuid.New())
	project := testProject(uuid.New(), team.ID)
	project.Team = team
	req := &service.UpdateProjectRequest{TeamID: &target.ID}

	suite.mockRepo.EXPECT().GetWithTeam(project.ID).Return(project, nil)
	suite.mockTeamRepo.EXPECT().GetByID(target.ID).Return(target, nil)
	suite.mockRepo.EXPECT().Update(project).Return(nil)

	resp, err := suite.projectService.Update(project.ID, req, labLeaderPrincipal(uuid.New()))

	suite.NoError(err)
	suite.Equal(target.ID, resp.TeamID)
}

// TestUpdateProjectMoveToMissingTeam tests moving a project to a team that
// does not exist
func (suite *ProjectServiceTestSuite) TestUpdateProjectMoveToMissingTeam() {
	team := testTeam(uuid.New(), uuid.New())
	project := testProject(uuid.New(), team.ID)
	project.Team = team
	targetID := uuid.New()
	req := &service.UpdateProjectRequest{TeamID: &targetID}

	suite.mockRepo.EXPECT().GetWithTeam(project.ID).Return(project, nil)
	suite.mockTeamRepo.EXPECT().GetByID(targetID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.projectService.Update(project.ID, req, labLeaderPrincipal(uuid.New()))

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

// TestDeleteProjectByLabLeader tests deletion by the LabLeader
func (suite *ProjectServiceTestSuite) TestDeleteProjectByLabLeader() {
	team := testTeam(uuid.New(), uuid.New())
	project := testProject(uuid.New(), team.ID)
	project.Team = team

	suite.mockRepo.EXPECT().GetWithTeam(project.ID).Return(project, nil)
	suite.mockRepo.EXPECT().Delete(project.ID).Return(nil)

	err := suite.projectService.Delete(project.ID, labLeaderPrincipal(uuid.New()))

	suite.NoError(err)
}

// TestDeleteProjectForbidden tests deletion by an unrelated member
func (suite *ProjectServiceTestSuite) TestDeleteProjectForbidden() {
	team := testTeam(uuid.New(), uuid.New())
	project := testProject(uuid.New(), team.ID)
	project.Team = team

	suite.mockRepo.EXPECT().GetWithTeam(project.ID).Return(project, nil)

	err := suite.projectService.Delete(project.ID, memberPrincipal(uuid.New()))

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// TestListByTeamNotFound tests listing projects of a missing team
func (suite *ProjectServiceTestSuite) TestListByTeamNotFound() {
	teamID := uuid.New()
	suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.projectService.ListByTeam(teamID)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

// TestProjectServiceTestSuite runs the test suite
func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
