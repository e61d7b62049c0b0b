package repository

import (
	"testing"

	"lab-portal-backend/internal/database/models"
	"lab-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectRepositoryTestSuite tests the ProjectRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProjectRepository
	users         *testutils.UserFactory
	teams         *testutils.TeamFactory
	projects      *testutils.ProjectFactory
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.users = testutils.NewUserFactory()
	suite.teams = testutils.NewTeamFactory()
	suite.projects = testutils.NewProjectFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ProjectRepositoryTestSuite) createTeam() *models.Team {
	leader := suite.users.WithRole(models.RoleTeamLeader)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(leader).Error)
	team := suite.teams.Create(leader.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(team).Error)
	return team
}

// TestCreateAndGetByID tests creating a project and retrieving it
func (suite *ProjectRepositoryTestSuite) TestCreateAndGetByID() {
	team := suite.createTeam()
	project := suite.projects.Create(team.ID)

	suite.NoError(suite.repo.Create(project))

	found, err := suite.repo.GetByID(project.ID)
	suite.NoError(err)
	suite.Equal(project.Name, found.Name)
	suite.Equal(models.ProjectStatePlanning, found.State)
}

// TestGetWithTeam tests that the owning team is preloaded for authorization
func (suite *ProjectRepositoryTestSuite) TestGetWithTeam() {
	team := suite.createTeam()
	project := suite.projects.Create(team.ID)
	suite.Require().NoError(suite.repo.Create(project))

	found, err := suite.repo.GetWithTeam(project.ID)
	suite.NoError(err)
	suite.Require().NotNil(found.Team)
	suite.Equal(team.LeaderID, found.Team.LeaderID)
}

// TestGetByTeamID tests listing a team's projects
func (suite *ProjectRepositoryTestSuite) TestGetByTeamID() {
	teamA := suite.createTeam()
	teamB := suite.createTeam()
	suite.Require().NoError(suite.repo.Create(suite.projects.Create(teamA.ID)))
	suite.Require().NoError(suite.repo.Create(suite.projects.Create(teamA.ID)))
	suite.Require().NoError(suite.repo.Create(suite.projects.Create(teamB.ID)))

	projects, err := suite.repo.GetByTeamID(teamA.ID)
	suite.NoError(err)
	suite.Len(projects, 2)
}

// TestUpdateState tests persisting a state change
func (suite *ProjectRepositoryTestSuite) TestUpdateState() {
	team := suite.createTeam()
	project := suite.projects.Create(team.ID)
	suite.Require().NoError(suite.repo.Create(project))

	project.State = models.ProjectStateInProgress
	suite.NoError(suite.repo.Update(project))

	found, err := suite.repo.GetByID(project.ID)
	suite.NoError(err)
	suite.Equal(models.ProjectStateInProgress, found.State)
}

// TestDelete tests removing a project
func (suite *ProjectRepositoryTestSuite) TestDelete() {
	team := suite.createTeam()
	project := suite.projects.Create(team.ID)
	suite.Require().NoError(suite.repo.Create(project))

	suite.NoError(suite.repo.Delete(project.ID))

	_, err := suite.repo.GetByID(project.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteMissing tests deleting a project that does not exist
func (suite *ProjectRepositoryTestSuite) TestDeleteMissing() {
	err := suite.repo.Delete(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestProjectRepositoryTestSuite runs the test suite
func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
