package service_test

import (
	"testing"
	"time"

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

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockTeamRepo       *mocks.MockTeamRepositoryInterface
	mockUserRepo       *mocks.MockUserRepositoryInterface
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	teamService        *service.TeamService
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.teamService = service.NewTeamService(
		suite.mockTeamRepo,
		suite.mockUserRepo,
		suite.mockMembershipRepo,
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func memberPrincipal(id uuid.UUID) authz.Principal {
	return authz.Principal{ID: id, Email: "member@lab.test", Role: models.RoleTeamMember}
}

func labLeaderPrincipal(id uuid.UUID) authz.Principal {
	return authz.Principal{ID: id, Email: "leader@lab.test", Role: models.RoleLabLeader}
}

func testUser(id uuid.UUID, role models.Role) *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: id, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		FirstName: "Test",
		LastName:  "User",
		Email:     "test.user@lab.test",
		Role:      role,
	}
}

func testTeam(id, leaderID uuid.UUID) *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{ID: id, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name:      "Genomics",
		LeaderID:  leaderID,
	}
}

// TestCreateTeamSelfLeader tests creating a team where the requester leads it
func (suite *TeamServiceTestSuite) TestCreateTeamSelfLeader() {
	requesterID := uuid.New()
	req := &service.CreateTeamRequest{Name: "Genomics", LeaderID: requesterID}

	suite.mockTeamRepo.EXPECT().GetByLeaderID(requesterID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockTeamRepo.EXPECT().CheckNameExists("Genomics", nil).Return(false, nil)
	suite.mockUserRepo.EXPECT().GetByID(requesterID).Return(testUser(requesterID, models.RoleTeamMember), nil)
	suite.mockTeamRepo.EXPECT().CreateWithLeaderPromotion(gomock.Any()).Return(nil)

	resp, err := suite.teamService.Create(req, memberPrincipal(requesterID))

	suite.NoError(err)
	suite.Equal("Genomics", resp.Name)
	suite.Equal(requesterID, resp.LeaderID)
}

// TestCreateTeamRequesterAlreadyLeads tests that a requester who already leads
// a team is rejected before any other check runs
func (suite *TeamServiceTestSuite) TestCreateTeamRequesterAlreadyLeads() {
	requesterID := uuid.New()
	req := &service.CreateTeamRequest{Name: "Genomics", LeaderID: requesterID}

	suite.mockTeamRepo.EXPECT().GetByLeaderID(requesterID).Return(testTeam(uuid.New(), requesterID), nil)

	resp, err := suite.teamService.Create(req, memberPrincipal(requesterID))

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrAlreadyLeadsTeam)
}

// TestCreateTeamDuplicateName tests the name uniqueness rule
func (suite *TeamServiceTestSuite) TestCreateTeamDuplicateName() {
	requesterID := uuid.New()
	req := &service.CreateTeamRequest{Name: "Genomics", LeaderID: requesterID}

	suite.mockTeamRepo.EXPECT().GetByLeaderID(requesterID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockTeamRepo.EXPECT().CheckNameExists("Genomics", nil).Return(true, nil)

	resp, err := suite.teamService.Create(req, memberPrincipal(requesterID))

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrTeamExists)
}

// TestCreateTeamLeaderNotFound tests the missing leader case
func (suite *TeamServiceTestSuite) TestCreateTeamLeaderNotFound() {
	requesterID := uuid.New()
	leaderID := uuid.New()
	req := &service.CreateTeamRequest{Name: "Genomics", LeaderID: leaderID}

	suite.mockTeamRepo.EXPECT().GetByLeaderID(requesterID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockTeamRepo.EXPECT().CheckNameExists("Genomics", nil).Return(false, nil)
	suite.mockUserRepo.EXPECT().GetByID(leaderID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.teamService.Create(req, memberPrincipal(requesterID))

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrLeaderNotFound)
}

// TestCreateTeamLabLeaderCannotLead tests that a LabLeader is not a valid team leader
func (suite *TeamServiceTestSuite) TestCreateTeamLabLeaderCannotLead() {
	requesterID := uuid.New()
	leaderID := uuid.New()
	req := &service.CreateTeamRequest{Name: "Genomics", LeaderID: leaderID}

	suite.mockTeamRepo.EXPECT().GetByLeaderID(requesterID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockTeamRepo.EXPECT().CheckNameExists("Genomics", nil).Return(false, nil)
	suite.mockUserRepo.EXPECT().GetByID(leaderID).Return(testUser(leaderID, models.RoleLabLeader), nil)

	resp, err := suite.teamService.Create(req, labLeaderPrincipal(requesterID))

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidLeaderRole)
}

// TestCreateTeamCandidateAlreadyLeads tests the leads-at-most-one rule for a
// designated leader who is not the requester
func (suite *TeamServiceTestSuite) TestCreateTeamCandidateAlreadyLeads() {
	requesterID := uuid.New()
	leaderID := uuid.New()
	req := &service.CreateTeamRequest{Name: "Genomics", LeaderID: leaderID}

	suite.mockTeamRepo.EXPECT().GetByLeaderID(requesterID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockTeamRepo.EXPECT().CheckNameExists("Genomics", nil).Return(false, nil)
	suite.mockUserRepo.EXPECT().GetByID(leaderID).Return(testUser(leaderID, models.RoleTeamLeader), nil)
	suite.mockTeamRepo.EXPECT().GetByLeaderID(leaderID).Return(testTeam(uuid.New(), leaderID), nil)

	resp, err := suite.teamService.Create(req, labLeaderPrincipal(requesterID))

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrAlreadyLeadsTeam)
}

// TestCreateTeamValidation tests request validation
func (suite *TeamServiceTestSuite) TestCreateTeamValidation() {
	req := &service.CreateTeamRequest{Name: "", LeaderID: uuid.New()}

	resp, err := suite.teamService.Create(req, memberPrincipal(uuid.New()))

	suite.Nil(resp)
	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

// TestGetTeamNotFound tests the not found mapping
func (suite *TeamServiceTestSuite) TestGetTeamNotFound() {
	id := uuid.New()
	suite.mockTeamRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.teamService.GetByID(id)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

// TestUpdateTeamByLeader tests that the team's leader can update it
func (suite *TeamServiceTestSuite) TestUpdateTeamByLeader() {
	leaderID := uuid.New()
	team := testTeam(uuid.New(), leaderID)
	newDesc := "Sequencing and assembly"
	req := &service.UpdateTeamRequest{Description: &newDesc}

	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockTeamRepo.EXPECT().UpdateWithLeaderPromotion(team).Return(nil)

	principal := authz.Principal{ID: leaderID, Role: models.RoleTeamLeader}
	resp, err := suite.teamService.Update(team.ID, req, principal)

	suite.NoError(err)
	suite.Equal(newDesc, resp.Description)
}

// TestUpdateTeamForbidden tests that a stranger cannot update the team
func (suite *TeamServiceTestSuite) TestUpdateTeamForbidden() {
	team := testTeam(uuid.New(), uuid.New())
	newDesc := "Sequencing and assembly"
	req := &service.UpdateTeamRequest{Description: &newDesc}

	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)

	resp, err := suite.teamService.Update(team.ID, req, memberPrincipal(uuid.New()))

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// TestUpdateTeamLeaderReassignment tests the leads-at-most-one check on reassignment
func (suite *TeamServiceTestSuite) TestUpdateTeamLeaderReassignment() {
	team := testTeam(uuid.New(), uuid.New())
	newLeaderID := uuid.New()
	req := &service.UpdateTeamRequest{LeaderID: &newLeaderID}

	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockUserRepo.EXPECT().GetByID(newLeaderID).Return(testUser(newLeaderID, models.RoleTeamMember), nil)
	suite.mockTeamRepo.EXPECT().GetByLeaderID(newLeaderID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockTeamRepo.EXPECT().UpdateWithLeaderPromotion(team).Return(nil)

	resp, err := suite.teamService.Update(team.ID, req, labLeaderPrincipal(uuid.New()))

	suite.NoError(err)
	suite.Equal(newLeaderID, resp.LeaderID)
}

// TestDeleteTeamRequiresLabLeader tests that only the LabLeader can delete a team
func (suite *TeamServiceTestSuite) TestDeleteTeamRequiresLabLeader() {
	teamID := uuid.New()

	err := suite.teamService.Delete(teamID, memberPrincipal(uuid.New()))
	suite.ErrorIs(err, apperrors.ErrForbidden)

	suite.mockTeamRepo.EXPECT().DeleteCascade(teamID).Return(nil)
	err = suite.teamService.Delete(teamID, labLeaderPrincipal(uuid.New()))
	suite.NoError(err)
}

// TestAddMemberByTeamLeader tests that the team's leader can add members
func (suite *TeamServiceTestSuite) TestAddMemberByTeamLeader() {
	leaderID := uuid.New()
	userID := uuid.New()
	team := testTeam(uuid.New(), leaderID)
	req := &service.AddMemberRequest{UserID: userID}

	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(testUser(userID, models.RoleTeamMember), nil)
	suite.mockMembershipRepo.EXPECT().Exists(team.ID, userID).Return(false, nil)
	suite.mockMembershipRepo.EXPECT().Add(gomock.Any()).Return(nil)

	principal := authz.Principal{ID: leaderID, Role: models.RoleTeamLeader}
	err := suite.teamService.AddMember(team.ID, req, principal)

	suite.NoError(err)
}

// TestAddMemberDuplicate tests that a user appears at most once on a roster
func (suite *TeamServiceTestSuite) TestAddMemberDuplicate() {
	leaderID := uuid.New()
	userID := uuid.New()
	team := testTeam(uuid.New(), leaderID)
	req := &service.AddMemberRequest{UserID: userID}

	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(testUser(userID, models.RoleTeamMember), nil)
	suite.mockMembershipRepo.EXPECT().Exists(team.ID, userID).Return(true, nil)

	principal := authz.Principal{ID: leaderID, Role: models.RoleTeamLeader}
	err := suite.teamService.AddMember(team.ID, req, principal)

	suite.ErrorIs(err, apperrors.ErrMembershipExists)
}

// TestAddMemberForbidden tests that only the leader or LabLeader manages rosters
func (suite *TeamServiceTestSuite) TestAddMemberForbidden() {
	team := testTeam(uuid.New(), uuid.New())
	req := &service.AddMemberRequest{UserID: uuid.New()}

	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)

	err := suite.teamService.AddMember(team.ID, req, memberPrincipal(uuid.New()))

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// TestRemoveMemberNotOnRoster tests removing a user who is not a member
func (suite *TeamServiceTestSuite) TestRemoveMemberNotOnRoster() {
	leaderID := uuid.New()
	userID := uuid.New()
	team := testTeam(uuid.New(), leaderID)

	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockMembershipRepo.EXPECT().Remove(team.ID, userID).Return(gorm.ErrRecordNotFound)

	principal := authz.Principal{ID: leaderID, Role: models.RoleTeamLeader}
	err := suite.teamService.RemoveMember(team.ID, userID, principal)

	suite.ErrorIs(err, apperrors.ErrMembershipNotFound)
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
