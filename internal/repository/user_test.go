package repository

import (
	"testing"

	"lab-portal-backend/internal/database/models"
	"lab-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository against a real database
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	users         *testutils.UserFactory
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.users = testutils.NewUserFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByID tests creating a user and retrieving it
func (suite *UserRepositoryTestSuite) TestCreateAndGetByID() {
	user := suite.users.Create()

	err := suite.repo.Create(user)
	suite.NoError(err)

	found, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal(user.Email, found.Email)
	suite.Equal(models.RoleTeamMember, found.Role)
}

// TestCreateDuplicateEmail tests that the unique index rejects a second user
// with the same email
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	user := suite.users.WithEmail("ada@lab.test")
	suite.Require().NoError(suite.repo.Create(user))

	dup := suite.users.WithEmail("ada@lab.test")
	err := suite.repo.Create(dup)
	suite.Error(err)
}

// TestGetByEmail tests email lookups
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.users.WithEmail("ada@lab.test")
	suite.Require().NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByEmail("ada@lab.test")
	suite.NoError(err)
	suite.Equal(user.ID, found.ID)

	_, err = suite.repo.GetByEmail("nobody@lab.test")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUpdate tests persisting field changes
func (suite *UserRepositoryTestSuite) TestUpdate() {
	user := suite.users.Create()
	suite.Require().NoError(suite.repo.Create(user))

	user.FirstName = "Augusta"
	suite.NoError(suite.repo.Update(user))

	found, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal("Augusta", found.FirstName)
}

// TestDelete tests removing a user
func (suite *UserRepositoryTestSuite) TestDelete() {
	user := suite.users.Create()
	suite.Require().NoError(suite.repo.Create(user))

	suite.NoError(suite.repo.Delete(user.ID))

	_, err := suite.repo.GetByID(user.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteTeamLeaderRestricted tests that a user who still leads a team
// cannot be deleted
func (suite *UserRepositoryTestSuite) TestDeleteTeamLeaderRestricted() {
	leader := suite.users.WithRole(models.RoleTeamLeader)
	suite.Require().NoError(suite.repo.Create(leader))
	team := testutils.NewTeamFactory().Create(leader.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(team).Error)

	err := suite.repo.Delete(leader.ID)
	suite.ErrorIs(err, gorm.ErrForeignKeyViolated)
}

// TestDeleteMemberCascadesMembership tests that deleting an ordinary member
// also removes their roster entries
func (suite *UserRepositoryTestSuite) TestDeleteMemberCascadesMembership() {
	leader := suite.users.WithRole(models.RoleTeamLeader)
	suite.Require().NoError(suite.repo.Create(leader))
	team := testutils.NewTeamFactory().Create(leader.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(team).Error)

	member := suite.users.Create()
	suite.Require().NoError(suite.repo.Create(member))
	membership := testutils.NewMembershipFactory().Create(team.ID, member.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(membership).Error)

	suite.NoError(suite.repo.Delete(member.ID))

	var count int64
	suite.baseTestSuite.DB.Model(&models.TeamMembership{}).
		Where("user_id = ?", member.ID).Count(&count)
	suite.Equal(int64(0), count)
}

// TestDeleteMissing tests deleting a user that does not exist
func (suite *UserRepositoryTestSuite) TestDeleteMissing() {
	err := suite.repo.Delete(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestExists tests the existence check used by the auth middleware
func (suite *UserRepositoryTestSuite) TestExists() {
	user := suite.users.Create()
	suite.Require().NoError(suite.repo.Create(user))

	exists, err := suite.repo.Exists(user.ID)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.Exists(uuid.New())
	suite.NoError(err)
	suite.False(exists)
}

// TestGetAll tests listing users
func (suite *UserRepositoryTestSuite) TestGetAll() {
	suite.Require().NoError(suite.repo.Create(suite.users.Create()))
	suite.Require().NoError(suite.repo.Create(suite.users.Create()))

	users, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Len(users, 2)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
