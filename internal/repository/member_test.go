//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"performance-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MemberRepositoryTestSuite tests the MemberRepository
type MemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MemberRepository
	factories     *testutils.FactorySet
}

func (suite *MemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewMemberRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *MemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *MemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *MemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *MemberRepositoryTestSuite) TestCreateAndGetByID() {
	member := suite.factories.Member.Create()

	err := suite.repo.Create(member)
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, member.ID)

	retrieved, err := suite.repo.GetByID(member.ID)
	suite.NoError(err)
	suite.Equal(member.Name, retrieved.Name)
	suite.Equal(member.Role, retrieved.Role)
	suite.Equal(member.Contact, retrieved.Contact)
}

func (suite *MemberRepositoryTestSuite) TestGetByIDNotFound() {
	retrieved, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(retrieved)
}

func (suite *MemberRepositoryTestSuite) TestSearch() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Member.WithName("Alice Walker")))
	suite.Require().NoError(suite.repo.Create(suite.factories.Member.WithRole("Designer")))

	byName, err := suite.repo.Search("alice")
	suite.NoError(err)
	suite.Len(byName, 1)

	byRole, err := suite.repo.Search("DESIGN")
	suite.NoError(err)
	suite.Len(byRole, 1)
	suite.Equal("Designer", byRole[0].Role)

	all, err := suite.repo.Search("")
	suite.NoError(err)
	suite.Len(all, 2)
}

func (suite *MemberRepositoryTestSuite) TestSearchMatchesWildcardsLiterally() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Member.WithName("Owns 50% of QA")))
	suite.Require().NoError(suite.repo.Create(suite.factories.Member.WithName("Owns 500 tickets")))
	suite.Require().NoError(suite.repo.Create(suite.factories.Member.WithRole("db_admin")))
	suite.Require().NoError(suite.repo.Create(suite.factories.Member.WithRole("dbxadmin")))

	percent, err := suite.repo.Search("50%")
	suite.NoError(err)
	suite.Require().Len(percent, 1)
	suite.Equal("Owns 50% of QA", percent[0].Name)

	underscore, err := suite.repo.Search("db_admin")
	suite.NoError(err)
	suite.Require().Len(underscore, 1)
	suite.Equal("db_admin", underscore[0].Role)
}

func (suite *MemberRepositoryTestSuite) TestListAllOldestFirst() {
	first := suite.factories.Member.WithName("First")
	suite.Require().NoError(suite.repo.Create(first))
	second := suite.factories.Member.WithName("Second")
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	suite.Require().NoError(suite.repo.Create(second))

	members, err := suite.repo.ListAll(context.Background())

	suite.NoError(err)
	suite.Require().Len(members, 2)
	suite.Equal("First", members[0].Name)
	suite.Equal("Second", members[1].Name)
}

func (suite *MemberRepositoryTestSuite) TestGetExistingIDs() {
	member := suite.factories.Member.Create()
	suite.Require().NoError(suite.repo.Create(member))

	existing, err := suite.repo.GetExistingIDs([]uuid.UUID{member.ID, uuid.New()})
	suite.NoError(err)
	suite.Equal([]uuid.UUID{member.ID}, existing)

	none, err := suite.repo.GetExistingIDs(nil)
	suite.NoError(err)
	suite.Empty(none)
}

func (suite *MemberRepositoryTestSuite) TestUpdate() {
	member := suite.factories.Member.Create()
	suite.Require().NoError(suite.repo.Create(member))

	member.Role = "Tech Lead"
	suite.NoError(suite.repo.Update(member))

	retrieved, err := suite.repo.GetByID(member.ID)
	suite.NoError(err)
	suite.Equal("Tech Lead", retrieved.Role)
}

func (suite *MemberRepositoryTestSuite) TestDeleteCascades() {
	member := suite.factories.Member.Create()
	suite.Require().NoError(suite.repo.Create(member))
	task := suite.factories.Task.AssignedTo(member.ID)
	suite.Require().NoError(NewTaskRepository(suite.baseTestSuite.DB).Create(task))
	suite.Require().NoError(NewRatingRepository(suite.baseTestSuite.DB).Create(suite.factories.Rating.Create(task.ID, member.ID)))

	suite.NoError(suite.repo.Delete(member.ID))

	var assignments, ratings int64
	suite.baseTestSuite.DB.Table("task_assignments").Where("member_id = ?", member.ID).Count(&assignments)
	suite.baseTestSuite.DB.Table("ratings").Where("member_id = ?", member.ID).Count(&ratings)
	suite.Zero(assignments)
	suite.Zero(ratings)
}

func (suite *MemberRepositoryTestSuite) TestDeleteNotFound() {
	suite.ErrorIs(suite.repo.Delete(uuid.New()), gorm.ErrRecordNotFound)
}

func TestMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemberRepositoryTestSuite))
}
