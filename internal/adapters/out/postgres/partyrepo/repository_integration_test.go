package partyrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/AbdullahAlSalim/skywayexpress/internal/adapters/out/postgres/partyrepo"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/party"
	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.ID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// PartyRepositoryIntegrationTestSuite provides integration tests for PartyRepository
// using PostgreSQL containers to verify database persistence behavior.
type PartyRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *partyrepo.GormPartyRepository
	tracker    *MockAggregateTracker
}

func (suite *PartyRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&partyrepo.PartyDTO{}))
}

func (suite *PartyRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parties").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = partyrepo.NewGormPartyRepository(suite.db, suite.tracker)
}

func (suite *PartyRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PartyRepositoryIntegrationTestSuite) TestAdd_ValidSender_AssignsID() {
	ctx := context.Background()
	sender := suite.createTestSender()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.ID"), sender).Once()

	id, err := suite.repository.Add(ctx, sender)
	suite.Require().NoError(err)
	suite.True(id.IsAssigned(), "Store should assign a positive identifier")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PartyRepositoryIntegrationTestSuite) TestAdd_SequentialParties_GetDistinctIDs() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	senderID, err := suite.repository.Add(ctx, suite.createTestSender())
	suite.Require().NoError(err)

	receiverID, err := suite.repository.Add(ctx, suite.createTestReceiver())
	suite.Require().NoError(err)

	suite.NotEqual(senderID, receiverID)
}

func (suite *PartyRepositoryIntegrationTestSuite) TestAdd_AlreadyPersistedParty_ReturnsError() {
	ctx := context.Background()

	ownerID := kernel.ID(1)
	persisted, err := party.RestoreParty(kernel.ID(99), party.Fields{
		Name:        "Hasan Mahmud",
		Phone:       "+8801712345678",
		AddressLine: "House 12, Road 5, Dhanmondi",
		City:        "Dhaka",
	}, party.Sender, &ownerID)
	suite.Require().NoError(err)

	_, err = suite.repository.Add(ctx, persisted)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsInvalid)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *PartyRepositoryIntegrationTestSuite) TestGet_ExistingParty_RoundTripsAllFields() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	sender := suite.createTestSender()
	id, err := suite.repository.Add(ctx, sender)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.Equal(id, retrieved.ID())
	suite.Equal(sender.Name(), retrieved.Name())
	suite.Equal(sender.Phone(), retrieved.Phone())
	suite.Equal(sender.AddressLine(), retrieved.AddressLine())
	suite.Equal(sender.City(), retrieved.City())
	suite.Equal(sender.PostalCode(), retrieved.PostalCode())
	suite.Equal(party.Sender, retrieved.Role())
	suite.Require().NotNil(retrieved.OwnerAccountID())
	suite.Equal(*sender.OwnerAccountID(), *retrieved.OwnerAccountID())
}

func (suite *PartyRepositoryIntegrationTestSuite) TestGet_ReceiverWithoutOwner_RoundTrips() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	receiver := suite.createTestReceiver()
	id, err := suite.repository.Add(ctx, receiver)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(party.Receiver, retrieved.Role())
	suite.Nil(retrieved.OwnerAccountID())
}

func (suite *PartyRepositoryIntegrationTestSuite) TestGet_NonExistentParty_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.ID(12345))
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PartyRepositoryIntegrationTestSuite) TestGet_UnassignedID_ReturnsError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.ID(0))
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *PartyRepositoryIntegrationTestSuite) createTestSender() *party.Party {
	ownerID := kernel.ID(1)
	sender, err := party.NewParty(party.Fields{
		Name:        "Hasan Mahmud",
		Phone:       "+8801712345678",
		AddressLine: "House 12, Road 5, Dhanmondi",
		City:        "Dhaka",
		PostalCode:  "1205",
	}, party.Sender, &ownerID)
	suite.Require().NoError(err)
	return sender
}

func (suite *PartyRepositoryIntegrationTestSuite) createTestReceiver() *party.Party {
	receiver, err := party.NewParty(party.Fields{
		Name:        "Nusrat Jahan",
		Phone:       "+8801898765432",
		AddressLine: "Flat 3B, Agrabad Commercial Area",
		City:        "Chattogram",
	}, party.Receiver, nil)
	suite.Require().NoError(err)
	return receiver
}

func TestPartyRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PartyRepositoryIntegrationTestSuite))
}
