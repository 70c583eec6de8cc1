package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	docstorepostgres "harbor/internal/adapters/out/docstore/postgres"
	"harbor/internal/adapters/out/docstore/vesselrepo"
	"harbor/internal/core/domain/model/vessel"
	"harbor/internal/core/ports"
	"harbor/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DocumentStoreIntegrationTestSuite verifies the jsonb-backed document store
// against a real PostgreSQL instance, including the attribute filters and
// keyset cursors the repositories depend on.
type DocumentStoreIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	store     *docstorepostgres.GormDocumentStore
}

func (suite *DocumentStoreIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&docstorepostgres.DocumentDTO{}))
}

func (suite *DocumentStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE documents").Error)

	store, err := docstorepostgres.NewGormDocumentStore(suite.db)
	suite.Require().NoError(err)
	suite.store = store
}

func (suite *DocumentStoreIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DocumentStoreIntegrationTestSuite) TestSaveAndGet() {
	ctx := context.Background()

	id, err := suite.store.Save(ctx, ports.KindVessel, []byte(`{"name":"Sea Witch","owner":"alice"}`))
	suite.Require().NoError(err)
	suite.Positive(id)

	doc, err := suite.store.Get(ctx, ports.KindVessel, id)
	suite.Require().NoError(err)
	suite.Require().NotNil(doc)
	suite.Equal(id, doc.ID)
	suite.JSONEq(`{"name":"Sea Witch","owner":"alice"}`, string(doc.Data))
}

func (suite *DocumentStoreIntegrationTestSuite) TestGet_Missing_ReturnsNilNil() {
	doc, err := suite.store.Get(context.Background(), ports.KindVessel, 424242)
	suite.Require().NoError(err)
	suite.Nil(doc)
}

func (suite *DocumentStoreIntegrationTestSuite) TestGet_WrongKind_ReturnsNilNil() {
	ctx := context.Background()

	id, err := suite.store.Save(ctx, ports.KindVessel, []byte(`{"name":"Argo"}`))
	suite.Require().NoError(err)

	doc, err := suite.store.Get(ctx, ports.KindCargo, id)
	suite.Require().NoError(err)
	suite.Nil(doc)
}

func (suite *DocumentStoreIntegrationTestSuite) TestUpdate_ReplacesDocument() {
	ctx := context.Background()

	id, err := suite.store.Save(ctx, ports.KindCargo, []byte(`{"item":"Timber","volume":40}`))
	suite.Require().NoError(err)

	err = suite.store.Update(ctx, ports.KindCargo, id, []byte(`{"item":"Coal","volume":12}`))
	suite.Require().NoError(err)

	doc, err := suite.store.Get(ctx, ports.KindCargo, id)
	suite.Require().NoError(err)
	suite.JSONEq(`{"item":"Coal","volume":12}`, string(doc.Data))
}

func (suite *DocumentStoreIntegrationTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	err := suite.store.Update(context.Background(), ports.KindCargo, 424242, []byte(`{}`))
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DocumentStoreIntegrationTestSuite) TestDelete() {
	ctx := context.Background()

	id, err := suite.store.Save(ctx, ports.KindVessel, []byte(`{"name":"Argo"}`))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.store.Delete(ctx, ports.KindVessel, id))

	doc, err := suite.store.Get(ctx, ports.KindVessel, id)
	suite.Require().NoError(err)
	suite.Nil(doc)

	err = suite.store.Delete(ctx, ports.KindVessel, id)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DocumentStoreIntegrationTestSuite) TestQuery_FiltersOnJSONAttribute() {
	ctx := context.Background()

	for i, owner := range []string{"alice", "bob", "alice", "alice", "bob"} {
		body := fmt.Sprintf(`{"name":"Vessel %d","owner":"%s"}`, i, owner)
		_, err := suite.store.Save(ctx, ports.KindVessel, []byte(body))
		suite.Require().NoError(err)
	}

	filter := &ports.Filter{Attribute: "owner", Value: "alice"}
	result, err := suite.store.Query(ctx, ports.KindVessel, filter, 10, "")
	suite.Require().NoError(err)
	suite.Len(result.Documents, 3)
	suite.False(result.HasMore)

	total, err := suite.store.Count(ctx, ports.KindVessel, filter)
	suite.Require().NoError(err)
	suite.Equal(3, total)
}

func (suite *DocumentStoreIntegrationTestSuite) TestQuery_CursorWalksAllPages() {
	ctx := context.Background()

	ids := make(map[int64]bool)
	for i := 0; i < 12; i++ {
		id, err := suite.store.Save(ctx, ports.KindVessel, []byte(fmt.Sprintf(`{"name":"Vessel %d"}`, i)))
		suite.Require().NoError(err)
		ids[id] = false
	}

	cursor := ""
	pages := 0
	for {
		result, err := suite.store.Query(ctx, ports.KindVessel, nil, 5, cursor)
		suite.Require().NoError(err)
		pages++

		var prev int64
		for _, doc := range result.Documents {
			suite.Greater(doc.ID, prev)
			prev = doc.ID

			seen, known := ids[doc.ID]
			suite.True(known)
			suite.False(seen, "document %d returned twice", doc.ID)
			ids[doc.ID] = true
		}

		if !result.HasMore {
			suite.Empty(result.NextCursor)
			break
		}
		suite.Require().NotEmpty(result.NextCursor)
		cursor = result.NextCursor
	}

	suite.Equal(3, pages)
	for id, seen := range ids {
		suite.True(seen, "document %d never returned", id)
	}
}

func (suite *DocumentStoreIntegrationTestSuite) TestVesselRepositoryRoundTrip() {
	ctx := context.Background()

	repo, err := vesselrepo.NewRepository(suite.store)
	suite.Require().NoError(err)

	original, err := vessel.NewVessel("Sea Witch", "sloop", 28, "alice")
	suite.Require().NoError(err)

	suite.Require().NoError(repo.Add(ctx, original))
	suite.False(original.ID().IsZero())

	retrieved, err := repo.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(original.Name(), retrieved.Name())
	suite.Equal(original.Owner(), retrieved.Owner())

	dup, err := repo.IsDuplicateName(ctx, "Sea Witch")
	suite.Require().NoError(err)
	suite.True(dup)
}

func TestDocumentStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentStoreIntegrationTestSuite))
}
