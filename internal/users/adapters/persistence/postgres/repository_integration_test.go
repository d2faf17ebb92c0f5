//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Apurer/go-users-api/internal/platform/migrations"
	"github.com/Apurer/go-users-api/internal/users/domain"
	"github.com/Apurer/go-users-api/internal/users/ports"
)

func setupUsersPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("users_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func newIntegrationUser(t *testing.T, name string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(name, name+"@example.com", "secret")
	require.NoError(t, err)
	return user
}

func TestRepository_CreateAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupUsersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	phone := "+1234567890"
	user := newIntegrationUser(t, "alice")
	user.SetPhone(&phone)

	created, err := repo.Create(ctx, user)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "alice", created.Name)
	assert.True(t, created.IsActive)

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Email, fetched.Email)
	require.NotNil(t, fetched.Phone)
	assert.Equal(t, phone, *fetched.Phone)
	assert.Equal(t, "secret", fetched.Password)
}

func TestRepository_CreateAssignsFreshIDs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupUsersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	first, err := repo.Create(ctx, newIntegrationUser(t, "alice"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, newIntegrationUser(t, "bob"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRepository_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupUsersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, newIntegrationUser(t, "alice"))
	require.NoError(t, err)

	replacement := newIntegrationUser(t, "alicia")
	replacement.IsActive = false
	updated, err := repo.Update(ctx, created.ID, replacement)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "alicia", updated.Name)
	assert.False(t, updated.IsActive)

	_, err = repo.Update(ctx, created.ID+1000, replacement)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_DeleteIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupUsersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, newIntegrationUser(t, "alice"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, created.ID))
	require.NoError(t, repo.Delete(ctx, 987654))
}

func TestRepository_List(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupUsersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	for _, name := range []string{"a", "b", "c"} {
		_, err := repo.Create(ctx, newIntegrationUser(t, name))
		require.NoError(t, err)
	}

	users, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}
