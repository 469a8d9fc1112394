package implementation

import (
	"context"
	"testing"
	"time"

	"notebook-dashboard-be/internal/entity"
	"notebook-dashboard-be/internal/model"
	"notebook-dashboard-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	// Match postgres: LIKE is case-sensitive there, not in sqlite.
	require.NoError(t, db.Exec("PRAGMA case_sensitive_like = ON").Error)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Notebook{}))
	return db
}

func TestUserRepositoryCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.Id)

	byName, err := repo.FindOne(ctx, specification.ByUsername{Username: "alice"})
	assert.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, user.Id, byName.Id)

	byEmail, err := repo.FindOne(ctx, specification.ByEmail{Email: "alice@example.com"})
	assert.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, "alice", byEmail.Username)

	missing, err := repo.FindOne(ctx, specification.ByUsername{Username: "nobody"})
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestNotebookRepositoryIncrementViews(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotebookRepository(db)
	ctx := context.Background()

	nb := &entity.Notebook{Title: "Peg Analysis", Filename: "peg.ipynb", IsPublic: true, UserId: 1}
	require.NoError(t, repo.Create(ctx, nb))

	require.NoError(t, repo.IncrementViews(ctx, nb.Id))
	require.NoError(t, repo.IncrementViews(ctx, nb.Id))

	got, err := repo.FindOne(ctx, specification.ByID{ID: nb.Id})
	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Views)
}

func TestNotebookSpecifications(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotebookRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seed := []*entity.Notebook{
		{Title: "Ngoc - DAI Analysis", Description: "Peg mechanics", Tags: "stablecoin,dai,ngoc", IsPublic: true, UserId: 1, CreatedAt: base},
		{Title: "USDC Reserves", Description: "Attestation review", Tags: "stablecoin,usdc", IsPublic: true, UserId: 2, CreatedAt: base.Add(time.Minute)},
		{Title: "Draft Notes", Description: "private scratchpad", Tags: "draft", IsPublic: false, UserId: 1, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, nb := range seed {
		nb.Filename = "x.ipynb"
		require.NoError(t, repo.Create(ctx, nb))
	}

	public, err := repo.FindAll(ctx, specification.PublicOnly{})
	assert.NoError(t, err)
	assert.Len(t, public, 2)

	owned, err := repo.FindAll(ctx, specification.OwnedBy{UserID: 1})
	assert.NoError(t, err)
	assert.Len(t, owned, 2)

	count, err := repo.Count(ctx, specification.PublicOnly{})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	ordered, err := repo.FindAll(ctx,
		specification.PublicOnly{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: 1},
	)
	assert.NoError(t, err)
	require.Len(t, ordered, 1)
	assert.Equal(t, "USDC Reserves", ordered[0].Title)
}

func TestMatchesQueryIsCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotebookRepository(db)
	ctx := context.Background()

	nb := &entity.Notebook{Title: "Ngoc - DAI Analysis", Description: "Peg mechanics", Filename: "dai.ipynb", Tags: "stablecoin,dai", IsPublic: true, UserId: 1}
	require.NoError(t, repo.Create(ctx, nb))

	hit, err := repo.FindAll(ctx, specification.MatchesQuery{Query: "DAI"})
	assert.NoError(t, err)
	assert.Len(t, hit, 1)

	// Matches the tag string even though the title casing differs.
	tagHit, err := repo.FindAll(ctx, specification.MatchesQuery{Query: "dai"})
	assert.NoError(t, err)
	assert.Len(t, tagHit, 1)

	miss, err := repo.FindAll(ctx, specification.MatchesQuery{Query: "dAi"})
	assert.NoError(t, err)
	assert.Len(t, miss, 0)

	byTag, err := repo.FindAll(ctx, specification.HasTag{Tag: "stablecoin"})
	assert.NoError(t, err)
	assert.Len(t, byTag, 1)
}
