package memory

import (
	"testing"
	"time"

	"notebook-dashboard-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestSessionLifecycle(t *testing.T) {
	repo := NewSessionRepository(time.Hour)

	sess := &store.Session{Token: "tok-1", UserID: 7, Username: "alice", CreatedAt: time.Now()}
	repo.Save(sess)

	got, found := repo.Get("tok-1")
	assert.True(t, found)
	assert.Equal(t, uint(7), got.UserID)
	assert.Equal(t, "alice", got.Username)

	repo.Delete("tok-1")
	_, found = repo.Get("tok-1")
	assert.False(t, found)
}

func TestSessionUnknownToken(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	_, found := repo.Get("nope")
	assert.False(t, found)
}

func TestSessionExpiry(t *testing.T) {
	repo := NewSessionRepository(10 * time.Millisecond)
	repo.Save(&store.Session{Token: "tok-2", UserID: 1})

	time.Sleep(30 * time.Millisecond)

	_, found := repo.Get("tok-2")
	assert.False(t, found)
}
