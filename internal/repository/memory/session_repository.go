package memory

import (
	"time"

	"notebook-dashboard-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps login sessions in process memory with a TTL.
// Sessions do not survive a restart; there is no refresh or sliding
// expiry.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.Token, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(token string) (*store.Session, bool) {
	if x, found := r.cache.Get(token); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(token string) {
	r.cache.Delete(token)
}
