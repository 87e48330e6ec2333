package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apiaryadmin/internal/domain"
	"apiaryadmin/internal/repository"
)

// memSessionStore is an in-memory SessionStore with the same compare-and-set
// contract as repository.SessionRepository.
type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*domain.Session)}
}

func (m *memSessionStore) Create(ctx context.Context, s *domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[s.ID]; ok {
		return repository.ErrSessionExists
	}
	cp := *s
	m.sessions[s.ID] = &cp
	return nil
}

func (m *memSessionStore) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *memSessionStore) UpdateRefreshToken(ctx context.Context, id, currentToken, newToken string, newExpiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return repository.ErrSessionNotFound
	}
	if s.Revoked || s.LastRefreshToken != currentToken {
		return repository.ErrTokenMismatch
	}
	s.LastRefreshToken = newToken
	s.ExpiresAt = newExpiresAt
	return nil
}

func (m *memSessionStore) Revoke(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		s.Revoked = true
	}
	return nil
}

func TestSessionService_CreateAndValidate(t *testing.T) {
	svc := NewSessionService(newMemSessionStore())
	ctx := context.Background()

	err := svc.CreateSession(ctx, "sess-1", 7, "token-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	valid, err := svc.IsSessionValid(ctx, "sess-1", "token-1")
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestSessionService_UnknownSession(t *testing.T) {
	svc := NewSessionService(newMemSessionStore())

	valid, err := svc.IsSessionValid(context.Background(), "no-such-session", "token-1")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestSessionService_WrongToken(t *testing.T) {
	svc := NewSessionService(newMemSessionStore())
	ctx := context.Background()

	require.NoError(t, svc.CreateSession(ctx, "sess-1", 7, "token-1", time.Now().Add(time.Hour)))

	valid, err := svc.IsSessionValid(ctx, "sess-1", "some-other-token")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestSessionService_Expired(t *testing.T) {
	svc := NewSessionService(newMemSessionStore())
	ctx := context.Background()

	require.NoError(t, svc.CreateSession(ctx, "sess-1", 7, "token-1", time.Now().Add(-time.Minute)))

	valid, err := svc.IsSessionValid(ctx, "sess-1", "token-1")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestSessionService_RotationInvalidatesOldToken(t *testing.T) {
	svc := NewSessionService(newMemSessionStore())
	ctx := context.Background()

	require.NoError(t, svc.CreateSession(ctx, "sess-1", 7, "token-1", time.Now().Add(time.Hour)))

	err := svc.ExtendSession(ctx, "sess-1", "token-1", "token-2", time.Now().Add(2*time.Hour))
	require.NoError(t, err)

	valid, err := svc.IsSessionValid(ctx, "sess-1", "token-1")
	require.NoError(t, err)
	assert.False(t, valid, "pre-rotation token must be dead")

	valid, err = svc.IsSessionValid(ctx, "sess-1", "token-2")
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestSessionService_RotationWithStaleTokenFails(t *testing.T) {
	svc := NewSessionService(newMemSessionStore())
	ctx := context.Background()

	require.NoError(t, svc.CreateSession(ctx, "sess-1", 7, "token-1", time.Now().Add(time.Hour)))
	require.NoError(t, svc.ExtendSession(ctx, "sess-1", "token-1", "token-2", time.Now().Add(time.Hour)))

	err := svc.ExtendSession(ctx, "sess-1", "token-1", "token-3", time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, repository.ErrTokenMismatch)

	// The losing attempt must not have disturbed the current token.
	valid, err := svc.IsSessionValid(ctx, "sess-1", "token-2")
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestSessionService_InvalidateIsTerminal(t *testing.T) {
	svc := NewSessionService(newMemSessionStore())
	ctx := context.Background()

	require.NoError(t, svc.CreateSession(ctx, "sess-1", 7, "token-1", time.Now().Add(time.Hour)))
	require.NoError(t, svc.InvalidateSession(ctx, "sess-1"))

	valid, err := svc.IsSessionValid(ctx, "sess-1", "token-1")
	require.NoError(t, err)
	assert.False(t, valid)

	// Rotation after revocation must not resurrect the session.
	err = svc.ExtendSession(ctx, "sess-1", "token-1", "token-2", time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, repository.ErrTokenMismatch)
}

func TestSessionService_InvalidateIdempotent(t *testing.T) {
	svc := NewSessionService(newMemSessionStore())
	ctx := context.Background()

	require.NoError(t, svc.CreateSession(ctx, "sess-1", 7, "token-1", time.Now().Add(time.Hour)))
	require.NoError(t, svc.InvalidateSession(ctx, "sess-1"))
	require.NoError(t, svc.InvalidateSession(ctx, "sess-1"))
	require.NoError(t, svc.InvalidateSession(ctx, "never-existed"))
}

func TestSessionService_ConcurrentRotationSingleWinner(t *testing.T) {
	svc := NewSessionService(newMemSessionStore())
	ctx := context.Background()

	require.NoError(t, svc.CreateSession(ctx, "sess-1", 7, "token-1", time.Now().Add(time.Hour)))

	const racers = 16
	var wg sync.WaitGroup
	errs := make([]error, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			newToken := "token-new-" + string(rune('a'+i))
			errs[i] = svc.ExtendSession(ctx, "sess-1", "token-1", newToken, time.Now().Add(time.Hour))
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, repository.ErrTokenMismatch)
		}
	}
	assert.Equal(t, 1, winners, "exactly one rotation may win")
}
