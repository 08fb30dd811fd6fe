package middleware

import (
	"context"
	"sync"

	"github.com/communova/communova-backend/internal/domain"
)

// principalResolverMock is a hand-written mock of PrincipalResolver.
type principalResolverMock struct {
	ResolveSessionFunc     func(ctx context.Context, rawToken string) (domain.Principal, error)
	ResolveAccessTokenFunc func(token string) (domain.Principal, error)

	mu                 sync.Mutex
	resolveSessionIn   []string
	resolveAccessIn    []string
}

func (m *principalResolverMock) ResolveSession(ctx context.Context, rawToken string) (domain.Principal, error) {
	m.mu.Lock()
	m.resolveSessionIn = append(m.resolveSessionIn, rawToken)
	m.mu.Unlock()
	return m.ResolveSessionFunc(ctx, rawToken)
}

func (m *principalResolverMock) ResolveAccessToken(token string) (domain.Principal, error) {
	m.mu.Lock()
	m.resolveAccessIn = append(m.resolveAccessIn, token)
	m.mu.Unlock()
	return m.ResolveAccessTokenFunc(token)
}

func (m *principalResolverMock) ResolveSessionCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resolveSessionIn
}

func (m *principalResolverMock) ResolveAccessTokenCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resolveAccessIn
}
