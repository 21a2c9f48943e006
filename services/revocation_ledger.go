package services

import (
	"context"
	"gin-tasktracker/infra"
	"gin-tasktracker/repositories"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type IRevocationLedger interface {
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
	PruneExpired(ctx context.Context) (int64, error)
}

// RevocationLedger is the negative list of logged-out tokens. Only positive
// answers are cached, and a token enters the cache after its row is
// committed, so a completed Revoke is visible to every later IsRevoked.
type RevocationLedger struct {
	repository repositories.IRevokedTokenRepository
	cache      *expirable.LRU[string, time.Time]
	metrics    *infra.Metrics
	now        func() time.Time
}

// NewRevocationLedger builds a ledger over repository. cacheTTL should be
// the token lifetime; a cacheSize of zero disables the cache.
func NewRevocationLedger(repository repositories.IRevokedTokenRepository, cacheSize int, cacheTTL time.Duration, metrics *infra.Metrics) *RevocationLedger {
	ledger := &RevocationLedger{
		repository: repository,
		metrics:    metrics,
		now:        time.Now,
	}
	if cacheSize > 0 {
		ledger.cache = expirable.NewLRU[string, time.Time](cacheSize, nil, cacheTTL)
	}
	return ledger
}

func (l *RevocationLedger) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	if err := l.repository.Add(ctx, token, expiresAt); err != nil {
		return err
	}
	if l.cache != nil {
		l.cache.Add(token, expiresAt)
	}
	l.metrics.ObserveRevocation()
	return nil
}

func (l *RevocationLedger) IsRevoked(ctx context.Context, token string) (bool, error) {
	if l.cache != nil {
		if _, ok := l.cache.Get(token); ok {
			l.metrics.ObserveRevocationCacheHit()
			return true, nil
		}
	}

	revoked, err := l.repository.Exists(ctx, token)
	if err != nil {
		return false, err
	}
	if revoked && l.cache != nil {
		l.cache.Add(token, time.Time{})
	}
	return revoked, nil
}

// PruneExpired deletes entries whose tokens are past expiry. Such tokens
// already fail decoding, so dropping them never un-revokes a live token.
func (l *RevocationLedger) PruneExpired(ctx context.Context) (int64, error) {
	removed, err := l.repository.DeleteExpired(ctx, l.now())
	if err != nil {
		return 0, err
	}
	l.metrics.ObservePruned(removed)
	return removed, nil
}
