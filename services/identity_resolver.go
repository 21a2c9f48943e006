package services

import (
	"context"
	"errors"
	"fmt"
	"gin-tasktracker/apperrors"
	"gin-tasktracker/infra"
	"gin-tasktracker/models"
	"gin-tasktracker/repositories"
	"gin-tasktracker/security"

	"github.com/sirupsen/logrus"
)

type IIdentityResolver interface {
	Resolve(ctx context.Context, tokenString string) (*models.User, error)
}

type IdentityResolver struct {
	codec      security.ITokenCodec
	ledger     IRevocationLedger
	repository repositories.IUserRepository
	metrics    *infra.Metrics
	log        logrus.FieldLogger
}

func NewIdentityResolver(codec security.ITokenCodec, ledger IRevocationLedger, repository repositories.IUserRepository, metrics *infra.Metrics, log logrus.FieldLogger) IIdentityResolver {
	return &IdentityResolver{
		codec:      codec,
		ledger:     ledger,
		repository: repository,
		metrics:    metrics,
		log:        log,
	}
}

// Resolve maps a bearer token to its account. Checks run in a fixed order
// and stop at the first failure: decode, subject, revocation, lookup. A
// revoked token therefore reports revoked even if its account is gone.
func (r *IdentityResolver) Resolve(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := r.codec.Decode(tokenString)
	if err != nil {
		r.metrics.ObserveResolution("decode_failed")
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)
	}

	if claims.Subject == "" {
		r.metrics.ObserveResolution("missing_subject")
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, apperrors.ErrInvalidCredentials)
	}

	revoked, err := r.ledger.IsRevoked(ctx, tokenString)
	if err != nil {
		r.metrics.ObserveResolution("error")
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		r.metrics.ObserveResolution("revoked")
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, apperrors.ErrTokenRevoked)
	}

	user, err := r.repository.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			r.metrics.ObserveResolution("unknown_subject")
			r.log.WithField("subject", claims.Subject).Debug("Token subject has no account")
		} else {
			r.metrics.ObserveResolution("error")
		}
		return nil, err
	}

	r.metrics.ObserveResolution("ok")
	return user, nil
}
