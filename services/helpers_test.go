package services

import (
	"gin-tasktracker/infra"
	"gin-tasktracker/repositories"
	"gin-tasktracker/security"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var testSecret = []byte("services-test-secret")

type fixture struct {
	db       *gorm.DB
	users    repositories.IUserRepository
	codec    *security.TokenCodec
	hasher   *security.PasswordHasher
	ledger   *RevocationLedger
	resolver IIdentityResolver
	auth     IAuthService
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db, db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	log := quietLogger()

	f := &fixture{
		db:     db,
		users:  repositories.NewUserRepository(db),
		codec:  security.NewTokenCodec(testSecret, time.Hour),
		hasher: security.NewPasswordHasher(bcrypt.MinCost),
	}
	f.ledger = NewRevocationLedger(repositories.NewRevokedTokenRepository(db), 128, time.Hour, nil)
	f.resolver = NewIdentityResolver(f.codec, f.ledger, f.users, nil, log)
	f.auth = NewAuthService(f.users, f.hasher, f.codec, f.ledger, nil, log)
	return f
}
