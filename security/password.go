package security

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

type IPasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) bool
	DummyHash() string
}

// PasswordHasher hashes passwords with bcrypt at a fixed cost.
type PasswordHasher struct {
	cost  int
	dummy string
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	h := &PasswordHasher{cost: cost}
	h.dummy = h.newDummyHash()
	return h
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password matches hash. A malformed or corrupted
// hash is treated as a mismatch.
func (h *PasswordHasher) Verify(password string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// DummyHash returns a hash of a random throwaway password. Login compares
// against it when the email is unknown so both failure paths cost one
// bcrypt comparison. It is computed at construction, so no login pays for
// building it.
func (h *PasswordHasher) DummyHash() string {
	return h.dummy
}

func (h *PasswordHasher) newDummyHash() string {
	hashed, err := h.Hash(uuid.NewString())
	if err != nil {
		// unreachable for a 36 byte input; keep a syntactically invalid hash
		return "$2a$00$invalid"
	}
	return hashed
}
