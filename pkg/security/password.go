package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrHashingFailed = errors.New("password hashing failed")

// dummyHash is compared against when the user lookup misses, so that a failed
// login costs the same bcrypt work whether or not the account exists.
const dummyHash = "$2a$12$C6UzMDM.H6dfI/f/IKcEeO5bVSzN0lJmrBVGZ30RLkeQCUV0Vs7lC"

// PasswordHasher provides interface for password operations
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
	CompareDummy(password string)
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a new password hasher using bcrypt
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (b *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(bytes), nil
}

func (b *bcryptHasher) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// CompareDummy burns a comparison against a fixed hash. Always fails; callers
// discard the result.
func (b *bcryptHasher) CompareDummy(password string) {
	bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
}
