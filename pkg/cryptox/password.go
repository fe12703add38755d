package cryptox

import (
	"errors"
	"runtime"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the fixed bcrypt cost factor used for all password hashes.
// Changing it only affects newly created hashes; existing hashes carry their
// own cost and keep verifying.
const HashCost = 10

// ErrPasswordMismatch is returned when a plaintext does not match the stored hash.
var ErrPasswordMismatch = errors.New("cryptox: password does not match")

// bcrypt is CPU-bound. The semaphore caps concurrent hashing work at one slot
// per scheduler thread so a burst of registrations cannot monopolise the
// runtime and starve request acceptance.
var hashSlots = make(chan struct{}, runtime.GOMAXPROCS(0))

// HashPassword derives a bcrypt hash of the password at the fixed cost factor.
func HashPassword(password string) (string, error) {
	hashSlots <- struct{}{}
	defer func() { <-hashSlots }()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt hash.
// Returns ErrPasswordMismatch on mismatch and the underlying error for
// malformed hashes.
func VerifyPassword(password, encodedHash string) error {
	hashSlots <- struct{}{}
	defer func() { <-hashSlots }()

	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}
