package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"sync"
	"time"

	"lushlocks-backend/models"
	"lushlocks-backend/storage"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by verifiers that actually check
// something. The storefront's MockVerifier never returns it.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialVerifier decides whether an email/password pair is accepted.
// The session store does not care how; swapping the mock for a real
// verifier requires no change anywhere else.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) error
}

// MockVerifier accepts any credentials after a simulated network delay.
// The delay respects context cancellation so a dropped request does not
// hold the handler.
type MockVerifier struct {
	Delay time.Duration
}

func (v MockVerifier) Verify(ctx context.Context, email, password string) error {
	if v.Delay > 0 {
		select {
		case <-time.After(v.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// BcryptVerifier checks the password against a bcrypt hash produced by
// the given lookup. It is the real implementation a deployment would
// plug in place of MockVerifier.
type BcryptVerifier struct {
	Lookup func(email string) (hash string, ok bool)
}

func (v BcryptVerifier) Verify(ctx context.Context, email, password string) error {
	hash, ok := v.Lookup(email)
	if !ok {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

type authSnapshot struct {
	User *models.User `json:"user"`
}

// Auth holds the single logged-in session, persisted so it survives
// restarts the way the original survived page reloads.
type Auth struct {
	mu       sync.Mutex
	user     *models.User
	backend  storage.Backend
	key      string
	verifier CredentialVerifier

	now func() time.Time
}

func NewAuth(backend storage.Backend, verifier CredentialVerifier) *Auth {
	a := &Auth{backend: backend, key: storage.AuthKey, verifier: verifier, now: time.Now}

	data, err := backend.Load(a.key)
	if err != nil {
		log.Printf("WARNING: could not load auth snapshot, starting logged out: %v", err)
		return a
	}
	if data == nil {
		return a
	}

	var snap authSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("WARNING: malformed auth snapshot, starting logged out: %v", err)
		return a
	}
	a.user = snap.User
	return a
}

func (a *Auth) persist() {
	data, err := json.Marshal(authSnapshot{User: a.user})
	if err != nil {
		log.Printf("ERROR: failed to serialize auth state: %v", err)
		return
	}
	if err := a.backend.Save(a.key, data); err != nil {
		log.Printf("ERROR: failed to persist auth state: %v", err)
	}
}

// Login verifies the credentials and opens a session for the email. The
// session identity uses the fixed id "1", matching the persisted shape
// the storefront has always written.
func (a *Auth) Login(ctx context.Context, email, password string) (models.User, error) {
	if email == "" {
		return models.User{}, &ValidationError{Field: "email", Reason: "required"}
	}
	if err := a.verifier.Verify(ctx, email, password); err != nil {
		return models.User{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	user := models.User{ID: "1", Name: "User", Email: email}
	a.user = &user
	a.persist()
	return user, nil
}

// Register verifies the credentials (a no-op for the mock) and opens a
// session with a timestamp-derived id.
func (a *Auth) Register(ctx context.Context, name, email, password string) (models.User, error) {
	if email == "" {
		return models.User{}, &ValidationError{Field: "email", Reason: "required"}
	}
	if name == "" {
		return models.User{}, &ValidationError{Field: "name", Reason: "required"}
	}
	if err := a.verifier.Verify(ctx, email, password); err != nil {
		return models.User{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	user := models.User{
		ID:    strconv.FormatInt(a.now().UnixMilli(), 10),
		Name:  name,
		Email: email,
	}
	a.user = &user
	a.persist()
	return user, nil
}

// Logout clears the session and its persisted snapshot.
func (a *Auth) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.user = nil
	if err := a.backend.Delete(a.key); err != nil {
		log.Printf("ERROR: failed to clear auth snapshot: %v", err)
	}
}

// CurrentUser returns the logged-in user, if any.
func (a *Auth) CurrentUser() (models.User, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.user == nil {
		return models.User{}, false
	}
	return *a.user, true
}

// IsAuthenticated reports whether a session is open.
func (a *Auth) IsAuthenticated() bool {
	_, ok := a.CurrentUser()
	return ok
}
