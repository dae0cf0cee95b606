package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"reeves-booking/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailInUse         = errors.New("email already in use")
	ErrWeakCredentials    = errors.New("password must be at least 8 characters")
)

type credential struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Hash  string `json:"hash"`
}

// Identity implements sign-in/sign-up/sign-out over the document store
// with opaque session tokens in Redis. Admin privilege is a read-only
// lookup keyed by email; the service never creates privilege records.
type Identity struct {
	gateway  DocumentGateway
	sessions SessionStore
	now      func() time.Time
}

func NewIdentity(gateway DocumentGateway, sessions SessionStore) *Identity {
	return &Identity{gateway: gateway, sessions: sessions, now: time.Now}
}

func newToken() string {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("tk%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}

func (s *Identity) SignUp(ctx context.Context, email, password, name, phone string) (string, error) {
	if email == "" {
		return "", &ValidationError{Field: "email"}
	}
	if len(password) < 8 {
		return "", ErrWeakCredentials
	}

	if found, err := s.gateway.Get(ctx, CollectionCredentials, email, nil); err != nil {
		return "", fmt.Errorf("check existing account: %w", err)
	} else if found {
		return "", ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	uid := newToken()
	cred := credential{UID: uid, Email: email, Hash: string(hash)}
	if err := s.gateway.Create(ctx, CollectionCredentials, email, cred); err != nil {
		return "", fmt.Errorf("store credentials: %w", err)
	}

	profile := domain.UserProfile{
		UID:       uid,
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: s.now(),
	}
	if err := s.gateway.Create(ctx, CollectionUsers, uid, profile); err != nil {
		return "", fmt.Errorf("store profile: %w", err)
	}

	return s.startSession(ctx, domain.Session{UID: uid, Email: email})
}

func (s *Identity) SignIn(ctx context.Context, email, password string) (string, error) {
	var cred credential
	found, err := s.gateway.Get(ctx, CollectionCredentials, email, &cred)
	if err != nil {
		return "", fmt.Errorf("load credentials: %w", err)
	}
	if !found {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.Hash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return s.startSession(ctx, domain.Session{UID: cred.UID, Email: cred.Email})
}

func (s *Identity) startSession(ctx context.Context, sess domain.Session) (string, error) {
	token := newToken()
	if err := s.sessions.PutSession(ctx, token, sess); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (s *Identity) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.DeleteSession(ctx, token)
}

// CurrentSession returns nil for unknown or expired tokens.
func (s *Identity) CurrentSession(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, nil
	}
	return s.sessions.GetSession(ctx, token)
}

// IsPrivileged reports whether a privilege record exists for the
// session's email. Absence means not privileged.
func (s *Identity) IsPrivileged(ctx context.Context, sess *domain.Session) (bool, error) {
	if sess == nil {
		return false, nil
	}
	return s.gateway.Get(ctx, CollectionAdmins, sess.Email, nil)
}

func (s *Identity) Profile(ctx context.Context, uid string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	found, err := s.gateway.Get(ctx, CollectionUsers, uid, &profile)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("profile %s not found", uid)
	}
	return &profile, nil
}

var _ IdentityGateway = (*Identity)(nil)
