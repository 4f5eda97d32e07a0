package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Session is the identity record handed to the client after registration or
// login. The client keeps it for the lifetime of its session; the token is the
// only thing the server trusts on later calls.
type Session struct {
	User  User
	Token string
}

type Service struct {
	users  UserRepository
	tokens *TokenIssuer
}

func NewService(users UserRepository, tokens *TokenIssuer) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
	}
}

func (s *Service) Register(ctx context.Context, name, email, password, role string) (Session, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return Session{}, fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
	}

	role = strings.TrimSpace(role)
	if role == "" {
		role = RoleUser
	}
	if role != RoleUser && role != RoleAdmin {
		return Session{}, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	now := time.Now().UTC()
	user, err := s.users.CreateUser(ctx, User{
		Name:      name,
		Email:     email,
		Password:  password,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return Session{}, err
	}

	return s.newSession(user)
}

func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	user, err := s.users.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// Same outcome as a wrong password so the response does not reveal
			// whether the email is registered.
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	// Verbatim comparison: stored passwords are opaque strings.
	if user.Password != password || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	return s.newSession(user)
}

func (s *Service) newSession(user User) (Session, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		return Session{}, err
	}
	return Session{User: user, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
