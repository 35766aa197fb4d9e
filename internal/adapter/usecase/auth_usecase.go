package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"selmore/internal/core/domain"
	"selmore/internal/core/port"
	"selmore/internal/validate"
)

var (
	errInvalidCredentials = domain.Auth("Invalid credentials")
	errEmailTaken         = domain.Conflict("Email already registered")
)

// AuthUseCase registers users, checks credentials and resolves bearer
// tokens into identities.
type AuthUseCase struct {
	users  port.UserRepository
	tokens port.TokenIssuer
	hasher port.PasswordHasher
	logger *slog.Logger
}

// NewAuthUseCase creates the auth service.
func NewAuthUseCase(users port.UserRepository, tokens port.TokenIssuer, hasher port.PasswordHasher, logger *slog.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens, hasher: hasher, logger: logger}
}

// Register validates the input, stores the user with a hashed password and
// returns a token for the new account. Role defaults to client; only
// client and owner accounts may sign up.
func (u *AuthUseCase) Register(ctx context.Context, in port.RegisterInput) (*port.AuthResult, error) {
	err := validate.Required(
		validate.Field{Name: "name", Value: in.Name},
		validate.Field{Name: "email", Value: in.Email},
		validate.Field{Name: "password", Value: in.Password},
	)
	if err != nil {
		return nil, err
	}
	if err = validate.Email(in.Email); err != nil {
		return nil, err
	}
	if err = validate.Password(in.Password); err != nil {
		return nil, err
	}
	role := domain.RoleClient
	if in.Role != "" {
		if err = validate.OneOf(in.Role, "role", string(domain.RoleClient), string(domain.RoleOwner)); err != nil {
			return nil, err
		}
		role = domain.Role(in.Role)
	}

	existing, err := u.users.GetUserByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errEmailTaken
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err = u.users.CreateUser(ctx, user); err != nil {
		// a concurrent registration won the unique index
		if errors.Is(err, port.ErrDuplicate) {
			return nil, errEmailTaken
		}
		return nil, err
	}

	u.logger.Info("user registered", slog.Int64("user_id", user.ID), slog.String("role", string(user.Role)))
	return u.issue(user)
}

// Login checks the credentials and returns a fresh token.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*port.AuthResult, error) {
	err := validate.Required(
		validate.Field{Name: "email", Value: email},
		validate.Field{Name: "password", Value: password},
	)
	if err != nil {
		return nil, err
	}
	if err = validate.Email(email); err != nil {
		return nil, err
	}

	user, err := u.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errInvalidCredentials
	}
	if err = u.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, errInvalidCredentials
	}
	return u.issue(user)
}

// Me returns the public view of the caller's account.
func (u *AuthUseCase) Me(ctx context.Context, id domain.Identity) (*domain.PublicUser, error) {
	user, err := u.users.GetUserByID(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("User not found")
	}
	pub := user.Public()
	return &pub, nil
}

// Authenticate verifies token and re-reads the user so that accounts
// deleted after the token was issued are rejected. The returned identity
// carries the user's current role.
func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (domain.Identity, error) {
	id, err := u.tokens.Verify(token)
	if err != nil {
		return domain.Identity{}, err
	}
	user, err := u.users.GetUserByID(ctx, id.UserID)
	if err != nil {
		return domain.Identity{}, err
	}
	if user == nil {
		return domain.Identity{}, domain.Auth("User not found")
	}
	return domain.Identity{UserID: user.ID, Role: user.Role}, nil
}

func (u *AuthUseCase) issue(user *domain.User) (*port.AuthResult, error) {
	token, err := u.tokens.Issue(domain.Identity{UserID: user.ID, Role: user.Role})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &port.AuthResult{Token: token, User: user.Public()}, nil
}
