package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"selmore/internal/core/domain"
	"selmore/internal/core/port"
	"selmore/internal/core/port/mocks"
)

func newAuth(t *testing.T) (*AuthUseCase, *mocks.MockUserRepository) {
	users := mocks.NewMockUserRepository(t)
	return NewAuthUseCase(users, stubTokens{}, plainHasher{}, logger), users
}

func TestRegister(t *testing.T) {
	svc, users := newAuth(t)

	users.On("GetUserByEmail", mock.Anything, "ada@example.com").Return(nil, nil)
	users.On("CreateUser", mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			u.ID = 10
		}).
		Return(nil)

	res, err := svc.Register(ctx, port.RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "password123",
		Role:     "owner",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-owner", res.Token)
	assert.Equal(t, int64(10), res.User.ID)
	assert.Equal(t, domain.RoleOwner, res.User.Role)

	created := users.Calls[1].Arguments.Get(1).(*domain.User)
	assert.Equal(t, "hashed:password123", created.PasswordHash)
}

func TestRegisterDefaultsToClient(t *testing.T) {
	svc, users := newAuth(t)

	users.On("GetUserByEmail", mock.Anything, "bo@example.com").Return(nil, nil)
	users.On("CreateUser", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	res, err := svc.Register(ctx, port.RegisterInput{Name: "Bo", Email: "bo@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleClient, res.User.Role)
}

func TestRegisterValidation(t *testing.T) {
	cases := []struct {
		name string
		in   port.RegisterInput
		msg  string
	}{
		{
			name: "missing fields",
			in:   port.RegisterInput{Email: "a@example.com"},
			msg:  "Missing required fields: name, password",
		},
		{
			name: "bad email",
			in:   port.RegisterInput{Name: "A", Email: "not-an-email", Password: "password123"},
			msg:  "Invalid email format",
		},
		{
			name: "short password",
			in:   port.RegisterInput{Name: "A", Email: "a@example.com", Password: "short"},
			msg:  "Password must be at least 8 characters long",
		},
		{
			name: "password over bcrypt limit",
			in:   port.RegisterInput{Name: "A", Email: "a@example.com", Password: strings.Repeat("a", 80)},
			msg:  "Password must be at most 72 bytes long",
		},
		{
			name: "admin signup",
			in:   port.RegisterInput{Name: "A", Email: "a@example.com", Password: "password123", Role: "admin"},
			msg:  "Invalid role. Must be one of: client, owner",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newAuth(t)
			_, err := svc.Register(ctx, tc.in)
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.EqualError(t, err, tc.msg)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Run("existing row", func(t *testing.T) {
		svc, users := newAuth(t)
		users.On("GetUserByEmail", mock.Anything, "ada@example.com").
			Return(&domain.User{ID: 1, Email: "ada@example.com"}, nil)

		_, err := svc.Register(ctx, port.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "password123"})
		require.ErrorIs(t, err, domain.ErrConflict)
		users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("lost race", func(t *testing.T) {
		svc, users := newAuth(t)
		users.On("GetUserByEmail", mock.Anything, "ada@example.com").Return(nil, nil)
		users.On("CreateUser", mock.Anything, mock.Anything).Return(port.ErrDuplicate)

		_, err := svc.Register(ctx, port.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "password123"})
		require.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestLogin(t *testing.T) {
	stored := &domain.User{ID: 3, Email: "c@example.com", PasswordHash: "hashed:password123", Role: domain.RoleClient}

	t.Run("ok", func(t *testing.T) {
		svc, users := newAuth(t)
		users.On("GetUserByEmail", mock.Anything, "c@example.com").Return(stored, nil)

		res, err := svc.Login(ctx, "c@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "tok-client", res.Token)
		assert.Equal(t, int64(3), res.User.ID)
	})

	// an unknown email and a wrong password must be indistinguishable
	t.Run("same error", func(t *testing.T) {
		svc, users := newAuth(t)
		users.On("GetUserByEmail", mock.Anything, "c@example.com").Return(stored, nil)
		users.On("GetUserByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

		_, wrongPass := svc.Login(ctx, "c@example.com", "password999")
		_, unknown := svc.Login(ctx, "nobody@example.com", "password123")

		require.ErrorIs(t, wrongPass, domain.ErrAuth)
		require.ErrorIs(t, unknown, domain.ErrAuth)
		assert.Equal(t, wrongPass.Error(), unknown.Error())
		assert.Equal(t, "Invalid credentials", unknown.Error())
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, _ := newAuth(t)
		_, err := svc.Login(ctx, "", "")
		assert.EqualError(t, err, "Missing required fields: email, password")
	})
}

func TestMe(t *testing.T) {
	svc, users := newAuth(t)
	users.On("GetUserByID", mock.Anything, int64(3)).
		Return(&domain.User{ID: 3, Name: "C", PasswordHash: "secret", TotalSpend: 150}, nil)
	users.On("GetUserByID", mock.Anything, int64(99)).Return(nil, nil)

	me, err := svc.Me(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, 150.0, me.TotalSpend)

	_, err = svc.Me(ctx, domain.Identity{UserID: 99, Role: domain.RoleClient})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAuthenticate(t *testing.T) {
	svc, users := newAuth(t)
	users.On("GetUserByID", mock.Anything, client.UserID).
		Return(&domain.User{ID: client.UserID, Role: domain.RoleClient}, nil)
	users.On("GetUserByID", mock.Anything, owner.UserID).Return(nil, nil)

	id, err := svc.Authenticate(ctx, "tok-client")
	require.NoError(t, err)
	assert.Equal(t, client, id)

	_, err = svc.Authenticate(ctx, "garbage")
	require.ErrorIs(t, err, domain.ErrAuth)

	// the token is valid but the user is gone
	_, err = svc.Authenticate(ctx, "tok-owner")
	require.ErrorIs(t, err, domain.ErrAuth)
	assert.EqualError(t, err, "User not found")
}
