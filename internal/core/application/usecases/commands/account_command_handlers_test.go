package commands_test

import (
	"errors"
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountUoW(users *MockUserRepository) (*MockUoW, *MockUoWFactory) {
	uow := new(MockUoW)
	uow.On("UserRepository").Return(users)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)
	return uow, factory
}

func TestRegisterAccountCommandHandler_Success(t *testing.T) {
	ctx := t.Context()
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "owner@example.com").
		Return(nil, errs.NewObjectNotFoundError("email", "owner@example.com")).Once()
	users.On("Add", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil).Once()
	uow, factory := newAccountUoW(users)
	uow.On("Commit", ctx).Return(nil).Once()
	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "s3cret-pass").Return("$2a$10$hash", nil).Once()

	h := commands.NewRegisterAccountCommandHandler(accountUoWFactory{factory}, hasher)
	cmd, err := commands.NewRegisterAccountCommand(kernel.NewUUID(), " Owner@Example.com", "s3cret-pass", user.Owner)
	require.NoError(t, err)

	account, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", account.Email())
	assert.Equal(t, "$2a$10$hash", account.PasswordHash())
	assert.Equal(t, user.Owner, account.Role())
	users.AssertExpectations(t)
	uow.AssertExpectations(t)
	hasher.AssertExpectations(t)
}

func TestRegisterAccountCommandHandler_EmailTaken(t *testing.T) {
	existing, err := user.NewUser(kernel.NewUUID(), "a@example.com", "hash", user.Client)
	require.NoError(t, err)

	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "a@example.com").Return(existing, nil)
	_, factory := newAccountUoW(users)
	hasher := new(MockPasswordHasher)

	h := commands.NewRegisterAccountCommandHandler(accountUoWFactory{factory}, hasher)
	cmd, _ := commands.NewRegisterAccountCommand(kernel.NewUUID(), "a@example.com", "password1", user.Client)

	_, err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestNewRegisterAccountCommand_Invalid(t *testing.T) {
	_, err := commands.NewRegisterAccountCommand(kernel.NewUUID(), "", "short", user.UnknownRole)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestLoginCommandHandler(t *testing.T) {
	account, err := user.NewUser(kernel.NewUUID(), "d@example.com", "stored-hash", user.Delivery)
	require.NoError(t, err)

	t.Run("issues token for valid credentials", func(t *testing.T) {
		ctx := t.Context()
		users := new(MockUserRepository)
		users.On("GetByEmail", mock.Anything, "d@example.com").Return(account, nil)
		uow, factory := newAccountUoW(users)
		uow.On("Commit", ctx).Return(nil).Once()
		hasher := new(MockPasswordHasher)
		hasher.On("Compare", "stored-hash", "password1").Return(nil)
		issuer := new(MockTokenIssuer)
		issuer.On("Issue", account.Actor()).Return("signed.jwt.token", nil).Once()

		h := commands.NewLoginCommandHandler(accountUoWFactory{factory}, hasher, issuer)
		cmd, err := commands.NewLoginCommand("D@example.com", "password1")
		require.NoError(t, err)

		token, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "signed.jwt.token", token)
		issuer.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetByEmail", mock.Anything, "d@example.com").Return(account, nil)
		_, factory := newAccountUoW(users)
		hasher := new(MockPasswordHasher)
		hasher.On("Compare", "stored-hash", "nope").Return(errors.New("mismatch"))
		issuer := new(MockTokenIssuer)

		h := commands.NewLoginCommandHandler(accountUoWFactory{factory}, hasher, issuer)
		cmd, _ := commands.NewLoginCommand("d@example.com", "nope")

		_, err := h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
		issuer.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("unknown email", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetByEmail", mock.Anything, "x@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "x@example.com"))
		_, factory := newAccountUoW(users)

		h := commands.NewLoginCommandHandler(accountUoWFactory{factory}, new(MockPasswordHasher), new(MockTokenIssuer))
		cmd, _ := commands.NewLoginCommand("x@example.com", "password1")

		_, err := h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, err := commands.NewLoginCommand(" ", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func strPtr(s string) *string {
	return &s
}

func TestEditProfileCommandHandler(t *testing.T) {
	newAccount := func(t *testing.T) *user.User {
		t.Helper()
		u, err := user.NewUser(kernel.NewUUID(), "old@example.com", "old-hash", user.Client)
		require.NoError(t, err)
		return u
	}

	t.Run("changes email and rehashes password", func(t *testing.T) {
		ctx := t.Context()
		account := newAccount(t)
		users := new(MockUserRepository)
		users.On("Get", mock.Anything, account.ID()).Return(account, nil).Once()
		users.On("GetByEmail", mock.Anything, "new@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "new@example.com")).Once()
		users.On("Update", mock.Anything, account).Return(nil).Once()
		uow, factory := newAccountUoW(users)
		uow.On("Commit", ctx).Return(nil).Once()
		hasher := new(MockPasswordHasher)
		hasher.On("Hash", "brand-new-pass").Return("new-hash", nil).Once()

		h := commands.NewEditProfileCommandHandler(accountUoWFactory{factory}, hasher)
		cmd, err := commands.NewEditProfileCommand(account.Actor(), strPtr(" New@Example.com"), strPtr("brand-new-pass"))
		require.NoError(t, err)

		got, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "new@example.com", got.Email())
		assert.Equal(t, "new-hash", got.PasswordHash())
		users.AssertExpectations(t)
		uow.AssertExpectations(t)
		hasher.AssertExpectations(t)
	})

	t.Run("password only keeps email", func(t *testing.T) {
		ctx := t.Context()
		account := newAccount(t)
		users := new(MockUserRepository)
		users.On("Get", mock.Anything, account.ID()).Return(account, nil).Once()
		users.On("Update", mock.Anything, account).Return(nil).Once()
		uow, factory := newAccountUoW(users)
		uow.On("Commit", ctx).Return(nil).Once()
		hasher := new(MockPasswordHasher)
		hasher.On("Hash", "brand-new-pass").Return("new-hash", nil).Once()

		h := commands.NewEditProfileCommandHandler(accountUoWFactory{factory}, hasher)
		cmd, err := commands.NewEditProfileCommand(account.Actor(), nil, strPtr("brand-new-pass"))
		require.NoError(t, err)

		got, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "old@example.com", got.Email())
		assert.Equal(t, "new-hash", got.PasswordHash())
		users.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})

	t.Run("email owned by another account conflicts", func(t *testing.T) {
		account := newAccount(t)
		other, err := user.NewUser(kernel.NewUUID(), "taken@example.com", "hash", user.Owner)
		require.NoError(t, err)
		users := new(MockUserRepository)
		users.On("Get", mock.Anything, account.ID()).Return(account, nil).Once()
		users.On("GetByEmail", mock.Anything, "taken@example.com").Return(other, nil).Once()
		uow, factory := newAccountUoW(users)
		hasher := new(MockPasswordHasher)

		h := commands.NewEditProfileCommandHandler(accountUoWFactory{factory}, hasher)
		cmd, err := commands.NewEditProfileCommand(account.Actor(), strPtr("taken@example.com"), strPtr("brand-new-pass"))
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
		hasher.AssertNotCalled(t, "Hash", mock.Anything)
		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("unknown account", func(t *testing.T) {
		actor := newActor(t, user.Client)
		users := new(MockUserRepository)
		users.On("Get", mock.Anything, actor.ID()).
			Return(nil, errs.NewObjectNotFoundError("user", actor.ID().String())).Once()
		_, factory := newAccountUoW(users)

		h := commands.NewEditProfileCommandHandler(accountUoWFactory{factory}, new(MockPasswordHasher))
		cmd, err := commands.NewEditProfileCommand(actor, strPtr("x@example.com"), nil)
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestNewEditProfileCommand_Invalid(t *testing.T) {
	actor := newActor(t, user.Client)

	_, err := commands.NewEditProfileCommand(actor, nil, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewEditProfileCommand(actor, strPtr(" "), strPtr("short"))
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewEditProfileCommand(user.Actor{}, strPtr("a@example.com"), nil)
	require.ErrorIs(t, err, user.ErrActorIsNotConstructed)
}
