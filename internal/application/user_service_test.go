package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlefevre/gocommerce/internal/domain/entity"
	repo "github.com/nlefevre/gocommerce/internal/domain/repository"
	"github.com/nlefevre/gocommerce/pkg/helpers"
)

func newUserService() (*UserService, *fakeUserRepo, *fakeCartRepo, *fakeWishlistRepo) {
	users := newFakeUserRepo()
	carts := newFakeCartRepo()
	wishlists := newFakeWishlistRepo()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return NewUserService(users, carts, wishlists, jwt, nil, nil), users, carts, wishlists
}

func TestRegisterProvisionsCartAndWishlist(t *testing.T) {
	svc, _, carts, wishlists := newUserService()
	ctx := context.Background()

	u, token, exp, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotZero(t, u.ID)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	cart, err := carts.GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, cart.UserID)
	wl, err := wishlists.GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, wl.UserID)

	// password never stored in clear
	stored, err := svc.Users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "supersecret", stored.PasswordHash)
	assert.True(t, helpers.CompareHashAndPassword(stored.PasswordHash, "supersecret"))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newUserService()
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, _, _, err = svc.Register(ctx, RegisterInput{Username: "other", Email: "alice@example.com", Password: "othersecret"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
}

// blindUserRepo simulates losing a register race: the duplicate-email
// lookup misses, but the insert still hits the unique constraint.
type blindUserRepo struct {
	*fakeUserRepo
}

func (r blindUserRepo) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, repo.ErrNotFound
}

func TestRegisterMapsInsertConflictToValidationError(t *testing.T) {
	users := newFakeUserRepo()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	svc := NewUserService(blindUserRepo{users}, newFakeCartRepo(), newFakeWishlistRepo(), jwt, nil, nil)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, userFixture("alice")))

	_, _, _, err := svc.Register(ctx, RegisterInput{
		Username: "other",
		Email:    "alice@example.com",
		Password: "othersecret",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _, _ := newUserService()
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, _, _, unknownErr := svc.Login(ctx, "nobody@example.com", "whatever")
	_, _, _, wrongPassErr := svc.Login(ctx, "alice@example.com", "wrongpass")

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
}

func TestLoginIssuesParseableToken(t *testing.T) {
	svc, _, _, _ := newUserService()
	ctx := context.Background()

	u, _, _, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, token, _, err := svc.Login(ctx, "alice@example.com", "supersecret")
	require.NoError(t, err)

	claims, err := svc.JWT.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
}
