package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naai-app/naai-api/internal/auth"
	domain "github.com/naai-app/naai-api/internal/domain/account"
	"github.com/naai-app/naai-api/internal/httperr"
	"github.com/naai-app/naai-api/internal/models"
)

func TestSignup_DefaultsToCustomer(t *testing.T) {
	repo := newMockAccountRepo()
	sink := &sinkRecorder{}
	uc := NewSignup(repo, sink)

	user, err := uc.Execute(context.Background(), SignupInput{
		Email:    "A@B.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, "a@b.com", user.Email, "email must be normalized")
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.Nil(t, user.Name)

	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.True(t, auth.CheckPassword("secret1", user.PasswordHash))

	require.Len(t, sink.events, 1)
	assert.Equal(t, "user.signup", sink.events[0].Action)
}

func TestSignup_KeepsRequestedRole(t *testing.T) {
	uc := NewSignup(newMockAccountRepo(), &sinkRecorder{})

	user, err := uc.Execute(context.Background(), SignupInput{
		Email:    "barber@example.com",
		Password: "secret1",
		Role:     models.RoleBarber,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleBarber, user.Role)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := newMockAccountRepo()
	uc := NewSignup(repo, &sinkRecorder{})

	_, err := uc.Execute(context.Background(), SignupInput{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), SignupInput{Email: "A@B.COM", Password: "other12"})
	assert.True(t, httperr.IsBusiness(err, "user_already_exists"))
}

func TestSignup_DuplicateRaceAtInsert(t *testing.T) {
	// the pre-check passes but the unique index rejects the insert
	repo := newMockAccountRepo()
	repo.createErr = domain.ErrDuplicateEmail
	uc := NewSignup(repo, &sinkRecorder{})

	_, err := uc.Execute(context.Background(), SignupInput{Email: "a@b.com", Password: "secret1"})
	assert.True(t, httperr.IsBusiness(err, "user_already_exists"))
}
