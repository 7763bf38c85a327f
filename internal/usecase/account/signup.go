package account

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/naai-app/naai-api/internal/audit"
	"github.com/naai-app/naai-api/internal/auth"
	domain "github.com/naai-app/naai-api/internal/domain/account"
	"github.com/naai-app/naai-api/internal/httperr"
	"github.com/naai-app/naai-api/internal/models"
	"github.com/naai-app/naai-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type SignupInput struct {
	Email    string
	Password string
	Name     *string
	Role     string
}

// ======================================================
// USE CASE
// ======================================================

type Signup struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewSignup(
	repo domain.Repository,
	audit audit.Sink,
) *Signup {
	return &Signup{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Signup) Execute(
	ctx context.Context,
	in SignupInput,
) (*models.User, error) {

	email := validators.NormalizeEmail(in.Email)

	_, err := uc.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, httperr.ErrBusiness("user_already_exists")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = models.RoleCustomer
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         in.Name,
		Role:         role,
	}

	if err := uc.repo.Create(ctx, user); err != nil {
		// a concurrent signup can win the race past the pre-check
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, httperr.ErrBusiness("user_already_exists")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user.signup",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]string{"role": user.Role},
	})

	return user, nil
}
