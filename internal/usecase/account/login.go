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

type Login struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewLogin(
	repo domain.Repository,
	audit audit.Sink,
) *Login {
	return &Login{
		repo:  repo,
		audit: audit,
	}
}

// Execute authenticates by email and password. An unknown address and a
// wrong password fail through the same code so the responses cannot be told
// apart (account enumeration resistance).
func (uc *Login) Execute(
	ctx context.Context,
	email string,
	password string,
) (*models.User, error) {

	email = validators.NormalizeEmail(email)

	user, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user.login",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}
