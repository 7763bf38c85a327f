package account

import (
	"context"
	"errors"

	"github.com/naai-app/naai-api/internal/models"
)

// ErrDuplicateEmail reports that the unique index on users.email rejected
// an insert. Two concurrent signups with the same address race down to the
// database; the loser surfaces this.
var ErrDuplicateEmail = errors.New("duplicate email")

type Repository interface {
	FindByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	FindByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	Create(
		ctx context.Context,
		user *models.User,
	) error
}
