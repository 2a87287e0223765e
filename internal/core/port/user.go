package port

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"todoapi/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// GetByID resolves a user without its password hash. Used by the
	// identity middleware on every protected request.
	GetByID(ctx context.Context, id primitive.ObjectID) (domain.User, error)
}
