// Package memory implements the repository ports over in-process maps with
// the same semantics as the MongoDB adapter. It backs the test suites, which
// run without a live database.
package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"todoapi/internal/core/domain"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[primitive.ObjectID]domain.User)}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domain.User{}, domain.Conflict("Email already in use")
		}
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	r.users[user.ID] = user

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return domain.User{}, domain.NotFound("User not found")
}

func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]

	if !ok {
		return domain.User{}, domain.NotFound("User not found")
	}

	// Same projection as the Mongo adapter: never hand the hash out.
	user.EncryptedPassword = ""

	return user, nil
}

// Remove drops a user. Only exists so tests can simulate a token whose
// subject no longer exists.
func (r *UserRepository) Remove(id primitive.ObjectID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, id)
}
