package port

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
)

// TodoFilter is the owner-scoped query a listing resolves to. SortField is
// already allowlisted by the service; Search matches the title as a
// case-insensitive substring.
type TodoFilter struct {
	UserID    primitive.ObjectID
	Search    string
	SortField string
	SortAsc   bool
	Skip      int64
	Limit     int64
}

type TodoRepository interface {
	Create(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (domain.Todo, error)
	List(ctx context.Context, filter TodoFilter) ([]domain.Todo, int64, error)

	// Update and Delete match on both id and owner in a single store
	// operation, so the ownership check also holds at write time.
	Update(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

type TodoService interface {
	Create(ctx context.Context, ownerID primitive.ObjectID, req *request.CreateTodoRequest) (*response.TodoCreated, error)
	List(ctx context.Context, ownerID primitive.ObjectID, query request.ListTodosQuery) (*response.TodoList, error)
	Update(ctx context.Context, ownerID primitive.ObjectID, id string, req *request.UpdateTodoRequest) (*response.TodoUpdated, error)
	Delete(ctx context.Context, ownerID primitive.ObjectID, id string) error
}
