package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
)

type TodoRepository struct {
	mu    sync.RWMutex
	todos map[primitive.ObjectID]domain.Todo
}

func NewTodoRepository() *TodoRepository {
	return &TodoRepository{todos: make(map[primitive.ObjectID]domain.Todo)}
}

func (r *TodoRepository) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if todo.ID.IsZero() {
		todo.ID = primitive.NewObjectID()
	}

	r.todos[todo.ID] = todo

	return todo, nil
}

func (r *TodoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todo, ok := r.todos[id]

	if !ok {
		return domain.Todo{}, domain.NotFound("Not found")
	}

	return todo, nil
}

func (r *TodoRepository) List(ctx context.Context, f port.TodoFilter) ([]domain.Todo, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.Todo, 0)
	search := strings.ToLower(f.Search)

	for _, todo := range r.todos {
		if todo.UserID != f.UserID {
			continue
		}

		if search != "" && !strings.Contains(strings.ToLower(todo.Title), search) {
			continue
		}

		matched = append(matched, todo)
	}

	sortTodos(matched, f.SortField, f.SortAsc)

	total := int64(len(matched))

	if f.Skip >= total {
		return []domain.Todo{}, total, nil
	}

	matched = matched[f.Skip:]

	if int64(len(matched)) > f.Limit {
		matched = matched[:f.Limit]
	}

	return matched, total, nil
}

func (r *TodoRepository) Update(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.todos[todo.ID]

	if !ok || existing.UserID != todo.UserID {
		return domain.Todo{}, domain.NotFound("Not found")
	}

	existing.Title = todo.Title
	existing.Description = todo.Description
	existing.Completed = todo.Completed
	existing.UpdatedAt = todo.UpdatedAt

	r.todos[todo.ID] = existing

	return existing, nil
}

func (r *TodoRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.todos[id]

	if !ok || existing.UserID != userID {
		return domain.NotFound("Not found")
	}

	delete(r.todos, id)

	return nil
}

func sortTodos(todos []domain.Todo, field string, asc bool) {
	less := func(a, b domain.Todo) bool {
		switch field {
		case "title":
			return a.Title < b.Title
		case "completed":
			return !a.Completed && b.Completed
		case "updatedAt":
			return a.UpdatedAt.Before(b.UpdatedAt)
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}

	sort.SliceStable(todos, func(i, j int) bool {
		if asc {
			return less(todos[i], todos[j])
		}
		return less(todos[j], todos[i])
	})
}
