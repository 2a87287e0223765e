package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 1000

	defaultPage  = 1
	defaultLimit = 10
)

// sortFields maps client sort parameters onto stored field names. Anything
// outside the map falls back to creation time.
var sortFields = map[string]string{
	"createdAt": "createdAt",
	"updatedAt": "updatedAt",
	"title":     "title",
	"completed": "completed",
}

type TodoService struct {
	repo port.TodoRepository
}

func NewTodoService(repo port.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

func (s *TodoService) Create(ctx context.Context, ownerID primitive.ObjectID, req *request.CreateTodoRequest) (*response.TodoCreated, error) {
	title := strings.TrimSpace(req.Title)

	if title == "" {
		return nil, domain.Validation("Title is required")
	}

	if utf8.RuneCountInString(title) > maxTitleLength {
		return nil, domain.Validation("Title cannot exceed 200 characters")
	}

	description := strings.TrimSpace(req.Description)

	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return nil, domain.Validation("Description cannot exceed 1000 characters")
	}

	now := time.Now().UTC()

	todo, err := s.repo.Create(ctx, domain.Todo{
		Title:       title,
		Description: description,
		Completed:   req.Completed,
		UserID:      ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})

	if err != nil {
		return nil, err
	}

	return &response.TodoCreated{
		ID:          todo.ID.Hex(),
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   todo.Completed,
		CreatedAt:   todo.CreatedAt,
	}, nil
}

func (s *TodoService) List(ctx context.Context, ownerID primitive.ObjectID, query request.ListTodosQuery) (*response.TodoList, error) {
	page := query.Page
	if page < 1 {
		page = defaultPage
	}

	limit := query.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	sortField, ok := sortFields[query.Sort]
	if !ok {
		sortField = "createdAt"
	}

	filter := port.TodoFilter{
		UserID:    ownerID,
		Search:    strings.TrimSpace(query.Search),
		SortField: sortField,
		SortAsc:   strings.EqualFold(query.Order, "asc"),
		Skip:      int64(page-1) * int64(limit),
		Limit:     int64(limit),
	}

	todos, total, err := s.repo.List(ctx, filter)

	if err != nil {
		return nil, err
	}

	data := make([]response.TodoItem, 0, len(todos))

	for _, todo := range todos {
		data = append(data, response.TodoItem{
			ID:          todo.ID.Hex(),
			Title:       todo.Title,
			Description: todo.Description,
			Completed:   todo.Completed,
			CreatedAt:   todo.CreatedAt,
			UpdatedAt:   todo.UpdatedAt,
		})
	}

	return &response.TodoList{
		Data:  data,
		Page:  page,
		Limit: limit,
		Total: total,
	}, nil
}

func (s *TodoService) Update(ctx context.Context, ownerID primitive.ObjectID, id string, req *request.UpdateTodoRequest) (*response.TodoUpdated, error) {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return nil, domain.Validation("Invalid ID")
	}

	todo, err := s.repo.GetByID(ctx, oid)

	if err != nil {
		return nil, err
	}

	if !todo.BelongsToUser(ownerID) {
		return nil, domain.Forbidden("Forbidden")
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)

		if title == "" {
			return nil, domain.Validation("Title cannot be empty")
		}

		if utf8.RuneCountInString(title) > maxTitleLength {
			return nil, domain.Validation("Title cannot exceed 200 characters")
		}

		todo.Title = title
	}

	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)

		if utf8.RuneCountInString(description) > maxDescriptionLength {
			return nil, domain.Validation("Description cannot exceed 1000 characters")
		}

		todo.Description = description
	}

	if req.Completed != nil {
		todo.Completed = *req.Completed
	}

	todo.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, todo)

	if err != nil {
		return nil, err
	}

	return &response.TodoUpdated{
		ID:          updated.ID.Hex(),
		Title:       updated.Title,
		Description: updated.Description,
		Completed:   updated.Completed,
		UpdatedAt:   updated.UpdatedAt,
	}, nil
}

func (s *TodoService) Delete(ctx context.Context, ownerID primitive.ObjectID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return domain.Validation("Invalid ID")
	}

	todo, err := s.repo.GetByID(ctx, oid)

	if err != nil {
		return err
	}

	if !todo.BelongsToUser(ownerID) {
		return domain.Forbidden("Forbidden")
	}

	return s.repo.Delete(ctx, oid, ownerID)
}
