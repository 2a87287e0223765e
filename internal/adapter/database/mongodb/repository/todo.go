package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"todoapi/internal/adapter/database/mongodb"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
)

type TodoRepository struct {
	col *mongo.Collection
}

func NewTodoRepository(db *mongodb.DB) *TodoRepository {
	return &TodoRepository{col: db.Collection("todos")}
}

func (r *TodoRepository) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	res, err := r.col.InsertOne(ctx, todo)

	if err != nil {
		return domain.Todo{}, fmt.Errorf("insert todo: %w", err)
	}

	todo.ID = res.InsertedID.(primitive.ObjectID)

	return todo, nil
}

func (r *TodoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (domain.Todo, error) {
	var todo domain.Todo

	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&todo)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Todo{}, domain.NotFound("Not found")
	}

	if err != nil {
		return domain.Todo{}, fmt.Errorf("find todo: %w", err)
	}

	return todo, nil
}

func (r *TodoRepository) List(ctx context.Context, f port.TodoFilter) ([]domain.Todo, int64, error) {
	filter := bson.M{"user": f.UserID}

	if f.Search != "" {
		filter["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
	}

	total, err := r.col.CountDocuments(ctx, filter)

	if err != nil {
		return nil, 0, fmt.Errorf("count todos: %w", err)
	}

	order := -1
	if f.SortAsc {
		order = 1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: f.SortField, Value: order}}).
		SetSkip(f.Skip).
		SetLimit(f.Limit)

	cur, err := r.col.Find(ctx, filter, opts)

	if err != nil {
		return nil, 0, fmt.Errorf("find todos: %w", err)
	}
	defer cur.Close(ctx)

	var todos []domain.Todo

	if err := cur.All(ctx, &todos); err != nil {
		return nil, 0, fmt.Errorf("decode todos: %w", err)
	}

	return todos, total, nil
}

func (r *TodoRepository) Update(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	filter := bson.M{"_id": todo.ID, "user": todo.UserID}

	update := bson.M{"$set": bson.M{
		"title":       todo.Title,
		"description": todo.Description,
		"completed":   todo.Completed,
		"updatedAt":   todo.UpdatedAt,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Todo

	err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)

	if errors.Is(err, mongo.ErrNoDocuments) {
		// Raced away between the ownership read and this write.
		return domain.Todo{}, domain.NotFound("Not found")
	}

	if err != nil {
		return domain.Todo{}, fmt.Errorf("update todo: %w", err)
	}

	return updated, nil
}

func (r *TodoRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "user": userID})

	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}

	if res.DeletedCount == 0 {
		return domain.NotFound("Not found")
	}

	return nil
}
