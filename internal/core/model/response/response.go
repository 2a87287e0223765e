package response

import "time"

type Token struct {
	Token string `json:"token"`
}

type Message struct {
	Message string `json:"message"`
}

// Error is the uniform failure shape. Stack carries diagnostic detail and is
// only populated outside production.
type Error struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

type TodoCreated struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

type TodoUpdated struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type TodoItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type TodoList struct {
	Data  []TodoItem `json:"data"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
	Total int64      `json:"total"`
}
