package request

type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// UpdateTodoRequest uses pointer fields so an omitted field is distinguishable
// from one cleared to its zero value. Omitted fields are left untouched.
type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// ListTodosQuery carries the raw listing parameters. Page and Limit arrive
// already parsed, zero when missing or malformed; the service coerces them to
// their defaults.
type ListTodosQuery struct {
	Page   int
	Limit  int
	Search string
	Sort   string
	Order  string
}
