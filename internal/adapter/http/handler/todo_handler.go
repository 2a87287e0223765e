package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todoapi/internal/adapter/http/helper"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/adapter/telemetry"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/port"
)

type TodoHandler struct {
	svc     port.TodoService
	metrics *telemetry.AppMetrics
}

func NewTodoHandler(svc port.TodoService, metrics *telemetry.AppMetrics) *TodoHandler {
	return &TodoHandler{svc: svc, metrics: metrics}
}

func (t *TodoHandler) Create(c *gin.Context) {
	ownerID := middleware.CurrentUserID(c)

	params, err := helper.Bind[request.CreateTodoRequest](c)

	if err != nil {
		helper.Error(c, domain.Validation("Invalid request body"))
		return
	}

	todo, err := t.svc.Create(c.Request.Context(), ownerID, &params)

	if err != nil {
		t.metrics.RecordTodoOperation("create", "error")
		helper.Error(c, err)
		return
	}

	t.metrics.RecordTodoOperation("create", "success")

	c.JSON(http.StatusCreated, todo)
}

func (t *TodoHandler) List(c *gin.Context) {
	ownerID := middleware.CurrentUserID(c)

	query := request.ListTodosQuery{
		Page:   intQuery(c, "page"),
		Limit:  intQuery(c, "limit"),
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
		Order:  c.Query("order"),
	}

	list, err := t.svc.List(c.Request.Context(), ownerID, query)

	if err != nil {
		t.metrics.RecordTodoOperation("list", "error")
		helper.Error(c, err)
		return
	}

	t.metrics.RecordTodoOperation("list", "success")

	c.JSON(http.StatusOK, list)
}

func (t *TodoHandler) Update(c *gin.Context) {
	ownerID := middleware.CurrentUserID(c)

	params, err := helper.Bind[request.UpdateTodoRequest](c)

	// An absent body is an empty patch, not a client error.
	if err != nil && !errors.Is(err, io.EOF) {
		helper.Error(c, domain.Validation("Invalid request body"))
		return
	}

	todo, err := t.svc.Update(c.Request.Context(), ownerID, c.Param("id"), &params)

	if err != nil {
		t.metrics.RecordTodoOperation("update", "error")
		helper.Error(c, err)
		return
	}

	t.metrics.RecordTodoOperation("update", "success")

	c.JSON(http.StatusOK, todo)
}

func (t *TodoHandler) Delete(c *gin.Context) {
	ownerID := middleware.CurrentUserID(c)

	if err := t.svc.Delete(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		t.metrics.RecordTodoOperation("delete", "error")
		helper.Error(c, err)
		return
	}

	t.metrics.RecordTodoOperation("delete", "success")

	c.Status(http.StatusNoContent)
}

// intQuery parses a positive integer query parameter; anything malformed
// falls back to zero so the service applies its defaults.
func intQuery(c *gin.Context, name string) int {
	value, err := strconv.Atoi(c.Query(name))

	if err != nil {
		return 0
	}

	return value
}
