package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"todoapi/internal/adapter/database/memory"
	"todoapi/internal/adapter/http/handler"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/adapter/http/routes"
	"todoapi/internal/core/service"
	"todoapi/pkg/auth"
)

type TodoHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	users  *memory.UserRepository
	tokens *auth.JWT
}

func (s *TodoHandlerTestSuite) SetupTest() {
	RegisterTestingT(s.T())

	s.users = memory.NewUserRepository()
	s.tokens = auth.NewJWT("test-secret", time.Hour)
	authSvc := service.NewAuthService(s.users, s.tokens)

	todos := memory.NewTodoRepository()
	todoSvc := service.NewTodoService(todos)

	s.router = routes.SetupRouterForTests(routes.Handlers{
		Auth:     handler.NewAuthHandler(authSvc, nil),
		Todo:     handler.NewTodoHandler(todoSvc, nil),
		Identity: middleware.Identity(s.tokens, s.users),
	})
}

func TestTodoHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TodoHandlerTestSuite))
}

func (s *TodoHandlerTestSuite) request(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	return rec
}

func (s *TodoHandlerTestSuite) registerUser(email string) string {
	rec := s.request(http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Ann",
		"email":    email,
		"password": "secret1",
	})
	s.Require().Equal(http.StatusCreated, rec.Code)

	return decode(&s.Suite, rec)["token"].(string)
}

func (s *TodoHandlerTestSuite) createTodo(token, title string) map[string]any {
	rec := s.request(http.MethodPost, "/api/todos", token, gin.H{"title": title})
	s.Require().Equal(http.StatusCreated, rec.Code)

	return decode(&s.Suite, rec)
}

func (s *TodoHandlerTestSuite) TestFullLifecycle() {
	token := s.registerUser("ann@x.com")

	login := s.request(http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "ann@x.com",
		"password": "secret1",
	})
	Expect(login.Code).To(Equal(http.StatusOK))
	token = decode(&s.Suite, login)["token"].(string)

	created := s.createTodo(token, "Buy milk")
	Expect(created["title"]).To(Equal("Buy milk"))
	Expect(created["description"]).To(Equal(""))
	Expect(created["completed"]).To(BeFalse())
	Expect(created["id"]).NotTo(BeEmpty())

	list := s.request(http.MethodGet, "/api/todos?page=1&limit=10", token, nil)
	Expect(list.Code).To(Equal(http.StatusOK))

	listBody := decode(&s.Suite, list)
	Expect(listBody["total"]).To(BeEquivalentTo(1))
	Expect(listBody["page"]).To(BeEquivalentTo(1))
	Expect(listBody["limit"]).To(BeEquivalentTo(10))
	Expect(listBody["data"]).To(HaveLen(1))

	id := created["id"].(string)

	updated := s.request(http.MethodPut, "/api/todos/"+id, token, gin.H{"completed": true})
	Expect(updated.Code).To(Equal(http.StatusOK))
	Expect(decode(&s.Suite, updated)["completed"]).To(BeTrue())

	deleted := s.request(http.MethodDelete, "/api/todos/"+id, token, nil)
	Expect(deleted.Code).To(Equal(http.StatusNoContent))
	Expect(deleted.Body.Len()).To(BeZero())

	list = s.request(http.MethodGet, "/api/todos", token, nil)
	Expect(decode(&s.Suite, list)["total"]).To(BeEquivalentTo(0))
}

func (s *TodoHandlerTestSuite) TestRequiresToken() {
	rec := s.request(http.MethodGet, "/api/todos", "", nil)

	Expect(rec.Code).To(Equal(http.StatusUnauthorized))
	Expect(decode(&s.Suite, rec)["message"]).To(Equal("Unauthorized"))
}

func (s *TodoHandlerTestSuite) TestRejectsGarbageToken() {
	rec := s.request(http.MethodGet, "/api/todos", "not-a-real-token", nil)

	Expect(rec.Code).To(Equal(http.StatusUnauthorized))
	Expect(decode(&s.Suite, rec)["message"]).To(Equal("Invalid token"))
}

func (s *TodoHandlerTestSuite) TestRejectsTokenOfDeletedUser() {
	token := s.registerUser("ann@x.com")

	userID, err := s.tokens.VerifyToken(token)
	s.Require().NoError(err)

	oid, err := primitive.ObjectIDFromHex(userID)
	s.Require().NoError(err)

	s.users.Remove(oid)

	rec := s.request(http.MethodGet, "/api/todos", token, nil)

	Expect(rec.Code).To(Equal(http.StatusUnauthorized))
	Expect(decode(&s.Suite, rec)["message"]).To(Equal("Unauthorized"))
}

func (s *TodoHandlerTestSuite) TestCannotTouchAnotherUsersTodo() {
	annToken := s.registerUser("ann@x.com")
	bobToken := s.registerUser("bob@x.com")

	created := s.createTodo(annToken, "Ann's secret errand")
	id := created["id"].(string)

	update := s.request(http.MethodPut, "/api/todos/"+id, bobToken, gin.H{"completed": true})
	Expect(update.Code).To(Equal(http.StatusForbidden))
	Expect(decode(&s.Suite, update)["message"]).To(Equal("Forbidden"))

	del := s.request(http.MethodDelete, "/api/todos/"+id, bobToken, nil)
	Expect(del.Code).To(Equal(http.StatusForbidden))

	list := s.request(http.MethodGet, "/api/todos", bobToken, nil)
	Expect(decode(&s.Suite, list)["total"]).To(BeEquivalentTo(0))
}

func (s *TodoHandlerTestSuite) TestUpdateWithEmptyBodyIsANoOpPatch() {
	token := s.registerUser("ann@x.com")

	created := s.createTodo(token, "Buy milk")
	id := created["id"].(string)

	rec := s.request(http.MethodPut, "/api/todos/"+id, token, nil)
	Expect(rec.Code).To(Equal(http.StatusOK))

	body := decode(&s.Suite, rec)
	Expect(body["title"]).To(Equal("Buy milk"))
	Expect(body["completed"]).To(BeFalse())
}

func (s *TodoHandlerTestSuite) TestUpdateUnknownID() {
	token := s.registerUser("ann@x.com")

	rec := s.request(http.MethodPut, "/api/todos/"+primitive.NewObjectID().Hex(), token, gin.H{"completed": true})

	Expect(rec.Code).To(Equal(http.StatusNotFound))
	Expect(decode(&s.Suite, rec)["message"]).To(Equal("Not found"))
}

func (s *TodoHandlerTestSuite) TestUpdateInvalidID() {
	token := s.registerUser("ann@x.com")

	rec := s.request(http.MethodPut, "/api/todos/123", token, gin.H{"completed": true})

	Expect(rec.Code).To(Equal(http.StatusBadRequest))
	Expect(decode(&s.Suite, rec)["message"]).To(Equal("Invalid ID"))
}

func (s *TodoHandlerTestSuite) TestCreateValidation() {
	token := s.registerUser("ann@x.com")

	rec := s.request(http.MethodPost, "/api/todos", token, gin.H{"title": "   "})

	Expect(rec.Code).To(Equal(http.StatusBadRequest))
	Expect(decode(&s.Suite, rec)["message"]).To(Equal("Title is required"))
}

func (s *TodoHandlerTestSuite) TestListPaginationAndSearch() {
	token := s.registerUser("ann@x.com")

	for i := 0; i < 15; i++ {
		s.createTodo(token, fmt.Sprintf("task %02d", i))
	}
	s.createTodo(token, "Buy MILK")

	page2 := s.request(http.MethodGet, "/api/todos?page=2&limit=10", token, nil)
	Expect(page2.Code).To(Equal(http.StatusOK))

	body := decode(&s.Suite, page2)
	Expect(body["total"]).To(BeEquivalentTo(16))
	Expect(body["data"]).To(HaveLen(6))
	Expect(body["page"]).To(BeEquivalentTo(2))

	search := s.request(http.MethodGet, "/api/todos?search=milk", token, nil)
	searchBody := decode(&s.Suite, search)
	Expect(searchBody["total"]).To(BeEquivalentTo(1))

	data := searchBody["data"].([]any)
	Expect(data[0].(map[string]any)["title"]).To(Equal("Buy MILK"))
}

func (s *TodoHandlerTestSuite) TestBadPaginationFallsBackToDefaults() {
	token := s.registerUser("ann@x.com")
	s.createTodo(token, "only one")

	rec := s.request(http.MethodGet, "/api/todos?page=zero&limit=-5", token, nil)
	Expect(rec.Code).To(Equal(http.StatusOK))

	body := decode(&s.Suite, rec)
	Expect(body["page"]).To(BeEquivalentTo(1))
	Expect(body["limit"]).To(BeEquivalentTo(10))
}

func (s *TodoHandlerTestSuite) TestUnknownRoute() {
	rec := s.request(http.MethodGet, "/api/unknown", "", nil)

	Expect(rec.Code).To(Equal(http.StatusNotFound))
	Expect(decode(&s.Suite, rec)["message"]).To(Equal("Not Found - /api/unknown"))
}
