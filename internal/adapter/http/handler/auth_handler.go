package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapi/internal/adapter/http/helper"
	"todoapi/internal/adapter/http/validation"
	"todoapi/internal/adapter/telemetry"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
)

type AuthHandler struct {
	svc     port.AuthService
	metrics *telemetry.AppMetrics
}

func NewAuthHandler(svc port.AuthService, metrics *telemetry.AppMetrics) *AuthHandler {
	return &AuthHandler{svc: svc, metrics: metrics}
}

func (a *AuthHandler) Register(c *gin.Context) {
	params, err := helper.Bind[request.RegisterRequest](c)

	if err != nil {
		helper.Error(c, domain.Validation("Invalid request body"))
		return
	}

	if err := validation.Validator.Struct(&params); err != nil {
		helper.Error(c, domain.Validation(validation.Message(err)))
		return
	}

	token, err := a.svc.Register(c.Request.Context(), &params)

	if err != nil {
		a.metrics.RecordUserOperation("register", "error")
		helper.Error(c, err)
		return
	}

	a.metrics.RecordUserOperation("register", "success")

	c.JSON(http.StatusCreated, response.Token{Token: token})
}

func (a *AuthHandler) Login(c *gin.Context) {
	params, err := helper.Bind[request.LoginRequest](c)

	if err != nil {
		helper.Error(c, domain.Validation("Invalid request body"))
		return
	}

	if err := validation.Validator.Struct(&params); err != nil {
		helper.Error(c, domain.Validation(validation.Message(err)))
		return
	}

	token, err := a.svc.Login(c.Request.Context(), &params)

	if err != nil {
		a.metrics.RecordUserOperation("login", "error")
		helper.Error(c, err)
		return
	}

	a.metrics.RecordUserOperation("login", "success")

	c.JSON(http.StatusOK, response.Token{Token: token})
}
