package http

import (
	"encoding/json"
	"net/http"

	"github.com/jivass-tech/payroll-backend-go/internal/domain/auth"
	"github.com/jivass-tech/payroll-backend-go/internal/handler/http/response"
	authsvc "github.com/jivass-tech/payroll-backend-go/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService *authsvc.Service
}

func NewAuthHandler(authService *authsvc.Service) AuthHandler {
	return &authHandlerImpl{authService: authService}
}

func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
