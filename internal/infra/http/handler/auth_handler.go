package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/notHeisenberg/TakaFlow-Server/internal/domain"
	"github.com/notHeisenberg/TakaFlow-Server/internal/usecase"
)

type LoginExecutor interface {
	Execute(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error)
}

type RegisterExecutor interface {
	Execute(ctx context.Context, input usecase.RegisterAccountInput) (*usecase.RegisterAccountOutput, error)
}

type AuthHandler struct {
	loginUseCase    LoginExecutor
	registerUseCase RegisterExecutor
}

func NewAuthHandler(login LoginExecutor, register RegisterExecutor) *AuthHandler {
	return &AuthHandler{
		loginUseCase:    login,
		registerUseCase: register,
	}
}

type LoginRequest struct {
	EmailOrPhone string `json:"emailOrPhone"`
	PIN          string `json:"pin"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Status  string `json:"status"`
	Balance int64  `json:"balance"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.EmailOrPhone == "" || req.PIN == "" {
		respondError(w, http.StatusBadRequest, "emailOrPhone and pin are required")
		return
	}

	output, err := h.loginUseCase.Execute(r.Context(), usecase.LoginInput{
		Contact: req.EmailOrPhone,
		PIN:     req.PIN,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{
		Token:   output.Token,
		ID:      output.Account.ID,
		Name:    output.Account.Name,
		Role:    string(output.Account.Role),
		Status:  string(output.Account.Status),
		Balance: output.Account.Balance,
	})
}

type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
	PIN   string `json:"pin"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.PIN == "" {
		respondError(w, http.StatusBadRequest, "name, email, phone and pin are required")
		return
	}

	output, err := h.registerUseCase.Execute(r.Context(), usecase.RegisterAccountInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  domain.Role(req.Role),
		PIN:   req.PIN,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"id":     output.ID,
		"status": string(output.Status),
	})
}
