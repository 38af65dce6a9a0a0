package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentbridge/recruitment-backend/internal/dtos"
	"github.com/talentbridge/recruitment-backend/internal/respond"
	"github.com/talentbridge/recruitment-backend/internal/services"
)

type AuthHandler struct {
	accounts *services.AccountService
}

func NewAuthHandler(accounts *services.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

func (h *AuthHandler) RegisterCandidate(c *gin.Context) {
	var req dtos.RegisterCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindErr(c, err)
		return
	}
	candidate, err := h.accounts.RegisterCandidate(c.Request.Context(), services.RegisterCandidateInput{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Password:      req.Password,
		DefaultResume: req.DefaultResume,
	})
	if err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusCreated, "candidate registered", candidate)
}

func (h *AuthHandler) RegisterEmployer(c *gin.Context) {
	var req dtos.RegisterEmployerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindErr(c, err)
		return
	}
	employer, err := h.accounts.RegisterEmployer(c.Request.Context(), services.RegisterEmployerInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusCreated, "employer registered", employer)
}

func (h *AuthHandler) LoginCandidate(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindErr(c, err)
		return
	}
	session, candidate, err := h.accounts.LoginCandidate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusOK, "login successful", gin.H{
		"session":   session,
		"candidate": candidate,
	})
}

func (h *AuthHandler) LoginEmployer(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindErr(c, err)
		return
	}
	session, employer, err := h.accounts.LoginEmployer(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respond.Err(c, err)
		return
	}
	respond.OK(c, http.StatusOK, "login successful", gin.H{
		"session":  session,
		"employer": employer,
	})
}
