package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/grigorev/user-directory/internal/application"
	repo "github.com/grigorev/user-directory/internal/domain/repository"
	"github.com/grigorev/user-directory/pkg/response"
	"github.com/grigorev/user-directory/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.Service, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

// Presence-only validation; email format and password strength are
// deliberately unchecked.
type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func clientIP(c *gin.Context) string {
	if ip := c.GetString("real_ip"); ip != "" {
		return ip
	}
	return c.ClientIP()
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.WithField("details", validation.ToDetails(err)).Debug("register payload rejected")
		response.Err(c, http.StatusBadRequest, "Name, email and password required")
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicateEmail):
			response.Err(c, http.StatusBadRequest, "Email already exists")
		case errors.Is(err, application.ErrMissingFields):
			response.Err(c, http.StatusBadRequest, "Name, email and password required")
		default:
			h.Logger.WithError(err).Error("register failed")
			response.Err(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.Logger.WithFields(logrus.Fields{"user_id": u.ID, "ip": clientIP(c)}).Info("user registered")
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user": gin.H{
			"id":     u.ID,
			"name":   u.Name,
			"email":  u.Email,
			"status": u.Status,
		},
	})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.WithField("details", validation.ToDetails(err)).Debug("login payload rejected")
		response.Err(c, http.StatusBadRequest, "Email and password required")
		return
	}

	token, u, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			// One body for unknown email, wrong password and revoked
			// accounts.
			response.Err(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Err(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Logger.WithFields(logrus.Fields{"user_id": u.ID, "ip": clientIP(c)}).Info("user logged in")
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":     u.ID,
			"name":   u.Name,
			"email":  u.Email,
			"status": u.Status,
		},
	})
}
