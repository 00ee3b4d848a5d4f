package handler

import (
	"errors"
	"log"
	"net/http"

	"challan-management-backend/internal/middleware"
	auth "challan-management-backend/internal/services/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *auth.Service
}

func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid payload"})
		return
	}

	token, err := h.service.Login(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid credentials"})
			return
		}
		log.Println("login failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var payload struct {
		Username    string `json:"username"`
		Password    string `json:"password"`
		Role        string `json:"role"`
		BillingCode string `json:"billing_code"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid payload"})
		return
	}
	if payload.Username == "" || payload.Password == "" || payload.BillingCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "username, password and billing code are required"})
		return
	}
	if payload.Role != "admin" && payload.Role != "user" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "role must be admin or user"})
		return
	}

	user, err := h.service.Register(payload.Username, payload.Password, payload.Role, payload.BillingCode)
	if err != nil {
		if errors.Is(err, auth.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "username already taken"})
			return
		}
		log.Println("register failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	var payload struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BindJSON(&payload); err != nil || payload.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid payload"})
		return
	}

	err := h.service.ChangePassword(identity.Username, payload.CurrentPassword, payload.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "current password is incorrect"})
		case errors.Is(err, auth.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "user not found"})
		default:
			log.Println("change password failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to change password"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "password changed successfully"})
}

func (h *AuthHandler) SetPassword(c *gin.Context) {
	var payload struct {
		UserID      string `json:"user_id"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BindJSON(&payload); err != nil || payload.UserID == "" || payload.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "user ID and new password are required"})
		return
	}

	if err := h.service.SetPassword(payload.UserID, payload.NewPassword); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "user not found"})
			return
		}
		log.Println("set password failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "password updated successfully"})
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers()
	if err != nil {
		log.Println("list users failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}
