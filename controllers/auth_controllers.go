package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/amigosdev/amigos-backend/models"
	"github.com/amigosdev/amigos-backend/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Register creates a new user account. A duplicate email answers with a
// friendly 200 rather than an error status, matching what the frontend
// expects. The unique index on users.email backs the pre-insert lookup, so
// two concurrent registrations for the same address can never both land.
func (ac *AuthController) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondMessage(c, http.StatusInternalServerError, "Server error")
		return
	}

	var existing models.User
	err := ac.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		utils.RespondMessage(c, http.StatusOK, "User already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.ErrorLogger.Printf("Register lookup failed for %s: %v", req.Email, err)
		utils.RespondMessage(c, http.StatusInternalServerError, "Server error")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.ErrorLogger.Printf("Register hash failed: %v", err)
		utils.RespondMessage(c, http.StatusInternalServerError, "Server error")
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against a concurrent registration.
			utils.RespondMessage(c, http.StatusOK, "User already exists")
			return
		}
		utils.ErrorLogger.Printf("Register insert failed for %s: %v", req.Email, err)
		utils.RespondMessage(c, http.StatusInternalServerError, "Server error")
		return
	}

	utils.InfoLogger.Printf("New user registered: %s", user.Email)
	utils.RespondMessage(c, http.StatusOK, "User registered successfully")
}

// Login checks credentials and answers with a welcome message. Both the
// not-found and wrong-password outcomes stay HTTP 200; the deployed frontend
// switches on the message text, not the status code.
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondMessage(c, http.StatusInternalServerError, "Server error")
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondMessage(c, http.StatusOK, "User not found")
			return
		}
		utils.ErrorLogger.Printf("Login lookup failed for %s: %v", req.Email, err)
		utils.RespondMessage(c, http.StatusInternalServerError, "Server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.RespondMessage(c, http.StatusOK, "Invalid credentials")
		return
	}

	utils.InfoLogger.Printf("Login successful for %s", user.Email)
	utils.RespondMessage(c, http.StatusOK, fmt.Sprintf("Welcome, %s", user.Name))
}
