package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhupeshkr/sebi-trading/internal/domain"
	"github.com/bhupeshkr/sebi-trading/internal/service"
)

type AuthHandler struct {
	userService UserServicer
}

func NewAuthHandler(userService UserServicer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

type SignupParams struct {
	Username string `binding:"required,max_bytes=255" json:"username"`
	Email    string `binding:"required,max_bytes=255" json:"email"`
	Phone    string `binding:"required,max_bytes=32" json:"phone"`
	Password string `binding:"required" json:"password"`
	Name     string `binding:"required,max_bytes=255" json:"name"`
}

// Signup POST AuthSignupRoute. Creates the user and returns its id.
func (h *AuthHandler) Signup(c *gin.Context) {
	var params SignupParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		respondError(c, http.StatusBadRequest, "All fields are required", nil)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, createErr := h.userService.Register(ctx, service.RegisterUserArgs{
		Username: params.Username,
		Email:    params.Email,
		Phone:    params.Phone,
		Name:     params.Name,
		Password: params.Password,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			respondError(c, http.StatusBadRequest, "User with this username already exists", nil)
			return
		}
		respondInternalError(c, createErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User created successfully",
		"userId":  user.ID,
	})
}

type LoginParams struct {
	Username string `binding:"required" json:"username"`
	Password string `binding:"required" json:"password"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

// Login POST AuthLoginRoute. Unknown username and wrong password return the
// same message on purpose: the response must not reveal which usernames
// exist.
func (h *AuthHandler) Login(c *gin.Context) {
	var params LoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		respondError(c, http.StatusBadRequest, "Username and password are required", nil)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, token, err := h.userService.Login(ctx, service.LoginUserArgs{
		Username: params.Username,
		Password: params.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			respondError(c, http.StatusUnauthorized, "Invalid username or password", nil)
			return
		}
		respondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user": UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Name:     user.Name,
		},
	})
}
