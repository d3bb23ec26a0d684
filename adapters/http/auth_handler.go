package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/nhattranq/profilehub/internal/application/usecase/auth"
	"github.com/nhattranq/profilehub/internal/domain/user"
	"github.com/nhattranq/profilehub/pkg/apperror"
)

type AuthHandler struct {
	loginUseCase    *authUC.LoginUseCase
	registerUseCase *authUC.RegisterUseCase
	usernameUseCase *authUC.UpdateUsernameUseCase
	resetUseCase    *authUC.PasswordResetUseCase
	userRepo        user.Repository
}

func NewAuthHandler(
	loginUC *authUC.LoginUseCase,
	registerUC *authUC.RegisterUseCase,
	usernameUC *authUC.UpdateUsernameUseCase,
	resetUC *authUC.PasswordResetUseCase,
	userRepo user.Repository,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:    loginUC,
		registerUseCase: registerUC,
		usernameUseCase: usernameUC,
		resetUseCase:    resetUC,
		userRepo:        userRepo,
	}
}

type signinRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Signin(c *gin.Context) {
	var req signinRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), authUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, authUC.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Email or password is incorrect"})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": output.AccessToken})
}

type signupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	output, err := h.registerUseCase.Execute(c.Request.Context(), authUC.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": output.AccessToken})
}

// GetUserByUsername resolves a routing key to its public user record. This is
// the lookup clients make before fetching the aggregate.
func (h *AuthHandler) GetUserByUsername(c *gin.Context) {
	username := c.Param("username")

	u, err := h.userRepo.FindByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToUserDTO(u))
}

type updateUsernameRequest struct {
	Username string `json:"username" binding:"required"`
}

func (h *AuthHandler) UpdateUsername(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req updateUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	u, err := h.usernameUseCase.Execute(c.Request.Context(), authUC.UpdateUsernameInput{
		UserID:   userID,
		Username: req.Username,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToUserDTO(u))
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	if err := h.resetUseCase.ExecuteForgot(c.Request.Context(), req.Email); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If that email is registered, a reset link has been sent."})
}

type resetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	if err := h.resetUseCase.ExecuteReset(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset."})
}
