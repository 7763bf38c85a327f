package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/naai-app/naai-api/internal/auth"
	domain "github.com/naai-app/naai-api/internal/domain/account"
	"github.com/naai-app/naai-api/internal/httperr"
	"github.com/naai-app/naai-api/internal/middleware"
	ucAccount "github.com/naai-app/naai-api/internal/usecase/account"
)

type AuthHandler struct {
	signup *ucAccount.Signup
	login  *ucAccount.Login
	repo   domain.Repository
	tokens *auth.TokenService
	log    *zap.Logger
}

func NewAuthHandler(
	signup *ucAccount.Signup,
	login *ucAccount.Login,
	repo domain.Repository,
	tokens *auth.TokenService,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		signup: signup,
		login:  login,
		repo:   repo,
		tokens: tokens,
		log:    log,
	}
}

// --------- Requests ---------

type SignupRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Role     string  `json:"role" binding:"omitempty,oneof=customer barber"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	user, err := h.signup.Execute(c.Request.Context(), ucAccount.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		if httperr.IsBusiness(err, "user_already_exists") {
			httperr.BadRequest(c, "User with this email already exists")
			return
		}
		failStorage(c, h.log, "signup", err)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		h.log.Error("signup: token issue", zap.Error(err))
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user.Public(),
		"token":   token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	user, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_credentials") {
			httperr.Unauthorized(c, "Invalid email or password")
			return
		}
		failStorage(c, h.log, "login", err)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		h.log.Error("login: token issue", zap.Error(err))
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user.Public(),
		"token":   token,
	})
}

// Me re-fetches the authenticated user so an account deleted after token
// issuance is reported as gone rather than echoed back from stale claims.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	user, err := h.repo.FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "User not found")
			return
		}
		failStorage(c, h.log, "me", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}
