// internal/app/handler/user.go
//
// Регистрация, аутентификация и профиль пользователя
package handler

import (
	"errors"
	"net/http"

	"MarketStat-Backend/internal/app/config"
	"MarketStat-Backend/internal/app/ds"
	"MarketStat-Backend/internal/app/middleware"
	"MarketStat-Backend/internal/app/repository"
	"MarketStat-Backend/internal/app/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	cfg  *config.Config
	repo *repository.Repository
}

func NewUserHandler(cfg *config.Config, repo *repository.Repository) *UserHandler {
	return &UserHandler{
		cfg:  cfg,
		repo: repo,
	}
}

type RegisterRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=255"`
	Password string `json:"password" binding:"required,min=6,max=255"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UpdateProfileRequest struct {
	Login    *string `json:"login,omitempty"`
	Password *string `json:"password,omitempty"`
}

// issueTokens генерирует пару токенов и сохраняет refresh token в Redis
func (h *UserHandler) issueTokens(ctx *gin.Context, user *ds.Users) (*TokenResponse, error) {
	accessToken, err := utils.GenerateAccessToken(*user, h.cfg.JWTSecret, h.cfg.JWTAccessExpire)
	if err != nil {
		return nil, err
	}

	refreshToken, err := utils.GenerateRefreshToken(*user, h.cfg.JWTSecret, h.cfg.JWTRefreshExpire)
	if err != nil {
		return nil, err
	}

	if redisClient := h.repo.GetRedisClient(); redisClient != nil {
		if err := redisClient.SaveRefreshToken(ctx.Request.Context(), user.UserID, refreshToken, h.cfg.JWTRefreshExpire); err != nil {
			logrus.Warnf("Failed to save refresh token: %v", err)
		}
	}

	return &TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(h.cfg.JWTAccessExpire.Seconds()),
	}, nil
}

// Register godoc
// @Summary Register new user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /users/register [post]
func (h *UserHandler) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	user := &ds.Users{
		Login:    req.Login,
		Password: req.Password,
	}
	if err := h.repo.User.RegisterUser(user); err != nil {
		if errors.Is(err, repository.ErrLoginTaken) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Login already taken"})
			return
		}
		logrus.Error("Failed to register user: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "User registered",
		"user_id": user.UserID,
		"login":   user.Login,
	})
}

// Login godoc
// @Summary Authenticate user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} map[string]string
// @Router /users/login [post]
func (h *UserHandler) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	user, err := h.repo.User.AuthenticateUser(req.Login, req.Password)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid login or password"})
		return
	}

	tokens, err := h.issueTokens(ctx, user)
	if err != nil {
		logrus.Error("Failed to generate tokens: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}
	ctx.JSON(http.StatusOK, tokens)
}

// RefreshToken godoc
// @Summary Refresh access token
// @Tags Users
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} map[string]string
// @Router /users/refresh [post]
func (h *UserHandler) RefreshToken(ctx *gin.Context) {
	var req RefreshRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	claims, err := utils.ValidateToken(req.RefreshToken, h.cfg.JWTSecret)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	// Сверяем с сохраненным токеном: после logout или повторного refresh старый токен недействителен
	if redisClient := h.repo.GetRedisClient(); redisClient != nil {
		stored, err := redisClient.GetRefreshToken(ctx.Request.Context(), claims.UserID)
		if err != nil || stored != req.RefreshToken {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token revoked"})
			return
		}
	}

	user, err := h.repo.User.GetUserProfile(claims.UserID)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	tokens, err := h.issueTokens(ctx, user)
	if err != nil {
		logrus.Error("Failed to generate tokens: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}
	ctx.JSON(http.StatusOK, tokens)
}

// Logout godoc
// @Summary Logout user
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /users/logout [post]
func (h *UserHandler) Logout(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	redisClient := h.repo.GetRedisClient()
	if redisClient != nil {
		// Помещаем текущий access token в черный список до истечения срока
		if token, exists := ctx.Get("token"); exists {
			if tokenStr, ok := token.(string); ok {
				if err := redisClient.AddToBlacklist(ctx.Request.Context(), tokenStr, h.cfg.JWTAccessExpire); err != nil {
					logrus.Warnf("Failed to blacklist token: %v", err)
				}
			}
		}
		if err := redisClient.DeleteRefreshToken(ctx.Request.Context(), userID); err != nil {
			logrus.Warnf("Failed to delete refresh token: %v", err)
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetProfile godoc
// @Summary Get user profile
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ds.Users
// @Failure 404 {object} map[string]string
// @Router /users/profile [get]
func (h *UserHandler) GetProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.repo.User.GetUserProfile(userID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update user profile
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /users/profile [put]
func (h *UserHandler) UpdateProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}
	if req.Login == nil && req.Password == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}
	if req.Password != nil && len(*req.Password) < 6 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
		return
	}

	if err := h.repo.User.UpdateUserProfile(userID, req.Login, req.Password); err != nil {
		logrus.Error("Failed to update profile: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}
