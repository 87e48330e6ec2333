package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"apiaryadmin/internal/config"
	"apiaryadmin/internal/domain"
	"apiaryadmin/internal/middleware"
	"apiaryadmin/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// CookieConfig carries the delivery settings for the refresh cookie.
type CookieConfig struct {
	Secure   bool
	SameSite string
	Path     string
}

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
	cookies CookieConfig
}

// NewHandler creates a new auth handler with injected service
func NewHandler(service *Service, cookies CookieConfig) *Handler {
	return &Handler{
		service: service,
		cookies: cookies,
	}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/logout", h.Logout)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	userGroup := protected.Group("/users")
	{
		userGroup.GET("/me", h.GetMe)
	}

	adminGroup := protected.Group("/admin", middleware.AdminOnly())
	{
		adminGroup.GET("/users", h.ListUsers)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			response.Error(c, http.StatusConflict, "USERNAME_TAKEN", "This username is already registered")
			return
		}
		response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register user")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"user": toUserPublic(user),
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Username or password is incorrect")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		return
	}

	h.setRefreshCookie(c, result.RefreshToken, result.ExpiresAt)

	response.Success(c, http.StatusOK, gin.H{
		"user":         toUserPublic(result.User),
		"access_token": result.AccessToken,
	})
}

func (h *Handler) Refresh(c *gin.Context) {
	refreshRaw, err := c.Cookie(config.RefreshCookieName)
	if err != nil || refreshRaw == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Not authenticated")
		return
	}

	result, err := h.service.Refresh(c.Request.Context(), refreshRaw)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			h.clearRefreshCookie(c)
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Not authenticated")
			return
		}
		response.Error(c, http.StatusInternalServerError, "REFRESH_FAILED", "Failed to refresh session")
		return
	}

	h.setRefreshCookie(c, result.RefreshToken, result.ExpiresAt)

	response.Success(c, http.StatusOK, gin.H{
		"access_token": result.AccessToken,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	refreshRaw, _ := c.Cookie(config.RefreshCookieName)

	if refreshRaw != "" {
		if err := h.service.Logout(c.Request.Context(), refreshRaw); err != nil {
			response.Error(c, http.StatusInternalServerError, "LOGOUT_FAILED", "Failed to logout")
			return
		}
	}

	h.clearRefreshCookie(c)
	response.Success(c, http.StatusOK, gin.H{"message": "logged out"})
}

func (h *Handler) GetMe(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Not authenticated")
		return
	}

	user, err := h.service.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": toUserPublic(user)})
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list users")
		return
	}

	public := make([]UserPublic, 0, len(users))
	for i := range users {
		public = append(public, toUserPublic(&users[i]))
	}

	response.Success(c, http.StatusOK, gin.H{"users": public})
}

func (h *Handler) setRefreshCookie(c *gin.Context, value string, expiresAt time.Time) {
	c.SetSameSite(parseSameSite(h.cookies.SameSite))
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetCookie(config.RefreshCookieName, value, maxAge, h.cookies.Path, "", h.cookies.Secure, true)
}

func (h *Handler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(parseSameSite(h.cookies.SameSite))
	c.SetCookie(config.RefreshCookieName, "", -1, h.cookies.Path, "", h.cookies.Secure, true)
}

func parseSameSite(v string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func toUserPublic(u *domain.User) UserPublic {
	return UserPublic{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
	}
}
