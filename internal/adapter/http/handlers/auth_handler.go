package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	request "swiftprints/internal/adapter/http/dto/request"
	response "swiftprints/internal/adapter/http/dto/response"
	"swiftprints/internal/usecase"
	"swiftprints/pkg"

	"github.com/gin-gonic/gin"
)

// usernameContextKey is where RequireAuth stores the verified identity.
const usernameContextKey = "auth.username"

var (
	errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)
	errUnauthorized        = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
)

// AuthHandler handles admin login and token verification.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	token, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainError("LOGIN_FAILED", "Login failed", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	expiresIn := int64(time.Until(token.ExpiresAt).Seconds())
	c.JSON(http.StatusOK, response.FromAuthToken(token, expiresIn))
}

func (h *AuthHandler) Me(c *gin.Context) {
	username := c.GetString(usernameContextKey)
	if username == "" {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MeResponse{Username: username})
}

// RequireAuth guards admin routes with a bearer JWT.
func (h *AuthHandler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		username, err := h.usecase.Verify(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(usernameContextKey, username)
		c.Next()
	}
}
