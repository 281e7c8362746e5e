package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gramsathi/gramsathi-api/internal/config"
	"github.com/gramsathi/gramsathi-api/internal/middleware"
	"github.com/gramsathi/gramsathi-api/internal/model"
	"github.com/gramsathi/gramsathi-api/internal/utils"
)

// Demo account.  It is the only login the API accepts.
const (
	demoUsername = "demo"
	demoPassword = "demo123"
	demoRole     = "USER"
)

// demoProfile is served to every caller of /profile.
var demoProfile = model.Profile{
	Username: "demo_user",
	Email:    "demo@gramsathi.com",
	District: "Sample District",
	Phone:    "+91-9876543210",
}

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg      config.Config
	demoHash string
}

// NewAuthHandler hashes the demo password once so logins compare against a
// bcrypt hash rather than plain text.
func NewAuthHandler(cfg config.Config) (*AuthHandler, error) {
	hash, err := utils.HashPassword(demoPassword, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	return &AuthHandler{Cfg: cfg, demoHash: hash}, nil
}

// ----- DTOs -----

type registerReq struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone"`
	District string `json:"district"`
}

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResp struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Register acknowledges a sign-up.  Nothing is stored.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if handled, err := bindValid(c, &req); handled {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "User registered successfully",
		"user_id":  "temp_user_id",
		"username": req.Username,
	})
}

// Login issues an access token for the demo account.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Username != demoUsername || !utils.VerifyPassword(h.demoHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, demoUsername, demoRole, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusOK, tokenResp{AccessToken: access.Token, TokenType: "bearer", ExpiresAt: access.Exp})
}

// Profile returns the static demo profile regardless of caller.
func (h *AuthHandler) Profile(c echo.Context) error {
	return c.JSON(http.StatusOK, demoProfile)
}

// Me echoes the identity carried by the bearer token.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"user_id": middleware.CurrentUserID(c),
		"role":    middleware.CurrentRole(c),
	})
}
