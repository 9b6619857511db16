package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-management/internal/config"
	"github.com/iliyamo/hotel-management/internal/model"
	"github.com/iliyamo/hotel-management/internal/repository"
	"github.com/iliyamo/hotel-management/internal/utils"
)

// AuthHandler bundles dependencies for registration and login.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, users UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

// ----- DTOs -----

// registerReq deliberately has no role field: whatever a client sends for
// "role" is discarded during binding and every new account is a guest.
type registerReq struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	DateOfBirth string `json:"date_of_birth"`
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userPart struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type authResp struct {
	Message string   `json:"message"`
	UserID  uint64   `json:"userId"`
	Token   string   `json:"token"`
	User    userPart `json:"user"`
}

// Register creates a guest account and returns a signed token immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)
	if req.Username == "" || req.Password == "" || req.Email == "" || req.FullName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "username, password, email, and full name are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	uid, err := h.Users.Create(ctx, repository.NewUser{
		Username:    req.Username,
		Password:    req.Password,
		Email:       req.Email,
		FullName:    req.FullName,
		Phone:       req.Phone,
		Address:     req.Address,
		DateOfBirth: req.DateOfBirth,
	}, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrUserExists {
			return c.JSON(http.StatusConflict, echo.Map{"message": "username or email already exists"})
		}
		c.Logger().Errorf("register: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "error registering user"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, uid, req.Username, model.RoleGuest, h.Cfg.AccessTTLMin)
	if err != nil {
		c.Logger().Errorf("register: sign token: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "error registering user"})
	}

	return c.JSON(http.StatusCreated, authResp{
		Message: "user registered successfully",
		UserID:  uid,
		Token:   access.Token,
		User:    userPart{Username: req.Username, Role: model.RoleGuest},
	})
}

// Login verifies credentials and returns a fresh token. A wrong password
// and an unknown username produce byte-identical responses so usernames
// cannot be probed.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "username and password are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid username or password"})
		}
		c.Logger().Errorf("login: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "error logging in"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid username or password"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Username, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		c.Logger().Errorf("login: sign token: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "error logging in"})
	}

	return c.JSON(http.StatusOK, authResp{
		Message: "login successful",
		UserID:  u.ID,
		Token:   access.Token,
		User:    userPart{Username: u.Username, Role: u.Role},
	})
}
