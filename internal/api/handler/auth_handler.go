package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/adriit/roledash/internal/api/metrics"
	"github.com/adriit/roledash/internal/api/middleware"
	"github.com/adriit/roledash/internal/core/domain"
	"github.com/adriit/roledash/internal/core/ports"
)

const (
	msgLoginFieldsRequired  = "Email and password are required"
	msgSignupFieldsRequired = "Email, password, and username are required"
	msgInvalidCredentials   = "Invalid credentials"
	msgLoginSuccess         = "Login successful"
	msgSignupSuccess        = "Account created successfully"
	msgLogoutSuccess        = "Logged out successfully"
	msgUsernameNotString    = "Username is required and must be a string"
	msgUsernameEmpty        = "Username cannot be empty"
	msgUsernameExists       = "Username already exists"
	msgUsernameAvailable    = "Username is available"
)

type AuthHandler struct {
	auth     ports.AuthService
	users    ports.UserService
	tokens   ports.TokenService
	sessions ports.SessionResolver
	cookie   middleware.SessionCookie
	log      zerolog.Logger
}

func NewAuthHandler(
	auth ports.AuthService,
	users ports.UserService,
	tokens ports.TokenService,
	sessions ports.SessionResolver,
	cookie middleware.SessionCookie,
	log zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{auth: auth, users: users, tokens: tokens, sessions: sessions, cookie: cookie, log: log}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Username string `json:"username" validate:"required"`
	Role     string `json:"role"`
}

type checkUsernameRequest struct {
	Username *string `json:"username"`
}

type checkUsernameResponse struct {
	Exists  bool   `json:"exists"`
	Message string `json:"message"`
}

// Login authenticates a user and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  result
// @Failure      400   {object}  result
// @Failure      401   {object}  result
// @Failure      429   {object}  result
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil || c.Validate(&req) != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("bad_request").Inc()
		return fail(c, http.StatusBadRequest, msgLoginFieldsRequired)
	}

	user, err := h.auth.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
			return fail(c, http.StatusUnauthorized, msgInvalidCredentials)
		}
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return err
	}

	if err := h.startSession(c, user); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, result{Success: true, Message: msgLoginSuccess, User: user})
}

// Signup creates an account and logs the new user in.
//
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup form"
// @Success      201   {object}  result
// @Failure      400   {object}  result
// @Failure      429   {object}  result
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil || c.Validate(&req) != nil {
		metrics.SignupsTotal.WithLabelValues("validation").Inc()
		return fail(c, http.StatusBadRequest, msgSignupFieldsRequired)
	}

	user, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
		Role:     req.Role,
	})
	if err != nil {
		var (
			verr *domain.ValidationError
			cerr *domain.ConflictError
		)
		switch {
		case errors.As(err, &verr):
			metrics.SignupsTotal.WithLabelValues("validation").Inc()
			return fail(c, http.StatusBadRequest, verr.Message)
		case errors.As(err, &cerr):
			metrics.SignupsTotal.WithLabelValues("conflict").Inc()
			return fail(c, http.StatusBadRequest, cerr.Message)
		}
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return err
	}

	if err := h.startSession(c, user); err != nil {
		return err
	}
	metrics.SignupsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, result{Success: true, Message: msgSignupSuccess, User: user})
}

// Logout clears the session cookie. It succeeds without a session too.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  result
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.cookie.Clear(c)
	metrics.LogoutsTotal.Inc()
	return c.JSON(http.StatusOK, result{Success: true, Message: msgLogoutSuccess})
}

// Session reports who the session cookie belongs to.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.SessionView
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, h.sessions.Resolve(h.cookie.Token(c)))
}

// CheckUsername reports whether a username is taken.
//
// @Summary      Check username availability
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      checkUsernameRequest  true  "Username"
// @Success      200   {object}  checkUsernameResponse
// @Failure      400   {object}  checkUsernameResponse
// @Router       /auth/check-username [post]
func (h *AuthHandler) CheckUsername(c echo.Context) error {
	var req checkUsernameRequest
	if err := c.Bind(&req); err != nil || req.Username == nil {
		return c.JSON(http.StatusBadRequest, checkUsernameResponse{Message: msgUsernameNotString})
	}
	if strings.TrimSpace(*req.Username) == "" {
		return c.JSON(http.StatusBadRequest, checkUsernameResponse{Message: msgUsernameEmpty})
	}

	exists, err := h.users.UsernameExists(c.Request().Context(), *req.Username)
	if err != nil {
		return err
	}
	msg := msgUsernameAvailable
	if exists {
		msg = msgUsernameExists
	}
	return c.JSON(http.StatusOK, checkUsernameResponse{Exists: exists, Message: msg})
}

func (h *AuthHandler) startSession(c echo.Context, user *domain.PublicUser) error {
	token, err := h.tokens.Sign(domain.IdentityOf(user))
	if err != nil {
		return err
	}
	h.cookie.Set(c, token)
	h.log.Debug().Str("user_id", user.ID).Msg("session started")
	return nil
}
