package handler

import (
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/corphq/api/internal/api/metrics"
	"github.com/corphq/api/internal/core/domain"
	"github.com/corphq/api/internal/core/ports"
)

// UserHandler serves registration, login, and logout.
type UserHandler struct {
	users    ports.UserService
	sessions ports.SessionService
	gate     ports.LoginGate
	log      zerolog.Logger
}

func NewUserHandler(users ports.UserService, sessions ports.SessionService, gate ports.LoginGate, log zerolog.Logger) *UserHandler {
	return &UserHandler{users: users, sessions: sessions, gate: gate, log: log}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	// Short aliases kept for older clients.
	Un string `json:"un"`
	Pw string `json:"pw"`
}

type loginResponse struct {
	Token   string `json:"token"`
	Expires string `json:"expires"`
}

type logoutRequest struct {
	Token string `json:"token"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         user
// @Accept       json
// @Success      201
// @Failure      400  {object}  map[string]string
// @Router       /register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	err := h.users.Register(c.Request().Context(), ports.Registration{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"message": ve.Error()})
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.NoContent(http.StatusCreated)
}

// Login verifies credentials and issues a session token.
//
// @Summary      Login
// @Tags         user
// @Accept       json
// @Produce      json
// @Success      200  {object}  loginResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      429  {object}  map[string]string
// @Router       /login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}
	if req.Username == "" {
		req.Username = req.Un
	}
	if req.Password == "" {
		req.Password = req.Pw
	}

	ctx := c.Request().Context()

	allowed, err := h.gate.Allow(ctx, c.RealIP())
	if err != nil {
		h.log.Warn().Err(err).Msg("login throttle unavailable, allowing attempt")
	} else if !allowed {
		metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		return c.JSON(http.StatusTooManyRequests, map[string]string{"message": domain.ErrTooManyLoginAttempts.Error()})
	}

	ok, err := h.users.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return err
	}
	if !ok {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": domain.ErrInvalidCredentials.Error()})
	}

	ticket, err := h.sessions.Create(ctx, ports.SessionRequest{
		Username:     req.Username,
		AddressChain: originatorChain(c),
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": ve.Error()})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token:   ticket.Token,
		Expires: ticket.ExpireAt.UTC().Format(time.RFC3339),
	})
}

// Logout invalidates the supplied session token. Always succeeds.
//
// @Summary      Logout
// @Tags         user
// @Accept       json
// @Success      200
// @Router       /logout [post]
func (h *UserHandler) Logout(c echo.Context) error {
	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid payload"})
	}

	if err := h.sessions.Expire(c.Request().Context(), req.Token); err != nil {
		return err
	}

	metrics.SessionsExpiredTotal.Inc()
	return c.NoContent(http.StatusOK)
}

// originatorChain assembles the request's provenance: the peer address first,
// then any proxy-forwarded hops, comma-separated.
func originatorChain(c echo.Context) string {
	host, _, err := net.SplitHostPort(c.Request().RemoteAddr)
	if err != nil {
		host = c.Request().RemoteAddr
	}

	chain := host
	if forwarded := c.Request().Header.Get(echo.HeaderXForwardedFor); forwarded != "" {
		chain += ", " + forwarded
	}
	return chain
}
