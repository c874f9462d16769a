package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/treechess/backend/internal/auth"
	"github.com/treechess/backend/internal/store"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authHandler struct {
	svc *auth.Service
}

func (h *authHandler) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if !requireField(c, "username", req.Username) {
		return nil
	}
	if !requireField(c, "password", req.Password) {
		return nil
	}

	resp, err := h.svc.Register(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidUsername), errors.Is(err, auth.ErrPasswordTooShort):
			return badRequest(c, err.Error())
		case errors.Is(err, store.ErrUsernameExists):
			return errorResponse(c, http.StatusConflict, "username already taken")
		default:
			return internalError(c, "failed to register")
		}
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *authHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if !requireField(c, "username", req.Username) {
		return nil
	}
	if !requireField(c, "password", req.Password) {
		return nil
	}

	resp, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return errorResponse(c, http.StatusUnauthorized, "invalid credentials")
		}
		return internalError(c, "failed to login")
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *authHandler) me(c echo.Context) error {
	userID := c.Get("userID").(string)
	user, err := h.svc.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return errorResponse(c, http.StatusUnauthorized, "user not found")
		}
		return internalError(c, "failed to get user")
	}
	return c.JSON(http.StatusOK, user)
}
