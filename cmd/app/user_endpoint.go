package main

import (
	"net/http"

	"SweetOrderAPI/internal/middleware"
	"SweetOrderAPI/internal/model"
	"SweetOrderAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Whatsapp string `json:"whatsapp" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// authResponse is the user plus a session token; the password field never
// serializes.
type authResponse struct {
	*model.User
	Token string `json:"token"`
}

func registerUserRoutes(g *echo.Group, as *services.AuthService) {
	g.POST("/users/register", func(c echo.Context) error {
		req := new(registerRequest)
		if err := bindAndValidate(c, req); err != nil {
			return respondError(c, err)
		}
		user, err := as.Register(c.Request().Context(), &model.User{
			Username: req.Username,
			Password: req.Password,
			Name:     req.Name,
			Email:    req.Email,
			Whatsapp: req.Whatsapp,
		})
		if err != nil {
			return respondError(c, err)
		}
		token, err := middleware.GenerateToken(user.ID, user.Username, 72)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusCreated, authResponse{User: user, Token: token})
	})

	g.POST("/users/login", func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid input data"})
		}
		if req.Username == "" || req.Password == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Username and password are required"})
		}
		user, err := as.Login(c.Request().Context(), req.Username, req.Password)
		if err != nil {
			return respondError(c, err)
		}
		token, err := middleware.GenerateToken(user.ID, user.Username, 72)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, authResponse{User: user, Token: token})
	})
}
