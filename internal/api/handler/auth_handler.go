package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/worknest/workforce-api/internal/core/ports"
)

// AuthHandler handles registration, login, and the current-employee lookup.
type AuthHandler struct {
	authService ports.AuthService
	employees   ports.EmployeeRepository
}

func NewAuthHandler(authService ports.AuthService, employees ports.EmployeeRepository) *AuthHandler {
	return &AuthHandler{authService: authService, employees: employees}
}

// Register creates a new employee account and returns it with a token.
//
// @Summary      Register a new employee
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Employee registration details"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	employee, token, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		FullName:     req.FullName,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		Designation:  req.Designation,
		Password:     req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, envelope(authData{
		Employee: toEmployeePayload(employee),
		Token:    token,
	}))
}

// Login authenticates an employee and returns a token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  dataResponse
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	employee, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope(authData{
		Employee: toEmployeePayload(employee),
		Token:    token,
	}))
}

// Me returns the authenticated employee's profile.
//
// @Summary      Current employee
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	employee, err := h.employees.FindByID(c.Request().Context(), principal.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope(map[string]any{
		"employee": toEmployeePayload(employee),
	}))
}
