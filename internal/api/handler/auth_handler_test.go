package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/worknest/workforce-api/internal/api/middleware"
	"github.com/worknest/workforce-api/internal/core/domain"
	"github.com/worknest/workforce-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.Employee, string, error)
	loginFn    func(ctx context.Context, email, password string) (*domain.Employee, string, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Employee, string, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.Employee, string, error) {
	return s.loginFn(ctx, email, password)
}

type stubEmployeeRepo struct {
	employees map[string]*domain.Employee
}

func (r *stubEmployeeRepo) Create(context.Context, *domain.Employee) (*domain.Employee, error) {
	return nil, nil
}

func (r *stubEmployeeRepo) FindByEmail(context.Context, string) (*domain.Employee, error) {
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	if e, ok := r.employees[id]; ok {
		return e, nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) CountByIDs(context.Context, []string) (int64, error) {
	return 0, nil
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func setPrincipal(c echo.Context, p domain.Principal) {
	c.Set(middleware.PrincipalKey, p)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*domain.Employee, string, error) {
			if input.FullName != "Ada Lovelace" || input.Email != "ada@example.com" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Employee{
				ID:          "emp-1",
				FullName:    input.FullName,
				Email:       input.Email,
				Designation: input.Designation,
			}, "token123", nil
		},
	}
	handler := NewAuthHandler(stub, &stubEmployeeRepo{})

	c, rec := newJSONContext(http.MethodPost, "/auth/register",
		`{"fullName":"Ada Lovelace","email":"ada@example.com","designation":"manager","password":"s3cret"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Employee employeePayload `json:"employee"`
			Token    string          `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success {
		t.Error("expected success envelope")
	}
	if resp.Data.Token != "token123" {
		t.Errorf("token = %q", resp.Data.Token)
	}
	if resp.Data.Employee.Role != domain.RoleManager {
		t.Errorf("role = %q, want %q", resp.Data.Employee.Role, domain.RoleManager)
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.Employee, string, error) {
			t.Fatal("service must not be called on invalid payload")
			return nil, "", nil
		},
	}
	handler := NewAuthHandler(stub, &stubEmployeeRepo{})

	// Missing password, malformed email.
	c, _ := newJSONContext(http.MethodPost, "/auth/register", `{"fullName":"Ada","email":"not-an-email"}`)

	err := handler.Register(c)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *domain.ValidationError", err)
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.Employee, string, error) {
			return nil, "", domain.ErrEmployeeExists
		},
	}
	handler := NewAuthHandler(stub, &stubEmployeeRepo{})

	c, _ := newJSONContext(http.MethodPost, "/auth/register",
		`{"fullName":"Ada","email":"ada@example.com","password":"s3cret"}`)

	if err := handler.Register(c); !errors.Is(err, domain.ErrEmployeeExists) {
		t.Errorf("error = %v, want ErrEmployeeExists", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*domain.Employee, string, error) {
			if email != "ada@example.com" || password != "s3cret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.Employee{ID: "emp-1", Email: email, Designation: "developer"}, "token123", nil
		},
	}
	handler := NewAuthHandler(stub, &stubEmployeeRepo{})

	c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"s3cret"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"token":"token123"`) {
		t.Errorf("token missing from response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*domain.Employee, string, error) {
			return nil, "", domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, &stubEmployeeRepo{})

	c, _ := newJSONContext(http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"bad"}`)

	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*domain.Employee, string, error) {
			t.Fatal("service must not be called on malformed body")
			return nil, "", nil
		},
	}
	handler := NewAuthHandler(stub, &stubEmployeeRepo{})

	c, _ := newJSONContext(http.MethodPost, "/auth/login", "{")

	err := handler.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("error = %v, want 400", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	repo := &stubEmployeeRepo{employees: map[string]*domain.Employee{
		"emp-1": {ID: "emp-1", FullName: "Ada", Email: "ada@example.com", Designation: "admin", PasswordHash: "hash"},
	}}
	handler := NewAuthHandler(&stubAuthService{}, repo)

	c, rec := newJSONContext(http.MethodGet, "/auth/me", "")
	setPrincipal(c, domain.Principal{ID: "emp-1", Role: domain.RoleAdmin})

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "hash") {
		t.Error("response must never carry the password hash")
	}
	if !strings.Contains(rec.Body.String(), `"role":"admin"`) {
		t.Errorf("derived role missing: %s", rec.Body.String())
	}
}

func TestAuthHandler_Me_NoPrincipal(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{}, &stubEmployeeRepo{})

	c, _ := newJSONContext(http.MethodGet, "/auth/me", "")

	err := handler.Me(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("error = %v, want 401", err)
	}
}
