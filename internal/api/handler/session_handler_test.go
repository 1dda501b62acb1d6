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

	"github.com/consulta-ja/booking-system/internal/core/domain"
	"github.com/consulta-ja/booking-system/internal/core/ports"
)

type stubSessionService struct {
	signInFn  func(ctx context.Context, email, password string) (ports.SessionState, error)
	signOutFn func() ports.SessionState
	state     ports.SessionState
}

func (s *stubSessionService) SignIn(ctx context.Context, email, password string) (ports.SessionState, error) {
	return s.signInFn(ctx, email, password)
}

func (s *stubSessionService) SignOut() ports.SessionState {
	return s.signOutFn()
}

func (s *stubSessionService) State() ports.SessionState { return s.state }

func (s *stubSessionService) Subscribe(func(ports.SessionState)) {}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestSessionHandler_SignIn_AdminNotice(t *testing.T) {
	e := newEcho()
	stub := &stubSessionService{
		signInFn: func(_ context.Context, email, password string) (ports.SessionState, error) {
			if email != "dionathanma@hotmail.com" || password != "pw" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			identity := &domain.Identity{ID: "1", Name: domain.AdminName, Email: email, Role: domain.RoleAdmin}
			return ports.SessionState{Identity: identity, IsAdmin: true}, nil
		},
	}
	h := NewSessionHandler(stub)

	body := strings.NewReader(`{"email":"dionathanma@hotmail.com","password":"pw"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/session", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SignIn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["is_admin"] != true {
		t.Fatalf("expected is_admin, got %+v", resp)
	}
	if notice, _ := resp["admin_notice"].(string); notice == "" {
		t.Fatalf("expected one-time admin notice")
	}
}

func TestSessionHandler_SignIn_PatientHasNoNotice(t *testing.T) {
	e := newEcho()
	stub := &stubSessionService{
		signInFn: func(_ context.Context, email, _ string) (ports.SessionState, error) {
			identity := &domain.Identity{ID: "2", Name: "maria", Email: email, Role: domain.RolePatient}
			return ports.SessionState{Identity: identity}, nil
		},
	}
	h := NewSessionHandler(stub)

	body := strings.NewReader(`{"email":"maria@example.com","password":"pw"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/session", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SignIn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, present := resp["admin_notice"]; present {
		t.Fatalf("patient sign-in must not carry the admin notice")
	}
}

func TestSessionHandler_SignIn_RejectionPropagates(t *testing.T) {
	e := newEcho()
	stub := &stubSessionService{
		signInFn: func(_ context.Context, _, _ string) (ports.SessionState, error) {
			return ports.SessionState{}, domain.ErrSignInFailed
		},
	}
	h := NewSessionHandler(stub)

	body := strings.NewReader(`{"email":"maria@example.com","password":"pw"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/session", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SignIn(c); err != domain.ErrSignInFailed {
		t.Fatalf("expected ErrSignInFailed to propagate, got %v", err)
	}
}

func TestSessionHandler_SignIn_MissingFields(t *testing.T) {
	e := newEcho()
	h := NewSessionHandler(&stubSessionService{
		signInFn: func(_ context.Context, _, _ string) (ports.SessionState, error) {
			t.Fatalf("service must not be called")
			return ports.SessionState{}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/session", strings.NewReader(`{"email":"a@b.c"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.SignIn(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestSessionHandler_SignOut(t *testing.T) {
	e := newEcho()
	stub := &stubSessionService{
		signOutFn: func() ports.SessionState { return ports.SessionState{} },
	}
	h := NewSessionHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/v1/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SignOut(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["identity"] != nil || resp["is_admin"] != false {
		t.Fatalf("expected cleared state, got %+v", resp)
	}
}
