package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
)

func TestSessionHandler_Login(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, studentID int64, password string) (string, error) {
			if studentID != 1 || password != "x" {
				t.Fatalf("unexpected args: %d %q", studentID, password)
			}
			return "tok", nil
		},
	}
	c, rec := newContext(http.MethodPost, "/students/1/session/login", `{"password":"x"}`, "1")

	if err := NewSessionHandler(stub).Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if rec.Code != http.StatusOK || resp.SessionToken != "tok" {
		t.Fatalf("unexpected response %d %+v", rec.Code, resp)
	}
}

func TestSessionHandler_Login_MissingPassword(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, studentID int64, password string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	c, _ := newContext(http.MethodPost, "/students/1/session/login", `{}`, "1")

	err := NewSessionHandler(stub).Login(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "password" {
		t.Fatalf("expected password validation error, got %v", err)
	}
}

func TestSessionHandler_VerifyAndLogout(t *testing.T) {
	loggedOut := false
	stub := &stubSessionService{
		verifyFn: func(ctx context.Context, studentID int64, token string) (*domain.Session, error) {
			if loggedOut {
				return nil, domain.ErrInvalidSession
			}
			return &domain.Session{Token: token, StudentID: studentID, Active: true}, nil
		},
		logoutFn: func(ctx context.Context, studentID int64, token string) error {
			if token != "tok" {
				t.Fatalf("unexpected token %q", token)
			}
			loggedOut = true
			return nil
		},
	}
	h := NewSessionHandler(stub)

	c, rec := newContext(http.MethodPost, "/students/1/session/verify", `{"sessionToken":"tok"}`, "1")
	if err := h.Verify(c); err != nil {
		t.Fatalf("verify error: %v", err)
	}
	var vr verifyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &vr); err != nil || !vr.Active {
		t.Fatalf("unexpected verify response %s (%v)", rec.Body.String(), err)
	}

	c, rec = newContext(http.MethodPost, "/students/1/session/logout", `{"sessionToken":"tok"}`, "1")
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = newContext(http.MethodPost, "/students/1/session/verify", `{"sessionToken":"tok"}`, "1")
	if err := h.Verify(c); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

func TestSessionHandler_Verify_MissingToken(t *testing.T) {
	stub := &stubSessionService{}
	c, _ := newContext(http.MethodPost, "/students/1/session/verify", `{"sessionToken":""}`, "1")

	err := NewSessionHandler(stub).Verify(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "sessionToken" {
		t.Fatalf("expected sessionToken validation error, got %v", err)
	}
}
