package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audience_backend/internal/feature/auth/usecase"
)

// mockAuthUsecase はAuthUsecaseのモックです。
type mockAuthUsecase struct {
	SignupFunc func(ctx context.Context, email, password string) error
	LoginFunc  func(ctx context.Context, email, password string) (string, error)
}

func (m *mockAuthUsecase) Signup(ctx context.Context, email, password string) error {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, email, password)
	}
	return nil
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", usecase.ErrInvalidCredentials
}

func performJSON(t *testing.T, h gin.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST(path, h)

	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		signupFunc     func(ctx context.Context, email, password string) error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "success",
			requestBody:    gin.H{"email": "test@example.com", "password": "password123"},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"message":"ok"}`,
		},
		{
			name:           "invalid email",
			requestBody:    gin.H{"email": "invalid-email", "password": "password123"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
		{
			name:           "short password",
			requestBody:    gin.H{"email": "test@example.com", "password": "short"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
		{
			name:           "duplicate email",
			requestBody:    gin.H{"email": "existing@example.com", "password": "password123"},
			signupFunc:     func(ctx context.Context, email, password string) error { return usecase.ErrEmailAlreadyExists },
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"signup failed"}`,
		},
		{
			name:           "unexpected failure",
			requestBody:    gin.H{"email": "test@example.com", "password": "password123"},
			signupFunc:     func(ctx context.Context, email, password string) error { return errors.New("db down") },
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthUsecase{SignupFunc: tt.signupFunc})

			w := performJSON(t, h.Signup, "/signup", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		loginFunc      func(ctx context.Context, email, password string) (string, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "success",
			requestBody: gin.H{"email": "test@example.com", "password": "password123"},
			loginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "jwt-token", nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"token":"jwt-token"}`,
		},
		{
			name:           "missing password",
			requestBody:    gin.H{"email": "test@example.com"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
		{
			name:           "invalid credentials",
			requestBody:    gin.H{"email": "test@example.com", "password": "wrong-password"},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"invalid email or password"}`,
		},
		{
			name:        "unexpected failure",
			requestBody: gin.H{"email": "test@example.com", "password": "password123"},
			loginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "", errors.New("db down")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthUsecase{LoginFunc: tt.loginFunc})

			w := performJSON(t, h.Login, "/login", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
