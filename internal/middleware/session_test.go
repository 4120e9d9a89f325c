package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

func signedToken(t *testing.T, secret, subject string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func sessionRouter(captured *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.Use(Session(testJWTSecret))
	router.GET("/test", func(c *gin.Context) {
		*captured = GetOwnerID(c)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestSession(t *testing.T) {
	tests := []struct {
		name           string
		setupRequest   func(*testing.T, *http.Request)
		expectedStatus int
		expectedOwner  string
		expectOwner    func(*testing.T, string)
	}{
		{
			name: "valid bearer token resolves user owner",
			setupRequest: func(t *testing.T, req *http.Request) {
				token := signedToken(t, testJWTSecret, "alice", time.Now().Add(time.Hour))
				req.Header.Set("Authorization", "Bearer "+token)
			},
			expectedStatus: http.StatusOK,
			expectedOwner:  "user:alice",
		},
		{
			name: "session header resolves guest owner",
			setupRequest: func(t *testing.T, req *http.Request) {
				req.Header.Set(SessionHeader, "abc-123")
			},
			expectedStatus: http.StatusOK,
			expectedOwner:  "guest:abc-123",
		},
		{
			name: "expired token is rejected",
			setupRequest: func(t *testing.T, req *http.Request) {
				token := signedToken(t, testJWTSecret, "alice", time.Now().Add(-time.Hour))
				req.Header.Set("Authorization", "Bearer "+token)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "token signed with wrong secret is rejected",
			setupRequest: func(t *testing.T, req *http.Request) {
				token := signedToken(t, "other-secret", "alice", time.Now().Add(time.Hour))
				req.Header.Set("Authorization", "Bearer "+token)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "malformed bearer token is rejected",
			setupRequest: func(t *testing.T, req *http.Request) {
				req.Header.Set("Authorization", "Bearer not-a-jwt")
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "bearer token wins over session header",
			setupRequest: func(t *testing.T, req *http.Request) {
				token := signedToken(t, testJWTSecret, "alice", time.Now().Add(time.Hour))
				req.Header.Set("Authorization", "Bearer "+token)
				req.Header.Set(SessionHeader, "abc-123")
			},
			expectedStatus: http.StatusOK,
			expectedOwner:  "user:alice",
		},
		{
			name:           "no credentials generates a guest session",
			setupRequest:   func(t *testing.T, req *http.Request) {},
			expectedStatus: http.StatusOK,
			expectOwner: func(t *testing.T, owner string) {
				require.True(t, len(owner) > len(guestOwnerPrefix))
				assert.Equal(t, guestOwnerPrefix, owner[:len(guestOwnerPrefix)])
				_, err := uuid.Parse(owner[len(guestOwnerPrefix):])
				assert.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var owner string
			router := sessionRouter(&owner)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			tt.setupRequest(t, req)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedOwner != "" {
				assert.Equal(t, tt.expectedOwner, owner)
			}
			if tt.expectOwner != nil {
				tt.expectOwner(t, owner)
			}
		})
	}
}

func TestSession_EchoesGeneratedSessionID(t *testing.T) {
	var owner string
	router := sessionRouter(&owner)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	echoed := w.Header().Get(SessionHeader)
	require.NotEmpty(t, echoed)
	assert.Equal(t, guestOwnerPrefix+echoed, owner)

	// Replaying the echoed ID must hit the same owner.
	var second string
	router2 := sessionRouter(&second)
	req2 := httptest.NewRequest(http.MethodGet, "/test", nil)
	req2.Header.Set(SessionHeader, echoed)
	w2 := httptest.NewRecorder()
	router2.ServeHTTP(w2, req2)

	assert.Equal(t, owner, second)
	assert.Empty(t, w2.Header().Get(SessionHeader))
}

func TestGetOwnerID_NotSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetOwnerID(c))
}
