package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beNeighb/backend/config"
	profileMocks "github.com/beNeighb/backend/internal/profile/mocks"
	profileModels "github.com/beNeighb/backend/internal/profile/model"
	"github.com/beNeighb/backend/pkg/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT:         config.JWT{Secret: "test-secret", ExpiredIn: 3600},
		Idempotency: config.Idempotency{TTLSeconds: 60},
	}
}

func newTestServer(t *testing.T) (*Server, *profileMocks.MockProfileRepository, uuid.UUID, string) {
	ctrl := gomock.NewController(t)
	profileRepo := profileMocks.NewMockProfileRepository(ctrl)

	cfg := testConfig()
	srv := New(cfg, nil, nil, nil, nil, profileRepo)

	profileID := uuid.New()
	token, err := utils.GenerateJWTToken(profileID, *cfg)
	require.NoError(t, err)

	return srv, profileRepo, profileID, token
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestServer_Auth(t *testing.T) {
	t.Run("missing bearer token", func(t *testing.T) {
		srv, _, _, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/chats/", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		srv, _, _, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/chats/", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token for a deleted profile", func(t *testing.T) {
		srv, profileRepo, profileID, token := newTestServer(t)

		profileRepo.EXPECT().
			GetProfileByID(gomock.Any(), profileID).
			Return(nil, assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/chats/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestServer_QueryValidation(t *testing.T) {
	authed := func(t *testing.T, srv *Server, repo *profileMocks.MockProfileRepository, profileID uuid.UUID, token, target string) *httptest.ResponseRecorder {
		repo.EXPECT().
			GetProfileByID(gomock.Any(), profileID).
			Return(&profileModels.Profile{ID: profileID, Name: "caller"}, nil)

		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		return rec
	}

	t.Run("non-integer limit", func(t *testing.T) {
		srv, repo, profileID, token := newTestServer(t)

		rec := authed(t, srv, repo, profileID, token, "/chats/?limit=abc")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid limit value. Must be an integer.", errorBody(t, rec))
	})

	t.Run("unread filter must be the literal true", func(t *testing.T) {
		srv, repo, profileID, token := newTestServer(t)

		rec := authed(t, srv, repo, profileID, token, "/chats/messages/?unread=True")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, `Invalid unread value. Must be "true"`, errorBody(t, rec))
	})

	t.Run("missing unread filter", func(t *testing.T) {
		srv, repo, profileID, token := newTestServer(t)

		rec := authed(t, srv, repo, profileID, token, "/chats/messages/")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Idempotency(t *testing.T) {
	post := func(t *testing.T, srv *Server, token, key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/marketplace/offers/", strings.NewReader("{"))
		req.Header.Set("Authorization", "Bearer "+token)
		if key != "" {
			req.Header.Set("X-Idempotency-Key", key)
		}
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		return rec
	}

	t.Run("duplicate key is rejected before the handler", func(t *testing.T) {
		srv, repo, profileID, token := newTestServer(t)
		repo.EXPECT().
			GetProfileByID(gomock.Any(), profileID).
			Return(&profileModels.Profile{ID: profileID}, nil).
			Times(2)

		first := post(t, srv, token, "abc-123")
		assert.Equal(t, http.StatusBadRequest, first.Code)

		second := post(t, srv, token, "abc-123")
		assert.Equal(t, http.StatusForbidden, second.Code)
		assert.Equal(t, "Duplicate request detected.", errorBody(t, second))
	})

	t.Run("requests without a key are not guarded", func(t *testing.T) {
		srv, repo, profileID, token := newTestServer(t)
		repo.EXPECT().
			GetProfileByID(gomock.Any(), profileID).
			Return(&profileModels.Profile{ID: profileID}, nil).
			Times(2)

		first := post(t, srv, token, "")
		second := post(t, srv, token, "")
		assert.Equal(t, first.Code, second.Code)
	})

	t.Run("keys are scoped per profile", func(t *testing.T) {
		srv, repo, profileID, token := newTestServer(t)

		otherID := uuid.New()
		otherToken, err := utils.GenerateJWTToken(otherID, *testConfig())
		require.NoError(t, err)

		repo.EXPECT().
			GetProfileByID(gomock.Any(), profileID).
			Return(&profileModels.Profile{ID: profileID}, nil)
		repo.EXPECT().
			GetProfileByID(gomock.Any(), otherID).
			Return(&profileModels.Profile{ID: otherID}, nil)

		first := post(t, srv, token, "shared-key")
		assert.Equal(t, http.StatusBadRequest, first.Code)

		second := post(t, srv, otherToken, "shared-key")
		assert.Equal(t, http.StatusBadRequest, second.Code)
	})
}

func TestServer_Health(t *testing.T) {
	srv, _, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
