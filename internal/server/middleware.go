package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/beNeighb/backend/pkg/utils"
)

// withAuth verifies the bearer token and resolves the caller's profile.
// A token whose profile no longer exists is rejected, so deleted
// profiles lose access immediately.
func (s *Server) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeErrorMsg(w, http.StatusUnauthorized, "authentication credentials were not provided")
			return
		}

		profileID, err := utils.VerifyJWTToken(token, s.cfg.JWT.Secret)
		if err != nil {
			writeErrorMsg(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		if _, err := s.profileRepo.GetProfileByID(r.Context(), profileID); err != nil {
			writeErrorMsg(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		next(w, r.WithContext(withProfileID(r.Context(), profileID)))
	}
}

// withIdempotency rejects a repeated POST carrying an already consumed
// X-Idempotency-Key before any business logic runs. Keys are scoped per
// profile, so two callers may reuse the same header value.
func (s *Server) withIdempotency(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get("X-Idempotency-Key")
		if r.Method == http.MethodPost && key != "" {
			scoped := fmt.Sprintf("idemp-%s-%s", ProfileIDFromContext(r.Context()), key)
			ttl := time.Duration(s.cfg.Idempotency.TTLSeconds) * time.Second
			if !s.idempotency.Add(scoped, ttl) {
				writeErrorMsg(w, http.StatusForbidden, "Duplicate request detected.")
				return
			}
		}
		next(w, r)
	}
}
