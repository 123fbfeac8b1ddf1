package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/beNeighb/backend/internal/profile"
	"github.com/beNeighb/backend/pkg/errors"
)

type createProfileRequest struct {
	Name     string `json:"name"`
	FCMToken string `json:"fcm_token"`
}

func (s *Server) handleProfileCreate(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	p, err := s.profileUC.CreateProfile(r.Context(), profile.CreateProfileCommand{
		Name:     req.Name,
		FCMToken: req.FCMToken,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleMyProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.profileUC.GetMyProfile(r.Context(), ProfileIDFromContext(r.Context()))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleMyProfileDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.profileUC.DeleteMyProfile(r.Context(), ProfileIDFromContext(r.Context())); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleProfileGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, errors.ErrProfileNotFound)
		return
	}

	p, err := s.profileUC.GetProfile(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type updateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token"`
}

func (s *Server) handleFCMTokenUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateFCMTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	err := s.profileUC.UpdateFCMToken(r.Context(), profile.UpdateFCMTokenCommand{
		ProfileID: ProfileIDFromContext(r.Context()),
		FCMToken:  req.FCMToken,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleProfileBlock(w http.ResponseWriter, r *http.Request) {
	targetID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, errors.ErrProfileNotFound)
		return
	}

	err = s.profileUC.BlockProfile(r.Context(), ProfileIDFromContext(r.Context()), targetID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "blocked"})
}
