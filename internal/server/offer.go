package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/beNeighb/backend/internal/marketplace"
	"github.com/beNeighb/backend/pkg/errors"
)

type createOfferRequest struct {
	Task uuid.UUID `json:"task"`
}

func (s *Server) handleOfferCreate(w http.ResponseWriter, r *http.Request) {
	var req createOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	offer, err := s.marketplaceUC.CreateOffer(r.Context(), marketplace.CreateOfferCommand{
		TaskID:   req.Task,
		HelperID: ProfileIDFromContext(r.Context()),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, offer)
}

func (s *Server) handleOffersMine(w http.ResponseWriter, r *http.Request) {
	offers, err := s.marketplaceUC.ListMyOffers(r.Context(), ProfileIDFromContext(r.Context()))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, offers)
}

func (s *Server) handleOfferAccept(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, errors.ErrOfferNotFound)
		return
	}

	result, err := s.marketplaceUC.AcceptOffer(r.Context(), marketplace.AcceptOfferCommand{
		OfferID:     id,
		RequesterID: ProfileIDFromContext(r.Context()),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
