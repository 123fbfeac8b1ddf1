package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/beNeighb/backend/internal/marketplace"
	"github.com/beNeighb/backend/pkg/errors"
)

var errInvalidLimit = errors.InvalidArg("Invalid limit value. Must be an integer.")

type createTaskRequest struct {
	Service         uuid.UUID   `json:"service"`
	DatetimeKnown   bool        `json:"datetime_known"`
	DatetimeOptions []time.Time `json:"datetime_options"`
	EventType       string      `json:"event_type"`
	Address         string      `json:"address"`
	PriceOffer      int64       `json:"price_offer"`
}

func (s *Server) handleTaskCreate(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	task, err := s.marketplaceUC.CreateTask(r.Context(), marketplace.CreateTaskCommand{
		OwnerID:         ProfileIDFromContext(r.Context()),
		ServiceID:       req.Service,
		DatetimeKnown:   req.DatetimeKnown,
		DatetimeOptions: req.DatetimeOptions,
		EventType:       req.EventType,
		Address:         req.Address,
		PriceOffer:      req.PriceOffer,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleTaskGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeErrorMsg(w, http.StatusNotFound, "task does not exist")
		return
	}

	task, err := s.marketplaceUC.GetTask(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleTasksMine(w http.ResponseWriter, r *http.Request) {
	s.listTasks(w, r, s.marketplaceUC.ListMyTasks)
}

func (s *Server) handleTasksForMe(w http.ResponseWriter, r *http.Request) {
	s.listTasks(w, r, s.marketplaceUC.ListTasksForMe)
}

func (s *Server) handleTasksWithMyOffer(w http.ResponseWriter, r *http.Request) {
	s.listTasks(w, r, s.marketplaceUC.ListTasksWithMyOffer)
}

func (s *Server) listTasks(
	w http.ResponseWriter,
	r *http.Request,
	list func(ctx context.Context, profileID uuid.UUID) ([]marketplace.TaskDTO, error),
) {
	tasks, err := list(r.Context(), ProfileIDFromContext(r.Context()))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// parseLimit reads an optional positive ?limit= query parameter.
func parseLimit(r *http.Request) (*int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil, errInvalidLimit
	}
	return &n, nil
}
