package server

import (
	"net/http"

	"github.com/beNeighb/backend/config"
	"github.com/beNeighb/backend/internal/chat"
	"github.com/beNeighb/backend/internal/marketplace"
	"github.com/beNeighb/backend/internal/profile"
	"github.com/beNeighb/backend/pkg/idempotency"
	"github.com/beNeighb/backend/pkg/logger"
)

// Server is the HTTP API server.
type Server struct {
	cfg    *config.Config
	logger *logger.Logger

	marketplaceUC marketplace.MarketplaceUsecase
	chatUC        chat.ChatUsecase
	profileUC     profile.ProfileUsecase
	profileRepo   profile.ProfileRepository

	idempotency *idempotency.Store
	mux         *http.ServeMux
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	marketplaceUC marketplace.MarketplaceUsecase,
	chatUC chat.ChatUsecase,
	profileUC profile.ProfileUsecase,
	profileRepo profile.ProfileRepository,
) *Server {
	s := &Server{
		cfg:           cfg,
		logger:        log,
		marketplaceUC: marketplaceUC,
		chatUC:        chatUC,
		profileUC:     profileUC,
		profileRepo:   profileRepo,
		idempotency:   idempotency.NewStore(),
		mux:           http.NewServeMux(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) routes() {
	// Marketplace
	s.mux.HandleFunc("POST /marketplace/tasks/{$}", s.withAuth(s.withIdempotency(s.handleTaskCreate)))
	s.mux.HandleFunc("GET /marketplace/tasks/mine/{$}", s.withAuth(s.handleTasksMine))
	s.mux.HandleFunc("GET /marketplace/tasks/for-me/{$}", s.withAuth(s.handleTasksForMe))
	s.mux.HandleFunc("GET /marketplace/tasks/with-my-offer/{$}", s.withAuth(s.handleTasksWithMyOffer))
	s.mux.HandleFunc("GET /marketplace/tasks/{id}/{$}", s.withAuth(s.handleTaskGet))
	s.mux.HandleFunc("POST /marketplace/offers/{$}", s.withAuth(s.withIdempotency(s.handleOfferCreate)))
	s.mux.HandleFunc("GET /marketplace/offers/mine/{$}", s.withAuth(s.handleOffersMine))
	s.mux.HandleFunc("PUT /marketplace/offers/{id}/accept/{$}", s.withAuth(s.handleOfferAccept))

	// Chats
	s.mux.HandleFunc("GET /chats/{$}", s.withAuth(s.handleChatsMine))
	s.mux.HandleFunc("GET /chats/messages/{$}", s.withAuth(s.handleUnreadMessages))
	s.mux.HandleFunc("PUT /chats/messages/{id}/mark-as-read/{$}", s.withAuth(s.handleMessageMarkAsRead))
	s.mux.HandleFunc("POST /chats/{chat_id}/messages/{$}", s.withAuth(s.withIdempotency(s.handleMessageCreate)))
	s.mux.HandleFunc("GET /chats/{chat_id}/messages/{$}", s.withAuth(s.handleMessagesForChat))

	// Profiles
	s.mux.HandleFunc("POST /users/profiles/{$}", s.handleProfileCreate)
	s.mux.HandleFunc("GET /users/profiles/me/{$}", s.withAuth(s.handleMyProfile))
	s.mux.HandleFunc("DELETE /users/profiles/me/{$}", s.withAuth(s.handleMyProfileDelete))
	s.mux.HandleFunc("PUT /users/profiles/me/fcm-token/{$}", s.withAuth(s.handleFCMTokenUpdate))
	s.mux.HandleFunc("GET /users/profiles/{id}/{$}", s.withAuth(s.handleProfileGet))
	s.mux.HandleFunc("POST /users/profiles/{id}/block/{$}", s.withAuth(s.handleProfileBlock))

	s.mux.HandleFunc("GET /health", s.handleHealth)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
