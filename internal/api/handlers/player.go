package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dom/pickup-hoops/internal/domain"
	"github.com/dom/pickup-hoops/internal/service"
	"github.com/go-chi/chi/v5"
)

type PlayerHandler struct {
	rosterService *service.RosterService
}

func NewPlayerHandler(rosterService *service.RosterService) *PlayerHandler {
	return &PlayerHandler{rosterService: rosterService}
}

// PlayerRequest is the API format for a roster entry sent by clients
type PlayerRequest struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	SkillTier string   `json:"skillTier"`
	Positions []string `json:"positions"`
}

// PlayerResponse is the API response format for a roster entry
type PlayerResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	SkillTier string   `json:"skillTier"`
	Positions []string `json:"positions"`
}

func (req PlayerRequest) toDomain() domain.Player {
	positions := make([]domain.Position, len(req.Positions))
	for i, p := range req.Positions {
		positions[i] = domain.Position(p)
	}
	return domain.Player{
		ID:        req.ID,
		Name:      req.Name,
		SkillTier: domain.SkillTier(req.SkillTier),
		Positions: positions,
	}
}

func toPlayerResponse(p *domain.Player) PlayerResponse {
	positions := make([]string, len(p.Positions))
	for i, pos := range p.Positions {
		positions[i] = string(pos)
	}
	return PlayerResponse{
		ID:        p.ID,
		Name:      p.Name,
		SkillTier: string(p.SkillTier),
		Positions: positions,
	}
}

// List returns every player on the roster
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.rosterService.ListPlayers(r.Context())
	if err != nil {
		log.Printf("ERROR [player.List] failed to list players: %v", err)
		http.Error(w, "Failed to list players", http.StatusInternalServerError)
		return
	}

	resp := make([]PlayerResponse, 0, len(players))
	for _, p := range players {
		resp = append(resp, toPlayerResponse(p))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Get returns a single player
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	player, err := h.rosterService.GetPlayer(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			http.Error(w, "Player not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [player.Get] failed to get player: %v", err)
		http.Error(w, "Failed to get player", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toPlayerResponse(player))
}

// Create adds a player to the roster
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req PlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("ERROR [player.Create] failed to decode request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	p := req.toDomain()
	player, err := h.rosterService.CreatePlayer(r.Context(), service.CreatePlayerInput{
		ID:        p.ID,
		Name:      p.Name,
		SkillTier: p.SkillTier,
		Positions: p.Positions,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRoster):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrPlayerExists):
			http.Error(w, "Player already exists", http.StatusConflict)
		default:
			log.Printf("ERROR [player.Create] failed to create player: %v", err)
			http.Error(w, "Failed to create player", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toPlayerResponse(player))
}

// Save creates or replaces the player at the given id
func (h *PlayerHandler) Save(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req PlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("ERROR [player.Save] failed to decode request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID != "" && req.ID != id {
		http.Error(w, "Player id does not match path", http.StatusBadRequest)
		return
	}

	p := req.toDomain()
	player, created, err := h.rosterService.SavePlayer(r.Context(), id, service.CreatePlayerInput{
		Name:      p.Name,
		SkillTier: p.SkillTier,
		Positions: p.Positions,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidRoster) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("ERROR [player.Save] failed to save player: %v", err)
		http.Error(w, "Failed to save player", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if created {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(toPlayerResponse(player))
}
