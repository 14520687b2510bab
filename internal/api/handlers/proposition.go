package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dom/pickup-hoops/internal/domain"
	"github.com/dom/pickup-hoops/internal/service"
)

type PropositionHandler struct {
	propositionService *service.PropositionService
}

func NewPropositionHandler(propositionService *service.PropositionService) *PropositionHandler {
	return &PropositionHandler{propositionService: propositionService}
}

// GeneratePropositionsRequest names stored players by id or sends the roster inline
type GeneratePropositionsRequest struct {
	PlayerIDs []string        `json:"playerIds"`
	Players   []PlayerRequest `json:"players"`
}

type TeamPlanResponse struct {
	NumberOfTeams     int `json:"numberOfTeams"`
	MinPlayersPerTeam int `json:"minPlayersPerTeam"`
	MaxPlayersPerTeam int `json:"maxPlayersPerTeam"`
}

type TeamResponse struct {
	ID           string           `json:"id"`
	Players      []PlayerResponse `json:"players"`
	SkillTotal   int              `json:"skillTotal"`
	AverageSkill float64          `json:"averageSkill"`
	Coverage     []string         `json:"coverage"`
	CoverageName string           `json:"coverageName"`
}

type PropositionResponse struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Source      string         `json:"source"`
	SkillSpread int            `json:"skillSpread"`
	Teams       []TeamResponse `json:"teams"`
}

type GeneratePropositionsResponse struct {
	Plan         TeamPlanResponse      `json:"plan"`
	Propositions []PropositionResponse `json:"propositions"`
}

// Generate returns three team propositions for a roster
func (h *PropositionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GeneratePropositionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("ERROR [proposition.Generate] failed to decode request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.PlayerIDs) > 0 && len(req.Players) > 0 {
		http.Error(w, "Send either playerIds or players, not both", http.StatusBadRequest)
		return
	}

	var (
		result *service.PropositionResult
		err    error
	)
	if len(req.PlayerIDs) > 0 {
		result, err = h.propositionService.GenerateForPlayerIDs(r.Context(), req.PlayerIDs)
	} else {
		players := make([]domain.Player, len(req.Players))
		for i, p := range req.Players {
			players[i] = p.toDomain()
		}
		result, err = h.propositionService.GenerateForPlayers(r.Context(), players)
	}
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientPlayers):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, service.ErrInvalidRoster):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrPlayerNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			log.Printf("ERROR [proposition.Generate] failed to generate propositions: %v", err)
			http.Error(w, "Failed to generate propositions", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toGeneratePropositionsResponse(result))
}

func toGeneratePropositionsResponse(result *service.PropositionResult) GeneratePropositionsResponse {
	resp := GeneratePropositionsResponse{
		Plan: TeamPlanResponse{
			NumberOfTeams:     result.Plan.NumberOfTeams,
			MinPlayersPerTeam: result.Plan.MinPlayersPerTeam,
			MaxPlayersPerTeam: result.Plan.MaxPlayersPerTeam,
		},
		Propositions: make([]PropositionResponse, len(result.Propositions)),
	}

	for i, prop := range result.Propositions {
		teams := make([]TeamResponse, len(prop.Teams))
		for j, team := range prop.Teams {
			players := make([]PlayerResponse, len(team.Players))
			for k := range team.Players {
				players[k] = toPlayerResponse(&team.Players[k])
			}
			coverage := make([]string, len(team.Coverage))
			for k, pos := range team.Coverage {
				coverage[k] = string(pos)
			}
			teams[j] = TeamResponse{
				ID:           team.ID.String(),
				Players:      players,
				SkillTotal:   team.SkillTotal,
				AverageSkill: team.AverageSkill,
				Coverage:     coverage,
				CoverageName: domain.CoverageLabel(team.Coverage),
			}
		}
		resp.Propositions[i] = PropositionResponse{
			ID:          prop.ID.String(),
			Type:        string(prop.Type),
			Source:      string(prop.Source),
			SkillSpread: prop.SkillSpread,
			Teams:       teams,
		}
	}
	return resp
}
