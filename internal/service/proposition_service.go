package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dom/pickup-hoops/internal/balancing"
	"github.com/dom/pickup-hoops/internal/domain"
	"github.com/dom/pickup-hoops/internal/metrics"
	"github.com/dom/pickup-hoops/internal/repository"
)

type PropositionService struct {
	playerRepo repository.PlayerRepository
	generator  *balancing.Generator
	recorder   *metrics.Recorder
}

func NewPropositionService(
	playerRepo repository.PlayerRepository,
	generator *balancing.Generator,
	recorder *metrics.Recorder,
) *PropositionService {
	return &PropositionService{
		playerRepo: playerRepo,
		generator:  generator,
		recorder:   recorder,
	}
}

// PropositionResult is a set of propositions together with the plan they follow
type PropositionResult struct {
	Plan         domain.TeamPlan
	Propositions []domain.Proposition
}

// GenerateForPlayers builds propositions from a roster supplied by the caller
func (s *PropositionService) GenerateForPlayers(ctx context.Context, players []domain.Player) (*PropositionResult, error) {
	if err := ValidateRoster(players); err != nil {
		s.recorder.RecordGenerationFailure("invalid_roster")
		return nil, err
	}
	return s.generate(ctx, players)
}

// GenerateForPlayerIDs loads the roster from storage and builds propositions.
// Unknown ids fail with ErrPlayerNotFound.
func (s *PropositionService) GenerateForPlayerIDs(ctx context.Context, ids []string) (*PropositionResult, error) {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			s.recorder.RecordGenerationFailure("invalid_roster")
			return nil, fmt.Errorf("%w: player %q listed more than once", ErrInvalidRoster, id)
		}
		seen[id] = true
	}

	stored, err := s.playerRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.recorder.RecordGenerationFailure("repository")
		return nil, fmt.Errorf("load roster: %w", err)
	}

	found := make(map[string]bool, len(stored))
	players := make([]domain.Player, 0, len(stored))
	for _, p := range stored {
		found[p.ID] = true
		players = append(players, *p)
	}
	for _, id := range ids {
		if !found[id] {
			s.recorder.RecordGenerationFailure("unknown_player")
			return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
		}
	}

	return s.generate(ctx, players)
}

func (s *PropositionService) generate(ctx context.Context, players []domain.Player) (*PropositionResult, error) {
	start := time.Now()
	plan, propositions, err := s.generator.Generate(ctx, players)
	s.recorder.ObserveGeneration(time.Since(start))
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientPlayers) {
			s.recorder.RecordGenerationFailure("insufficient_players")
		}
		return nil, err
	}

	for _, p := range propositions {
		s.recorder.RecordProposition(string(p.Type), string(p.Source))
	}
	log.Printf("INFO [proposition.Generate] %d propositions for %d players in %d teams",
		len(propositions), len(players), plan.NumberOfTeams)

	return &PropositionResult{
		Plan:         plan,
		Propositions: propositions,
	}, nil
}
