package balancing

import (
	"context"
	"log"
	"slices"

	"github.com/dom/pickup-hoops/internal/domain"
)

// Generator produces team propositions for a roster. It holds no per-call
// state and is safe for concurrent use.
type Generator struct {
	strategies []Strategy
	assistant  Assistant
}

// NewGenerator creates a generator running the default strategies. A nil
// assistant means propositions are always built by the strategies.
func NewGenerator(assistant Assistant) *Generator {
	if assistant == nil {
		assistant = DeterministicAssistant{}
	}
	strategies := DefaultStrategies()
	for i, strategy := range strategies {
		if !strategy.Type().IsValid() {
			panic("balancing: unknown strategy type " + string(strategy.Type()))
		}
		if strategy.Type() != domain.ClassifyByIndex(i) {
			panic("balancing: strategy " + string(strategy.Type()) + " out of order")
		}
	}
	return &Generator{
		strategies: strategies,
		assistant:  assistant,
	}
}

// GeneratePropositions returns one proposition per strategy, in the order
// skill_balanced, position_focused, general. The only error it returns is the
// planner's *domain.InsufficientPlayersError, unchanged.
func (g *Generator) GeneratePropositions(ctx context.Context, players []domain.Player) ([]domain.Proposition, error) {
	_, propositions, err := g.Generate(ctx, players)
	return propositions, err
}

// Generate is GeneratePropositions that also returns the plan the teams follow
func (g *Generator) Generate(ctx context.Context, players []domain.Player) (domain.TeamPlan, []domain.Proposition, error) {
	plan, err := PlanTeams(players)
	if err != nil {
		return domain.TeamPlan{}, nil, err
	}

	propositions := make([]domain.Proposition, 0, len(g.strategies))
	for i, strategy := range g.strategies {
		rosters, source := g.build(ctx, strategy, players, plan)
		propositions = append(propositions, domain.NewProposition(domain.ClassifyByIndex(i), source, rosters))
	}
	return plan, propositions, nil
}

func (g *Generator) build(ctx context.Context, strategy Strategy, players []domain.Player, plan domain.TeamPlan) ([][]domain.Player, domain.PropositionSource) {
	proposal, err := g.assistant.Propose(ctx, AssistRequest{
		Strategy: strategy.Type(),
		Plan:     plan,
		Players:  slices.Clone(players),
	})
	switch {
	case err != nil:
		log.Printf("WARN [balancing.GeneratePropositions] assistant failed for %s, using heuristic: %v", strategy.Type(), err)
	case proposal != nil:
		rosters, err := assembleTeams(players, plan, proposal)
		if err == nil {
			return rosters, domain.PropositionSourceAssisted
		}
		log.Printf("WARN [balancing.GeneratePropositions] rejected assistant proposal for %s: %v", strategy.Type(), err)
	}
	return strategy.Build(players, plan), domain.PropositionSourceHeuristic
}
