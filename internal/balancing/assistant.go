package balancing

import (
	"context"

	"github.com/dom/pickup-hoops/internal/domain"
)

// AssistRequest is what an Assistant is asked to split
type AssistRequest struct {
	Strategy domain.PropositionType
	Plan     domain.TeamPlan
	Players  []domain.Player
}

// Assistant proposes a team split for one strategy as lists of player ids,
// one list per team. A nil result with a nil error means no proposal.
// Results are untrusted and are validated before use.
type Assistant interface {
	Propose(ctx context.Context, req AssistRequest) ([][]string, error)
}

// DeterministicAssistant never proposes anything, so every proposition
// comes from the built-in strategies.
type DeterministicAssistant struct{}

func (DeterministicAssistant) Propose(context.Context, AssistRequest) ([][]string, error) {
	return nil, nil
}
