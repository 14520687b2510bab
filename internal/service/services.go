package service

import (
	"github.com/dom/pickup-hoops/internal/balancing"
	"github.com/dom/pickup-hoops/internal/metrics"
	"github.com/dom/pickup-hoops/internal/repository"
)

type Services struct {
	Roster      *RosterService
	Proposition *PropositionService
}

func NewServices(repos *repository.Repositories, generator *balancing.Generator, recorder *metrics.Recorder) *Services {
	return &Services{
		Roster:      NewRosterService(repos.Player),
		Proposition: NewPropositionService(repos.Player, generator, recorder),
	}
}
