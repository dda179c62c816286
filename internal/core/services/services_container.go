package services

import (
	portsrepo "github.com/fedemoisello/ADN-2025/internal/core/ports/repositories"
	portssvc "github.com/fedemoisello/ADN-2025/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Reference data services first since the roster depends on conversion
	container.ExchangeRate = NewExchangeRateService()
	container.Pricing = NewPricingService()

	container.Roster = NewRosterService(repos.RosterRepo, repos.RosterSource, container.ExchangeRate)
	container.Planning = NewPlanningService(container.Roster, container.Pricing)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)
	_ portssvc.PricingSvcFacade      = (*PricingService)(nil)
	_ portssvc.RosterSvcFacade       = (*RosterService)(nil)
	_ portssvc.PlanningSvcFacade     = (*PlanningService)(nil)
)
