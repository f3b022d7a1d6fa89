package services

import (
	portsrepo "github.com/ptapp/purchase_txn_app/internal/core/ports/repositories"
	portssvc "github.com/ptapp/purchase_txn_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(txnRepo portsrepo.TransactionRepositoryFacade, rateSource portsrepo.ExchangeRateSource, baseCurrency string) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(txnRepo, rateSource, baseCurrency),
	}
}
