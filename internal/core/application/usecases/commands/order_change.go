package commands

import (
	"context"

	"installation/internal/core/domain/model/kernel"
	"installation/internal/core/domain/model/order"
	"installation/internal/core/domain/services"
)

// decideFunc computes the next order snapshot without touching persistence.
type decideFunc func(current *order.Order) (services.TransitionResult, error)

// changeOrder loads orderID, asks decide for the next snapshot and stores it together
// with its history entry in one transaction. Nothing is written when decide fails.
func changeOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	decide decideFunc,
) (services.TransitionResult, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	current, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return services.TransitionResult{}, err
	}

	result, err := decide(current)
	if err != nil {
		return services.TransitionResult{}, err
	}

	if err = orderRepo.Update(ctx, result.Order); err != nil {
		return services.TransitionResult{}, err
	}
	if err = uow.HistoryRepository().Append(ctx, result.History); err != nil {
		return services.TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.TransitionResult{}, err
	}

	return result, nil
}
