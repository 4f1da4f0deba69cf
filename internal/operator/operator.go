package operator

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	ledger *ledger.Ledger
	queue  chan ActionItem
}

func NewOperator(ldg *ledger.Ledger, queue chan ActionItem) *Operator {
	return &Operator{
		ledger: ldg,
		queue:  queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is
// closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: item.action.Perform(item.ctx, o.ledger)}
	}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
