package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// ErrStopped is returned by Process once Stop has run.
var ErrStopped = errors.New("operator stopped")

// OperatorDelegator manages the queue, starts/stops Operators (workers),
// and enqueues items.
type OperatorDelegator struct {
	ledger     *ledger.Ledger
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once

	// stopMu orders enqueues against close(queue): Process holds the read
	// side across its send, Stop takes the write side to flip stopped and
	// close, so a send can never race the close.
	stopMu  sync.RWMutex
	stopped bool
}

func NewOperatorDelegator(ldg *ledger.Ledger, numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &OperatorDelegator{
		ledger:     ldg,
		queue:      make(chan ActionItem, 1000),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.ledger, d.queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop closes the queue and waits for the workers to drain it. Further
// Process calls fail with ErrStopped.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.stopMu.Lock()
		d.stopped = true
		close(d.queue)
		d.stopMu.Unlock()
		d.wg.Wait()
	})
}

// Process enqueues the action and waits for its result or for the
// caller's context to expire. After Stop it returns ErrStopped.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	d.stopMu.RLock()
	if d.stopped {
		d.stopMu.RUnlock()
		return ErrStopped
	}
	select {
	case d.queue <- item:
		d.stopMu.RUnlock()
	case <-ctx.Done():
		d.stopMu.RUnlock()
		return ctx.Err()
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
