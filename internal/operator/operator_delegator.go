package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/carson-networks/finance-inspector/internal/operator/actions"
)

var ErrStopped = errors.New("operator: delegator stopped")

// OperatorDelegator owns the queue and a single Operator, so credential
// updates are applied one at a time in arrival order.
type OperatorDelegator struct {
	writer   actions.TokenWriter
	queue    chan ActionItem
	wg       sync.WaitGroup
	mu       sync.RWMutex
	stopped  bool
	stopOnce sync.Once
}

func NewOperatorDelegator(writer actions.TokenWriter) *OperatorDelegator {
	return &OperatorDelegator{
		writer: writer,
		queue:  make(chan ActionItem, 100),
	}
}

func (d *OperatorDelegator) Start() {
	d.wg.Add(1)
	op := NewOperator(d.writer, d.queue)
	go func() {
		defer d.wg.Done()
		op.Run()
	}()
}

// Stop drains queued items and waits for the worker to exit.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		close(d.queue)
		d.mu.Unlock()
		d.wg.Wait()
	})
}

func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	d.mu.RLock()
	if d.stopped {
		d.mu.RUnlock()
		return ErrStopped
	}
	select {
	case d.queue <- item:
		d.mu.RUnlock()
	case <-ctx.Done():
		d.mu.RUnlock()
		return ctx.Err()
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
