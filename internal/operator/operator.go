package operator

import (
	"context"

	"github.com/carson-networks/finance-inspector/internal/operator/actions"
)

// Operator is the worker that applies credential updates from the queue.
type Operator struct {
	writer actions.TokenWriter
	queue  chan ActionItem
}

func NewOperator(writer actions.TokenWriter, queue chan ActionItem) *Operator {
	return &Operator{
		writer: writer,
		queue:  queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	// The caller may have given up while the item was queued.
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err := item.action.Perform(item.ctx, o.writer)
	item.response <- ActionItemResponse{err: err}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
