package render

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Task is one widget's render step: build a payload from the dataset and
// write it to the widget's mount point.
type Task struct {
	Widget string
	Render func(ctx context.Context, target Target) error
}

// Result records the outcome of a single widget task.
type Result struct {
	Widget string `json:"widget"`
	Err    error  `json:"-"`
	OK     bool   `json:"ok"`
}

// Orchestrator executes widget tasks in their enumerated order, isolating
// each task's failures. One missing field in a section of the dataset must
// never blank the entire page: a failed or panicking task is logged with the
// widget's identity and the remaining tasks still execute.
type Orchestrator struct {
	log *zap.Logger
}

// NewOrchestrator creates an Orchestrator logging through the global logger.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{log: zap.L().Named("render")}
}

// Run executes every task exactly once, in order, and returns a per-widget
// result slice of the same length and order as tasks.
func (o *Orchestrator) Run(ctx context.Context, target Target, tasks []Task) []Result {
	results := make([]Result, 0, len(tasks))
	failed := 0

	for _, task := range tasks {
		err := o.runOne(ctx, target, task)
		if err != nil {
			failed++
			o.log.Error("widget render failed",
				zap.String("widget", task.Widget),
				zap.Error(err),
			)
		}
		results = append(results, Result{Widget: task.Widget, Err: err, OK: err == nil})
	}

	o.log.Info("render session complete",
		zap.Int("widgets", len(tasks)),
		zap.Int("failed", failed),
	)
	return results
}

// runOne wraps a single task, converting panics into errors so a broken
// widget cannot take down its siblings.
func (o *Orchestrator) runOne(ctx context.Context, target Target, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = eris.Errorf("render: widget %s panicked: %v", task.Widget, r)
		}
	}()

	if !target.Has(task.Widget) {
		// Absent mount point: the widget quietly does not render.
		o.log.Debug("mount point absent, skipping widget", zap.String("widget", task.Widget))
		return nil
	}

	return task.Render(ctx, target)
}
