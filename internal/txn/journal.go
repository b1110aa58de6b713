// Package txn stages host mutations so a failed build can be undone.
package txn

import (
	"fmt"

	"github.com/go-logr/logr"
	"go.uber.org/multierr"
)

// Step is one applied mutation and the operation that reverts it.
type Step struct {
	Desc string
	Undo func() error
}

// Journal records applied mutations in order. It is NOT safe for concurrent use.
type Journal struct {
	log   logr.Logger
	steps []Step
	done  bool
}

// New creates an empty journal.
func New(log logr.Logger) *Journal {
	return &Journal{log: log}
}

// Do applies a mutation and records its undo. A failed mutation is not
// recorded; undo may be nil for mutations reverted by an earlier step's undo.
func (j *Journal) Do(desc string, do func() error, undo func() error) error {
	if j.done {
		return fmt.Errorf("journal already finished: %s", desc)
	}
	if err := do(); err != nil {
		return fmt.Errorf("%s: %w", desc, err)
	}
	if undo != nil {
		j.steps = append(j.steps, Step{Desc: desc, Undo: undo})
	}
	j.log.V(2).Info("applied", "step", desc)
	return nil
}

// Len returns the number of recorded undo steps.
func (j *Journal) Len() int {
	return len(j.steps)
}

// Commit keeps every applied mutation.
func (j *Journal) Commit() {
	j.done = true
	j.steps = nil
}

// Rollback reverts recorded steps in reverse order. Every step is attempted;
// failures are combined.
func (j *Journal) Rollback() error {
	if j.done {
		return nil
	}
	j.done = true

	var err error
	for i := len(j.steps) - 1; i >= 0; i-- {
		step := j.steps[i]
		if undoErr := step.Undo(); undoErr != nil {
			j.log.Error(undoErr, "undo failed", "step", step.Desc)
			err = multierr.Append(err, fmt.Errorf("undo %s: %w", step.Desc, undoErr))
		}
	}
	j.log.V(1).Info("rolled back", "steps", len(j.steps))
	j.steps = nil
	return err
}
