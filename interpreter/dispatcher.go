package interpreter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/amonks/butler/command"
	"github.com/amonks/butler/internal/ids"
	"github.com/amonks/butler/journal"
	"github.com/amonks/butler/task"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// Options configures a Dispatcher.
type Options struct {
	Logger *zap.Logger
	Now    func() time.Time
	NewID  IDGenerator

	// MutationTimeout bounds each store call. Zero means DefaultMutationTimeout.
	MutationTimeout time.Duration

	// Queue makes a dispatch wait for an in-flight one to finish instead of
	// failing with ErrBusy.
	Queue bool

	// OnStateChange is called after every state transition.
	OnStateChange func(Snapshot)
}

func normalizeOptions(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = ids.New
	}
	if opts.MutationTimeout <= 0 {
		opts.MutationTimeout = DefaultMutationTimeout
	}
	return opts
}

// Dispatcher interprets commands one at a time.
type Dispatcher struct {
	tasks   TaskAdder
	journal JournalAdder
	history Recorder
	opts    Options
	log     *zap.Logger
	slot    *semaphore.Weighted

	mu       sync.Mutex
	snapshot Snapshot
}

// New returns a dispatcher writing to the given stores and history.
// A nil history disables recording.
func New(tasks TaskAdder, journal JournalAdder, history Recorder, opts Options) *Dispatcher {
	opts = normalizeOptions(opts)
	return &Dispatcher{
		tasks:    tasks,
		journal:  journal,
		history:  history,
		opts:     opts,
		log:      opts.Logger.Named("interpreter"),
		slot:     semaphore.NewWeighted(1),
		snapshot: Snapshot{State: StateIdle},
	}
}

// Snapshot returns the current state and the last admitted command text.
func (d *Dispatcher) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshot
}

// Dispatch interprets text. It never panics and never returns a failure of
// its own: every problem is reported through Result.Err with StateError.
//
// A dispatch that cannot be admitted (ErrBusy, or ctx ending while queued)
// leaves the observable state untouched.
func (d *Dispatcher) Dispatch(ctx context.Context, text string) Result {
	if err := d.admit(ctx); err != nil {
		d.log.Warn("command rejected", zap.String("text", text), zap.Error(err))
		return Result{State: StateError, Text: text, Err: err}
	}
	defer d.slot.Release(1)

	d.setState(StateProcessing, text)
	d.log.Debug("dispatching command", zap.String("text", text))

	result := d.dispatch(ctx, text)

	d.setState(result.State, text)
	if result.Err != nil {
		d.log.Warn("command failed",
			zap.String("text", text),
			zap.Stringer("kind", result.Classification.Kind),
			zap.Error(result.Err))
	} else {
		d.log.Info("command dispatched",
			zap.String("text", text),
			zap.Stringer("kind", result.Classification.Kind),
			zap.String("command_id", result.Command.ID))
	}
	return result
}

func (d *Dispatcher) admit(ctx context.Context) error {
	if d.opts.Queue {
		return d.slot.Acquire(ctx, 1)
	}
	if !d.slot.TryAcquire(1) {
		return ErrBusy
	}
	return nil
}

func (d *Dispatcher) setState(state State, text string) {
	d.mu.Lock()
	d.snapshot = Snapshot{State: state, LastCommand: text}
	snapshot := d.snapshot
	d.mu.Unlock()

	if d.opts.OnStateChange != nil {
		d.opts.OnStateChange(snapshot)
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, text string) (result Result) {
	result = Result{Text: text}
	defer func() {
		if r := recover(); r != nil {
			result = failed(result, fmt.Errorf("panic while dispatching: %v", r))
		}
	}()

	result.Classification = command.Classify(text)
	switch result.Classification.Kind {
	case command.KindTaskCreation:
		return d.createTask(ctx, result)
	case command.KindJournalCreation:
		return d.createJournalEntry(ctx, result)
	default:
		return failed(result, ErrUnrecognized)
	}
}

func (d *Dispatcher) createTask(ctx context.Context, result Result) Result {
	fields, ok := command.ExtractTaskFields(result.Text)
	if !ok {
		return failed(result, fmt.Errorf("%w: title", ErrMissingField))
	}
	if d.tasks == nil {
		return failed(result, fmt.Errorf("%w: no task store", ErrMutationFailed))
	}

	created := task.Task{
		ID:       d.opts.NewID(),
		Title:    fields.Title,
		DueDate:  fields.DueDate,
		DueTime:  fields.DueTime,
		Priority: task.Priority(fields.Priority),
		IsToday:  fields.DueDate == task.DueToday,
	}
	if err := d.mutate(ctx, func(ctx context.Context) error {
		return d.tasks.Add(ctx, created)
	}); err != nil {
		return failed(result, err)
	}

	result.Task = &created
	return d.succeed(result)
}

func (d *Dispatcher) createJournalEntry(ctx context.Context, result Result) Result {
	fields, ok := command.ExtractJournalFields(result.Text)
	if !ok {
		return failed(result, fmt.Errorf("%w: content", ErrMissingField))
	}
	if d.journal == nil {
		return failed(result, fmt.Errorf("%w: no journal store", ErrMutationFailed))
	}

	created := journal.Entry{
		ID:         d.opts.NewID(),
		Content:    fields.Content,
		Date:       journal.DateToday,
		IsToday:    true,
		IsThisWeek: true,
	}
	if err := d.mutate(ctx, func(ctx context.Context) error {
		return d.journal.Add(ctx, created)
	}); err != nil {
		return failed(result, err)
	}

	result.Entry = &created
	return d.succeed(result)
}

// succeed records the command in history. It runs only after the store
// confirmed the mutation.
func (d *Dispatcher) succeed(result Result) Result {
	c := result.Classification
	cmd := command.New(d.opts.NewID(), result.Text, c.Intent, c.Category, d.opts.Now())
	if d.history != nil {
		d.history.Append(cmd)
	}
	result.Command = &cmd
	result.State = StateSuccess
	return result
}

// mutate runs fn under the mutation timeout. Errors and panics from fn are
// wrapped in ErrMutationFailed.
func (d *Dispatcher) mutate(ctx context.Context, fn func(context.Context) error) error {
	mutationCtx, cancel := context.WithTimeout(ctx, d.opts.MutationTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("%w: panic: %v", ErrMutationFailed, r)
			}
		}()
		if err := fn(mutationCtx); err != nil {
			done <- fmt.Errorf("%w: %w", ErrMutationFailed, err)
			return
		}
		done <- nil
	}()

	timedOut := func() bool {
		return ctx.Err() == nil && errors.Is(mutationCtx.Err(), context.DeadlineExceeded)
	}

	select {
	case err := <-done:
		if err != nil && timedOut() {
			return d.timeoutError()
		}
		return err
	case <-mutationCtx.Done():
		if timedOut() {
			return d.timeoutError()
		}
		return fmt.Errorf("%w: %w", ErrMutationFailed, ctx.Err())
	}
}

func (d *Dispatcher) timeoutError() error {
	return fmt.Errorf("%w after %s", ErrMutationTimeout, d.opts.MutationTimeout)
}

func failed(result Result, err error) Result {
	result.State = StateError
	result.Err = err
	result.Command = nil
	result.Task = nil
	result.Entry = nil
	return result
}
