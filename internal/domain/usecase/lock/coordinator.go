package lock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/document-lock/internal/domain/entity"
	errs "github.com/amirhossein-jamali/document-lock/internal/domain/error"
	coreport "github.com/amirhossein-jamali/document-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/document-lock/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/document-lock/internal/domain/port/usecase"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/amirhossein-jamali/document-lock/internal/domain/usecase/lock")

// Coordinator grants and releases document locks. Every decision is taken on
// a fresh read of the lock store, so several coordinator processes may share one store.
type Coordinator struct {
	uow          persistence.UnitOfWork
	transactions persistence.TransactionCoordinator
	registry     *Registry
	ids          coreport.IDGenerator
	clock        coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.LockMetrics
	cfg          Config
}

var _ usecase.LockUseCase = (*Coordinator)(nil)

// NewCoordinator creates a lock coordinator. metrics may be nil.
func NewCoordinator(
	uow persistence.UnitOfWork,
	transactions persistence.TransactionCoordinator,
	registry *Registry,
	ids coreport.IDGenerator,
	clock coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.LockMetrics,
	cfg Config,
) *Coordinator {
	if uow == nil || transactions == nil || registry == nil {
		panic("lock coordinator requires a unit of work, a transaction coordinator and a registry")
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Coordinator{
		uow:          uow,
		transactions: transactions,
		registry:     registry,
		ids:          ids,
		clock:        clock,
		logger:       logger,
		metrics:      metrics,
		cfg:          cfg.withDefaults(),
	}
}

// Registry returns the coordinator's active-transaction registry
func (c *Coordinator) Registry() *Registry {
	return c.registry
}

// Acquire grants holder every entry. See usecase.LockUseCase.
func (c *Coordinator) Acquire(
	ctx context.Context,
	holder entity.Holder,
	kind entity.LockKind,
	reason string,
	entries []entity.LockEntry,
) (_ *entity.Lock, err error) {
	start := c.clock.Now()
	holder.Name = strings.TrimSpace(holder.Name)
	ctx, span := tracer.Start(ctx, "Coordinator.Acquire", trace.WithAttributes(
		attribute.String("lock.holder", holder.Name),
		attribute.String("lock.kind", string(kind)),
		attribute.Int("lock.entries", len(entries)),
	))
	defer span.End()

	outcome := coreport.AcquireOutcomeError
	defer func() {
		c.metrics.AcquireCompleted(string(kind), outcome, c.clock.Since(start).Std())
		if err != nil && !errs.IsLockConflictError(err) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "acquire failed")
		}
	}()

	entries, err = validateRequest(holder, kind, entries)
	if err != nil {
		outcome = coreport.AcquireOutcomeInvalid
		return nil, err
	}

	scope := entity.ManualScope(holder.Name)
	if kind == entity.LockKindTransactionScoped {
		txID, ok := c.transactions.CurrentTransactionID(ctx)
		if !ok {
			outcome = coreport.AcquireOutcomeInvalid
			return nil, errs.ErrNoActiveTransaction
		}
		scope = entity.TransactionScope(txID)
		span.SetAttributes(attribute.String("lock.transaction_id", txID))
	}

	ctx, cancel := c.clock.WithTimeout(ctx, coreport.Duration(c.cfg.AcquireTimeout))
	defer cancel()

	var (
		lock    *entity.Lock
		created bool
	)
	err = retryOnStoreRace(ctx, c.cfg, c.clock, c.logger, func() error {
		var opErr error
		lock, created, opErr = c.acquireOnce(ctx, holder, reason, scope, entries)
		return opErr
	})

	var conflict *ConflictError
	switch {
	case errors.As(err, &conflict):
		outcome = coreport.AcquireOutcomeConflict
		c.logger.Info("Lock request conflicts with existing locks", conflict.LogFields())
		return nil, err
	case errs.IsValidationError(err):
		outcome = coreport.AcquireOutcomeInvalid
		return nil, err
	case err != nil:
		var infra *InfrastructureError
		if !errors.As(err, &infra) {
			err = infraError("acquire", err)
		}
		c.logger.Error("Failed to acquire lock", map[string]any{
			"holder": holder.Name,
			"kind":   string(kind),
			"owner":  scope.Owner(),
			"error":  err.Error(),
		})
		return nil, err
	}

	if !created {
		outcome = coreport.AcquireOutcomeReused
		c.logger.Debug("Requested entries already held, reusing lock", map[string]any{
			"lock_id": lock.ID,
			"owner":   scope.Owner(),
		})
		return lock, nil
	}

	if kind == entity.LockKindTransactionScoped {
		if err = c.enlist(ctx, scope.TransactionID, lock); err != nil {
			c.logger.Error("Failed to register completion adapter, lock withdrawn", map[string]any{
				"lock_id":        lock.ID,
				"transaction_id": scope.TransactionID,
				"error":          err.Error(),
			})
			return nil, infraError("register completion", err)
		}
	}

	outcome = coreport.AcquireOutcomeCreated
	span.SetAttributes(attribute.String("lock.id", lock.ID))
	c.logger.Info("Lock acquired", map[string]any{
		"lock_id":        lock.ID,
		"holder":         holder.Name,
		"kind":           string(kind),
		"transaction_id": lock.TransactionID,
		"entries":        len(lock.Entries),
	})
	return lock, nil
}

// TryAcquire is Acquire with a tagged result
func (c *Coordinator) TryAcquire(
	ctx context.Context,
	holder entity.Holder,
	kind entity.LockKind,
	reason string,
	entries []entity.LockEntry,
) usecase.AcquireResult {
	lock, err := c.Acquire(ctx, holder, kind, reason, entries)
	var conflict *ConflictError
	switch {
	case err == nil:
		return usecase.Acquired(lock)
	case errors.As(err, &conflict):
		return usecase.Conflicted(conflict.Conflicts)
	default:
		return usecase.Failed(err)
	}
}

// acquireOnce runs one conflicts/existing/write sequence in its own unit of work,
// so the new lock is visible to other processes as soon as it returns.
// created is false when an existing lock of the same owner already covers entries.
func (c *Coordinator) acquireOnce(
	ctx context.Context,
	holder entity.Holder,
	reason string,
	scope entity.LockScope,
	entries []entity.LockEntry,
) (lock *entity.Lock, created bool, err error) {
	txCtx, err := c.uow.Begin(ctx)
	if err != nil {
		return nil, false, infraError("begin", err)
	}
	done := false
	defer func() {
		if !done {
			if rbErr := c.uow.Rollback(txCtx); rbErr != nil {
				c.logger.Warn("Failed to roll back acquire unit of work", map[string]any{"error": rbErr.Error()})
			}
		}
	}()

	store := c.uow.GetLockStore(txCtx)

	conflicts, err := conflictsFor(txCtx, store, scope, entries)
	if err != nil {
		return nil, false, infraError("find conflicts", err)
	}
	if len(conflicts) > 0 {
		return nil, false, &ConflictError{Scope: scope, Requested: entries, Conflicts: conflicts}
	}

	existing, err := existingFor(txCtx, store, scope)
	if err != nil {
		return nil, false, infraError("find existing", err)
	}

	remaining := entity.SubtractEntries(entries, entity.CoveredEntries(existing))
	if len(remaining) == 0 {
		if err := c.uow.Commit(txCtx); err != nil {
			return nil, false, infraError("commit", err)
		}
		done = true
		return reusableLock(existing, entries), false, nil
	}

	lock, err = entity.NewLock(
		c.ids.NewID(),
		scope.Kind,
		holder,
		reason,
		scope.TransactionID,
		c.clock.Now(),
		remaining,
	)
	if err != nil {
		return nil, false, err
	}

	if err := store.Save(txCtx, lock); err != nil {
		return nil, false, infraError("save", err)
	}
	if err := c.uow.Commit(txCtx); err != nil {
		return nil, false, infraError("commit", err)
	}
	done = true
	return lock, true, nil
}

// enlist hands a new transaction-scoped lock to the adapter of its transaction,
// registering the adapter with the transaction coordinator on first use.
// On failure the lock is released again.
func (c *Coordinator) enlist(ctx context.Context, txID string, lock *entity.Lock) error {
	adapter, loaded := c.registry.LoadOrStore(txID, newCompletionAdapter(txID, c))
	if !adapter.track(lock) {
		c.ReleaseByID(ctx, lock.ID)
		return fmt.Errorf("%w: %s", errs.ErrTransactionCompleted, txID)
	}
	if loaded {
		return nil
	}

	if err := c.transactions.RegisterSynchronization(ctx, adapter); err != nil {
		// firing releases every lock tracked so far and clears the registry entry
		adapter.AfterCompletion(context.WithoutCancel(ctx), persistence.StatusRolledBack)
		return err
	}

	c.metrics.AdaptersArmed(c.registry.Len())
	c.logger.Debug("Completion adapter registered", map[string]any{
		"transaction_id": txID,
	})
	return nil
}

// Release deletes the lock in an independent unit of work. It never fails
// loudly: false is returned and a warning logged instead.
func (c *Coordinator) Release(ctx context.Context, lock *entity.Lock) bool {
	if lock == nil {
		c.logger.Warn("Release called without a lock", nil)
		c.metrics.ReleaseCompleted(false)
		return false
	}
	return c.ReleaseByID(ctx, lock.ID)
}

// ReleaseByID deletes the lock with the given id, see Release
func (c *Coordinator) ReleaseByID(ctx context.Context, id string) bool {
	ctx, span := tracer.Start(context.WithoutCancel(ctx), "Coordinator.Release", trace.WithAttributes(
		attribute.String("lock.id", id),
	))
	defer span.End()

	ctx, cancel := c.clock.WithTimeout(ctx, coreport.Duration(c.cfg.ReleaseTimeout))
	defer cancel()

	released, err := c.deleteLock(ctx, id)
	c.metrics.ReleaseCompleted(err == nil)
	if err != nil {
		span.RecordError(err)
		c.logger.Warn("Failed to release lock", map[string]any{
			"lock_id": id,
			"error":   err.Error(),
		})
		return false
	}

	if released.Kind == entity.LockKindTransactionScoped {
		if adapter, ok := c.registry.Get(released.TransactionID); ok {
			adapter.untrack(released.ID)
		}
	}

	c.logger.Info("Lock released", map[string]any{
		"lock_id": released.ID,
		"holder":  released.Holder.Name,
		"kind":    string(released.Kind),
	})
	return true
}

func (c *Coordinator) deleteLock(ctx context.Context, id string) (*entity.Lock, error) {
	if id == "" {
		return nil, errs.ErrLockNotFound
	}

	txCtx, err := c.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	store := c.uow.GetLockStore(txCtx)

	lock, err := store.ByID(txCtx, id)
	if err == nil {
		err = store.DeleteByID(txCtx, id)
	}
	if err == nil {
		err = c.uow.Commit(txCtx)
		if err == nil {
			return lock, nil
		}
	}

	if rbErr := c.uow.Rollback(txCtx); rbErr != nil {
		c.logger.Debug("Rollback after failed release", map[string]any{"error": rbErr.Error()})
	}
	return nil, err
}

// FindConflicts returns the locks that block scope from acquiring entries
func (c *Coordinator) FindConflicts(ctx context.Context, scope entity.LockScope, entries []entity.LockEntry) ([]*entity.Lock, error) {
	scope.HolderName = strings.TrimSpace(scope.HolderName)
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errs.ErrEmptyEntries
	}
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
	}

	ctx, span := tracer.Start(ctx, "Coordinator.FindConflicts")
	defer span.End()

	conflicts, err := conflictsFor(ctx, c.uow.GetLockStore(ctx), scope, entity.DeduplicateEntries(entries))
	if err != nil {
		return nil, infraError("find conflicts", err)
	}
	return conflicts, nil
}

// FindAll returns every active lock
func (c *Coordinator) FindAll(ctx context.Context) ([]*entity.Lock, error) {
	locks, err := c.uow.GetLockStore(ctx).FindAll(ctx)
	if err != nil {
		return nil, infraError("find all", err)
	}
	return locks, nil
}

// FindByHolder returns every lock held by holderName
func (c *Coordinator) FindByHolder(ctx context.Context, holderName string) ([]*entity.Lock, error) {
	holder, err := entity.NewHolder(holderName)
	if err != nil {
		return nil, err
	}
	locks, err := c.uow.GetLockStore(ctx).ByHolder(ctx, holder.Name)
	if err != nil {
		return nil, infraError("find by holder", err)
	}
	return locks, nil
}

// FindByID returns one lock
func (c *Coordinator) FindByID(ctx context.Context, id string) (*entity.Lock, error) {
	lock, err := c.uow.GetLockStore(ctx).ByID(ctx, id)
	if err != nil {
		if errs.IsLockNotFoundError(err) {
			return nil, err
		}
		return nil, infraError("find by id", err)
	}
	return lock, nil
}

func validateRequest(holder entity.Holder, kind entity.LockKind, entries []entity.LockEntry) ([]entity.LockEntry, error) {
	if err := holder.Validate(); err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidLockKind, kind)
	}
	if len(entries) == 0 {
		return nil, errs.ErrEmptyEntries
	}
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
	}
	return entity.DeduplicateEntries(entries), nil
}

// reusableLock picks the existing lock that best certifies entries: one
// covering all of them if there is one, otherwise the one covering the most.
// Ties go to the oldest lock. existing must cover entries as a whole.
func reusableLock(existing []*entity.Lock, entries []entity.LockEntry) *entity.Lock {
	var best *entity.Lock
	bestCovered := -1
	for _, l := range existing {
		covered := 0
		for _, e := range entries {
			if l.Covers(e) {
				covered++
			}
		}
		if covered == len(entries) {
			return l
		}
		if covered > bestCovered {
			best, bestCovered = l, covered
		}
	}
	return best
}

// conflictsFor runs the conflict query matching the scope's kind. Manual and
// transaction-scoped locks are checked against their own kind only.
func conflictsFor(ctx context.Context, store persistence.LockStore, scope entity.LockScope, entries []entity.LockEntry) ([]*entity.Lock, error) {
	if scope.Kind == entity.LockKindTransactionScoped {
		return store.ConflictsForTransaction(ctx, scope.TransactionID, entries)
	}
	return store.ConflictsForHolder(ctx, scope.HolderName, entries)
}

// existingFor returns the locks already owned by the scope
func existingFor(ctx context.Context, store persistence.LockStore, scope entity.LockScope) ([]*entity.Lock, error) {
	if scope.Kind == entity.LockKindTransactionScoped {
		return store.ByTransaction(ctx, scope.TransactionID)
	}
	locks, err := store.ByHolder(ctx, scope.HolderName)
	if err != nil {
		return nil, err
	}
	manual := locks[:0]
	for _, l := range locks {
		if l.Kind == entity.LockKindManual {
			manual = append(manual, l)
		}
	}
	return manual, nil
}

type noopMetrics struct{}

func (noopMetrics) AcquireCompleted(string, string, time.Duration) {}
func (noopMetrics) ReleaseCompleted(bool)                          {}
func (noopMetrics) AdaptersArmed(int)                              {}
