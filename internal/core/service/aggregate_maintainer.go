package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rl1809/volunteer-checkin/internal/core/domain"
	"github.com/rl1809/volunteer-checkin/internal/platform/metrics"
	"github.com/rl1809/volunteer-checkin/internal/port"
)

const reconcileLeaseKey = "reconcile-positions"

// ReconcileReport describes one position's reconciliation.
type ReconcileReport struct {
	PositionID string
	Swept      int   // missed increments applied
	Previous   int64 // counter after the sweep, before recompute
	Current    int64
}

func (r ReconcileReport) Drift() int64 {
	return r.Current - r.Previous
}

// AggregateMaintainer owns Position.VolunteersCheckedIn. Increments go through
// the registry's atomic counter; Reconcile heals increments that never landed.
type AggregateMaintainer struct {
	registry port.RegistryRepository
	counters port.CounterRepository
	lease    port.LeaseRepository
	log      *zap.Logger
	metrics  *metrics.Metrics
	workers  int
	owner    string
}

func NewAggregateMaintainer(
	registry port.RegistryRepository,
	counters port.CounterRepository,
	lease port.LeaseRepository,
	log *zap.Logger,
	m *metrics.Metrics,
	workers int,
) *AggregateMaintainer {
	if workers < 1 {
		workers = 1
	}
	return &AggregateMaintainer{
		registry: registry,
		counters: counters,
		lease:    lease,
		log:      log,
		metrics:  m,
		workers:  workers,
		owner:    uuid.NewString(),
	}
}

// IncrementForCheckIn adds the registration to its position's counter. Calling
// it again for the same registration leaves the counter unchanged.
func (a *AggregateMaintainer) IncrementForCheckIn(ctx context.Context, reg domain.Registration) (int64, error) {
	value, applied, err := a.counters.IncrementCounter(ctx, reg.PositionID, reg.ID, 1)
	if err != nil {
		return 0, fmt.Errorf("increment position %s: %w", reg.PositionID, err)
	}
	if !applied {
		a.log.Debug("registration already counted",
			zap.String("registration_id", reg.ID),
			zap.String("position_id", reg.PositionID))
	}
	return value, nil
}

// Reconcile applies any missed increments for the position, then resets the
// counter to the number of counted check-ins.
func (a *AggregateMaintainer) Reconcile(ctx context.Context, positionID string) (ReconcileReport, error) {
	ctx, span := tracer.Start(ctx, "AggregateMaintainer.Reconcile",
		trace.WithAttributes(attribute.String("position.id", positionID)))
	defer span.End()

	report := ReconcileReport{PositionID: positionID}

	uncounted, err := a.counters.ListUncounted(ctx, positionID)
	if err != nil {
		return report, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	for _, reg := range uncounted {
		_, applied, err := a.counters.IncrementCounter(ctx, positionID, reg.ID, 1)
		if err != nil {
			return report, storageErr(err)
		}
		if applied {
			report.Swept++
		}
	}

	report.Previous, report.Current, err = a.counters.RecomputeCounter(ctx, positionID)
	if err != nil {
		return report, storageErr(err)
	}

	a.metrics.Reconciled(report.Swept, report.Drift())
	if report.Swept > 0 || report.Drift() != 0 {
		a.log.Warn("position counter reconciled",
			zap.String("position_id", positionID),
			zap.Int("swept", report.Swept),
			zap.Int64("previous", report.Previous),
			zap.Int64("current", report.Current))
	}
	return report, nil
}

// ReconcileAll reconciles every position with at most workers in flight.
func (a *AggregateMaintainer) ReconcileAll(ctx context.Context) ([]ReconcileReport, error) {
	ids, err := a.registry.ListPositionIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	reports := make([]ReconcileReport, len(ids))
	var g errgroup.Group
	g.SetLimit(a.workers)
	for i, id := range ids {
		g.Go(func() error {
			report, err := a.Reconcile(ctx, id)
			if err != nil {
				a.log.Error("reconcile position failed", zap.String("position_id", id), zap.Error(err))
				return err
			}
			reports[i] = report
			return nil
		})
	}
	return reports, g.Wait()
}

// Run reconciles all positions immediately and then every interval until ctx
// is done. A round is skipped when another node holds the lease.
func (a *AggregateMaintainer) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		a.runRound(ctx, interval)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (a *AggregateMaintainer) runRound(ctx context.Context, ttl time.Duration) {
	ok, err := a.lease.AcquireLease(ctx, reconcileLeaseKey, a.owner, ttl)
	if err != nil {
		a.log.Error("acquire reconcile lease", zap.Error(err))
		return
	}
	if !ok {
		a.log.Debug("reconcile lease held elsewhere, skipping round")
		return
	}
	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := a.lease.ReleaseLease(releaseCtx, reconcileLeaseKey, a.owner); err != nil {
			a.log.Warn("release reconcile lease", zap.Error(err))
		}
	}()

	start := time.Now()
	reports, err := a.ReconcileAll(ctx)
	if err != nil {
		a.log.Error("reconcile round failed", zap.Error(err))
	}
	a.log.Info("reconcile round finished",
		zap.Int("positions", len(reports)),
		zap.Duration("elapsed", time.Since(start)))
}

func storageErr(err error) error {
	if errors.Is(err, domain.ErrPositionNotFound) {
		return ErrPositionNotFound
	}
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}
