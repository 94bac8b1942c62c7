package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/rl1809/volunteer-checkin/internal/core/domain"
	"github.com/rl1809/volunteer-checkin/internal/platform/metrics"
	"github.com/rl1809/volunteer-checkin/internal/port"
)

// maxTransitionAttempts bounds the lost-race loop. A lost race normally
// resolves on the next read.
const maxTransitionAttempts = 3

var tracer = otel.Tracer("github.com/rl1809/volunteer-checkin/internal/core/service")

type CheckInResult struct {
	Registration domain.Registration
	// Transitioned is false when the registration was already checked in.
	Transitioned bool
	// NameErr wraps ErrNameUpdateFailed. The check-in itself succeeded.
	NameErr error
}

type CheckInConfig struct {
	// WriteTimeout bounds writes issued after the caller may have gone away.
	WriteTimeout time.Duration
	QueueSize    int
}

type CheckInService struct {
	verifier     *RegistrationVerifier
	registry     port.RegistryRepository
	aggregates   *AggregateMaintainer
	log          *zap.Logger
	metrics      *metrics.Metrics
	writeTimeout time.Duration
	eventQueue   chan domain.CheckInEvent
	now          func() time.Time
}

func NewCheckInService(
	registry port.RegistryRepository,
	aggregates *AggregateMaintainer,
	log *zap.Logger,
	m *metrics.Metrics,
	cfg CheckInConfig,
) *CheckInService {
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 5 * time.Second
	}
	return &CheckInService{
		verifier:     NewRegistrationVerifier(registry),
		registry:     registry,
		aggregates:   aggregates,
		log:          log,
		metrics:      m,
		writeTimeout: cfg.WriteTimeout,
		eventQueue:   make(chan domain.CheckInEvent, cfg.QueueSize),
		now:          time.Now,
	}
}

// CheckIn confirms attendance for the volunteer registered to slotID under
// email. Repeating a successful check-in succeeds again without side effects.
// Errors are ErrNotRegistered or ErrStorageUnavailable.
func (s *CheckInService) CheckIn(ctx context.Context, slotID, name, email string) (*CheckInResult, error) {
	ctx, span := tracer.Start(ctx, "CheckInService.CheckIn")
	defer span.End()
	span.SetAttributes(attribute.String("slot.id", slotID))

	result, err := s.checkIn(ctx, slotID, name, email)
	switch {
	case err == nil && result.Transitioned:
		s.metrics.CheckIn(metrics.OutcomeCheckedIn)
	case err == nil:
		s.metrics.CheckIn(metrics.OutcomeAlreadyChecked)
	case errors.Is(err, ErrNotRegistered):
		s.metrics.CheckIn(metrics.OutcomeNotRegistered)
	default:
		s.metrics.CheckIn(metrics.OutcomeUnavailable)
		span.RecordError(err)
		span.SetStatus(codes.Error, "check-in failed")
		s.log.Error("check-in failed", zap.String("slot_id", slotID), zap.Error(err))
	}
	return result, err
}

func (s *CheckInService) checkIn(ctx context.Context, slotID, name, email string) (*CheckInResult, error) {
	for attempt := 1; attempt <= maxTransitionAttempts; attempt++ {
		reg, err := s.verifier.Verify(ctx, slotID, email)
		if err != nil {
			return nil, err
		}
		if reg.CheckedIn() {
			result := &CheckInResult{Registration: reg}
			s.settleRepeat(ctx, result, name)
			return result, nil
		}

		// Nothing has been written yet, so a cancelled request stops here.
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}

		at := s.now()
		committed, err := s.transition(ctx, reg.ID, at)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
		if !committed {
			s.log.Debug("lost check-in race, re-reading registration",
				zap.String("registration_id", reg.ID),
				zap.Int("attempt", attempt))
			continue
		}

		reg.State = domain.RegistrationStateCheckedIn
		reg.CheckInTime = &at
		result := &CheckInResult{Registration: reg, Transitioned: true}
		s.afterCommit(ctx, result, name)
		return result, nil
	}

	return nil, fmt.Errorf("%w: registration on slot %s kept refusing the transition", ErrStorageUnavailable, slotID)
}

// transition runs the conditional write detached from ctx cancellation so it
// either completes or fails on its own timeout.
func (s *CheckInService) transition(ctx context.Context, registrationID string, at time.Time) (bool, error) {
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.writeTimeout)
	defer cancel()
	return s.registry.TransitionIfRegistered(wctx, registrationID, at)
}

func (s *CheckInService) afterCommit(ctx context.Context, result *CheckInResult, name string) {
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.writeTimeout)
	defer cancel()

	s.updateName(wctx, result, name)
	s.increment(wctx, result.Registration)

	reg := result.Registration
	s.enqueue(domain.CheckInEvent{
		RegistrationID: reg.ID,
		SlotID:         reg.SlotID,
		PositionID:     reg.PositionID,
		VolunteerID:    reg.VolunteerID,
		Email:          reg.Email,
		CheckedInAt:    *reg.CheckInTime,
	})
}

// settleRepeat finishes follow-up writes a committed transition may have
// missed, e.g. when the write committed but reported an error. The increment
// is exactly-once per registration; an existing display name is kept.
func (s *CheckInService) settleRepeat(ctx context.Context, result *CheckInResult, name string) {
	if ctx.Err() != nil {
		return
	}
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.writeTimeout)
	defer cancel()

	if result.Registration.Name == "" {
		s.updateName(wctx, result, name)
	}
	s.increment(wctx, result.Registration)
}

func (s *CheckInService) updateName(ctx context.Context, result *CheckInResult, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	reg := result.Registration
	if err := s.registry.SetDisplayName(ctx, reg.VolunteerID, name); err != nil {
		result.NameErr = fmt.Errorf("%w: %w", ErrNameUpdateFailed, err)
		s.metrics.NameUpdateFailed()
		s.log.Warn("display name update failed after check-in",
			zap.String("volunteer_id", reg.VolunteerID),
			zap.Error(err))
		return
	}
	result.Registration.Name = name
}

func (s *CheckInService) increment(ctx context.Context, reg domain.Registration) {
	if _, err := s.aggregates.IncrementForCheckIn(ctx, reg); err != nil {
		// Reconcile picks up the uncounted registration later.
		s.metrics.IncrementFailed()
		s.log.Error("position counter increment failed",
			zap.String("registration_id", reg.ID),
			zap.String("position_id", reg.PositionID),
			zap.Error(err))
	}
}

func (s *CheckInService) enqueue(event domain.CheckInEvent) {
	select {
	case s.eventQueue <- event:
	default:
		s.metrics.EventDropped()
		s.log.Warn("check-in event queue full, dropping event",
			zap.String("registration_id", event.RegistrationID))
	}
}

func (s *CheckInService) GetEventQueue() <-chan domain.CheckInEvent {
	return s.eventQueue
}

// PublishLoop drains queue into publisher until ctx is done, then flushes
// whatever is still buffered.
func PublishLoop(ctx context.Context, id int, queue <-chan domain.CheckInEvent, publisher port.EventPublisher, log *zap.Logger, m *metrics.Metrics) {
	publish := func(event domain.CheckInEvent) {
		pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()

		if err := publisher.PublishCheckIn(pctx, event); err != nil {
			m.EventPublished(false)
			log.Error("publish check-in event failed",
				zap.Int("worker", id),
				zap.String("registration_id", event.RegistrationID),
				zap.Error(err))
			return
		}
		m.EventPublished(true)
	}

	for {
		select {
		case event := <-queue:
			publish(event)
		case <-ctx.Done():
			for {
				select {
				case event := <-queue:
					publish(event)
				default:
					return
				}
			}
		}
	}
}
