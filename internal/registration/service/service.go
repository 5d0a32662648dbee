package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"wcg/internal/platform/metrics"
	"wcg/internal/platform/privacy"
	"wcg/internal/registration/models"
	"wcg/internal/sentinel"
	"wcg/pkg/citizen"
	id "wcg/pkg/domain"
	dErrors "wcg/pkg/domain-errors"
	"wcg/pkg/platform/middleware/requesttime"
)

// Store defines the persistence interface for citizen registrations.
// Error Contract:
// - Insert returns sentinel.ErrAlreadyExists for a registered ID
// - Delete returns sentinel.ErrNotFound for an unregistered ID
type Store interface {
	Get(ctx context.Context, citizenID id.CitizenID) (models.Registration, error)
	Insert(ctx context.Context, c models.Citizen, at time.Time) error
	Delete(ctx context.Context, citizenID id.CitizenID) error
	Count(ctx context.Context) (int, error)
}

type Option func(*Service)

// Service applies the registration rules and drives the per-ID state machine
// Unregistered -> Registered.
type Service struct {
	store      Store
	metrics    *metrics.Metrics
	logger     *slog.Logger
	now        func(ctx context.Context) time.Time
	minimumAge int
}

func New(store Store, logger *slog.Logger, opts ...Option) *Service {
	svc := &Service{
		store:      store,
		logger:     logger,
		now:        requesttime.Now,
		minimumAge: id.MinimumAge,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// WithMetrics sets the metrics instance for the service.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithClock overrides the time source used for age checks and timestamps.
// By default the request-scoped time from requesttime is used.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = func(context.Context) time.Time { return now() }
		}
	}
}

// WithMinimumAge overrides the minimum registration age in years.
func WithMinimumAge(years int) Option {
	return func(s *Service) {
		if years > 0 {
			s.minimumAge = years
		}
	}
}

// Register validates rec and registers the citizen.
//
// Rules are checked in a fixed order and the first failure wins: missing
// attribute, citizen ID format, birth date format, minimum age, duplicate.
func (s *Service) Register(ctx context.Context, rec citizen.Record) (*models.Registration, error) {
	now := s.now(ctx)

	c, err := s.validate(rec, now)
	if err != nil {
		s.observe(ctx, rec.CitizenID, err)
		return nil, err
	}

	if err := s.store.Insert(ctx, *c, now); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyExists) {
			err = dErrors.New(dErrors.CodeAlreadyRegistered, citizen.FeedbackAlreadyRegistered)
		} else {
			err = dErrors.Wrap(err, dErrors.CodeInternal, "registration failed: internal error")
		}
		s.observe(ctx, rec.CitizenID, err)
		return nil, err
	}

	s.observe(ctx, rec.CitizenID, nil)
	s.refreshGauge(ctx)
	reg := models.Registered(*c, now)
	return &reg, nil
}

func (s *Service) validate(rec citizen.Record, now time.Time) (*models.Citizen, error) {
	if len(rec.MissingFields()) > 0 {
		return nil, dErrors.New(dErrors.CodeMissingAttribute, citizen.FeedbackMissingAttribute)
	}

	citizenID, err := id.ParseCitizenID(rec.CitizenID)
	if err != nil {
		return nil, err
	}

	birthDate, err := id.ParseBirthDate(rec.BirthDate)
	if err != nil {
		return nil, err
	}

	if !id.MeetsMinimumAge(birthDate, now, s.minimumAge) {
		return nil, dErrors.New(dErrors.CodeBelowMinimumAge, citizen.FeedbackBelowMinimumAge)
	}

	return &models.Citizen{
		ID:         citizenID,
		Name:       rec.Name,
		Surname:    rec.Surname,
		BirthDate:  birthDate,
		Occupation: rec.Occupation,
		Address:    rec.Address,
	}, nil
}

// Status reports the registration state of a raw citizen ID.
func (s *Service) Status(ctx context.Context, citizenID string) (models.Registration, error) {
	return s.store.Get(ctx, id.CitizenID(citizenID))
}

// Remove returns a citizen to the unregistered state.
func (s *Service) Remove(ctx context.Context, citizenID string) error {
	if citizenID == "" {
		return dErrors.New(dErrors.CodeBadRequest, citizen.FeedbackMissingAttribute)
	}

	err := s.store.Delete(ctx, id.CitizenID(citizenID))
	found := err == nil
	if s.metrics != nil {
		s.metrics.IncrementRemovals(found)
	}
	switch {
	case found:
		s.logger.InfoContext(ctx, "citizen removed", "citizen_id", privacy.MaskCitizenID(citizenID))
		s.refreshGauge(ctx)
		return nil
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, citizen.FeedbackNotFound)
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "citizen removal failed: internal error")
	}
}

func (s *Service) observe(ctx context.Context, citizenID string, err error) {
	outcome := "success"
	if err != nil {
		outcome = string(dErrors.CodeInternal)
		var domainErr *dErrors.Error
		if errors.As(err, &domainErr) {
			outcome = string(domainErr.Code)
		}
		s.logger.InfoContext(ctx, "registration rejected",
			"citizen_id", privacy.MaskCitizenID(citizenID),
			"outcome", outcome,
		)
	} else {
		s.logger.InfoContext(ctx, "registration accepted", "citizen_id", privacy.MaskCitizenID(citizenID))
	}
	if s.metrics != nil {
		s.metrics.IncrementRegistrations(outcome)
	}
}

func (s *Service) refreshGauge(ctx context.Context) {
	if s.metrics == nil {
		return
	}
	if n, err := s.store.Count(ctx); err == nil {
		s.metrics.SetRegisteredCitizens(n)
	}
}
