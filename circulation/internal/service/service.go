package service

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
	"github.com/Astemirdum/library-circulation/pkg/auth"
	"github.com/Astemirdum/library-circulation/pkg/clock"
)

// Recorder receives one activity record per successful mutating call.
type Recorder interface {
	Record(ctx context.Context, a model.Activity)
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, model.Activity) {}

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	clock    clock.Clock
	defaults model.Policy
	policy   atomic.Pointer[model.Policy]
	activity Recorder
}

type Option func(*Service)

func WithClock(c clock.Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

// WithPolicy sets the policy used until settings are loaded with ReloadPolicy.
func WithPolicy(p model.Policy) Option {
	return func(s *Service) {
		s.defaults = p
	}
}

func WithActivity(r Recorder) Option {
	return func(s *Service) {
		s.activity = r
	}
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:      log.Named("service"),
		repo:     repo,
		clock:    clock.NewSystem(),
		defaults: model.DefaultPolicy(),
		activity: nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	p := s.defaults
	s.policy.Store(&p)
	return s
}

func (s *Service) Policy() model.Policy {
	return *s.policy.Load()
}

// ReloadPolicy overlays the stored settings on the configured defaults and swaps the result in.
// An invalid combination is rejected and the current policy kept.
func (s *Service) ReloadPolicy(ctx context.Context) (model.Policy, error) {
	settings, err := s.repo.ListSettings(ctx)
	if err != nil {
		return model.Policy{}, errors.Wrap(err, "ListSettings")
	}
	p, err := s.defaults.WithSettings(settings)
	if err != nil {
		return model.Policy{}, errors.Wrap(err, "resolve policy")
	}
	s.policy.Store(&p)
	s.log.Info("policy loaded",
		zap.Int("loan_days", p.LoanDays),
		zap.Stringer("fine_rate_per_day", p.FineRatePerDay),
		zap.Stringer("max_fine_before_block", p.MaxFineBeforeBlock),
	)
	return p, nil
}

func requirePermission(actor auth.Principal, perm auth.Permission) error {
	if !actor.Can(perm) {
		return errors.Wrapf(errs.ErrForbidden, "%s required", perm)
	}
	return nil
}

// checkID rejects malformed ids as NotFound before they reach storage.
func checkID(id, entity string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errs.NotFound(entity)
	}
	return nil
}

func newID() string {
	return uuid.NewString()
}

type clientInfoKey struct{}

type clientInfo struct {
	ip        string
	userAgent string
}

// WithClientInfo attaches the caller's address and user agent to activity records.
func WithClientInfo(ctx context.Context, ip, userAgent string) context.Context {
	return context.WithValue(ctx, clientInfoKey{}, clientInfo{ip: ip, userAgent: userAgent})
}

func (s *Service) record(ctx context.Context, actor auth.Principal, action, entityType, entityID string, details map[string]any) {
	info, _ := ctx.Value(clientInfoKey{}).(clientInfo)
	s.activity.Record(context.WithoutCancel(ctx), model.Activity{
		ID:         newID(),
		UserID:     actor.UserID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		IPAddress:  info.ip,
		UserAgent:  info.userAgent,
		Timestamp:  s.clock.Now(),
	})
}
