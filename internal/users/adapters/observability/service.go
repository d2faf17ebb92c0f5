package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	userdomain "github.com/Apurer/go-users-api/internal/users/domain"
	userports "github.com/Apurer/go-users-api/internal/users/ports"
)

const tracerName = "github.com/Apurer/go-users-api/internal/users/adapters/observability/service"

// Service decorates the user service with tracing, logging, and metrics.
type Service struct {
	inner   userports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) { s.metrics = newServiceMetrics(m) }
}

// New wraps the core user service.
func New(inner userports.Service, opts ...Option) userports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

func (s *Service) CreateUser(ctx context.Context, user *userdomain.User) (*userdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.CreateUser")
	defer span.End()
	result, err := s.inner.CreateUser(ctx, user)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create user")
	}
	s.metrics.recordCreated(ctx)
	s.logInfo(ctx, "user created", slog.Int64("user.id", result.ID))
	return result, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (*userdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.GetUser", trace.WithAttributes(attribute.Int64("user.id", id)))
	defer span.End()
	result, err := s.inner.GetUser(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to get user", slog.Int64("user.id", id))
	}
	s.metrics.recordFetched(ctx)
	return result, nil
}

func (s *Service) UpdateUser(ctx context.Context, id int64, updated *userdomain.User) (*userdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.UpdateUser", trace.WithAttributes(attribute.Int64("user.id", id)))
	defer span.End()
	result, err := s.inner.UpdateUser(ctx, id, updated)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update user", slog.Int64("user.id", id))
	}
	s.metrics.recordUpdated(ctx)
	s.logInfo(ctx, "user updated", slog.Int64("user.id", id))
	return result, nil
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "UserService.DeleteUser", trace.WithAttributes(attribute.Int64("user.id", id)))
	defer span.End()
	if err := s.inner.DeleteUser(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete user", slog.Int64("user.id", id))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "user deleted", slog.Int64("user.id", id))
	return nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*userdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.ListUsers")
	defer span.End()
	result, err := s.inner.ListUsers(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list users")
	}
	span.SetAttributes(attribute.Int("user.count", len(result)))
	s.metrics.recordListed(ctx)
	return result, nil
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

type serviceMetrics struct {
	usersCreated metric.Int64Counter
	usersUpdated metric.Int64Counter
	usersDeleted metric.Int64Counter
	usersFetched metric.Int64Counter
	usersListed  metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("users.service.created", metric.WithDescription("Number of users created"))
	updated, _ := m.Int64Counter("users.service.updated", metric.WithDescription("Number of users updated"))
	deleted, _ := m.Int64Counter("users.service.deleted", metric.WithDescription("Number of users deleted"))
	fetched, _ := m.Int64Counter("users.service.fetched", metric.WithDescription("Number of single-user reads"))
	listed, _ := m.Int64Counter("users.service.listed", metric.WithDescription("Number of list operations"))
	return serviceMetrics{usersCreated: created, usersUpdated: updated, usersDeleted: deleted, usersFetched: fetched, usersListed: listed}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.usersCreated != nil {
		m.usersCreated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordUpdated(ctx context.Context) {
	if m.usersUpdated != nil {
		m.usersUpdated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.usersDeleted != nil {
		m.usersDeleted.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordFetched(ctx context.Context) {
	if m.usersFetched != nil {
		m.usersFetched.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordListed(ctx context.Context) {
	if m.usersListed != nil {
		m.usersListed.Add(ctx, 1)
	}
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
