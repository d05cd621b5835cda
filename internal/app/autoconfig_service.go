// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/solace-autoconfig/internal/domain"
	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/binding"
	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/resolver"
	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/settings"
	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/cloud"
	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/telemetry"
	"github.com/jsamuelsen11/solace-autoconfig/internal/ports"
)

// Compile-time check that AutoConfigService implements ports.AutoConfigService.
var _ ports.AutoConfigService = (*AutoConfigService)(nil)

// Result attribute values recorded on resolution metrics.
const (
	resultSuccess = "success"
	resultError   = "error"
)

// Option configures an AutoConfigService.
type Option func(*AutoConfigService)

// WithMetrics records resolution and discovery metrics on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *AutoConfigService) {
		s.metrics = m
	}
}

// WithLabels sets the service labels named in binding-not-found errors.
func WithLabels(labels []string) Option {
	return func(s *AutoConfigService) {
		s.labels = slices.Clone(labels)
	}
}

// WithStrategy records the detection strategy name on spans and metrics.
func WithStrategy(name string) Option {
	return func(s *AutoConfigService) {
		s.strategy = name
	}
}

// AutoConfigService implements ports.AutoConfigService. It runs the
// configured cloud detector, asks the discoverer for bindings and hands both
// to the resolver together with the operator's local settings.
type AutoConfigService struct {
	detector   cloud.Detector
	env        cloud.Env
	discoverer ports.BindingDiscoverer
	local      settings.Local
	labels     []string
	strategy   string
	metrics    *telemetry.Metrics
	tracer     trace.Tracer
	logger     *slog.Logger
}

// NewAutoConfigService creates an AutoConfigService. A nil logger discards
// output.
func NewAutoConfigService(
	detector cloud.Detector,
	env cloud.Env,
	discoverer ports.BindingDiscoverer,
	local settings.Local,
	logger *slog.Logger,
	opts ...Option,
) *AutoConfigService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &AutoConfigService{
		detector:   detector,
		env:        env,
		discoverer: discoverer,
		local:      local,
		labels:     cloud.DefaultLabels,
		strategy:   cloud.StrategyServicesArray,
		tracer:     otel.Tracer(telemetry.InstrumentationName),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AutoConfigService) IsCloud() bool {
	return s.detector(s.env)
}

// Bindings returns the discovered bindings, or an empty slice outside cloud
// mode.
func (s *AutoConfigService) Bindings(ctx context.Context) ([]binding.Record, error) {
	if !s.IsCloud() {
		return []binding.Record{}, nil
	}
	return s.discover(ctx)
}

// Binding returns the binding with the given id.
func (s *AutoConfigService) Binding(ctx context.Context, id string) (binding.Record, error) {
	records, err := s.Bindings(ctx)
	if err != nil {
		return binding.Record{}, err
	}
	b, ok := binding.Find(records, id)
	if !ok {
		return binding.Record{}, &domain.BindingNotFoundError{ID: id, Labels: s.labels}
	}
	return b, nil
}

// Resolve merges local settings with the first discovered binding. It fails
// with a BindingNotFoundError when cloud mode is detected but nothing was
// discovered.
func (s *AutoConfigService) Resolve(ctx context.Context) (settings.Resolved, error) {
	ctx, span := s.tracer.Start(ctx, "autoconfig.Resolve",
		trace.WithAttributes(attribute.String(string(telemetry.AttrStrategy), s.strategy)))
	defer span.End()

	isCloud := s.IsCloud()
	span.SetAttributes(attribute.Bool("autoconfig.cloud", isCloud))

	var records []binding.Record
	if isCloud {
		var err error
		if records, err = s.discover(ctx); err != nil {
			return s.fail(ctx, span, "Resolve", err)
		}
		if len(records) > 1 {
			ids := make([]string, len(records))
			for i := range records {
				ids[i] = records[i].ID
			}
			s.logger.WarnContext(ctx, "multiple service bindings discovered, using the first",
				slog.Any("binding_ids", ids),
			)
		}
	}

	r, err := resolver.ResolveFirst(s.local, records, isCloud)
	if err != nil {
		return s.fail(ctx, span, "Resolve", s.withLabels(err))
	}
	return s.succeed(ctx, span, r), nil
}

// ResolveByID merges local settings with the binding that has id.
func (s *AutoConfigService) ResolveByID(ctx context.Context, id string) (settings.Resolved, error) {
	ctx, span := s.tracer.Start(ctx, "autoconfig.ResolveByID",
		trace.WithAttributes(attribute.String("autoconfig.binding_id", id)))
	defer span.End()

	records, err := s.Bindings(ctx)
	if err != nil {
		return s.fail(ctx, span, "ResolveByID", err)
	}

	r, err := resolver.ResolveByID(s.local, records, id)
	if err != nil {
		return s.fail(ctx, span, "ResolveByID", s.withLabels(err))
	}
	return s.succeed(ctx, span, r), nil
}

func (s *AutoConfigService) discover(ctx context.Context) ([]binding.Record, error) {
	records, err := s.discoverer.Discover(ctx)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.BindingsDiscovered.Record(ctx, int64(len(records)))
	}
	return records, nil
}

func (s *AutoConfigService) succeed(ctx context.Context, span trace.Span, r settings.Resolved) settings.Resolved {
	span.SetAttributes(
		attribute.String(string(telemetry.AttrSource), string(r.Source)),
		attribute.String("autoconfig.binding_id", r.BindingID),
	)

	attrs := []slog.Attr{
		slog.String("source", string(r.Source)),
		slog.String("host", r.Host),
		slog.String("msg_vpn", r.MsgVPN),
	}
	if r.BindingID != "" {
		attrs = append(attrs, slog.String("binding_id", r.BindingID))
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "resolved broker configuration", attrs...)
	s.logger.DebugContext(ctx, "resolved settings", slog.Any("settings", r))

	s.record(ctx, string(r.Source), resultSuccess)
	return r
}

func (s *AutoConfigService) fail(ctx context.Context, span trace.Span, op string, err error) (settings.Resolved, error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	s.logger.ErrorContext(ctx, "failed to resolve broker configuration",
		slog.String("operation", op),
		slog.Any("error", err),
	)
	s.record(ctx, "none", resultError)
	return settings.Resolved{}, err
}

func (s *AutoConfigService) record(ctx context.Context, source, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.ResolutionTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrSource.String(source),
		telemetry.AttrStrategy.String(s.strategy),
		telemetry.AttrResult.String(result),
	))
}

// withLabels names the configured service labels in a not-found error that
// does not already carry them.
func (s *AutoConfigService) withLabels(err error) error {
	var nf *domain.BindingNotFoundError
	if errors.As(err, &nf) && len(nf.Labels) == 0 {
		return &domain.BindingNotFoundError{ID: nf.ID, Labels: s.labels}
	}
	return err
}
