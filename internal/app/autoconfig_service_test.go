package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/solace-autoconfig/internal/domain"
	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/binding"
	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/settings"
	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/cloud"
	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/telemetry"
	"github.com/jsamuelsen11/solace-autoconfig/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func detectorReturning(v bool) cloud.Detector {
	return func(cloud.Env) bool { return v }
}

func sampleBinding() binding.Record {
	return binding.Record{
		ID:        "test-service-instance-name",
		Label:     "solace-messaging",
		Hosts:     []string{"tcp://192.168.1.50:7000"},
		Namespace: "sample-msg-vpn",
		Username:  "sample-client-username",
		Password:  "sample-client-password",
	}
}

func newService(t *testing.T, isCloud bool, opts ...Option) (*AutoConfigService, *mocks.MockBindingDiscoverer) {
	t.Helper()
	disc := mocks.NewMockBindingDiscoverer(t)
	svc := NewAutoConfigService(detectorReturning(isCloud), cloud.MapEnv(nil), disc, settings.Defaults(), discardLogger(), opts...)
	return svc, disc
}

func TestNewAutoConfigService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewAutoConfigService(detectorReturning(false), nil, mocks.NewMockBindingDiscoverer(t), settings.Defaults(), nil)
	if svc.logger == nil {
		t.Fatal("NewAutoConfigService(nil logger) should create a discard logger, got nil")
	}
}

func TestAutoConfigService_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("not cloud skips discovery", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t, false)

		got, err := svc.Resolve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, settings.SourceLocal, got.Source)
		assert.Equal(t, settings.DefaultHost, got.Host)
	})

	t.Run("cloud resolves first binding", func(t *testing.T) {
		t.Parallel()
		svc, disc := newService(t, true)
		second := binding.Record{ID: "second", Hosts: []string{"tcp://second:1"}}
		disc.EXPECT().Discover(mock.Anything).Return([]binding.Record{sampleBinding(), second}, nil).Once()

		got, err := svc.Resolve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tcp://192.168.1.50:7000", got.Host)
		assert.Equal(t, "sample-msg-vpn", got.MsgVPN)
		assert.Equal(t, "sample-client-username", got.ClientUsername)
		assert.Equal(t, "sample-client-password", got.ClientPassword)
		assert.Equal(t, "test-service-instance-name", got.BindingID)
		assert.Equal(t, settings.SourceCloud, got.Source)
	})

	t.Run("cloud without bindings names labels", func(t *testing.T) {
		t.Parallel()
		svc, disc := newService(t, true, WithLabels([]string{"solace-pubsub"}))
		disc.EXPECT().Discover(mock.Anything).Return([]binding.Record{}, nil).Once()

		_, err := svc.Resolve(context.Background())
		require.ErrorIs(t, err, domain.ErrBindingNotFound)

		var nf *domain.BindingNotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, []string{"solace-pubsub"}, nf.Labels)
		assert.Contains(t, err.Error(), "solace-pubsub")
	})

	t.Run("discovery error propagates", func(t *testing.T) {
		t.Parallel()
		svc, disc := newService(t, true)
		discErr := fmt.Errorf("decoding VCAP_SERVICES: %w", domain.ErrMalformedBinding)
		disc.EXPECT().Discover(mock.Anything).Return(nil, discErr).Once()

		_, err := svc.Resolve(context.Background())
		assert.ErrorIs(t, err, domain.ErrMalformedBinding)
	})
}

func TestAutoConfigService_Bindings(t *testing.T) {
	t.Parallel()

	t.Run("not cloud returns empty", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t, false)

		got, err := svc.Bindings(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("cloud returns discovered list", func(t *testing.T) {
		t.Parallel()
		svc, disc := newService(t, true)
		disc.EXPECT().Discover(mock.Anything).Return([]binding.Record{sampleBinding()}, nil).Once()

		got, err := svc.Bindings(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "test-service-instance-name", got[0].ID)
	})
}

func TestAutoConfigService_Binding(t *testing.T) {
	t.Parallel()

	svc, disc := newService(t, true)
	disc.EXPECT().Discover(mock.Anything).Return([]binding.Record{sampleBinding()}, nil).Twice()

	got, err := svc.Binding(context.Background(), "test-service-instance-name")
	require.NoError(t, err)
	assert.Equal(t, "sample-msg-vpn", got.Namespace)

	_, err = svc.Binding(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrBindingNotFound)
	assert.True(t, strings.Contains(err.Error(), `"nope"`))
}

func TestAutoConfigService_ResolveByID(t *testing.T) {
	t.Parallel()

	svc, disc := newService(t, true)
	other := binding.Record{ID: "other", Hosts: []string{"tcp://other:1"}}
	disc.EXPECT().Discover(mock.Anything).Return([]binding.Record{sampleBinding(), other}, nil).Twice()

	got, err := svc.ResolveByID(context.Background(), "other")
	require.NoError(t, err)
	assert.Equal(t, "tcp://other:1", got.Host)
	assert.Equal(t, settings.DefaultMsgVPN, got.MsgVPN)

	_, err = svc.ResolveByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrBindingNotFound)
}

func TestAutoConfigService_IsCloud(t *testing.T) {
	t.Parallel()

	env := cloud.MapEnv(map[string]string{cloud.MarkerKey: "{}"})
	svc := NewAutoConfigService(cloud.Marker(), env, mocks.NewMockBindingDiscoverer(t), settings.Defaults(), discardLogger())
	assert.True(t, svc.IsCloud())

	svc = NewAutoConfigService(cloud.Marker(), cloud.MapEnv(nil), mocks.NewMockBindingDiscoverer(t), settings.Defaults(), discardLogger())
	assert.False(t, svc.IsCloud())
}

func TestAutoConfigService_RecordsMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := telemetry.NewMetrics(mp)
	require.NoError(t, err)

	svc, disc := newService(t, true, WithMetrics(m), WithStrategy(cloud.StrategyMarker))
	disc.EXPECT().Discover(mock.Anything).Return([]binding.Record{sampleBinding()}, nil).Once()

	_, err = svc.Resolve(context.Background())
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, metric := range sm.Metrics {
			names[metric.Name] = true
			if metric.Name != "autoconfig.resolution.total" {
				continue
			}
			sum, ok := metric.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			require.Len(t, sum.DataPoints, 1)
			assert.Equal(t, int64(1), sum.DataPoints[0].Value)
			source, _ := sum.DataPoints[0].Attributes.Value(telemetry.AttrSource)
			assert.Equal(t, "cloud", source.AsString())
			strategy, _ := sum.DataPoints[0].Attributes.Value(telemetry.AttrStrategy)
			assert.Equal(t, cloud.StrategyMarker, strategy.AsString())
		}
	}
	assert.True(t, names["autoconfig.resolution.total"])
	assert.True(t, names["autoconfig.bindings.discovered"])
}
