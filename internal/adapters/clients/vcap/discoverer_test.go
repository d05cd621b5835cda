package vcap_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/solace-autoconfig/internal/adapters/clients/vcap"
	"github.com/jsamuelsen11/solace-autoconfig/internal/domain"
	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/binding"
	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/cloud"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newDiscoverer(env map[string]string) *vcap.Discoverer {
	return vcap.NewDiscoverer(cloud.MapEnv(env), nil, discardLogger())
}

func ids(records []binding.Record) []string {
	out := make([]string, len(records))
	for i := range records {
		out[i] = records[i].ID
	}
	return out
}

func TestDiscover_OneService(t *testing.T) {
	t.Parallel()

	d := newDiscoverer(map[string]string{cloud.ServicesKey: oneService})

	records, err := d.Discover(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "test-service-instance-name", r.ID)
	assert.Equal(t, "solace-messaging", r.Label)
	assert.Equal(t, "vmr-shared", r.Plan)
	assert.Equal(t, []string{"tcp://192.168.1.50:7000"}, r.Hosts)
	assert.Equal(t, "sample-msg-vpn", r.Namespace)
	assert.Equal(t, "sample-client-username", r.Username)
	assert.Equal(t, "sample-client-password", r.Password)
	assert.Equal(t, []string{"tcps://192.168.1.50:7003", "tcps://192.168.1.51:7003"}, r.Endpoints.TLSHosts)
	assert.Equal(t, []string{"tcp://192.168.1.50:7001"}, r.Endpoints.CompressedHosts)
	assert.Equal(t, []string{"amqps://192.168.1.50:7017"}, r.Endpoints.AMQPTLSURIs)
	assert.Equal(t, []string{"wss://192.168.1.50:7023", "wss://192.168.1.51:7023"}, r.Endpoints.MQTTWSSURIs)
	assert.Equal(t, "vmr-medium-web", r.Management.ActiveHostname)
	assert.Equal(t, "sample-mgmt-password", r.Management.Password)
	assert.True(t, r.HasTag("solace"))
}

func TestDiscover_Order(t *testing.T) {
	t.Parallel()

	d := newDiscoverer(map[string]string{cloud.ServicesKey: mixedServices})

	records, err := d.Discover(context.Background())
	require.NoError(t, err)

	// Configured labels first (solace-pubsub, solace-messaging), then tagged
	// instances under other labels. Entries without credentials are skipped.
	assert.Equal(t, []string{"pubsub-a-instance", "messaging-a", "messaging-b", "ups-broker"}, ids(records))
	assert.Equal(t, "user-provided", records[3].Label)
}

func TestDiscover_CustomLabels(t *testing.T) {
	t.Parallel()

	d := vcap.NewDiscoverer(
		cloud.MapEnv(map[string]string{cloud.ServicesKey: mixedServices}),
		[]string{"solace-messaging"},
		discardLogger(),
	)

	records, err := d.Discover(context.Background())
	require.NoError(t, err)

	// solace-pubsub is now an "other" label and its entries carry no tag.
	assert.Equal(t, []string{"messaging-a", "messaging-b", "ups-broker"}, ids(records))
}

func TestDiscover_NoServices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unset", env: map[string]string{}},
		{name: "blank", env: map[string]string{cloud.ServicesKey: " "}},
		{name: "empty object", env: map[string]string{cloud.ServicesKey: "{}"}},
		{name: "unrelated services", env: map[string]string{cloud.ServicesKey: `{"p-mysql":[{"name":"db","credentials":{}}]}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			records, err := newDiscoverer(tt.env).Discover(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, records)
			assert.Empty(t, records)
		})
	}
}

func TestDiscover_Malformed(t *testing.T) {
	t.Parallel()

	d := newDiscoverer(map[string]string{cloud.ServicesKey: `{"solace-messaging": [`})

	_, err := d.Discover(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedBinding)

	assert.Error(t, d.HealthCheck(context.Background()))
}

func TestDiscover_SnapshotsAreIndependent(t *testing.T) {
	t.Parallel()

	d := newDiscoverer(map[string]string{cloud.ServicesKey: oneService})

	first, err := d.Discover(context.Background())
	require.NoError(t, err)
	first[0].Hosts[0] = "tcp://mutated:1"

	second, err := d.Discover(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tcp://192.168.1.50:7000", second[0].FirstHost())
}

func TestCount(t *testing.T) {
	t.Parallel()

	d := newDiscoverer(nil)

	n, err := d.Count(cloud.MapEnv(map[string]string{cloud.ServicesKey: mixedServices}))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = d.Count(cloud.MapEnv(nil))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCount_AsConnectorProbe(t *testing.T) {
	t.Parallel()

	d := newDiscoverer(nil)
	detect := cloud.Connector(d.Count)

	env := cloud.MapEnv(map[string]string{
		cloud.MarkerKey:   "{}",
		cloud.ServicesKey: oneService,
	})
	assert.True(t, detect(env))

	env = cloud.MapEnv(map[string]string{
		cloud.MarkerKey:   "{}",
		cloud.ServicesKey: `{"solace-messaging": [`,
	})
	assert.False(t, detect(env))
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	d := newDiscoverer(map[string]string{cloud.ServicesKey: oneService})
	assert.Equal(t, "cloud-bindings", d.Name())
	assert.NoError(t, d.HealthCheck(context.Background()))
}
