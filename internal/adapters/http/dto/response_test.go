package dto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"solace.dev/go/messaging/pkg/solace/config"

	"github.com/jsamuelsen11/solace-autoconfig/internal/adapters/http/dto"
	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/binding"
	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/resolver"
	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/settings"
	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/jsoncodec"
)

func sampleRecord() binding.Record {
	return binding.Record{
		ID:        "test-service-instance-name",
		Label:     "solace-messaging",
		Tags:      []string{"solace"},
		Hosts:     []string{"tcp://192.168.1.50:7000"},
		Namespace: "sample-msg-vpn",
		Username:  "sample-client-username",
		Password:  "sample-client-password",
		Endpoints: binding.Endpoints{MQTTURIs: []string{"tcp://192.168.1.50:1883"}},
		Management: binding.Management{
			Hostnames: []string{"mgmt.example"},
			Username:  "admin",
			Password:  "admin-secret",
		},
	}
}

func TestToBindingResponse_Redacts(t *testing.T) {
	t.Parallel()

	r := sampleRecord()
	resp := dto.ToBindingResponse(&r)

	assert.Equal(t, "sample-msg-vpn", resp.MsgVPN)
	assert.Equal(t, binding.RedactedValue, resp.Password)
	require.NotNil(t, resp.Management)
	assert.Equal(t, binding.RedactedValue, resp.Management.Password)
	assert.Equal(t, map[string][]string{"mqtt": {"tcp://192.168.1.50:1883"}}, resp.Endpoints)
	assert.Equal(t, "sample-client-password", r.Password, "source record must not change")

	out, err := jsoncodec.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "sample-client-password")
	assert.NotContains(t, string(out), "admin-secret")
}

func TestToBindingResponse_Minimal(t *testing.T) {
	t.Parallel()

	r := binding.Record{ID: "bare"}
	resp := dto.ToBindingResponse(&r)

	assert.NotNil(t, resp.Hosts)
	assert.Nil(t, resp.Management)
	assert.Nil(t, resp.Endpoints)
	assert.Empty(t, resp.Password)
}

func TestToBindingListResponse(t *testing.T) {
	t.Parallel()

	records := []binding.Record{sampleRecord(), {ID: "second"}}
	resp := dto.ToBindingListResponse(records)

	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "test-service-instance-name", resp.Bindings[0].ID)
	assert.Equal(t, "second", resp.Bindings[1].ID)

	empty := dto.ToBindingListResponse(nil)
	assert.NotNil(t, empty.Bindings)
	assert.Zero(t, empty.Count)
}

func TestToLegacyBindingListResponse(t *testing.T) {
	t.Parallel()

	resp := dto.ToLegacyBindingListResponse([]binding.Record{sampleRecord()})
	require.Equal(t, 1, resp.Count)

	info := resp.Bindings[0]
	assert.Equal(t, "tcp://192.168.1.50:7000", info.SmfHost)
	assert.Equal(t, "sample-msg-vpn", info.MsgVpnName)
	assert.Equal(t, binding.RedactedValue, info.ClientPassword)

	out, err := jsoncodec.Marshal(resp)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(out), `"smfHost"`))
}

func TestToConfigResponse(t *testing.T) {
	t.Parallel()

	r := sampleRecord()
	resolved := resolver.Resolve(settings.Defaults(), &r)
	resp := dto.ToConfigResponse(resolved)

	assert.Equal(t, "cloud", resp.Source)
	assert.Equal(t, "test-service-instance-name", resp.BindingID)
	assert.Equal(t, "tcp://192.168.1.50:7000", resp.Host)
	assert.Equal(t, settings.RedactedValue, resp.ClientPassword)
	assert.Equal(t, "auto", resp.MessageAckMode)
}

func TestToPropertiesResponse(t *testing.T) {
	t.Parallel()

	r := sampleRecord()
	resp := dto.ToPropertiesResponse(resolver.Resolve(settings.Defaults(), &r))

	assert.Equal(t, "tcp://192.168.1.50:7000", resp.Properties[string(config.TransportLayerPropertyHost)])
	assert.Equal(t, "sample-msg-vpn", resp.Properties[string(config.ServicePropertyVPNName)])
	assert.Equal(t, settings.RedactedValue, resp.Properties[string(config.AuthenticationPropertySchemeBasicPassword)])
}
