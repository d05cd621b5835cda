// Package dto provides the response shapes of the inspection endpoints and
// RFC 9457 Problem Details error responses. The same shapes are rendered as
// YAML by the CLI.
package dto

import (
	"maps"

	"github.com/jsamuelsen11/solace-autoconfig/internal/adapters/clients/solace"
	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/binding"
	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/settings"
)

// BindingResponse is a discovered binding with its passwords masked.
type BindingResponse struct {
	ID         string              `json:"id" yaml:"id"`
	Name       string              `json:"name,omitempty" yaml:"name,omitempty"`
	Label      string              `json:"label,omitempty" yaml:"label,omitempty"`
	Plan       string              `json:"plan,omitempty" yaml:"plan,omitempty"`
	Tags       []string            `json:"tags,omitempty" yaml:"tags,omitempty"`
	Hosts      []string            `json:"hosts" yaml:"hosts"`
	MsgVPN     string              `json:"msg_vpn" yaml:"msg_vpn"`
	Username   string              `json:"username" yaml:"username"`
	Password   string              `json:"password,omitempty" yaml:"password,omitempty"`
	Endpoints  map[string][]string `json:"endpoints,omitempty" yaml:"endpoints,omitempty"`
	Management *ManagementResponse `json:"management,omitempty" yaml:"management,omitempty"`
}

// ManagementResponse is the management endpoint of a binding.
type ManagementResponse struct {
	Hostnames      []string `json:"hostnames" yaml:"hostnames"`
	ActiveHostname string   `json:"active_hostname,omitempty" yaml:"active_hostname,omitempty"`
	Username       string   `json:"username,omitempty" yaml:"username,omitempty"`
	Password       string   `json:"password,omitempty" yaml:"password,omitempty"`
}

// BindingListResponse lists discovered bindings in discovery order.
type BindingListResponse struct {
	Bindings []BindingResponse `json:"bindings" yaml:"bindings"`
	Count    int               `json:"count" yaml:"count"`
}

// LegacyBindingListResponse lists bindings in the legacy field names.
type LegacyBindingListResponse struct {
	Bindings []binding.LegacyInfo `json:"bindings" yaml:"bindings"`
	Count    int                  `json:"count" yaml:"count"`
}

// ToBindingResponse converts r to its redacted response form.
func ToBindingResponse(r *binding.Record) BindingResponse {
	red := r.Redacted()
	resp := BindingResponse{
		ID:        red.ID,
		Name:      red.Name,
		Label:     red.Label,
		Plan:      red.Plan,
		Tags:      red.Tags,
		Hosts:     red.Hosts,
		MsgVPN:    red.Namespace,
		Username:  red.Username,
		Password:  red.Password,
		Endpoints: endpointMap(&red.Endpoints),
	}
	if resp.Hosts == nil {
		resp.Hosts = []string{}
	}
	m := red.Management
	if len(m.Hostnames) > 0 || m.ActiveHostname != "" || m.Username != "" {
		resp.Management = &ManagementResponse{
			Hostnames:      m.Hostnames,
			ActiveHostname: m.ActiveHostname,
			Username:       m.Username,
			Password:       m.Password,
		}
	}
	return resp
}

// ToBindingListResponse converts records, keeping their order.
func ToBindingListResponse(records []binding.Record) BindingListResponse {
	items := make([]BindingResponse, len(records))
	for i := range records {
		items[i] = ToBindingResponse(&records[i])
	}
	return BindingListResponse{Bindings: items, Count: len(items)}
}

// ToLegacyBindingListResponse converts records to the legacy shape with
// passwords masked.
func ToLegacyBindingListResponse(records []binding.Record) LegacyBindingListResponse {
	items := make([]binding.LegacyInfo, len(records))
	for i := range records {
		red := records[i].Redacted()
		items[i] = red.Legacy()
	}
	return LegacyBindingListResponse{Bindings: items, Count: len(items)}
}

func endpointMap(e *binding.Endpoints) map[string][]string {
	all := map[string][]string{
		"smf_tls":           e.TLSHosts,
		"smf_compressed":    e.CompressedHosts,
		"web_messaging":     e.WebMessagingURIs,
		"web_messaging_tls": e.WebMessagingTLSURIs,
		"jms_jndi":          e.JMSJNDIURIs,
		"jms_jndi_tls":      e.JMSJNDITLSURIs,
		"mqtt":              e.MQTTURIs,
		"mqtt_tls":          e.MQTTTLSURIs,
		"mqtt_ws":           e.MQTTWSURIs,
		"mqtt_wss":          e.MQTTWSSURIs,
		"rest":              e.RESTURIs,
		"rest_tls":          e.RESTTLSURIs,
		"amqp":              e.AMQPURIs,
		"amqp_tls":          e.AMQPTLSURIs,
	}
	maps.DeleteFunc(all, func(_ string, v []string) bool { return len(v) == 0 })
	if len(all) == 0 {
		return nil
	}
	return all
}

// ConfigResponse is a resolved configuration with the password masked.
type ConfigResponse struct {
	Source                     string            `json:"source" yaml:"source"`
	BindingID                  string            `json:"binding_id,omitempty" yaml:"binding_id,omitempty"`
	Host                       string            `json:"host" yaml:"host"`
	MsgVPN                     string            `json:"msg_vpn" yaml:"msg_vpn"`
	ClientUsername             string            `json:"client_username" yaml:"client_username"`
	ClientPassword             string            `json:"client_password,omitempty" yaml:"client_password,omitempty"`
	ClientName                 string            `json:"client_name,omitempty" yaml:"client_name,omitempty"`
	ConnectRetries             int               `json:"connect_retries" yaml:"connect_retries"`
	ReconnectRetries           int               `json:"reconnect_retries" yaml:"reconnect_retries"`
	ConnectRetriesPerHost      int               `json:"connect_retries_per_host" yaml:"connect_retries_per_host"`
	ReconnectRetryWaitInMillis int               `json:"reconnect_retry_wait_in_millis" yaml:"reconnect_retry_wait_in_millis"`
	MessageAckMode             string            `json:"message_ack_mode" yaml:"message_ack_mode"`
	ReapplySubscriptions       bool              `json:"reapply_subscriptions" yaml:"reapply_subscriptions"`
	Advanced                   map[string]string `json:"advanced,omitempty" yaml:"advanced,omitempty"`
}

// ToConfigResponse converts r to its redacted response form.
func ToConfigResponse(r settings.Resolved) ConfigResponse {
	red := r.Redacted()
	return ConfigResponse{
		Source:                     string(red.Source),
		BindingID:                  red.BindingID,
		Host:                       red.Host,
		MsgVPN:                     red.MsgVPN,
		ClientUsername:             red.ClientUsername,
		ClientPassword:             red.ClientPassword,
		ClientName:                 red.ClientName,
		ConnectRetries:             red.ConnectRetries,
		ReconnectRetries:           red.ReconnectRetries,
		ConnectRetriesPerHost:      red.ConnectRetriesPerHost,
		ReconnectRetryWaitInMillis: red.ReconnectRetryWaitInMillis,
		MessageAckMode:             red.MessageAckMode.String(),
		ReapplySubscriptions:       red.ReapplySubscriptions,
		Advanced:                   red.Advanced,
	}
}

// PropertiesResponse is the broker client property bag built from a
// resolved configuration, keyed by fully qualified property name.
type PropertiesResponse struct {
	Properties map[string]any `json:"properties" yaml:"properties"`
}

// ToPropertiesResponse builds the property bag for r with credentials
// masked.
func ToPropertiesResponse(r settings.Resolved) PropertiesResponse {
	props := solace.Redact(solace.Properties(r), settings.RedactedValue)
	return PropertiesResponse{Properties: solace.StringMap(props)}
}
