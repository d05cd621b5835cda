// Package settings holds operator-supplied local broker settings and the
// resolved configuration produced from them.
package settings

import (
	"fmt"
	"maps"
	"strings"

	"github.com/jsamuelsen11/solace-autoconfig/internal/domain"
)

// Built-in defaults applied when nothing else supplies a value.
const (
	DefaultHost                       = "localhost"
	DefaultMsgVPN                     = "default"
	DefaultClientUsername             = "go-default-client-username"
	DefaultConnectRetries             = 0
	DefaultReconnectRetries           = 3
	DefaultConnectRetriesPerHost      = 0
	DefaultReconnectRetryWaitInMillis = 3000

	// MaxReconnectRetryWaitInMillis is the largest wait the broker client accepts.
	MaxReconnectRetryWaitInMillis = 60000
)

// Local is the fallback broker configuration supplied by the operator.
type Local struct {
	Host                       string
	MsgVPN                     string
	ClientUsername             string
	ClientPassword             string `masq:"secret"`
	ClientName                 string
	ConnectRetries             int
	ReconnectRetries           int
	ConnectRetriesPerHost      int
	ReconnectRetryWaitInMillis int
	MessageAckMode             AckMode
	ReapplySubscriptions       bool
	Advanced                   map[string]string
}

// Defaults returns Local populated with the built-in defaults.
func Defaults() Local {
	return Local{
		Host:                       DefaultHost,
		MsgVPN:                     DefaultMsgVPN,
		ClientUsername:             DefaultClientUsername,
		ConnectRetries:             DefaultConnectRetries,
		ReconnectRetries:           DefaultReconnectRetries,
		ConnectRetriesPerHost:      DefaultConnectRetriesPerHost,
		ReconnectRetryWaitInMillis: DefaultReconnectRetryWaitInMillis,
		MessageAckMode:             AckModeAuto,
		Advanced:                   map[string]string{},
	}
}

// Validate checks the local settings. Credentials are not required here;
// the broker client decides whether their absence is fatal.
func (l *Local) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(l.Host) == "" {
		fields["host"] = domain.MsgRequired
	}
	if l.ConnectRetries < 0 {
		fields["connect_retries"] = fmt.Sprintf("must be >= 0, got %d", l.ConnectRetries)
	}
	if l.ReconnectRetries < 0 {
		fields["reconnect_retries"] = fmt.Sprintf("must be >= 0, got %d", l.ReconnectRetries)
	}
	if l.ConnectRetriesPerHost < 0 {
		fields["connect_retries_per_host"] = fmt.Sprintf("must be >= 0, got %d", l.ConnectRetriesPerHost)
	}
	if l.ReconnectRetryWaitInMillis < 0 || l.ReconnectRetryWaitInMillis > MaxReconnectRetryWaitInMillis {
		fields["reconnect_retry_wait_in_millis"] = fmt.Sprintf("must be 0-%d, got %d",
			MaxReconnectRetryWaitInMillis, l.ReconnectRetryWaitInMillis)
	}
	if !l.MessageAckMode.IsValid() {
		fields["message_ack_mode"] = fmt.Sprintf("invalid: %q", l.MessageAckMode)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// RedactedValue replaces secrets in redacted copies.
const RedactedValue = "********"

// Source records where the connection fields of a Resolved value came from.
type Source string

const (
	SourceLocal Source = "local"
	SourceCloud Source = "cloud"
)

// Resolved is the fully merged configuration used to build a client
// property bag. Each resolution produces a fresh value.
type Resolved struct {
	Host                       string
	MsgVPN                     string
	ClientUsername             string
	ClientPassword             string `masq:"secret"`
	ClientName                 string
	ConnectRetries             int
	ReconnectRetries           int
	ConnectRetriesPerHost      int
	ReconnectRetryWaitInMillis int
	MessageAckMode             AckMode
	ReapplySubscriptions       bool
	Advanced                   map[string]string

	Source    Source
	BindingID string
}

// Redacted returns a copy of r with the client password and every advanced
// credential masked.
func (r Resolved) Redacted() Resolved {
	r.Advanced = maps.Clone(r.Advanced)
	if r.ClientPassword != "" {
		r.ClientPassword = RedactedValue
	}
	for k, v := range r.Advanced {
		if v != "" && IsCredentialKey(k) {
			r.Advanced[k] = RedactedValue
		}
	}
	return r
}

// credentialWords mark a property key as holding a credential.
var credentialWords = []string{"password", "secret", "token", "private-key"}

// IsCredentialKey reports whether the last dotted segment of a property key
// names a credential, as in authentication.oauth2.access-token.
func IsCredentialKey(key string) bool {
	last := strings.ToLower(key[strings.LastIndex(key, ".")+1:])
	for _, w := range credentialWords {
		if strings.Contains(last, w) {
			return true
		}
	}
	return false
}
