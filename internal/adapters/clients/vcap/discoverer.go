package vcap

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/jsamuelsen11/solace-autoconfig/internal/domain"
	"github.com/jsamuelsen11/solace-autoconfig/internal/domain/binding"
	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/cloud"
	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/jsoncodec"
	"github.com/jsamuelsen11/solace-autoconfig/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.BindingDiscoverer = (*Discoverer)(nil)
	_ ports.HealthChecker     = (*Discoverer)(nil)
)

// BrokerTag marks a service bound under a label outside the configured set
// as a broker binding.
const BrokerTag = "solace"

// Discoverer reads broker bindings from VCAP_SERVICES. Every call decodes the
// environment afresh and returns an independent snapshot.
//
// Discovery order is deterministic: instances under the configured labels in
// label order then array order, followed by instances tagged [BrokerTag]
// under any other label, with those labels sorted.
type Discoverer struct {
	env    cloud.Env
	labels []string
	logger *slog.Logger
}

// NewDiscoverer creates a Discoverer reading from env. Empty labels select
// [cloud.DefaultLabels].
func NewDiscoverer(env cloud.Env, labels []string, logger *slog.Logger) *Discoverer {
	if len(labels) == 0 {
		labels = cloud.DefaultLabels
	}
	return &Discoverer{
		env:    env,
		labels: slices.Clone(labels),
		logger: logger,
	}
}

// Discover returns the bindings visible in the discoverer's environment.
// An unset VCAP_SERVICES yields no bindings. Undecodable content returns an
// error wrapping [domain.ErrMalformedBinding].
func (d *Discoverer) Discover(ctx context.Context) ([]binding.Record, error) {
	return d.discover(ctx, d.env)
}

// Count reports how many bindings are visible in env. It has the shape of a
// [cloud.Probe] so the connector detection strategy can use it.
func (d *Discoverer) Count(env cloud.Env) (int, error) {
	records, err := d.discover(context.Background(), env)
	return len(records), err
}

// Name returns the identifier used when registered with a [ports.HealthRegistry].
func (d *Discoverer) Name() string {
	return "cloud-bindings"
}

// HealthCheck fails when VCAP_SERVICES is present but cannot be decoded.
func (d *Discoverer) HealthCheck(ctx context.Context) error {
	_, err := d.Discover(ctx)
	return err
}

func (d *Discoverer) discover(ctx context.Context, env cloud.Env) ([]binding.Record, error) {
	if env == nil {
		return []binding.Record{}, nil
	}
	raw, ok := env(cloud.ServicesKey)
	if !ok || strings.TrimSpace(raw) == "" {
		return []binding.Record{}, nil
	}

	var services ServicesDTO
	if err := jsoncodec.Unmarshal([]byte(raw), &services); err != nil {
		return nil, fmt.Errorf("decoding %s: %w: %w", cloud.ServicesKey, domain.ErrMalformedBinding, err)
	}

	records := make([]binding.Record, 0)
	for _, label := range d.labels {
		records = d.appendRecords(ctx, records, label, services[label], false)
	}

	others := make([]string, 0, len(services))
	for label := range services {
		if !slices.Contains(d.labels, label) {
			others = append(others, label)
		}
	}
	sort.Strings(others)
	for _, label := range others {
		records = d.appendRecords(ctx, records, label, services[label], true)
	}

	return records, nil
}

func (d *Discoverer) appendRecords(
	ctx context.Context, records []binding.Record, label string, entries []ServiceDTO, tagged bool,
) []binding.Record {
	for i := range entries {
		entry := &entries[i]
		if tagged && !slices.Contains(entry.Tags, BrokerTag) {
			continue
		}
		if entry.Credentials == nil {
			d.logger.WarnContext(ctx, "skipping service binding without credentials",
				slog.String("label", label),
				slog.String("name", entry.Name),
			)
			continue
		}
		if entry.Label == "" {
			entry.Label = label
		}
		records = append(records, ToRecord(entry))
	}
	return records
}
