// Package cloud decides, from environment data alone, whether the process runs
// on a cloud platform with bound messaging services. Several detection
// strategies are provided and one is selected by configuration.
package cloud

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/jsoncodec"
)

// Environment keys set by the platform.
const (
	MarkerKey   = "VCAP_APPLICATION"
	ServicesKey = "VCAP_SERVICES"
)

// Strategy names accepted by New.
const (
	StrategyMarker         = "marker"
	StrategyMarkerServices = "marker_services"
	StrategyServicesArray  = "services_array"
	StrategyConnector      = "connector"
)

// DefaultLabels are the service labels brokers are bound under.
var DefaultLabels = []string{"solace-pubsub", "solace-messaging"}

// Env looks up an environment variable. os.LookupEnv satisfies it.
type Env func(key string) (string, bool)

// OSEnv returns the process environment.
func OSEnv() Env {
	return os.LookupEnv
}

// MapEnv returns an Env backed by m.
func MapEnv(m map[string]string) Env {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// Detector reports whether a cloud messaging binding should be expected.
// Detectors never panic on missing keys.
type Detector func(env Env) bool

// Probe counts the bindings a platform connector can see in env.
type Probe func(env Env) (int, error)

// Strategies lists the names accepted by New.
func Strategies() []string {
	return []string{StrategyMarker, StrategyMarkerServices, StrategyServicesArray, StrategyConnector}
}

// New returns the detector registered under strategy. probe is only
// required by the connector strategy.
func New(strategy string, labels []string, probe Probe) (Detector, error) {
	if len(labels) == 0 {
		labels = DefaultLabels
	}
	switch strategy {
	case StrategyMarker:
		return Marker(), nil
	case StrategyMarkerServices:
		return MarkerAndServices(labels), nil
	case StrategyServicesArray, "":
		return ServicesArray(labels), nil
	case StrategyConnector:
		if probe == nil {
			return nil, fmt.Errorf("cloud detection strategy %q requires a probe", strategy)
		}
		return Connector(probe), nil
	default:
		return nil, fmt.Errorf("unknown cloud detection strategy %q, want one of: %s",
			strategy, strings.Join(Strategies(), ", "))
	}
}

// Marker detects the platform by the presence of VCAP_APPLICATION.
func Marker() Detector {
	return hasMarker
}

// MarkerAndServices requires the platform marker and a VCAP_SERVICES value
// mentioning one of labels.
func MarkerAndServices(labels []string) Detector {
	labels = slices.Clone(labels)
	return func(env Env) bool {
		if !hasMarker(env) {
			return false
		}
		services, ok := env(ServicesKey)
		if !ok {
			return false
		}
		return slices.ContainsFunc(labels, func(l string) bool {
			return strings.Contains(services, l)
		})
	}
}

// ServicesArray requires the platform marker and a VCAP_SERVICES JSON object
// holding a non-empty array under one of labels. Malformed JSON is treated
// as no binding.
func ServicesArray(labels []string) Detector {
	labels = slices.Clone(labels)
	return func(env Env) bool {
		if !hasMarker(env) {
			return false
		}
		services, ok := env(ServicesKey)
		if !ok || strings.TrimSpace(services) == "" {
			return false
		}

		var doc map[string]any
		if err := jsoncodec.Unmarshal([]byte(services), &doc); err != nil {
			return false
		}
		for _, l := range labels {
			if entries, ok := doc[l].([]any); ok && len(entries) > 0 {
				return true
			}
		}
		return false
	}
}

// Connector requires the platform marker and at least one binding reported
// by probe. Probe errors count as no binding.
func Connector(probe Probe) Detector {
	return func(env Env) bool {
		if !hasMarker(env) {
			return false
		}
		n, err := probe(env)
		return err == nil && n > 0
	}
}

func hasMarker(env Env) bool {
	if env == nil {
		return false
	}
	_, ok := env(MarkerKey)
	return ok
}
