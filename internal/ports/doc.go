// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by inbound
// adapters (HTTP handlers, CLI commands). Client ports are implemented by
// outbound adapters (binding discovery, broker sessions) and called by the
// application layer.
package ports
