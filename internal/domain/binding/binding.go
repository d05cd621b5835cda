// Package binding defines the service binding record: one messaging endpoint
// discovered from the hosting platform.
package binding

import "slices"

// RedactedValue replaces secrets in records that leave the process.
const RedactedValue = "********"

// Record describes one discovered broker endpoint. Records are produced by a
// discoverer at startup and treated as immutable afterwards.
type Record struct {
	ID         string
	Name       string
	Label      string
	Plan       string
	Tags       []string
	Hosts      []string
	Namespace  string
	Username   string
	Password   string `masq:"secret"`
	Endpoints  Endpoints
	Management Management
}

// Endpoints holds the optional protocol-specific URIs a binding may advertise.
type Endpoints struct {
	TLSHosts            []string
	CompressedHosts     []string
	WebMessagingURIs    []string
	WebMessagingTLSURIs []string
	JMSJNDIURIs         []string
	JMSJNDITLSURIs      []string
	MQTTURIs            []string
	MQTTTLSURIs         []string
	MQTTWSURIs          []string
	MQTTWSSURIs         []string
	RESTURIs            []string
	RESTTLSURIs         []string
	AMQPURIs            []string
	AMQPTLSURIs         []string
}

// Management holds the broker management endpoint and its credentials.
type Management struct {
	Hostnames      []string
	ActiveHostname string
	Username       string
	Password       string `masq:"secret"`
}

// FirstHost returns the first SMF host or "" when the record has none.
func (r *Record) FirstHost() string {
	if len(r.Hosts) == 0 {
		return ""
	}
	return r.Hosts[0]
}

// HasTag reports whether the record carries the given tag.
func (r *Record) HasTag(tag string) bool {
	return slices.Contains(r.Tags, tag)
}

// Clone returns a deep copy of r.
func (r *Record) Clone() Record {
	c := *r
	c.Tags = slices.Clone(r.Tags)
	c.Hosts = slices.Clone(r.Hosts)
	c.Endpoints = r.Endpoints.clone()
	c.Management.Hostnames = slices.Clone(r.Management.Hostnames)
	return c
}

// Redacted returns a copy of r with every password masked.
func (r *Record) Redacted() Record {
	c := r.Clone()
	if c.Password != "" {
		c.Password = RedactedValue
	}
	if c.Management.Password != "" {
		c.Management.Password = RedactedValue
	}
	return c
}

func (e Endpoints) clone() Endpoints {
	return Endpoints{
		TLSHosts:            slices.Clone(e.TLSHosts),
		CompressedHosts:     slices.Clone(e.CompressedHosts),
		WebMessagingURIs:    slices.Clone(e.WebMessagingURIs),
		WebMessagingTLSURIs: slices.Clone(e.WebMessagingTLSURIs),
		JMSJNDIURIs:         slices.Clone(e.JMSJNDIURIs),
		JMSJNDITLSURIs:      slices.Clone(e.JMSJNDITLSURIs),
		MQTTURIs:            slices.Clone(e.MQTTURIs),
		MQTTTLSURIs:         slices.Clone(e.MQTTTLSURIs),
		MQTTWSURIs:          slices.Clone(e.MQTTWSURIs),
		MQTTWSSURIs:         slices.Clone(e.MQTTWSSURIs),
		RESTURIs:            slices.Clone(e.RESTURIs),
		RESTTLSURIs:         slices.Clone(e.RESTTLSURIs),
		AMQPURIs:            slices.Clone(e.AMQPURIs),
		AMQPTLSURIs:         slices.Clone(e.AMQPTLSURIs),
	}
}

// Find returns the record with the given id from records.
func Find(records []Record, id string) (Record, bool) {
	for i := range records {
		if records[i].ID == id {
			return records[i].Clone(), true
		}
	}
	return Record{}, false
}
