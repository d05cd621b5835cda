package binding

// LegacyInfo is the older "messaging info" view of a binding. It carries a
// single host and the original credential field names, and exists only for
// callers that still consume that shape.
type LegacyInfo struct {
	ID             string `json:"id" yaml:"id"`
	SmfHost        string `json:"smfHost" yaml:"smfHost"`
	MsgVpnName     string `json:"msgVpnName" yaml:"msgVpnName"`
	ClientUsername string `json:"clientUsername" yaml:"clientUsername"`
	ClientPassword string `json:"clientPassword" yaml:"clientPassword" masq:"secret"`
}

// Legacy converts r to the legacy info shape.
func (r *Record) Legacy() LegacyInfo {
	return LegacyInfo{
		ID:             r.ID,
		SmfHost:        r.FirstHost(),
		MsgVpnName:     r.Namespace,
		ClientUsername: r.Username,
		ClientPassword: r.Password,
	}
}

// FromLegacy builds a Record from the legacy info shape.
func FromLegacy(info LegacyInfo) Record {
	r := Record{
		ID:        info.ID,
		Namespace: info.MsgVpnName,
		Username:  info.ClientUsername,
		Password:  info.ClientPassword,
	}
	if info.SmfHost != "" {
		r.Hosts = []string{info.SmfHost}
	}
	return r
}
