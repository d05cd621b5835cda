package settings

// AckMode controls how received messages are acknowledged.
type AckMode string

const (
	AckModeAuto   AckMode = "auto"
	AckModeClient AckMode = "client"
)

// IsValid reports whether m is a recognized acknowledgement mode.
func (m AckMode) IsValid() bool {
	switch m {
	case AckModeAuto, AckModeClient:
		return true
	default:
		return false
	}
}

func (m AckMode) String() string {
	return string(m)
}
