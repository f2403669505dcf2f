package maplib

// Record is a normalized response of any provider.
type Record struct {
	IP        string  `json:"ip"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Org       string  `json:"org"`
	Service   string  `json:"service"`

	// Origin is set if this record describes the viewer own public IP.
	Origin bool `json:"origin"`
}

type MessageLevel string

const (
	LevelInfo    MessageLevel = "info"
	LevelWarning MessageLevel = "warning"
	LevelError   MessageLevel = "error"
)

// Message is something a user has to see: a skipped lookup, a failed
// request, an empty result.
type Message struct {
	Level MessageLevel `json:"level"`
	Text  string       `json:"text"`
}
