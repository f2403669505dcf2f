package maplib

import (
	"encoding/json"
	"sync"
	"time"
)

type UsageStats struct {
	Name ProviderName

	mutex        sync.Mutex
	lastUsed     time.Time
	lastError    string
	successCount uint64
	skippedCount uint64
	failureCount uint64
}

// Used accounts a finished lookup. Config errors and empty responses
// are skips, transport errors are failures.
func (u *UsageStats) Used(err error) {
	now := time.Now()

	u.mutex.Lock()
	defer u.mutex.Unlock()

	u.lastUsed = now

	switch Classify(err) {
	case OutcomeLocated:
		u.successCount++
	case OutcomeTransportError:
		u.failureCount++
		u.lastError = err.Error()
	default:
		u.skippedCount++
	}
}

func (u *UsageStats) MarshalJSON() ([]byte, error) {
	var lastUsedTime int64

	u.mutex.Lock()

	if !u.lastUsed.IsZero() {
		lastUsedTime = u.lastUsed.Unix()
	}

	rawStruct := struct {
		Name         string `json:"name"`
		Service      string `json:"service"`
		LastUsed     int64  `json:"last_used"`
		LastError    string `json:"last_error"`
		SuccessCount uint64 `json:"success_count"`
		SkippedCount uint64 `json:"skipped_count"`
		FailureCount uint64 `json:"failure_count"`
	}{
		Name:         u.Name.String(),
		Service:      u.Name.Service(),
		LastUsed:     lastUsedTime,
		LastError:    u.lastError,
		SuccessCount: u.successCount,
		SkippedCount: u.skippedCount,
		FailureCount: u.failureCount,
	}

	u.mutex.Unlock()

	return json.Marshal(&rawStruct)
}
