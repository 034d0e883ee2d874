package logging

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"
)

var sessionCounter uint64

// GenerateSessionID returns a unique ID for an interactive session.
// The format is timestamp-counter-random, e.g. "1708425600-1-a1b2c3d4".
func GenerateSessionID() string {
	ts := time.Now().Unix()
	counter := atomic.AddUint64(&sessionCounter, 1)

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return fmt.Sprintf("%d-%d-0000", ts, counter)
	}
	return fmt.Sprintf("%d-%d-%s", ts, counter, hex.EncodeToString(suffix))
}
