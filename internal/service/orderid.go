package service

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
)

const orderIDAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

// NewOrderID returns a short human-readable identifier: an "RV" prefix,
// a base-36 millisecond timestamp and a random suffix. The random part
// keeps concurrent sessions from colliding within the same millisecond.
func NewOrderID() string {
	var b strings.Builder
	b.WriteString("RV")
	b.WriteString(strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36)))

	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// Degraded but still unique-enough suffix.
		buf = []byte(strconv.FormatInt(time.Now().UnixNano(), 10))[:4]
	}
	for _, c := range buf {
		b.WriteByte(orderIDAlphabet[int(c)%len(orderIDAlphabet)])
	}
	return b.String()
}
