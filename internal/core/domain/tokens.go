package domain

import (
	"crypto/rand"
	"encoding/hex"
)

// NewRouteToken generates an opaque routing token for a monitored
// domain's receiving address, e.g. <token>@reports.example.com.
func NewRouteToken(length int) string {
	buf := make([]byte, (length+1)/2)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)[:length]
}
