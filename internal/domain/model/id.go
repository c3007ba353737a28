package model

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// NewTransactionID generates a ledger entry identifier of the form
// "TXN-" followed by twelve uppercase hex characters.
func NewTransactionID() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		binary.BigEndian.PutUint32(buf[:4], uint32(time.Now().UnixNano()))
	}
	return "TXN-" + strings.ToUpper(hex.EncodeToString(buf))
}

// NewCustomerID generates a customer identifier of the form "CUST" followed
// by a zero-padded nine digit timestamp fragment and three random digits.
func NewCustomerID(now time.Time) string {
	ts := now.UnixMilli() % 1_000_000_000
	var b [2]byte
	suffix := 100
	if _, err := rand.Read(b[:]); err == nil {
		suffix = 100 + int(binary.BigEndian.Uint16(b[:]))%900
	}
	return fmt.Sprintf("CUST%09d%03d", ts, suffix)
}
