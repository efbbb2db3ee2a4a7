// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
)

var ErrInvalidDeviceUUID = errors.New("invalid device UUID")

// Bounds on the client-supplied device identifier
const (
	minDeviceUUIDLen = 8
	maxDeviceUUIDLen = 128
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// DeviceKey derives the storage partition ID for a device.
// The raw device UUID is never persisted, only this HMAC of it.
func DeviceKey(deviceUUID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(deviceUUID))
	sum := h.Sum(nil)
	// 128 bits is plenty to keep partitions apart
	return hex.EncodeToString(sum[:16])
}

// ValidateDeviceUUID checks the X-Device-UUID header value.
// Accepts 8-128 characters of letters, digits, '-' and '_'.
func ValidateDeviceUUID(deviceUUID string) error {
	if len(deviceUUID) < minDeviceUUIDLen || len(deviceUUID) > maxDeviceUUIDLen {
		return ErrInvalidDeviceUUID
	}
	for _, c := range deviceUUID {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return ErrInvalidDeviceUUID
		}
	}
	return nil
}
