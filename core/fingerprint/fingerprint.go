package fingerprint

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/goccy/go-json"
)

// Origin is the hex SHA-256 of a canonicalized snapshot.
type Origin string

// Compute canonicalizes a JSON payload and hashes it. Object keys are sorted
// and numbers are kept verbatim, so payloads differing only in key order or
// whitespace share an origin.
func Compute(payload []byte) (Origin, error) {
	canonical, err := Canonicalize(payload)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return Origin(hex.EncodeToString(sum[:])), nil
}

// Of marshals v and computes its origin.
func Of(v any) (Origin, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}
	return Compute(payload)
}

// Canonicalize returns the stable serialized form of a JSON payload.
func Canonicalize(payload []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}

	// Maps encode with sorted keys.
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode canonical payload: %w", err)
	}
	return out, nil
}
