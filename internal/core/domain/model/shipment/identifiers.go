package shipment

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

const (
	ReferencePrefix = "SHP"

	trackingTokenBytes = 16
)

var trackingTokenPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

// NewReference formats the yearly shipment reference, e.g. SHP-2025-00001.
func NewReference(year int, sequence int64) (kernel.DocumentNumber, error) {
	return kernel.NewDocumentNumber(ReferencePrefix, year, sequence)
}

// TrackingToken is the opaque identifier for unauthenticated tracking:
// 32 lowercase hex characters.
type TrackingToken struct {
	value string
}

// NewTrackingToken draws 128 random bits from crypto/rand.
func NewTrackingToken() (TrackingToken, error) {
	b := make([]byte, trackingTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return TrackingToken{}, fmt.Errorf("generate tracking token: %w", err)
	}
	return TrackingToken{value: hex.EncodeToString(b)}, nil
}

func ParseTrackingToken(s string) (TrackingToken, error) {
	if !trackingTokenPattern.MatchString(s) {
		return TrackingToken{}, errs.NewValueIsInvalidErrorWithCause("tracking token",
			fmt.Errorf("must be 32 lowercase hex characters"))
	}
	return TrackingToken{value: s}, nil
}

// Validate reports a zero token.
func (t TrackingToken) Validate() error {
	if t.value == "" {
		return errs.NewValueIsRequiredError("tracking token")
	}
	return nil
}

func (t TrackingToken) String() string {
	return t.value
}
