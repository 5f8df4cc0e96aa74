package services

import (
	"encoding/base32"
	"strings"

	"shipping/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// TrackingCodeGenerator produces tracking codes from 128 bits of UUID entropy.
//
// The public code is the unpadded RFC 4648 base32 encoding of the 16 random bytes
// (26 upper-case characters drawn from A-Z and 2-7). The internal code is the first
// 10 characters of the public code.
type TrackingCodeGenerator struct {
	source func() (uuid.UUID, error)
}

// NewTrackingCodeGenerator uses random (version 4) UUIDs as entropy.
func NewTrackingCodeGenerator() TrackingCodeGenerator {
	return TrackingCodeGenerator{source: uuid.NewRandom}
}

// NewTrackingCodeGeneratorWithSource allows a deterministic entropy source.
func NewTrackingCodeGeneratorWithSource(source func() (uuid.UUID, error)) TrackingCodeGenerator {
	return TrackingCodeGenerator{source: source}
}

// Generate returns a fresh (internal, public) code pair.
func (g TrackingCodeGenerator) Generate() (string, string, error) {
	source := g.source
	if source == nil {
		source = uuid.NewRandom
	}

	raw, err := source()
	if err != nil {
		return "", "", err
	}

	public := strings.ToUpper(base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(raw[:]))
	return public[:tracking.InternalCodeLength], public, nil
}
