// Package tracking models the identifiers printed on a shipment's label.
package tracking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

const (
	// PublicCodeLength is the length of the customer facing tracking code.
	PublicCodeLength = 26

	// InternalCodeLength is the length of the operations code; it is always a prefix of the public code.
	InternalCodeLength = 10
)

var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// Record pairs a shipment with its internal and public tracking codes.
// Records are issued once per shipment request and never change.
type Record struct {
	id           kernel.UUID
	internalCode string
	publicCode   string
	createdAt    time.Time

	isConstructed bool
}

// NewRecord validates that both codes are upper-case, have the expected length and
// that the internal code is a prefix of the public one.
func NewRecord(id kernel.UUID, internalCode, publicCode string, createdAt time.Time) (*Record, error) {
	r := &Record{isConstructed: true, createdAt: createdAt.UTC()}

	if err := errors.Join(
		r.setID(id),
		r.setCodes(internalCode, publicCode),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

func (r *Record) ID() kernel.UUID {
	return r.id
}

func (r *Record) InternalCode() string {
	return r.internalCode
}

func (r *Record) PublicCode() string {
	return r.publicCode
}

func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

// Matches reports whether code equals either tracking code, ignoring case.
func (r *Record) Matches(code string) bool {
	code = NormalizeCode(code)
	return code == r.publicCode || code == r.internalCode
}

// NormalizeCode trims and upper-cases a code typed by a person.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setCodes(internalCode, publicCode string) error {
	if len(publicCode) != PublicCodeLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"publicCode",
			fmt.Errorf("length %d, expected %d", len(publicCode), PublicCodeLength),
		)
	}
	if publicCode != strings.ToUpper(publicCode) {
		return errs.NewValueIsInvalidErrorWithCause("publicCode", errors.New("must be upper-case"))
	}
	if len(internalCode) != InternalCodeLength || !strings.HasPrefix(publicCode, internalCode) {
		return errs.NewValueIsInvalidErrorWithCause(
			"internalCode",
			fmt.Errorf("must be the first %d characters of the public code", InternalCodeLength),
		)
	}

	r.internalCode = internalCode
	r.publicCode = publicCode
	return nil
}
