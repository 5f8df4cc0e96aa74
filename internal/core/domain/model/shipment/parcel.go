package shipment

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Dimensions are expressed in centimetres.
type Dimensions struct {
	Height float64
	Width  float64
	Length float64
}

// Parcel describes the package handed over for a shipment request. It is owned by
// exactly one request and created fresh every time.
type Parcel struct { //nolint:recvcheck //using for validation
	weightKg   float64
	dimensions *Dimensions
	content    string
	category   string

	guard guard.ConstructorGuard
}

// NewParcel validates that weight and, when given, every dimension are positive.
func NewParcel(weightKg float64, dimensions *Dimensions, content, category string) (Parcel, error) {
	p := Parcel{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setWeight(weightKg),
		p.setDimensions(dimensions),
	); err != nil {
		return Parcel{}, err
	}

	p.content = strings.TrimSpace(content)
	p.category = strings.TrimSpace(category)
	return p, nil
}

func (p Parcel) Validate() error {
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

func (p Parcel) WeightKg() float64 {
	return p.weightKg
}

// Dimensions returns nil when the parcel was registered without measurements.
func (p Parcel) Dimensions() *Dimensions {
	if p.dimensions == nil {
		return nil
	}
	d := *p.dimensions
	return &d
}

func (p Parcel) Content() string {
	return p.content
}

func (p Parcel) Category() string {
	return p.category
}

func (p *Parcel) setWeight(weightKg float64) error {
	if err := positive("weight", weightKg); err != nil {
		return err
	}
	p.weightKg = weightKg
	return nil
}

func (p *Parcel) setDimensions(d *Dimensions) error {
	if d == nil {
		return nil
	}
	if err := errors.Join(
		positive("height", d.Height),
		positive("width", d.Width),
		positive("length", d.Length),
	); err != nil {
		return err
	}
	copied := *d
	p.dimensions = &copied
	return nil
}

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v must be greater than 0", v))
	}
	return nil
}
