package valueobject

import "fmt"

// Rational is an unsigned EXIF fraction.
type Rational struct {
	Numerator   uint32
	Denominator uint32
}

func NewRational(num, den uint32) Rational {
	return Rational{Numerator: num, Denominator: den}
}

func (r Rational) Float() float64 {
	if r.Denominator == 0 {
		return 0
	}
	return float64(r.Numerator) / float64(r.Denominator)
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Numerator, r.Denominator)
}
