/*
Copyright © 2018 the COMA authors.
This file is part of COMA.

COMA is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

COMA is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with COMA.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package aperture describes the projected sky regions that telescope
// observations integrate over. Apertures can be specified in length or
// angle units; angular apertures are converted to linear ones at the
// target using the geocentric distance from an ephemeris.
package aperture

import (
	"fmt"
	"math"

	"github.com/ctessum/unit"
)

// Unit dimensions
var (
	length = unit.Dimensions{unit.LengthDim: 1}
	angle  = unit.Dimensions{unit.AngleDim: 1}
)

// radiansPerArcsec is the size of one arcsecond in radians.
const radiansPerArcsec = math.Pi / 180 / 3600

// Radians returns an angle quantity of v radians.
func Radians(v float64) *unit.Unit { return unit.New(v, angle) }

// Arcseconds returns an angle quantity of v arcseconds.
func Arcseconds(v float64) *unit.Unit { return unit.New(v*radiansPerArcsec, angle) }

// Ephemeris holds the observer geometry at the epoch of observation.
type Ephemeris struct {
	// Rh is the heliocentric distance of the target.
	Rh *unit.Unit
	// Delta is the geocentric distance of the target, used to convert
	// angular sizes on the sky to linear sizes at the target.
	Delta *unit.Unit
}

// RhoAsLength converts a projected distance in length or angle units to a
// length. Converting an angle requires an ephemeris with a geocentric
// distance.
func RhoAsLength(rho *unit.Unit, eph *Ephemeris) (*unit.Unit, error) {
	if rho == nil {
		return nil, fmt.Errorf("aperture: a projected distance is required")
	}
	d := rho.Dimensions()
	switch {
	case d.Matches(length):
		return rho, nil
	case d.Matches(angle):
		if eph == nil || eph.Delta == nil {
			return nil, fmt.Errorf("aperture: an ephemeris with geocentric distance is required to convert an angle to a length")
		}
		if !eph.Delta.Dimensions().Matches(length) {
			return nil, fmt.Errorf("aperture: geocentric distance must be a length but has units of %v",
				eph.Delta.Dimensions())
		}
		return unit.New(rho.Value()*eph.Delta.Value(), length), nil
	default:
		return nil, fmt.Errorf("aperture: projected distance must have length or angle units but has %v", d)
	}
}

// An Aperture is a centered projected-sky region. The complete set of
// shapes is Circular, Annular, Rectangular, and Gaussian; operations that
// dispatch on shape treat any other type as unsupported.
type Aperture interface {
	// AsLength returns an equivalent aperture in length units, converting
	// angular sizes with the ephemeris geocentric distance.
	AsLength(eph *Ephemeris) (Aperture, error)
}

// Circular is a circular aperture.
type Circular struct {
	Radius *unit.Unit
}

// AsLength implements the Aperture interface.
func (a *Circular) AsLength(eph *Ephemeris) (Aperture, error) {
	r, err := RhoAsLength(a.Radius, eph)
	if err != nil {
		return nil, err
	}
	return &Circular{Radius: r}, nil
}

// Annular is an annular aperture bounded by an inner and an outer radius.
type Annular struct {
	Inner, Outer *unit.Unit
}

// AsLength implements the Aperture interface.
func (a *Annular) AsLength(eph *Ephemeris) (Aperture, error) {
	inner, err := RhoAsLength(a.Inner, eph)
	if err != nil {
		return nil, err
	}
	outer, err := RhoAsLength(a.Outer, eph)
	if err != nil {
		return nil, err
	}
	return &Annular{Inner: inner, Outer: outer}, nil
}

// Rectangular is a rectangular aperture. DimX and DimY are the full side
// lengths, not half-widths.
type Rectangular struct {
	DimX, DimY *unit.Unit
}

// AsLength implements the Aperture interface.
func (a *Rectangular) AsLength(eph *Ephemeris) (Aperture, error) {
	x, err := RhoAsLength(a.DimX, eph)
	if err != nil {
		return nil, err
	}
	y, err := RhoAsLength(a.DimY, eph)
	if err != nil {
		return nil, err
	}
	return &Rectangular{DimX: x, DimY: y}, nil
}

// fwhmPerSigma = 2 sqrt(2 ln 2), the full width at half maximum of a
// Gaussian in units of its standard deviation.
const fwhmPerSigma = 2.3548200450309493

// Gaussian is a Gaussian-weighted beam, e.g. a radio telescope beam.
type Gaussian struct {
	Sigma *unit.Unit
}

// GaussianFromFWHM returns the Gaussian aperture with the given full width
// at half maximum.
func GaussianFromFWHM(fwhm *unit.Unit) *Gaussian {
	return &Gaussian{Sigma: unit.New(fwhm.Value()/fwhmPerSigma, fwhm.Dimensions())}
}

// FWHM returns the full width at half maximum of the beam.
func (a *Gaussian) FWHM() *unit.Unit {
	return unit.New(a.Sigma.Value()*fwhmPerSigma, a.Sigma.Dimensions())
}

// AsLength implements the Aperture interface.
func (a *Gaussian) AsLength(eph *Ephemeris) (Aperture, error) {
	s, err := RhoAsLength(a.Sigma, eph)
	if err != nil {
		return nil, err
	}
	return &Gaussian{Sigma: s}, nil
}

// Weight returns the beam throughput at projected distance rho from the
// beam center. rho must have the same unit dimensions as Sigma.
func (a *Gaussian) Weight(rho *unit.Unit) (float64, error) {
	if !rho.Dimensions().Matches(a.Sigma.Dimensions()) {
		return 0, fmt.Errorf("aperture: weight distance has units of %v but the beam size has units of %v",
			rho.Dimensions(), a.Sigma.Dimensions())
	}
	s := a.Sigma.Value()
	r := rho.Value()
	return math.Exp(-r * r / (2 * s * s)), nil
}
