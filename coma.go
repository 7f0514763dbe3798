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

// Package coma models the spatial distribution of gas species outgassed
// from a comet nucleus and computes the observable quantities (line-of-sight
// column density and total molecule count within an observing aperture)
// that connect telescope-aperture photometry to production rates.
//
// All physical inputs and outputs are *unit.Unit quantities in SI base
// units; wrong unit dimensions are construction or call errors rather than
// silent conversions.
package coma

import (
	"fmt"

	"github.com/ctessum/unit"

	"github.com/spatialmodel/coma/aperture"
)

// moleDim is the dimension of substance amount. The symbol "mol" itself is
// reserved by the unit package.
var moleDim = unit.NewDimension("mole")

// Unit dimensions
var (
	perSecond       = unit.Dimensions{unit.TimeDim: -1}
	molesPerSecond  = unit.Dimensions{moleDim: 1, unit.TimeDim: -1}
	meters          = unit.Dimensions{unit.LengthDim: 1}
	meters2         = unit.Dimensions{unit.LengthDim: 2}
	metersPerSecond = unit.Dimensions{
		unit.LengthDim: 1,
		unit.TimeDim:   -1}
	perMeter2 = unit.Dimensions{unit.LengthDim: -2}
	perMeter3 = unit.Dimensions{unit.LengthDim: -3}
)

// GasComa is the interface for gas coma models. Models are immutable after
// construction, so a single instance may be queried concurrently.
type GasComa interface {
	// VolumeDensity returns the gas number density at linear distance r
	// from the nucleus. r must be a length.
	VolumeDensity(r *unit.Unit) (*unit.Unit, error)

	// ColumnDensity returns the line-of-sight column density at projected
	// distance rho from the nucleus. rho may be a length or an angle; an
	// angle requires an ephemeris with geocentric distance.
	ColumnDensity(rho *unit.Unit, eph *aperture.Ephemeris) (*unit.Unit, error)

	// TotalNumber returns the total number of molecules inside the
	// aperture. An ephemeris with geocentric distance is required if the
	// aperture has angular units.
	TotalNumber(ap aperture.Aperture, eph *aperture.Ephemeris) (*unit.Unit, error)
}

// TotalNumberWithin returns the total number of molecules within projected
// distance rho of the nucleus, treating rho as the radius of a circular
// aperture.
func TotalNumberWithin(m GasComa, rho *unit.Unit, eph *aperture.Ephemeris) (*unit.Unit, error) {
	r, err := aperture.RhoAsLength(rho, eph)
	if err != nil {
		return nil, err
	}
	return m.TotalNumber(&aperture.Circular{Radius: r}, eph)
}

func checkProductionRate(q *unit.Unit) error {
	if q == nil {
		return fmt.Errorf("coma: a production rate is required")
	}
	if d := q.Dimensions(); !d.Matches(perSecond) && !d.Matches(molesPerSecond) {
		return fmt.Errorf("coma: production rate must be a count or substance amount per time but has units of %v", d)
	}
	return nil
}

func checkOutflowSpeed(v *unit.Unit) error {
	if v == nil {
		return fmt.Errorf("coma: an outflow speed is required")
	}
	if d := v.Dimensions(); !d.Matches(metersPerSecond) {
		return fmt.Errorf("coma: outflow speed must be a length per time but has units of %v", d)
	}
	if v.Value() <= 0 {
		return fmt.Errorf("coma: outflow speed must be positive but is %g", v.Value())
	}
	return nil
}

func checkLengthscale(l *unit.Unit, name string) error {
	if d := l.Dimensions(); !d.Matches(meters) {
		return fmt.Errorf("coma: %s lengthscale must be a length but has units of %v", name, d)
	}
	if l.Value() < 0 {
		return fmt.Errorf("coma: %s lengthscale must not be negative but is %g", name, l.Value())
	}
	return nil
}
