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

package coma

import (
	"errors"

	"github.com/ctessum/unit"

	"github.com/spatialmodel/coma/aperture"
)

// ErrNotImplemented is returned by features that are declared but do not
// have a working implementation yet. Such calls always fail; they never
// return placeholder values.
var ErrNotImplemented = errors.New("coma: not implemented")

// Vectorial is the particle-trajectory coma model of Festou (1981). It is
// not implemented: it satisfies GasComa so that callers can already wire it
// in where a model is expected, but every query fails with
// ErrNotImplemented.
type Vectorial struct {
	// Q is the gas production rate.
	Q *unit.Unit
}

var _ GasComa = (*Vectorial)(nil)

// VolumeDensity implements the GasComa interface.
func (v *Vectorial) VolumeDensity(r *unit.Unit) (*unit.Unit, error) {
	return nil, ErrNotImplemented
}

// ColumnDensity implements the GasComa interface.
func (v *Vectorial) ColumnDensity(rho *unit.Unit, eph *aperture.Ephemeris) (*unit.Unit, error) {
	return nil, ErrNotImplemented
}

// TotalNumber implements the GasComa interface.
func (v *Vectorial) TotalNumber(ap aperture.Aperture, eph *aperture.Ephemeris) (*unit.Unit, error) {
	return nil, ErrNotImplemented
}
