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

import "github.com/ctessum/unit"

// Convenience constructors for the quantities the models consume. Values
// are stored in SI base units.

// PerSecond returns a production rate of v molecules per second.
func PerSecond(v float64) *unit.Unit { return unit.New(v, perSecond) }

// MolesPerSecond returns a production rate of v moles per second.
func MolesPerSecond(v float64) *unit.Unit { return unit.New(v, molesPerSecond) }

// Meters returns a length of v meters.
func Meters(v float64) *unit.Unit { return unit.New(v, meters) }

// Kilometers returns a length of v kilometers.
func Kilometers(v float64) *unit.Unit { return unit.New(v*1e3, meters) }

// AU returns a length of v astronomical units.
func AU(v float64) *unit.Unit { return unit.New(v*1.495978707e11, meters) }

// MetersPerSecond returns a speed of v meters per second.
func MetersPerSecond(v float64) *unit.Unit { return unit.New(v, metersPerSecond) }

// KilometersPerSecond returns a speed of v kilometers per second.
func KilometersPerSecond(v float64) *unit.Unit { return unit.New(v*1e3, metersPerSecond) }

// Seconds returns a duration of v seconds.
func Seconds(v float64) *unit.Unit { return unit.New(v, unit.Dimensions{unit.TimeDim: 1}) }
