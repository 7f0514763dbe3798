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
	"fmt"
	"math"

	"github.com/ctessum/unit"
	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/coma/aperture"
	"github.com/spatialmodel/coma/bib"
)

// Haser is the two-species photodissociation coma model of Haser (1957):
// molecules are produced at the nucleus at a constant rate, expand radially
// at constant speed, and decay exponentially with the parent lengthscale;
// the decay products decay in turn with the daughter lengthscale. The model
// is steady-state and spherically symmetric.
//
// Column density and total number use the closed-form solutions of
// Newburn and Johnson (1978).
type Haser struct {
	// Q is the gas production rate, in count or substance amount per time.
	Q *unit.Unit
	// V is the radial outflow speed.
	V *unit.Unit
	// Parent is the photodissociation lengthscale of the parent species.
	Parent *unit.Unit
	// Daughter is the photodissociation lengthscale of the daughter
	// species. Nil means there is no daughter species; zero means the
	// daughter decays instantaneously.
	Daughter *unit.Unit

	// Funcs evaluates the special functions that the column density and
	// total number closed forms need. If nil, those queries log a warning
	// and return no value.
	Funcs SpecFuncs

	// Integrate handles apertures without closed-form solutions.
	Integrate Integrator

	Log logrus.FieldLogger
}

var _ GasComa = (*Haser)(nil)

// NewHaser creates a Haser model from a production rate, an outflow speed,
// and the parent and (optionally nil) daughter photodissociation
// lengthscales, validating the unit dimensions of each.
func NewHaser(q, v, parent, daughter *unit.Unit) (*Haser, error) {
	if err := checkProductionRate(q); err != nil {
		return nil, err
	}
	if err := checkOutflowSpeed(v); err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, fmt.Errorf("coma: a parent lengthscale is required")
	}
	if err := checkLengthscale(parent, "parent"); err != nil {
		return nil, err
	}
	if daughter != nil {
		if err := checkLengthscale(daughter, "daughter"); err != nil {
			return nil, err
		}
		// The closed forms divide by parent-daughter.
		if daughter.Value() != 0 && daughter.Value() == parent.Value() {
			return nil, fmt.Errorf("coma: the parent and daughter lengthscales must not be equal")
		}
	}
	bib.Register("coma.Haser", "1957BSRSL..43..740H")
	return &Haser{
		Q:         q,
		V:         v,
		Parent:    parent,
		Daughter:  daughter,
		Funcs:     BesselFuncs{},
		Integrate: DefaultIntegrator(),
		Log:       logrus.StandardLogger(),
	}, nil
}

func (h *Haser) log() logrus.FieldLogger {
	if h.Log == nil {
		return logrus.StandardLogger()
	}
	return h.Log
}

// parentOnly reports whether the model reduces to single-species decay.
func (h *Haser) parentOnly() bool {
	return h.Daughter == nil || h.Daughter.Value() == 0
}

// lengthscales returns the parent and daughter lengthscales in meters,
// with absent values as zero.
func (h *Haser) lengthscales() (p, d float64) {
	p = h.Parent.Value()
	if h.Daughter != nil {
		d = h.Daughter.Value()
	}
	return p, d
}

// VolumeDensity implements the GasComa interface.
func (h *Haser) VolumeDensity(r *unit.Unit) (*unit.Unit, error) {
	if r == nil {
		return nil, fmt.Errorf("coma: a radial distance is required")
	}
	if !r.Dimensions().Matches(meters) {
		return nil, fmt.Errorf("coma: radial distance must be a length but has units of %v", r.Dimensions())
	}
	rm := r.Value()
	if rm <= 0 {
		return nil, fmt.Errorf("coma: radial distance must be positive but is %g", rm)
	}

	p, d := h.lengthscales()
	var f float64
	if h.parentOnly() {
		f = math.Exp(-rm / p)
	} else {
		f = d / (p - d) * (math.Exp(-rm/p) - math.Exp(-rm/d))
	}
	n := unit.Div(h.Q, unit.Mul(r, r, h.V))
	return unit.Mul(n, unit.New(f/(4*math.Pi), unit.Dimless)), nil
}

// ColumnDensity implements the GasComa interface.
//
// If the special-function capability is unavailable, a warning is logged
// and a nil quantity is returned with a nil error.
func (h *Haser) ColumnDensity(rho *unit.Unit, eph *aperture.Ephemeris) (*unit.Unit, error) {
	r, err := aperture.RhoAsLength(rho, eph)
	if err != nil {
		return nil, err
	}
	rm := r.Value()
	if rm <= 0 {
		return nil, fmt.Errorf("coma: projected distance must be positive but is %g", rm)
	}
	if h.Funcs == nil {
		h.log().WithFields(logrus.Fields{
			"model": "Haser",
			"query": "column density",
		}).Warn("coma: the special-function capability is unavailable; returning no value")
		return nil, nil
	}

	p, d := h.lengthscales()
	var x, y float64
	if p != 0 {
		x = rm / p
	}
	if d != 0 {
		y = rm / d
	}

	var g float64
	switch {
	case d == 0:
		g = math.Pi/2 - h.Funcs.IK0(x)
	case p == 0:
		g = math.Pi/2 - h.Funcs.IK0(y)
	case p < d:
		// Algebraically the same as the branch below; evaluated this way
		// around to keep the prefactor and the difference of integrals
		// individually well-conditioned.
		g = p / (d - p) * (h.Funcs.IK0(x) - h.Funcs.IK0(y))
	default:
		g = d / (p - d) * (h.Funcs.IK0(y) - h.Funcs.IK0(x))
	}

	sigma := unit.Div(h.Q, unit.Mul(r, h.V))
	return unit.Mul(sigma, unit.New(g/(2*math.Pi), unit.Dimless)), nil
}

// TotalNumber implements the GasComa interface.
//
// Circular apertures use the closed-form solution and annular apertures the
// difference of two circular solutions; rectangular and Gaussian apertures
// are integrated numerically. If the special-function capability is
// unavailable, a warning is logged and a nil quantity is returned with a
// nil error.
func (h *Haser) TotalNumber(ap aperture.Aperture, eph *aperture.Ephemeris) (*unit.Unit, error) {
	if ap == nil {
		return nil, fmt.Errorf("coma: an aperture is required")
	}
	lap, err := ap.AsLength(eph)
	if err != nil {
		return nil, err
	}
	switch a := lap.(type) {
	case *aperture.Circular:
		return h.totalNumberCircular(a.Radius)
	case *aperture.Annular:
		outer, err := h.totalNumberCircular(a.Outer)
		if err != nil || outer == nil {
			return outer, err
		}
		inner, err := h.totalNumberCircular(a.Inner)
		if err != nil || inner == nil {
			return inner, err
		}
		return unit.Sub(outer, inner), nil
	case *aperture.Rectangular, *aperture.Gaussian:
		return h.Integrate.ColumnDensityIntegral(h, lap)
	default:
		return nil, fmt.Errorf("coma: total number is not implemented for %T apertures", lap)
	}
}

// totalNumberCircular evaluates the closed-form total number within a
// circular aperture of radius rho, where rho is already a length.
func (h *Haser) totalNumberCircular(rho *unit.Unit) (*unit.Unit, error) {
	if rho == nil {
		return nil, fmt.Errorf("coma: an aperture radius is required")
	}
	rm := rho.Value()
	if rm <= 0 {
		return nil, fmt.Errorf("coma: aperture radius must be positive but is %g", rm)
	}
	if h.Funcs == nil {
		h.log().WithFields(logrus.Fields{
			"model": "Haser",
			"query": "total number",
		}).Warn("coma: the special-function capability is unavailable; returning no value")
		return nil, nil
	}

	p, d := h.lengthscales()
	var x, y float64
	if p != 0 {
		x = rm / p
	}
	if d != 0 {
		y = rm / d
	}

	switch {
	case d == 0:
		g := 1 + x*(h.Funcs.K1(x)+math.Pi/2-h.Funcs.IK0(x))
		return unit.Mul(unit.Div(h.Q, h.V), h.Parent, unit.New(g, unit.Dimless)), nil
	case p == 0:
		g := 1 + y*(h.Funcs.K1(y)+math.Pi/2-h.Funcs.IK0(y))
		return unit.Mul(unit.Div(h.Q, h.V), h.Daughter, unit.New(g, unit.Dimless)), nil
	default:
		g := d / (p - d) * (h.Funcs.IK0(y) - h.Funcs.IK0(x) +
			1/x - 1/y + h.Funcs.K1(y) - h.Funcs.K1(x))
		return unit.Mul(unit.Div(h.Q, h.V), rho, unit.New(g, unit.Dimless)), nil
	}
}
