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
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/spatialmodel/coma/aperture"
)

// A QuadFunc integrates f over [min, max] with an n-node quadrature rule.
type QuadFunc func(f func(float64) float64, min, max float64, n int) float64

// GaussLegendre is the default QuadFunc.
func GaussLegendre(f func(float64) float64, min, max float64, n int) float64 {
	return quad.Fixed(f, min, max, n, quad.Legendre{}, 0)
}

// DefaultNodes is the default quadrature order per integration dimension.
const DefaultNodes = 256

// Integrator reduces total-number queries over aperture shapes without
// closed-form solutions to one- or two-dimensional quadrature over a
// model's column density. It is usable by any GasComa model.
type Integrator struct {
	// Quad is the quadrature capability. If nil, integrations log a
	// warning and return no value.
	Quad QuadFunc

	// Nodes is the quadrature order per dimension. Zero means DefaultNodes.
	Nodes int

	Log logrus.FieldLogger
}

// DefaultIntegrator returns an Integrator backed by Gauss-Legendre
// quadrature.
func DefaultIntegrator() Integrator {
	return Integrator{Quad: GaussLegendre, Nodes: DefaultNodes, Log: logrus.StandardLogger()}
}

func (ig Integrator) log() logrus.FieldLogger {
	if ig.Log == nil {
		return logrus.StandardLogger()
	}
	return ig.Log
}

// ColumnDensityIntegral computes the total number of molecules inside ap by
// numerically integrating m's column density over the aperture in polar
// coordinates. ap must already be in length units (see Aperture.AsLength),
// and is assumed to be centered on the projected nucleus position.
//
// If the quadrature capability is unavailable, or if the model itself
// returns no value, a warning is logged and a nil quantity is returned with
// a nil error.
func (ig Integrator) ColumnDensityIntegral(m GasComa, ap aperture.Aperture) (*unit.Unit, error) {
	if ap == nil {
		return nil, fmt.Errorf("coma: an aperture is required")
	}
	if ig.Quad == nil {
		ig.log().WithFields(logrus.Fields{
			"query": "total number",
		}).Warn("coma: the quadrature capability is unavailable; returning no value")
		return nil, nil
	}
	n := ig.Nodes
	if n <= 0 {
		n = DefaultNodes
	}

	// One reference evaluation, for the result units and to detect a
	// degraded model before running the full quadrature.
	ref, err := m.ColumnDensity(Meters(ig.refDistance(ap)), nil)
	if err != nil {
		return nil, err
	}
	if ref == nil {
		return nil, nil
	}

	sigma := func(rho float64) float64 {
		s, err := m.ColumnDensity(Meters(rho), nil)
		if err != nil || s == nil {
			return 0
		}
		return s.Value()
	}

	var raw float64
	switch a := ap.(type) {
	case *aperture.Circular:
		raw = 2 * math.Pi * ig.Quad(func(rho float64) float64 {
			return rho * sigma(rho)
		}, 0, a.Radius.Value(), n)
	case *aperture.Annular:
		raw = 2 * math.Pi * ig.Quad(func(rho float64) float64 {
			return rho * sigma(rho)
		}, a.Inner.Value(), a.Outer.Value(), n)
	case *aperture.Rectangular:
		raw = ig.rectangle(sigma, a.DimX.Value(), a.DimY.Value(), n)
	case *aperture.Gaussian:
		raw = 2 * math.Pi * ig.gaussian(sigma, a, n)
	default:
		return nil, fmt.Errorf("coma: integration over %T apertures is not implemented", ap)
	}

	// The result carries the units of column density times area.
	dims := unit.Mul(unit.New(1, ref.Dimensions()), unit.New(1, meters2)).Dimensions()
	return unit.New(raw, dims), nil
}

// refDistance picks a representative projected distance inside ap for the
// reference column-density evaluation.
func (ig Integrator) refDistance(ap aperture.Aperture) float64 {
	switch a := ap.(type) {
	case *aperture.Circular:
		return a.Radius.Value() / 2
	case *aperture.Annular:
		return (a.Inner.Value() + a.Outer.Value()) / 2
	case *aperture.Rectangular:
		return (a.DimX.Value() + a.DimY.Value()) / 4
	case *aperture.Gaussian:
		return a.Sigma.Value()
	default:
		return 1
	}
}

// rectangle integrates over a centered rectangle with full widths w1 and
// w2. By symmetry only one quarter needs integrating; the quarter is split
// into two angular sectors whose radial bound is the secant of the polar
// angle, scaled by the nearest rectangle edge.
func (ig Integrator) rectangle(sigma func(float64) float64, w1, w2 float64, n int) float64 {
	octant := func(wa, wb float64) float64 {
		thMax := math.Atan(wb / wa)
		return ig.Quad(func(th float64) float64 {
			rMax := wa / 2 / math.Cos(th)
			return ig.Quad(func(rho float64) float64 {
				return rho * sigma(rho)
			}, 0, rMax, n)
		}, 0, thMax, n)
	}
	return 4 * (octant(w1, w2) + octant(w2, w1))
}

// gaussian integrates rho*w(rho)*sigma(rho) over [0, inf), where w is the
// beam weight. The substitution rho = s*u/(1-u) maps the half-line onto
// [0, 1); the beam weight drives the integrand to zero long before the
// singular end of the map.
func (ig Integrator) gaussian(sigma func(float64) float64, a *aperture.Gaussian, n int) float64 {
	s := a.Sigma.Value()
	return ig.Quad(func(u float64) float64 {
		rho := s * u / (1 - u)
		jac := s / ((1 - u) * (1 - u))
		w, err := a.Weight(Meters(rho))
		if err != nil || w == 0 {
			return 0
		}
		return rho * w * sigma(rho) * jac
	}, 0, 1, n)
}
