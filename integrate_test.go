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
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/spatialmodel/coma/aperture"
)

// quadTolerance is the relative agreement expected between the quadrature
// engine and the closed-form solutions.
const quadTolerance = 1e-3

// The generic integration path over a circular aperture must reproduce the
// closed-form circular solution, for both one and two species.
func TestIntegrateCircular(t *testing.T) {
	for _, daughter := range []float64{-1, testDaughter} {
		h := testHaser(t, daughter)
		ap := &aperture.Circular{Radius: Kilometers(1e4)}

		closed, err := h.TotalNumber(ap, nil)
		if err != nil {
			t.Fatal(err)
		}
		numeric, err := h.Integrate.ColumnDensityIntegral(h, ap)
		if err != nil {
			t.Fatal(err)
		}
		checkClose(t, "circular aperture", numeric.Value(), closed.Value(), quadTolerance)
	}
}

func TestIntegrateAnnular(t *testing.T) {
	h := testHaser(t, testDaughter)
	ap := &aperture.Annular{Inner: Kilometers(5e3), Outer: Kilometers(2e4)}

	closed, err := h.TotalNumber(ap, nil)
	if err != nil {
		t.Fatal(err)
	}
	numeric, err := h.Integrate.ColumnDensityIntegral(h, ap)
	if err != nil {
		t.Fatal(err)
	}
	checkClose(t, "annular aperture", numeric.Value(), closed.Value(), quadTolerance)
}

// The two-octant rectangle decomposition must be invariant under swapping
// the side lengths.
func TestIntegrateRectangleSwap(t *testing.T) {
	h := testHaser(t, testDaughter)

	a, err := h.TotalNumber(&aperture.Rectangular{
		DimX: Kilometers(1e4), DimY: Kilometers(4e4)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := h.TotalNumber(&aperture.Rectangular{
		DimX: Kilometers(4e4), DimY: Kilometers(1e4)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	checkClose(t, "rectangle swap", a.Value(), b.Value(), 1e-12)
}

// A square and the circle of equal area hold similar molecule counts. The
// shapes differ, so this is only an order-of-magnitude check.
func TestIntegrateSquareVsCircle(t *testing.T) {
	h := testHaser(t, testDaughter)
	const side = 2e4 // km

	square, err := h.TotalNumber(&aperture.Rectangular{
		DimX: Kilometers(side), DimY: Kilometers(side)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	circle, err := TotalNumberWithin(h, Kilometers(side/math.Sqrt(math.Pi)), nil)
	if err != nil {
		t.Fatal(err)
	}
	ratio := square.Value() / circle.Value()
	if ratio < 0.5 || ratio > 2 {
		t.Errorf("square/circle total number ratio is %g, want within a factor of 2 of 1", ratio)
	}
}

func TestIntegrateGaussian(t *testing.T) {
	h := testHaser(t, -1)
	ap := &aperture.Gaussian{Sigma: Kilometers(2e4)}

	n, err := h.TotalNumber(ap, nil)
	if err != nil {
		t.Fatal(err)
	}
	if n.Value() <= 0 {
		t.Fatalf("gaussian total number is %g, want > 0", n.Value())
	}
	// The beam weight only attenuates, so the count is below the
	// whole-coma content Q*parent/v.
	bound := testQ * (testParent * 1e3) / (testV * 1e3)
	if n.Value() >= bound {
		t.Errorf("gaussian total number %g exceeds the whole-coma content %g", n.Value(), bound)
	}

	// A much wider beam passes more of the coma.
	wide, err := h.TotalNumber(&aperture.Gaussian{Sigma: Kilometers(2e5)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if wide.Value() <= n.Value() {
		t.Errorf("widening the beam decreased the total number: %g <= %g", wide.Value(), n.Value())
	}
}

// Without the quadrature capability the engine warns and returns no value.
func TestIntegratorSoftDegrade(t *testing.T) {
	h := testHaser(t, testDaughter)
	logger, hook := test.NewNullLogger()
	h.Integrate = Integrator{Quad: nil, Log: logger}

	n, err := h.TotalNumber(&aperture.Rectangular{
		DimX: Kilometers(1e4), DimY: Kilometers(1e4)}, nil)
	if err != nil {
		t.Fatalf("soft degrade should not fail: %v", err)
	}
	if n != nil {
		t.Errorf("degraded total number is %v, want no value", n)
	}
	if e := hook.LastEntry(); e == nil || e.Level != logrus.WarnLevel {
		t.Error("degraded integration did not log a warning")
	}
}

// A model that returns no value degrades the integration too, without
// running the quadrature.
func TestIntegratorDegradedModel(t *testing.T) {
	h := testHaser(t, testDaughter)
	logger, _ := test.NewNullLogger()
	h.Funcs = nil
	h.Log = logger

	n, err := h.Integrate.ColumnDensityIntegral(h, &aperture.Gaussian{Sigma: Kilometers(1e4)})
	if err != nil {
		t.Fatalf("soft degrade should not fail: %v", err)
	}
	if n != nil {
		t.Errorf("total number from a degraded model is %v, want no value", n)
	}
}

func TestIntegratorUnsupportedAperture(t *testing.T) {
	h := testHaser(t, testDaughter)
	if _, err := h.Integrate.ColumnDensityIntegral(h, diamondAperture{}); err == nil {
		t.Error("unsupported aperture kind: no error")
	}
	if _, err := h.Integrate.ColumnDensityIntegral(h, nil); err == nil {
		t.Error("nil aperture: no error")
	}
}
