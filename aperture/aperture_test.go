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

package aperture

import (
	"math"
	"testing"

	"github.com/ctessum/unit"
)

const au = 1.495978707e11 // m

func TestRhoAsLength(t *testing.T) {
	eph := &Ephemeris{Rh: unit.New(1.5*au, length), Delta: unit.New(au, length)}

	// Lengths pass through unchanged.
	rho := unit.New(1e7, length)
	r, err := RhoAsLength(rho, nil)
	if err != nil {
		t.Fatal(err)
	}
	if r.Value() != 1e7 {
		t.Errorf("have %g, want 1e7", r.Value())
	}

	// One arcsecond at 1 au is about 725.27 km.
	r, err = RhoAsLength(Arcseconds(1), eph)
	if err != nil {
		t.Fatal(err)
	}
	want := au * math.Pi / 180 / 3600
	if math.Abs(r.Value()-want) > 1e-6*want {
		t.Errorf("have %g m, want %g m", r.Value(), want)
	}
	if !r.Dimensions().Matches(length) {
		t.Errorf("converted distance has units of %v, want m", r.Dimensions())
	}

	// Angles cannot be converted without a geocentric distance.
	if _, err := RhoAsLength(Arcseconds(1), nil); err == nil {
		t.Error("angle without ephemeris: no error")
	}
	if _, err := RhoAsLength(Arcseconds(1), &Ephemeris{}); err == nil {
		t.Error("angle without geocentric distance: no error")
	}

	// Other unit dimensions are rejected.
	if _, err := RhoAsLength(unit.New(1, unit.Dimensions{unit.TimeDim: 1}), eph); err == nil {
		t.Error("time-valued distance: no error")
	}
	if _, err := RhoAsLength(nil, eph); err == nil {
		t.Error("nil distance: no error")
	}
}

func TestAsLength(t *testing.T) {
	eph := &Ephemeris{Delta: unit.New(au, length)}
	scale := au * radiansPerArcsec // m per arcsec at 1 au

	circ, err := (&Circular{Radius: Arcseconds(10)}).AsLength(eph)
	if err != nil {
		t.Fatal(err)
	}
	if r := circ.(*Circular).Radius.Value(); math.Abs(r-10*scale) > 1e-6*scale {
		t.Errorf("circular radius is %g m, want %g m", r, 10*scale)
	}

	ann, err := (&Annular{Inner: Arcseconds(5), Outer: Arcseconds(10)}).AsLength(eph)
	if err != nil {
		t.Fatal(err)
	}
	a := ann.(*Annular)
	if a.Inner.Value() >= a.Outer.Value() {
		t.Errorf("converted annulus has inner %g >= outer %g", a.Inner.Value(), a.Outer.Value())
	}

	rect, err := (&Rectangular{DimX: Arcseconds(2), DimY: unit.New(1e7, length)}).AsLength(eph)
	if err != nil {
		t.Fatal(err)
	}
	rc := rect.(*Rectangular)
	if rc.DimY.Value() != 1e7 {
		t.Errorf("length-valued side was changed: %g", rc.DimY.Value())
	}
	if math.Abs(rc.DimX.Value()-2*scale) > 1e-6*scale {
		t.Errorf("angular side is %g m, want %g m", rc.DimX.Value(), 2*scale)
	}

	if _, err := (&Circular{Radius: Arcseconds(10)}).AsLength(nil); err == nil {
		t.Error("angular aperture without ephemeris: no error")
	}
}

func TestGaussian(t *testing.T) {
	g := GaussianFromFWHM(unit.New(1e7, length))
	if math.Abs(g.FWHM().Value()-1e7) > 1e-9*1e7 {
		t.Errorf("FWHM roundtrip: have %g, want 1e7", g.FWHM().Value())
	}
	wantSigma := 1e7 / (2 * math.Sqrt(2*math.Log(2)))
	if math.Abs(g.Sigma.Value()-wantSigma) > 1e-9*wantSigma {
		t.Errorf("sigma is %g, want %g", g.Sigma.Value(), wantSigma)
	}

	w, err := g.Weight(unit.New(0, length))
	if err != nil {
		t.Fatal(err)
	}
	if w != 1 {
		t.Errorf("weight at center is %g, want 1", w)
	}
	w, err = g.Weight(g.Sigma)
	if err != nil {
		t.Fatal(err)
	}
	want := math.Exp(-0.5)
	if math.Abs(w-want) > 1e-12 {
		t.Errorf("weight at one sigma is %g, want %g", w, want)
	}

	if _, err := g.Weight(Arcseconds(1)); err == nil {
		t.Error("mismatched weight units: no error")
	}
}
