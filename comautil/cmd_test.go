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

package comautil

import (
	"testing"

	"github.com/spatialmodel/coma/aperture"
)

func TestHaserFromConfig(t *testing.T) {
	h, err := HaserFromConfig(Cfg)
	if err != nil {
		t.Fatal(err)
	}
	if h.Q.Value() != 1e28 {
		t.Errorf("default Q is %g, want 1e28", h.Q.Value())
	}
	if h.V.Value() != 1e3 {
		t.Errorf("default v is %g m/s, want 1e3 m/s", h.V.Value())
	}
	if h.Parent.Value() != 2.4e7 {
		t.Errorf("default parent is %g m, want 2.4e7 m", h.Parent.Value())
	}
	if h.Daughter != nil {
		t.Errorf("default daughter is %v, want none", h.Daughter)
	}

	Cfg.Set("daughter", 1.6e5)
	defer Cfg.Set("daughter", 0.0)
	h, err = HaserFromConfig(Cfg)
	if err != nil {
		t.Fatal(err)
	}
	if h.Daughter == nil || h.Daughter.Value() != 1.6e8 {
		t.Errorf("daughter is %v, want 1.6e8 m", h.Daughter)
	}
}

func TestApertureFromConfig(t *testing.T) {
	ap, err := ApertureFromConfig(Cfg)
	if err != nil {
		t.Fatal(err)
	}
	circ, ok := ap.(*aperture.Circular)
	if !ok {
		t.Fatalf("default aperture is %T, want *aperture.Circular", ap)
	}
	if circ.Radius.Value() != 1e7 {
		t.Errorf("default radius is %g m, want 1e7 m", circ.Radius.Value())
	}

	Cfg.Set("aperture", "annular")
	Cfg.Set("size", []string{"5e3", "1e4"})
	defer func() {
		Cfg.Set("aperture", "circular")
		Cfg.Set("size", []string{"1e4"})
	}()
	ap, err = ApertureFromConfig(Cfg)
	if err != nil {
		t.Fatal(err)
	}
	ann, ok := ap.(*aperture.Annular)
	if !ok {
		t.Fatalf("aperture is %T, want *aperture.Annular", ap)
	}
	if ann.Inner.Value() != 5e6 || ann.Outer.Value() != 1e7 {
		t.Errorf("annulus is [%g, %g] m, want [5e6, 1e7] m", ann.Inner.Value(), ann.Outer.Value())
	}

	Cfg.Set("aperture", "hexagonal")
	if _, err := ApertureFromConfig(Cfg); err == nil {
		t.Error("unknown aperture kind: no error")
	}

	Cfg.Set("aperture", "circular")
	Cfg.Set("size", []string{"not-a-number"})
	if _, err := ApertureFromConfig(Cfg); err == nil {
		t.Error("unparseable size: no error")
	}

	Cfg.Set("size", []string{"1", "2", "3"})
	if _, err := ApertureFromConfig(Cfg); err == nil {
		t.Error("wrong size count: no error")
	}
}
