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
	"sort"
	"strings"

	"github.com/ctessum/unit"

	"github.com/spatialmodel/coma/bib"
)

// Literature values of photodissociation properties at 1 au. Sources:
//
// [CS93] H2O and OH from Table IV of Cochran & Schleicher 1993,
// Icarus 105, 235-253. Quoted for intermediate solar activity.
//
// [CE83] Crovisier & Encrenaz 1983, A&A 126, 170-182.
//
// [H92] Huebner et al. 1992, Astroph. & Space Sci. 195, 1-294.
type photoDatum struct {
	values  []float64 // SI; two entries mean (quiet Sun, active Sun)
	bibcode string
}

var (
	photoLengthscales = map[string]map[string]photoDatum{
		"H2O": {"CS93": {[]float64{2.4e7}, "1993Icar..105..235C"}},
		"OH":  {"CS93": {[]float64{1.6e8}, "1993Icar..105..235C"}},
	}
	photoLengthscaleDefaults = map[string]string{
		"H2O": "CS93",
		"OH":  "CS93",
	}

	photoTimescales = map[string]map[string]photoDatum{
		"H2O": {"CS93": {[]float64{5.2e4}, "1993Icar..105..235C"}},
		"OH":  {"CS93": {[]float64{1.6e5}, "1993Icar..105..235C"}},
		"CO2": {"CE83": {[]float64{5.0e5}, "1983A%26A...126..170C"}},
		"CO":  {"CE83": {[]float64{1.5e6}, "1983A%26A...126..170C"}},
		"CN":  {"H92": {[]float64{3.15e5, 1.35e5}, "1992Ap%26SS.195....1H"}},
	}
	photoTimescaleDefaults = map[string]string{
		"H2O": "CS93",
		"OH":  "CS93",
		"CO2": "CE83",
		"CO":  "CE83",
		"CN":  "H92",
	}
)

func lookupPhoto(table map[string]map[string]photoDatum, defaults map[string]string,
	species, source, what string) (photoDatum, error) {
	sp := strings.ToUpper(species)
	sources, ok := table[sp]
	if !ok {
		return photoDatum{}, fmt.Errorf("coma: no %s available for %s; choose from: %s",
			what, species, strings.Join(sortedKeys(table), ", "))
	}
	if source == "" {
		source = defaults[sp]
	}
	datum, ok := sources[strings.ToUpper(source)]
	if !ok {
		keys := make([]string, 0, len(sources))
		for k := range sources {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return photoDatum{}, fmt.Errorf("coma: source key %s is not available for %s; choose from: %s",
			source, species, strings.Join(keys, ", "))
	}
	return datum, nil
}

func sortedKeys(table map[string]map[string]photoDatum) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PhotoLengthscale returns the photodissociation lengthscale of a gas
// species at 1 au. source selects the literature source; an empty string
// selects the default source for the species.
func PhotoLengthscale(species, source string) (*unit.Unit, error) {
	datum, err := lookupPhoto(photoLengthscales, photoLengthscaleDefaults,
		species, source, "lengthscale")
	if err != nil {
		return nil, err
	}
	bib.Register("coma.PhotoLengthscale", datum.bibcode)
	return unit.New(datum.values[0], meters), nil
}

// PhotoTimescale returns the photodissociation timescale of a gas species
// at 1 au. source selects the literature source; an empty string selects
// the default source for the species. The result has one element, or two
// (quiet Sun, active Sun) where the source distinguishes solar activity.
func PhotoTimescale(species, source string) ([]*unit.Unit, error) {
	datum, err := lookupPhoto(photoTimescales, photoTimescaleDefaults,
		species, source, "timescale")
	if err != nil {
		return nil, err
	}
	bib.Register("coma.PhotoTimescale", datum.bibcode)
	out := make([]*unit.Unit, len(datum.values))
	for i, v := range datum.values {
		out[i] = Seconds(v)
	}
	return out, nil
}

// FluorescenceBandStrength returns the fluorescence band efficiency of a
// species and transition, scaled by the heliocentric radial speed rdot.
//
// It is not implemented and always fails with ErrNotImplemented.
func FluorescenceBandStrength(species string, rdot *unit.Unit, source string) (*unit.Unit, error) {
	return nil, ErrNotImplemented
}
