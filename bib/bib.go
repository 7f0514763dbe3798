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

// Package bib tracks the publications that the results of a calculation
// are based on, so that users can cite them. Models and lookup functions
// register the ADS bibcodes of their sources as they are used.
package bib

import (
	"sort"
	"sync"
)

var (
	mx       sync.Mutex
	registry = make(map[string]map[string]struct{})
)

// Register records that task made use of the publication with the given
// ADS bibcode.
func Register(task, bibcode string) {
	mx.Lock()
	defer mx.Unlock()
	codes, ok := registry[task]
	if !ok {
		codes = make(map[string]struct{})
		registry[task] = codes
	}
	codes[bibcode] = struct{}{}
}

// References returns the bibcodes registered so far, keyed by task and
// sorted within each task.
func References() map[string][]string {
	mx.Lock()
	defer mx.Unlock()
	out := make(map[string][]string, len(registry))
	for task, codes := range registry {
		list := make([]string, 0, len(codes))
		for code := range codes {
			list = append(list, code)
		}
		sort.Strings(list)
		out[task] = list
	}
	return out
}

// Reset clears the registry.
func Reset() {
	mx.Lock()
	defer mx.Unlock()
	registry = make(map[string]map[string]struct{})
}
