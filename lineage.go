/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dispatch

import "reflect"

// lineage returns t's ancestor chain: t itself, then the types of its
// anonymous embedded fields depth-first in declaration order. Duplicates
// keep their first occurrence, so the most-derived position wins.
func lineage(t reflect.Type) []reflect.Type {
	seen := make(map[reflect.Type]bool)
	var chain []reflect.Type

	var walk func(reflect.Type)
	walk = func(t reflect.Type) {
		t = indirect(t)
		if t == nil || seen[t] {
			return
		}
		seen[t] = true
		chain = append(chain, t)

		if t.Kind() != reflect.Struct {
			return
		}
		for i := 0; i < t.NumField(); i++ {
			if f := t.Field(i); f.Anonymous {
				walk(f.Type)
			}
		}
	}
	walk(t)
	return chain
}

func lineageNames(t reflect.Type) []string {
	chain := lineage(t)
	names := make([]string, 0, len(chain))
	for _, ancestor := range chain {
		names = append(names, ancestor.String())
	}
	return names
}
