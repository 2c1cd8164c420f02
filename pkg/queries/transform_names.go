// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package queries

import (
	"sort"
	"strings"

	"github.com/cockroachdb/rowbench/pkg/person"
	"github.com/cockroachdb/rowbench/pkg/rowexec"
)

// TransformNames keeps the names that contain a lowercase 'a' or 'e' and
// are longer than five bytes, uppercases them, and returns them in
// lexicographic order. The content check is case-sensitive: 'A' and 'E' do
// not qualify.
func TransformNames(d *person.Dataset) []string {
	people := d.People()

	rows := rowexec.Filter(d.Len(), d.Len()/10, func(row int) bool {
		name := people[row].Name
		return strings.ContainsAny(name, "ae") && len(name) > 5
	})
	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = strings.ToUpper(people[row].Name)
	}
	sort.Strings(names)
	return names
}
