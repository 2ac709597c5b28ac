// Package mapx provides generic map helpers.
//
// SortedKeys gives deterministic iteration over maps whose output order
// matters, such as log fields and predicate registries:
//
//	for _, k := range mapx.SortedKeys(fields) {
//		fmt.Printf("%s=%v ", k, fields[k])
//	}
package mapx
