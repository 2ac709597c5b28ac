// File: mapx_test.go
// Title: Map Utilities Tests
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12

package mapx

import (
	"reflect"
	"testing"
)

func TestKeys(t *testing.T) {
	if Keys[string, int](nil) != nil {
		t.Error("Keys(nil) should be nil")
	}
	if got := Keys(map[string]int{"a": 1}); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("Keys() = %v", got)
	}
}

func TestSortedKeys(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]bool
		want  []string
	}{
		{"nil map", nil, nil},
		{"empty map", map[string]bool{}, []string{}},
		{"unordered", map[string]bool{"phone": true, "email": false, "json": true}, []string{"email", "json", "phone"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortedKeys(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SortedKeys() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestClone(t *testing.T) {
	original := map[string]int{"a": 1}
	clone := Clone(original)
	clone["a"] = 2

	if original["a"] != 1 {
		t.Error("Clone must not share storage with the original")
	}
	if Clone[string, int](nil) == nil {
		t.Error("Clone(nil) should return an empty map")
	}
}
