// File: doc.go
// Title: Package Documentation for jsonx
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

// Package jsonx serializes values with the textkit JSON defaults: camelCase
// property names and map keys, null properties omitted and two-space
// indentation. Deserialization matches property names case-insensitively.
//
//	type Person struct {
//		FirstName string
//		Nickname  *string
//	}
//	s, _ := jsonx.ToJSON(Person{FirstName: "Ada"})
//	// {
//	//   "firstName": "Ada"
//	// }
//
// Struct tags are honored by encoding/json first; the naming function is then
// applied to the resulting names. Pass WithNaming(nil) to keep them verbatim.
package jsonx
