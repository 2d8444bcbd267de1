// Package model defines the WRED profile data model shared by the store,
// the profile manager, and the CLI.
package model

// Profile is one named WRED profile together with the threshold fields the
// store currently holds for it. A profile never has to carry all six
// thresholds; Fields preserves whatever order the store returned.
type Profile struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Field is a single (field name, value) pair of a profile. Values are opaque
// strings; no numeric parsing or range checking happens at this layer.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
