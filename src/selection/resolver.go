// Package selection computes which dependent geo fields must be reset when a
// higher level of the country > state > district > zone chain changes.
package selection

import (
	"fmt"
	"strings"
)

type Field string

const (
	Country  Field = "country"
	State    Field = "state"
	District Field = "district"
	Zone     Field = "zone"
)

// chain is ordered from the root of the hierarchy down.
var chain = []Field{Country, State, District, Zone}

// Selection holds the currently chosen id per level; zero means nothing chosen.
type Selection struct {
	CountryID  int `json:"country_id"`
	StateID    int `json:"state_id"`
	DistrictID int `json:"district_id"`
	ZoneID     int `json:"zone_id"`
}

type Result struct {
	FieldsToClear   []Field   `json:"fields_to_clear"`
	FieldsToRefetch []Field   `json:"fields_to_refetch"`
	Selection       Selection `json:"selection"`
}

// ParseField accepts the level name with or without an "_id" suffix.
func ParseField(s string) (Field, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "_id")
	for _, f := range chain {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown selection field %q", s)
}

// Downstream returns every field below f, nearest first.
func Downstream(f Field) []Field {
	for i, c := range chain {
		if c == f {
			out := make([]Field, len(chain)-i-1)
			copy(out, chain[i+1:])
			return out
		}
	}
	return nil
}

// Next returns the level directly below f, or "" for the leaf.
func Next(f Field) Field {
	if d := Downstream(f); len(d) > 0 {
		return d[0]
	}
	return ""
}

// Resolve applies newValue to the changed field. Every downstream field is
// cleared and, when a value is chosen, marked for re-fetch. Re-selecting the
// current value changes nothing.
func Resolve(changed Field, newValue int, current Selection) (Result, error) {
	downstream := Downstream(changed)
	if downstream == nil {
		return Result{}, fmt.Errorf("unknown selection field %q", changed)
	}

	res := Result{
		FieldsToClear:   []Field{},
		FieldsToRefetch: []Field{},
		Selection:       current,
	}
	if current.get(changed) == newValue {
		return res, nil
	}

	res.Selection.set(changed, newValue)
	for _, f := range downstream {
		res.Selection.set(f, 0)
		res.FieldsToClear = append(res.FieldsToClear, f)
		if newValue > 0 {
			res.FieldsToRefetch = append(res.FieldsToRefetch, f)
		}
	}
	return res, nil
}

func (s Selection) get(f Field) int {
	switch f {
	case Country:
		return s.CountryID
	case State:
		return s.StateID
	case District:
		return s.DistrictID
	case Zone:
		return s.ZoneID
	}
	return 0
}

func (s *Selection) set(f Field, v int) {
	switch f {
	case Country:
		s.CountryID = v
	case State:
		s.StateID = v
	case District:
		s.DistrictID = v
	case Zone:
		s.ZoneID = v
	}
}
