package selection

import (
	"reflect"
	"testing"
)

func TestResolve(t *testing.T) {
	full := Selection{CountryID: 1, StateID: 2, DistrictID: 3, ZoneID: 4}

	tests := []struct {
		name        string
		changed     Field
		value       int
		current     Selection
		wantClear   []Field
		wantRefetch []Field
		wantSel     Selection
	}{
		{
			name:        "country change resets everything below",
			changed:     Country,
			value:       9,
			current:     full,
			wantClear:   []Field{State, District, Zone},
			wantRefetch: []Field{State, District, Zone},
			wantSel:     Selection{CountryID: 9},
		},
		{
			name:        "state change keeps country",
			changed:     State,
			value:       7,
			current:     full,
			wantClear:   []Field{District, Zone},
			wantRefetch: []Field{District, Zone},
			wantSel:     Selection{CountryID: 1, StateID: 7},
		},
		{
			name:        "district change clears zone only",
			changed:     District,
			value:       8,
			current:     full,
			wantClear:   []Field{Zone},
			wantRefetch: []Field{Zone},
			wantSel:     Selection{CountryID: 1, StateID: 2, DistrictID: 8},
		},
		{
			name:        "zone is a leaf",
			changed:     Zone,
			value:       5,
			current:     full,
			wantClear:   []Field{},
			wantRefetch: []Field{},
			wantSel:     Selection{CountryID: 1, StateID: 2, DistrictID: 3, ZoneID: 5},
		},
		{
			name:        "same value is a no-op",
			changed:     State,
			value:       2,
			current:     full,
			wantClear:   []Field{},
			wantRefetch: []Field{},
			wantSel:     full,
		},
		{
			name:        "clearing a level does not refetch",
			changed:     Country,
			value:       0,
			current:     full,
			wantClear:   []Field{State, District, Zone},
			wantRefetch: []Field{},
			wantSel:     Selection{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.changed, tt.value, tt.current)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if !reflect.DeepEqual(got.FieldsToClear, tt.wantClear) {
				t.Fatalf("clear = %v, want %v", got.FieldsToClear, tt.wantClear)
			}
			if !reflect.DeepEqual(got.FieldsToRefetch, tt.wantRefetch) {
				t.Fatalf("refetch = %v, want %v", got.FieldsToRefetch, tt.wantRefetch)
			}
			if got.Selection != tt.wantSel {
				t.Fatalf("selection = %+v, want %+v", got.Selection, tt.wantSel)
			}
		})
	}
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	cur := Selection{CountryID: 1, StateID: 2}
	if _, err := Resolve(Country, 3, cur); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cur.CountryID != 1 || cur.StateID != 2 {
		t.Fatalf("input selection was modified: %+v", cur)
	}
}

func TestResolveUnknownField(t *testing.T) {
	if _, err := Resolve(Field("city"), 1, Selection{}); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestParseField(t *testing.T) {
	tests := []struct {
		in   string
		want Field
		ok   bool
	}{
		{"country", Country, true},
		{"state_id", State, true},
		{" District ", District, true},
		{"zone_id", Zone, true},
		{"city", "", false},
	}
	for _, tt := range tests {
		got, err := ParseField(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseField(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestNext(t *testing.T) {
	if Next(Country) != State || Next(District) != Zone || Next(Zone) != "" {
		t.Fatalf("unexpected Next chain")
	}
}
