package data

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseStatic(t *testing.T) {
	const src = `{
		"voltage": {"value": 12.5, "min": 0, "max": 40},
		"name": "PSU",
		"enabled": true,
		"modes": ["CV", "CC"],
		"mode": 1
	}`
	s, err := ParseStatic(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseStatic: %v", err)
	}

	if got := s.Get("voltage"); got != 12.5 {
		t.Errorf("expected 12.5, got %v", got)
	}
	if got := s.GetMax("voltage"); got != 40 {
		t.Errorf("expected max 40, got %v", got)
	}
	if got := s.Get("name"); got != "PSU" {
		t.Errorf("expected PSU, got %v", got)
	}
	if !s.GetBool("enabled") {
		t.Error("expected enabled to be true")
	}
	if got := s.GetValueList("modes"); !reflect.DeepEqual(got, []string{"CV", "CC"}) {
		t.Errorf("expected [CV CC], got %v", got)
	}
	if got, _ := Int(s.Get("mode")); got != 1 {
		t.Errorf("expected mode 1, got %d", got)
	}
}

func TestParseStaticInvalid(t *testing.T) {
	if _, err := ParseStatic(strings.NewReader(`[1, 2]`)); err == nil {
		t.Error("expected an error for a non-object snapshot")
	}
}

func TestStaticMissing(t *testing.T) {
	s := NewStatic()
	if s.Get("x") != nil {
		t.Error("expected nil for a missing ref")
	}
	if s.GetBool("x") {
		t.Error("expected false for a missing ref")
	}
	if s.GetMin("x") != DefaultMin || s.GetMax("x") != DefaultMax {
		t.Errorf("expected default range, got [%v, %v]", s.GetMin("x"), s.GetMax("x"))
	}
	if s.GetValueList("x") != nil {
		t.Error("expected nil list for a missing ref")
	}

	var nilStatic *Static
	if nilStatic.Get("x") != nil {
		t.Error("expected nil from a nil snapshot")
	}
}

func TestStaticSet(t *testing.T) {
	s := NewStatic()
	s.SetRange("v", -5, 5)
	s.Set("v", 3)
	s.SetValueList("v", []string{"a"})

	if s.Get("v") != 3 {
		t.Errorf("expected 3, got %v", s.Get("v"))
	}
	if s.GetMin("v") != -5 || s.GetMax("v") != 5 {
		t.Errorf("expected range kept after Set, got [%v, %v]", s.GetMin("v"), s.GetMax("v"))
	}

	list := s.GetValueList("v")
	list[0] = "changed"
	if s.GetValueList("v")[0] != "a" {
		t.Error("expected GetValueList to return a copy")
	}
	if got := s.Refs(); !reflect.DeepEqual(got, []string{"v"}) {
		t.Errorf("expected [v], got %v", got)
	}
}

func TestConversions(t *testing.T) {
	tests := []struct {
		in     any
		format string
		truth  bool
	}{
		{nil, "", false},
		{true, "true", true},
		{0.0, "0", false},
		{2.5, "2.5", true},
		{7, "7", true},
		{"0", "0", false},
		{"false", "false", false},
		{"on", "on", true},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.format {
			t.Errorf("Format(%v): expected %q, got %q", tt.in, tt.format, got)
		}
		if got := Bool(tt.in); got != tt.truth {
			t.Errorf("Bool(%v): expected %v, got %v", tt.in, tt.truth, got)
		}
	}

	if f, ok := Float(" 1.5 "); !ok || f != 1.5 {
		t.Errorf("expected 1.5, got %v (%v)", f, ok)
	}
	if _, ok := Float("abc"); ok {
		t.Error("expected abc not to parse")
	}
}
