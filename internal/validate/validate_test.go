// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package validate

import "testing"

// =============================================================================
// IDENTITY TESTS
// =============================================================================

func TestIdentity(t *testing.T) {
	tests := []struct {
		name      string
		inName    string
		inLoc     string
		wantErr   bool
		wantName  string
		wantLoc   string
	}{
		{name: "valid", inName: "Ana", inLoc: "Rio", wantName: "Ana", wantLoc: "Rio"},
		{name: "trims whitespace", inName: "  Ana ", inLoc: " Rio  ", wantName: "Ana", wantLoc: "Rio"},
		{name: "empty name", inName: "", inLoc: "Rio", wantErr: true},
		{name: "empty location", inName: "Ana", inLoc: "", wantErr: true},
		{name: "whitespace only name", inName: "   ", inLoc: "Rio", wantErr: true},
		{name: "whitespace only location", inName: "Ana", inLoc: "\t ", wantErr: true},
		{name: "both empty", inName: "", inLoc: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, err := Identity(tc.inName, tc.inLoc)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if err.Error() != NoticeIdentityRequired {
					t.Errorf("notice = %q, want %q", err.Error(), NoticeIdentityRequired)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id.Name != tc.wantName || id.Location != tc.wantLoc {
				t.Errorf("identity = %+v, want {%s %s}", id, tc.wantName, tc.wantLoc)
			}
		})
	}
}

// =============================================================================
// READING TESTS
// =============================================================================

func validRaw() RawReading {
	return RawReading{
		Temperature: "38.5",
		Milk:        "20",
		Respiratory: "30",
		HeartRate:   "70",
		Walking:     "1",
		Breed:       "1",
		Faecal:      "1",
	}
}

func TestReading_Valid(t *testing.T) {
	reading, err := Reading(validRaw())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reading.Temperature != 38.5 {
		t.Errorf("Temperature = %v, want 38.5", reading.Temperature)
	}
	if reading.Milk != 20 {
		t.Errorf("Milk = %v, want 20", reading.Milk)
	}
	if reading.Breed != 1 || reading.Faecal != 1 {
		t.Errorf("Breed/Faecal = %d/%d, want 1/1", reading.Breed, reading.Faecal)
	}
}

func TestReading_TrimsInput(t *testing.T) {
	raw := validRaw()
	raw.Temperature = " 38.5 "
	raw.Breed = " 2 "
	reading, err := Reading(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reading.Temperature != 38.5 || reading.Breed != 2 {
		t.Errorf("got %+v, want trimmed values parsed", reading)
	}
}

func TestReading_Invalid(t *testing.T) {
	mutate := []struct {
		name string
		set  func(*RawReading)
	}{
		{name: "empty temperature", set: func(r *RawReading) { r.Temperature = "" }},
		{name: "non-numeric milk", set: func(r *RawReading) { r.Milk = "lots" }},
		{name: "non-numeric respiratory", set: func(r *RawReading) { r.Respiratory = "30x" }},
		{name: "empty heart rate", set: func(r *RawReading) { r.HeartRate = "" }},
		{name: "non-numeric walking", set: func(r *RawReading) { r.Walking = "-" }},
		{name: "float breed", set: func(r *RawReading) { r.Breed = "1.5" }},
		{name: "non-numeric faecal", set: func(r *RawReading) { r.Faecal = "soft" }},
		{name: "nan temperature", set: func(r *RawReading) { r.Temperature = "NaN" }},
		{name: "infinite walking", set: func(r *RawReading) { r.Walking = "+Inf" }},
	}

	for _, tc := range mutate {
		t.Run(tc.name, func(t *testing.T) {
			raw := validRaw()
			tc.set(&raw)
			if _, err := Reading(raw); err == nil {
				t.Fatal("expected error, got nil")
			} else if err.Error() != NoticeInvalidNumbers {
				t.Errorf("notice = %q, want %q", err.Error(), NoticeInvalidNumbers)
			}
		})
	}
}
