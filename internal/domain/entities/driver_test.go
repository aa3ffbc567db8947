package entities

import "testing"

func TestCanonicalVehicleType(t *testing.T) {
	cases := map[string]string{
		"carreta ls":  "CARRETA LS",
		" Carreta-LS": "CARRETA LS",
		"truck":       "TRUCK",
		"3/4":         "3/4",
		"Guincho":     "Guincho",
		"   ":         "",
	}
	for in, want := range cases {
		if got := CanonicalVehicleType(in); got != want {
			t.Fatalf("CanonicalVehicleType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDriverStatus_Valid(t *testing.T) {
	if !DriverStatusPending.Valid() {
		t.Fatalf("PENDING must be valid")
	}
	if DriverStatus("ON_LEAVE").Valid() {
		t.Fatalf("unknown status must be invalid")
	}
}

func TestFreightStatus_IsActive(t *testing.T) {
	for _, s := range []FreightStatus{FreightStatusRecruiting, FreightStatusAssigned, FreightStatusLoading, FreightStatusInTransit} {
		if !s.IsActive() {
			t.Fatalf("%s should be active", s)
		}
	}
	for _, s := range []FreightStatus{FreightStatusQuoted, FreightStatusDelivered, FreightStatusRejected} {
		if s.IsActive() {
			t.Fatalf("%s should not be active", s)
		}
	}
}
