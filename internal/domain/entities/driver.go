package entities

import "strings"

type DriverStatus string

const (
	DriverStatusActive   DriverStatus = "ACTIVE"
	DriverStatusInactive DriverStatus = "INACTIVE"
	DriverStatusPending  DriverStatus = "PENDING"
)

// Valid reports whether s is a known driver status.
func (s DriverStatus) Valid() bool {
	switch s {
	case DriverStatusActive, DriverStatusInactive, DriverStatusPending:
		return true
	}
	return false
}

// DriverDocuments holds stored-file references of the driver paperwork.
type DriverDocuments struct {
	CNH          string `json:"cnh_path,omitempty"`
	AddressProof string `json:"address_proof_path,omitempty"`
	CRLV         string `json:"crlv_path,omitempty"`
}

type Driver struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Phone        string          `json:"phone"`
	TaxID        string          `json:"cpf"`
	ANTT         string          `json:"antt,omitempty"`
	VehiclePlate string          `json:"vehicle_plate,omitempty"`
	VehicleType  string          `json:"vehicle_type,omitempty"`
	Status       DriverStatus    `json:"status"`
	PixKey       string          `json:"pix_key,omitempty"`
	Documents    DriverDocuments `json:"documents"`
}

// VehicleCatalog is the fixed list of vehicle types operated by the company.
var VehicleCatalog = []string{
	"FIORINO",
	"VAN",
	"VUC",
	"3/4",
	"TOCO",
	"TRUCK",
	"CARRETA",
	"CARRETA LS",
	"BITREM",
	"RODOTREM",
}

// CanonicalVehicleType matches a free-form vehicle type against VehicleCatalog,
// ignoring case, spaces, dashes and dots. Unknown types are returned trimmed.
func CanonicalVehicleType(raw string) string {
	trimmed := strings.TrimSpace(raw)
	key := vehicleKey(trimmed)
	if key == "" {
		return ""
	}
	for _, v := range VehicleCatalog {
		if vehicleKey(v) == key {
			return v
		}
	}
	return trimmed
}

func vehicleKey(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '_':
			return -1
		}
		return r
	}, strings.ToUpper(s))
}
