package response

import "eagles_transportes/internal/domain/entities"

type DriverDocumentsResponse struct {
	CNH          string `json:"cnh_path,omitempty"`
	AddressProof string `json:"address_proof_path,omitempty"`
	CRLV         string `json:"crlv_path,omitempty"`
}

type DriverResponse struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Phone        string                  `json:"phone"`
	TaxID        string                  `json:"cpf"`
	ANTT         string                  `json:"antt,omitempty"`
	VehiclePlate string                  `json:"vehicle_plate,omitempty"`
	VehicleType  string                  `json:"vehicle_type,omitempty"`
	Status       string                  `json:"status"`
	PixKey       string                  `json:"pix_key,omitempty"`
	Documents    DriverDocumentsResponse `json:"documents"`
}

func FromDriver(d entities.Driver) DriverResponse {
	return DriverResponse{
		ID:           d.ID,
		Name:         d.Name,
		Phone:        d.Phone,
		TaxID:        d.TaxID,
		ANTT:         d.ANTT,
		VehiclePlate: d.VehiclePlate,
		VehicleType:  d.VehicleType,
		Status:       string(d.Status),
		PixKey:       d.PixKey,
		Documents: DriverDocumentsResponse{
			CNH:          d.Documents.CNH,
			AddressProof: d.Documents.AddressProof,
			CRLV:         d.Documents.CRLV,
		},
	}
}

func FromDrivers(list []entities.Driver) []DriverResponse {
	out := make([]DriverResponse, 0, len(list))
	for _, d := range list {
		out = append(out, FromDriver(d))
	}
	return out
}

type DriverStatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
