package request

import "eagles_transportes/internal/usecase"

type DriverRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	TaxID        string `json:"cpf" binding:"required"`
	ANTT         string `json:"antt"`
	VehiclePlate string `json:"vehicle_plate"`
	VehicleType  string `json:"vehicle_type"`
	Status       string `json:"status"`
	PixKey       string `json:"pix_key"`
}

func (r DriverRequest) ToInput() usecase.DriverInput {
	return usecase.DriverInput{
		Name:         r.Name,
		Phone:        r.Phone,
		TaxID:        r.TaxID,
		ANTT:         r.ANTT,
		VehiclePlate: r.VehiclePlate,
		VehicleType:  r.VehicleType,
		Status:       r.Status,
		PixKey:       r.PixKey,
	}
}
