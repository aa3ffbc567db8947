package request

import (
	"eagles_transportes/internal/domain/entities"
	"eagles_transportes/internal/usecase"
)

type AddressRequest struct {
	PostalCode   string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

type ClientRequest struct {
	Name    string         `json:"name" binding:"required"`
	TaxID   string         `json:"cnpj" binding:"required"`
	Email   string         `json:"email"`
	Phone   string         `json:"phone"`
	Address AddressRequest `json:"address"`
}

func (r ClientRequest) ToInput() usecase.ClientInput {
	return usecase.ClientInput{
		Name:  r.Name,
		TaxID: r.TaxID,
		Email: r.Email,
		Phone: r.Phone,
		Address: entities.Address{
			PostalCode:   r.Address.PostalCode,
			Street:       r.Address.Street,
			Number:       r.Address.Number,
			Complement:   r.Address.Complement,
			Neighborhood: r.Address.Neighborhood,
			City:         r.Address.City,
			State:        r.Address.State,
		},
	}
}
