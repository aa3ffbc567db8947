package response

import (
	"time"

	"eagles_transportes/internal/domain/entities"
)

type AddressResponse struct {
	PostalCode   string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

type ClientResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	TaxID     string          `json:"cnpj"`
	Email     string          `json:"email,omitempty"`
	Phone     string          `json:"phone"`
	Address   AddressResponse `json:"address"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:    c.ID,
		Name:  c.Name,
		TaxID: c.TaxID,
		Email: c.Email,
		Phone: c.Phone,
		Address: AddressResponse{
			PostalCode:   c.Address.PostalCode,
			Street:       c.Address.Street,
			Number:       c.Address.Number,
			Complement:   c.Address.Complement,
			Neighborhood: c.Address.Neighborhood,
			City:         c.Address.City,
			State:        c.Address.State,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromClients(list []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromClient(c))
	}
	return out
}
