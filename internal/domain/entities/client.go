package entities

import "time"

// Address is the structured postal address of a client.
type Address struct {
	PostalCode   string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// Client is the shipper being billed for freights.
//
// TaxID holds only digits: 11 for an individual (CPF), 14 for an organization (CNPJ).
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"cnpj"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone"`
	Address   Address   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsOrganization reports whether the client is registered with a CNPJ.
func (c Client) IsOrganization() bool {
	return len(c.TaxID) == cnpjLength
}
