package request

import (
	"github.com/shopspring/decimal"

	"eagles_transportes/internal/usecase"
)

type TransactionRequest struct {
	Type             string          `json:"type" binding:"required"`
	Category         string          `json:"category"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	Date             string          `json:"date"`
	Status           string          `json:"status"`
	RelatedFreightID string          `json:"related_freight_id"`
}

// ToInput leaves Date zero when omitted; the use case stamps the current time.
func (r TransactionRequest) ToInput() (usecase.TransactionInput, error) {
	date, err := parseOptionalDate(r.Date)
	if err != nil {
		return usecase.TransactionInput{}, err
	}
	return usecase.TransactionInput{
		Type:             r.Type,
		Category:         r.Category,
		Description:      r.Description,
		Amount:           r.Amount,
		Date:             date,
		Status:           r.Status,
		RelatedFreightID: r.RelatedFreightID,
	}, nil
}

// TransactionPatchRequest only touches the fields present in the body.
type TransactionPatchRequest struct {
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *string          `json:"date"`
	Status      *string          `json:"status"`
}

func (r TransactionPatchRequest) ToPatch() (usecase.TransactionPatch, error) {
	patch := usecase.TransactionPatch{
		Category:    r.Category,
		Description: r.Description,
		Amount:      r.Amount,
		Status:      r.Status,
	}
	if r.Date != nil {
		d, err := ParseDate(*r.Date)
		if err != nil {
			return usecase.TransactionPatch{}, err
		}
		patch.Date = &d
	}
	return patch, nil
}
