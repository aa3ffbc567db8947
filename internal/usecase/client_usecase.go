package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"eagles_transportes/internal/domain/entities"
	"eagles_transportes/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const defaultPageSize = 100

// ClientInput carries the editable fields of a client. TaxID may be formatted.
type ClientInput struct {
	Name    string
	TaxID   string
	Email   string
	Phone   string
	Address entities.Address
}

type IClientUseCase interface {
	Create(ctx context.Context, in ClientInput) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context, offset, limit int) ([]entities.Client, error)
	Update(ctx context.Context, id string, in ClientInput) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
	now  func() time.Time
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *ClientUseCase) Create(ctx context.Context, in ClientInput) (entities.Client, error) {
	in, err := normalizeClientInput(in)
	if err != nil {
		return entities.Client{}, err
	}

	// Enforce: one client per tax id.
	if existing, err := u.repo.GetByTaxID(ctx, in.TaxID); err != nil {
		return entities.Client{}, err
	} else if existing.ID != "" {
		return entities.Client{}, ErrClientTaxIDExists
	}

	now := u.now()
	c := entities.Client{
		ID:        uuid.NewString(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Printf("[client][usecase] create failed err=%v", err)
		return entities.Client{}, err
	}
	log.Printf("[client][usecase] created client_id=%s", created.ID)
	return created, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context, offset, limit int) ([]entities.Client, error) {
	offset, limit = pageBounds(offset, limit)
	return u.repo.List(ctx, offset, limit)
}

func (u *ClientUseCase) Update(ctx context.Context, id string, in ClientInput) (entities.Client, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	in, err = normalizeClientInput(in)
	if err != nil {
		return entities.Client{}, err
	}
	if in.TaxID != current.TaxID {
		if existing, err := u.repo.GetByTaxID(ctx, in.TaxID); err != nil {
			return entities.Client{}, err
		} else if existing.ID != "" && existing.ID != current.ID {
			return entities.Client{}, ErrClientTaxIDExists
		}
	}

	current.Name = in.Name
	current.TaxID = in.TaxID
	current.Email = in.Email
	current.Phone = in.Phone
	current.Address = in.Address
	current.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return updated, nil
}

func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrClientNotFound
	}
	log.Printf("[client][usecase] deleted client_id=%s", id)
	return nil
}

func normalizeClientInput(in ClientInput) (ClientInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address.State = strings.ToUpper(strings.TrimSpace(in.Address.State))
	in.Address.PostalCode = entities.NormalizeTaxID(in.Address.PostalCode)
	if in.Name == "" {
		return in, ErrInvalidName
	}
	taxID, err := entities.ValidateTaxID(in.TaxID)
	if err != nil {
		return in, taxIDError(err)
	}
	in.TaxID = taxID
	return in, nil
}

func taxIDError(err error) error {
	if errors.Is(err, entities.ErrTaxIDLength) || errors.Is(err, entities.ErrTaxIDChecksum) {
		return ErrInvalidTaxID
	}
	return err
}

func pageBounds(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	return offset, limit
}
