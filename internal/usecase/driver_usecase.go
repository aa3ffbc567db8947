package usecase

import (
	"context"
	"fmt"
	"log"
	"path"
	"strings"

	"eagles_transportes/internal/domain/entities"
	"eagles_transportes/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Driver document kinds accepted by UploadDocument.
const (
	DocumentCNH          = "cnh"
	DocumentAddressProof = "address_proof"
	DocumentCRLV         = "crlv"
)

// DriverInput carries the editable fields of a driver. An empty Status means PENDING.
type DriverInput struct {
	Name         string
	Phone        string
	TaxID        string
	ANTT         string
	VehiclePlate string
	VehicleType  string
	Status       string
	PixKey       string
}

type IDriverUseCase interface {
	Create(ctx context.Context, in DriverInput) (entities.Driver, error)
	GetByID(ctx context.Context, id string) (entities.Driver, error)
	List(ctx context.Context, offset, limit int) ([]entities.Driver, error)
	Update(ctx context.Context, id string, in DriverInput) (entities.Driver, error)
	UpdateStatus(ctx context.Context, id, status string) (entities.Driver, error)
	UploadDocument(ctx context.Context, id, kind string, file EvidenceFile) (entities.Driver, error)
	Delete(ctx context.Context, id string) error
}

type DriverUseCase struct {
	repo    interfaces.IDriverRepository
	storage interfaces.IFileStorage
}

var _ IDriverUseCase = (*DriverUseCase)(nil)

func NewDriverUseCase(repo interfaces.IDriverRepository, storage interfaces.IFileStorage) *DriverUseCase {
	return &DriverUseCase{repo: repo, storage: storage}
}

func (u *DriverUseCase) Create(ctx context.Context, in DriverInput) (entities.Driver, error) {
	in, err := normalizeDriverInput(in)
	if err != nil {
		return entities.Driver{}, err
	}
	if existing, err := u.repo.GetByTaxID(ctx, in.TaxID); err != nil {
		return entities.Driver{}, err
	} else if existing.ID != "" {
		return entities.Driver{}, ErrDriverTaxIDExists
	}

	d := entities.Driver{ID: uuid.NewString()}
	applyDriverInput(&d, in)
	created, err := u.repo.Create(ctx, d)
	if err != nil {
		log.Printf("[driver][usecase] create failed err=%v", err)
		return entities.Driver{}, err
	}
	log.Printf("[driver][usecase] created driver_id=%s vehicle_type=%s", created.ID, created.VehicleType)
	return created, nil
}

func (u *DriverUseCase) GetByID(ctx context.Context, id string) (entities.Driver, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Driver{}, ErrInvalidDriverID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Driver{}, err
	}
	if d.ID == "" {
		return entities.Driver{}, ErrDriverNotFound
	}
	return d, nil
}

func (u *DriverUseCase) List(ctx context.Context, offset, limit int) ([]entities.Driver, error) {
	offset, limit = pageBounds(offset, limit)
	return u.repo.List(ctx, offset, limit)
}

func (u *DriverUseCase) Update(ctx context.Context, id string, in DriverInput) (entities.Driver, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Driver{}, err
	}
	in, err = normalizeDriverInput(in)
	if err != nil {
		return entities.Driver{}, err
	}
	if in.TaxID != current.TaxID {
		if existing, err := u.repo.GetByTaxID(ctx, in.TaxID); err != nil {
			return entities.Driver{}, err
		} else if existing.ID != "" && existing.ID != current.ID {
			return entities.Driver{}, ErrDriverTaxIDExists
		}
	}
	applyDriverInput(&current, in)
	return u.save(ctx, current)
}

func (u *DriverUseCase) UpdateStatus(ctx context.Context, id, status string) (entities.Driver, error) {
	s := entities.DriverStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !s.Valid() {
		return entities.Driver{}, ErrInvalidDriverStatus
	}
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Driver{}, err
	}
	log.Printf("[driver][usecase] status driver_id=%s from=%s to=%s", d.ID, d.Status, s)
	d.Status = s
	return u.save(ctx, d)
}

// UploadDocument stores one of the driver's registration documents and keeps
// its reference on the driver.
func (u *DriverUseCase) UploadDocument(ctx context.Context, id, kind string, file EvidenceFile) (entities.Driver, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	switch kind {
	case DocumentCNH, DocumentAddressProof, DocumentCRLV:
	default:
		return entities.Driver{}, ErrInvalidDocumentKind
	}
	if len(file.Data) == 0 {
		return entities.Driver{}, ErrEmptyFile
	}
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Driver{}, err
	}

	name := path.Base(strings.TrimSpace(file.Name))
	if name == "" || name == "." || name == "/" {
		name = "document"
	}
	ref, err := u.storage.Save(ctx, file.Data, path.Join("driver_documents", d.ID, fmt.Sprintf("%s_%s", kind, name)))
	if err != nil {
		log.Printf("[driver][usecase] document save failed driver_id=%s kind=%s err=%v", d.ID, kind, err)
		return entities.Driver{}, err
	}

	switch kind {
	case DocumentCNH:
		d.Documents.CNH = ref
	case DocumentAddressProof:
		d.Documents.AddressProof = ref
	case DocumentCRLV:
		d.Documents.CRLV = ref
	}
	return u.save(ctx, d)
}

func (u *DriverUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidDriverID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDriverNotFound
	}
	log.Printf("[driver][usecase] deleted driver_id=%s", id)
	return nil
}

func (u *DriverUseCase) save(ctx context.Context, d entities.Driver) (entities.Driver, error) {
	updated, err := u.repo.Update(ctx, d)
	if err != nil {
		log.Printf("[driver][usecase] update failed driver_id=%s err=%v", d.ID, err)
		return entities.Driver{}, err
	}
	if updated.ID == "" {
		return entities.Driver{}, ErrDriverNotFound
	}
	return updated, nil
}

func normalizeDriverInput(in DriverInput) (DriverInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.ANTT = strings.TrimSpace(in.ANTT)
	in.VehiclePlate = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(in.VehiclePlate), "-", ""))
	in.VehicleType = entities.CanonicalVehicleType(in.VehicleType)
	in.PixKey = strings.TrimSpace(in.PixKey)
	in.Status = strings.ToUpper(strings.TrimSpace(in.Status))
	if in.Name == "" {
		return in, ErrInvalidName
	}
	if in.Status == "" {
		in.Status = string(entities.DriverStatusPending)
	}
	if !entities.DriverStatus(in.Status).Valid() {
		return in, ErrInvalidDriverStatus
	}
	taxID, err := entities.ValidateTaxID(in.TaxID)
	if err != nil {
		return in, taxIDError(err)
	}
	in.TaxID = taxID
	return in, nil
}

func applyDriverInput(d *entities.Driver, in DriverInput) {
	d.Name = in.Name
	d.Phone = in.Phone
	d.TaxID = in.TaxID
	d.ANTT = in.ANTT
	d.VehiclePlate = in.VehiclePlate
	d.VehicleType = in.VehicleType
	d.Status = entities.DriverStatus(in.Status)
	d.PixKey = in.PixKey
}
