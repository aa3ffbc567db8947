package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"eagles_transportes/internal/domain/entities"
	"eagles_transportes/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FreightInput carries the editable fields of a freight.
// Status is optional on create (defaults to QUOTED) and on update (keeps the current one).
type FreightInput struct {
	ClientID     string
	Origin       string
	Destination  string
	PickupDate   time.Time
	DeliveryDate time.Time
	DriverAmount decimal.Decimal
	ClientAmount decimal.Decimal
	Status       string
	Observation  string
	CTENumber    string
}

// EvidenceFile is an uploaded delivery proof.
type EvidenceFile struct {
	Name string
	Data []byte
}

// IFreightUseCase is the freight lifecycle manager.
//
// Guarded operations (Accept, Reject, Deliver) go through the state machine.
// SetStatus and Update are raw overrides kept for manual corrections.

type IFreightUseCase interface {
	Create(ctx context.Context, in FreightInput) (entities.Freight, error)
	GetByID(ctx context.Context, id string) (entities.Freight, error)
	List(ctx context.Context, offset, limit int) ([]entities.Freight, error)
	AssignDriver(ctx context.Context, freightID, driverID string) (entities.Freight, error)
	Accept(ctx context.Context, id string) (entities.Freight, error)
	Reject(ctx context.Context, id, reason string) (entities.Freight, error)
	SetStatus(ctx context.Context, id, status string) (entities.Freight, error)
	Deliver(ctx context.Context, id string, files []EvidenceFile) (entities.Freight, error)
	Evidence(ctx context.Context, id string, index int) (EvidenceFile, error)
	Update(ctx context.Context, id string, in FreightInput) (entities.Freight, error)
	Delete(ctx context.Context, id string) error
}

type FreightUseCase struct {
	repo       interfaces.IFreightRepository
	clientRepo interfaces.IClientRepository
	driverRepo interfaces.IDriverRepository
	storage    interfaces.IFileStorage
	now        func() time.Time
}

var _ IFreightUseCase = (*FreightUseCase)(nil)

func NewFreightUseCase(repo interfaces.IFreightRepository, clientRepo interfaces.IClientRepository, driverRepo interfaces.IDriverRepository, storage interfaces.IFileStorage) *FreightUseCase {
	return &FreightUseCase{
		repo:       repo,
		clientRepo: clientRepo,
		driverRepo: driverRepo,
		storage:    storage,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *FreightUseCase) Create(ctx context.Context, in FreightInput) (entities.Freight, error) {
	in = normalizeFreightInput(in)
	if err := validateFreightInput(in); err != nil {
		return entities.Freight{}, err
	}
	if err := u.ensureClient(ctx, in.ClientID); err != nil {
		return entities.Freight{}, err
	}

	now := u.now()
	f := entities.Freight{
		ID:            uuid.NewString(),
		Status:        entities.FreightStatusQuoted,
		BillingStatus: entities.BillingStatusPending,
		CreatedAt:     now,
	}
	applyFreightInput(&f, in)
	if in.Status != "" {
		f.Status = entities.FreightStatus(in.Status)
	}
	f.UpdatedAt = now

	created, err := u.repo.Create(ctx, f)
	if err != nil {
		log.Printf("[freight][usecase] create failed client_id=%s err=%v", in.ClientID, err)
		return entities.Freight{}, err
	}
	log.Printf("[freight][usecase] created freight_id=%s client_id=%s status=%s", created.ID, created.ClientID, created.Status)
	return created, nil
}

func (u *FreightUseCase) GetByID(ctx context.Context, id string) (entities.Freight, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Freight{}, ErrInvalidFreightID
	}

	f, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Freight{}, err
	}
	if f.ID == "" {
		return entities.Freight{}, ErrFreightNotFound
	}
	return f, nil
}

func (u *FreightUseCase) List(ctx context.Context, offset, limit int) ([]entities.Freight, error) {
	offset, limit = pageBounds(offset, limit)
	return u.repo.Find(ctx, entities.FreightQuery{
		Order:  entities.FreightOrderCreatedAsc,
		Offset: offset,
		Limit:  limit,
	})
}

// AssignDriver links a driver without touching the status; the freight only
// becomes ASSIGNED when the driver accepts it.
func (u *FreightUseCase) AssignDriver(ctx context.Context, freightID, driverID string) (entities.Freight, error) {
	f, err := u.GetByID(ctx, freightID)
	if err != nil {
		return entities.Freight{}, err
	}

	driverID = strings.TrimSpace(driverID)
	if driverID == "" {
		return entities.Freight{}, ErrInvalidDriverID
	}
	d, err := u.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return entities.Freight{}, err
	}
	if d.ID == "" {
		return entities.Freight{}, ErrDriverNotFound
	}

	f.DriverID = d.ID
	f.UpdatedAt = u.now()
	log.Printf("[freight][usecase] assign driver freight_id=%s driver_id=%s", f.ID, d.ID)
	return u.save(ctx, f)
}

func (u *FreightUseCase) Accept(ctx context.Context, id string) (entities.Freight, error) {
	return u.transition(ctx, id, entities.GuardedTransition{Target: entities.FreightStatusAssigned})
}

func (u *FreightUseCase) Reject(ctx context.Context, id, reason string) (entities.Freight, error) {
	if strings.TrimSpace(reason) == "" {
		return entities.Freight{}, ErrMissingReason
	}
	return u.transition(ctx, id, entities.GuardedTransition{Target: entities.FreightStatusRejected, Reason: reason})
}

// SetStatus overwrites the status without consulting the state machine.
func (u *FreightUseCase) SetStatus(ctx context.Context, id, status string) (entities.Freight, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return entities.Freight{}, ErrInvalidStatus
	}
	return u.transition(ctx, id, entities.RawOverride{Status: status})
}

func (u *FreightUseCase) Deliver(ctx context.Context, id string, files []EvidenceFile) (entities.Freight, error) {
	if len(files) < entities.MinDeliveryEvidence {
		log.Printf("[freight][usecase] deliver rejected freight_id=%s files=%d", id, len(files))
		return entities.Freight{}, ErrInsufficientEvidence
	}

	f, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Freight{}, err
	}
	// Check before storing anything so a refused delivery leaves no orphan files.
	if !entities.CanTransition(f.Status, entities.FreightStatusDelivered) {
		return entities.Freight{}, fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, f.Status, entities.FreightStatusDelivered)
	}

	refs := make([]string, 0, len(files))
	for i, file := range files {
		name := path.Base(strings.TrimSpace(file.Name))
		if name == "" || name == "." || name == "/" {
			name = "proof"
		}
		// Uploads often share a name (image.jpg); the position keeps keys apart.
		name = fmt.Sprintf("%02d_%s", i+1, name)
		ref, err := u.storage.Save(ctx, file.Data, path.Join("delivery_proofs", f.ID, name))
		if err != nil {
			log.Printf("[freight][usecase] evidence save failed freight_id=%s file=%s err=%v", f.ID, name, err)
			return entities.Freight{}, err
		}
		refs = append(refs, ref)
	}

	if err := f.Apply(entities.GuardedTransition{Target: entities.FreightStatusDelivered, Evidence: refs}, u.now()); err != nil {
		return entities.Freight{}, mapTransitionError(err)
	}
	log.Printf("[freight][usecase] delivered freight_id=%s proofs=%d", f.ID, len(refs))
	return u.save(ctx, f)
}

// Evidence returns the index-th delivery proof (zero based) of a delivered freight.
func (u *FreightUseCase) Evidence(ctx context.Context, id string, index int) (EvidenceFile, error) {
	f, err := u.GetByID(ctx, id)
	if err != nil {
		return EvidenceFile{}, err
	}
	if index < 0 || index >= len(f.DeliveryEvidence) {
		return EvidenceFile{}, ErrEvidenceNotFound
	}
	ref := f.DeliveryEvidence[index]
	data, err := u.storage.Load(ctx, ref)
	if err != nil {
		log.Printf("[freight][usecase] evidence load failed freight_id=%s ref=%s err=%v", f.ID, ref, err)
		return EvidenceFile{}, err
	}
	return EvidenceFile{Name: path.Base(ref), Data: data}, nil
}

// Update replaces every editable field, status included, with no transition guard.
func (u *FreightUseCase) Update(ctx context.Context, id string, in FreightInput) (entities.Freight, error) {
	f, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Freight{}, err
	}

	in = normalizeFreightInput(in)
	if err := validateFreightInput(in); err != nil {
		return entities.Freight{}, err
	}
	if in.ClientID != f.ClientID {
		if err := u.ensureClient(ctx, in.ClientID); err != nil {
			return entities.Freight{}, err
		}
	}

	now := u.now()
	applyFreightInput(&f, in)
	if in.Status != "" {
		if err := f.Apply(entities.RawOverride{Status: in.Status}, now); err != nil {
			return entities.Freight{}, mapTransitionError(err)
		}
	}
	f.UpdatedAt = now
	log.Printf("[freight][usecase] update freight_id=%s status=%s", f.ID, f.Status)
	return u.save(ctx, f)
}

func (u *FreightUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidFreightID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrFreightNotFound
	}
	log.Printf("[freight][usecase] deleted freight_id=%s", id)
	return nil
}

func (u *FreightUseCase) transition(ctx context.Context, id string, cmd entities.StatusCommand) (entities.Freight, error) {
	f, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Freight{}, err
	}

	from := f.Status
	if err := f.Apply(cmd, u.now()); err != nil {
		log.Printf("[freight][usecase] transition refused freight_id=%s from=%s cmd=%T err=%v", f.ID, from, cmd, err)
		return entities.Freight{}, mapTransitionError(err)
	}
	log.Printf("[freight][usecase] transition freight_id=%s from=%s to=%s cmd=%T", f.ID, from, f.Status, cmd)
	return u.save(ctx, f)
}

func (u *FreightUseCase) save(ctx context.Context, f entities.Freight) (entities.Freight, error) {
	updated, err := u.repo.Update(ctx, f)
	if err != nil {
		log.Printf("[freight][usecase] update failed freight_id=%s err=%v", f.ID, err)
		return entities.Freight{}, err
	}
	if updated.ID == "" {
		return entities.Freight{}, ErrFreightNotFound
	}
	return updated, nil
}

func (u *FreightUseCase) ensureClient(ctx context.Context, clientID string) error {
	if clientID == "" {
		return ErrInvalidClientID
	}
	c, err := u.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrClientNotFound
	}
	return nil
}

func mapTransitionError(err error) error {
	switch {
	case errors.Is(err, entities.ErrRejectionReason):
		return ErrMissingReason
	case errors.Is(err, entities.ErrDeliveryEvidence):
		return ErrInsufficientEvidence
	case errors.Is(err, entities.ErrBlankStatus):
		return ErrInvalidStatus
	case errors.Is(err, entities.ErrTransitionNotAllowed), errors.Is(err, entities.ErrUnsupportedTarget):
		return fmt.Errorf("%w: %v", ErrTransitionNotAllowed, err)
	default:
		return err
	}
}

func normalizeFreightInput(in FreightInput) FreightInput {
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.Origin = strings.TrimSpace(in.Origin)
	in.Destination = strings.TrimSpace(in.Destination)
	in.Status = strings.TrimSpace(in.Status)
	in.Observation = strings.TrimSpace(in.Observation)
	in.CTENumber = strings.TrimSpace(in.CTENumber)
	return in
}

func validateFreightInput(in FreightInput) error {
	if in.ClientID == "" {
		return ErrInvalidClientID
	}
	if in.Origin == "" || in.Destination == "" {
		return ErrInvalidRoute
	}
	if in.PickupDate.IsZero() || in.DeliveryDate.IsZero() {
		return ErrInvalidSchedule
	}
	if in.DriverAmount.IsNegative() || in.ClientAmount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

func applyFreightInput(f *entities.Freight, in FreightInput) {
	f.ClientID = in.ClientID
	f.Origin = in.Origin
	f.Destination = in.Destination
	f.PickupDate = in.PickupDate
	f.DeliveryDate = in.DeliveryDate
	f.DriverAmount = in.DriverAmount
	f.ClientAmount = in.ClientAmount
	f.Observation = in.Observation
	f.CTENumber = in.CTENumber
}
