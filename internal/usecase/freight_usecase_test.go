package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"eagles_transportes/internal/domain/entities"
	"eagles_transportes/internal/infrastructure/storage"
	mock_interfaces "eagles_transportes/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

type freightMocks struct {
	repo    *mock_interfaces.MockIFreightRepository
	clients *mock_interfaces.MockIClientRepository
	drivers *mock_interfaces.MockIDriverRepository
	storage *mock_interfaces.MockIFileStorage
}

func newFreightUseCaseForTest(ctrl *gomock.Controller) (*FreightUseCase, freightMocks) {
	m := freightMocks{
		repo:    mock_interfaces.NewMockIFreightRepository(ctrl),
		clients: mock_interfaces.NewMockIClientRepository(ctrl),
		drivers: mock_interfaces.NewMockIDriverRepository(ctrl),
		storage: mock_interfaces.NewMockIFileStorage(ctrl),
	}
	uc := NewFreightUseCase(m.repo, m.clients, m.drivers, m.storage)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func echoFreight(_ context.Context, f entities.Freight) (entities.Freight, error) {
	return f, nil
}

func validFreightInput() FreightInput {
	return FreightInput{
		ClientID:     "cli-1",
		Origin:       "São Paulo - SP",
		Destination:  "Curitiba, PR",
		PickupDate:   fixedNow.Add(24 * time.Hour),
		DeliveryDate: fixedNow.Add(72 * time.Hour),
		DriverAmount: decimal.NewFromInt(600),
		ClientAmount: decimal.NewFromInt(1000),
	}
}

func TestFreightUseCase_Create(t *testing.T) {
	t.Run("defaults to quoted and pending billing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCaseForTest(ctrl)

		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoFreight)

		f, err := uc.Create(context.Background(), validFreightInput())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if f.ID == "" {
			t.Fatalf("expected generated id")
		}
		if f.Status != entities.FreightStatusQuoted || f.BillingStatus != entities.BillingStatusPending {
			t.Fatalf("unexpected statuses %s/%s", f.Status, f.BillingStatus)
		}
		if !f.CreatedAt.Equal(fixedNow) {
			t.Fatalf("expected created_at %v, got %v", fixedNow, f.CreatedAt)
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCaseForTest(ctrl)

		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{}, nil)

		_, err := uc.Create(context.Background(), validFreightInput())
		if !errors.Is(err, ErrClientNotFound) || !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		cases := map[string]func(*FreightInput){
			"blank origin":    func(in *FreightInput) { in.Origin = "  " },
			"missing pickup":  func(in *FreightInput) { in.PickupDate = time.Time{} },
			"negative amount": func(in *FreightInput) { in.DriverAmount = decimal.NewFromInt(-1) },
			"missing client":  func(in *FreightInput) { in.ClientID = "" },
		}
		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc, _ := newFreightUseCaseForTest(ctrl)

				in := validFreightInput()
				mutate(&in)
				_, err := uc.Create(context.Background(), in)
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
			})
		}
	})
}

func TestFreightUseCase_AcceptAndReject(t *testing.T) {
	t.Run("accept stamps accepted_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "fr-1").Return(entities.Freight{ID: "fr-1", Status: entities.FreightStatusRecruiting}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoFreight)

		f, err := uc.Accept(context.Background(), "fr-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if f.Status != entities.FreightStatusAssigned || f.AcceptedAt == nil || !f.AcceptedAt.Equal(fixedNow) {
			t.Fatalf("unexpected freight after accept: %+v", f)
		}
	})

	t.Run("accept from delivered is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "fr-1").Return(entities.Freight{ID: "fr-1", Status: entities.FreightStatusDelivered}, nil)

		_, err := uc.Accept(context.Background(), "fr-1")
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("accept after rejection and reassignment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "fr-1").Return(entities.Freight{
			ID:              "fr-1",
			DriverID:        "drv-2",
			Status:          entities.FreightStatusRejected,
			RejectionReason: "refused by drv-1",
		}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoFreight)

		f, err := uc.Accept(context.Background(), "fr-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if f.Status != entities.FreightStatusAssigned || f.RejectionReason != "" || f.AcceptedAt == nil {
			t.Fatalf("unexpected freight after accept: %+v", f)
		}
	})

	t.Run("reject requires a reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newFreightUseCaseForTest(ctrl)

		_, err := uc.Reject(context.Background(), "fr-1", "   ")
		if !errors.Is(err, ErrMissingReason) {
			t.Fatalf("expected ErrMissingReason, got %v", err)
		}
	})

	t.Run("reject stores the reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "fr-1").Return(entities.Freight{ID: "fr-1", Status: entities.FreightStatusQuoted}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoFreight)

		f, err := uc.Reject(context.Background(), "fr-1", "price too low")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if f.Status != entities.FreightStatusRejected || f.RejectionReason != "price too low" {
			t.Fatalf("unexpected freight after reject: %+v", f)
		}
	})

	t.Run("missing freight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "fr-x").Return(entities.Freight{}, nil)

		_, err := uc.Accept(context.Background(), "fr-x")
		if !errors.Is(err, ErrFreightNotFound) {
			t.Fatalf("expected ErrFreightNotFound, got %v", err)
		}
	})
}

func TestFreightUseCase_Deliver(t *testing.T) {
	files := func(n int) []EvidenceFile {
		out := make([]EvidenceFile, n)
		for i := range out {
			out[i] = EvidenceFile{Name: "../photo" + string(rune('a'+i)) + ".jpg", Data: []byte("img")}
		}
		return out
	}

	for _, n := range []int{0, 1, 2} {
		ctrl := gomock.NewController(t)
		uc, _ := newFreightUseCaseForTest(ctrl)

		_, err := uc.Deliver(context.Background(), "fr-1", files(n))
		if !errors.Is(err, ErrInsufficientEvidence) {
			t.Fatalf("expected ErrInsufficientEvidence for %d files, got %v", n, err)
		}
		ctrl.Finish()
	}

	t.Run("stores proofs and delivers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "fr-1").Return(entities.Freight{ID: "fr-1", Status: entities.FreightStatusInTransit}, nil)
		m.storage.EXPECT().Save(gomock.Any(), []byte("img"), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ []byte, p string) (string, error) {
				if !strings.HasPrefix(p, "delivery_proofs/fr-1/") || strings.Contains(p, "..") {
					t.Fatalf("unexpected storage path %q", p)
				}
				return "bolt://evidence/" + p, nil
			}).Times(3)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoFreight)

		f, err := uc.Deliver(context.Background(), "fr-1", files(3))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if f.Status != entities.FreightStatusDelivered || f.DeliveredAt == nil || len(f.DeliveryEvidence) != 3 {
			t.Fatalf("unexpected freight after deliver: %+v", f)
		}
	})

	t.Run("rejected freight stores nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "fr-1").Return(entities.Freight{ID: "fr-1", Status: entities.FreightStatusRejected}, nil)

		_, err := uc.Deliver(context.Background(), "fr-1", files(3))
		if !errors.Is(err, ErrTransitionNotAllowed) {
			t.Fatalf("expected ErrTransitionNotAllowed, got %v", err)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "fr-1").Return(entities.Freight{ID: "fr-1", Status: entities.FreightStatusLoading}, nil)
		m.storage.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("disk full"))

		_, err := uc.Deliver(context.Background(), "fr-1", files(3))
		if err == nil || err.Error() != "disk full" {
			t.Fatalf("expected disk full, got %v", err)
		}
	})
}

func TestFreightUseCase_DeliverKeepsSameNamedProofs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	files, err := storage.NewBoltFileStorage(filepath.Join(t.TempDir(), "evidence.db"))
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	defer files.Close()

	repo := mock_interfaces.NewMockIFreightRepository(ctrl)
	uc := NewFreightUseCase(repo, mock_interfaces.NewMockIClientRepository(ctrl), mock_interfaces.NewMockIDriverRepository(ctrl), files)
	uc.now = func() time.Time { return fixedNow }

	stored := entities.Freight{ID: "fr-1", Status: entities.FreightStatusInTransit}
	repo.EXPECT().GetByID(gomock.Any(), "fr-1").DoAndReturn(func(context.Context, string) (entities.Freight, error) {
		return stored, nil
	}).AnyTimes()
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f entities.Freight) (entities.Freight, error) {
		stored = f
		return f, nil
	})

	proofs := []string{"front", "side", "receipt"}
	in := make([]EvidenceFile, len(proofs))
	for i, p := range proofs {
		in[i] = EvidenceFile{Name: "image.jpg", Data: []byte(p)}
	}

	f, err := uc.Deliver(context.Background(), "fr-1", in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	seen := map[string]bool{}
	for _, ref := range f.DeliveryEvidence {
		if seen[ref] {
			t.Fatalf("duplicate evidence ref %q in %v", ref, f.DeliveryEvidence)
		}
		seen[ref] = true
	}

	for i, want := range proofs {
		got, err := uc.Evidence(context.Background(), "fr-1", i)
		if err != nil {
			t.Fatalf("evidence %d: unexpected err: %v", i, err)
		}
		if string(got.Data) != want {
			t.Fatalf("evidence %d: got %q, want %q", i, got.Data, want)
		}
	}
}

func TestFreightUseCase_SetStatusAndUpdate(t *testing.T) {
	t.Run("raw override bypasses the guard and clears delivery data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCaseForTest(ctrl)

		delivered := fixedNow.Add(-time.Hour)
		m.repo.EXPECT().GetByID(gomock.Any(), "fr-1").Return(entities.Freight{
			ID:               "fr-1",
			Status:           entities.FreightStatusDelivered,
			DeliveredAt:      &delivered,
			DeliveryEvidence: []string{"a", "b", "c"},
		}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoFreight)

		f, err := uc.SetStatus(context.Background(), "fr-1", "IN_TRANSIT")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if f.Status != entities.FreightStatusInTransit || f.DeliveredAt != nil || f.DeliveryEvidence != nil {
			t.Fatalf("unexpected freight after override: %+v", f)
		}
	})

	t.Run("empty status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newFreightUseCaseForTest(ctrl)

		_, err := uc.SetStatus(context.Background(), "fr-1", "")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("update applies status override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "fr-1").Return(entities.Freight{ID: "fr-1", ClientID: "cli-1", Status: entities.FreightStatusLoading}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoFreight)

		in := validFreightInput()
		in.Status = "IN_TRANSIT"
		f, err := uc.Update(context.Background(), "fr-1", in)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if f.Status != entities.FreightStatusInTransit || !f.UpdatedAt.Equal(fixedNow) {
			t.Fatalf("unexpected freight after update: %+v", f)
		}
	})

	t.Run("update keeps status when none given", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "fr-1").Return(entities.Freight{ID: "fr-1", ClientID: "cli-1", Status: entities.FreightStatusLoading}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoFreight)

		in := validFreightInput()
		in.Observation = "fragile"
		f, err := uc.Update(context.Background(), "fr-1", in)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if f.Status != entities.FreightStatusLoading || f.Observation != "fragile" {
			t.Fatalf("unexpected freight after update: %+v", f)
		}
	})
}

func TestFreightUseCase_AssignDriverAndDelete(t *testing.T) {
	t.Run("assign keeps status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "fr-1").Return(entities.Freight{ID: "fr-1", Status: entities.FreightStatusRecruiting}, nil)
		m.drivers.EXPECT().GetByID(gomock.Any(), "drv-1").Return(entities.Driver{ID: "drv-1"}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoFreight)

		f, err := uc.AssignDriver(context.Background(), "fr-1", "drv-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if f.DriverID != "drv-1" || f.Status != entities.FreightStatusRecruiting {
			t.Fatalf("unexpected freight after assign: %+v", f)
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "fr-1").Return(entities.Freight{ID: "fr-1"}, nil)
		m.drivers.EXPECT().GetByID(gomock.Any(), "drv-x").Return(entities.Driver{}, nil)

		_, err := uc.AssignDriver(context.Background(), "fr-1", "drv-x")
		if !errors.Is(err, ErrDriverNotFound) {
			t.Fatalf("expected ErrDriverNotFound, got %v", err)
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCaseForTest(ctrl)

		m.repo.EXPECT().Delete(gomock.Any(), "fr-1").Return(false, nil)

		if err := uc.Delete(context.Background(), "fr-1"); !errors.Is(err, ErrFreightNotFound) {
			t.Fatalf("expected ErrFreightNotFound, got %v", err)
		}
	})
}

func TestFreightUseCase_Evidence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newFreightUseCaseForTest(ctrl)

	f := entities.Freight{ID: "fr-1", Status: entities.FreightStatusDelivered, DeliveryEvidence: []string{"bolt://evidence/delivery_proofs/fr-1/a.jpg"}}
	m.repo.EXPECT().GetByID(gomock.Any(), "fr-1").Return(f, nil).Times(2)
	m.storage.EXPECT().Load(gomock.Any(), "bolt://evidence/delivery_proofs/fr-1/a.jpg").Return([]byte("img"), nil)

	file, err := uc.Evidence(context.Background(), "fr-1", 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if file.Name != "a.jpg" || string(file.Data) != "img" {
		t.Fatalf("unexpected file: %+v", file)
	}

	if _, err := uc.Evidence(context.Background(), "fr-1", 3); !errors.Is(err, ErrEvidenceNotFound) {
		t.Fatalf("expected ErrEvidenceNotFound, got %v", err)
	}
}
