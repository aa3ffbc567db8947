package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"eagles_transportes/internal/domain/entities"
)

func sampleFreight(id string, status entities.FreightStatus, pickup time.Time) entities.Freight {
	return entities.Freight{
		ID:            id,
		ClientID:      "c-1",
		Origin:        "Campinas/SP",
		Destination:   "Curitiba/PR",
		PickupDate:    pickup,
		DeliveryDate:  pickup.Add(48 * time.Hour),
		DriverAmount:  decimal.RequireFromString("1800.50"),
		ClientAmount:  decimal.RequireFromString("2500.00"),
		Status:        status,
		BillingStatus: entities.BillingStatusPending,
		CreatedAt:     pickup,
		UpdatedAt:     pickup,
	}
}

func TestFreightItem_RoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	f := sampleFreight("f-1", entities.FreightStatusDelivered, now)
	f.DeliveredAt = &now
	f.DeliveryEvidence = []string{"bolt://evidence/a.jpg"}
	f.BoletoID = "123"
	due := now.AddDate(0, 0, 3)
	f.BoletoDueDate = &due

	got := fromFreightItem(toFreightItem(f))

	if !got.ClientAmount.Equal(f.ClientAmount) || !got.DriverAmount.Equal(f.DriverAmount) {
		t.Fatalf("amounts not preserved: %v %v", got.ClientAmount, got.DriverAmount)
	}
	if got.DeliveredAt == nil || !got.DeliveredAt.Equal(now) {
		t.Fatalf("delivered_at not preserved: %v", got.DeliveredAt)
	}
	if got.AcceptedAt != nil {
		t.Fatalf("expected nil accepted_at, got %v", got.AcceptedAt)
	}
	if got.BoletoDueDate == nil || !got.BoletoDueDate.Equal(due) {
		t.Fatalf("boleto due date not preserved: %v", got.BoletoDueDate)
	}
	if len(got.DeliveryEvidence) != 1 || got.BoletoID != "123" {
		t.Fatalf("unexpected freight: %+v", got)
	}
}

func TestFromFreightItem_DefaultsBillingStatus(t *testing.T) {
	got := fromFreightItem(freightItem{ID: "f-1", Status: "QUOTED"})
	if got.BillingStatus != entities.BillingStatusPending {
		t.Fatalf("expected PENDING billing status, got %q", got.BillingStatus)
	}
}

func TestFreightDynamoRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewFreightDynamoRepository(ddb, "freights")
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	f := sampleFreight("f-1", entities.FreightStatusQuoted, now)

	if _, err := repo.Create(ctx, f); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, f); err == nil {
		t.Fatalf("expected duplicate create to fail")
	}

	got, err := repo.GetByID(ctx, "f-1")
	if err != nil || got.ID != "f-1" {
		t.Fatalf("get: %+v %v", got, err)
	}

	missing, err := repo.GetByID(ctx, "nope")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero freight, got %+v %v", missing, err)
	}

	f.Status = entities.FreightStatusRecruiting
	updated, err := repo.Update(ctx, f)
	if err != nil || updated.Status != entities.FreightStatusRecruiting {
		t.Fatalf("update: %+v %v", updated, err)
	}

	ghost, err := repo.Update(ctx, sampleFreight("ghost", entities.FreightStatusQuoted, now))
	if err != nil || ghost.ID != "" {
		t.Fatalf("expected zero freight for unknown id, got %+v %v", ghost, err)
	}

	ok, err := repo.Delete(ctx, "f-1")
	if err != nil || !ok {
		t.Fatalf("delete: %v %v", ok, err)
	}
	ok, err = repo.Delete(ctx, "f-1")
	if err != nil || ok {
		t.Fatalf("second delete should report false: %v %v", ok, err)
	}
}

func TestFreightDynamoRepository_Find(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewFreightDynamoRepository(ddb, "freights")
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	seed := []entities.Freight{
		sampleFreight("f-1", entities.FreightStatusInTransit, base),
		sampleFreight("f-2", entities.FreightStatusRejected, base.Add(time.Hour)),
		sampleFreight("f-3", entities.FreightStatusDelivered, base.Add(-time.Hour)),
	}
	seed[2].BoletoID = "999"
	for _, f := range seed {
		if _, err := repo.Create(ctx, f); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	t.Run("scan applies predicate and order", func(t *testing.T) {
		got, err := repo.Find(ctx, entities.FreightQuery{
			ExcludeStatuses: []entities.FreightStatus{entities.FreightStatusRejected},
			Order:           entities.FreightOrderPickupAsc,
		})
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if len(got) != 2 || got[0].ID != "f-3" || got[1].ID != "f-1" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("boleto lookup uses the index", func(t *testing.T) {
		before := ddb.calls["Query"]
		got, err := repo.Find(ctx, entities.FreightQuery{BoletoID: "999", Limit: 1})
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if len(got) != 1 || got[0].ID != "f-3" {
			t.Fatalf("unexpected result: %+v", got)
		}
		if ddb.calls["Query"] != before+1 {
			t.Fatalf("expected a Query call")
		}
	})
}
