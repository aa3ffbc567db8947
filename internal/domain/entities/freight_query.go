package entities

import (
	"sort"
	"time"
)

type FreightOrder string

const (
	FreightOrderNone      FreightOrder = ""
	FreightOrderPickupAsc FreightOrder = "pickup_asc"
	// FreightOrderCreatedAsc keeps listings stable across pages.
	FreightOrderCreatedAsc FreightOrder = "created_asc"
)

// FreightQuery is a predicate over freights plus ordering and paging.
//
// Zero values mean "no constraint". Time bounds are half-open: From is inclusive,
// Before is exclusive. Repositories may push parts of the predicate down to the
// store, but Matches is the reference semantics.
type FreightQuery struct {
	Statuses        []FreightStatus
	ExcludeStatuses []FreightStatus
	BillingStatuses []BillingStatus

	PickupFrom     time.Time
	PickupBefore   time.Time
	DeliveryFrom   time.Time
	DeliveryBefore time.Time

	BoletoID      string
	RequireBoleto bool

	Order  FreightOrder
	Offset int
	Limit  int
}

// Matches reports whether f satisfies every predicate in q.
func (q FreightQuery) Matches(f Freight) bool {
	if len(q.Statuses) > 0 && !containsStatus(q.Statuses, f.Status) {
		return false
	}
	if containsStatus(q.ExcludeStatuses, f.Status) {
		return false
	}
	if len(q.BillingStatuses) > 0 && !containsBilling(q.BillingStatuses, f.BillingStatus) {
		return false
	}
	if !inWindow(f.PickupDate, q.PickupFrom, q.PickupBefore) {
		return false
	}
	if !inWindow(f.DeliveryDate, q.DeliveryFrom, q.DeliveryBefore) {
		return false
	}
	if q.BoletoID != "" && f.BoletoID != q.BoletoID {
		return false
	}
	if q.RequireBoleto && f.BoletoID == "" {
		return false
	}
	return true
}

// Apply filters, orders and pages items according to q.
func (q FreightQuery) Apply(items []Freight) []Freight {
	out := make([]Freight, 0, len(items))
	for _, f := range items {
		if q.Matches(f) {
			out = append(out, f)
		}
	}

	switch q.Order {
	case FreightOrderPickupAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PickupDate.Before(out[j].PickupDate)
		})
	case FreightOrderCreatedAsc:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].CreatedAt.Equal(out[j].CreatedAt) {
				return out[i].ID < out[j].ID
			}
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	}

	if q.Offset > 0 {
		if q.Offset >= len(out) {
			return []Freight{}
		}
		out = out[q.Offset:]
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

func inWindow(t, from, before time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !before.IsZero() && !t.Before(before) {
		return false
	}
	return true
}

func containsStatus(list []FreightStatus, s FreightStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsBilling(list []BillingStatus, s BillingStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
