package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"eagles_transportes/internal/domain/entities"
	"eagles_transportes/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const (
	analyticsWindow   = 90 * 24 * time.Hour
	recentFreightsMax = 5
)

// Drill-down filter types and KPI names.
const (
	DrilldownState   = "state"
	DrilldownVehicle = "vehicle"
	DrilldownKPI     = "kpi"

	KPIActive  = "active"
	KPIToday   = "today"
	KPIDelayed = "delayed"
)

// IAnalyticsUseCase computes dashboard numbers. It never writes.
//
// KPI cards and breakdown charts use different windows: KPIs look at the whole
// freight set (or the current month/day), charts at the last 90 days. The
// drill-down follows the same split so its lists always match what was counted.

type IAnalyticsUseCase interface {
	DashboardStats(ctx context.Context, asOf time.Time) (entities.DashboardStats, error)
	Drilldown(ctx context.Context, filterType, filterValue string, asOf time.Time) ([]entities.Freight, error)
}

type AnalyticsUseCase struct {
	freightRepo interfaces.IFreightRepository
	driverRepo  interfaces.IDriverRepository
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(freightRepo interfaces.IFreightRepository, driverRepo interfaces.IDriverRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{freightRepo: freightRepo, driverRepo: driverRepo}
}

func (u *AnalyticsUseCase) DashboardStats(ctx context.Context, asOf time.Time) (entities.DashboardStats, error) {
	all, err := u.freightRepo.Find(ctx, entities.FreightQuery{})
	if err != nil {
		log.Printf("[dashboard][usecase] load freights failed err=%v", err)
		return entities.DashboardStats{}, err
	}
	drivers, err := u.driversByID(ctx)
	if err != nil {
		return entities.DashboardStats{}, err
	}

	monthly := monthlyQuery(asOf).Apply(all)
	revenue, cost := decimal.Zero, decimal.Zero
	for _, f := range monthly {
		revenue = revenue.Add(f.ClientAmount)
		cost = cost.Add(f.DriverAmount)
	}

	window := breakdownQuery(asOf).Apply(all)
	byState := map[string]int{}
	byVehicle := map[string]int{}
	for _, f := range window {
		byState[RegionBucket(f.Origin)]++
		byVehicle[VehicleBucket(drivers[f.DriverID])]++
	}

	stats := entities.DashboardStats{
		KPIs: entities.KPIs{
			MonthlyRevenue:    revenue,
			MonthlyDriverCost: cost,
			ActiveFreights:    len(activeQuery().Apply(all)),
			DeliveriesToday:   len(todayQuery(asOf).Apply(all)),
			Delays:            len(delayedQuery(asOf).Apply(all)),
		},
		RecentFreights: recentQuery().Apply(all),
		ByState:        sortedBuckets(byState),
		ByVehicle:      sortedBuckets(byVehicle),
	}
	log.Printf("[dashboard][usecase] stats as_of=%s freights=%d window=%d active=%d delays=%d",
		asOf.Format(time.RFC3339), len(all), len(window), stats.KPIs.ActiveFreights, stats.KPIs.Delays)
	return stats, nil
}

func (u *AnalyticsUseCase) Drilldown(ctx context.Context, filterType, filterValue string, asOf time.Time) ([]entities.Freight, error) {
	filterType = strings.ToLower(strings.TrimSpace(filterType))
	filterValue = strings.TrimSpace(filterValue)
	log.Printf("[dashboard][usecase] drilldown type=%s value=%s", filterType, filterValue)

	switch filterType {
	case DrilldownKPI:
		q, ok := kpiQuery(strings.ToLower(filterValue), asOf)
		if !ok {
			return nil, ErrInvalidDrilldown
		}
		return u.freightRepo.Find(ctx, q)

	case DrilldownState:
		window, err := u.freightRepo.Find(ctx, breakdownQuery(asOf))
		if err != nil {
			return nil, err
		}
		return filterBucket(window, filterValue, func(f entities.Freight) string {
			return RegionBucket(f.Origin)
		}), nil

	case DrilldownVehicle:
		window, err := u.freightRepo.Find(ctx, breakdownQuery(asOf))
		if err != nil {
			return nil, err
		}
		drivers, err := u.driversByID(ctx)
		if err != nil {
			return nil, err
		}
		return filterBucket(window, filterValue, func(f entities.Freight) string {
			return VehicleBucket(drivers[f.DriverID])
		}), nil

	default:
		return nil, ErrInvalidDrilldown
	}
}

func (u *AnalyticsUseCase) driversByID(ctx context.Context) (map[string]*entities.Driver, error) {
	list, err := u.driverRepo.ListAll(ctx)
	if err != nil {
		log.Printf("[dashboard][usecase] load drivers failed err=%v", err)
		return nil, err
	}
	out := make(map[string]*entities.Driver, len(list))
	for i := range list {
		out[list[i].ID] = &list[i]
	}
	return out, nil
}

func filterBucket(items []entities.Freight, value string, bucket func(entities.Freight) string) []entities.Freight {
	out := make([]entities.Freight, 0)
	for _, f := range items {
		if strings.EqualFold(bucket(f), value) {
			out = append(out, f)
		}
	}
	return out
}

func sortedBuckets(counts map[string]int) []entities.BucketCount {
	out := make([]entities.BucketCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, entities.BucketCount{Name: name, Value: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value == out[j].Value {
			return out[i].Name < out[j].Name
		}
		return out[i].Value > out[j].Value
	})
	return out
}

// Predicates shared by the dashboard and the drill-down.

func monthlyQuery(asOf time.Time) entities.FreightQuery {
	start := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())
	return entities.FreightQuery{
		PickupFrom:      start,
		PickupBefore:    start.AddDate(0, 1, 0),
		ExcludeStatuses: []entities.FreightStatus{entities.FreightStatusRejected, entities.FreightStatusQuoted},
	}
}

func activeQuery() entities.FreightQuery {
	return entities.FreightQuery{Statuses: entities.ActiveFreightStatuses}
}

func todayQuery(asOf time.Time) entities.FreightQuery {
	start := startOfDay(asOf)
	return entities.FreightQuery{
		DeliveryFrom:    start,
		DeliveryBefore:  start.AddDate(0, 0, 1),
		ExcludeStatuses: []entities.FreightStatus{entities.FreightStatusRejected},
	}
}

func delayedQuery(asOf time.Time) entities.FreightQuery {
	return entities.FreightQuery{
		Statuses:       entities.ActiveFreightStatuses,
		DeliveryBefore: asOf,
	}
}

func recentQuery() entities.FreightQuery {
	return entities.FreightQuery{
		ExcludeStatuses: []entities.FreightStatus{
			entities.FreightStatusQuoted,
			entities.FreightStatusRejected,
			entities.FreightStatusDelivered,
		},
		Order: entities.FreightOrderPickupAsc,
		Limit: recentFreightsMax,
	}
}

func breakdownQuery(asOf time.Time) entities.FreightQuery {
	return entities.FreightQuery{
		PickupFrom:      asOf.Add(-analyticsWindow),
		ExcludeStatuses: []entities.FreightStatus{entities.FreightStatusQuoted, entities.FreightStatusRejected},
	}
}

func kpiQuery(name string, asOf time.Time) (entities.FreightQuery, bool) {
	switch name {
	case KPIActive:
		return activeQuery(), true
	case KPIToday:
		return todayQuery(asOf), true
	case KPIDelayed:
		return delayedQuery(asOf), true
	}
	return entities.FreightQuery{}, false
}
