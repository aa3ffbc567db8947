package response

import (
	"github.com/shopspring/decimal"

	"eagles_transportes/internal/domain/entities"
)

type KPIResponse struct {
	MonthlyRevenue    decimal.Decimal `json:"monthly_revenue"`
	MonthlyDriverCost decimal.Decimal `json:"monthly_driver_cost"`
	ActiveFreights    int             `json:"active_freights"`
	DeliveriesToday   int             `json:"deliveries_today"`
	Delays            int             `json:"delays"`
}

type BucketResponse struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type DashboardResponse struct {
	KPIs           KPIResponse       `json:"kpis"`
	RecentFreights []FreightResponse `json:"recent_freights"`
	ByState        []BucketResponse  `json:"by_state"`
	ByVehicle      []BucketResponse  `json:"by_vehicle"`
}

func FromDashboardStats(s entities.DashboardStats) DashboardResponse {
	return DashboardResponse{
		KPIs: KPIResponse{
			MonthlyRevenue:    s.KPIs.MonthlyRevenue,
			MonthlyDriverCost: s.KPIs.MonthlyDriverCost,
			ActiveFreights:    s.KPIs.ActiveFreights,
			DeliveriesToday:   s.KPIs.DeliveriesToday,
			Delays:            s.KPIs.Delays,
		},
		RecentFreights: FromFreights(s.RecentFreights),
		ByState:        fromBuckets(s.ByState),
		ByVehicle:      fromBuckets(s.ByVehicle),
	}
}

func fromBuckets(list []entities.BucketCount) []BucketResponse {
	out := make([]BucketResponse, 0, len(list))
	for _, b := range list {
		out = append(out, BucketResponse{Name: b.Name, Value: b.Value})
	}
	return out
}
