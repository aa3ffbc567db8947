package entities

import "github.com/shopspring/decimal"

// KPIs are the headline dashboard numbers.
type KPIs struct {
	MonthlyRevenue    decimal.Decimal `json:"monthly_revenue"`
	MonthlyDriverCost decimal.Decimal `json:"monthly_driver_cost"`
	ActiveFreights    int             `json:"active_freights"`
	DeliveriesToday   int             `json:"deliveries_today"`
	Delays            int             `json:"delays"`
}

// BucketCount is the number of freights that fell into a bucket.
type BucketCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DashboardStats is the full dashboard read model.
type DashboardStats struct {
	KPIs           KPIs          `json:"kpis"`
	RecentFreights []Freight     `json:"recent_freights"`
	ByState        []BucketCount `json:"by_state"`
	ByVehicle      []BucketCount `json:"by_vehicle"`
}
