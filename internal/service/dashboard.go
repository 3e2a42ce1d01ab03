package service

import (
	"math"

	"github.com/flowcrm/flowcrm-go/internal/model"
)

// DashboardStats is the cross-entity summary behind the dashboard.
type DashboardStats struct {
	TotalContacts  int     `json:"totalContacts"`
	TotalCompanies int     `json:"totalCompanies"`
	TotalDeals     int     `json:"totalDeals"`
	TotalRevenue   float64 `json:"totalRevenue"`
	WonDeals       int     `json:"wonDeals"`
	PendingTasks   int     `json:"pendingTasks"`
	ConversionRate float64 `json:"conversionRate"`
}

// Stats derives dashboard statistics from repository snapshots. It holds
// no state of its own: identical snapshots always yield identical stats.
func Stats(contacts []model.Contact, companies []model.Company, deals []model.Deal, tasks []model.Task) DashboardStats {
	stats := DashboardStats{
		TotalContacts:  len(contacts),
		TotalCompanies: len(companies),
		TotalDeals:     len(deals),
	}

	for _, d := range deals {
		stats.TotalRevenue += d.Value.Float()
		if d.Stage == model.StageWon {
			stats.WonDeals++
		}
	}

	for _, t := range tasks {
		if t.Status != model.TaskStatusCompleted {
			stats.PendingTasks++
		}
	}

	// Guard the zero-deal case explicitly; rate is rounded to 1 decimal.
	if stats.TotalDeals > 0 {
		rate := float64(stats.WonDeals) / float64(stats.TotalDeals) * 100
		stats.ConversionRate = math.Round(rate*10) / 10
	}

	return stats
}

// RevenueByMonth sums the value of Won deals grouped by the short month
// name of their creation time. Deals without a positive value are
// skipped; months with no won deals are absent from the result.
func RevenueByMonth(deals []model.Deal) map[string]float64 {
	revenue := make(map[string]float64)
	for _, d := range deals {
		if d.Stage != model.StageWon || d.Value <= 0 {
			continue
		}
		revenue[d.CreatedAt.Format("Jan")] += d.Value.Float()
	}
	return revenue
}

// ActivitySummary counts activities grouped by type.
func ActivitySummary(activities []model.Activity) map[string]int {
	summary := make(map[string]int)
	for _, a := range activities {
		summary[a.Type]++
	}
	return summary
}
