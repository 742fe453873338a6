package dto

import (
	"time"

	"github.com/jekabolt/grbpwr-insights/internal/daterange"
	"github.com/jekabolt/grbpwr-insights/internal/entity"
)

type TimeRange struct {
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`
	Preset string    `json:"preset,omitempty"`
}

// CategoryStats is a category row; money is rendered as decimal strings.
type CategoryStats struct {
	Category          string   `json:"category"`
	Label             string   `json:"label"`
	Color             string   `json:"color"`
	Count             int      `json:"count"`
	Percentage        float64  `json:"percentage"`
	TotalSpent        string   `json:"total_spent"`
	AverageSpending   string   `json:"average_spending"`
	CompareCount      *int     `json:"compare_count,omitempty"`
	CompareTotalSpent *string  `json:"compare_total_spent,omitempty"`
	ChangePct         *float64 `json:"change_pct,omitempty"`
}

type ClientCategoriesReport struct {
	Period        TimeRange       `json:"period"`
	ComparePeriod *TimeRange      `json:"compare_period,omitempty"`
	TotalClients  int             `json:"total_clients"`
	CompareTotal  *int            `json:"compare_total,omitempty"`
	BehaviorStats []CategoryStats `json:"behavior_stats"`
	SpendingStats []CategoryStats `json:"spending_stats"`
}

type ClientIdentity struct {
	Id    int     `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

type ClientMember struct {
	ClientId          int             `json:"client_id"`
	Identity          *ClientIdentity `json:"identity,omitempty"`
	Behavior          string          `json:"behavior"`
	Spending          string          `json:"spending"`
	OrderCount        int             `json:"order_count"`
	TotalSpent        string          `json:"total_spent"`
	FirstOrderDate    time.Time       `json:"first_order_date"`
	LastOrderDate     time.Time       `json:"last_order_date"`
	PreviousOrderDate *time.Time      `json:"previous_order_date,omitempty"`
}

type PresetWindow struct {
	Preset string    `json:"preset"`
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`
}

func ConvertEntityClientCategoriesReport(r *entity.ClientCategoriesReport) *ClientCategoriesReport {
	if r == nil {
		return nil
	}
	out := &ClientCategoriesReport{
		Period:        timeRange(r.Period),
		TotalClients:  r.TotalClients,
		CompareTotal:  r.CompareTotal,
		BehaviorStats: categoryRows(r.Behavior, behaviorLabel),
		SpendingStats: categoryRows(r.Spending, spendingLabel),
	}
	if r.ComparePeriod != nil {
		cp := timeRange(*r.ComparePeriod)
		out.ComparePeriod = &cp
	}
	return out
}

func ConvertEntityClientIdentity(c *entity.ClientIdentity) *ClientIdentity {
	if c == nil {
		return nil
	}
	out := &ClientIdentity{
		Id:   c.Id,
		Name: c.Name,
	}
	if c.Phone.Valid {
		out.Phone = &c.Phone.String
	}
	if c.Email.Valid {
		out.Email = &c.Email.String
	}
	return out
}

func ConvertEntityClientsCategorized(list []entity.ClientCategorized) []ClientMember {
	out := make([]ClientMember, len(list))
	for i, c := range list {
		m := ClientMember{
			ClientId:       c.Summary.ClientId,
			Identity:       ConvertEntityClientIdentity(c.Identity),
			Behavior:       string(c.Behavior),
			Spending:       string(c.Spending),
			OrderCount:     c.Summary.OrderCount,
			TotalSpent:     c.Summary.TotalSpent.StringFixed(2),
			FirstOrderDate: c.Summary.FirstOrderDate,
			LastOrderDate:  c.Summary.LastOrderDate,
		}
		if c.Summary.HasHistory() {
			prev := c.Summary.PreviousOrderDate
			m.PreviousOrderDate = &prev
		}
		out[i] = m
	}
	return out
}

func ConvertPresetWindows(list []daterange.PresetWindow) []PresetWindow {
	out := make([]PresetWindow, len(list))
	for i, p := range list {
		out[i] = PresetWindow{
			Preset: p.Preset.String(),
			From:   p.Window.From,
			To:     p.Window.To,
		}
	}
	return out
}

func timeRange(w entity.DateWindow) TimeRange {
	return TimeRange{
		From:   w.From,
		To:     w.To,
		Preset: w.Preset,
	}
}

func behaviorLabel(c string) (string, string) {
	b := entity.BehaviorCategory(c)
	return b.Label(), b.Color()
}

func spendingLabel(c string) (string, string) {
	s := entity.SpendingCategory(c)
	return s.Label(), s.Color()
}

func categoryRows(rows []entity.CategoryStatsWithComparison, label func(string) (string, string)) []CategoryStats {
	out := make([]CategoryStats, len(rows))
	for i, r := range rows {
		l, color := label(r.Category)
		row := CategoryStats{
			Category:        r.Category,
			Label:           l,
			Color:           color,
			Count:           r.Count,
			Percentage:      r.Percentage,
			TotalSpent:      r.TotalSpent.StringFixed(2),
			AverageSpending: r.AverageSpending.StringFixed(2),
			CompareCount:    r.CompareCount,
			ChangePct:       r.ChangePct,
		}
		if r.CompareTotalSpent != nil {
			s := r.CompareTotalSpent.StringFixed(2)
			row.CompareTotalSpent = &s
		}
		out[i] = row
	}
	return out
}
