package domain

import "context"

type Service interface {
	Overview(ctx context.Context, req OverviewRequest) (*OverviewResponse, error)
}

type OverviewRequest struct {
	Days int `form:"days"`
}

// OverviewResponse is a single dashboard payload so the front end
// renders both charts from one request.
type OverviewResponse struct {
	DailySales  []DailySalesRow `json:"daily_sales"`
	TopProducts []TopProductRow `json:"top_products"`
}
