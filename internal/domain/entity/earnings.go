package entity

// DataSource tells consumers whether figures are real.
type DataSource string

const (
	SourceBackend DataSource = "backend"
	// SourceFixture marks placeholder figures that do not come from the backend.
	SourceFixture DataSource = "fixture"
)

// EarningsOwner is whose earnings are summarized.
type EarningsOwner string

const (
	OwnerPlatform   EarningsOwner = "platform"
	OwnerInstructor EarningsOwner = "instructor"
	OwnerAffiliate  EarningsOwner = "affiliate"
)

// EarningsSummary aggregates revenue for the platform or a single earner.
type EarningsSummary struct {
	OwnerType     EarningsOwner   `json:"ownerType"`
	OwnerID       string          `json:"ownerId,omitempty"`
	Currency      string          `json:"currency"`
	TotalEarnings float64         `json:"totalEarnings"`
	PendingPayout float64         `json:"pendingPayout"`
	PaidOut       float64         `json:"paidOut"`
	Breakdown     []EarningsEntry `json:"breakdown,omitempty"`
	Source        DataSource      `json:"source"`
}

type EarningsEntry struct {
	Period string  `json:"period"`
	Amount float64 `json:"amount"`
}
