package entity

import "time"

// Coupon is a percentage discount code with a validity window and usage caps.
type Coupon struct {
	ID                 string     `json:"_id"`
	Code               string     `json:"code"`
	Description        string     `json:"description,omitempty"`
	DiscountPercentage float64    `json:"discountPercentage"`
	ValidFrom          *time.Time `json:"validFrom,omitempty"`
	ValidUntil         *time.Time `json:"validUntil,omitempty"`
	MaxUses            int        `json:"maxUses,omitempty"`
	MaxUsesPerUser     int        `json:"maxUsesPerUser,omitempty"`
	UsedCount          int        `json:"usedCount"`
	IsActive           bool       `json:"isActive"`
	CreatedAt          *time.Time `json:"createdAt,omitempty"`
}

// Identity implements Identifiable.
func (c Coupon) Identity() string {
	return c.ID
}

// CouponValidation is the backend's verdict on a code.
type CouponValidation struct {
	Valid              bool    `json:"valid"`
	Code               string  `json:"code"`
	DiscountPercentage float64 `json:"discountPercentage,omitempty"`
	DiscountAmount     float64 `json:"discountAmount,omitempty"`
	FinalAmount        float64 `json:"finalAmount,omitempty"`
	Message            string  `json:"message,omitempty"`
}
