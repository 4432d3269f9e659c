package models

import "time"

// CreditGrant is refund credit issued to a member against a specific
// airline, usually after a provider-side cancellation. A grant is only
// redeemable on flights booked with the same airline.
type CreditGrant struct {
	GrantID   int        `gorm:"primaryKey;column:grant_id" json:"grant_id"`
	MemberID  int        `gorm:"column:member_id" json:"member_id"`
	AirlineID int        `gorm:"column:airline_id" json:"airline_id"`
	Amount    float64    `gorm:"column:amount;type:decimal(10,2)" json:"amount"`
	Reason    *string    `gorm:"column:reason" json:"reason,omitempty"`
	CreatedBy string     `gorm:"column:created_by" json:"created_by"`
	CreateAt  *time.Time `gorm:"column:create_at" json:"create_at"`

	// Relations
	Member  Member  `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Airline Airline `gorm:"foreignKey:AirlineID" json:"airline,omitempty"`
}

// CreditUsage is one ledger entry consuming part of a grant against a
// flight. Balances are always recomputed from these source rows, never
// cached.
type CreditUsage struct {
	UsageID   int        `gorm:"primaryKey;column:usage_id" json:"usage_id"`
	GrantID   int        `gorm:"column:grant_id" json:"grant_id"`
	FlightID  int        `gorm:"column:flight_id" json:"flight_id"`
	Amount    float64    `gorm:"column:amount;type:decimal(10,2)" json:"amount"`
	CreatedBy string     `gorm:"column:created_by" json:"created_by"`
	CreateAt  *time.Time `gorm:"column:create_at" json:"create_at"`

	// Relations
	Grant CreditGrant `gorm:"foreignKey:GrantID" json:"grant,omitempty"`
}

// TableName overrides
func (CreditGrant) TableName() string {
	return "credit_grants"
}

func (CreditUsage) TableName() string {
	return "credit_usages"
}
