package models

import "time"

// Providers scope which credits apply to which bookings: a credit grant
// issued against one airline is only redeemable on flights with that
// same airline.

type Airline struct {
	AirlineID   int        `gorm:"primaryKey;column:airline_id" json:"airline_id"`
	AirlineName string     `gorm:"column:airline_name;unique" json:"airline_name"`
	CreateAt    *time.Time `gorm:"column:create_at" json:"create_at"`
}

type HotelChain struct {
	ChainID   int        `gorm:"primaryKey;column:chain_id" json:"chain_id"`
	ChainName string     `gorm:"column:chain_name;unique" json:"chain_name"`
	CreateAt  *time.Time `gorm:"column:create_at" json:"create_at"`
}

type RentalVendor struct {
	VendorID   int        `gorm:"primaryKey;column:vendor_id" json:"vendor_id"`
	VendorName string     `gorm:"column:vendor_name;unique" json:"vendor_name"`
	CreateAt   *time.Time `gorm:"column:create_at" json:"create_at"`
}

// TableName overrides
func (Airline) TableName() string {
	return "airlines"
}

func (HotelChain) TableName() string {
	return "hotel_chains"
}

func (RentalVendor) TableName() string {
	return "rental_vendors"
}
