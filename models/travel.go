package models

import "time"

// FlightRecord is one booked flight. Records are never hard-deleted:
// the archived flag hides them from default list views, verified marks
// the cost as reconciled against actual charges, canceled marks a trip
// that did not occur. The three flags are independent.
type FlightRecord struct {
	FlightID           int        `gorm:"primaryKey;column:flight_id" json:"flight_id"`
	ConfirmationNumber string     `gorm:"column:confirmation_number;unique" json:"confirmation_number"`
	MemberID           int        `gorm:"column:member_id" json:"member_id"`
	ProjectID          int        `gorm:"column:project_id" json:"project_id"`
	AirlineID          int        `gorm:"column:airline_id" json:"airline_id"`
	TripType           string     `gorm:"column:trip_type" json:"trip_type"`
	DepartureDate      *time.Time `gorm:"column:departure_date" json:"departure_date,omitempty"`
	ReturnDate         *time.Time `gorm:"column:return_date" json:"return_date,omitempty"`
	TotalCost          float64    `gorm:"column:total_cost;type:decimal(10,2)" json:"total_cost"`
	Archived           bool       `gorm:"column:archived" json:"archived"`
	Verified           bool       `gorm:"column:verified" json:"verified"`
	Canceled           bool       `gorm:"column:canceled" json:"canceled"`
	CreatedBy          string     `gorm:"column:created_by" json:"created_by"`
	CreateAt           *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt           *time.Time `gorm:"column:update_at" json:"update_at"`

	// Relations
	Member       Member        `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Project      Project       `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Airline      Airline       `gorm:"foreignKey:AirlineID" json:"airline,omitempty"`
	CreditUsages []CreditUsage `gorm:"foreignKey:FlightID" json:"credit_usages,omitempty"`
}

type HotelReservation struct {
	ReservationID      int        `gorm:"primaryKey;column:reservation_id" json:"reservation_id"`
	ConfirmationNumber string     `gorm:"column:confirmation_number;unique" json:"confirmation_number"`
	MemberID           int        `gorm:"column:member_id" json:"member_id"`
	ProjectID          int        `gorm:"column:project_id" json:"project_id"`
	ChainID            int        `gorm:"column:chain_id" json:"chain_id"`
	HotelName          string     `gorm:"column:hotel_name" json:"hotel_name"`
	CheckInDate        *time.Time `gorm:"column:check_in_date" json:"check_in_date,omitempty"`
	CheckOutDate       *time.Time `gorm:"column:check_out_date" json:"check_out_date,omitempty"`
	TotalCost          float64    `gorm:"column:total_cost;type:decimal(10,2)" json:"total_cost"`
	Archived           bool       `gorm:"column:archived" json:"archived"`
	Verified           bool       `gorm:"column:verified" json:"verified"`
	Canceled           bool       `gorm:"column:canceled" json:"canceled"`
	CreatedBy          string     `gorm:"column:created_by" json:"created_by"`
	CreateAt           *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt           *time.Time `gorm:"column:update_at" json:"update_at"`

	// Relations
	Member  Member     `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Project Project    `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Chain   HotelChain `gorm:"foreignKey:ChainID" json:"chain,omitempty"`
}

type RentalCar struct {
	RentalID           int        `gorm:"primaryKey;column:rental_id" json:"rental_id"`
	ConfirmationNumber string     `gorm:"column:confirmation_number;unique" json:"confirmation_number"`
	MemberID           int        `gorm:"column:member_id" json:"member_id"`
	ProjectID          int        `gorm:"column:project_id" json:"project_id"`
	VendorID           int        `gorm:"column:vendor_id" json:"vendor_id"`
	PickUpDate         *time.Time `gorm:"column:pick_up_date" json:"pick_up_date,omitempty"`
	DropOffDate        *time.Time `gorm:"column:drop_off_date" json:"drop_off_date,omitempty"`
	PickUpLocation     *string    `gorm:"column:pick_up_location" json:"pick_up_location,omitempty"`
	TotalCost          float64    `gorm:"column:total_cost;type:decimal(10,2)" json:"total_cost"`
	Archived           bool       `gorm:"column:archived" json:"archived"`
	Verified           bool       `gorm:"column:verified" json:"verified"`
	Canceled           bool       `gorm:"column:canceled" json:"canceled"`
	CreatedBy          string     `gorm:"column:created_by" json:"created_by"`
	CreateAt           *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt           *time.Time `gorm:"column:update_at" json:"update_at"`

	// Relations
	Member  Member       `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Project Project      `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Vendor  RentalVendor `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
}

// TableName overrides
func (FlightRecord) TableName() string {
	return "flight_records"
}

func (HotelReservation) TableName() string {
	return "hotel_reservations"
}

func (RentalCar) TableName() string {
	return "rental_cars"
}
