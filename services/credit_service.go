package services

import (
	"errors"
	"log"
	"math"
	"strconv"
	"time"

	"gorm.io/gorm"

	"internal-portal-api/models"
)

// CreditService owns the flight-credit ledger: grants issued to members
// against an airline, usage rows consuming them against flights, and
// the balance computation over both. Balances are recomputed from
// source rows on every read; nothing is cached or incrementally
// maintained.
type CreditService struct {
	db *gorm.DB
}

func NewCreditService(db *gorm.DB) *CreditService {
	return &CreditService{db: db}
}

// RoundCurrency rounds to two decimal places (cent precision).
func RoundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}

// AvailableCredit computes the balance a flight can still draw on:
// the member's grants scoped to the flight's airline, minus the usage
// already applied to the flight. An empty grant set yields 0. A
// negative result is possible when usage exceeds grants; it passes
// through unclamped as a data-integrity signal.
func AvailableCredit(grants []models.CreditGrant, usages []models.CreditUsage, airlineID int) float64 {
	var granted float64
	for _, g := range grants {
		if g.AirlineID == airlineID {
			granted += g.Amount
		}
	}

	var used float64
	for _, u := range usages {
		used += u.Amount
	}

	return RoundCurrency(granted - used)
}

// CoerceAmount turns loosely-typed request input into a dollar amount.
// Non-numeric input coerces to 0 rather than erroring, matching the
// permissive intake the ledger has always had.
func CoerceAmount(raw interface{}) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// FlightBalance loads the flight plus its member's grants and its usage
// rows and computes the available credit.
func (s *CreditService) FlightBalance(flightID int) (float64, error) {
	var flight models.FlightRecord
	if err := s.db.Where("flight_id = ?", flightID).First(&flight).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, persistenceErr("load flight", err)
	}

	return s.balanceFor(&flight)
}

func (s *CreditService) balanceFor(flight *models.FlightRecord) (float64, error) {
	var grants []models.CreditGrant
	if err := s.db.Where("member_id = ? AND airline_id = ?", flight.MemberID, flight.AirlineID).
		Find(&grants).Error; err != nil {
		return 0, persistenceErr("load credit grants", err)
	}

	var usages []models.CreditUsage
	if err := s.db.Where("flight_id = ?", flight.FlightID).Find(&usages).Error; err != nil {
		return 0, persistenceErr("load credit usage", err)
	}

	balance := AvailableCredit(grants, usages, flight.AirlineID)
	if balance < 0 {
		// Over-application is permitted but monitored (no balance check
		// happens at write time).
		log.Printf("credit balance negative for flight %s: %.2f", flight.ConfirmationNumber, balance)
	}
	return balance, nil
}

// ApplyCreditInput carries one apply-credit request. Amount arrives
// loosely typed from JSON and is coerced via CoerceAmount.
type ApplyCreditInput struct {
	GrantID  int
	FlightID int
	Amount   interface{}
	Actor    string
}

// ApplyCredit appends a usage row and returns the recomputed balance.
// The remaining grant balance is deliberately not checked before the
// write; a resulting negative balance is logged by the recomputation.
func (s *CreditService) ApplyCredit(input ApplyCreditInput) (float64, error) {
	amount := CoerceAmount(input.Amount)
	if amount < 0 {
		return 0, NewValidationError("credit amount must not be negative")
	}

	var grant models.CreditGrant
	if err := s.db.Where("grant_id = ?", input.GrantID).First(&grant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, persistenceErr("load credit grant", err)
	}

	var flight models.FlightRecord
	if err := s.db.Where("flight_id = ?", input.FlightID).First(&flight).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, persistenceErr("load flight", err)
	}

	if grant.AirlineID != flight.AirlineID {
		return 0, NewValidationError("grant airline does not match flight airline")
	}

	now := time.Now()
	usage := models.CreditUsage{
		GrantID:   grant.GrantID,
		FlightID:  flight.FlightID,
		Amount:    RoundCurrency(amount),
		CreatedBy: input.Actor,
		CreateAt:  &now,
	}
	if err := s.db.Create(&usage).Error; err != nil {
		return 0, persistenceErr("insert credit usage", err)
	}

	return s.balanceFor(&flight)
}

// MemberGrants lists every grant issued to a member, newest first.
func (s *CreditService) MemberGrants(memberID int) ([]models.CreditGrant, error) {
	var grants []models.CreditGrant
	if err := s.db.Preload("Airline").
		Where("member_id = ?", memberID).
		Order("grant_id DESC").
		Find(&grants).Error; err != nil {
		return nil, persistenceErr("load credit grants", err)
	}
	return grants, nil
}

// CreateGrant issues new credit to a member against an airline.
func (s *CreditService) CreateGrant(grant *models.CreditGrant) error {
	amount := RoundCurrency(grant.Amount)
	if amount <= 0 {
		return NewValidationError("grant amount must be positive")
	}
	grant.Amount = amount

	now := time.Now()
	grant.CreateAt = &now
	if err := s.db.Create(grant).Error; err != nil {
		return persistenceErr("insert credit grant", err)
	}
	return nil
}
