package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"internal-portal-api/models"
)

func TestAvailableCredit(t *testing.T) {
	tests := []struct {
		name      string
		grants    []models.CreditGrant
		usages    []models.CreditUsage
		airlineID int
		want      float64
	}{
		{
			name:      "no grants yields zero",
			grants:    nil,
			usages:    nil,
			airlineID: 1,
			want:      0,
		},
		{
			name: "grants minus usage",
			grants: []models.CreditGrant{
				{AirlineID: 1, Amount: 150.00},
				{AirlineID: 1, Amount: 75.00},
			},
			usages:    []models.CreditUsage{{Amount: 50.00}},
			airlineID: 1,
			want:      175.00,
		},
		{
			name: "grants for other airlines are ignored",
			grants: []models.CreditGrant{
				{AirlineID: 1, Amount: 150.00},
				{AirlineID: 2, Amount: 500.00},
			},
			usages:    []models.CreditUsage{{Amount: 50.00}},
			airlineID: 1,
			want:      100.00,
		},
		{
			name:      "usage without grants goes negative",
			grants:    nil,
			usages:    []models.CreditUsage{{Amount: 25.00}},
			airlineID: 1,
			want:      -25.00,
		},
		{
			name: "result is rounded to cents",
			grants: []models.CreditGrant{
				{AirlineID: 1, Amount: 10.105},
			},
			usages:    []models.CreditUsage{{Amount: 0.0049}},
			airlineID: 1,
			want:      10.10,
		},
		{
			name: "fully consumed balance is exactly zero",
			grants: []models.CreditGrant{
				{AirlineID: 1, Amount: 150.00},
				{AirlineID: 1, Amount: 75.00},
			},
			usages: []models.CreditUsage{
				{Amount: 50.00},
				{Amount: 175.00},
			},
			airlineID: 1,
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AvailableCredit(tt.grants, tt.usages, tt.airlineID)
			if got != tt.want {
				t.Fatalf("AvailableCredit = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want float64
	}{
		{"float", 42.5, 42.5},
		{"int", 10, 10},
		{"numeric string", "19.99", 19.99},
		{"non-numeric string", "abc", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoerceAmount(tt.raw); got != tt.want {
				t.Fatalf("CoerceAmount(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestApplyCreditAppendsUsageAndRecomputes(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `credit_grants` WHERE grant_id = ?").
		WillReturnRows(sqlmock.NewRows([]string{"grant_id", "member_id", "airline_id", "amount"}).
			AddRow(7, 3, 1, 150.00))

	mock.ExpectQuery("SELECT .* FROM `flight_records` WHERE flight_id = ?").
		WillReturnRows(sqlmock.NewRows([]string{"flight_id", "confirmation_number", "member_id", "airline_id"}).
			AddRow(12, "ABC123", 3, 1))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `credit_usages`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	// Recomputation always goes back to source rows.
	mock.ExpectQuery("SELECT .* FROM `credit_grants`").
		WillReturnRows(sqlmock.NewRows([]string{"grant_id", "member_id", "airline_id", "amount"}).
			AddRow(7, 3, 1, 150.00))
	mock.ExpectQuery("SELECT .* FROM `credit_usages`").
		WillReturnRows(sqlmock.NewRows([]string{"usage_id", "grant_id", "flight_id", "amount"}).
			AddRow(1, 7, 12, 50.00))

	svc := NewCreditService(db)
	balance, err := svc.ApplyCredit(ApplyCreditInput{
		GrantID:  7,
		FlightID: 12,
		Amount:   50.00,
		Actor:    "Dana Field",
	})
	if err != nil {
		t.Fatalf("ApplyCredit returned error: %v", err)
	}
	if balance != 100.00 {
		t.Fatalf("balance = %v, want 100.00", balance)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApplyCreditRejectsNegativeAmount(t *testing.T) {
	db, _ := newMockDB(t)

	svc := NewCreditService(db)
	_, err := svc.ApplyCredit(ApplyCreditInput{GrantID: 1, FlightID: 1, Amount: -5.0})

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestApplyCreditRejectsAirlineMismatch(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `credit_grants` WHERE grant_id = ?").
		WillReturnRows(sqlmock.NewRows([]string{"grant_id", "member_id", "airline_id", "amount"}).
			AddRow(7, 3, 2, 150.00))
	mock.ExpectQuery("SELECT .* FROM `flight_records` WHERE flight_id = ?").
		WillReturnRows(sqlmock.NewRows([]string{"flight_id", "confirmation_number", "member_id", "airline_id"}).
			AddRow(12, "ABC123", 3, 1))

	svc := NewCreditService(db)
	_, err := svc.ApplyCredit(ApplyCreditInput{GrantID: 7, FlightID: 12, Amount: 10.0})

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestApplyCreditUnknownGrantIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `credit_grants` WHERE grant_id = ?").
		WillReturnRows(sqlmock.NewRows([]string{"grant_id", "member_id", "airline_id", "amount"}))

	svc := NewCreditService(db)
	_, err := svc.ApplyCredit(ApplyCreditInput{GrantID: 99, FlightID: 1, Amount: 10.0})

	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFlightBalanceNegativePassesThrough(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `flight_records` WHERE flight_id = ?").
		WillReturnRows(sqlmock.NewRows([]string{"flight_id", "confirmation_number", "member_id", "airline_id"}).
			AddRow(12, "ABC123", 3, 1))
	mock.ExpectQuery("SELECT .* FROM `credit_grants`").
		WillReturnRows(sqlmock.NewRows([]string{"grant_id", "member_id", "airline_id", "amount"}).
			AddRow(7, 3, 1, 100.00))
	mock.ExpectQuery("SELECT .* FROM `credit_usages`").
		WillReturnRows(sqlmock.NewRows([]string{"usage_id", "grant_id", "flight_id", "amount"}).
			AddRow(1, 7, 12, 120.00))

	svc := NewCreditService(db)
	balance, err := svc.FlightBalance(12)
	if err != nil {
		t.Fatalf("FlightBalance returned error: %v", err)
	}
	if balance != -20.00 {
		t.Fatalf("balance = %v, want -20.00 (unclamped)", balance)
	}
}

func TestFlightBalanceUnknownFlightIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `flight_records` WHERE flight_id = ?").
		WillReturnRows(sqlmock.NewRows([]string{"flight_id"}))

	svc := NewCreditService(db)
	if _, err := svc.FlightBalance(404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateGrantRejectsNonPositiveAmount(t *testing.T) {
	db, _ := newMockDB(t)

	svc := NewCreditService(db)
	err := svc.CreateGrant(&models.CreditGrant{MemberID: 1, AirlineID: 1, Amount: 0})

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
