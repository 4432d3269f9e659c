package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"internal-portal-api/config"
)

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	previous := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = previous })

	return mock
}

func flightListRequest(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/flights", GetFlights)

	recorder := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	router.ServeHTTP(recorder, req)

	return recorder
}

// The default flight list must filter archived records out; the
// include_archived toggle must lift that filter entirely.
func TestGetFlightsHidesArchivedByDefault(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `flight_records` WHERE archived = .* ORDER BY flight_id DESC").
		WillReturnRows(sqlmock.NewRows([]string{"flight_id"}))

	recorder := flightListRequest(t, "/flights")

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", recorder.Code, http.StatusOK, recorder.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("archived filter missing from default list query: %v", err)
	}
}

func TestGetFlightsIncludeArchivedLiftsFilter(t *testing.T) {
	mock := setupMockDB(t)

	// No WHERE clause at all: archived rows come back too.
	mock.ExpectQuery("SELECT .* FROM `flight_records` ORDER BY flight_id DESC").
		WillReturnRows(sqlmock.NewRows([]string{"flight_id"}))

	recorder := flightListRequest(t, "/flights?include_archived=true")

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", recorder.Code, http.StatusOK, recorder.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected filter on include_archived query: %v", err)
	}
}

func TestGetFlightsMemberFilterKeepsArchivedFilter(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `flight_records` WHERE archived = .* AND member_id = .* ORDER BY flight_id DESC").
		WillReturnRows(sqlmock.NewRows([]string{"flight_id"}))

	recorder := flightListRequest(t, "/flights?member_id=7")

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", recorder.Code, http.StatusOK, recorder.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("member-scoped list lost the archived filter: %v", err)
	}
}
