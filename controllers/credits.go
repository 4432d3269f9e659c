package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"internal-portal-api/config"
	"internal-portal-api/models"
	"internal-portal-api/services"
	"internal-portal-api/utils"
)

// GetMemberCredits lists every credit grant issued to a member.
func GetMemberCredits(c *gin.Context) {
	memberID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	grants, err := services.NewCreditService(config.DB).MemberGrants(memberID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"grants": grants})
}

// CreateCreditGrant issues refund credit to a member against an airline.
func CreateCreditGrant(c *gin.Context) {
	var req struct {
		MemberID  int     `json:"member_id" binding:"required"`
		AirlineID int     `json:"airline_id" binding:"required"`
		Amount    float64 `json:"amount" binding:"required"`
		Reason    *string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grant := models.CreditGrant{
		MemberID:  req.MemberID,
		AirlineID: req.AirlineID,
		Amount:    req.Amount,
		Reason:    req.Reason,
		CreatedBy: currentActor(c),
	}

	if err := services.NewCreditService(config.DB).CreateGrant(&grant); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"grant": grant})
}

// GetFlightBalance recomputes a flight's available credit from source
// rows (grants minus usage, scoped to the flight's airline).
func GetFlightBalance(c *gin.Context) {
	flightID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	balance, err := services.NewCreditService(config.DB).FlightBalance(flightID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"available_credit": balance,
		"credit_display":   utils.CreditDisplay(balance),
	})
}

// ApplyCredit appends a usage ledger entry against a flight and returns
// the recomputed balance. No upper-bound check is applied against the
// remaining grant balance; an over-application surfaces as a negative
// balance in the recomputation.
func ApplyCredit(c *gin.Context) {
	flightID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		GrantID int         `json:"grant_id" binding:"required"`
		Amount  interface{} `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	balance, err := services.NewCreditService(config.DB).ApplyCredit(services.ApplyCreditInput{
		GrantID:  req.GrantID,
		FlightID: flightID,
		Amount:   req.Amount,
		Actor:    currentActor(c),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"available_credit": balance,
		"credit_display":   utils.CreditDisplay(balance),
	})
}
