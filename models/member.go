package models

import (
	"strings"
	"time"
)

// Member is a field technician tracked by the portal. Members are never
// deleted; they are flagged inactive instead so history stays intact.
type Member struct {
	MemberID      int        `gorm:"primaryKey;column:member_id" json:"member_id"`
	FirstName     string     `gorm:"column:first_name" json:"first_name"`
	LastName      string     `gorm:"column:last_name" json:"last_name"`
	PreferredName *string    `gorm:"column:preferred_name" json:"preferred_name,omitempty"`
	Email         string     `gorm:"column:email;unique" json:"email"`
	Phone         *string    `gorm:"column:phone" json:"phone,omitempty"`
	City          *string    `gorm:"column:city" json:"city,omitempty"`
	State         *string    `gorm:"column:state" json:"state,omitempty"`
	Designation   string     `gorm:"column:designation" json:"designation"`
	Intern        bool       `gorm:"column:intern" json:"intern"`
	Inactive      bool       `gorm:"column:inactive" json:"inactive"`
	StartDate     *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`
	CreatedBy     string     `gorm:"column:created_by" json:"created_by"`
	CreateAt      *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt      *time.Time `gorm:"column:update_at" json:"update_at"`

	// Relations
	Approvals    []ApprovalRecord `gorm:"foreignKey:MemberID" json:"approvals,omitempty"`
	CreditGrants []CreditGrant    `gorm:"foreignKey:MemberID" json:"credit_grants,omitempty"`
}

// FullName prefers the member's preferred name when one is on file.
func (m *Member) FullName() string {
	first := m.FirstName
	if m.PreferredName != nil && strings.TrimSpace(*m.PreferredName) != "" {
		first = *m.PreferredName
	}
	return strings.TrimSpace(first + " " + m.LastName)
}

func (Member) TableName() string {
	return "members"
}
