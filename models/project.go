package models

import "time"

type Project struct {
	ProjectID   int        `gorm:"primaryKey;column:project_id" json:"project_id"`
	ProjectName string     `gorm:"column:project_name;unique" json:"project_name"`
	Description *string    `gorm:"column:description" json:"description,omitempty"`
	SiteAddress *string    `gorm:"column:site_address" json:"site_address,omitempty"`
	Inactive    bool       `gorm:"column:inactive" json:"inactive"`
	CreatedBy   string     `gorm:"column:created_by" json:"created_by"`
	CreateAt    *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    *time.Time `gorm:"column:update_at" json:"update_at"`

	// Relations
	Assignments []ProjectAssignment `gorm:"foreignKey:ProjectID" json:"assignments,omitempty"`
}

// ProjectAssignment links a member onto a project roster with free-text
// notes about the staffing decision.
type ProjectAssignment struct {
	AssignmentID int        `gorm:"primaryKey;column:assignment_id" json:"assignment_id"`
	ProjectID    int        `gorm:"column:project_id" json:"project_id"`
	MemberID     int        `gorm:"column:member_id" json:"member_id"`
	Notes        *string    `gorm:"column:notes" json:"notes,omitempty"`
	CreatedBy    string     `gorm:"column:created_by" json:"created_by"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Member  Member  `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

// TableName overrides
func (Project) TableName() string {
	return "projects"
}

func (ProjectAssignment) TableName() string {
	return "project_assignments"
}
