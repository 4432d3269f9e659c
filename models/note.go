package models

import "time"

// Parent types notes and attachments can hang off.
const (
	ParentTypeMember = "member"
	ParentTypeFlight = "flight"
	ParentTypeHotel  = "hotel"
	ParentTypeRental = "rental"
)

// ValidParentType reports whether t names an attachable record kind.
func ValidParentType(t string) bool {
	switch t {
	case ParentTypeMember, ParentTypeFlight, ParentTypeHotel, ParentTypeRental:
		return true
	}
	return false
}

type Note struct {
	NoteID     int        `gorm:"primaryKey;column:note_id" json:"note_id"`
	ParentType string     `gorm:"column:parent_type;index:idx_note_parent" json:"parent_type"`
	ParentID   int        `gorm:"column:parent_id;index:idx_note_parent" json:"parent_id"`
	Body       string     `gorm:"column:body;type:text" json:"body"`
	CreatedBy  string     `gorm:"column:created_by" json:"created_by"`
	CreateAt   *time.Time `gorm:"column:create_at" json:"create_at"`
}

// Attachment is a file reference. ObjectKey addresses the stored object
// in the bucket; DownloadURL is resolved per request into a time-limited
// presigned link and never persisted.
type Attachment struct {
	AttachmentID int        `gorm:"primaryKey;column:attachment_id" json:"attachment_id"`
	ParentType   string     `gorm:"column:parent_type;index:idx_attachment_parent" json:"parent_type"`
	ParentID     int        `gorm:"column:parent_id;index:idx_attachment_parent" json:"parent_id"`
	ObjectKey    string     `gorm:"column:object_key" json:"-"`
	FileName     string     `gorm:"column:file_name" json:"file_name"`
	Description  *string    `gorm:"column:description" json:"description,omitempty"`
	MimeType     string     `gorm:"column:mime_type" json:"mime_type"`
	FileSize     int64      `gorm:"column:file_size" json:"file_size"`
	UploadedBy   string     `gorm:"column:uploaded_by" json:"uploaded_by"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`

	DownloadURL string `gorm:"-" json:"download_url,omitempty"`
}

// TableName overrides
func (Note) TableName() string {
	return "notes"
}

func (Attachment) TableName() string {
	return "attachments"
}
