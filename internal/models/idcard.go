package models

import "time"

// ID application lifecycle states. Pending transitions to Approved or
// Rejected; both are terminal.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// UniqueIDPrefix prefixes the identifier issued on approval.
const UniqueIDPrefix = "COE-"

// IDApplication is a submitted identity-card request.
type IDApplication struct {
	ID            int64     `db:"id" json:"id"`
	Email         string    `db:"email" json:"email"`
	FullName      string    `db:"full_name" json:"full_name"`
	RollNo        string    `db:"roll_no" json:"roll_no"`
	Department    string    `db:"department" json:"department"`
	AcademicYear  string    `db:"academic_year" json:"academic_year"`
	FatherName    string    `db:"father_name" json:"father_name"`
	MotherName    string    `db:"mother_name" json:"mother_name"`
	Phone         string    `db:"phone" json:"phone"`
	Gender        string    `db:"gender" json:"gender"`
	PhotoPath     string    `db:"photo_path" json:"photo_path"`
	SignaturePath string    `db:"signature_path" json:"signature_path"`
	MarksheetPath string    `db:"marksheet_path" json:"marksheet_path"`
	Status        string    `db:"status" json:"status"`
	UniqueID      *string   `db:"unique_id" json:"unique_id"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// PendingApplication is the admin review view with the field aliases the
// frontend expects.
type PendingApplication struct {
	ID           int64  `db:"id" json:"id"`
	FullName     string `db:"full_name" json:"fullName"`
	RollNo       string `db:"roll_no" json:"rollNo"`
	Department   string `db:"department" json:"dept"`
	FatherName   string `db:"father_name" json:"fatherName"`
	MotherName   string `db:"mother_name" json:"motherName"`
	PhotoPath    string `db:"photo_path" json:"photo"`
	MarksheetImg string `db:"marksheet_path" json:"marksheet"`
	AcademicYear string `db:"academic_year" json:"academic_year"`
	Phone        string `db:"phone" json:"phone"`
}

// ApplyIDRequest carries the multipart form fields of an application.
// Files travel separately.
type ApplyIDRequest struct {
	Email        string `form:"email" validate:"required"`
	FullName     string `form:"fullName" validate:"required"`
	RollNo       string `form:"rollNo" validate:"required"`
	Department   string `form:"dept" validate:"required"`
	AcademicYear string `form:"year" validate:"required"`
	FatherName   string `form:"fatherName"`
	MotherName   string `form:"motherName"`
	Phone        string `form:"phone"`
	Gender       string `form:"gender"`
}

// FullEditIDRequest carries the admin edit form. Replacement photo and
// marksheet files are optional.
type FullEditIDRequest struct {
	ID           int64  `form:"id" validate:"required"`
	FullName     string `form:"fullName"`
	RollNo       string `form:"rollNo"`
	FatherName   string `form:"fatherName"`
	MotherName   string `form:"motherName"`
	Department   string `form:"dept"`
	AcademicYear string `form:"year"`
	Phone        string `form:"phone"`
}

// UpdateIDStatusRequest moves an application through its lifecycle.
type UpdateIDStatusRequest struct {
	ID     int64  `json:"id" validate:"required"`
	Status string `json:"status" validate:"required"`
}
