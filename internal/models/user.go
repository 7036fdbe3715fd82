package models

import "encoding/json"

// GuestRoll is the sentinel roll number exempt from the length rule and the
// per-course uniqueness constraint.
const GuestRoll = "GUEST"

// MinRollLength is the minimum accepted roll number length.
const MinRollLength = 8

// User is a registered student account. Passwords are stored exactly as
// issued; see the design notes on the inherited credential model.
type User struct {
	Email         string `db:"email" json:"email"`
	Password      string `db:"password" json:"-"`
	Name          string `db:"name" json:"name"`
	DOB           string `db:"dob" json:"dob"`
	Roll          string `db:"roll" json:"roll"`
	Course        string `db:"course" json:"course"`
	Phone         string `db:"phone" json:"phone"`
	Attendance    string `db:"attendance" json:"attendance"`
	InternalGrade string `db:"internal_grade" json:"internal_grade"`
}

// RegisterRequest is the payload for POST /register.
type RegisterRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Roll   string `json:"roll" validate:"required"`
	Course string `json:"course" validate:"required"`
	Name   string `json:"name"`
	DOB    string `json:"dob"`
	Phone  string `json:"phone"`
}

// RegisterResponse returns the issued credentials.
type RegisterResponse struct {
	Success  bool   `json:"success"`
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// LoginRequest is the payload for POST /login. Both fields are allowed to
// be empty; missing credentials simply fail the lookup.
type LoginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// LoginResponse reports the outcome of a login attempt.
type LoginResponse struct {
	Success  bool   `json:"success"`
	UserName string `json:"userName"`
	IsAdmin  bool   `json:"isAdmin"`
}

// ForgotPasswordRequest looks up the stored password by email.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

// ForgotUserIDRequest recovers an email from identity fields. Name is
// optional; matching is case-insensitive.
type ForgotUserIDRequest struct {
	Name   string `json:"name"`
	Roll   string `json:"roll" validate:"required"`
	Course string `json:"course" validate:"required"`
}

// ProfileRequest identifies the profile to read.
type ProfileRequest struct {
	Email string `json:"email" validate:"required"`
}

// Profile is the student-visible slice of a user row.
type Profile struct {
	Name          string `db:"name" json:"name"`
	Roll          string `db:"roll" json:"roll"`
	Course        string `db:"course" json:"course"`
	Phone         string `db:"phone" json:"phone"`
	Attendance    string `db:"attendance" json:"attendance"`
	InternalGrade string `db:"internal_grade" json:"internal_grade"`
}

// UpdateProfileRequest overwrites the mutable profile fields.
type UpdateProfileRequest struct {
	Email  string `json:"email" validate:"required"`
	Name   string `json:"name"`
	Roll   string `json:"roll"`
	Course string `json:"course"`
	Phone  string `json:"phone"`
}

// AdminUser is the admin roster view of a user row.
type AdminUser struct {
	Name          string `db:"name" json:"name"`
	Email         string `db:"email" json:"email"`
	Roll          string `db:"roll" json:"roll"`
	Course        string `db:"course" json:"course"`
	Phone         string `db:"phone" json:"phone"`
	DOB           string `db:"dob" json:"dob"`
	Attendance    string `db:"attendance" json:"attendance"`
	InternalGrade string `db:"internal_grade" json:"internal_grade"`
}

// UpdateAttendanceRequest sets attendance and internal grade for a user.
type UpdateAttendanceRequest struct {
	Email      string      `json:"email" validate:"required"`
	Attendance json.Number `json:"attendance" validate:"required"`
	Grade      json.Number `json:"grade" validate:"required"`
}

// DeleteUserRequest removes a user row by email.
type DeleteUserRequest struct {
	Email string `json:"email" validate:"required"`
}
