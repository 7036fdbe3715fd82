package models

// TimetableEntry is one scheduled slot. Entries are independent rows with
// no reference to enrolled users.
type TimetableEntry struct {
	ID       int64  `db:"id" json:"id"`
	Course   string `db:"course" json:"course"`
	YearSem  string `db:"year_sem" json:"year"`
	TimeSlot string `db:"time_slot" json:"time"`
	Subject  string `db:"subject" json:"subject"`
	RoomNo   string `db:"room_no" json:"room"`
}

// AddTimetableRequest is the admin payload for a new slot.
type AddTimetableRequest struct {
	Course  string `json:"course" validate:"required"`
	Year    string `json:"year" validate:"required"`
	Time    string `json:"time" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Room    string `json:"room" validate:"required"`
}

// DeleteTimetableRequest removes a slot by id.
type DeleteTimetableRequest struct {
	ID int64 `json:"id" validate:"required"`
}
