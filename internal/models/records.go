package models

import (
	"time"

	"github.com/lib/pq"
)

// Record is a storage row carrying a store-assigned numeric identity.
// Every column is nullable; RecordID reports false for a missing or zero id.
type Record[R any] interface {
	RecordID() (int64, bool)
	WithRecordID(id int64) R
}

func recordID(id *int64) (int64, bool) {
	if id == nil || *id <= 0 {
		return 0, false
	}
	return *id, true
}

// WinnerRecord is the storage shape of the winners collection.
type WinnerRecord struct {
	ID           *int64     `db:"id" json:"id"`
	Name         *string    `db:"name" json:"name"`
	RollNumber   *string    `db:"roll_number" json:"roll_number"`
	Event        *string    `db:"event" json:"event"`
	Date         *time.Time `db:"date" json:"date"`
	PhotoURL     *string    `db:"photo_url" json:"photo_url"`
	Year         *string    `db:"year" json:"year"`
	IsWeekWinner *bool      `db:"is_week_winner" json:"is_week_winner"`
	Position     *int       `db:"position" json:"position"`
	ActivityType *string    `db:"activity_type" json:"activity_type"`
	WeekNumber   *int       `db:"week_number" json:"week_number"`
}

func (r WinnerRecord) RecordID() (int64, bool) { return recordID(r.ID) }

func (r WinnerRecord) WithRecordID(id int64) WinnerRecord {
	r.ID = &id
	return r
}

// ActivityRecord is the storage shape of the activities collection.
type ActivityRecord struct {
	ID           *int64         `db:"id" json:"id"`
	Title        *string        `db:"title" json:"title"`
	ActivityDate *time.Time     `db:"activity_date" json:"activity_date"`
	Description  *string        `db:"description" json:"description"`
	Status       *string        `db:"status" json:"status"`
	PosterURL    *string        `db:"poster_url" json:"poster_url"`
	Photos       pq.StringArray `db:"photos" json:"photos"`
	Details      *string        `db:"details" json:"details"`
	FormLink     *string        `db:"form_link" json:"form_link"`
}

func (r ActivityRecord) RecordID() (int64, bool) { return recordID(r.ID) }

func (r ActivityRecord) WithRecordID(id int64) ActivityRecord {
	r.ID = &id
	return r
}

// GalleryRecord is the storage shape of the gallery collection.
type GalleryRecord struct {
	ID       *int64  `db:"id" json:"id"`
	ImageURL *string `db:"image_url" json:"image_url"`
	Title    *string `db:"title" json:"title"`
}

func (r GalleryRecord) RecordID() (int64, bool) { return recordID(r.ID) }

func (r GalleryRecord) WithRecordID(id int64) GalleryRecord {
	r.ID = &id
	return r
}

// ParticipantRecord is the storage shape of the participants collection.
type ParticipantRecord struct {
	ID         *int64  `db:"id" json:"id"`
	ActivityID *int64  `db:"activity_id" json:"activity_id"`
	Name       *string `db:"name" json:"name"`
	RollNumber *string `db:"roll_number" json:"roll_number"`
	Department *string `db:"department" json:"department"`
	College    *string `db:"college" json:"college"`
	Award      *string `db:"award" json:"award"`
}

func (r ParticipantRecord) RecordID() (int64, bool) { return recordID(r.ID) }

func (r ParticipantRecord) WithRecordID(id int64) ParticipantRecord {
	r.ID = &id
	return r
}

// StudentRecord is the storage shape of the student roster.
type StudentRecord struct {
	ID      *int64  `db:"id" json:"id"`
	PIN     *string `db:"pin" json:"pin"`
	Name    *string `db:"name" json:"name"`
	Branch  *string `db:"branch" json:"branch"`
	Year    *string `db:"year" json:"year"`
	Section *string `db:"section" json:"section"`
}

func (r StudentRecord) RecordID() (int64, bool) { return recordID(r.ID) }

func (r StudentRecord) WithRecordID(id int64) StudentRecord {
	r.ID = &id
	return r
}
