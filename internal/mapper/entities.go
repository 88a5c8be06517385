package mapper

import (
	"github.com/lib/pq"

	"github.com/campus-showcase/showcase-api/internal/models"
)

// Collection names shared by every backend.
const (
	CollectionWinners      = "winners"
	CollectionActivities   = "activities"
	CollectionGallery      = "gallery"
	CollectionParticipants = "participants"
	CollectionStudents     = "students"
)

type (
	winnerField      = Field[models.WinnerRecord, models.Winner]
	activityField    = Field[models.ActivityRecord, models.Activity]
	galleryField     = Field[models.GalleryRecord, models.GalleryImage]
	participantField = Field[models.ParticipantRecord, models.Participant]
	studentField     = Field[models.StudentRecord, models.Student]
)

var winnerFields = []winnerField{
	{"name",
		func(r *models.WinnerRecord, d *models.Winner) { d.Name = value(r.Name) },
		func(d *models.Winner, r *models.WinnerRecord) { r.Name = required(d.Name) }},
	{"roll_number",
		func(r *models.WinnerRecord, d *models.Winner) { d.RollNumber = value(r.RollNumber) },
		func(d *models.Winner, r *models.WinnerRecord) { r.RollNumber = optional(d.RollNumber) }},
	{"event",
		func(r *models.WinnerRecord, d *models.Winner) { d.Event = value(r.Event) },
		func(d *models.Winner, r *models.WinnerRecord) { r.Event = required(d.Event) }},
	{"date",
		func(r *models.WinnerRecord, d *models.Winner) { d.Date = dateFrom(r.Date) },
		func(d *models.Winner, r *models.WinnerRecord) { r.Date = timeFrom(d.Date) }},
	{"photo_url",
		func(r *models.WinnerRecord, d *models.Winner) { d.Photo = value(r.PhotoURL) },
		func(d *models.Winner, r *models.WinnerRecord) { r.PhotoURL = optional(d.Photo) }},
	{"year",
		func(r *models.WinnerRecord, d *models.Winner) { d.Year = value(r.Year) },
		func(d *models.Winner, r *models.WinnerRecord) { r.Year = required(d.Year) }},
	{"is_week_winner",
		func(r *models.WinnerRecord, d *models.Winner) { d.IsThisWeekWinner = r.IsWeekWinner != nil && *r.IsWeekWinner },
		func(d *models.Winner, r *models.WinnerRecord) {
			v := d.IsThisWeekWinner
			r.IsWeekWinner = &v
		}},
	{"position",
		func(r *models.WinnerRecord, d *models.Winner) { d.Position = copyInt(r.Position) },
		func(d *models.Winner, r *models.WinnerRecord) { r.Position = copyInt(d.Position) }},
	{"activity_type",
		func(r *models.WinnerRecord, d *models.Winner) {
			d.ActivityType = value(r.ActivityType)
			if d.ActivityType == "" {
				d.ActivityType = models.DefaultActivityType
			}
		},
		func(d *models.Winner, r *models.WinnerRecord) { r.ActivityType = optional(d.ActivityType) }},
	{"week_number",
		func(r *models.WinnerRecord, d *models.Winner) { d.WeekNumber = copyInt(r.WeekNumber) },
		func(d *models.Winner, r *models.WinnerRecord) { r.WeekNumber = copyInt(d.WeekNumber) }},
}

var activityFields = []activityField{
	{"title",
		func(r *models.ActivityRecord, d *models.Activity) { d.Name = value(r.Title) },
		func(d *models.Activity, r *models.ActivityRecord) { r.Title = required(d.Name) }},
	{"activity_date",
		func(r *models.ActivityRecord, d *models.Activity) { d.Date = dateFrom(r.ActivityDate) },
		func(d *models.Activity, r *models.ActivityRecord) { r.ActivityDate = timeFrom(d.Date) }},
	{"description",
		func(r *models.ActivityRecord, d *models.Activity) { d.Description = value(r.Description) },
		func(d *models.Activity, r *models.ActivityRecord) { r.Description = optional(d.Description) }},
	{"status",
		func(r *models.ActivityRecord, d *models.Activity) { d.Status = models.ActivityStatus(value(r.Status)) },
		func(d *models.Activity, r *models.ActivityRecord) { r.Status = required(string(d.Status)) }},
	{"poster_url",
		func(r *models.ActivityRecord, d *models.Activity) { d.Poster = value(r.PosterURL) },
		func(d *models.Activity, r *models.ActivityRecord) { r.PosterURL = optional(d.Poster) }},
	{"photos",
		func(r *models.ActivityRecord, d *models.Activity) {
			if len(r.Photos) > 0 {
				d.Photos = append([]string(nil), r.Photos...)
			}
		},
		func(d *models.Activity, r *models.ActivityRecord) {
			if len(d.Photos) > 0 {
				r.Photos = append(pq.StringArray(nil), d.Photos...)
			}
		}},
	{"details",
		func(r *models.ActivityRecord, d *models.Activity) { d.Details = value(r.Details) },
		func(d *models.Activity, r *models.ActivityRecord) { r.Details = optional(d.Details) }},
	{"form_link",
		func(r *models.ActivityRecord, d *models.Activity) { d.FormLink = value(r.FormLink) },
		func(d *models.Activity, r *models.ActivityRecord) { r.FormLink = optional(d.FormLink) }},
}

var galleryFields = []galleryField{
	{"image_url",
		func(r *models.GalleryRecord, d *models.GalleryImage) { d.URL = value(r.ImageURL) },
		func(d *models.GalleryImage, r *models.GalleryRecord) { r.ImageURL = required(d.URL) }},
	{"title",
		func(r *models.GalleryRecord, d *models.GalleryImage) { d.Caption = value(r.Title) },
		func(d *models.GalleryImage, r *models.GalleryRecord) { r.Title = optional(d.Caption) }},
}

var participantFields = []participantField{
	{"activity_id",
		func(r *models.ParticipantRecord, d *models.Participant) {
			if r.ActivityID != nil {
				d.ActivityID = FormatKey(*r.ActivityID)
			}
		},
		func(d *models.Participant, r *models.ParticipantRecord) {
			if key, ok := ParseKey(d.ActivityID); ok {
				r.ActivityID = &key
			}
		}},
	{"name",
		func(r *models.ParticipantRecord, d *models.Participant) { d.Name = value(r.Name) },
		func(d *models.Participant, r *models.ParticipantRecord) { r.Name = required(d.Name) }},
	{"roll_number",
		func(r *models.ParticipantRecord, d *models.Participant) { d.RollNumber = value(r.RollNumber) },
		func(d *models.Participant, r *models.ParticipantRecord) { r.RollNumber = required(d.RollNumber) }},
	{"department",
		func(r *models.ParticipantRecord, d *models.Participant) { d.Department = value(r.Department) },
		func(d *models.Participant, r *models.ParticipantRecord) { r.Department = required(d.Department) }},
	{"college",
		func(r *models.ParticipantRecord, d *models.Participant) { d.College = value(r.College) },
		func(d *models.Participant, r *models.ParticipantRecord) { r.College = required(d.College) }},
	{"award",
		func(r *models.ParticipantRecord, d *models.Participant) { d.Award = models.Award(value(r.Award)) },
		func(d *models.Participant, r *models.ParticipantRecord) { r.Award = required(string(d.Award)) }},
}

var studentFields = []studentField{
	{"pin",
		func(r *models.StudentRecord, d *models.Student) { d.PIN = value(r.PIN) },
		func(d *models.Student, r *models.StudentRecord) { r.PIN = required(d.PIN) }},
	{"name",
		func(r *models.StudentRecord, d *models.Student) { d.Name = value(r.Name) },
		func(d *models.Student, r *models.StudentRecord) { r.Name = required(d.Name) }},
	{"branch",
		func(r *models.StudentRecord, d *models.Student) { d.Branch = value(r.Branch) },
		func(d *models.Student, r *models.StudentRecord) { r.Branch = required(d.Branch) }},
	{"year",
		func(r *models.StudentRecord, d *models.Student) { d.Year = value(r.Year) },
		func(d *models.Student, r *models.StudentRecord) { r.Year = required(d.Year) }},
	{"section",
		func(r *models.StudentRecord, d *models.Student) { d.Section = value(r.Section) },
		func(d *models.Student, r *models.StudentRecord) { r.Section = required(d.Section) }},
}

// Winners returns the codec of the winners collection.
func Winners() *Codec[models.WinnerRecord, models.Winner] {
	return &Codec[models.WinnerRecord, models.Winner]{
		collection: CollectionWinners,
		fields:     winnerFields,
		identity:   numericIdentity[models.WinnerRecord],
		getID:      func(d *models.Winner) string { return d.ID },
		setID:      func(d *models.Winner, id string) { d.ID = id },
		numericIDs: true,
	}
}

// Activities returns the codec of the activities collection.
func Activities() *Codec[models.ActivityRecord, models.Activity] {
	return &Codec[models.ActivityRecord, models.Activity]{
		collection: CollectionActivities,
		fields:     activityFields,
		identity:   numericIdentity[models.ActivityRecord],
		getID:      func(d *models.Activity) string { return d.ID },
		setID:      func(d *models.Activity, id string) { d.ID = id },
		numericIDs: true,
	}
}

// Gallery returns the codec of the gallery collection.
func Gallery() *Codec[models.GalleryRecord, models.GalleryImage] {
	return &Codec[models.GalleryRecord, models.GalleryImage]{
		collection: CollectionGallery,
		fields:     galleryFields,
		identity:   numericIdentity[models.GalleryRecord],
		getID:      func(d *models.GalleryImage) string { return d.ID },
		setID:      func(d *models.GalleryImage, id string) { d.ID = id },
		numericIDs: true,
	}
}

// Participants returns the codec of the participants collection.
func Participants() *Codec[models.ParticipantRecord, models.Participant] {
	return &Codec[models.ParticipantRecord, models.Participant]{
		collection: CollectionParticipants,
		fields:     participantFields,
		identity:   numericIdentity[models.ParticipantRecord],
		getID:      func(d *models.Participant) string { return d.ID },
		setID:      func(d *models.Participant, id string) { d.ID = id },
		numericIDs: true,
	}
}

// Students returns the codec of the student roster. Students are identified by PIN;
// a record without a storage id or without a PIN has no identity.
func Students() *Codec[models.StudentRecord, models.Student] {
	return &Codec[models.StudentRecord, models.Student]{
		collection: CollectionStudents,
		fields:     studentFields,
		identity: func(r *models.StudentRecord) string {
			if _, ok := r.RecordID(); !ok {
				return ""
			}
			return value(r.PIN)
		},
		getID: func(d *models.Student) string { return d.ID },
		setID: func(d *models.Student, id string) { d.ID = id },
	}
}
