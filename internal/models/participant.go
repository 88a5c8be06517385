package models

// Award is the result a participant achieved in an activity.
type Award string

const (
	AwardFirst         Award = "1st Place"
	AwardSecond        Award = "2nd Place"
	AwardThird         Award = "3rd Place"
	AwardParticipation Award = "Participation"
)

var awardMarks = map[Award]int{
	AwardFirst:         10,
	AwardSecond:        7,
	AwardThird:         5,
	AwardParticipation: 2,
}

// Marks returns the score earned for the award. Unknown awards earn nothing and report false.
func (a Award) Marks() (int, bool) {
	marks, ok := awardMarks[a]
	return marks, ok
}

// Departments accepted for participants.
var Departments = []string{"CSE", "ECE", "IT", "EEE", "MECH", "CIVIL", "MBA", "MCA", "OTHER"}

// Participant records a student's entry in an activity.
type Participant struct {
	ID         string `json:"id"`
	ActivityID string `json:"activityId" validate:"required,numeric"`
	Name       string `json:"name" validate:"required,max=200"`
	RollNumber string `json:"rollNumber" validate:"required,max=50"`
	Department string `json:"department" validate:"required,oneof=CSE ECE IT EEE MECH CIVIL MBA MCA OTHER"`
	College    string `json:"college" validate:"required,max=200"`
	Award      Award  `json:"award" validate:"required,oneof='1st Place' '2nd Place' '3rd Place' Participation"`
}

// ParticipantFilter narrows participant listings.
type ParticipantFilter struct {
	ActivityID string
	RollNumber string
}
