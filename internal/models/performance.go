package models

// Participation is a participant entry enriched with its activity and score.
type Participation struct {
	ParticipantID string `json:"participantId"`
	ActivityID    string `json:"activityId"`
	ActivityName  string `json:"activityName"`
	ActivityDate  Date   `json:"activityDate"`
	Department    string `json:"department"`
	College       string `json:"college"`
	Award         Award  `json:"award"`
	Marks         int    `json:"marks"`
}

// PerformanceSummary aggregates every participation of a student.
type PerformanceSummary struct {
	Student        Student         `json:"student"`
	Participations []Participation `json:"participations"`
	TotalMarks     int             `json:"totalMarks"`
}
