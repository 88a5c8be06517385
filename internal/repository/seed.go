package repository

import (
	"time"

	"github.com/lib/pq"

	"github.com/campus-showcase/showcase-api/internal/models"
)

const (
	seedPhoto  = "/api/placeholder/150/150"
	seedPoster = "/api/placeholder/400/600"
	seedShot   = "/api/placeholder/400/300"
)

func str(s string) *string { return &s }

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func flag(b bool) *bool { return &b }

func shots(n int) pq.StringArray {
	out := make(pq.StringArray, n)
	for i := range out {
		out[i] = seedShot
	}
	return out
}

// SeedWinners returns the showcase winners loaded into an empty local store.
func SeedWinners() []models.WinnerRecord {
	winner := func(name, event, date, year string, thisWeek bool) models.WinnerRecord {
		return models.WinnerRecord{
			Name:         str(name),
			Event:        str(event),
			Date:         day(date),
			PhotoURL:     str(seedPhoto),
			Year:         str(year),
			IsWeekWinner: flag(thisWeek),
			ActivityType: str(models.DefaultActivityType),
		}
	}
	return []models.WinnerRecord{
		winner("Yamini CSE-4", "Code Quest 2024", "2024-01-15", "2024", true),
		winner("Priya Patel", "Algorithm Championship", "2024-01-10", "2024", true),
		winner("Arjun Reddy", "Web Design Competition", "2024-01-08", "2024", true),
		winner("Sneha Gupta", "Data Science Challenge", "2023-12-20", "2023", false),
		winner("Kiran Kumar", "Mobile App Contest", "2023-12-15", "2023", false),
		winner("Anita Singh", "AI Innovation Summit", "2023-12-10", "2023", false),
	}
}

// SeedActivities returns the showcase activities loaded into an empty local store.
func SeedActivities() []models.ActivityRecord {
	upcoming := string(models.ActivityStatusUpcoming)
	completed := string(models.ActivityStatusCompleted)
	return []models.ActivityRecord{
		{
			Title:        str("Tech Symposium 2024"),
			ActivityDate: day("2024-02-15"),
			Description:  str("A comprehensive technical symposium featuring presentations on cutting-edge technologies in computer science and engineering."),
			Status:       &upcoming,
			PosterURL:    str(seedPoster),
		},
		{
			Title:        str("Hackathon Weekend"),
			ActivityDate: day("2024-02-20"),
			Description:  str("48-hour coding marathon where students compete to build innovative solutions to real-world problems."),
			Status:       &upcoming,
			PosterURL:    str(seedPoster),
		},
		{
			Title:        str("Industry Expert Talk"),
			ActivityDate: day("2024-02-25"),
			Description:  str("Guest lecture by industry professionals sharing insights on current trends and career opportunities in technology."),
			Status:       &upcoming,
		},
		{
			Title:        str("Code Quest 2024"),
			ActivityDate: day("2024-01-15"),
			Description:  str("Programming competition testing algorithmic thinking and coding skills across multiple programming languages."),
			Status:       &completed,
			Photos:       shots(3),
		},
		{
			Title:        str("Algorithm Championship"),
			ActivityDate: day("2024-01-10"),
			Description:  str("Advanced algorithm design and optimization competition for senior students."),
			Status:       &completed,
			Photos:       shots(2),
		},
		{
			Title:        str("Web Design Competition"),
			ActivityDate: day("2024-01-08"),
			Description:  str("Creative web design contest focusing on user experience and modern design principles."),
			Status:       &completed,
			Photos:       shots(4),
		},
	}
}
