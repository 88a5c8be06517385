package repository

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/campus-showcase/showcase-api/internal/mapper"
	"github.com/campus-showcase/showcase-api/internal/models"
)

// Stores bundles the collection of every record type.
type Stores struct {
	Winners      Collection[models.WinnerRecord]
	Activities   Collection[models.ActivityRecord]
	Gallery      Collection[models.GalleryRecord]
	Participants Collection[models.ParticipantRecord]
	Students     Collection[models.StudentRecord]
}

// OpenLocalStores opens the snapshot-backed collections. Winners and activities
// receive the showcase seed data when seed is set and they are empty.
func OpenLocalStores(store SnapshotStore, seed bool, logger *zap.Logger) (*Stores, error) {
	var (
		winnerSeed   []models.WinnerRecord
		activitySeed []models.ActivityRecord
	)
	if seed {
		winnerSeed = SeedWinners()
		activitySeed = SeedActivities()
	}

	winners, err := OpenLocalCollection(mapper.CollectionWinners, store, winnerSeed, logger)
	if err != nil {
		return nil, err
	}
	activities, err := OpenLocalCollection(mapper.CollectionActivities, store, activitySeed, logger)
	if err != nil {
		return nil, err
	}
	gallery, err := OpenLocalCollection[models.GalleryRecord](mapper.CollectionGallery, store, nil, logger)
	if err != nil {
		return nil, err
	}
	participants, err := OpenLocalCollection[models.ParticipantRecord](mapper.CollectionParticipants, store, nil, logger)
	if err != nil {
		return nil, err
	}
	students, err := OpenLocalCollection[models.StudentRecord](mapper.CollectionStudents, store, nil, logger)
	if err != nil {
		return nil, err
	}

	return &Stores{
		Winners:      winners,
		Activities:   activities,
		Gallery:      gallery,
		Participants: participants,
		Students:     students,
	}, nil
}

// NewSQLStores builds the PostgreSQL-backed collections. Column lists come from the codecs.
func NewSQLStores(db *sqlx.DB) *Stores {
	return &Stores{
		Winners:      NewSQLCollection[models.WinnerRecord](db, mapper.CollectionWinners, mapper.Winners().Columns()),
		Activities:   NewSQLCollection[models.ActivityRecord](db, mapper.CollectionActivities, mapper.Activities().Columns()),
		Gallery:      NewSQLCollection[models.GalleryRecord](db, mapper.CollectionGallery, mapper.Gallery().Columns()),
		Participants: NewSQLCollection[models.ParticipantRecord](db, mapper.CollectionParticipants, mapper.Participants().Columns()),
		Students:     NewSQLCollection[models.StudentRecord](db, mapper.CollectionStudents, mapper.Students().Columns()),
	}
}

// Decorate wraps every collection with metrics and change notification. Observation
// sits outside notification so recorded latency includes subscriber work.
func (s *Stores) Decorate(observer OperationObserver, publisher Publisher) *Stores {
	return &Stores{
		Winners:      decorate(s.Winners, observer, publisher),
		Activities:   decorate(s.Activities, observer, publisher),
		Gallery:      decorate(s.Gallery, observer, publisher),
		Participants: decorate(s.Participants, observer, publisher),
		Students:     decorate(s.Students, observer, publisher),
	}
}

func decorate[R models.Record[R]](c Collection[R], observer OperationObserver, publisher Publisher) Collection[R] {
	return NewInstrumentedCollection[R](NewNotifyingCollection[R](c, publisher), observer)
}
