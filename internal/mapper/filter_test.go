package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-showcase/showcase-api/internal/models"
)

func TestFilterDropsRecordsWithoutIdentity(t *testing.T) {
	one := int64(1)
	zero := int64(0)
	records := []models.WinnerRecord{
		{ID: &one, Name: strPtr("Test Winner"), Event: strPtr("Test Event"), Year: strPtr("2025")},
		{ID: nil, Name: strPtr("Invalid Winner"), Event: strPtr("Invalid Event"), Year: strPtr("2025")},
		{ID: &zero, Name: strPtr("Zero Winner")},
	}

	winners, skipped := Filter(records, Winners())
	require.Len(t, winners, 1)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, "1", winners[0].ID)
	assert.Equal(t, "Test Winner", winners[0].Name)
}

func TestFilterKeepsOrderAndDropsStudentsWithoutPIN(t *testing.T) {
	records := []models.StudentRecord{
		models.StudentRecord{PIN: strPtr("B2"), Name: strPtr("Second")}.WithRecordID(2),
		models.StudentRecord{Name: strPtr("No PIN")}.WithRecordID(3),
		models.StudentRecord{PIN: strPtr("A1"), Name: strPtr("First")}.WithRecordID(1),
	}

	students, skipped := Filter(records, Students())
	assert.Equal(t, 1, skipped)
	require.Len(t, students, 2)
	assert.Equal(t, "B2", students[0].ID)
	assert.Equal(t, "A1", students[1].ID)
}

func TestFilterEmpty(t *testing.T) {
	activities, skipped := Filter(nil, Activities())
	assert.Empty(t, activities)
	assert.Zero(t, skipped)
}
