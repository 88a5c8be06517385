package mapper

import "github.com/campus-showcase/showcase-api/internal/models"

// Filter decodes records into entities, dropping every record without an identity.
// It returns the entities in input order together with the number of records dropped.
func Filter[R models.Record[R], D any](records []R, codec *Codec[R, D]) ([]D, int) {
	entities := make([]D, 0, len(records))
	skipped := 0
	for _, r := range records {
		d, ok := codec.ToDomain(r)
		if !ok {
			skipped++
			continue
		}
		entities = append(entities, d)
	}
	return entities, skipped
}
