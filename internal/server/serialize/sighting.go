package serialize

import "github.com/dmitrijs2005/birdlog/internal/server/models"

// Canonical field names of a sighting payload, in serialization order.
const (
	FieldID        = "id"
	FieldName      = "name"
	FieldSpecies   = "species"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// Sighting builds the payload for a single sighting, narrowed by policy.
// Timestamps marshal through time.Time's RFC 3339 JSON encoding.
func Sighting(s *models.Sighting, policy FieldPolicy) Payload {
	full := Payload{
		{Name: FieldID, Value: s.ID},
		{Name: FieldName, Value: s.Name},
		{Name: FieldSpecies, Value: s.Species},
		{Name: FieldCreatedAt, Value: s.CreatedAt.UTC()},
		{Name: FieldUpdatedAt, Value: s.UpdatedAt.UTC()},
	}
	return full.Filter(policy)
}

// Sightings serializes a collection, one payload per record, preserving
// input order. Empty or nil input yields an empty, non-nil slice so the
// API renders [] rather than null.
func Sightings(list []*models.Sighting, policy FieldPolicy) []Payload {
	out := make([]Payload, 0, len(list))
	for _, s := range list {
		out = append(out, Sighting(s, policy))
	}
	return out
}
