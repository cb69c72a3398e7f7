package serialize

const SightingObjectName = "sighting"

// DeletedObjectResponse confirms a deletion without echoing record fields.
type DeletedObjectResponse struct {
	Object  string `json:"object"`
	ID      int64  `json:"id"`
	Deleted bool   `json:"deleted"`
}

func DeletedObject(id int64) *DeletedObjectResponse {
	return &DeletedObjectResponse{
		Object:  SightingObjectName,
		ID:      id,
		Deleted: true,
	}
}
