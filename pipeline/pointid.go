package pipeline

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hearthware/wellness-core/document"
)

// pointNamespace seeds deterministic point ids. Changing it orphans every
// existing point, so it is fixed for the lifetime of the collection.
var pointNamespace = uuid.MustParse("9f2c1d66-5b6e-4c80-a1da-73c2a3f4b9e1")

// PointID derives the vector point identity for one chunk. The id is a
// UUIDv5 over (document_type, source_id, chunk_index), so re-running the
// pipeline for an unchanged document overwrites its points instead of
// duplicating them.
func PointID(t document.Type, sourceID string, chunkIndex int) string {
	name := fmt.Sprintf("%s:%s:%d", t, sourceID, chunkIndex)
	return uuid.NewSHA1(pointNamespace, []byte(name)).String()
}
