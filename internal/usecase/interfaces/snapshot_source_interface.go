package interfaces

import "medpipeline/internal/domain/entities"

// ISnapshotSource provides a copy of the current in-memory record set for
// read-only consumers such as the aggregation views and the export writer.
type ISnapshotSource interface {
	Snapshot() []entities.Opportunity
}
