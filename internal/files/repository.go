package files

import "context"

// Repository persists file metadata in the document store.
// Lookups return (nil, nil) when no matching record exists, including
// when the supplied identifier is not well-formed.
type Repository interface {
	Insert(ctx context.Context, f *FileRecord) error

	// GetByID looks a record up regardless of owner. Used for
	// parent/folder checks only.
	GetByID(ctx context.Context, id string) (*FileRecord, error)

	// GetOwned looks a record up scoped to its owner. A record owned
	// by someone else is indistinguishable from a missing one.
	GetOwned(ctx context.Context, id, ownerID string) (*FileRecord, error)

	List(ctx context.Context, ownerID, parentID string, page int64) ([]FileRecord, error)

	SetPublic(ctx context.Context, id string, public bool) error
}

// Storage materializes decoded payloads outside the document store.
type Storage interface {
	Save(data []byte) (string, error)
}
