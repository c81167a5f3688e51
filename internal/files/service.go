package files

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrMissingName     = errors.New("missing name")
	ErrMissingType     = errors.New("missing type")
	ErrInvalidType     = errors.New("invalid type")
	ErrMissingData     = errors.New("missing data")
	ErrInvalidData     = errors.New("data is not valid base64")
	ErrParentNotFound  = errors.New("parent not found")
	ErrParentNotFolder = errors.New("parent is not a folder")
	ErrNotFound        = errors.New("file not found")
)

// CreateParams carries the client-supplied fields of an upload.
// Data holds the base64-encoded payload for non-folder types.
type CreateParams struct {
	Name     string
	Type     string
	ParentID string
	IsPublic bool
	Data     string
}

// Service is the file registry: metadata CRUD with ownership and
// parent/folder checks. It owns no HTTP concerns.
type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{
		repo:    repo,
		storage: storage,
	}
}

// Create validates and persists a new record. Non-folder payloads are
// decoded and materialized to disk first; the resulting path is kept
// internal to the record.
func (s *Service) Create(ctx context.Context, ownerID string, p CreateParams) (*FileRecord, error) {
	if p.Name == "" {
		return nil, ErrMissingName
	}
	if p.Type == "" {
		return nil, ErrMissingType
	}
	if !ValidType(p.Type) {
		return nil, ErrInvalidType
	}
	if p.Type != TypeFolder && p.Data == "" {
		return nil, ErrMissingData
	}

	parentID := p.ParentID
	if parentID == "" {
		parentID = RootParent
	}

	if parentID != RootParent {
		parent, err := s.repo.GetByID(ctx, parentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrParentNotFound
		}
		if parent.Type != TypeFolder {
			return nil, ErrParentNotFolder
		}
	}

	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, fmt.Errorf("files: malformed owner id %q: %w", ownerID, err)
	}

	rec := &FileRecord{
		UserID:   owner,
		Name:     p.Name,
		Type:     p.Type,
		IsPublic: p.IsPublic,
		ParentID: parentID,
	}

	if p.Type != TypeFolder {
		payload, err := base64.StdEncoding.DecodeString(p.Data)
		if err != nil {
			return nil, ErrInvalidData
		}

		path, err := s.storage.Save(payload)
		if err != nil {
			return nil, err
		}
		rec.LocalPath = path
	}

	if err := s.repo.Insert(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// Get returns the record only to its owner. A record owned by another
// user reports ErrNotFound, never a distinguishable "forbidden".
func (s *Service) Get(ctx context.Context, ownerID, id string) (*FileRecord, error) {
	rec, err := s.repo.GetOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

// List returns one page of the owner's records under parentID.
// An ill-formed parentID yields an empty page, not an error.
func (s *Service) List(ctx context.Context, ownerID, parentID string, page int64) ([]FileRecord, error) {
	if parentID == "" {
		parentID = RootParent
	}
	if page < 0 {
		page = 0
	}

	if parentID != RootParent {
		if _, err := primitive.ObjectIDFromHex(parentID); err != nil {
			return []FileRecord{}, nil
		}
	}

	return s.repo.List(ctx, ownerID, parentID, page)
}

// SetVisibility flips isPublic under the same ownership rules as Get.
// Repeating the same value is not an error.
func (s *Service) SetVisibility(ctx context.Context, ownerID, id string, public bool) (*FileRecord, error) {
	rec, err := s.repo.GetOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}

	if err := s.repo.SetPublic(ctx, rec.ID.Hex(), public); err != nil {
		return nil, err
	}

	rec.IsPublic = public
	return rec, nil
}
