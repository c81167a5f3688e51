package files

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	TypeFolder = "folder"
	TypeFile   = "file"
	TypeImage  = "image"
)

// RootParent is the reserved parentId meaning "no parent / top-level".
const RootParent = "0"

// PageSize is the fixed number of records returned per list page.
const PageSize = 20

// FileRecord is the metadata entry for a folder, file, or image.
// LocalPath is where the decoded payload lives on disk; it is never
// serialized in a response.
type FileRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Name      string             `bson:"name" json:"name"`
	Type      string             `bson:"type" json:"type"`
	IsPublic  bool               `bson:"isPublic" json:"isPublic"`
	ParentID  string             `bson:"parentId" json:"parentId"`
	LocalPath string             `bson:"localPath,omitempty" json:"-"`
}

// ValidType reports whether t is one of the accepted record types.
func ValidType(t string) bool {
	switch t {
	case TypeFolder, TypeFile, TypeImage:
		return true
	}
	return false
}
