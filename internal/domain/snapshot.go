package domain

import (
	"context"
	"errors"
)

// SnapshotVersion is the version tag written on every saved snapshot.
const SnapshotVersion = "1.0"

// Snapshot is the persisted document form: a version tag, a last-updated
// timestamp, and the full conference list. Legacy blobs may instead hold a
// bare array of conferences; readers accept both, writers always emit this
// object form.
type Snapshot struct {
	Version     string        `json:"version"`
	LastUpdated string        `json:"lastUpdated"`
	Conferences []*Conference `json:"conferences"`
}

// Source identifies which persistence tier served a load.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceLocal    Source = "local"
	SourceDefaults Source = "defaults"
)

// ErrBlobNotFound is returned by a BlobStore when no snapshot has ever
// been written.
var ErrBlobNotFound = errors.New("snapshot blob not found")

// SnapshotFetcher retrieves the remote snapshot document (or a test double).
type SnapshotFetcher interface {
	Fetch(ctx context.Context) ([]*Conference, error)
}

// BlobStore is the local persistence tier: a single keyed blob, replaced
// wholesale on every write. Implementations must make Write atomic — a
// reader never observes a partial snapshot.
type BlobStore interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

// SnapshotLoader resolves the conference list through the ordered tiers
// (remote, local, built-in defaults) and persists it back.
type SnapshotLoader interface {
	Load(ctx context.Context) ([]*Conference, Source, error)
	Save(ctx context.Context, records []*Conference) error
}
