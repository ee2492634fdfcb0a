package models

import "time"

// Book is a locally stored notebook holding zero or more formulas.
//
// RemoteID is empty until the book has been uploaded at least once. IsDirty is
// set on every local create or edit and cleared only after a confirmed remote
// write that also records RemoteID and LastSyncedAt.
type Book struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	ImageURI     string     `json:"image_uri,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	RemoteID     string     `json:"remote_id,omitempty"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
	IsDirty      bool       `json:"is_dirty"`
}

// NeedsUpload reports whether the book is an upload candidate. A book without
// a remote id has never been uploaded and is implicitly dirty regardless of
// its IsDirty flag.
func (b Book) NeedsUpload() bool {
	return b.IsDirty || b.RemoteID == ""
}

// ToRemote maps the book onto the wire representation scoped to userID.
// The remote id is included only when the book already exists remotely.
func (b Book) ToRemote(userID string) RemoteBook {
	return RemoteBook{
		ID:          b.RemoteID,
		UserID:      userID,
		Name:        b.Name,
		Description: b.Description,
		ImageURI:    b.ImageURI,
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339),
	}
}
