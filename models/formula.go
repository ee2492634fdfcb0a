package models

import "time"

// Formula is a named mathematical expression belonging to exactly one Book.
// It carries the same sync bookkeeping fields as Book; additionally a formula
// can only be uploaded once its parent book has a remote id, because remote
// formula rows reference remote book ids, not local ones.
type Formula struct {
	ID           int64      `json:"id"`
	BookID       int64      `json:"book_id"`
	Name         string     `json:"name"`
	FormulaText  string     `json:"formula_text"`
	Description  string     `json:"description,omitempty"`
	ImageURI     string     `json:"image_uri,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	RemoteID     string     `json:"remote_id,omitempty"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
	IsDirty      bool       `json:"is_dirty"`
}

// NeedsUpload reports whether the formula is an upload candidate.
func (f Formula) NeedsUpload() bool {
	return f.IsDirty || f.RemoteID == ""
}

// ToRemote maps the formula onto the wire representation. remoteBookID must be
// the parent book's remote id, resolved by the caller.
func (f Formula) ToRemote(userID, remoteBookID string) RemoteFormula {
	return RemoteFormula{
		ID:          f.RemoteID,
		BookID:      remoteBookID,
		UserID:      userID,
		Name:        f.Name,
		FormulaText: f.FormulaText,
		Description: f.Description,
		ImageURI:    f.ImageURI,
		CreatedAt:   f.CreatedAt.UTC().Format(time.RFC3339),
	}
}
