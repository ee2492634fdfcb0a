package models

// Wire representations of the remote entity tables. Field names are
// snake_cased to match the backend's column names. Timestamps travel as
// RFC 3339 strings; the backend fills CreatedAt/UpdatedAt on insert.

type RemoteBook struct {
	ID          string `json:"id,omitempty"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURI    string `json:"image_uri,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
	IsDeleted   bool   `json:"is_deleted"`
}

type RemoteFormula struct {
	ID          string `json:"id,omitempty"`
	BookID      string `json:"book_id"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	FormulaText string `json:"formula_text"`
	Description string `json:"description,omitempty"`
	ImageURI    string `json:"image_uri,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
	IsDeleted   bool   `json:"is_deleted"`
}

type RemoteUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	PhotoURL  string `json:"photo_url,omitempty"`
	IsGuest   bool   `json:"is_guest"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
