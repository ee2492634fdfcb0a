package models

// APIResponse is the response envelope every remote endpoint returns.
// Success=false and transport errors are treated uniformly by the sync layer:
// the operation failed and the entity stays dirty.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}
