package zmq

import "BattleFS/internal/domain"

// Path carries the file for CREATE, the object name for READ and DELETE,
// the directory for LOAD_DIR and the store name for INIT.
type ApiRequest struct {
	Action    string `json:"action,omitempty"`
	Path      string `json:"path,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type ApiResponse struct {
	Success   bool                 `json:"success"`
	Error     string               `json:"error,omitempty"`
	RequestID string               `json:"request_id,omitempty"`
	Name      string               `json:"name,omitempty"`
	Entry     *domain.ListingEntry `json:"entry,omitempty"`
	Data      []byte               `json:"data,omitempty"`
	Listing   *domain.Listing      `json:"listing,omitempty"`
	Loaded    int                  `json:"loaded"`
	Failed    map[string]string    `json:"failed,omitempty"`
}
