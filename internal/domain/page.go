package domain

// Page is one clamped slice of an ordered listing.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Number     int   `json:"page"`
	Size       int   `json:"page_size"`
	TotalItems int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}
