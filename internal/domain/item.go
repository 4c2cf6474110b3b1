package domain

// Item is a catalog entry. Name and Description are translation keys.
type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
