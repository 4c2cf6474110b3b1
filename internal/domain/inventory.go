package domain

// InventoryEntry is an inventory line joined with its catalog item.
// Count is always positive; a missing line means the player holds none.
type InventoryEntry struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}
