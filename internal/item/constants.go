package item

const (
	ErrMsgEmptyName = "item name must not be empty"
)

const (
	LogMsgItemCreated = "Item created"
	LogMsgItemUpdated = "Item updated"
	LogMsgItemDeleted = "Item deleted"
)

const (
	LogMsgCatalogItemInserted = "Catalog item inserted"
	LogMsgCatalogItemUpdated  = "Catalog item updated"
)
