package inventory

// Operation names used in OperationNotAllowed errors
const (
	OpModifyItem = "modify item"
)

// Rejection reasons
const (
	ReasonInsufficientQuantity = "holds %d, cannot remove %d"
)

// Log messages
const (
	LogMsgModifyingItem = "Modifying inventory item"
	LogMsgItemModified  = "Inventory item modified"
)
