package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPathParam      = "Invalid %s path parameter"

	// Mapped service errors
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgNotFoundError      = "Resource not found"
	ErrMsgForbiddenError     = "Operation not allowed"
	ErrMsgInvalidInputError  = "Invalid input"
	ErrMsgConflictError      = "Resource already exists"

	// Health messages
	ErrMsgDatabaseUnavailable = "database connection failed"
)

// Path parameter names shared by the router and the handlers
const (
	ParamPlayerID  = "playerID"
	ParamItemID    = "itemID"
	ParamGuildID   = "guildID"
	ParamDiscordID = "discordID"
)

// Success messages
const (
	MsgMoneySet      = "Money updated"
	MsgExperienceSet = "Experience updated"
	MsgGuildSet      = "Guild updated"
	MsgInventoryDone = "Inventory updated"
	MsgItemUpdated   = "Item updated"
	MsgItemDeleted   = "Item deleted"
)
