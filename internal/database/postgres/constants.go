package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Player Operations
const (
	ErrMsgFailedToInsertUser       = "failed to insert user"
	ErrMsgFailedToInsertPlayer     = "failed to insert player"
	ErrMsgFailedToInsertInventory  = "failed to insert inventory"
	ErrMsgFailedToInsertDailyBonus = "failed to insert daily bonus"
	ErrMsgFailedToGetPlayer        = "failed to get player"
	ErrMsgFailedToGetPlayers       = "failed to get players"
	ErrMsgFailedToGetPlayerByDc    = "failed to get player by discord id"
	ErrMsgFailedToGetUser          = "failed to get user"
	ErrMsgFailedToGetMoney         = "failed to get money"
	ErrMsgFailedToUpdateMoney      = "failed to update money"
	ErrMsgFailedToGetExperience    = "failed to get experience"
	ErrMsgFailedToUpdateExperience = "failed to update experience"
	ErrMsgFailedToGetGuildID       = "failed to get guild id"
	ErrMsgFailedToUpdateGuildID    = "failed to update guild id"
	ErrMsgFailedToCheckGuild       = "failed to check guild existence"
	ErrMsgInvalidStoredDiscordID   = "invalid stored discord id"
)

// Error Messages - Inventory Operations
const (
	ErrMsgFailedToCheckInventory      = "failed to check inventory existence"
	ErrMsgFailedToCheckItem           = "failed to check item existence"
	ErrMsgFailedToGetInventory        = "failed to get inventory"
	ErrMsgFailedToGetInventoryEntry   = "failed to get inventory entry"
	ErrMsgFailedToLockInventoryLine   = "failed to lock inventory line"
	ErrMsgFailedToIncrementItem       = "failed to increment item"
	ErrMsgFailedToUpdateItemCount     = "failed to update item count"
	ErrMsgFailedToDeleteInventoryLine = "failed to delete inventory line"
	ErrMsgInventoryLineVanished       = "inventory line vanished while locked"
)

// Error Messages - Daily Bonus Operations
const (
	ErrMsgFailedToGetDailyBonus    = "failed to get daily bonus"
	ErrMsgFailedToUpdateDailyBonus = "failed to update daily bonus"
)

// Error Messages - Item Operations
const (
	ErrMsgFailedToCreateItem = "failed to create item"
	ErrMsgFailedToGetItem    = "failed to get item"
	ErrMsgFailedToGetItems   = "failed to get items"
	ErrMsgFailedToUpdateItem = "failed to update item"
	ErrMsgFailedToDeleteItem = "failed to delete item"
)

// Error Messages - Guild Operations
const (
	ErrMsgFailedToCreateGuild = "failed to create guild"
	ErrMsgFailedToGetGuild    = "failed to get guild"
)
