package postgres

// Player queries
const (
	queryInsertUser = `
		INSERT INTO users (is_admin, discord_id)
		VALUES ($1, $2::text::numeric)
		RETURNING user_id`

	queryInsertPlayer = `
		INSERT INTO players (user_id, money)
		VALUES ($1, $2)`

	queryInsertInventory = `
		INSERT INTO inventories (user_id)
		VALUES ($1)`

	queryInsertDailyBonus = `
		INSERT INTO daily_bonuses (user_id, last_claimed, streak)
		VALUES ($1, $2, 0)`

	queryGetPlayer = `
		SELECT user_id, money, experience, guild_id
		FROM players
		WHERE user_id = $1`

	queryGetAllPlayers = `
		SELECT user_id, money, experience, guild_id
		FROM players
		ORDER BY user_id`

	queryGetPlayerIDByDiscordID = `
		SELECT p.user_id
		FROM players p
		JOIN users u ON u.user_id = p.user_id
		WHERE u.discord_id = $1::text::numeric`

	queryGetUser = `
		SELECT u.user_id, u.date_joined, u.is_admin, u.discord_id::text
		FROM users u
		JOIN players p ON p.user_id = u.user_id
		WHERE u.user_id = $1`

	queryGetMoney = `SELECT money FROM players WHERE user_id = $1`

	querySetMoney = `UPDATE players SET money = $2 WHERE user_id = $1`

	queryAddMoney = `
		UPDATE players
		SET money = money + $2
		WHERE user_id = $1
		RETURNING money`

	queryGetExperience = `SELECT experience FROM players WHERE user_id = $1`

	querySetExperience = `UPDATE players SET experience = $2 WHERE user_id = $1`

	queryAddExperience = `
		UPDATE players
		SET experience = experience + $2
		WHERE user_id = $1
		RETURNING experience`

	queryGetGuildID = `SELECT guild_id FROM players WHERE user_id = $1`

	querySetGuildID = `UPDATE players SET guild_id = $2 WHERE user_id = $1`

	queryGuildExists = `SELECT EXISTS (SELECT 1 FROM guilds WHERE guild_id = $1)`
)

// Inventory queries
const (
	queryInventoryExists = `SELECT EXISTS (SELECT 1 FROM inventories WHERE user_id = $1)`

	queryItemExists = `SELECT EXISTS (SELECT 1 FROM items WHERE item_id = $1)`

	queryGetInventoryEntries = `
		SELECT i.item_id, i.name, i.description, ii.count
		FROM inventory_items ii
		JOIN items i ON i.item_id = ii.item_id
		WHERE ii.user_id = $1
		ORDER BY i.item_id`

	queryGetInventoryEntry = `
		SELECT i.item_id, i.name, i.description, ii.count
		FROM inventory_items ii
		JOIN items i ON i.item_id = ii.item_id
		WHERE ii.user_id = $1 AND ii.item_id = $2`

	queryGetItemCountForUpdate = `
		SELECT count
		FROM inventory_items
		WHERE user_id = $1 AND item_id = $2
		FOR UPDATE`

	queryIncrementItem = `
		INSERT INTO inventory_items (user_id, item_id, count)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, item_id)
		DO UPDATE SET count = inventory_items.count + EXCLUDED.count`

	queryUpdateItemCount = `
		UPDATE inventory_items
		SET count = count + $3
		WHERE user_id = $1 AND item_id = $2`

	queryDeleteInventoryLine = `
		DELETE FROM inventory_items
		WHERE user_id = $1 AND item_id = $2`
)

// Daily bonus queries
const (
	queryGetDailyBonus = `
		SELECT user_id, last_claimed, streak
		FROM daily_bonuses
		WHERE user_id = $1`

	queryGetDailyBonusForUpdate = queryGetDailyBonus + `
		FOR UPDATE`

	queryUpdateDailyBonus = `
		UPDATE daily_bonuses
		SET last_claimed = $2, streak = $3
		WHERE user_id = $1`
)

// Item queries
const (
	queryCreateItem = `
		INSERT INTO items (name, description)
		VALUES ($1, $2)
		RETURNING item_id`

	queryGetItem = `
		SELECT item_id, name, description
		FROM items
		WHERE item_id = $1`

	queryGetItems = `
		SELECT item_id, name, description
		FROM items
		ORDER BY item_id`

	queryUpdateItem = `
		UPDATE items
		SET name = COALESCE($2, name),
		    description = COALESCE($3, description)
		WHERE item_id = $1`

	queryDeleteItem = `DELETE FROM items WHERE item_id = $1`
)

// Guild queries
const (
	queryCreateGuild = `
		INSERT INTO guilds (name, description, discord_id)
		VALUES ($1, $2, $3::text::numeric)
		RETURNING guild_id`

	queryGetGuild = `
		SELECT g.guild_id, g.discord_id::text, g.name, g.description,
		       (SELECT COUNT(*) FROM players p WHERE p.guild_id = g.guild_id)
		FROM guilds g
		WHERE g.guild_id = $1`
)
