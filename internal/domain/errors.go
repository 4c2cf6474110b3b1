package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgNotFound = "not found"

	// Player errors
	ErrMsgPlayerNotFound        = "player"
	ErrMsgDiscordPlayerNotFound = "player with discord id"

	// Item errors
	ErrMsgItemDoesNotExist   = "item"
	ErrMsgItemNotInInventory = "item in inventory"

	// Guild errors
	ErrMsgGuildNotFound = "guild"

	// Operation errors
	ErrMsgOperationNotAllowed = "operation not allowed"
	ErrMsgAlreadyExists       = "already exists"
	ErrMsgDiscordIDTaken      = "discord id"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Transaction errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// Every "missing entity" error wraps ErrNotFound so callers can classify with errors.Is.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNotFound = errors.New(ErrMsgNotFound)

	// Player errors
	ErrPlayerNotFound        = fmt.Errorf("%s %w", ErrMsgPlayerNotFound, ErrNotFound)
	ErrDiscordPlayerNotFound = fmt.Errorf("%s %w", ErrMsgDiscordPlayerNotFound, ErrNotFound)

	// Item errors
	ErrItemDoesNotExist   = fmt.Errorf("%s %w", ErrMsgItemDoesNotExist, ErrNotFound)
	ErrItemNotInInventory = fmt.Errorf("%s %w", ErrMsgItemNotInInventory, ErrNotFound)

	// Guild errors
	ErrGuildNotFound = fmt.Errorf("%s %w", ErrMsgGuildNotFound, ErrNotFound)

	// Operation errors
	ErrOperationNotAllowed = errors.New(ErrMsgOperationNotAllowed)
	ErrAlreadyExists       = errors.New(ErrMsgAlreadyExists)
	ErrDiscordIDTaken      = fmt.Errorf("%s %w", ErrMsgDiscordIDTaken, ErrAlreadyExists)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// PlayerNotFound returns ErrPlayerNotFound annotated with the player id
func PlayerNotFound(playerID int) error {
	return fmt.Errorf("%w: id %d", ErrPlayerNotFound, playerID)
}

// ItemDoesNotExist returns ErrItemDoesNotExist annotated with the item id
func ItemDoesNotExist(itemID int) error {
	return fmt.Errorf("%w: id %d", ErrItemDoesNotExist, itemID)
}

// ItemNotInInventory returns ErrItemNotInInventory annotated with both ids
func ItemNotInInventory(playerID, itemID int) error {
	return fmt.Errorf("%w: item %d, player %d", ErrItemNotInInventory, itemID, playerID)
}

// GuildNotFound returns ErrGuildNotFound annotated with the guild id
func GuildNotFound(guildID int) error {
	return fmt.Errorf("%w: id %d", ErrGuildNotFound, guildID)
}

// OperationNotAllowed returns ErrOperationNotAllowed with the operation and reason
func OperationNotAllowed(operation, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrOperationNotAllowed, operation, reason)
}
