package bot

// =============================================================================
// General messages
// =============================================================================

const (
	MsgUnexpectedErr = `Unexpected error: %s`
	MsgStartPrompt   = "Send /compliment to get a compliment, or /help for all commands."
	MsgVersionInfo   = "Version: %s\nBuilt: %s"
	MsgHelp          = `
		*Compliments* ⭐️

		/compliment - get a compliment
		/category - choose a category
		/categories - list categories
		/add category | compliment - add your own
		/cancel - stop adding
		/reset - go back to the starter compliments
		/theme - switch between light and dark`
)

// =============================================================================
// Compliment messages
// =============================================================================

const (
	MsgComplimentFmt    = "%s %s"
	MsgNoCompliments    = "No compliments yet. Add one with /add category | compliment"
	MsgChooseCategory   = "Choose a category:"
	MsgCategorySelected = "Category: %s"
	MsgUnknownCategory  = "Unknown category %s. Available: %s"
	MsgCategoriesHeader = "*Categories:*"
	MsgCategoryLineFmt  = "• %s: %s"
)

// =============================================================================
// Add compliment messages
// =============================================================================

const (
	MsgEmptyCategory     = "Enter a category name."
	MsgEmptyText         = "Write a compliment to add."
	MsgAdded             = "Added!"
	MsgAddPromptCategory = "Which category? Pick an existing one or name a new one."
	MsgAddPromptText     = "Write a compliment for %s:"
	MsgAddCancelled      = "Ok, nothing added."
	MsgNothingToCancel   = "Nothing to cancel."
	MsgReset             = "Back to the starter compliments."
)

// =============================================================================
// Theme messages
// =============================================================================

const (
	MsgThemeSwitched     = "%s Theme: *%s*"
	MsgThemeNotAvailable = "Themes are not available without storage."
)
