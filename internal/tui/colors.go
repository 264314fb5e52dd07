package tui

// Color constants for clockwise TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#10142B" // Deep navy
	ColorBorder         = "#343B58" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E8EAF6" // Primary text (labels, clock digits, titles)
	ColorSecondaryText = "#A6ADCE" // Secondary text - muted indigo-grey
	ColorDisabledText  = "#5F6687" // Disabled/muted text
	ColorPlaceholder   = "#A6ADCE" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Indigo theme)
	ColorAccentMain   = "#6366F1" // Accent elements, active borders
	ColorAccentBright = "#818CF8" // Highlights, countdown text

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#34D399" // Shift complete, confirmations
	ColorWarning = "#F59E0B" // Five-minute warning
)
