package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth hides the phone and nationality columns below it.
	LayoutCompactWidth = 100

	// LayoutWideWidth shows gender and location at full width.
	LayoutWideWidth = 140

	// CardWidth is the outer width of one grid card including its border.
	CardWidth = 34

	// CardHeight is the outer height of one grid card including its border.
	CardHeight = 6
)

// Chrome rows outside the content area: header, command bar and footer.
const chromeRows = 3

// Activity overlay limits.
const (
	// ActivityLineLimit is the number of log lines the overlay keeps.
	ActivityLineLimit = 500
)

// Timing constants.
const (
	// DefaultUIInterval drives toast expiry and activity refresh.
	DefaultUIInterval = 500 * time.Millisecond

	// DefaultNoticeTTL is how long a toast stays in the footer.
	DefaultNoticeTTL = 3 * time.Second
)
