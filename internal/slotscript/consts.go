package slotscript

const (
	// ============================================================================
	// Script Tokens
	// ============================================================================

	// CommentPrefix starts a comment that runs to the end of the line
	CommentPrefix = "#"

	// NoneToken stands for "no slot found" in expect-free and expect-run
	NoneToken = "none"

	// ============================================================================
	// Limits
	// ============================================================================

	// DefaultCapacity is used when a script has no capacity line
	DefaultCapacity = 16

	// MaxCapacity bounds the storage a script may ask for
	MaxCapacity = 1 << 20

	// ScannerInitialBufferSize is the initial line buffer for the scanner
	ScannerInitialBufferSize = 4 * 1024

	// ScannerMaxLineSize is the longest line accepted (reserve-each lines can be long)
	ScannerMaxLineSize = 1024 * 1024
)
