package graph

// Exported for tests.
var (
	SanitizeStateName = sanitizeStateName
	GetDirectionCode  = getDirectionCode
	EscapeRecord      = escapeRecord
)
