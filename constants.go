package ufmt

// Log messages.
const (
	LogMsgPrinterCreated   = "printer created"
	LogMsgTemplateCompiled = "template compiled"
	LogMsgTemplateRejected = "template rejected"
	LogMsgCacheHit         = "template cache hit"
	LogMsgCacheFull        = "template cache full, not storing"
	LogMsgCacheCleared     = "template cache cleared"
	LogMsgArgsRejected     = "arguments rejected"
)

// Log field names.
const (
	LogFieldTemplate   = "template"
	LogFieldPieces     = "pieces"
	LogFieldPositional = "positional"
	LogFieldNames      = "names"
	LogFieldIndent     = "indent"
	LogFieldCacheSize  = "cache_size"
	LogFieldEntries    = "entries"
	LogFieldSupplied   = "supplied"
)
