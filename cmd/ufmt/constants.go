package main

// Command names
const (
	CmdNameCheck   = "check"
	CmdNameRender  = "render"
	CmdNameVersion = "version"
	CmdNameHelp    = "help"
)

// Flag names - long form
const (
	FlagTemplate = "template"
	FlagExpr     = "expr"
	FlagValues   = "values"
	FlagOutput   = "output"
	FlagConfig   = "config"
	FlagArgs     = "args"
	FlagVerbose  = "verbose"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagExprShort     = "e"
	FlagValuesShort   = "f"
	FlagOutputShort   = "o"
	FlagConfigShort   = "c"
	FlagArgsShort     = "n"
	FlagVerboseShort  = "v"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultArgs   = -1  // skip the arity check
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages
const (
	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgMissingTemplate   = "template source required"
	ErrMsgTemplateConflict  = "use either a template file or an inline template"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgInvalidValues     = "invalid values file"
	ErrMsgLoadConfigFailed  = "failed to load config"
	ErrMsgTemplateInvalid   = "template invalid"
	ErrMsgRenderFailed      = "render failed"
	ErrMsgWriteOutputFailed = "failed to write output"
)

// Help text
const (
	HelpMainUsage = `ufmt - compact value formatting

Usage:
    ufmt <command> [options]

Commands:
    check       Compile a template and report its placeholders
    render      Render a template with values from a YAML file
    version     Show version information
    help        Show help for a command

Use "ufmt help <command>" for more information about a command.`

	HelpCheckUsage = `Compile a template and report its placeholders

Usage:
    ufmt check [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -e, --expr <text>       Inline template
    -n, --args <count>      Also check the template against this many positional arguments

Examples:
    ufmt check -e '{} + {} = {sum:?}'
    ufmt check -t template.txt -n 2`

	HelpRenderUsage = `Render a template with values from a YAML file

Usage:
    ufmt render [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -e, --expr <text>       Inline template
    -f, --values <file>     YAML file with "args" (list) and "named" (mapping)
    -o, --output <file>     Output file, written atomically (default: stdout)
    -c, --config <file>     YAML printer config (indent, cache_size)
    -v, --verbose           Log to stderr

Examples:
    ufmt render -e '{host}:{port}' -f values.yaml
    ufmt render -t report.txt -f values.yaml -o report.out`

	HelpVersionUsage = `Show version information

Usage:
    ufmt version`

	HelpHelpUsage = `Show help for a command

Usage:
    ufmt help [command]

Commands:
    check       Show help for check command
    render      Show help for render command
    version     Show help for version command`
)

// Check and diagnostic output
const (
	CheckTextValid     = "template ok: {} positional, {} named"
	CheckTextPiece     = "  {:?}"
	TextErrorLine      = "{}: {}"
	CheckTextSource    = "  {}"
	CheckTextCaret     = "  {}^"
)

// Version output
const (
	VersionTextTemplate = "ufmt version {}\nGo: {}"
	VersionUnknown      = "unknown"
)

// CLI metadata
const (
	CLIName = "ufmt"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
)
