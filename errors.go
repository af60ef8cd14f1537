package ufmt

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// Error message constants.
const (
	ErrMsgUnmatchedBrace     = "format string contains an unmatched right brace"
	ErrMsgInvalidPlaceholder = "invalid format string: expected `{{`, `{}`, `{:?}` or `{:#?}`"
	ErrMsgArgumentNeverUsed  = "argument never used"
	ErrMsgMissingNamed       = "cannot find value for named argument"
	ErrMsgDuplicateNamed     = "named argument supplied more than once"
	ErrMsgUnusedNamed        = "named argument never used"
	ErrMsgUnsupportedValue   = "value does not implement the requested capability"
	ErrMsgInvalidIndent      = "indent must not be negative"
	ErrMsgInvalidCacheSize   = "cache size must not be negative"

	fmtMsgArity = "format string requires %d arguments but %d %s supplied"
)

// Error code constants for categorization.
const (
	ErrCodeTemplate = "UFMT_TEMPLATE"
	ErrCodeArgument = "UFMT_ARGUMENT"
	ErrCodeConfig   = "UFMT_CONFIG"
)

// Metadata keys attached to template and argument errors.
const (
	MetaKeyTemplate = "template"
	MetaKeyOffset   = "offset"
	MetaKeyRequired = "required"
	MetaKeySupplied = "supplied"
	MetaKeyArgument = "argument"
	MetaKeyName     = "name"
	MetaKeySpec     = "spec"
	MetaKeyType     = "type"
	MetaKeyField    = "field"
)

func newTemplateError(sentinel error, msg, src string, offset int) *cuserr.CustomError {
	return cuserr.WrapStdError(sentinel, ErrCodeTemplate, msg).
		WithMetadata(MetaKeyTemplate, src).
		WithMetadata(MetaKeyOffset, strconv.Itoa(offset))
}

func newUnmatchedBraceError(src string, offset int) error {
	return newTemplateError(ErrUnmatchedBrace, ErrMsgUnmatchedBrace, src, offset)
}

func newInvalidPlaceholderError(src string, offset int) error {
	return newTemplateError(ErrInvalidPlaceholder, ErrMsgInvalidPlaceholder, src, offset)
}

// newTooFewArgsError reports a shortfall of positional arguments.
func newTooFewArgsError(src string, required, supplied int) error {
	verb := "were"
	if supplied == 1 {
		verb = "was"
	}
	msg := fmt.Sprintf(fmtMsgArity, required, supplied, verb)
	return newTemplateError(ErrArity, msg, src, 0).
		WithMetadata(MetaKeyRequired, strconv.Itoa(required)).
		WithMetadata(MetaKeySupplied, strconv.Itoa(supplied))
}

// newUnusedArgError names the first positional argument the template never
// consumes.
func newUnusedArgError(src string, required, supplied int) error {
	return newTemplateError(ErrArity, ErrMsgArgumentNeverUsed, src, 0).
		WithMetadata(MetaKeyRequired, strconv.Itoa(required)).
		WithMetadata(MetaKeySupplied, strconv.Itoa(supplied)).
		WithMetadata(MetaKeyArgument, strconv.Itoa(required))
}

func newMissingNamedError(src, name string, offset int) error {
	return newTemplateError(ErrMissingNamed, ErrMsgMissingNamed, src, offset).
		WithMetadata(MetaKeyName, name)
}

func newDuplicateNamedError(src, name string) error {
	return newTemplateError(ErrDuplicateNamed, ErrMsgDuplicateNamed, src, 0).
		WithMetadata(MetaKeyName, name)
}

func newUnusedNamedError(src, name string) error {
	return newTemplateError(ErrUnusedNamed, ErrMsgUnusedNamed, src, 0).
		WithMetadata(MetaKeyName, name)
}

func newUnsupportedValueError(v any, spec Spec) *cuserr.CustomError {
	return cuserr.WrapStdError(ErrUnsupportedValue, ErrCodeArgument, ErrMsgUnsupportedValue).
		WithMetadata(MetaKeyType, fmt.Sprintf("%T", v)).
		WithMetadata(MetaKeySpec, spec.String())
}

// annotateArgError adds the placeholder position to an argument error.
func annotateArgError(err error, src string, pc Piece, index int) error {
	var ce *cuserr.CustomError
	if !errors.As(err, &ce) {
		return err
	}
	ce = ce.WithMetadata(MetaKeyTemplate, src).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pc.Offset))
	if pc.Name != "" {
		return ce.WithMetadata(MetaKeyName, pc.Name)
	}
	return ce.WithMetadata(MetaKeyArgument, strconv.Itoa(index))
}

func newConfigError(msg, field string) error {
	return cuserr.WrapStdError(ErrInvalidConfig, ErrCodeConfig, msg).
		WithMetadata(MetaKeyField, field)
}
