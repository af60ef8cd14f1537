package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/itsatony/go-cuserr"
	"github.com/mattn/go-runewidth"

	"github.com/bjaus/ufmt"
)

// checkConfig holds parsed check command configuration
type checkConfig struct {
	templatePath string
	expr         string
	args         int
}

func runCheck(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseCheckFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingTemplate, err)
		return ExitCodeUsageError
	}

	src, err := readTemplate(cfg.templatePath, cfg.expr, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	t, err := ufmt.Compile(src)
	if err == nil && cfg.args != FlagDefaultArgs {
		err = t.CheckArity(cfg.args)
	}
	if err != nil {
		reportTemplateError(stderr, ErrMsgTemplateInvalid, src, err)
		return ExitCodeValidationError
	}

	w := ufmt.IOWriter(stdout)
	if err := ufmt.Writeln(w, CheckTextValid, t.Positional(), len(t.Names())); err != nil {
		return ExitCodeError
	}
	for _, p := range t.Pieces() {
		if err := ufmt.Writeln(w, CheckTextPiece, pieceView(p)); err != nil {
			return ExitCodeError
		}
	}
	return ExitCodeSuccess
}

func parseCheckFlags(args []string) (*checkConfig, error) {
	fs := flag.NewFlagSet(CmdNameCheck, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &checkConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.expr, FlagExpr, "", "")
	fs.StringVar(&cfg.expr, FlagExprShort, "", "")
	fs.IntVar(&cfg.args, FlagArgs, FlagDefaultArgs, "")
	fs.IntVar(&cfg.args, FlagArgsShort, FlagDefaultArgs, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.templatePath == "" && cfg.expr == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}

	return cfg, nil
}

// pieceView renders a compiled piece for the check report.
type pieceView ufmt.Piece

func (p pieceView) Debug(f *ufmt.Formatter) error {
	if p.Kind == ufmt.PieceLiteral {
		return f.DebugStruct("Literal", func(s *ufmt.StructBuilder) {
			s.Field("offset", ufmt.Int(p.Offset)).Field("text", ufmt.Str(p.Text))
		})
	}
	return f.DebugStruct("Arg", func(s *ufmt.StructBuilder) {
		s.Field("offset", ufmt.Int(p.Offset)).Field("spec", ufmt.Str(p.Spec.String()))
		if p.Name != "" {
			s.Field("name", ufmt.Str(p.Name))
		}
	})
}

// reportTemplateError prints err and, when it points into the template,
// the offending line with a caret under the failing offset.
func reportTemplateError(w io.Writer, prefix, src string, err error) {
	out := ufmt.IOWriter(w)
	_ = ufmt.Writeln(out, TextErrorLine, prefix, err.Error())

	offset, ok := errorOffset(err)
	if !ok || offset > len(src) {
		return
	}
	start := strings.LastIndexByte(src[:offset], '\n') + 1
	end := len(src)
	if i := strings.IndexByte(src[offset:], '\n'); i >= 0 {
		end = offset + i
	}
	pad := strings.Repeat(" ", runewidth.StringWidth(src[start:offset]))
	_ = ufmt.Writeln(out, CheckTextSource, src[start:end])
	_ = ufmt.Writeln(out, CheckTextCaret, pad)
}

// errorOffset extracts the template offset of errors that point at a
// specific placeholder or brace.
func errorOffset(err error) (int, bool) {
	if !errors.Is(err, ufmt.ErrUnmatchedBrace) &&
		!errors.Is(err, ufmt.ErrInvalidPlaceholder) &&
		!errors.Is(err, ufmt.ErrMissingNamed) &&
		!errors.Is(err, ufmt.ErrUnsupportedValue) {
		return 0, false
	}
	var ce *cuserr.CustomError
	if !errors.As(err, &ce) {
		return 0, false
	}
	v, ok := ce.GetMetadata(ufmt.MetaKeyOffset)
	if !ok {
		return 0, false
	}
	offset, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return offset, true
}
