package ufmt

import (
	"io"

	"go.uber.org/zap"
)

// Printer renders templates. It owns the template cache and the pretty-mode
// indent, and is safe for concurrent use; every render gets its own
// [Formatter].
type Printer struct {
	cache  *TemplateCache
	indent string
	logger *zap.Logger
}

// New creates a Printer.
func New(opts ...Option) *Printer {
	cfg := defaultPrinterConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cache := cfg.cache
	if cache == nil {
		cache = NewTemplateCache(cfg.cacheSize, logger)
	}
	logger.Debug(LogMsgPrinterCreated,
		zap.Int(LogFieldIndent, cfg.indent),
		zap.Int(LogFieldCacheSize, cfg.cacheSize))
	return &Printer{
		cache:  cache,
		indent: indentUnit(cfg.indent),
		logger: logger,
	}
}

// Cache returns the printer's template cache.
func (p *Printer) Cache() *TemplateCache { return p.cache }

// Compile returns the cached compiled form of tmpl.
func (p *Printer) Compile(tmpl string) (*Template, error) {
	return p.cache.Get(tmpl)
}

// Write renders tmpl with args into w.
//
// Positional arguments fill {}, {:?} and {:#?} in order; [NamedArg] values
// fill the named captures. Every template and argument error is reported
// before anything is written. After that, the first error returned by w
// aborts the render and is returned unchanged; text already written stays
// written.
func (p *Printer) Write(w Writer, tmpl string, args ...any) error {
	t, bound, err := p.prepare(tmpl, args)
	if err != nil {
		return err
	}
	return render(p.formatter(w), t, bound)
}

// Writeln is like Write and appends a newline.
func (p *Printer) Writeln(w Writer, tmpl string, args ...any) error {
	t, bound, err := p.prepare(tmpl, args)
	if err != nil {
		return err
	}
	if err := render(p.formatter(w), t, bound); err != nil {
		return err
	}
	return w.WriteStr("\n")
}

// Fprint renders into an [io.Writer].
func (p *Printer) Fprint(w io.Writer, tmpl string, args ...any) error {
	return p.Write(IOWriter(w), tmpl, args...)
}

// Sprint renders into a string.
func (p *Printer) Sprint(tmpl string, args ...any) (string, error) {
	var b Buffer
	if err := p.Write(&b, tmpl, args...); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (p *Printer) formatter(w Writer) *Formatter {
	return &Formatter{w: w, p: p, indent: p.indent}
}

// argument is a supplied value resolved to the capability its placeholder
// asks for.
type argument struct {
	display Displayer
	debug   Debugger
}

func (p *Printer) prepare(tmpl string, args []any) (*Template, []argument, error) {
	t, err := p.cache.Get(tmpl)
	if err != nil {
		return nil, nil, err
	}
	bound, err := bind(t, args)
	if err != nil {
		p.logger.Debug(LogMsgArgsRejected,
			zap.String(LogFieldTemplate, tmpl),
			zap.Int(LogFieldSupplied, len(args)),
			zap.Error(err))
		return nil, nil, err
	}
	return t, bound, nil
}

// bind pairs every argument piece of t with a value from args and resolves
// its capability.
func bind(t *Template, args []any) ([]argument, error) {
	positional := args
	var named map[string]any
	if hasNamed(args) {
		positional = make([]any, 0, len(args))
		named = make(map[string]any, len(args))
		for _, a := range args {
			na, ok := a.(NamedArg)
			if !ok {
				positional = append(positional, a)
				continue
			}
			if _, dup := named[na.Name]; dup {
				return nil, newDuplicateNamedError(t.src, na.Name)
			}
			named[na.Name] = na.Value
		}
	}
	if err := t.CheckArity(len(positional)); err != nil {
		return nil, err
	}

	bound := make([]argument, 0, len(t.pieces))
	next := 0
	for _, pc := range t.pieces {
		if pc.Kind != PieceArg {
			continue
		}
		var v any
		index := next
		if pc.Name == "" {
			v = positional[next]
			next++
		} else {
			val, ok := named[pc.Name]
			if !ok {
				return nil, newMissingNamedError(t.src, pc.Name, pc.Offset)
			}
			v = val
		}
		arg, err := resolve(v, pc.Spec)
		if err != nil {
			return nil, annotateArgError(err, t.src, pc, index)
		}
		bound = append(bound, arg)
	}

	for _, a := range args {
		if na, ok := a.(NamedArg); ok && !t.uses(na.Name) {
			return nil, newUnusedNamedError(t.src, na.Name)
		}
	}
	return bound, nil
}

func hasNamed(args []any) bool {
	for _, a := range args {
		if _, ok := a.(NamedArg); ok {
			return true
		}
	}
	return false
}

func (t *Template) uses(name string) bool {
	for _, n := range t.names {
		if n == name {
			return true
		}
	}
	return false
}

func resolve(v any, spec Spec) (argument, error) {
	if spec == SpecDisplay {
		d, err := displayerOf(v)
		return argument{display: d}, err
	}
	d, err := debuggerOf(v)
	return argument{debug: d}, err
}

// render walks the pieces in order. It stops at the first write error.
func render(f *Formatter, t *Template, bound []argument) error {
	next := 0
	for _, pc := range t.pieces {
		if pc.Kind == PieceLiteral {
			if err := f.WriteStr(pc.Text); err != nil {
				return err
			}
			continue
		}
		a := bound[next]
		next++
		var err error
		switch pc.Spec {
		case SpecDisplay:
			err = a.display.Display(f)
		case SpecDebug:
			err = a.debug.Debug(f)
		case SpecDebugPretty:
			err = f.Pretty(a.debug.Debug)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
