// format.go — fmt.Formatter, Render and slog support for *Error.
//
// Behavior:
//
//   %s, %v   → concise string (Error()).
//   %q       → quoted Error().
//   %+v      → verbose, multi-line:
//                code=<code> msg="<message>" span=<start..end>
//                ctx:
//                  attempting to <operation>, expected <expected> at <span>
//                  attempting to <operation> at <span>
//                cause: <recursively formatted with %+v>
//
// Frames are listed innermost first, in the order they were attached.
//
// Rendering a frame calls into its Context, which may fail. Render returns
// that failure. fmt.Formatter cannot return errors, so Format reports it
// inline as %!v(PARSECTX FORMAT ERROR: ...), the way fmt reports bad verbs.
package parsectx

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// errWriter forwards to w until the first failure, then drops writes.
type errWriter struct {
	w   io.StringWriter
	err error
}

func (ew *errWriter) WriteString(s string) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.WriteString(s)
	if err != nil {
		ew.err = err
	}
	return n, err
}

// stateWriter adapts an io.Writer (such as fmt.State) to io.StringWriter.
type stateWriter struct{ io.Writer }

func (s stateWriter) WriteString(str string) (int, error) {
	return io.WriteString(s.Writer, str)
}

// Render writes the verbose representation of e to w. Sink failures and
// context rendering failures are returned wrapped in ErrFormat.
func (e *Error) Render(w io.StringWriter) error {
	ew := &errWriter{w: w}
	if e.code != "" {
		_, _ = ew.WriteString("code=" + string(e.code) + " ")
	}
	_, _ = ew.WriteString(fmt.Sprintf("msg=%q span=%s", e.Message(), e.span))

	if len(e.frames) > 0 {
		_, _ = ew.WriteString("\nctx:")
		for _, fr := range e.frames {
			_, _ = ew.WriteString("\n  ")
			if err := renderFrame(ew, fr); err != nil {
				return wrapFormat(err)
			}
		}
	}

	if e.cause != nil {
		_, _ = ew.WriteString("\ncause: ")
		if pe, ok := e.cause.(*Error); ok && pe != nil {
			if err := pe.Render(ew); err != nil {
				return err
			}
		} else {
			_, _ = ew.WriteString(fmt.Sprintf("%+v", e.cause))
		}
	}

	if ew.err != nil {
		return wrapFormat(ew.err)
	}
	return nil
}

// renderFrame writes "attempting to <op>[, expected <exp>] at <span>".
func renderFrame(w io.StringWriter, fr Frame) error {
	if fr.Context == nil {
		return ErrFormat
	}
	if _, err := w.WriteString("attempting to "); err != nil {
		return err
	}
	if err := fr.Context.Operation(w); err != nil {
		return err
	}
	if fr.Context.HasExpected() {
		if _, err := w.WriteString(", expected "); err != nil {
			return err
		}
		if err := fr.Context.Expected(w); err != nil {
			return err
		}
	}
	_, err := w.WriteString(" at " + fr.Span.String())
	return err
}

func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			var sb strings.Builder
			if err := e.Render(&sb); err != nil {
				_, _ = fmt.Fprintf(s, "%%!v(PARSECTX FORMAT ERROR: %v)", err)
				return
			}
			_, _ = stateWriter{s}.WriteString(sb.String())
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

// LogValue implements slog.LogValuer. Frames are logged as their rendered
// lines; a frame that fails to render is logged by its Go type instead.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 5)
	if e.code != "" {
		attrs = append(attrs, slog.String("code", string(e.code)))
	}
	attrs = append(attrs,
		slog.String("msg", e.Message()),
		slog.String("span", e.span.String()),
	)
	if len(e.frames) > 0 {
		lines := make([]string, 0, len(e.frames))
		for _, fr := range e.frames {
			var sb strings.Builder
			if err := renderFrame(&sb, fr); err != nil {
				lines = append(lines, fmt.Sprintf("%T at %s", fr.Context, fr.Span))
				continue
			}
			lines = append(lines, sb.String())
		}
		attrs = append(attrs, slog.Any("frames", lines))
	}
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}
	return slog.GroupValue(attrs...)
}

var (
	_ fmt.Formatter  = (*Error)(nil)
	_ slog.LogValuer = (*Error)(nil)
)
