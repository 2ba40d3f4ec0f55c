package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/ledctl/pkg/errors"
	"github.com/arthur-debert/ledctl/pkg/style"
)

// rendererFor styles reports written to w. Anything but a color capable
// terminal gets plain output.
func rendererFor(w io.Writer, noColor bool) style.Renderer {
	if f, ok := w.(*os.File); ok {
		return style.NewRenderer(f, noColor)
	}
	return style.NewPlainRenderer()
}

// formatError renders err for the user. Name resolution and flag errors
// show the offending input and what would have been accepted.
func formatError(err error, r style.Renderer) string {
	var b strings.Builder

	input := errors.DetailString(err, errors.DetailInput)
	options := errors.DetailStrings(err, errors.DetailOptions)
	kind := errors.DetailString(err, errors.DetailKind)

	switch errors.GetErrorCode(err) {
	case errors.ErrUnresolvedReference:
		fmt.Fprintf(&b, "%s %s\n", r.Label(fmt.Sprintf(MsgReportInvalid, kind)), r.Highlight(input))
		writeList(&b, r, MsgReportValid, options)
	case errors.ErrAmbiguousReference:
		fmt.Fprintf(&b, "%s %s\n", r.Label(fmt.Sprintf(MsgReportAmbiguous, kind)), r.Highlight(input))
		writeList(&b, r, MsgReportCouldBe, options)
	case errors.ErrDisallowedFlag:
		fmt.Fprintf(&b, "%s %s %s %s\n",
			r.Label(MsgReportFlag),
			r.Highlight(errors.DetailString(err, errors.DetailFlag)),
			r.Label(MsgReportNotAllowed),
			r.Highlight(errors.DetailString(err, errors.DetailOp)))
		writeList(&b, r, MsgReportAllowed, options)
	case errors.ErrUnknown:
		// Errors raised outside ledctl, e.g. by cobra's flag parsing
		fmt.Fprintf(&b, "%s %s\n", r.Label(MsgReportError), err.Error())
	default:
		fmt.Fprintf(&b, "%s\n", r.Label(userMessage(err)))
	}

	return b.String()
}

func writeList(b *strings.Builder, r style.Renderer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "%s\n%s\n", title, r.List(items))
}

// userMessage is the error message without the code prefix used in logs.
func userMessage(err error) string {
	var ledErr *errors.LedctlError
	if !errors.As(err, &ledErr) {
		return err.Error()
	}
	if ledErr.Wrapped != nil {
		return fmt.Sprintf("%s: %v", ledErr.Message, ledErr.Wrapped)
	}
	return ledErr.Message
}
