// Package docsgen extracts route documentation from handler doc comments
// and generates companion humadocs.Transform functions.
//
// A handler opts in with a directive line in its doc comment:
//
//	// ListUsers returns every user visible to the caller.
//	// Results are ordered by creation time.
//	//
//	//docsgen:operation tag="Users"
//	func ListUsers(ctx context.Context, in *ListUsersInput) (*ListUsersOutput, error)
//
// The first doc line becomes the operation summary, the remaining lines
// its description. Recognized directive arguments are tag="..." and bare
// deprecated; anything else fails generation with the offending name and
// source position.
package docsgen

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"
	"strings"
)

// Directive is the doc-comment marker that opts a function into
// generation. Arguments follow on the same line.
const Directive = "docsgen:operation"

// OperationDocs is the documentation extracted for one handler function.
type OperationDocs struct {
	// Func is the handler's identifier.
	Func string
	// Summary is the first non-empty doc line, or "".
	Summary string
	// Description is the remaining non-empty doc lines newline-joined,
	// or "".
	Description string
	// Tag is the tag="..." argument value, or "".
	Tag string
	// Deprecated reports whether the bare deprecated argument was given.
	Deprecated bool
}

// CompanionName returns the generated function name for a handler. The
// fixed opDocs prefix keeps companions unexported and out of collision
// range of ordinary handler identifiers.
func CompanionName(handler string) string {
	return "opDocs" + handler
}

// extractFunc pulls OperationDocs from a function declaration carrying the
// directive. It returns ok=false when the declaration has no directive.
func extractFunc(fset *token.FileSet, fn *ast.FuncDecl) (OperationDocs, bool, error) {
	args, pos, found := findDirective(fn.Doc)
	if !found {
		return OperationDocs{}, false, nil
	}
	if fn.Recv != nil {
		return OperationDocs{}, false, fmt.Errorf("%s: %s directive on method %s; only functions are supported",
			fset.Position(pos), Directive, fn.Name.Name)
	}

	parsed, err := parseArgs(args, fset.Position(pos))
	if err != nil {
		return OperationDocs{}, false, err
	}

	summary, description := splitSummaryDescription(docLines(fn.Doc))

	return OperationDocs{
		Func:        fn.Name.Name,
		Summary:     summary,
		Description: description,
		Tag:         parsed.tag,
		Deprecated:  parsed.deprecated,
	}, true, nil
}

// findDirective scans a comment group for the directive line and returns
// the argument text following it.
func findDirective(doc *ast.CommentGroup) (args string, pos token.Pos, found bool) {
	if doc == nil {
		return "", token.NoPos, false
	}
	for _, c := range doc.List {
		text, ok := strings.CutPrefix(c.Text, "//"+Directive)
		if !ok {
			continue
		}
		// Reject e.g. //docsgen:operations.
		if text != "" && text[0] != ' ' && text[0] != '\t' {
			continue
		}
		return strings.TrimSpace(text), c.Pos(), true
	}
	return "", token.NoPos, false
}

// docLines returns the trimmed, non-empty documentation lines of a comment
// group, in declaration order. CommentGroup.Text already strips comment
// markers and drops directive lines such as the one carrying our own
// arguments.
func docLines(doc *ast.CommentGroup) []string {
	if doc == nil {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// splitSummaryDescription splits doc lines into a summary (first line) and
// description (remaining lines newline-joined). Both are empty when there
// are no lines.
func splitSummaryDescription(lines []string) (summary, description string) {
	if len(lines) == 0 {
		return "", ""
	}
	return lines[0], strings.Join(lines[1:], "\n")
}

type directiveArgs struct {
	tag        string
	deprecated bool
}

// parseArgs parses the directive's argument text: whitespace-separated
// items of the form key="value" or bare key. Recognized keys are tag
// (string value required) and deprecated (flag, no value).
func parseArgs(s string, pos token.Position) (directiveArgs, error) {
	var args directiveArgs

	for s = strings.TrimSpace(s); s != ""; s = strings.TrimSpace(s) {
		var item string
		item, s = cutItem(s)

		key, value, hasValue := strings.Cut(item, "=")
		key = strings.TrimSpace(key)

		switch key {
		case "tag":
			if !hasValue {
				return args, fmt.Errorf("%s: property %q requires a string value", pos, key)
			}
			lit, err := strconv.Unquote(strings.TrimSpace(value))
			if err != nil {
				return args, fmt.Errorf("%s: malformed string literal for property %q", pos, key)
			}
			args.tag = lit
		case "deprecated":
			if hasValue {
				return args, fmt.Errorf("%s: property %q takes no value", pos, key)
			}
			args.deprecated = true
		default:
			return args, fmt.Errorf("%s: unsupported property %q", pos, key)
		}
	}

	return args, nil
}

// cutItem splits off the next argument item, keeping quoted values intact
// so tag="a b" parses as one item.
func cutItem(s string) (item, rest string) {
	inQuote := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '"' && (i == 0 || s[i-1] != '\\'):
			inQuote = !inQuote
		case !inQuote && (s[i] == ' ' || s[i] == '\t'):
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}
