package docsgen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// GeneratedSuffix is appended (replacing .go) to a source file's name to
// form its companion file.
const GeneratedSuffix = "_docs.gen.go"

const generatedHeader = "// Code generated by docsgen. DO NOT EDIT."

// FileDocs is the extraction result for one source file: every documented
// handler, in declaration order.
type FileDocs struct {
	// Package is the file's package name.
	Package string
	// Source is the path of the scanned file.
	Source string
	// Ops are the documented handlers, in declaration order.
	Ops []OperationDocs
}

// Target returns the companion file path for the source file.
func (fd FileDocs) Target() string {
	return strings.TrimSuffix(fd.Source, ".go") + GeneratedSuffix
}

// ParseDir extracts documentation from every Go file directly in dir.
// Test files and generated companions are skipped. Results are sorted by
// source path.
func ParseDir(dir string) ([]FileDocs, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, func(fi fs.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go") && !strings.HasSuffix(fi.Name(), GeneratedSuffix)
	}, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", dir, err)
	}

	var docs []FileDocs
	for _, pkg := range pkgs {
		for path, file := range pkg.Files {
			fd, err := extractFile(fset, path, file)
			if err != nil {
				return nil, err
			}
			if len(fd.Ops) > 0 {
				docs = append(docs, fd)
			}
		}
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Source < docs[j].Source })
	return docs, nil
}

func extractFile(fset *token.FileSet, path string, file *ast.File) (FileDocs, error) {
	fd := FileDocs{Package: file.Name.Name, Source: path}
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		op, ok, err := extractFunc(fset, fn)
		if err != nil {
			return FileDocs{}, err
		}
		if ok {
			fd.Ops = append(fd.Ops, op)
		}
	}
	return fd, nil
}

// Render produces the companion file source for one extraction result.
// Output is deterministic: identical input yields identical bytes.
func Render(fd FileDocs) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s\n\n", generatedHeader)
	fmt.Fprintf(&buf, "package %s\n\n", fd.Package)
	buf.WriteString("import (\n")
	buf.WriteString("\t\"github.com/danielgtaylor/huma/v2\"\n\n")
	buf.WriteString("\t\"github.com/bjaus/humadocs\"\n")
	buf.WriteString(")\n")

	for _, op := range fd.Ops {
		buf.WriteByte('\n')
		fmt.Fprintf(&buf, "// %s documents the %s route.\n", CompanionName(op.Func), op.Func)
		fmt.Fprintf(&buf, "func %s() humadocs.Transform {\n", CompanionName(op.Func))
		buf.WriteString("\treturn func(op *huma.Operation) {\n")
		// Fixed application order: summary, description, tag, deprecated.
		fmt.Fprintf(&buf, "\t\top.Summary = %s\n", strconv.Quote(op.Summary))
		fmt.Fprintf(&buf, "\t\top.Description = %s\n", strconv.Quote(op.Description))
		if op.Tag != "" {
			fmt.Fprintf(&buf, "\t\top.Tags = append(op.Tags, %s)\n", strconv.Quote(op.Tag))
		}
		if op.Deprecated {
			buf.WriteString("\t\top.Deprecated = true\n")
		}
		buf.WriteString("\t}\n")
		buf.WriteString("}\n")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", fd.Target(), err)
	}
	return src, nil
}

// Result reports what Generate did for one companion file.
type Result struct {
	Target string
	// Stale is set in check mode when the on-disk companion does not
	// match what would be generated.
	Stale bool
	// Written is set when the companion was created or rewritten.
	Written bool
}

// Generate scans root and every subdirectory (skipping hidden, vendor,
// and testdata directories) and writes a companion file next to each
// source file containing documented handlers. Nothing is written if any
// extraction fails. In check mode files are compared instead of written.
func Generate(root string, check bool) ([]Result, error) {
	dirs, err := collectDirs(root)
	if err != nil {
		return nil, err
	}

	type rendered struct {
		target string
		src    []byte
	}
	var outputs []rendered
	for _, dir := range dirs {
		docs, err := ParseDir(dir)
		if err != nil {
			return nil, err
		}
		for _, fd := range docs {
			src, err := Render(fd)
			if err != nil {
				return nil, err
			}
			outputs = append(outputs, rendered{target: fd.Target(), src: src})
		}
	}

	results := make([]Result, 0, len(outputs))
	for _, out := range outputs {
		existing, readErr := os.ReadFile(out.target)
		upToDate := readErr == nil && bytes.Equal(existing, out.src)

		if check {
			results = append(results, Result{Target: out.target, Stale: !upToDate})
			continue
		}
		if upToDate {
			results = append(results, Result{Target: out.target})
			continue
		}
		if err := os.WriteFile(out.target, out.src, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", out.target, err)
		}
		results = append(results, Result{Target: out.target, Written: true})
	}
	return results, nil
}

// collectDirs returns root and every subdirectory worth scanning, sorted.
func collectDirs(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != root && (strings.HasPrefix(name, ".") || name == "vendor" || name == "testdata") {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Strings(dirs)
	return dirs, nil
}
