// Package jsconfig reads an existing tailwind.config.js into a token record.
package jsconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"

	"github.com/inkblue/themeconf/internal/tokens"
)

var (
	// ErrSyntax is returned when the source does not parse as JavaScript.
	ErrSyntax = errors.New("javascript syntax error")
	// ErrNoExport is returned when no exported config object is found.
	ErrNoExport = errors.New("no exported config object")
)

// ParseError points at a construct the importer cannot evaluate statically.
type ParseError struct {
	Line    int
	Path    string
	Message string
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Path, e.Message)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Parse evaluates the object exported by `export default {…}` or
// `module.exports = {…}` and decodes it into a record.
// Keys the record has no field for are rejected rather than dropped.
func Parse(src []byte) (*tokens.Config, error) {
	ev := &evaluator{src: src, keys: make(map[string]tree_sitter.Point)}
	value, err := ev.evaluate()
	if err != nil {
		return nil, err
	}
	if err := ev.checkKeys(value); err != nil {
		return nil, err
	}

	data, err := json.Marshal(stringifyNumbers(value))
	if err != nil {
		return nil, fmt.Errorf("encode config object: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var cfg tokens.Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config object: %w", err)
	}
	return &cfg, nil
}

// Evaluate returns the exported config object as plain Go values: maps,
// slices, strings, float64 and bool.
func Evaluate(src []byte) (map[string]any, error) {
	ev := &evaluator{src: src}
	return ev.evaluate()
}

func (ev *evaluator) evaluate() (map[string]any, error) {
	src := ev.src
	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(tree_sitter.NewLanguage(tree_sitter_javascript.Language())); err != nil {
		return nil, fmt.Errorf("load javascript grammar: %w", err)
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, ErrSyntax
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		if bad := firstError(root); bad != nil {
			return nil, fmt.Errorf("%w at line %d", ErrSyntax, bad.StartPosition().Row+1)
		}
		return nil, ErrSyntax
	}

	obj := findExportedObject(root, src)
	if obj == nil {
		return nil, ErrNoExport
	}

	return ev.object(obj, "")
}

func firstError(node *tree_sitter.Node) *tree_sitter.Node {
	if node.IsError() || node.IsMissing() {
		return node
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if bad := firstError(node.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}

// findExportedObject looks at top-level statements only.
func findExportedObject(root *tree_sitter.Node, src []byte) *tree_sitter.Node {
	for i := uint(0); i < root.NamedChildCount(); i++ {
		stmt := root.NamedChild(i)
		switch stmt.Kind() {
		case "export_statement":
			if !hasChildKind(stmt, "default") {
				continue
			}
			if value := stmt.ChildByFieldName("value"); value != nil {
				if obj := unwrapObject(value); obj != nil {
					return obj
				}
			}
			for j := uint(0); j < stmt.NamedChildCount(); j++ {
				if obj := unwrapObject(stmt.NamedChild(j)); obj != nil {
					return obj
				}
			}
		case "expression_statement":
			if stmt.NamedChildCount() == 0 {
				continue
			}
			assign := stmt.NamedChild(0)
			if assign.Kind() != "assignment_expression" {
				continue
			}
			left := assign.ChildByFieldName("left")
			if left == nil || strings.ReplaceAll(left.Utf8Text(src), " ", "") != "module.exports" {
				continue
			}
			if right := assign.ChildByFieldName("right"); right != nil {
				if obj := unwrapObject(right); obj != nil {
					return obj
				}
			}
		}
	}
	return nil
}

// unwrapObject strips parentheses and `satisfies`/`as` wrappers.
func unwrapObject(node *tree_sitter.Node) *tree_sitter.Node {
	for node != nil {
		switch node.Kind() {
		case "object":
			return node
		case "parenthesized_expression":
			if node.NamedChildCount() == 0 {
				return nil
			}
			node = node.NamedChild(0)
		default:
			return nil
		}
	}
	return nil
}

func hasChildKind(node *tree_sitter.Node, kind string) bool {
	for i := uint(0); i < node.ChildCount(); i++ {
		if node.Child(i).Kind() == kind {
			return true
		}
	}
	return false
}

type evaluator struct {
	src []byte
	// keys records where each object key starts, by path, when non-nil.
	keys map[string]tree_sitter.Point
}

func (ev *evaluator) fail(node *tree_sitter.Node, path, format string, args ...any) error {
	return &ParseError{
		Line:    int(node.StartPosition().Row) + 1,
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	}
}

func (ev *evaluator) object(node *tree_sitter.Node, path string) (map[string]any, error) {
	out := make(map[string]any)
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		switch child.Kind() {
		case "comment":
			continue
		case "pair":
			keyNode := child.ChildByFieldName("key")
			valueNode := child.ChildByFieldName("value")
			if keyNode == nil || valueNode == nil {
				return nil, ev.fail(child, path, "incomplete property")
			}
			key, err := ev.key(keyNode, path)
			if err != nil {
				return nil, err
			}
			if ev.keys != nil {
				ev.keys[joinPath(path, key)] = keyNode.StartPosition()
			}
			value, err := ev.value(valueNode, joinPath(path, key))
			if err != nil {
				return nil, err
			}
			out[key] = value
		default:
			return nil, ev.fail(child, path, "unsupported object member %s", child.Kind())
		}
	}
	return out, nil
}

func (ev *evaluator) key(node *tree_sitter.Node, path string) (string, error) {
	switch node.Kind() {
	case "property_identifier":
		return node.Utf8Text(ev.src), nil
	case "string":
		return ev.stringValue(node), nil
	case "number":
		return node.Utf8Text(ev.src), nil
	default:
		return "", ev.fail(node, path, "unsupported key %s", node.Kind())
	}
}

func (ev *evaluator) value(node *tree_sitter.Node, path string) (any, error) {
	switch node.Kind() {
	case "object":
		return ev.object(node, path)
	case "array":
		return ev.array(node, path)
	case "string":
		return ev.stringValue(node), nil
	case "template_string":
		if node.NamedChildCount() > 0 {
			for i := uint(0); i < node.NamedChildCount(); i++ {
				if node.NamedChild(i).Kind() == "template_substitution" {
					return nil, ev.fail(node, path, "template substitutions are not supported")
				}
			}
		}
		text := node.Utf8Text(ev.src)
		return strings.TrimSuffix(strings.TrimPrefix(text, "`"), "`"), nil
	case "number":
		n, err := strconv.ParseFloat(node.Utf8Text(ev.src), 64)
		if err != nil {
			return nil, ev.fail(node, path, "invalid number %q", node.Utf8Text(ev.src))
		}
		return n, nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "null":
		return nil, nil
	case "parenthesized_expression":
		if node.NamedChildCount() == 1 {
			return ev.value(node.NamedChild(0), path)
		}
	}

	// Plugins are usually require()/import calls; keep their source text.
	if path == "plugins" || strings.HasPrefix(path, "plugins[") {
		return node.Utf8Text(ev.src), nil
	}
	return nil, ev.fail(node, path, "cannot evaluate %s statically", node.Kind())
}

func (ev *evaluator) array(node *tree_sitter.Node, path string) ([]any, error) {
	out := make([]any, 0, node.NamedChildCount())
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child.Kind() == "comment" {
			continue
		}
		value, err := ev.value(child, fmt.Sprintf("%s[%d]", path, len(out)))
		if err != nil {
			return nil, err
		}
		out = append(out, value)
	}
	return out, nil
}

// stringValue concatenates the fragments of a string literal, decoding the
// common escape sequences.
func (ev *evaluator) stringValue(node *tree_sitter.Node) string {
	var b strings.Builder
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		switch child.Kind() {
		case "string_fragment":
			b.WriteString(child.Utf8Text(ev.src))
		case "escape_sequence":
			b.WriteString(unescape(child.Utf8Text(ev.src)))
		}
	}
	return b.String()
}

func unescape(seq string) string {
	switch seq {
	case `\n`:
		return "\n"
	case `\t`:
		return "\t"
	case `\\`:
		return `\`
	case `\'`:
		return "'"
	case `\"`:
		return `"`
	}
	if unquoted, err := strconv.Unquote(`"` + seq + `"`); err == nil {
		return unquoted
	}
	return strings.TrimPrefix(seq, `\`)
}

// stringifyNumbers turns numeric leaves into strings: every leaf of the
// record is a string, and `lineHeight: 1` means "1".
func stringifyNumbers(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = stringifyNumbers(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = stringifyNumbers(item)
		}
		return out
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return value
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
