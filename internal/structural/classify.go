package structural

import (
	"strings"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"

	"glint/internal/scope"
)

// classify resolves a leaf's scope. Resolution order: the exact node-kind
// table, then literal text for anonymous leaves, then parent-context rules
// for identifier-like leaves. A leaf no rule matches contributes nothing
// and keeps the default style.
func (a *Adapter) classify(n, parent, grand *sitter.Node) (string, bool) {
	kind := n.Type()

	if sc, ok := scope.ForNodeKind(kind); ok {
		if kind == "comment" {
			if t := a.nodeText(n); strings.HasPrefix(t, "//") || strings.HasPrefix(t, "#") || strings.HasPrefix(t, "--") {
				return scope.CommentLine, true
			}
		}
		if sc == scope.StringQuoted && keyOfPair(n, parent, grand) {
			return scope.PropertyName, true
		}
		return sc, true
	}

	if !n.IsNamed() {
		return scope.ForLiteral(a.nodeText(n))
	}

	if isIdentifierKind(kind) {
		if sc, ok := contextScope(n, parent, grand); ok {
			return sc, true
		}
		if isUpperConstant(a.nodeText(n)) {
			return scope.ConstantOther, true
		}
		return scope.Variable, true
	}

	return scope.ForLiteral(a.nodeText(n))
}

// contextScope applies the parent-context rules: declaration names, pair
// keys, parameters, and call callees (directly or through a trailing
// member access) get scopes their raw node kind cannot express.
func contextScope(n, parent, grand *sitter.Node) (string, bool) {
	if parent == nil {
		return "", false
	}
	pk := parent.Type()

	if isSame(parent.ChildByFieldName("name"), n) {
		switch {
		case strings.Contains(pk, "function") || strings.Contains(pk, "method"):
			return scope.FunctionName, true
		case strings.Contains(pk, "class") || strings.Contains(pk, "struct") ||
			strings.Contains(pk, "interface") || strings.Contains(pk, "trait") ||
			strings.Contains(pk, "enum") || strings.Contains(pk, "type"):
			return scope.TypeName, true
		case strings.Contains(pk, "parameter"):
			return scope.Parameter, true
		}
	}

	if keyOfPair(n, parent, grand) {
		return scope.PropertyName, true
	}

	if strings.Contains(pk, "call") && isSame(parent.ChildByFieldName("function"), n) {
		return scope.FunctionName, true
	}
	if grand != nil && strings.Contains(grand.Type(), "call") && isSame(grand.ChildByFieldName("function"), parent) {
		if isSame(parent.ChildByFieldName("property"), n) ||
			isSame(parent.ChildByFieldName("field"), n) ||
			isSame(parent.ChildByFieldName("attribute"), n) {
			return scope.FunctionName, true
		}
	}

	if pk == "command_name" {
		return scope.FunctionName, true
	}
	if strings.Contains(pk, "parameter") {
		return scope.Parameter, true
	}

	return "", false
}

// keyOfPair reports whether n (or its enclosing string node) sits in the
// key field of a key-value pair.
func keyOfPair(n, parent, grand *sitter.Node) bool {
	if parent != nil && isSame(parent.ChildByFieldName("key"), n) {
		return true
	}
	return grand != nil && isSame(grand.ChildByFieldName("key"), parent)
}

func isIdentifierKind(kind string) bool {
	return kind == "identifier" || kind == "word" ||
		strings.HasSuffix(kind, "identifier") || strings.HasSuffix(kind, "name")
}

// isSame compares nodes by position; pointer identity is not stable
// across tree queries.
func isSame(a, b *sitter.Node) bool {
	return a != nil && b != nil && a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte()
}

// isUpperConstant reports whether an identifier reads as a SCREAMING_CASE
// constant: at least two characters, only uppercase letters, digits, and
// underscores, with at least one letter.
func isUpperConstant(s string) bool {
	if len(s) < 2 {
		return false
	}
	hasLetter := false
	for _, r := range s {
		switch {
		case r == '_':
		case unicode.IsDigit(r):
		case unicode.IsLetter(r):
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		default:
			return false
		}
	}
	return hasLetter
}
