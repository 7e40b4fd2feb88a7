package filter

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern is a compiled glob with find -path semantics: '*', '?' and
// bracket classes all match '/', and '\' escapes the next character.
type Pattern struct {
	glob string
	re   *regexp.Regexp
}

// Compile translates glob into a Pattern. A leading "./" is ignored so
// patterns line up with cleaned paths.
func Compile(glob string) (Pattern, error) {
	glob = strings.TrimPrefix(glob, "./")

	expr, err := translate(glob)
	if err != nil {
		return Pattern{}, err
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("pattern %q: %w", glob, err)
	}

	return Pattern{glob: glob, re: re}, nil
}

// Match reports whether path, with forward slashes, matches in full.
func (p Pattern) Match(path string) bool {
	return p.re != nil && p.re.MatchString(path)
}

func (p Pattern) String() string {
	return p.glob
}

// Patterns is an ordered set of compiled globs.
type Patterns []Pattern

// CompileAll compiles every glob, failing on the first malformed one.
func CompileAll(globs []string) (Patterns, error) {
	patterns := make(Patterns, 0, len(globs))

	for _, glob := range globs {
		pattern, err := Compile(glob)
		if err != nil {
			return nil, err
		}

		patterns = append(patterns, pattern)
	}

	return patterns, nil
}

// Any reports whether at least one pattern matches path.
func (ps Patterns) Any(path string) bool {
	for _, p := range ps {
		if p.Match(path) {
			return true
		}
	}

	return false
}

func translate(glob string) (string, error) {
	var expr strings.Builder

	expr.WriteByte('^')

	for i := 0; i < len(glob); i++ {
		switch c := glob[i]; c {
		case '*':
			expr.WriteString(".*")
		case '?':
			expr.WriteByte('.')
		case '\\':
			if i+1 == len(glob) {
				return "", fmt.Errorf("pattern %q: trailing backslash", glob)
			}

			i++
			expr.WriteString(regexp.QuoteMeta(glob[i : i+1]))
		case '[':
			end := classEnd(glob, i)
			if end < 0 {
				return "", fmt.Errorf("pattern %q: unclosed character class", glob)
			}

			class := glob[i+1 : end]
			if strings.HasPrefix(class, "!") {
				class = "^" + class[1:]
			}

			expr.WriteString("[" + class + "]")

			i = end
		default:
			expr.WriteString(regexp.QuoteMeta(glob[i : i+1]))
		}
	}

	expr.WriteByte('$')

	return expr.String(), nil
}

// classEnd returns the index of the ']' closing the class opened at start,
// or -1. A ']' right after '[' or '[!' is a literal member.
func classEnd(glob string, start int) int {
	i := start + 1
	if i < len(glob) && glob[i] == '!' {
		i++
	}

	if i < len(glob) && glob[i] == ']' {
		i++
	}

	if end := strings.IndexByte(glob[i:], ']'); end >= 0 {
		return i + end
	}

	return -1
}
