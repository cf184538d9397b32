// Package exclude decides which template entries are left out of the generated project.
package exclude

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/gobwas/glob"

	"github.com/smartcontractkit/scaffold/internal/constants"
)

var ErrBadPattern = errors.New("invalid exclude pattern")

type pattern struct {
	source string
	globs  []glob.Glob
}

// Matcher holds compiled exclude patterns. The zero value only applies the structural exclusions.
type Matcher struct {
	patterns []pattern
}

// Compile compiles glob patterns. Patterns are compiled without separators so "*" also matches "/".
// A "**/" segment also matches zero directories, so "**/*.log" matches "out.log".
func Compile(patterns []string) (*Matcher, error) {
	m := &Matcher{patterns: make([]pattern, 0, len(patterns))}
	for _, p := range patterns {
		compiled := pattern{source: p}
		for _, variant := range expandRecursive(p) {
			g, err := glob.Compile(variant)
			if err != nil {
				return nil, fmt.Errorf("%w %q: %w", ErrBadPattern, p, err)
			}
			compiled.globs = append(compiled.globs, g)
		}
		m.patterns = append(m.patterns, compiled)
	}
	return m, nil
}

// expandRecursive returns p plus every variant with one or more "**/" segments dropped.
func expandRecursive(p string) []string {
	for i := 0; i+3 <= len(p); i++ {
		if p[i:i+3] != "**/" || (i > 0 && p[i-1] != '/') {
			continue
		}
		head := p[:i]
		var out []string
		for _, tail := range expandRecursive(p[i+3:]) {
			out = append(out, head+"**/"+tail, head+tail)
		}
		return out
	}
	return []string{p}
}

// Excludes reports whether the entry at rel, a slash-separated path relative to the
// template root, is skipped. Version control directories and the root descriptor always are.
func (m *Matcher) Excludes(rel string) bool {
	rel = path.Clean(strings.TrimPrefix(rel, "./"))
	if rel == constants.DescriptorFileName {
		return true
	}
	for _, component := range strings.Split(rel, "/") {
		if component == constants.VCSDirName {
			return true
		}
	}
	if m == nil {
		return false
	}
	for _, p := range m.patterns {
		for _, g := range p.globs {
			if g.Match(rel) {
				return true
			}
		}
	}
	return false
}

// Patterns returns the source patterns in declaration order.
func (m *Matcher) Patterns() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.patterns))
	for i, p := range m.patterns {
		out[i] = p.source
	}
	return out
}
