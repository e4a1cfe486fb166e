// Package markup expands the inline rules-text markup used by the 5etools dataset
// into plain, human-readable text.
//
// An invocation looks like {@name content}, where name is a run of word characters
// ([A-Za-z0-9_]) and content is any text without '{' or '}'. Invocations may be nested:
// {@b {@dc 15}} first becomes {@b DC 15} and then DC 15.
//
// # Rewriting
//
// Each pass scans the buffer once from left to right and collects every innermost
// invocation (content without braces). All of them are replaced at once, so a replacement
// never affects another match of the same pass. Passes repeat until nothing changes.
//
// # Termination
//
// No built-in rule produces '{', while every matched invocation contains one. So each pass
// that changes the buffer removes at least one '{' and the loop is bounded by the number of
// braces in the input. On top of that, the number of passes is capped (see [WithMaxPasses]).
// Reaching the cap is not an error: the last buffer is returned as is.
//
// # Policies
//
//  1. Tag names are case-sensitive. {@ATK m} is not {@atk m}.
//  2. Content is trimmed once before the rule runs. Inner whitespace is kept.
//  3. Unknown tags resolve to the first '|' separated field of their content.
//  4. Malformed invocations (no closing brace, nested braces that never resolve) stay in the output verbatim.
package markup

// Expander rewrites markup with the built-in rule table.
// It holds no mutable state and is safe for concurrent use.
type Expander struct {
	maxPasses int
}

// Option configures an [Expander].
type Option func(*Expander)

// WithMaxPasses caps the number of rewriting passes.
// n <= 0 restores the default, which is len(input) + 1.
func WithMaxPasses(n int) Option {
	return func(e *Expander) {
		if n < 0 {
			n = 0
		}
		e.maxPasses = n
	}
}

// New returns an Expander configured by opts.
func New(opts ...Option) *Expander {
	e := &Expander{}
	for _, o := range opts {
		o(e)
	}
	return e
}

var defaultExpander = New()

// Expand rewrites text with the default Expander.
func Expand(text string) string {
	return defaultExpander.Expand(text)
}

// ExpandValue is [Expand] for loosely typed input.
// nil, a nil *string or any non-string value yields an empty string.
func ExpandValue(v any) string {
	switch s := v.(type) {
	case string:
		return Expand(s)
	case *string:
		if s == nil {
			return ""
		}
		return Expand(*s)
	default:
		return ""
	}
}

// Expand rewrites every invocation in text until a pass produces no change.
func (e *Expander) Expand(text string) string {
	if text == "" {
		return ""
	}

	limit := e.passLimit(len(text))

	// two buffers are swapped between passes, so the allocations happen once
	cur := []byte(text)
	next := make([]byte, 0, len(cur))

	var matches []invocation

	for pass := 0; pass < limit; pass++ {
		matches = scan(cur, matches[:0])

		// a matched invocation always contains '{' and no rule emits one,
		// so an empty match list is exactly the fixed point
		if len(matches) == 0 {
			break
		}

		next = splice(next[:0], cur, matches)
		cur, next = next, cur
	}

	return string(cur)
}

func (e *Expander) passLimit(n int) int {
	if e.maxPasses > 0 {
		return e.maxPasses
	}
	return n + 1
}

// splice writes src into dst with every match replaced by its resolution.
func splice(dst, src []byte, matches []invocation) []byte {
	last := 0
	for _, m := range matches {
		dst = append(dst, src[last:m.start]...)
		dst = append(dst, resolve(m.name(src), m.content(src))...)
		last = m.end
	}
	return append(dst, src[last:]...)
}
