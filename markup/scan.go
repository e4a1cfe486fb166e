package markup

const (
	// TagOpen starts an invocation. The tag name follows it immediately.
	TagOpen = "{@"

	// TagClose ends an invocation.
	TagClose = "}"
)

// invocation marks one innermost {@name content} span found during a pass.
// All offsets are byte positions in the scanned buffer.
type invocation struct {
	// start is the position of '{', end is the position right after '}'.
	start, end int

	// nameEnd is the position right after the last name character.
	// The name itself starts at start+2.
	nameEnd int
}

func (inv invocation) name(src []byte) string {
	return string(src[inv.start+len(TagOpen) : inv.nameEnd])
}

func (inv invocation) content(src []byte) string {
	return string(src[inv.nameEnd : inv.end-len(TagClose)])
}

// scan appends to out every non-overlapping innermost invocation of src, left to right.
//
// A match is "{@", at least one word character, then any bytes except '{' and '}', then '}'.
// The name is taken greedily; since word characters are valid content too, a shorter name
// can never match where the greedy one fails.
func scan(src []byte, out []invocation) []invocation {
	n := len(src)

	for i := 0; i+len(TagOpen) < n; {
		if src[i] != '{' || src[i+1] != '@' {
			i++
			continue
		}

		nameEnd := i + len(TagOpen)
		for nameEnd < n && isWordByte(src[nameEnd]) {
			nameEnd++
		}

		// "{@" without a name, e.g. "{@ b}" or "{@}"
		if nameEnd == i+len(TagOpen) {
			i++
			continue
		}

		j := nameEnd
		for j < n && src[j] != '{' && src[j] != '}' {
			j++
		}

		// nothing closes this one and nothing after it can close either
		if j == n {
			break
		}

		// nested opening brace: the outer candidate is not innermost,
		// the next candidate can start no earlier than this brace
		if src[j] == '{' {
			i = j
			continue
		}

		out = append(out, invocation{start: i, end: j + 1, nameEnd: nameEnd})
		i = j + 1
	}

	return out
}

func isWordByte(b byte) bool {
	return b == '_' ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9')
}
