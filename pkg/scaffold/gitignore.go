package scaffold

import (
	"bufio"
	"bytes"
	"strings"
)

// IgnoreEntry is the line a project's ignore file must carry for the build tree.
const IgnoreEntry = "build"

// ignoreAppendix returns what must be appended to existing so that it ignores
// entry, or nil if an equivalent line is already there.
func ignoreAppendix(entry string) func(existing []byte) []byte {
	return func(existing []byte) []byte {
		if hasIgnoreEntry(existing, entry) {
			return nil
		}

		var b bytes.Buffer
		if len(existing) > 0 && existing[len(existing)-1] != '\n' {
			b.WriteByte('\n')
		}
		b.WriteString(entry)
		b.WriteByte('\n')
		return b.Bytes()
	}
}

func hasIgnoreEntry(data []byte, entry string) bool {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if matchesIgnoreEntry(sc.Text(), entry) {
			return true
		}
	}
	return false
}

// matchesIgnoreEntry treats "build", "build/", "/build" and "/build/" as the same
// entry. A trailing comment after whitespace is allowed.
func matchesIgnoreEntry(line, entry string) bool {
	line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
	if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
		return false
	}

	want := normalizeIgnoreEntry(entry)
	for _, form := range []string{want, want + "/", "/" + want, "/" + want + "/"} {
		rest, ok := strings.CutPrefix(line, form)
		if ok && trailingCommentOrEmpty(rest) {
			return true
		}
	}
	return false
}

func normalizeIgnoreEntry(entry string) string {
	entry = strings.TrimSpace(entry)
	entry = strings.TrimPrefix(entry, "/")
	return strings.TrimSuffix(entry, "/")
}

func trailingCommentOrEmpty(rest string) bool {
	if rest == "" {
		return true
	}
	if rest[0] != ' ' && rest[0] != '\t' {
		return false
	}
	rest = strings.TrimSpace(rest)
	return rest == "" || strings.HasPrefix(rest, "#")
}
