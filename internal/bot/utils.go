package bot

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lithammer/dedent"
)

func formatReplyText(text string, a ...any) string {
	return fmt.Sprintf(strings.TrimSpace(dedent.Dedent(text)), a...)
}

// parseCommand splits a message into its command and the trimmed rest of
// the text. A bot name suffix (/compliment@somebot) is dropped.
func parseCommand(s string) (string, string) {
	s = strings.TrimSpace(s)
	head, rest := s, ""
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		head, rest = s[:i], s[i:]
	}
	command, _, _ := strings.Cut(head, "@")
	return command, strings.TrimSpace(rest)
}

// complimentCount renders n with the right noun form, e.g. "1 compliment".
func complimentCount(n int) string {
	if n == 1 {
		return "1 compliment"
	}
	return fmt.Sprintf("%d compliments", n)
}
