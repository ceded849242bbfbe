package assets

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"strings"
)

//go:embed categories.txt
var FS embed.FS

// Categories returns the embedded word bank keyed by category name.
func Categories() (map[string][]string, error) {
	f, err := FS.Open("categories.txt")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseCategories(f)
}

// ParseCategories reads "[Name]" headers, each followed by one word per line.
// Blank lines and "#" comments are skipped.
func ParseCategories(r io.Reader) (map[string][]string, error) {
	out := make(map[string][]string)
	current := ""
	line := 0

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
			current = strings.TrimSpace(s[1 : len(s)-1])
			if current == "" {
				return nil, fmt.Errorf("line %d: empty category name", line)
			}
			if _, dup := out[current]; dup {
				return nil, fmt.Errorf("line %d: duplicate category %q", line, current)
			}
			out[current] = []string{}
			continue
		}
		if current == "" {
			return nil, fmt.Errorf("line %d: word %q outside of a category", line, s)
		}
		out[current] = append(out[current], strings.ToLower(s))
	}
	return out, sc.Err()
}
