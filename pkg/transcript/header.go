package transcript

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const headerFence = "---"

// ParseHeader splits a leading YAML front-matter block off text.
// It returns the header values and the remaining body. Text without a
// header is returned unchanged with zero Options.
func ParseHeader(text string) (Options, string, error) {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	if !strings.HasPrefix(normalized, headerFence+"\n") {
		return Options{}, text, nil
	}
	rest := normalized[len(headerFence)+1:]

	end := -1
	offset := 0
	for _, line := range strings.SplitAfter(rest, "\n") {
		if strings.TrimRight(line, "\n") == headerFence {
			end = offset
			break
		}
		offset += len(line)
	}
	if end < 0 {
		return Options{}, text, errors.New("front matter is not terminated")
	}

	var header Options
	if err := yaml.Unmarshal([]byte(rest[:end]), &header); err != nil {
		return Options{}, text, errors.Wrap(err, "failed to parse front matter")
	}

	body := strings.TrimPrefix(rest[end:], headerFence)
	return header, strings.TrimLeft(body, "\n"), nil
}
