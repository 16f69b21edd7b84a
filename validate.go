package figdoc

import (
	"regexp"
	"strings"
)

var (
	fileKeyRegexp = regexp.MustCompile(`^[a-zA-Z0-9]{22,}$`)
	fileURLRegexp = regexp.MustCompile(`figma\.com/(?:file|design)/([a-zA-Z0-9]{22,})`)
	nodeIDRegexp  = regexp.MustCompile(`node-id=([0-9]+-[0-9]+)`)
)

// TokenPrefix is the prefix of personal access tokens.
const TokenPrefix = "figd_"

// ValidateFileKey returns EINVALID unless key is at least 22 alphanumerics.
func ValidateFileKey(key string) error {
	if key == "" {
		return Errorf(EINVALID, "file key required")
	}
	if !fileKeyRegexp.MatchString(key) {
		return Errorf(EINVALID, "invalid file key '%s': expected at least 22 alphanumeric characters", key)
	}
	return nil
}

// ParseFileKey accepts either a bare file key or a figma.com file/design URL
// and returns the file key.
func ParseFileKey(input string) (string, error) {
	input = strings.TrimSpace(input)
	if strings.Contains(input, "figma.com") {
		m := fileURLRegexp.FindStringSubmatch(input)
		if m == nil {
			return "", Errorf(EINVALID, "could not extract file key from URL: %s", input)
		}
		return m[1], nil
	}
	if err := ValidateFileKey(input); err != nil {
		return "", err
	}
	return input, nil
}

// ParseNodeID extracts a node ID from a URL carrying a node-id query
// parameter, or normalises a bare "1-2" or "1:2" ID to "1:2".
func ParseNodeID(input string) (string, bool) {
	if m := nodeIDRegexp.FindStringSubmatch(input); m != nil {
		return strings.ReplaceAll(m[1], "-", ":"), true
	}

	if input == "" || !strings.ContainsAny(input, "-:") {
		return "", false
	}
	for _, r := range input {
		if (r < '0' || r > '9') && r != '-' && r != ':' {
			return "", false
		}
	}
	return strings.ReplaceAll(input, "-", ":"), true
}

// ParseNodeIDs normalises every entry of ids, failing on the first entry
// that is not a node ID.
func ParseNodeIDs(ids []string) ([]string, error) {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		nid, ok := ParseNodeID(strings.TrimSpace(id))
		if !ok {
			return nil, Errorf(EINVALID, "invalid node id '%s'", id)
		}
		out = append(out, nid)
	}
	return out, nil
}

// ParseFileAndNodes returns the file key and any node ID encoded in a file
// URL. A bare file key yields no node IDs.
func ParseFileAndNodes(input string) (string, []string, error) {
	key, err := ParseFileKey(input)
	if err != nil {
		return "", nil, err
	}
	var ids []string
	if strings.Contains(input, "figma.com") {
		if id, ok := ParseNodeID(input); ok {
			ids = append(ids, id)
		}
	}
	return key, ids, nil
}

// ValidateToken performs a local sanity check on a personal access token.
func ValidateToken(token string) error {
	switch {
	case token == "":
		return Errorf(EINVALID, "token required")
	case !strings.HasPrefix(token, TokenPrefix):
		return Errorf(EINVALID, "token should start with '%s'", TokenPrefix)
	case len(token) < 10:
		return Errorf(EINVALID, "token is too short")
	}
	return nil
}
