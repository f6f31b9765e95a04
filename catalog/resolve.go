package catalog

import "strings"

// Resolve maps a free-text destination onto a catalog key. The input is
// lower-cased and trimmed, then the first key (in priority order) that is
// contained in the input, or that contains the input, wins. "trip to jaipur"
// and "jai" both resolve to jaipur.
func (c *Catalog) Resolve(destination string) (string, bool) {
	d := strings.ToLower(strings.TrimSpace(destination))
	if d == "" {
		return "", false
	}
	for _, p := range c.profiles {
		if strings.Contains(d, p.Key) || strings.Contains(p.Key, d) {
			return p.Key, true
		}
	}
	return "", false
}
