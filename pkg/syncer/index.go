package syncer

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/agentstation/mirrorsync/pkg/logging"
	"github.com/agentstation/mirrorsync/pkg/properties"
)

// NormalizeKey derives a page's natural key from its title text: surrounding
// whitespace stripped, then Unicode case folded. Natural keys are the join
// key between Master and Mirror.
func NormalizeKey(title string) string {
	return cases.Fold().String(strings.TrimSpace(title))
}

// BuildIndex maps each page's natural key to its page ID. Pages with an empty
// key are skipped. When two pages share a key the last one seen wins, which
// depends on the store's pagination order; the collision is logged so
// operators can spot duplicate titles in the destination.
func BuildIndex(pages []properties.Page) map[string]string {
	index := make(map[string]string, len(pages))
	for _, page := range pages {
		key := NormalizeKey(page.Title())
		if key == "" {
			continue
		}
		if prev, ok := index[key]; ok {
			logging.Debug().
				Str("key", key).
				Str("shadowed", prev).
				Str("kept", page.ID).
				Msg("Duplicate title, keeping last page seen")
		}
		index[key] = page.ID
	}
	return index
}
