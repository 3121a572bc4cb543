package syncer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/mirrorsync/pkg/properties"
)

func titledPage(id, title string) properties.Page {
	return properties.Page{
		ID:         id,
		Properties: map[string]properties.Value{"Activity": properties.Title{Text: title}},
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Fix Bug", "fix bug"},
		{"fix bug ", "fix bug"},
		{"  FIX BUG", "fix bug"},
		{"Straße", "strasse"}, // Unicode case folding, not plain lowercasing
		{"   ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeKey(tt.in), "input %q", tt.in)
	}
}

func TestBuildIndex(t *testing.T) {
	t.Run("keys are normalized", func(t *testing.T) {
		index := BuildIndex([]properties.Page{
			titledPage("p1", "Task A"),
			titledPage("p2", "  task B "),
		})
		assert.Equal(t, map[string]string{"task a": "p1", "task b": "p2"}, index)
	})

	t.Run("empty titles skipped", func(t *testing.T) {
		index := BuildIndex([]properties.Page{
			titledPage("p1", "   "),
			{ID: "p2", Properties: map[string]properties.Value{}},
		})
		assert.Empty(t, index)
	})

	t.Run("last colliding page wins", func(t *testing.T) {
		index := BuildIndex([]properties.Page{
			titledPage("p1", "Task A"),
			titledPage("p2", "TASK A"),
		})
		assert.Equal(t, map[string]string{"task a": "p2"}, index)
	})
}
