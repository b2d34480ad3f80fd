package docs

import (
	"os"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics ensures the documentation stays in sync with itself:
// every topic listed in readme.md loads, and every .md file (except the
// readme) is listed in readme.md.
func TestTopics(t *testing.T) {
	source, err := os.ReadFile("readme.md")
	if err != nil {
		t.Fatalf("failed to read readme.md: %v", err)
	}

	// Collect "name: description" list items from the readme.
	topicRegex := regexp.MustCompile(`^([a-z]+):`)
	var topicsInReadme []string

	doc := goldmark.DefaultParser().Parse(text.NewReader(source))
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		// in a tight list the item text lives in a TextBlock child
		if _, ok := n.Parent().(*ast.ListItem); !ok {
			return ast.WalkContinue, nil
		}
		var line strings.Builder
		for i := 0; i < n.Lines().Len(); i++ {
			seg := n.Lines().At(i)
			line.Write(seg.Value(source))
		}
		if m := topicRegex.FindStringSubmatch(strings.TrimSpace(line.String())); m != nil {
			topicsInReadme = append(topicsInReadme, m[1])
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("failed to walk readme.md: %v", err)
	}
	if len(topicsInReadme) == 0 {
		t.Fatal("no topics found in readme.md")
	}

	for _, topic := range topicsInReadme {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("topic %q listed in readme.md cannot be loaded: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic file %q is not listed in readme.md", topic)
		}
	}
}
