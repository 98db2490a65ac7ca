package wealth

import (
	"os"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestDocumentation keeps the README honest: every fenced code block must
// declare a language, and every command example must invoke the wt binary.
func TestDocumentation(t *testing.T) {
	content, err := os.ReadFile("README.md")
	if err != nil {
		t.Fatalf("failed to read README.md: %v", err)
	}

	mdParser := goldmark.DefaultParser()
	root := mdParser.Parse(text.NewReader(content))

	var blocks int
	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		blocks++

		if fcb.Info == nil {
			t.Errorf("README.md: fenced code block without a language")
			return ast.WalkContinue, nil
		}
		lang := string(fcb.Info.Segment.Value(content))

		var blockContent strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			blockContent.WriteString(string(line.Value(content)))
		}

		if lang == "bash" {
			for _, line := range strings.Split(strings.TrimSpace(blockContent.String()), "\n") {
				line = strings.TrimSpace(line)
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				if !strings.HasPrefix(line, "wt ") && !strings.HasPrefix(line, "go ") {
					t.Errorf("README.md: unexpected command in bash block: %q", line)
				}
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("failed to walk README.md: %v", err)
	}
	if blocks == 0 {
		t.Error("README.md: expected at least one fenced code block")
	}
}
