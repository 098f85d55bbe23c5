package docs

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var (
	summaryLine = regexp.MustCompile(`^// @Summary (.+)$`)
	routerLine  = regexp.MustCompile(`^// @Router (\S+) \[(\w+)\]$`)
)

func TestDocMatchesHandlerAnnotations(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]struct {
			Summary string `json:"summary"`
		} `json:"paths"`
	}
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("doc is not valid JSON: %v", err)
	}

	files, err := filepath.Glob(filepath.Join("..", "handlers", "*_handler.go"))
	if err != nil || len(files) == 0 {
		t.Fatalf("no handler sources found: %v", err)
	}

	annotated := make(map[string]bool)
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			t.Fatal(err)
		}
		var summary string
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if m := summaryLine.FindStringSubmatch(line); m != nil {
				summary = m[1]
				continue
			}
			m := routerLine.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			path, method := m[1], m[2]
			annotated[method+" "+path] = true
			op, ok := doc.Paths[path][method]
			if !ok {
				t.Errorf("%s %s is annotated in %s but missing from the doc", method, path, filepath.Base(file))
				continue
			}
			if op.Summary != summary {
				t.Errorf("%s %s: doc summary %q, annotation %q", method, path, op.Summary, summary)
			}
		}
		f.Close()
	}

	for path, ops := range doc.Paths {
		for method := range ops {
			if !annotated[method+" "+path] {
				t.Errorf("%s %s is in the doc but no handler declares it", method, path)
			}
		}
	}
}
