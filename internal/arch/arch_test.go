// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
}

// TestCoreDoesNotImportInternal checks that yamscan-core (the engine
// module, replaced in from ./core) never reaches back into yamscan's
// internal/ orchestration packages: the DP/scan/shuffle algorithms must
// stay usable standalone, the same boundary the teacher's arch test draws
// between ipcr-core and ipcr/internal.
func TestCoreDoesNotImportInternal(t *testing.T) {
	coreDir, err := filepath.Abs(filepath.Join("..", "..", "core"))
	if err != nil {
		t.Fatalf("resolve core dir: %v", err)
	}

	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = coreDir
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		for _, dep := range p.Imports {
			if strings.HasPrefix(dep, "yamscan/internal") || strings.HasPrefix(dep, "yamscan/cmd") {
				violations = append(violations, p.ImportPath+" → "+dep)
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}

// TestInternalLayering checks the narrower internal/ boundary: the cli and
// shufcli packages are pure flag parsers and must not reach into the
// orchestrators (app/shufapp) that consume them, and pipeline/writers stay
// below app the same way, mirroring the teacher's pipeline/writers bans.
func TestInternalLayering(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"yamscan/internal/cli":      {"yamscan/internal/app", "yamscan/cmd/"},
		"yamscan/internal/shufcli":  {"yamscan/internal/shufapp", "yamscan/cmd/"},
		"yamscan/internal/pipeline": {"yamscan/internal/app", "yamscan/internal/writers", "yamscan/cmd/"},
		"yamscan/internal/writers":  {"yamscan/internal/app", "yamscan/internal/pipeline", "yamscan/cmd/"},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "yamscan/") {
			continue
		}
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(p.ImportPath, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "yamscan/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, p.ImportPath+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
