package internalcheck

import (
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const backendPath = "github.com/cosmosis/cosmosis-go/pkg/datablock/internal/backend"

// TestCgoConfinedToBackend enforces the marshalling boundary: only the
// backend package may import "C" or "unsafe" for native memory access. The
// one exception is the public Adopt constructor, which needs unsafe.Pointer
// to accept a handle from a native pipeline callback.
func TestCgoConfinedToBackend(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports | packages.NeedSyntax,
	}

	pkgs, err := packages.Load(cfg, "github.com/cosmosis/cosmosis-go/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string
	for _, pkg := range pkgs {
		if pkg.PkgPath == backendPath {
			continue
		}
		for _, file := range pkg.Syntax {
			for _, imp := range file.Imports {
				path := strings.Trim(imp.Path.Value, `"`)
				switch path {
				case "C":
					pos := pkg.Fset.Position(imp.Pos())
					findings = append(findings, pos.String()+": cgo import outside internal/backend")
				case "unsafe":
					name := pkg.Fset.Position(imp.Pos()).Filename
					if strings.HasSuffix(name, "datablock.go") || strings.HasSuffix(name, "datablock_stub.go") {
						continue // Adopt takes an unsafe.Pointer handle
					}
					pos := pkg.Fset.Position(imp.Pos())
					findings = append(findings, pos.String()+": unsafe import outside internal/backend")
				}
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("boundary policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

// TestBackendNotImportedOutsideDatablock keeps the backend internal to the
// public package and its version plumbing; subpackages and commands must go
// through the typed API.
func TestBackendNotImportedOutsideDatablock(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedImports,
	}

	pkgs, err := packages.Load(cfg, "github.com/cosmosis/cosmosis-go/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string
	for _, pkg := range pkgs {
		if pkg.PkgPath == backendPath ||
			pkg.PkgPath == "github.com/cosmosis/cosmosis-go/pkg/datablock" {
			continue
		}
		if _, ok := pkg.Imports[backendPath]; ok {
			findings = append(findings, pkg.PkgPath+" imports internal/backend directly")
		}
	}

	if len(findings) > 0 {
		t.Fatalf("boundary policy violation:\n%s", strings.Join(findings, "\n"))
	}
}
