package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewUsesDefaults(t *testing.T) {
	root := t.TempDir()
	cfg, err := New(Options{Root: root})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if cfg.BaseDir != filepath.Join(root, "base") {
		t.Fatalf("wrong base dir: %s", cfg.BaseDir)
	}
	if cfg.ModulesDir != filepath.Join(root, "modules") {
		t.Fatalf("wrong modules dir: %s", cfg.ModulesDir)
	}
	if cfg.OutputPath() != filepath.Join(root, "copilot-instructions.md") {
		t.Fatalf("wrong output path: %s", cfg.OutputPath())
	}
	if cfg.BackupPath() != cfg.OutputPath()+".bak" {
		t.Fatalf("wrong backup path: %s", cfg.BackupPath())
	}
	if cfg.UniversalPath() != filepath.Join(root, "base", "universal.md") {
		t.Fatalf("wrong universal path: %s", cfg.UniversalPath())
	}
	if cfg.CorePath() != filepath.Join(root, "base", "py_core.md") {
		t.Fatalf("wrong core path: %s", cfg.CorePath())
	}
	if cfg.ModulePath("pandas") != filepath.Join(root, "modules", "pandas.md") {
		t.Fatalf("wrong module path: %s", cfg.ModulePath("pandas"))
	}
}

func TestNewParsesYamlOverrides(t *testing.T) {
	root := t.TempDir()
	configYAML := strings.TrimSpace(`
base_dir: src/uni
modules_dir: src/mods
output_name: instructions.md
backup_suffix: .backup
extension: .markdown
universal: uni.markdown
core: core.markdown
`)
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := New(Options{Root: root})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if cfg.BaseDir != filepath.Join(root, "src", "uni") {
		t.Fatalf("expected relative base dir resolved against root, got %s", cfg.BaseDir)
	}
	if cfg.ModulesDir != filepath.Join(root, "src", "mods") {
		t.Fatalf("expected relative modules dir resolved against root, got %s", cfg.ModulesDir)
	}
	if cfg.OutputName != "instructions.md" {
		t.Fatalf("wrong output name: %s", cfg.OutputName)
	}
	if cfg.BackupPath() != filepath.Join(root, "instructions.md.backup") {
		t.Fatalf("wrong backup path: %s", cfg.BackupPath())
	}
	if cfg.ModulePath("numpy") != filepath.Join(root, "src", "mods", "numpy.markdown") {
		t.Fatalf("wrong module path: %s", cfg.ModulePath("numpy"))
	}
}

func TestNewFlagsWinOverFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte("modules_dir: from-file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := New(Options{Root: root, ModulesDir: "from-flag"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if cfg.ModulesDir != filepath.Join(root, "from-flag") {
		t.Fatalf("expected flag override, got %s", cfg.ModulesDir)
	}
}

func TestNewRejectsIdenticalBaseDocuments(t *testing.T) {
	root := t.TempDir()
	yaml := "universal: same.md\ncore: same.md\n"
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(Options{Root: root}); err == nil {
		t.Fatal("expected validation error for identical base documents")
	}
}

func TestNewRootFromEnvironment(t *testing.T) {
	root := t.TempDir()
	t.Setenv(RootEnvVar, root)
	cfg, err := New(Options{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatal(err)
	}
	got, err := filepath.EvalSymlinks(cfg.Root)
	if err != nil {
		t.Fatal(err)
	}
	if got != resolved {
		t.Fatalf("expected root %s, got %s", resolved, got)
	}
}

func TestNewNormalizesExtension(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte("extension: txt\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := New(Options{Root: root})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if cfg.Extension != ".txt" {
		t.Fatalf("expected extension .txt, got %s", cfg.Extension)
	}
}
