package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/vscode-kit/internal/errors"
	"github.com/thoreinstein/vscode-kit/internal/template"
)

func init() {
	color.NoColor = true
}

func vscodeFile(root, name string) string {
	return filepath.Join(root, ".vscode", name)
}

func assertFile(t *testing.T, path string, want bool) {
	t.Helper()
	info, err := os.Stat(path)
	switch {
	case want && err != nil:
		t.Errorf("expected %s to exist: %v", path, err)
	case want && !info.Mode().IsRegular():
		t.Errorf("expected %s to be a regular file", path)
	case !want && err == nil:
		t.Errorf("expected %s not to exist", path)
	}
}

func TestGenerate_AllFiles(t *testing.T) {
	root := t.TempDir()

	res := execute(t, "", "generate", "--project-root", root)
	if res.err != nil {
		t.Fatalf("generate failed: %v\nstderr: %s", res.err, res.stderr)
	}

	for _, name := range []string{"launch.json", "tasks.json", "settings.json"} {
		assertFile(t, vscodeFile(root, name), true)
	}

	want := "Created:\n" +
		"- " + vscodeFile(root, "launch.json") + "\n" +
		"- " + vscodeFile(root, "tasks.json") + "\n" +
		"- " + vscodeFile(root, "settings.json") + "\n"
	if res.stdout != want {
		t.Errorf("stdout = %q, want %q", res.stdout, want)
	}
	if strings.Contains(res.stderr, "Errors:") {
		t.Errorf("unexpected errors on stderr: %s", res.stderr)
	}
}

func TestGenerate_SelectedSubset(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want map[string]bool
	}{
		{
			name: "comma separated",
			args: []string{"--selected", "launch,settings"},
			want: map[string]bool{"launch.json": true, "tasks.json": false, "settings.json": true},
		},
		{
			name: "repeated flag",
			args: []string{"--selected", "tasks", "--selected", "launch"},
			want: map[string]bool{"launch.json": true, "tasks.json": true, "settings.json": false},
		},
		{
			name: "case insensitive",
			args: []string{"--selected", "SETTINGS"},
			want: map[string]bool{"launch.json": false, "tasks.json": false, "settings.json": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			args := append([]string{"generate", "--project-root", root}, tt.args...)

			res := execute(t, "", args...)
			if res.err != nil {
				t.Fatalf("generate failed: %v", res.err)
			}
			for name, exists := range tt.want {
				assertFile(t, vscodeFile(root, name), exists)
			}
		})
	}
}

func TestGenerate_UnknownKind(t *testing.T) {
	root := t.TempDir()

	res := execute(t, "", "generate", "--project-root", root, "--selected", "launch,extensions")
	if res.err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if !errors.Is(res.err, errors.ErrUnknownKind) {
		t.Errorf("error = %v, want ErrUnknownKind", res.err)
	}
	if errors.ExitCode(res.err) != errors.ExitUser {
		t.Errorf("exit code = %d, want %d", errors.ExitCode(res.err), errors.ExitUser)
	}
	if _, err := os.Stat(filepath.Join(root, ".vscode")); !os.IsNotExist(err) {
		t.Error(".vscode should not be created when arguments are invalid")
	}
}

func TestGenerate_UnknownPreset(t *testing.T) {
	res := execute(t, "", "generate", "--project-root", t.TempDir(), "--preset", "rust")
	if !errors.Is(res.err, errors.ErrUnknownPreset) {
		t.Errorf("error = %v, want ErrUnknownPreset", res.err)
	}
}

func TestGenerate_TemplateDirOverride(t *testing.T) {
	root := t.TempDir()
	templates := t.TempDir()
	if err := os.MkdirAll(filepath.Join(templates, "python"), 0o755); err != nil {
		t.Fatal(err)
	}
	custom := "{\n  \"version\": \"2.0\", \n  \"tasks\": [{\"label\": \"custom\"}]\n}\n"
	if err := os.WriteFile(filepath.Join(templates, "python", "tasks.json"), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	res := execute(t, "", "generate", "--project-root", root, "--template-dir", templates, "--selected", "tasks")
	if res.err != nil {
		t.Fatalf("generate failed: %v", res.err)
	}

	written, err := os.ReadFile(vscodeFile(root, "tasks.json"))
	if err != nil {
		t.Fatal(err)
	}
	if string(written) != custom {
		t.Errorf("tasks.json = %q, want override content", written)
	}
}

func TestGenerate_TemplateDirFromConfig(t *testing.T) {
	root := t.TempDir()
	templates := t.TempDir()
	if err := os.MkdirAll(filepath.Join(templates, "python"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(templates, "python", "settings.json"), []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cfg := "version: 1\ntemplate_dir: " + templates + "\ndefault_kinds: [settings]\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}

	res := execute(t, "", "--config", cfgPath, "generate", "--project-root", root)
	if res.err != nil {
		t.Fatalf("generate failed: %v\nstderr: %s", res.err, res.stderr)
	}

	assertFile(t, vscodeFile(root, "launch.json"), false)
	written, err := os.ReadFile(vscodeFile(root, "settings.json"))
	if err != nil {
		t.Fatal(err)
	}
	if string(written) != "{}\n" {
		t.Errorf("settings.json = %q, want override from config template_dir", written)
	}
}

func TestGenerate_PreflightErrors(t *testing.T) {
	base := t.TempDir()
	file := filepath.Join(base, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(base, "no_such_dir")

	tests := []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{
			name:       "missing project root",
			args:       []string{"--project-root", missing},
			wantStderr: "Error: project root does not exist: " + missing + "\n",
		},
		{
			name:       "project root is a file",
			args:       []string{"--project-root", file},
			wantStderr: "Error: project root is not a directory: " + file + "\n",
		},
		{
			name:       "missing template dir",
			args:       []string{"--project-root", base, "--template-dir", missing},
			wantStderr: "Error: template dir does not exist: " + missing + "\n",
		},
		{
			name:       "template dir is a file",
			args:       []string{"--project-root", base, "--template-dir", file},
			wantStderr: "Error: template dir is not a directory: " + file + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, "", append([]string{"generate"}, tt.args...)...)
			if res.err == nil {
				t.Fatal("expected error")
			}
			if res.stderr != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", res.stderr, tt.wantStderr)
			}
			if res.stdout != "" {
				t.Errorf("stdout = %q, want empty", res.stdout)
			}
			if errors.ExitCode(res.err) != errors.ExitUser {
				t.Errorf("exit code = %d, want 1", errors.ExitCode(res.err))
			}
			if _, err := os.Stat(filepath.Join(base, ".vscode")); !os.IsNotExist(err) {
				t.Error("no generation should happen after a pre-flight failure")
			}

			// Already reported: main must not print it again
			var buf strings.Builder
			ReportError(&buf, res.err)
			if buf.Len() != 0 {
				t.Errorf("ReportError printed %q for a reported error", buf.String())
			}
		})
	}
}

func TestGenerate_RequiresProjectRoot(t *testing.T) {
	res := execute(t, "", "generate")
	if res.err == nil || !strings.Contains(res.err.Error(), "project-root") {
		t.Errorf("error = %v, want required flag error", res.err)
	}
}

func TestGenerate_SkipsExisting(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".vscode"), 0o755); err != nil {
		t.Fatal(err)
	}
	existing := []byte("{\n  \"existing\": true\n}\n")
	tasks := vscodeFile(root, "tasks.json")
	if err := os.WriteFile(tasks, existing, 0o644); err != nil {
		t.Fatal(err)
	}

	res := execute(t, "", "generate", "--project-root", root)
	if res.err != nil {
		t.Fatalf("generate failed: %v", res.err)
	}

	want := "Created:\n" +
		"- " + vscodeFile(root, "launch.json") + "\n" +
		"- " + vscodeFile(root, "settings.json") + "\n" +
		"Skipped (already exists):\n" +
		"- " + tasks + "\n"
	if res.stdout != want {
		t.Errorf("stdout = %q, want %q", res.stdout, want)
	}

	got, err := os.ReadFile(tasks)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(existing) {
		t.Errorf("existing tasks.json was modified: %q", got)
	}
}

func TestGenerate_InteractiveOverwrite(t *testing.T) {
	tests := []struct {
		name      string
		stdin     string
		overwrite bool
	}{
		{name: "yes overwrites", stdin: "y\n", overwrite: true},
		{name: "no keeps file", stdin: "n\n", overwrite: false},
		{name: "enter keeps file", stdin: "\n", overwrite: false},
		{name: "end of input keeps file", stdin: "", overwrite: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			if err := os.MkdirAll(filepath.Join(root, ".vscode"), 0o755); err != nil {
				t.Fatal(err)
			}
			launch := vscodeFile(root, "launch.json")
			if err := os.WriteFile(launch, []byte("old"), 0o644); err != nil {
				t.Fatal(err)
			}

			res := execute(t, tt.stdin, "generate", "--project-root", root, "--selected", "launch", "--interactive")
			if res.err != nil {
				t.Fatalf("generate failed: %v", res.err)
			}
			if !strings.Contains(res.stdout, "File exists: "+launch+". Overwrite? [y/N]: ") {
				t.Errorf("prompt missing from stdout: %q", res.stdout)
			}

			got, err := os.ReadFile(launch)
			if err != nil {
				t.Fatal(err)
			}
			want := "old"
			if tt.overwrite {
				want = template.Embedded(template.PresetPython, template.KindLaunch)
			}
			if string(got) != want {
				t.Errorf("launch.json = %q, want %q", got, want)
			}
		})
	}
}

func TestGenerate_TerminalStdinPrompts(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".vscode"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(vscodeFile(root, "settings.json"), []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	res := executeWithTTY(t, "yes\n", "generate", "--project-root", root, "--selected", "settings")
	if res.err != nil {
		t.Fatalf("generate failed: %v", res.err)
	}
	if !strings.Contains(res.stdout, "Overwrite?") {
		t.Errorf("expected a prompt when stdin is a terminal, got %q", res.stdout)
	}
}

func TestGenerate_Pick(t *testing.T) {
	t.Run("picked subset", func(t *testing.T) {
		root := t.TempDir()
		var offered []template.Kind
		fakePicker(t, func(_ template.Preset, k []template.Kind) ([]template.Kind, error) {
			offered = k
			return []template.Kind{template.KindTasks}, nil
		})

		res := executeWithTTY(t, "", "generate", "--project-root", root, "--pick")
		if res.err != nil {
			t.Fatalf("generate failed: %v", res.err)
		}
		if len(offered) != 3 {
			t.Errorf("picker offered %v, want all kinds", offered)
		}
		assertFile(t, vscodeFile(root, "tasks.json"), true)
		assertFile(t, vscodeFile(root, "launch.json"), false)
	})

	t.Run("abort generates nothing", func(t *testing.T) {
		root := t.TempDir()
		fakePicker(t, func(template.Preset, []template.Kind) ([]template.Kind, error) {
			return nil, fuzzyfinder.ErrAbort
		})

		res := executeWithTTY(t, "", "generate", "--project-root", root, "--pick")
		if res.err != nil {
			t.Fatalf("abort should succeed, got %v", res.err)
		}
		if _, err := os.Stat(filepath.Join(root, ".vscode")); !os.IsNotExist(err) {
			t.Error(".vscode should not be created after abort")
		}
	})

	t.Run("ignored without terminal", func(t *testing.T) {
		root := t.TempDir()
		called := false
		fakePicker(t, func(_ template.Preset, k []template.Kind) ([]template.Kind, error) {
			called = true
			return k, nil
		})

		res := execute(t, "", "generate", "--project-root", root, "--pick")
		if res.err != nil {
			t.Fatalf("generate failed: %v", res.err)
		}
		if called {
			t.Error("picker must not run when stdin is not a terminal")
		}
		assertFile(t, vscodeFile(root, "launch.json"), true)
	})
}

func TestGenerate_JSONFormat(t *testing.T) {
	root := t.TempDir()

	res := execute(t, "", "generate", "--project-root", root, "--format", "json", "--selected", "launch")
	if res.err != nil {
		t.Fatalf("generate failed: %v", res.err)
	}

	var doc struct {
		Created []string `json:"created"`
		Skipped []string `json:"skipped"`
		OK      bool     `json:"ok"`
	}
	if err := json.Unmarshal([]byte(res.stdout), &doc); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, res.stdout)
	}
	if !doc.OK || len(doc.Created) != 1 || doc.Created[0] != vscodeFile(root, "launch.json") {
		t.Errorf("unexpected summary: %+v", doc)
	}
}

func TestGenerate_InvalidFormat(t *testing.T) {
	res := execute(t, "", "generate", "--project-root", t.TempDir(), "--format", "xml")
	if res.err == nil {
		t.Fatal("expected error for invalid format")
	}
	if errors.ExitCode(res.err) != errors.ExitUser {
		t.Errorf("exit code = %d, want 1", errors.ExitCode(res.err))
	}
}

func TestGenerate_DirectoryCreationFailure(t *testing.T) {
	root := t.TempDir()
	// A file named .vscode blocks the directory
	if err := os.WriteFile(filepath.Join(root, ".vscode"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	res := execute(t, "", "generate", "--project-root", root)
	if res.err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(res.err, errors.ErrGenerationFailed) {
		t.Errorf("error = %v, want ErrGenerationFailed", res.err)
	}
	if errors.ExitCode(res.err) != errors.ExitUser {
		t.Errorf("exit code = %d, want 1", errors.ExitCode(res.err))
	}
	wantErrors := "Errors:\n- " + filepath.Join(root, ".vscode") + ": failed to create .vscode"
	if !strings.Contains(res.stderr, wantErrors) {
		t.Errorf("stderr = %q, want it to contain %q", res.stderr, wantErrors)
	}
	if res.stdout != "" {
		t.Errorf("stdout = %q, want empty", res.stdout)
	}
}
