package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func runRoot(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	root := NewRootCmd(Options{})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", cfg}, args...))
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute(%v) error = %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestExecSingleLine(t *testing.T) {
	out := runRoot(t, "", "exec", "cli-gui", "cats", "--country", "usa", "--sortBy", "ASC")
	want := strings.Join([]string{
		"  American curl : USA",
		"  American short hair : USA",
		"  American wire hair : USA",
		"  Savannah : USA",
		"  Snowshoeing : USA",
		"  exotic short hair : USA",
		"  6 cats found.",
		"",
	}, "\n")
	if out != want {
		t.Errorf("exec output = %q, want %q", out, want)
	}
}

func TestExecReadsStdin(t *testing.T) {
	out := runRoot(t, "cli-gui -v\n\nls\ncli-gui -l --country kenya\n", "exec")
	want := strings.Join([]string{
		"  cli-gui@0.0.0 https://github.com/kyoyababa/cli-gui",
		"  command ls is not found.",
		"  Sockeye : Kenya",
		"  1 cat found.",
		"",
	}, "\n")
	if out != want {
		t.Errorf("exec output = %q, want %q", out, want)
	}
}

func TestVersionCommand(t *testing.T) {
	out := runRoot(t, "", "version")
	if !strings.HasPrefix(out, "cligui version ") {
		t.Errorf("version output = %q", out)
	}
}
