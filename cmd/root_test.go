package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// executeCommand runs the root command with the given args, capturing stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	output, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	for _, want := range []string{"Version:", "Commit:", "Build Date:", "Go Version:", "Platform:"} {
		if !strings.Contains(output, want) {
			t.Errorf("version output missing %q:\n%s", want, output)
		}
	}
	if !strings.Contains(output, "dev") {
		t.Errorf("default version should be dev:\n%s", output)
	}
	if !strings.Contains(versionCmd.Short, "casecraft") {
		t.Errorf("version short description not project-specific: %q", versionCmd.Short)
	}
}

func TestGetConfigDefaults(t *testing.T) {
	appConfig = nil
	cfg := GetConfig()
	if cfg.App.Name != "casecraft" {
		t.Errorf("App.Name = %q, want casecraft", cfg.App.Name)
	}
	if cfg.App.Debug {
		t.Error("App.Debug = true before any config load")
	}
}

func TestConfigFileUnmarshal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "app:\n  name: craftbot\n  debug: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		cfgFile = ""
		appConfig = nil
		viper.Reset()
	})

	if _, err := executeCommand(t, "--config", path, "version"); err != nil {
		t.Fatalf("version with config file failed: %v", err)
	}

	cfg := GetConfig()
	if cfg.App.Name != "craftbot" {
		t.Errorf("App.Name = %q, want craftbot", cfg.App.Name)
	}
	if !cfg.App.Debug {
		t.Error("App.Debug = false, want true from config file")
	}
}

func TestTemplateCommand(t *testing.T) {
	output, err := executeCommand(t, "template")
	if err != nil {
		t.Fatalf("template command failed: %v", err)
	}

	for _, want := range []string{
		"FORMAT GUIDE FOR TEST CASE GENERATION",
		"Functional Test Format:",
		"Visual Test Format:",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("template output missing %q", want)
		}
	}
}

func TestGetLoggerNeverNil(t *testing.T) {
	if GetLogger() == nil {
		t.Fatal("GetLogger() returned nil")
	}
}
