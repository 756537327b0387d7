package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("missing_file_is_not_an_error", func(t *testing.T) {
		if err := Load(filepath.Join(t.TempDir(), "nope.env")); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("sets_variables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		content := "# comment\nSIM_TEST_A=42\n\nSIM_TEST_B = \"quoted\" \nnot-a-pair\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("SIM_TEST_A", "")
		t.Setenv("SIM_TEST_B", "")

		if err := Load(path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := os.Getenv("SIM_TEST_A"); got != "42" {
			t.Errorf("SIM_TEST_A = %q, expected \"42\"", got)
		}
		if got := os.Getenv("SIM_TEST_B"); got != "quoted" {
			t.Errorf("SIM_TEST_B = %q, expected quotes stripped", got)
		}
	})
}
