package builder

import (
	"os"
	"strings"
	"testing"
)

func TestEnvOr(t *testing.T) {
	const key = "MEDITATION_TEST_ENV_OR"
	_ = os.Unsetenv(key)
	if got := EnvOr(key, "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}

	if err := os.Setenv(key, `"  value  "`); err != nil {
		t.Fatalf("setenv failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	if got := EnvOr(key, "fallback"); got != "value" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
}

func TestEnvIntOr(t *testing.T) {
	const key = "MEDITATION_TEST_ENV_INT"
	_ = os.Unsetenv(key)
	if got := EnvIntOr(key, 7); got != 7 {
		t.Fatalf("expected default int, got %d", got)
	}

	if err := os.Setenv(key, "12"); err != nil {
		t.Fatalf("setenv failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	if got := EnvIntOr(key, 7); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}

	if err := os.Setenv(key, "not-int"); err != nil {
		t.Fatalf("setenv failed: %v", err)
	}
	if got := EnvIntOr(key, 7); got != 7 {
		t.Fatalf("expected default on bad int, got %d", got)
	}
}

func TestEnvUint64(t *testing.T) {
	const key = "MEDITATION_TEST_ENV_SEED"
	t.Setenv(key, "")
	if _, ok := EnvUint64(key); ok {
		t.Fatalf("expected unset")
	}
	t.Setenv(key, "42")
	if n, ok := EnvUint64(key); !ok || n != 42 {
		t.Fatalf("expected 42, got %d (%v)", n, ok)
	}
	t.Setenv(key, "-1")
	if _, ok := EnvUint64(key); ok {
		t.Fatalf("expected negative value to be rejected")
	}
}

func TestEnvListOr(t *testing.T) {
	const key = "MEDITATION_TEST_ENV_LIST"
	t.Setenv(key, " a:9092, ,b:9092 ")
	if got := EnvListOr(key, nil); strings.Join(got, "|") != "a:9092|b:9092" {
		t.Fatalf("unexpected list %v", got)
	}
	t.Setenv(key, " , ")
	if got := EnvListOr(key, []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Fatalf("expected default, got %v", got)
	}
}
