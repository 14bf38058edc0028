package configs

import "testing"

func TestGetEnvDefault(t *testing.T) {
	t.Setenv("SEKOLAHKU_TEST_KEY", "isi")

	if got := GetEnv("SEKOLAHKU_TEST_KEY", "fallback"); got != "isi" {
		t.Fatalf("expected env value, got %q", got)
	}
	if got := GetEnv("SEKOLAHKU_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if got := GetEnv("SEKOLAHKU_TEST_MISSING"); got != "" {
		t.Fatalf("expected empty string without default, got %q", got)
	}
}
