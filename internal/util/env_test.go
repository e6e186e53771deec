package util

import "testing"

func TestGetEnvString(t *testing.T) {
	t.Setenv("POLYGRAPH_TEST_STRING", "value")

	if got := GetEnvString("POLYGRAPH_TEST_STRING", "fallback"); got != "value" {
		t.Errorf("GetEnvString(set) = %q, want %q", got, "value")
	}
	if got := GetEnvString("POLYGRAPH_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnvString(unset) = %q, want %q", got, "fallback")
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("POLYGRAPH_TEST_INT", "42")
	t.Setenv("POLYGRAPH_TEST_INT_BAD", "not a number")

	if got := GetEnvInt("POLYGRAPH_TEST_INT", 7); got != 42 {
		t.Errorf("GetEnvInt(set) = %d, want 42", got)
	}
	if got := GetEnvInt("POLYGRAPH_TEST_INT_BAD", 7); got != 7 {
		t.Errorf("GetEnvInt(unparsable) = %d, want 7", got)
	}
	if got := GetEnvInt("POLYGRAPH_TEST_INT_UNSET", 7); got != 7 {
		t.Errorf("GetEnvInt(unset) = %d, want 7", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("POLYGRAPH_TEST_BOOL_TRUE", "true")
	t.Setenv("POLYGRAPH_TEST_BOOL_FALSE", "false")
	t.Setenv("POLYGRAPH_TEST_BOOL_BAD", "yes")

	if got := GetEnvBool("POLYGRAPH_TEST_BOOL_TRUE", false); !got {
		t.Error("GetEnvBool(true) = false")
	}
	if got := GetEnvBool("POLYGRAPH_TEST_BOOL_FALSE", true); got {
		t.Error("GetEnvBool(false) = true")
	}
	if got := GetEnvBool("POLYGRAPH_TEST_BOOL_BAD", true); !got {
		t.Error("GetEnvBool(invalid) should return the default")
	}
}
