package config

import (
	"testing"
	"time"

	kit "forumscope/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	api := root.Prefix("CORE_API_")
	if got := api.key("PORT"); got != "CORE_API_PORT" {
		t.Fatalf("key() = %q, want %q", got, "CORE_API_PORT")
	}
	// nested prefix
	apiLog := api.Prefix("LOG_")
	if got := apiLog.key("LEVEL"); got != "CORE_API_LOG_LEVEL" {
		t.Fatalf("nested key() = %q, want %q", got, "CORE_API_LOG_LEVEL")
	}
}

// Must* panics

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  forumscope ")
	got := c.MustString("NAME")
	if got != "forumscope" {
		t.Fatalf("MustString = %q, want %q", got, "forumscope")
	}

	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustInt(t *testing.T) {
	c := New().Prefix("SVC_")
	t.Setenv("SVC_WORKERS", "  8 ")
	if got := c.MustInt("WORKERS"); got != 8 {
		t.Fatalf("MustInt = %d, want %d", got, 8)
	}
	kit.MustPanic(t, func() { _ = c.MustInt("MISSING") })
	t.Setenv("SVC_BAD", "x")
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
}

func TestMustPort(t *testing.T) {
	c := New().Prefix("P_")
	t.Setenv("P_PORT", "4600")
	if got := c.MustPort("PORT"); got != ":4600" {
		t.Fatalf("MustPort = %q, want %q", got, ":4600")
	}
	t.Setenv("P_HIGH", "70000")
	kit.MustPanic(t, func() { _ = c.MustPort("HIGH") })
	t.Setenv("P_BAD", "nope")
	kit.MustPanic(t, func() { _ = c.MustPort("BAD") })
}

func TestRequire(t *testing.T) {
	c := New().Prefix("R_")
	t.Setenv("R_A", "1")
	t.Setenv("R_B", "2")
	kit.MustNotPanic(t, func() { c.Require("A", "B") })
	kit.MustPanic(t, func() { c.Require("A", "MISSING") })
}

// May* defaults

func TestMayString(t *testing.T) {
	c := New().Prefix("MS_")
	if got := c.MayString("MISSING", "dflt"); got != "dflt" {
		t.Fatalf("MayString default = %q", got)
	}
	t.Setenv("MS_SET", " v ")
	if got := c.MayString("SET", "dflt"); got != "v" {
		t.Fatalf("MayString = %q", got)
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("MI_")
	if got := c.MayInt("MISSING", 7); got != 7 {
		t.Fatalf("MayInt default = %d", got)
	}
	t.Setenv("MI_SET", "42")
	if got := c.MayInt("SET", 7); got != 42 {
		t.Fatalf("MayInt = %d", got)
	}
	t.Setenv("MI_BAD", "x")
	if got := c.MayInt("BAD", 7); got != 7 {
		t.Fatalf("MayInt invalid = %d, want default", got)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("MB_")
	if got := c.MayBool("MISSING", true); got != true {
		t.Fatalf("MayBool default = %v", got)
	}
	t.Setenv("MB_OFF", "false")
	if got := c.MayBool("OFF", true); got != false {
		t.Fatalf("MayBool = %v", got)
	}
	t.Setenv("MB_BAD", "notabool")
	if got := c.MayBool("BAD", true); got != true {
		t.Fatalf("MayBool invalid = %v, want default", got)
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("MD_")
	if got := c.MayDuration("MISSING", 5*time.Second); got != 5*time.Second {
		t.Fatalf("MayDuration default = %v", got)
	}
	t.Setenv("MD_SET", "250ms")
	if got := c.MayDuration("SET", 5*time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	t.Setenv("MD_BAD", "soon")
	if got := c.MayDuration("BAD", time.Second); got != time.Second {
		t.Fatalf("MayDuration invalid = %v, want default", got)
	}
}
