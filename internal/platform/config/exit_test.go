package config

import (
	"bytes"
	"testing"
)

func TestExitfWritesMessageAndExitsWithOne(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	swapExit(t, &buf, func(c int) { code = c })

	Exitf("fatal: %s", "something broke")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if got := buf.String(); got != "fatal: something broke\n" {
		t.Fatalf("stderr = %q, want %q", got, "fatal: something broke\n")
	}
}

func TestExitCodefUsesCode(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	swapExit(t, &buf, func(c int) { code = c })

	ExitCodef(2, "usage")

	if code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
}

func swapExit(t *testing.T, buf *bytes.Buffer, fn func(int)) {
	t.Helper()
	prevWriter, prevExit := exitWriter, exitFunc
	exitWriter, exitFunc = buf, fn
	t.Cleanup(func() {
		exitWriter, exitFunc = prevWriter, prevExit
	})
}
