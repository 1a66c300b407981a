package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitReadsLevelAndFormat(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	var buf bytes.Buffer
	Init(&buf)
	if Log.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug level, got %s", Log.GetLevel())
	}
	Log.WithField("screen", "forge").Debug("mounted")
	if !strings.Contains(buf.String(), `"screen":"forge"`) {
		t.Fatalf("expected json field in output, got %q", buf.String())
	}
}

func TestInitFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	Init(&bytes.Buffer{})
	if Log.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected info level, got %s", Log.GetLevel())
	}
}

func TestOpenFileCreatesDirAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "forge.log")
	for i := 0; i < 2; i++ {
		f, err := OpenFile(path)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		if _, err := f.WriteString("line\n"); err != nil {
			t.Fatalf("write: %v", err)
		}
		f.Close()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "line\nline\n" {
		t.Fatalf("expected two appended lines, got %q", data)
	}
}
