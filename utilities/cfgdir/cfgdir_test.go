package cfgdir

import (
	"os"
	"testing"
)

// TestCfgDir checks that init properly builds paths.
func TestCfgDir(t *testing.T) {
	if SmudgyHome() == "" {
		t.Errorf("smudgy home is not populated")
	}

	if DefaultStdLogPath == "" {
		t.Errorf("dev log path is not populated")
	}
}

func TestServerDirCreatesDirectory(t *testing.T) {
	dir, err := ServerDir("test-server")
	if err != nil {
		t.Fatalf("ServerDir() error = %v", err)
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Fatalf("expected %v to be a directory", dir)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
}

func TestProfileDirNestsUnderServerDir(t *testing.T) {
	dir, err := ProfileDir("test-server", "default")
	if err != nil {
		t.Fatalf("ProfileDir() error = %v", err)
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Fatalf("expected %v to be a directory", dir)
	}
	serverDir, err := ServerDir("test-server")
	if err != nil {
		t.Fatalf("ServerDir() error = %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(serverDir) })
}
