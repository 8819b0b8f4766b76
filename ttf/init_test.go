package ttf

import "os"
import "log"
import "bytes"
import "strings"
import "testing"
import "path/filepath"

import "golang.org/x/image/font/gofont/goregular"

var testBackends = []Backend{ BackendVector, BackendFreetype }

// Writes Go Regular into a temporary directory and returns its path.
func writeTestFont(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	err := os.WriteFile(path, goregular.TTF, 0o644)
	if err != nil { t.Fatal(err) }
	return path
}

// Creates a context for the given backend with a logger writing
// into the returned buffer.
func newTestContext(t *testing.T, backend Backend) (*Context, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	opts := DefaultOptions()
	opts.Backend = backend
	opts.Logger = log.New(&logs, "", 0)
	ctx, err := Init(opts)
	if err != nil { t.Fatalf("unexpected init error: %s", err) }
	t.Cleanup(ctx.Quit)
	return ctx, &logs
}

func logLines(logs *bytes.Buffer) int {
	return strings.Count(logs.String(), "\n")
}
