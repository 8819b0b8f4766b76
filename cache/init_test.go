package cache

import "os"
import "log"
import "sync"
import "bytes"
import "image"
import "errors"
import "strings"
import "testing"
import "image/color"
import "path/filepath"

import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/glyphcache/ttf"

var opaqueRed = color.NRGBA{255, 0, 0, 255}
var opaqueGreen = color.NRGBA{0, 255, 0, 255}

var errFakeRender = errors.New("fake render failure")

// A rasterizer that produces tiny blank surfaces and records calls.
type fakeRasterizer struct {
	mutex sync.Mutex
	calls int
	texts []string
	failing bool
	gate chan struct{} // if not nil, renders wait until it's closed
}

func (self *fakeRasterizer) RenderBlended(_ *ttf.Font, text []byte, _ color.NRGBA) (*ttf.Surface, error) {
	self.mutex.Lock()
	self.calls += 1
	self.texts = append(self.texts, string(text))
	failing, gate := self.failing, self.gate
	self.mutex.Unlock()

	if gate != nil { <-gate }
	if failing { return nil, errFakeRender }
	return &ttf.Surface{ Image: image.NewNRGBA(image.Rect(0, 0, 2, 3)), Baseline: 2 }, nil
}

func (self *fakeRasterizer) Calls() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.calls
}

func (self *fakeRasterizer) SetFailing(failing bool) {
	self.mutex.Lock()
	self.failing = failing
	self.mutex.Unlock()
}

func newTestLogger() (*log.Logger, *bytes.Buffer) {
	var logs bytes.Buffer
	return log.New(&logs, "", 0), &logs
}

func logLines(logs *bytes.Buffer) int {
	return strings.Count(logs.String(), "\n")
}

// Opens Go Regular at the given size on a fresh context.
func openTestFont(t *testing.T, size int) (*ttf.Context, *ttf.Font) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil { t.Fatal(err) }

	logger, _ := newTestLogger()
	opts := ttf.DefaultOptions()
	opts.Logger = logger
	ctx, err := ttf.Init(opts)
	if err != nil { t.Fatal(err) }
	t.Cleanup(ctx.Quit)

	fnt := ctx.LoadFont(size, path)
	if fnt == nil { t.Fatalf("failed to load test font: %s", ctx.LastError()) }
	t.Cleanup(func() { _ = fnt.Close() })
	return ctx, fnt
}
