package ttf

import "log"
import "bytes"
import "errors"
import "strings"
import "testing"
import "testing/fstest"

import "golang.org/x/image/font/gofont/goregular"

func TestInit(t *testing.T) {
	ctx, err := Init(nil)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if ctx.Backend() != BackendVector { t.Fatalf("unexpected default backend %s", ctx.Backend()) }
	if ctx.Logger() == nil { t.Fatal("expected default logger") }
	if ctx.LastError() != "" { t.Fatal("expected empty last error") }
	ctx.Quit()
	ctx.Quit() // no effect

	var logs bytes.Buffer
	opts := DefaultOptions()
	opts.DPI = 0
	opts.Logger = log.New(&logs, "", 0)
	ctx, err = Init(opts)
	if ctx != nil { t.Fatal("expected nil context") }
	if !errors.Is(err, ErrInit) { t.Fatalf("expected ErrInit, got '%s'", err) }
	if logLines(&logs) != 1 || !strings.HasPrefix(logs.String(), "ttf init: ") {
		t.Fatalf("expected a single init log line, got %q", logs.String())
	}

	opts.DPI = 96
	opts.Backend = Backend(42)
	_, err = Init(opts)
	if !errors.Is(err, ErrInit) { t.Fatalf("expected ErrInit, got '%s'", err) }
	if !strings.Contains(err.Error(), "Backend(42)") {
		t.Fatalf("expected backend in diagnostic, got '%s'", err)
	}
}

func TestQuit(t *testing.T) {
	path := writeTestFont(t)
	ctx, _ := newTestContext(t, BackendVector)
	fnt, err := ctx.OpenFont(path, 16)
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	ctx.Quit()
	_, err = ctx.OpenFont(path, 16)
	if err != ErrNotInitialized { t.Fatalf("expected ErrNotInitialized, got '%v'", err) }
	_, err = ctx.RenderBlended(fnt, []byte("A"), opaqueRed)
	if err != ErrNotInitialized { t.Fatalf("expected ErrNotInitialized, got '%v'", err) }
	if ctx.LastError() != ErrNotInitialized.Error() {
		t.Fatalf("unexpected last error '%s'", ctx.LastError())
	}
	if err := fnt.Close(); err != nil { t.Fatalf("unexpected close error: %s", err) }
}

func TestLoadFont(t *testing.T) {
	path := writeTestFont(t)
	for _, backend := range testBackends {
		ctx, logs := newTestContext(t, backend)
		fnt := ctx.LoadFont(24, path)
		if fnt == nil { t.Fatalf("%s: expected font, got nil (%s)", backend, ctx.LastError()) }
		if logLines(logs) != 0 { t.Fatalf("%s: unexpected logs %q", backend, logs.String()) }
		if fnt.Size() != 24 || fnt.Path() != path || fnt.Name() != "Go Regular" {
			t.Fatalf("%s: unexpected font data %d '%s' '%s'", backend, fnt.Size(), fnt.Path(), fnt.Name())
		}
		if fnt.Height() <= 0 || fnt.Ascent() <= 0 || fnt.Ascent() > fnt.Height() {
			t.Fatalf("%s: unexpected metrics %d, %d", backend, fnt.Ascent(), fnt.Height())
		}

		fnt = ctx.LoadFont(24, "does/not/exist.ttf")
		if fnt != nil { t.Fatalf("%s: expected nil font", backend) }
		if logLines(logs) != 1 { t.Fatalf("%s: expected exactly one log line, got %q", backend, logs.String()) }
		if !strings.HasPrefix(logs.String(), "ttf open font: ") {
			t.Fatalf("%s: unexpected log %q", backend, logs.String())
		}
		if !strings.Contains(ctx.LastError(), "exist.ttf") {
			t.Fatalf("%s: unexpected last error '%s'", backend, ctx.LastError())
		}

		logs.Reset()
		if ctx.LoadFont(0, path) != nil { t.Fatalf("%s: expected nil font for size 0", backend) }
		if ctx.LoadFont(12, "font.woff") != nil { t.Fatalf("%s: expected nil font for .woff", backend) }
		if logLines(logs) != 2 { t.Fatalf("%s: expected two log lines, got %q", backend, logs.String()) }
	}
}

func TestOpenFontErrors(t *testing.T) {
	ctx, logs := newTestContext(t, BackendVector)
	_, err := ctx.OpenFont(writeTestFont(t), -3)
	if !errors.Is(err, ErrInvalidSize) { t.Fatalf("expected ErrInvalidSize, got '%v'", err) }

	corrupt := fstest.MapFS{ "bad.ttf": &fstest.MapFile{ Data: []byte("definitely not a font") } }
	_, err = ctx.OpenFontFS(corrupt, "bad.ttf", 12)
	if err == nil { t.Fatal("expected error for corrupt font") }
	if ctx.LastError() != err.Error() { t.Fatalf("unexpected last error '%s'", ctx.LastError()) }
	if logLines(logs) != 0 { t.Fatal("OpenFont must not log") }
}

func TestOpenFontSharesSource(t *testing.T) {
	path := writeTestFont(t)
	ctx, _ := newTestContext(t, BackendVector)
	small, err := ctx.OpenFont(path, 12)
	if err != nil { t.Fatal(err) }
	big, err := ctx.OpenFont(path, 48)
	if err != nil { t.Fatal(err) }
	if small.Source() != big.Source() { t.Fatal("expected shared font source") }
	if small.Height() >= big.Height() { t.Fatal("expected bigger font to be taller") }

	embedded := fstest.MapFS{ "ui/go.ttf": &fstest.MapFile{ Data: goregular.TTF } }
	fsFont, err := ctx.OpenFontFS(embedded, "ui/go.ttf", 12)
	if err != nil { t.Fatal(err) }
	if fsFont.Height() != small.Height() { t.Fatal("expected same metrics for the same font") }
}

func TestFontClose(t *testing.T) {
	path := writeTestFont(t)
	for _, backend := range testBackends {
		ctx, _ := newTestContext(t, backend)
		fnt, err := ctx.OpenFont(path, 16)
		if err != nil { t.Fatal(err) }
		if fnt.Closed() { t.Fatal("unexpected closed font") }
		if err := fnt.Close(); err != nil { t.Fatalf("%s: unexpected close error: %s", backend, err) }
		if !fnt.Closed() { t.Fatal("expected closed font") }
		if err := fnt.Close(); err != ErrFontClosed {
			t.Fatalf("%s: expected ErrFontClosed, got '%v'", backend, err)
		}
		_, err = ctx.RenderBlended(fnt, []byte("A"), opaqueRed)
		if err != ErrFontClosed { t.Fatalf("%s: expected ErrFontClosed, got '%v'", backend, err) }
	}
}
