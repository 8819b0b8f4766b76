package font

import "os"
import "testing"
import "testing/fstest"
import "path/filepath"

import "golang.org/x/image/font/gofont/goregular"
import "golang.org/x/image/font/gofont/gomono"

// Writes the Go fonts into a temporary directory and returns
// the paths to the regular and mono fonts.
func writeTestFonts(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	regular := filepath.Join(dir, "goregular.ttf")
	mono := filepath.Join(dir, "gomono.ttf")
	if err := os.WriteFile(regular, goregular.TTF, 0o644); err != nil { t.Fatal(err) }
	if err := os.WriteFile(mono, gomono.TTF, 0o644); err != nil { t.Fatal(err) }
	return regular, mono
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"fonts/goregular.ttf": &fstest.MapFile{ Data: goregular.TTF },
		"fonts/gomono.ttf": &fstest.MapFile{ Data: gomono.TTF },
		"fonts/readme.txt": &fstest.MapFile{ Data: []byte("not a font") },
	}
}
