package font

import "io/fs"
import "sync"

// A collection of parsed font sources keyed by the path they were
// loaded from.
//
// The ttf package keeps one library per context so that opening the
// same file at different sizes only reads and parses it once. Libraries
// are concurrent-safe.
type Library struct {
	sources map[string]*Source
	mutex sync.Mutex
}

// Creates a new, empty font [Library].
func NewLibrary() *Library {
	return &Library {
		sources: make(map[string]*Source),
	}
}

// Returns the current number of sources in the library.
func (self *Library) Size() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return len(self.sources)
}

// Returns the source previously loaded from the given path, or nil.
func (self *Library) Get(path string) *Source {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.sources[path]
}

// Returns the source for the given path, parsing it if it's not
// in the library yet. Failed parses are not stored.
func (self *Library) Load(path string) (*Source, error) {
	return self.load(path, func() (*Source, error) {
		return ParseFromPath(path)
	})
}

// The equivalent of [Library.Load]() for filesystems. Sources loaded
// from a filesystem are keyed by path too, so avoid mixing both
// methods with overlapping relative paths.
func (self *Library) LoadFS(filesys fs.FS, path string) (*Source, error) {
	return self.load(path, func() (*Source, error) {
		return ParseFromFS(filesys, path)
	})
}

// Returns false if no source was registered under the given path.
func (self *Library) Remove(path string) bool {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	_, found := self.sources[path]
	if !found { return false }
	delete(self.sources, path)
	return true
}

func (self *Library) load(path string, parse func() (*Source, error)) (*Source, error) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	source, found := self.sources[path]
	if found { return source, nil }

	source, err := parse()
	if err != nil { return nil, err }
	self.sources[path] = source
	return source, nil
}
