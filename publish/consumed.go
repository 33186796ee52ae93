package publish

import (
	"github.com/bgraf/mdship/filesystem"
	"github.com/bgraf/mdship/logging"
)

// ConsumedFiles is the insertion ordered set of local files uploaded during a
// run.
type ConsumedFiles struct {
	paths []string
	seen  map[string]struct{}
}

func NewConsumedFiles() *ConsumedFiles {
	return &ConsumedFiles{seen: make(map[string]struct{})}
}

func (c *ConsumedFiles) Add(path string) {
	if _, ok := c.seen[path]; ok {
		return
	}

	c.seen[path] = struct{}{}
	c.paths = append(c.paths, path)
}

func (c *ConsumedFiles) Contains(path string) bool {
	_, ok := c.seen[path]
	return ok
}

func (c *ConsumedFiles) Len() int {
	return len(c.paths)
}

func (c *ConsumedFiles) Paths() []string {
	return append([]string(nil), c.paths...)
}

// Cleanup removes every consumed file. Failures are logged and otherwise
// ignored. It returns the number of files removed.
func Cleanup(fsys filesystem.FS, consumed *ConsumedFiles, logger logging.Logger) int {
	if logger == nil {
		logger = logging.NoOp()
	}

	removed := 0
	for _, path := range consumed.Paths() {
		if err := fsys.Remove(path); err != nil {
			logger.Debug("cleanup failed", "file", path, "error", err)
			continue
		}

		removed++
	}

	return removed
}
