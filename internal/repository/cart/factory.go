package cart

import "fmt"

// New constructs a Repository by kind: "file" or "memory". For the file
// store, dir is the data directory; for memory, dir is ignored.
func New(kind, dir string) (Repository, error) {
	switch kind {
	case "file":
		return NewFile(dir)
	case "memory", "mem":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store kind: %s", kind)
	}
}
