// Package evidence stores uploaded media files on local disk and hands back
// stable references. Payload contents are never inspected.
package evidence

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Storage writes evidence files under a single directory.
type Storage struct {
	dir   string
	clock clockwork.Clock
}

// NewStorage ensures dir exists and returns a Storage writing into it.
// Pass a nil clock to use real time.
func NewStorage(dir string, clk clockwork.Clock) (*Storage, error) {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create evidence dir: %w", err)
	}
	return &Storage{dir: dir, clock: clk}, nil
}

// Save writes the payload and returns the stored file's path, usable later
// to retrieve it. Names are prefixed with a timestamp and a short random id
// so concurrent uploads of identically named files never collide.
func (s *Storage) Save(name string, data []byte) (string, error) {
	filename := fmt.Sprintf("%s_%s_%s",
		s.clock.Now().UTC().Format("20060102150405"),
		uuid.NewString()[:8],
		sanitize(name),
	)

	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write evidence file: %w", err)
	}
	return path, nil
}

// sanitize strips directory components and characters that are unsafe in
// filenames, keeping the upload's original name recognizable.
func sanitize(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "evidence"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
}
