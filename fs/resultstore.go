package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/figdoc"
)

// Extension returns the file extension used for a given output format.
func Extension(format string) string {
	switch format {
	case "text":
		return ".txt"
	case "markdown", "summary":
		return ".md"
	default:
		return ".json"
	}
}

// ResultStore writes one output file per extracted Figma file with atomic
// update semantics. Results are saved to a temporary directory, then moved
// into place on Commit.
type ResultStore struct {
	baseDir string
	name    string
	ext     string
}

// NewResultStore creates a new ResultStore.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewResultStore(baseDir, name, ext string) *ResultStore {
	return &ResultStore{
		baseDir: baseDir,
		name:    name,
		ext:     ext,
	}
}

func (s *ResultStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *ResultStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Path returns the final location of the result for fileKey.
func (s *ResultStore) Path(fileKey string) string {
	return filepath.Join(s.finalDir(), fileKey+s.ext)
}

// Save renders r with f into the temporary directory.
func (s *ResultStore) Save(r *figdoc.ExtractionResult, f figdoc.Formatter) error {
	if r.Metadata.FileKey == "" {
		return figdoc.Errorf(figdoc.EINVALID, "result has no file key")
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	file, err := os.Create(filepath.Join(s.tempDir(), r.Metadata.FileKey+s.ext))
	if err != nil {
		return err
	}
	if err := f.Format(file, r); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Commit replaces the final directory with the saved results.
func (s *ResultStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the saved results.
func (s *ResultStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
