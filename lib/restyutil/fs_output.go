package restyutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	devenv "userapi/dev/env"
)

const dumpPrefix = "message-"
const dumpExt = ".http"

// FilesystemOutput writes each message dump to its own file
// (message-<id>.http) in a directory.
type FilesystemOutput struct {
	directory string
}

// NewFilesystemOutput resolves `dir` (it may start with <dev_state>) and
// creates it. Dumps a previous run left there are removed, any other file in
// `dir` is left alone.
func NewFilesystemOutput(dir string) (FilesystemOutput, error) {
	dir, err := devenv.ResolvePath(dir)
	if err != nil {
		return FilesystemOutput{}, err
	}
	err = os.MkdirAll(dir, 0777)
	if err != nil {
		return FilesystemOutput{}, fmt.Errorf("create %s: %w", dir, err)
	}

	stale, err := filepath.Glob(filepath.Join(dir, dumpPrefix+"*"+dumpExt))
	if err != nil {
		return FilesystemOutput{}, err
	}
	for _, path := range stale {
		err = os.Remove(path)
		if err != nil {
			return FilesystemOutput{}, fmt.Errorf("clear %s: %w", path, err)
		}
	}
	return FilesystemOutput{directory: dir}, nil
}

func (o FilesystemOutput) Dir() string {
	return o.directory
}

// Path is the file the dump for message `id` is written to.
func (o FilesystemOutput) Path(id string) string {
	return filepath.Join(o.directory, dumpPrefix+id+dumpExt)
}

func (o FilesystemOutput) Write(id string, contents string) {
	err := os.WriteFile(o.Path(id), []byte(contents), 0600)
	if err != nil {
		slog.Warn("failed to write message dump", "id", id, "err", err)
	}
}
