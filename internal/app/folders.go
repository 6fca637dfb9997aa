package app

import (
	"errors"
	"io/fs"
	"strings"

	appErrors "photoorder/internal/errors"
)

var errNoFolders = errors.New("no folder paths")

// ReadFolderList returns the trimmed, non-blank lines of path in order.
func ReadFolderList(filesystem FileSystem, path string) ([]string, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, appErrors.Wrap(appErrors.NotFound, "read input", path, err)
		}
		return nil, appErrors.Wrap(appErrors.IOFailure, "read input", path, err)
	}

	var folders []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		folders = append(folders, line)
	}

	if len(folders) == 0 {
		return nil, appErrors.Wrap(appErrors.EmptyInput, "read input", path, errNoFolders)
	}
	return folders, nil
}
