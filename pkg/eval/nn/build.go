package eval

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// LoadFile reads weights from path. A leading ~/ is the home directory and
// a leading ./ is the directory of the executable.
func LoadFile(path string) (*Weights, error) {
	var f, err = os.Open(mapPath(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadWeights(f)
}

func mapPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		curUser, err := user.Current()
		if err != nil {
			return path
		}
		return filepath.Join(curUser.HomeDir, strings.TrimPrefix(path, "~/"))
	}
	if strings.HasPrefix(path, "./") {
		var exePath, err = os.Executable()
		if err != nil {
			return path
		}
		return filepath.Join(filepath.Dir(exePath), strings.TrimPrefix(path, "./"))
	}
	return path
}
