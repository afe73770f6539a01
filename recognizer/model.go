package recognizer

import (
	"os"
	"path/filepath"

	"github.com/battlesnakeio/voicesnake/config"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ModelPath resolves the model directory. Without an override the model is
// expected in config.ModelDir next to the executable.
func ModelPath(fs afero.Fs, override string) (string, error) {
	path := override
	if path == "" {
		var err error
		path, err = defaultModelPath()
		if err != nil {
			return "", err
		}
	}

	ok, err := afero.DirExists(fs, path)
	if err != nil {
		return "", errors.Wrapf(err, "unable to stat model directory %s", path)
	}
	if !ok {
		return "", errors.Errorf("recognizer model not found at %s", path)
	}
	return path, nil
}

func defaultModelPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "unable to locate executable")
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", errors.Wrap(err, "unable to resolve executable path")
	}
	return filepath.Join(filepath.Dir(exe), config.ModelDir), nil
}
