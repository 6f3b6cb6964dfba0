package detector

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FrontalFaceCascade is the file name of OpenCV's stock frontal face model.
const FrontalFaceCascade = "haarcascade_frontalface_default.xml"

// ErrCascadeNotFound is returned when no cascade file could be located.
var ErrCascadeNotFound = errors.New("cascade file not found")

// cascadeDirs lists where OpenCV installs its Haar cascades.
var cascadeDirs = []string{
	"data",
	"/usr/share/opencv4/haarcascades",
	"/usr/local/share/opencv4/haarcascades",
	"/opt/homebrew/share/opencv4/haarcascades",
	"/usr/share/opencv/haarcascades",
	"/usr/local/share/opencv/haarcascades",
}

// FindCascade locates the named cascade file. It checks OPENCV_HAARCASCADES
// first, then the directory of the executable, then the usual install paths.
func FindCascade(name string) (string, error) {
	var candidates []string

	if dir := os.Getenv("OPENCV_HAARCASCADES"); dir != "" {
		candidates = append(candidates, filepath.Join(dir, name))
	}

	if execPath, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(execPath), "data", name))
	}

	for _, dir := range cascadeDirs {
		candidates = append(candidates, filepath.Join(dir, name))
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			absPath, err := filepath.Abs(path)
			if err == nil {
				return absPath, nil
			}
			return path, nil
		}
	}

	return "", errors.Wrap(ErrCascadeNotFound, name)
}
