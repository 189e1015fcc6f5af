package config

import (
	"fmt"
	"path/filepath"
)

type Config struct {
	// DataPath points at a YAML or JSON dataset. Empty means the embedded dataset.
	DataPath string
	StateDir string
	DBPath   string
	LogPath  string
}

func New(dataPath, stateDir string) (Config, error) {
	if stateDir == "" {
		return Config{}, fmt.Errorf("state dir is required")
	}
	return Config{
		DataPath: dataPath,
		StateDir: stateDir,
		DBPath:   filepath.Join(stateDir, ".timetable", "state.db"),
		LogPath:  filepath.Join(stateDir, ".timetable", "timetable.log"),
	}, nil
}
