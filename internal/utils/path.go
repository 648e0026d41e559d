package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

const appDirName = "wordtrie"

// PathResolver finds data and config locations relative to the binary,
// the working directory and the platform config dir.
type PathResolver struct {
	executableDir string
	workDir       string
	homeDir       string
	configDir     string
}

// NewPathResolver inspects the running binary and environment.
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}
	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		workDir:       workDir,
		homeDir:       homeDir,
		configDir:     platformConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, workDir=%s, configDir=%s",
		pr.executableDir, pr.workDir, pr.configDir)
	return pr, nil
}

func platformConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "linux", "darwin":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, appDirName)
		}
		return filepath.Join(homeDir, ".config", appDirName)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appDirName)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", appDirName)
	default:
		return filepath.Join(homeDir, "."+appDirName)
	}
}

// GetDataDir returns the first candidate directory holding marker
// (usually the word list). Candidates, in order: the path itself when
// absolute, relative to the working dir, relative to the binary, then
// the config dir. When none match the working-dir candidate is returned.
func (pr *PathResolver) GetDataDir(userPath, marker string) string {
	candidates := pr.dataDirCandidates(userPath)
	for _, dir := range candidates {
		if FileExists(filepath.Join(dir, marker)) {
			log.Debugf("Found data directory: %s", dir)
			return dir
		}
		log.Debugf("Data directory candidate has no %s: %s", marker, dir)
	}
	return filepath.Join(pr.workDir, userPath)
}

func (pr *PathResolver) dataDirCandidates(userPath string) []string {
	if filepath.IsAbs(userPath) {
		return []string{userPath}
	}
	return []string{
		filepath.Join(pr.workDir, userPath),
		filepath.Join(pr.executableDir, userPath),
		filepath.Join(pr.configDir, userPath),
	}
}

// ResolveSource joins name onto dataDir unless name is absolute.
// An empty name stays empty so the source is skipped.
func ResolveSource(dataDir, name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dataDir, name)
}

// ResolveFlagSource resolves a source named on the command line. A name
// that exists relative to the working dir is used as given; anything else
// is treated like a config name and joined onto dataDir.
func (pr *PathResolver) ResolveFlagSource(dataDir, name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	if local := filepath.Join(pr.workDir, name); FileExists(local) {
		return local
	}
	return ResolveSource(dataDir, name)
}

// GetConfigPath returns where filename should live, falling back to
// writable locations when the platform config dir is not usable.
func (pr *PathResolver) GetConfigPath(filename string) string {
	dirs := []string{
		pr.configDir,
		filepath.Join(pr.homeDir, "."+appDirName),
		filepath.Join(os.TempDir(), appDirName),
	}
	for i, dir := range dirs {
		if CheckDirStatus(dir).Writable {
			path := filepath.Join(dir, filename)
			if i > 0 {
				log.Warnf("Using fallback config location: %s", path)
			}
			return path
		}
	}

	path := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", path)
	return path
}

// GetRuntimeInfo returns paths and platform details for debug output.
func (pr *PathResolver) GetRuntimeInfo() map[string]string {
	return map[string]string{
		"executable_dir": pr.executableDir,
		"work_dir":       pr.workDir,
		"home_dir":       pr.homeDir,
		"config_dir":     pr.configDir,
		"os":             runtime.GOOS,
		"arch":           runtime.GOARCH,
	}
}
