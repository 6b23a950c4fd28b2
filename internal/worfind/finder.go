// Package worfind locates the current S-file in a Seisan working
// directory. Seisan's eev program records the file it is positioned on
// in WOR/eev.cur.sfile; when that pointer is absent we fall back to the
// most recently modified S-file in the directory.
package worfind

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// EnvWorkDir is the environment variable naming the working directory.
const EnvWorkDir = "SFILE_WOR"

// CurrentPointer is the file eev writes the current S-file path into.
const CurrentPointer = "eev.cur.sfile"

// Sentinel errors.
var (
	ErrWorkDirNotFound = errors.New("working directory not found")
	ErrNoSFiles        = errors.New("no S-files found")
)

// FindWorkDir returns the Seisan working directory.
//
// Priority:
//  1. explicit (if non-empty)
//  2. SFILE_WOR environment variable
//  3. the current directory, if it holds an eev pointer or S-files
//
// Returns ErrWorkDirNotFound if no usable directory is found. The
// returned path has symlinks resolved for consistency.
func FindWorkDir(explicit string) (string, error) {
	if explicit != "" {
		if resolved := resolveWorkDir(explicit); resolved != "" {
			return resolved, nil
		}
		return "", fmt.Errorf("%w: specified directory is invalid or holds no S-files", ErrWorkDirNotFound)
	}

	if envDir := os.Getenv(EnvWorkDir); envDir != "" {
		if resolved := resolveWorkDir(envDir); resolved != "" {
			return resolved, nil
		}
		return "", fmt.Errorf("%w: %s points to an invalid directory", ErrWorkDirNotFound, EnvWorkDir)
	}

	if resolved := resolveWorkDir("."); resolved != "" {
		return resolved, nil
	}
	return "", ErrWorkDirNotFound
}

// CurrentSFile returns the S-file the working directory points at:
// the eev.cur.sfile pointer when present, otherwise the most recently
// modified S-file in the directory.
func CurrentSFile(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, CurrentPointer))
	if err == nil {
		path := strings.TrimSpace(string(data))
		if path != "" {
			if !filepath.IsAbs(path) {
				path = filepath.Join(dir, path)
			}
			if info, err := os.Lstat(path); err == nil && info.Mode().IsRegular() {
				return path, nil
			}
		}
		// Stale pointer; fall through to the newest S-file.
	}
	return FindLatestSFile(dir)
}

// sfileCandidate caches the stat result so a file deleted between
// filtering and sorting cannot skew the ordering.
type sfileCandidate struct {
	path    string
	modTime int64
}

// FindLatestSFile returns the most recently modified S-file in dir.
// S-file names follow DD-HHMM-SS[LRD].SYYYYMM, so the ".S" extension
// prefix is the discriminator.
//
// Returns ErrNoSFiles if none are found.
func FindLatestSFile(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.S[0-9][0-9][0-9][0-9][0-9][0-9]"))
	if err != nil {
		return "", fmt.Errorf("globbing S-files: %w", err)
	}
	if len(matches) == 0 {
		return "", ErrNoSFiles
	}

	candidates := make([]sfileCandidate, 0, len(matches))
	for _, m := range matches {
		info, err := os.Lstat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		candidates = append(candidates, sfileCandidate{path: m, modTime: info.ModTime().UnixNano()})
	}
	if len(candidates) == 0 {
		return "", ErrNoSFiles
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].modTime > candidates[j].modTime
	})
	return candidates[0].path, nil
}

// resolveWorkDir resolves symlinks and checks the directory actually
// holds Seisan data (an eev pointer or at least one S-file).
func resolveWorkDir(dir string) string {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return ""
	}

	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return ""
	}

	if _, err := os.Stat(filepath.Join(resolved, CurrentPointer)); err == nil {
		return resolved
	}
	if _, err := FindLatestSFile(resolved); err == nil {
		return resolved
	}
	return ""
}
