package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

// SourceKind identifies which loader a text source feeds.
type SourceKind int

const (
	SourceUnknown       SourceKind = iota
	SourceWords                    // whitespace separated words
	SourceAbbreviations            // "abbr full form" per line
	SourcePhonetics                // comma separated group per line
)

// SourceInfo describes what a source kind looks like on disk.
type SourceInfo struct {
	Kind        SourceKind
	Description string
	Extensions  []string
}

var supportedSources = map[SourceKind]SourceInfo{
	SourceWords: {
		Kind:        SourceWords,
		Description: "Word List",
		Extensions:  []string{".txt", ".list"},
	},
	SourceAbbreviations: {
		Kind:        SourceAbbreviations,
		Description: "Abbreviation List",
		Extensions:  []string{".txt", ".list"},
	},
	SourcePhonetics: {
		Kind:        SourcePhonetics,
		Description: "Phonetic Groups",
		Extensions:  []string{".txt", ".csv"},
	},
}

func (k SourceKind) String() string {
	if info, ok := supportedSources[k]; ok {
		return info.Description
	}
	return "Unknown Source"
}

// GetSourceInfo returns the description of a source kind.
func GetSourceInfo(kind SourceKind) (SourceInfo, bool) {
	info, ok := supportedSources[kind]
	return info, ok
}

// ValidateSource checks that filename exists and is a regular file.
// Errors wrap ErrSourceUnavailable. An extension not listed for kind only
// logs a warning; extensionless lists such as /usr/share/dict/words load fine.
func ValidateSource(filename string, kind SourceKind) error {
	info, ok := GetSourceInfo(kind)
	if !ok {
		return fmt.Errorf("%w: unknown source kind %d", ErrSourceUnavailable, kind)
	}

	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if !fileInfo.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrSourceUnavailable, filename)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(info.Extensions, ext) {
		log.Warnf("%s has extension %q, %s usually is one of %v; loading anyway",
			filename, ext, info.Description, info.Extensions)
	}

	log.Debugf("%s %s validated (%d bytes)", info.Description, filename, fileInfo.Size())
	return nil
}
