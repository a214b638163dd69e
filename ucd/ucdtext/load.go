package ucdtext

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/npillmayer/casemapping/ucd"
)

// File names expected by Load.
const (
	UnicodeDataFile   = "UnicodeData.txt"
	SpecialCasingFile = "SpecialCasing.txt"
	CaseFoldingFile   = "CaseFolding.txt"
)

var versionPattern = regexp.MustCompile(`-(\d+\.\d+\.\d+)\.txt$`)

// Load reads the three UCD case files from directory dir and returns the raw
// tables together with the Unicode version found in the file headers (empty if
// the headers carry no version).
//
// Example usage:
//
//	tables, version, err := ucdtext.Load("path/to/ucd")
//
// UnicodeData.txt and CaseFolding.txt are required, SpecialCasing.txt is optional.
func Load(dir string) (*ucd.Tables, string, error) {
	data, err := os.Open(filepath.Join(dir, UnicodeDataFile))
	if err != nil {
		return nil, "", err
	}
	defer data.Close()
	folding, err := os.Open(filepath.Join(dir, CaseFoldingFile))
	if err != nil {
		return nil, "", err
	}
	defer folding.Close()
	folds := NewCaseFoldingReader(folding)

	var special ucd.CaseReader
	var specialReader *SpecialCasingReader
	if f, err := os.Open(filepath.Join(dir, SpecialCasingFile)); err == nil {
		defer f.Close()
		specialReader = NewSpecialCasingReader(f)
		special = specialReader
	} else if !os.IsNotExist(err) {
		return nil, "", err
	}

	tables, err := ucd.LoadTables(NewUnicodeDataReader(data), special, folds)
	if err != nil {
		return nil, "", err
	}
	version := versionOf(folds.Identifier())
	if specialReader != nil {
		if v := versionOf(specialReader.Identifier()); v != "" && version != "" && v != version {
			return nil, "", fmt.Errorf("UCD version mismatch: %s has %s, %s has %s",
				CaseFoldingFile, version, SpecialCasingFile, v)
		}
	}
	return tables, version, nil
}

func versionOf(identifier string) string {
	m := versionPattern.FindStringSubmatch(identifier)
	if m == nil {
		return ""
	}
	return m[1]
}
