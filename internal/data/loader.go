// Package data loads content records (characters, monsters, battle
// maps) from YAML and projects them onto engine types. Dice strings
// and layouts are validated at load time so broken content fails
// before a session starts.
package data

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader reads records from an ordered list of data directories; the
// first directory containing the requested file wins.
type Loader struct {
	dataDirs []string
}

// NewLoader initializes a loader with the given directory fallback
// hierarchy.
func NewLoader(dataDirs []string) *Loader {
	return &Loader{dataDirs: dataDirs}
}

// LoadCharacter reads characters/<name>.yaml from the first directory
// that has it.
func (l *Loader) LoadCharacter(name string) (*CharacterFile, error) {
	var c CharacterFile
	ref := filepath.Join("characters", fmt.Sprintf("%s.yaml", slug(name)))
	if err := l.load(ref, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadMonster reads monsters/<name>.yaml from the first directory that
// has it.
func (l *Loader) LoadMonster(name string) (*MonsterFile, error) {
	var m MonsterFile
	ref := filepath.Join("monsters", fmt.Sprintf("%s.yaml", slug(name)))
	if err := l.load(ref, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadMap reads maps/<name>.yaml from the first directory that has it
// and validates the declared layout.
func (l *Loader) LoadMap(name string) (*MapFile, error) {
	var m MapFile
	ref := filepath.Join("maps", fmt.Sprintf("%s.yaml", slug(name)))
	if err := l.load(ref, &m); err != nil {
		return nil, err
	}
	if _, err := m.GridLayout(); err != nil {
		return nil, err
	}
	if m.Width <= 0 || m.Height <= 0 {
		return nil, fmt.Errorf("map %s: invalid dimensions %dx%d", m.Name, m.Width, m.Height)
	}
	return &m, nil
}

func (l *Loader) load(ref string, target any) error {
	for _, dir := range l.dataDirs {
		path := filepath.Join(dir, ref)
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(target); err != nil {
			return fmt.Errorf("failed to decode yaml reference %s: %w", ref, err)
		}
		return nil
	}
	return fmt.Errorf("could not find reference %s in any data directory", ref)
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
