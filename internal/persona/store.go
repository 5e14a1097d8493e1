package persona

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// DefaultPersona and DefaultRole apply when no persona has been selected
	DefaultPersona = "davy"
	DefaultRole    = "pm"

	personasDirName    = "personas"
	currentMarkerName  = ".current_persona"
	configFileName     = "config.yaml"
	masterResumeSuffix = "_master_resume.typ"
	dataDirName        = "data"
)

// dataExtensions are tried in order when locating a role's resume data
var dataExtensions = []string{".json", ".yaml", ".yml"}

// Store reads and updates the persona layout under a project root:
//
//	<root>/personas/<persona>/config.yaml
//	<root>/personas/<persona>/<persona>_<role>_master_resume.typ
//	<root>/personas/<persona>/data/<role>.json (or .yaml, .yml)
//	<root>/.current_persona
type Store struct {
	Root string
}

// NewStore creates a store rooted at the project directory
func NewStore(root string) *Store {
	return &Store{Root: root}
}

// personaConfig is the optional config.yaml inside a persona directory
type personaConfig struct {
	Name             *string `yaml:"name"`
	PreferredName    *string `yaml:"preferred_name"`
	DefaultRole      *string `yaml:"default_role"`
	HasCareerProfile bool    `yaml:"has_career_profile"`
}

// PersonasDir returns the directory holding one subdirectory per persona
func (s *Store) PersonasDir() string {
	return filepath.Join(s.Root, personasDirName)
}

// Dir returns the directory of a single persona
func (s *Store) Dir(name string) string {
	return filepath.Join(s.PersonasDir(), name)
}

// List returns every persona sorted by name. A missing personas directory
// yields an empty list.
func (s *Store) List() ([]types.Persona, error) {
	entries, err := os.ReadDir(s.PersonasDir())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []types.Persona{}, nil
		}
		return nil, &Error{Message: "failed to read personas directory", Cause: err}
	}

	personas := []types.Persona{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		p, err := s.load(entry.Name())
		if err != nil {
			return nil, err
		}
		personas = append(personas, *p)
	}

	sort.Slice(personas, func(i, j int) bool { return personas[i].Name < personas[j].Name })
	return personas, nil
}

// Get loads a single persona by directory name
func (s *Store) Get(name string) (*types.Persona, error) {
	info, err := os.Stat(s.Dir(name))
	if err != nil || !info.IsDir() {
		return nil, &Error{Message: fmt.Sprintf("persona %q not found", name), Cause: err}
	}
	return s.load(name)
}

func (s *Store) load(name string) (*types.Persona, error) {
	dir := s.Dir(name)

	roles, err := rolesIn(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := readConfig(filepath.Join(dir, configFileName))
	if err != nil {
		return nil, err
	}

	titled := cases.Title(language.English).String(name)
	p := &types.Persona{
		Name:             name,
		DisplayName:      valueOr(cfg.Name, titled),
		PreferredName:    valueOr(cfg.PreferredName, titled),
		Roles:            roles,
		DefaultRole:      cfg.DefaultRole,
		HasCareerProfile: cfg.HasCareerProfile,
	}
	if p.DefaultRole == nil && len(roles) > 0 {
		p.DefaultRole = types.Ptr(roles[0])
	}
	return p, nil
}

// rolesIn derives roles from <persona>_<role>_master_resume.typ file names;
// the role is the last underscore-separated part before the suffix.
func rolesIn(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+masterResumeSuffix))
	if err != nil {
		return nil, &Error{Message: "invalid persona directory pattern", Cause: err}
	}

	roles := []string{}
	for _, match := range matches {
		stem := strings.TrimSuffix(filepath.Base(match), masterResumeSuffix)
		parts := strings.Split(stem, "_")
		if len(parts) >= 2 {
			roles = append(roles, parts[len(parts)-1])
		}
	}
	sort.Strings(roles)
	return roles, nil
}

func readConfig(path string) (*personaConfig, error) {
	cfg := &personaConfig{}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, &Error{Message: fmt.Sprintf("failed to read %s", path), Cause: err}
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &Error{Message: fmt.Sprintf("failed to parse %s", path), Cause: err}
	}
	return cfg, nil
}

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

// Current returns the active persona and role. Without a marker file the
// defaults apply; a marker naming only a persona keeps the default role.
func (s *Store) Current() (string, string, error) {
	data, err := os.ReadFile(filepath.Join(s.Root, currentMarkerName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultPersona, DefaultRole, nil
		}
		return "", "", &Error{Message: "failed to read current persona", Cause: err}
	}

	parts := strings.Fields(string(data))
	switch len(parts) {
	case 0:
		return DefaultPersona, DefaultRole, nil
	case 1:
		return parts[0], DefaultRole, nil
	default:
		return parts[0], parts[1], nil
	}
}

// SetCurrent records the active persona and role
func (s *Store) SetCurrent(name, role string) error {
	if err := checkToken("persona", name); err != nil {
		return err
	}
	if err := checkToken("role", role); err != nil {
		return err
	}

	content := fmt.Sprintf("%s %s\n", name, role)
	if err := rendering.WriteFileAtomic(filepath.Join(s.Root, currentMarkerName), []byte(content)); err != nil {
		return &Error{Message: "failed to write current persona", Cause: err}
	}
	return nil
}

// DataFile returns the resume data document for a persona's role
func (s *Store) DataFile(name, role string) (string, error) {
	base := filepath.Join(s.Dir(name), dataDirName, role)
	for _, ext := range dataExtensions {
		if info, err := os.Stat(base + ext); err == nil && !info.IsDir() {
			return base + ext, nil
		}
	}
	return "", &Error{Message: fmt.Sprintf("no resume data for %s/%s in %s", name, role, filepath.Dir(base))}
}

// DataRoles lists the roles that have a resume data document, sorted.
// A role with several documents is listed once.
func (s *Store) DataRoles(name string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.Dir(name), dataDirName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, &Error{Message: fmt.Sprintf("failed to read data directory for %s", name), Cause: err}
	}

	roles := []string{}
	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if entry.IsDir() || !slices.Contains(dataExtensions, ext) {
			continue
		}
		role := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if !slices.Contains(roles, role) {
			roles = append(roles, role)
		}
	}
	sort.Strings(roles)
	return roles, nil
}

// checkToken rejects values the whitespace-separated marker cannot hold
func checkToken(kind, value string) error {
	if value == "" || strings.ContainsAny(value, " \t\r\n") {
		return &Error{Message: fmt.Sprintf("invalid %s name %q", kind, value)}
	}
	return nil
}
