package builder

import (
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5"
	"gopkg.in/yaml.v2"
)

// TemplateVariablesService collects interpolation variables from
// variables files and key=value pairs. Pairs win over files; later
// files win over earlier ones.
type TemplateVariablesService struct {
	filesystem billy.Filesystem
}

func NewTemplateVariablesService(fs billy.Filesystem) TemplateVariablesService {
	return TemplateVariablesService{filesystem: fs}
}

func (s TemplateVariablesService) FromPathsAndPairs(paths []string, pairs []string) (map[string]any, error) {
	variables := map[string]any{}

	for _, path := range paths {
		file, err := s.filesystem.Open(path)
		if err != nil {
			return nil, fmt.Errorf("unable to open file %q: %w", path, err)
		}

		err = yaml.NewDecoder(file).Decode(&variables)
		_ = file.Close()
		if err != nil {
			return nil, fmt.Errorf("unable to YAML parse %q: %w", path, err)
		}
	}

	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", 2)

		if len(parts) < 2 {
			return nil, fmt.Errorf("could not parse variable %q: expected variable in \"key=value\" form", pair)
		}

		variables[parts[0]] = parts[1]
	}

	return variables, nil
}
