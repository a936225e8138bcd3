package builder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"text/template"

	yamlConverter "github.com/ghodss/yaml"
	"gopkg.in/yaml.v2"
)

// AssemblyGitSHAVariable is the name of a special variable computed just
// in time when referenced. The value is computed by the ConfigGitSHA func
// on InterpolateInput. The computed value can be over-written by setting
// the variable explicitly like --variable="assembly-git-sha=$(git rev-parse HEAD)".
const AssemblyGitSHAVariable = "assembly-git-sha"

type Interpolator struct{}

type InterpolateInput struct {
	Variables map[string]any

	ConfigGitSHA func() (string, error)
}

func NewInterpolator() Interpolator {
	return Interpolator{}
}

func (i Interpolator) Interpolate(input InterpolateInput, name string, templateYAML []byte) ([]byte, error) {
	return i.interpolate(input, name, templateYAML)
}

func (i Interpolator) functions(input InterpolateInput) template.FuncMap {
	return template.FuncMap{
		"regexReplaceAll": func(regex, inputString, replaceString string) (string, error) {
			re, err := regexp.Compile(regex)
			if err != nil {
				return "", err
			}
			return re.ReplaceAllString(inputString, replaceString), nil
		},
		"variable": func(key string) (string, error) {
			if input.Variables == nil {
				if key == AssemblyGitSHAVariable && input.ConfigGitSHA != nil {
					return input.ConfigGitSHA()
				}
				return "", errors.New("--variable or --variables-file must be specified")
			}
			val, ok := input.Variables[key]
			if !ok {
				if key == AssemblyGitSHAVariable && input.ConfigGitSHA != nil {
					return input.ConfigGitSHA()
				}
				return "", fmt.Errorf("could not find variable with key '%s'", key)
			}
			return i.interpolateValueIntoYAML(input, key, val)
		},
		"select": func(field, input string) (string, error) {
			object := map[string]any{}

			err := json.Unmarshal([]byte(input), &object)
			if err != nil {
				return "", fmt.Errorf("could not JSON unmarshal %q: %s", input, err)
			}

			value, ok := object[field]
			if !ok {
				return "", fmt.Errorf("could not select %q, key does not exist", field)
			}

			output, err := json.Marshal(value)
			if err != nil {
				return "", fmt.Errorf("could not JSON marshal %q: %s", input, err) // NOTE: this cannot happen because value was unmarshalled from JSON
			}

			return string(output), nil
		},
	}
}

func (i Interpolator) interpolate(input InterpolateInput, name string, templateYAML []byte) ([]byte, error) {
	t, err := template.New(name).
		Funcs(i.functions(input)).
		Delims("$(", ")").
		Option("missingkey=error").
		Parse(string(templateYAML))
	if err != nil {
		return nil, fmt.Errorf("failed when parsing a %w", err)
	}

	var buffer bytes.Buffer
	err = t.Execute(&buffer, input.Variables)
	if err != nil {
		return nil, fmt.Errorf("failed when rendering a %w", err)
	}

	return buffer.Bytes(), nil
}

func (i Interpolator) interpolateValueIntoYAML(input InterpolateInput, name string, val any) (string, error) {
	initialYAML, err := yaml.Marshal(val)
	if err != nil {
		return "", err // should never happen
	}

	interpolatedYAML, err := i.interpolate(input, name, initialYAML)
	if err != nil {
		return "", fmt.Errorf("unable to interpolate value: %s", err)
	}

	inlinedYAML, err := i.yamlMarshalOneLine(interpolatedYAML)
	if err != nil {
		return "", err // un-tested
	}

	return string(inlinedYAML), nil
}

// Workaround to avoid YAML indentation being incorrect when value is interpolated into the document
func (i Interpolator) yamlMarshalOneLine(yamlContents []byte) ([]byte, error) {
	return yamlConverter.YAMLToJSON(yamlContents)
}
