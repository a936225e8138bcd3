package weights

import (
	"fmt"

	"github.com/crhntr/yamlutil/yamlnode"
	"gopkg.in/yaml.v3"
)

const (
	SourceTypeS3     = "s3"
	SourceTypeGitHub = "github"
	SourceTypeHTTP   = "http"
)

// SourceConfig is one entry under "sources" in a Weightsfile. The
// concrete type is selected by the entry's "type" field.
type SourceConfig interface {
	SourceID() string
	SourceType() string
	ConfigurationErrors() []error
}

type SourceConfigList []SourceConfig

func (list *SourceConfigList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("expected a list of source configurations")
	}
	for _, element := range node.Content {
		config, err := unmarshalSourceConfig(element)
		if err != nil {
			return err
		}
		*list = append(*list, config)
	}
	return nil
}

func unmarshalSourceConfig(node *yaml.Node) (SourceConfig, error) {
	typeField, found := yamlnode.LookupKey(node, "type")
	if !found {
		return nil, fmt.Errorf("source configuration is missing the required field \"type\"")
	}
	switch typeField.Value {
	case SourceTypeS3:
		var config S3SourceConfig
		if err := node.Decode(&config); err != nil {
			return nil, err
		}
		return config, nil
	case SourceTypeGitHub:
		var config GitHubSourceConfig
		if err := node.Decode(&config); err != nil {
			return nil, err
		}
		return config, nil
	case SourceTypeHTTP:
		var config HTTPSourceConfig
		if err := node.Decode(&config); err != nil {
			return nil, err
		}
		return config, nil
	}
	return nil, fmt.Errorf("unknown source type %q", typeField.Value)
}

// S3SourceConfig configures a bucket of checkpoint objects. The remote
// path of a checkpoint comes from rendering PathTemplate with the
// checkpoint's name and version.
type S3SourceConfig struct {
	Identifier string `yaml:"id,omitempty"`

	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region,omitempty"`
	AccessKeyID     string `yaml:"access_key_id,omitempty"`
	SecretAccessKey string `yaml:"secret_access_key,omitempty"`
	Endpoint        string `yaml:"endpoint,omitempty"`
	PathTemplate    string `yaml:"path_template"`
}

func (c S3SourceConfig) SourceID() string {
	if c.Identifier != "" {
		return c.Identifier
	}
	return c.Bucket
}

func (c S3SourceConfig) SourceType() string { return SourceTypeS3 }

func (c S3SourceConfig) ConfigurationErrors() []error {
	var result []error
	if c.Bucket == "" {
		result = append(result, fmt.Errorf(`missing required field "bucket" in source config`))
	}
	if c.PathTemplate == "" {
		result = append(result, fmt.Errorf(`missing required field "path_template" in source config`))
	}
	return result
}

// GitHubSourceConfig configures checkpoint releases on a GitHub
// repository: version tags with one asset per checkpoint.
type GitHubSourceConfig struct {
	Identifier string `yaml:"id,omitempty"`

	Org        string `yaml:"org"`
	Repository string `yaml:"repo"`
	Token      string `yaml:"github_token,omitempty"`
}

func (c GitHubSourceConfig) SourceID() string {
	if c.Identifier != "" {
		return c.Identifier
	}
	return c.Org + "/" + c.Repository
}

func (c GitHubSourceConfig) SourceType() string { return SourceTypeGitHub }

func (c GitHubSourceConfig) ConfigurationErrors() []error {
	var result []error
	if c.Org == "" {
		result = append(result, fmt.Errorf(`missing required field "org" in source config`))
	}
	if c.Repository == "" {
		result = append(result, fmt.Errorf(`missing required field "repo" in source config`))
	}
	return result
}

// HTTPSourceConfig configures a plain HTTP checkpoint hub. The hub
// publishes, for each checkpoint, a versions.yaml list next to the
// checkpoint files.
type HTTPSourceConfig struct {
	Identifier string `yaml:"id,omitempty"`

	BaseURL string `yaml:"base_url"`
}

func (c HTTPSourceConfig) SourceID() string {
	if c.Identifier != "" {
		return c.Identifier
	}
	return c.BaseURL
}

func (c HTTPSourceConfig) SourceType() string { return SourceTypeHTTP }

func (c HTTPSourceConfig) ConfigurationErrors() []error {
	var result []error
	if c.BaseURL == "" {
		result = append(result, fmt.Errorf(`missing required field "base_url" in source config`))
	}
	return result
}
