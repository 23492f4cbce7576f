package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type C interface {
	GetRoot() *Root
	IsDebugMode() bool
}

type config struct {
	root *Root
}

func (c *config) GetRoot() *Root {
	return c.root
}

func (c *config) IsDebugMode() bool {
	return os.Getenv("FIVETRAN_CONSOLE_DEBUG") == "true"
}

// LoadConfig reads the yaml configuration from path and applies defaults.
func LoadConfig(path string) (C, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var root Root
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, err
	}

	root.applyDefaults()
	return &config{root: &root}, nil
}

// FromRoot wraps an in-memory Root, applying defaults. Used by tests and by
// serve when no config file is given.
func FromRoot(root *Root) C {
	if root == nil {
		root = &Root{}
	}
	root.applyDefaults()
	return &config{root: root}
}
