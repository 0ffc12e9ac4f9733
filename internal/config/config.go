package config

import "github.com/caarlos0/env/v6"

// Workspace holds the default workspace credentials picked up from the
// process environment. Request fields take precedence; these only fill in
// blanks.
type Workspace struct {
	Host  string `env:"DATABRICKS_HOST"`
	Token string `env:"DATABRICKS_TOKEN,unset"`
}

func NewWorkspace() (*Workspace, error) {
	workspace := &Workspace{}
	opts := env.Options{}
	if err := env.Parse(workspace, opts); err != nil {
		return nil, err
	}
	return workspace, nil
}
