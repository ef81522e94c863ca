package cli

// DefaultNamespace is used when --target-namespace is not given.
const DefaultNamespace = "http://tempuri.org/"

// Config stores CLI options for a single generation run.
type Config struct {
	SrcPath         string
	Types           []string
	Methods         []string
	DescPath        string
	TargetNamespace string
	Style           string
	Use             string
	Filename        string
	ShowVersion     bool
}

// OutputFilename returns destination file path for generator layer.
func (c *Config) OutputFilename() string {
	return c.Filename
}

// Namespace returns the schema target namespace.
func (c *Config) Namespace() string {
	return c.TargetNamespace
}
