package launcher

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// configParams carries the coerced field values into newConfig. Exported
// fields so the struct-level validation tags apply.
type configParams struct {
	Name             string
	Instances        int `validate:"gt=0"`
	Directory        string
	Executors        int
	CacheSize        int64
	ContainerSize    int64
	HeapSize         int64
	AuxJars          string
	IncludeHBaseJars bool
	Properties       map[string]string

	Args        string
	LogLevel    string
	ChaosMonkey string

	KeytabDir        string
	Keytab           string
	Principal        string
	UseDefaultKeytab bool
}

// Config is a fully validated cluster launch request. It is constructed in
// one step and never mutated afterwards; a Config with a non-positive
// instance count cannot be obtained.
//
// Optional string fields are empty when the corresponding flag was not
// supplied. The size fields and Executors use -1 to mean "unspecified".
type Config struct {
	p configParams
}

func newConfig(p configParams) (*Config, error) {
	if err := validate.Struct(&p); err != nil {
		return nil, validationErrorf("invalid configuration: %d instances (should be greater than 0)", p.Instances)
	}
	if p.Properties == nil {
		p.Properties = map[string]string{}
	}
	return &Config{p: p}, nil
}

// Name returns the cluster name for the service registry.
func (c *Config) Name() string { return c.p.Name }

// Instances returns the target instance count, always greater than zero.
func (c *Config) Instances() int { return c.p.Instances }

// Directory returns the temp directory for packaged artifacts. Not
// checked for existence.
func (c *Config) Directory() string { return c.p.Directory }

// Executors returns the executors per instance, or -1 if unspecified.
func (c *Config) Executors() int { return c.p.Executors }

// CacheSize returns the cache size per instance in bytes, or -1 if
// unspecified.
func (c *Config) CacheSize() int64 { return c.p.CacheSize }

// ContainerSize returns the container size per instance in bytes, or -1
// if unspecified.
func (c *Config) ContainerSize() int64 { return c.p.ContainerSize }

// HeapSize returns the working memory size in bytes, or -1 if
// unspecified.
func (c *Config) HeapSize() int64 { return c.p.HeapSize }

// AuxJars returns the separated list of additional artifacts to package,
// verbatim and unvalidated.
func (c *Config) AuxJars() string { return c.p.AuxJars }

// IncludeHBaseJars reports whether the optional HBase artifacts should be
// bundled.
func (c *Config) IncludeHBaseJars() bool { return c.p.IncludeHBaseJars }

// Properties returns a copy of the property overrides passed through to
// the launched cluster.
func (c *Config) Properties() map[string]string {
	props := make(map[string]string, len(c.p.Properties))
	for k, v := range c.p.Properties {
		props[k] = v
	}
	return props
}

// Args returns the pass-through launch arguments. The value is opaque
// here; the launch collaborator parses it.
func (c *Config) Args() string { return c.p.Args }

// LogLevel returns the pass-through instance log level, uninterpreted.
func (c *Config) LogLevel() string { return c.p.LogLevel }

// ChaosMonkey returns the pass-through fault injection interval,
// uninterpreted.
func (c *Config) ChaosMonkey() string { return c.p.ChaosMonkey }

// KeytabDir returns the credential directory location.
func (c *Config) KeytabDir() string { return c.p.KeytabDir }

// Keytab returns the credential file name inside KeytabDir.
func (c *Config) Keytab() string { return c.p.Keytab }

// Principal returns the credential principal identity.
func (c *Config) Principal() string { return c.p.Principal }

// UseDefaultKeytab reports whether default keytab settings were
// requested.
func (c *Config) UseDefaultKeytab() bool { return c.p.UseDefaultKeytab }
