package launcher

import (
	"fmt"
)

// OptionSpec describes one recognized flag: its long name, optional
// single-letter short alias, whether it takes a value, the argument label
// used in help text, and a human-readable description.
type OptionSpec struct {
	Name       string
	Short      string
	ArgLabel   string
	Help       string
	TakesValue bool

	// KeyValue marks the repeatable property=value flag. It is the only
	// flag that may be supplied more than once.
	KeyValue bool

	// Default is the raw string substituted during coercion when the flag
	// is absent. Shown in help output.
	Default string

	// EnvVar, when non-empty, names an environment variable consulted for
	// the flag's value if it was not supplied on the command line.
	EnvVar string
}

// Schema is the immutable set of recognized flags. Lookup is by long or
// short name; help output preserves registration order.
type Schema struct {
	specs  []OptionSpec
	byName map[string]OptionSpec
}

func newSchema() *Schema {
	return &Schema{
		byName: map[string]OptionSpec{},
	}
}

// add registers a spec, deriving an environment fallback variable for
// value-taking flags. Duplicate long or short names are a programming
// error and panic.
func (s *Schema) add(spec OptionSpec) {
	if spec.ArgLabel == "" {
		spec.ArgLabel = spec.Name
	}
	if spec.EnvVar == "" && spec.TakesValue && !spec.KeyValue {
		spec.EnvVar = envVarName(spec.Name)
	}
	if _, ok := s.byName[spec.Name]; ok {
		panic(fmt.Sprintf("launcher: duplicate flag name %s", spec.Name))
	}
	s.byName[spec.Name] = spec
	if spec.Short != "" {
		if len(spec.Short) != 1 {
			panic(fmt.Sprintf("launcher: short name for %s must be 1 letter", spec.Name))
		}
		if _, ok := s.byName[spec.Short]; ok {
			panic(fmt.Sprintf("launcher: duplicate short flag name %s", spec.Short))
		}
		s.byName[spec.Short] = spec
	}
	s.specs = append(s.specs, spec)
}

// defaultFor returns the registered coercion default for name, or "".
func (s *Schema) defaultFor(name string) string {
	return s.byName[name].Default
}

// lookup resolves a long or short flag name to its spec.
func (s *Schema) lookup(name string) (OptionSpec, bool) {
	spec, ok := s.byName[name]
	return spec, ok
}

// Specs returns the registered specs in registration order.
func (s *Schema) Specs() []OptionSpec {
	return s.specs
}

// Flag names recognized by the launch schema. The credential flags have no
// short aliases.
const (
	OptionInstances     = "instances"
	OptionName          = "name"
	OptionDirectory     = "directory"
	OptionArgs          = "args"
	OptionLogLevel      = "loglevel"
	OptionChaosMonkey   = "chaosmonkey"
	OptionExecutors     = "executors"
	OptionCache         = "cache"
	OptionSize          = "size"
	OptionXmx           = "xmx"
	OptionAuxJars       = "auxjars"
	OptionAuxHBase      = "auxhbase"
	OptionKeytabDir     = "slider-keytab-dir"
	OptionKeytab        = "slider-keytab"
	OptionPrincipal     = "slider-principal"
	OptionDefaultKeytab = "slider-default-keytab"
	OptionProperty      = "hiveconf"
	OptionHelp          = "help"
)

// newLaunchSchema builds the full flag table for the cluster launch
// command.
func newLaunchSchema() *Schema {
	s := newSchema()

	s.add(OptionSpec{Name: OptionInstances, Short: "i", TakesValue: true,
		Help: "number of instances to run the cache cluster on"})

	s.add(OptionSpec{Name: OptionName, Short: "n", TakesValue: true,
		Help: "cluster name for service registry"})

	s.add(OptionSpec{Name: OptionDirectory, Short: "d", TakesValue: true,
		Help: "temp directory for packaged artifacts"})

	s.add(OptionSpec{Name: OptionArgs, Short: "a", TakesValue: true,
		Help: "runtime arguments passed through to each instance"})

	s.add(OptionSpec{Name: OptionLogLevel, Short: "l", TakesValue: true,
		Help: "log level passed through to each instance"})

	s.add(OptionSpec{Name: OptionChaosMonkey, Short: "m", TakesValue: true,
		Help: "fault injection interval passed through to each instance"})

	s.add(OptionSpec{Name: OptionExecutors, Short: "e", TakesValue: true,
		Default: "-1", Help: "executors per instance"})

	s.add(OptionSpec{Name: OptionDefaultKeytab, TakesValue: false,
		Help: "use default keytab settings; mostly for dev testing"})

	s.add(OptionSpec{Name: OptionKeytabDir, TakesValue: true,
		Help: "keytab directory where the headless user keytab is stored"})

	s.add(OptionSpec{Name: OptionKeytab, TakesValue: true,
		Help: "keytab file name inside " + OptionKeytabDir})

	s.add(OptionSpec{Name: OptionPrincipal, TakesValue: true,
		Help: "principal running the cluster, e.g. cache@EXAMPLE.COM"})

	s.add(OptionSpec{Name: OptionCache, Short: "c", TakesValue: true,
		Default: "-1", Help: "cache size per instance"})

	s.add(OptionSpec{Name: OptionSize, Short: "s", TakesValue: true,
		Default: "-1", Help: "container size per instance"})

	s.add(OptionSpec{Name: OptionXmx, Short: "w", TakesValue: true,
		Default: "-1", Help: "working memory size per instance"})

	s.add(OptionSpec{Name: OptionAuxJars, Short: "j", TakesValue: true,
		Help: "additional artifacts to package with the cluster"})

	s.add(OptionSpec{Name: OptionAuxHBase, Short: "h", TakesValue: true,
		Default: "true", Help: "whether to package the HBase artifacts"})

	s.add(OptionSpec{Name: OptionProperty, TakesValue: true, KeyValue: true,
		ArgLabel: "property=value", Help: "use value for given property; may repeat"})

	s.add(OptionSpec{Name: OptionHelp, Short: "H", TakesValue: false,
		Help: "print help information"})

	return s
}
