package launcher

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// LookupEnvFunc looks up an environment variable, reporting whether it
// was set.
type LookupEnvFunc func(key string) (string, bool)

// Processor parses raw argument vectors against the launch flag schema
// and yields validated Configs. The schema is built once; each Process
// call is otherwise independent.
//
// The exported fields may be overridden after NewProcessor for testing or
// embedding. A nil OutWriter falls back to os.Stdout, a nil LookupEnv
// disables the environment fallback, and a zero Logger stays silent.
type Processor struct {
	// OutWriter receives rendered usage text.
	OutWriter io.Writer
	// LookupEnv supplies environment fallback values for flags not given
	// on the command line.
	LookupEnv LookupEnvFunc
	// Logger records accepted configurations at debug level.
	Logger zerolog.Logger

	schema *Schema
}

// NewProcessor builds a Processor with the full launch flag schema and
// default dependencies.
func NewProcessor() *Processor {
	return &Processor{
		OutWriter: os.Stdout,
		LookupEnv: os.LookupEnv,
		Logger:    zerolog.Nop(),
		schema:    newLaunchSchema(),
	}
}

// Schema returns the processor's flag schema.
func (p *Processor) Schema() *Schema {
	return p.schema
}

// Process parses argv (without the program name) and returns the
// validated launch configuration.
//
// If --help was given, or the required --instances flag is absent, usage
// text is rendered to OutWriter and Process returns ErrUsage with no
// configuration. Grammar violations return a *SyntaxError, unparseable
// numeric or size values a *FormatError, and a non-positive instance
// count a *ValidationError. No partially valid Config is ever returned.
func (p *Processor) Process(argv []string) (*Config, error) {
	pr := parser{schema: p.schema, result: newRawResult()}
	if err := pr.parse(argv); err != nil {
		return nil, errors.Wrap(err, "failed to parse args")
	}
	res := pr.result

	p.applyEnvFallback(res)

	// Needs at least --instances; help trumps everything.
	if res.has(OptionHelp) || !res.has(OptionInstances) {
		p.WriteUsage(p.outWriter())
		return nil, ErrUsage
	}

	instances, err := p.intOption(res, OptionInstances)
	if err != nil {
		return nil, err
	}
	executors, err := p.intOption(res, OptionExecutors)
	if err != nil {
		return nil, err
	}
	cache, err := p.sizeOption(res, OptionCache)
	if err != nil {
		return nil, err
	}
	size, err := p.sizeOption(res, OptionSize)
	if err != nil {
		return nil, err
	}
	xmx, err := p.sizeOption(res, OptionXmx)
	if err != nil {
		return nil, err
	}

	cfg, err := newConfig(configParams{
		Name:             res.get(OptionName, ""),
		Instances:        instances,
		Directory:        res.get(OptionDirectory, ""),
		Executors:        executors,
		CacheSize:        cache,
		ContainerSize:    size,
		HeapSize:         xmx,
		AuxJars:          res.get(OptionAuxJars, ""),
		IncludeHBaseJars: permissiveBool(res.get(OptionAuxHBase, "true")),
		Properties:       properties(res.all(OptionProperty)),

		// loglevel, chaosmonkey and args are parsed by the launch
		// collaborator, not here.
		Args:        res.get(OptionArgs, ""),
		LogLevel:    res.get(OptionLogLevel, ""),
		ChaosMonkey: res.get(OptionChaosMonkey, ""),

		KeytabDir:        res.get(OptionKeytabDir, ""),
		Keytab:           res.get(OptionKeytab, ""),
		Principal:        res.get(OptionPrincipal, ""),
		UseDefaultKeytab: res.has(OptionDefaultKeytab),
	})
	if err != nil {
		return nil, err
	}

	p.Logger.Debug().
		Str("name", cfg.Name()).
		Int("instances", cfg.Instances()).
		Int("executors", cfg.Executors()).
		Stringer("cache", ByteSize(cfg.CacheSize())).
		Stringer("size", ByteSize(cfg.ContainerSize())).
		Stringer("xmx", ByteSize(cfg.HeapSize())).
		Bool("auxhbase", cfg.IncludeHBaseJars()).
		Int("properties", len(cfg.Properties())).
		Msg("validated launch configuration")

	return cfg, nil
}

func (p *Processor) outWriter() io.Writer {
	if p.OutWriter != nil {
		return p.OutWriter
	}
	return os.Stdout
}

// intOption coerces the flag's raw value (or its schema default) to an
// integer.
func (p *Processor) intOption(res *rawResult, name string) (int, error) {
	raw := res.get(name, p.schema.defaultFor(name))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FormatError{Flag: name, Value: raw, Err: errors.New("not an integer")}
	}
	return v, nil
}

// sizeOption coerces the flag's raw value (or its schema default) through
// the suffixed size parser.
func (p *Processor) sizeOption(res *rawResult, name string) (int64, error) {
	raw := res.get(name, p.schema.defaultFor(name))
	v, err := ParseByteSize(raw)
	if err != nil {
		if fe, ok := err.(*FormatError); ok {
			return 0, &FormatError{Flag: name, Value: raw, Err: fe.Err}
		}
		return 0, &FormatError{Flag: name, Value: raw, Err: err}
	}
	return v, nil
}

// permissiveBool treats exactly "true" (case-insensitive) as true and any
// other string as false. It never errors.
func permissiveBool(s string) bool {
	return strings.EqualFold(s, "true")
}

// properties folds repeated property=value pairs into a map, later
// duplicates overwriting earlier ones.
func properties(pairs []string) map[string]string {
	props := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		kv := strings.SplitN(pair, "=", 2)
		props[kv[0]] = kv[1]
	}
	return props
}
