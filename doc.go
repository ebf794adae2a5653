/*
Package launcher parses and validates the command-line configuration for
launching a gridcache compute-cache cluster.

The package exposes a single entry point: build a Processor, then hand it
the process's raw arguments once.

		p := launcher.NewProcessor()
		cfg, err := p.Process(os.Args[1:])
		if errors.Is(err, launcher.ErrUsage) {
			// usage text was rendered; nothing to launch
			return
		}
		if err != nil {
			// syntax, format, or validation failure
			log.Fatal().Err(err).Msg("invalid arguments")
		}
		// cfg is immutable and guaranteed to have cfg.Instances() > 0

Flags follow GNU conventions: long flags as "--name value" or
"--name=value", single-letter aliases as "-i value", and a repeatable
"--hiveconf property=value" flag collected into a property map. Any
value-taking flag not present on the command line falls back to a
GRIDLAUNCH_* environment variable if one is set.

Size-valued flags (--cache, --size, --xmx) accept suffixed size strings
using binary multiples of 1024: "2g" is 2*1024^3 bytes, "512m" is
512*1024^2, a bare "100" is 100 bytes.

The resulting Config captures, but deliberately does not interpret, the
pass-through fields (--args, --loglevel, --chaosmonkey) and the
credential flags; the cluster launch collaborator consuming the Config
owns their grammar.
*/
package launcher
