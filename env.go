package launcher

import (
	"strings"

	"github.com/huandu/xstrings"
)

const envVarPrefix = "GRIDLAUNCH_"

// envVarName derives the environment fallback variable for a flag name,
// e.g. "slider-keytab-dir" becomes "GRIDLAUNCH_SLIDER_KEYTAB_DIR".
func envVarName(flagName string) string {
	return envVarPrefix + strings.ToUpper(xstrings.ToSnakeCase(flagName))
}

// applyEnvFallback fills in values for any value-taking flag that was not
// supplied on the command line but has its environment variable set.
// Command-line values always win.
func (p *Processor) applyEnvFallback(res *rawResult) {
	lookup := p.LookupEnv
	if lookup == nil {
		return
	}
	for _, spec := range p.schema.Specs() {
		if spec.EnvVar == "" || res.has(spec.Name) {
			continue
		}
		if v, ok := lookup(spec.EnvVar); ok {
			res.record(spec.Name, v)
		}
	}
}
