package launcher

import (
	"io"
	"strings"
	"text/tabwriter"
	"text/template"
)

var usageTemplateString = `USAGE:
    {{.Name}} [OPTIONS]

OPTIONS:
{{- range .Flags}}
\t    \t
{{- if .Short}}-{{.Short}}, {{end}}--{{.Name}}
{{- if .TakesValue}} <{{.ArgLabel}}>{{end}}\t
{{- if .Help}}  {{.Help}}{{end}}
{{- if .Default}}  (default: {{.Default}}){{end}}
{{- end}}

`

var usageTemplate = template.Must(
	template.New("usage").Parse(usageTemplateString),
)

// UsageString renders the usage text for the processor's schema.
func (p *Processor) UsageString() string {
	sb := strings.Builder{}
	p.WriteUsage(&sb)
	return sb.String()
}

// WriteUsage renders usage text listing every flag in registration order
// with its argument label and description.
func (p *Processor) WriteUsage(w io.Writer) {
	data := struct {
		Name  string
		Flags []OptionSpec
	}{
		Name:  "gridlaunch",
		Flags: p.schema.Specs(),
	}

	tw := newEscapedTabWriter(w)
	if err := usageTemplate.Execute(tw, data); err != nil {
		panic(err)
	}
	tw.Flush()
}

// escapedTabWriter lets the template author spell tabs and form feeds as
// \t and \f, since literal ones are eaten by the template parser.
type escapedTabWriter struct {
	replacer  *strings.Replacer
	tabWriter *tabwriter.Writer
}

func newEscapedTabWriter(w io.Writer) escapedTabWriter {
	return escapedTabWriter{
		replacer:  strings.NewReplacer(`\t`, "\t", `\f`, "\f"),
		tabWriter: tabwriter.NewWriter(w, 0, 0, 0, ' ', 0),
	}
}

func (w escapedTabWriter) Write(p []byte) (int, error) {
	return w.replacer.WriteString(w.tabWriter, string(p))
}

func (w escapedTabWriter) Flush() error {
	return w.tabWriter.Flush()
}
