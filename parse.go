/*
Some code in this file was copied from the go "flag" package source and
modified. That code's license is retained here:

Copyright (c) 2009 The Go Authors. All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are
met:

   * Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.
   * Redistributions in binary form must reproduce the above
copyright notice, this list of conditions and the following disclaimer
in the documentation and/or other materials provided with the
distribution.
   * Neither the name of Google Inc. nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

package launcher

// rawResult holds the raw string values collected for each recognized
// flag, keyed by long name. It exists only for the duration of one
// Process call and is discarded after coercion.
type rawResult struct {
	values map[string][]string
}

func newRawResult() *rawResult {
	return &rawResult{values: map[string][]string{}}
}

func (r *rawResult) record(name, value string) {
	r.values[name] = append(r.values[name], value)
}

func (r *rawResult) has(name string) bool {
	return len(r.values[name]) > 0
}

// get returns the last recorded value for name, or def if the flag was
// never supplied.
func (r *rawResult) get(name, def string) string {
	vs := r.values[name]
	if len(vs) == 0 {
		return def
	}
	return vs[len(vs)-1]
}

func (r *rawResult) all(name string) []string {
	return r.values[name]
}

type parser struct {
	schema *Schema
	result *rawResult
	args   []string
}

func (p *parser) parse(arguments []string) error {
	p.args = arguments
	for {
		seen, err := p.parseOne()
		if err != nil {
			return err
		}
		if !seen {
			break
		}
	}
	// This command takes no positional arguments; anything left over is a
	// grammar violation rather than an operand.
	if len(p.args) > 0 {
		return syntaxErrorf("unexpected argument: %s", p.args[0])
	}
	return nil
}

func (p *parser) parseOne() (bool, error) {
	if len(p.args) == 0 {
		return false, nil
	}
	s := p.args[0]
	if len(s) < 2 || s[0] != '-' {
		return false, nil
	}
	numMinuses := 1
	if s[1] == '-' {
		numMinuses++
		if len(s) == 2 { // "--" terminates the flags
			p.args = p.args[1:]
			return false, nil
		}
	}
	name := s[numMinuses:]
	if len(name) == 0 || name[0] == '-' || name[0] == '=' {
		return false, syntaxErrorf("bad flag syntax: %s", s)
	}

	// it's a flag. does it have an inline argument?
	p.args = p.args[1:]
	hasValue := false
	value := ""
	for i := 1; i < len(name); i++ { // equals cannot be first
		if name[i] == '=' {
			value = name[i+1:]
			hasValue = true
			name = name[0:i]
			break
		}
	}

	if err := p.parseOneFlag(name, hasValue, value); err != nil {
		return false, err
	}

	return true, nil
}

func (p *parser) parseOneFlag(name string, hasValue bool, value string) error {
	spec, ok := p.schema.lookup(name)
	if !ok {
		return syntaxErrorf("flag provided but not defined: %s", name)
	}

	if !spec.TakesValue { // presence flag: doesn't need an arg
		if hasValue {
			return syntaxErrorf("flag does not take a value: %s", name)
		}
		p.result.record(spec.Name, "true")
		return nil
	}

	// It must have a value, which might be the next argument.
	if !hasValue && len(p.args) > 0 {
		hasValue = true
		value, p.args = p.args[0], p.args[1:]
	}
	if !hasValue {
		return syntaxErrorf("flag needs an argument: %s", name)
	}
	if spec.KeyValue && !validKeyValue(value) {
		return syntaxErrorf("flag %s needs an argument of form property=value, got %q", name, value)
	}
	p.result.record(spec.Name, value)
	return nil
}

// validKeyValue reports whether s is of the form key=value with a
// non-empty key.
func validKeyValue(s string) bool {
	for i, c := range s {
		if c == '=' {
			return i > 0
		}
	}
	return false
}
