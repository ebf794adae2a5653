package launcher

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestProcessor returns a processor with usage output captured and the
// environment stubbed out so the host environment cannot leak into tests.
func newTestProcessor(env map[string]string) (*Processor, *strings.Builder) {
	b := &strings.Builder{}
	p := NewProcessor()
	p.OutWriter = b
	p.LookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	return p, b
}

func TestProcessDefaults(t *testing.T) {
	p, _ := newTestProcessor(nil)
	cfg, err := p.Process([]string{"--instances", "3"})
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Instances())
	assert.Equal(t, -1, cfg.Executors())
	assert.Equal(t, int64(-1), cfg.CacheSize())
	assert.Equal(t, int64(-1), cfg.ContainerSize())
	assert.Equal(t, int64(-1), cfg.HeapSize())
	assert.True(t, cfg.IncludeHBaseJars())
	assert.Empty(t, cfg.Properties())
	assert.Empty(t, cfg.Name())
	assert.Empty(t, cfg.Directory())
	assert.Empty(t, cfg.AuxJars())
	assert.False(t, cfg.UseDefaultKeytab())
}

func TestProcessMissingInstances(t *testing.T) {
	for _, argv := range [][]string{
		{},
		{"--name", "mycluster"},
		{"-n", "mycluster", "-c", "2g", "--auxhbase", "false"},
	} {
		p, b := newTestProcessor(nil)
		cfg, err := p.Process(argv)
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, ErrUsage)
		assert.Contains(t, b.String(), "--instances")
	}
}

func TestProcessHelp(t *testing.T) {
	for _, argv := range [][]string{
		{"--help"},
		{"-H"},
		{"--instances", "4", "--help"},
	} {
		p, b := newTestProcessor(nil)
		cfg, err := p.Process(argv)
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, ErrUsage)
		assert.NotEmpty(t, b.String())
	}
}

func TestProcessNonPositiveInstances(t *testing.T) {
	for _, argv := range [][]string{
		{"--instances", "0"},
		{"--instances", "-5"},
	} {
		p, _ := newTestProcessor(nil)
		cfg, err := p.Process(argv)
		assert.Nil(t, cfg)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Error(), "greater than 0")
	}
}

func TestProcessNonNumericInstances(t *testing.T) {
	p, _ := newTestProcessor(nil)
	cfg, err := p.Process([]string{"--instances", "many"})
	assert.Nil(t, cfg)

	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, OptionInstances, ferr.Flag)
	assert.Equal(t, "many", ferr.Value)
}

func TestProcessBadSizeValue(t *testing.T) {
	p, _ := newTestProcessor(nil)
	cfg, err := p.Process([]string{"-i", "2", "--cache", "2x"})
	assert.Nil(t, cfg)

	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, OptionCache, ferr.Flag)
}

func TestProcessEndToEnd(t *testing.T) {
	p, _ := newTestProcessor(nil)
	cfg, err := p.Process([]string{"-i", "4", "-n", "mycluster", "-c", "2g", "-w", "1g"})
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Instances())
	assert.Equal(t, "mycluster", cfg.Name())
	assert.Equal(t, int64(2147483648), cfg.CacheSize())
	assert.Equal(t, int64(1073741824), cfg.HeapSize())
	assert.Equal(t, -1, cfg.Executors())
	assert.Equal(t, int64(-1), cfg.ContainerSize())
	assert.True(t, cfg.IncludeHBaseJars())
}

func TestProcessProperties(t *testing.T) {
	p, _ := newTestProcessor(nil)
	cfg, err := p.Process([]string{
		"-i", "1",
		"--hiveconf", "a=1",
		"--hiveconf", "b=2",
		"--hiveconf", "a=2",
	})
	require.NoError(t, err)

	// later duplicates win
	assert.Equal(t, map[string]string{"a": "2", "b": "2"}, cfg.Properties())
}

func TestProcessPropertiesImmutable(t *testing.T) {
	p, _ := newTestProcessor(nil)
	cfg, err := p.Process([]string{"-i", "1", "--hiveconf", "a=1"})
	require.NoError(t, err)

	cfg.Properties()["a"] = "tampered"
	assert.Equal(t, map[string]string{"a": "1"}, cfg.Properties())
}

func TestProcessAuxHBase(t *testing.T) {
	for _, tc := range []struct {
		argv []string
		want bool
	}{
		{[]string{"-i", "1"}, true},
		{[]string{"-i", "1", "--auxhbase", "true"}, true},
		{[]string{"-i", "1", "--auxhbase", "TRUE"}, true},
		{[]string{"-i", "1", "--auxhbase", "false"}, false},
		// anything that is not "true" coerces to false, never an error
		{[]string{"-i", "1", "--auxhbase", "maybe"}, false},
		{[]string{"-i", "1", "-h", "false"}, false},
	} {
		p, _ := newTestProcessor(nil)
		cfg, err := p.Process(tc.argv)
		require.NoError(t, err, "argv: %v", tc.argv)
		assert.Equal(t, tc.want, cfg.IncludeHBaseJars(), "argv: %v", tc.argv)
	}
}

func TestProcessPassThroughFields(t *testing.T) {
	p, _ := newTestProcessor(nil)
	cfg, err := p.Process([]string{
		"-i", "2",
		"-d", "/tmp/pkg",
		"-a", "-Xms2g -verbose:gc",
		"-l", "WARN",
		"-m", "300",
		"-j", "extra1.jar,extra2.jar",
		"--slider-keytab-dir", ".keytabs/cache",
		"--slider-keytab", "cache.keytab",
		"--slider-principal", "cache@EXAMPLE.COM",
		"--slider-default-keytab",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/pkg", cfg.Directory())
	assert.Equal(t, "-Xms2g -verbose:gc", cfg.Args())
	assert.Equal(t, "WARN", cfg.LogLevel())
	assert.Equal(t, "300", cfg.ChaosMonkey())
	assert.Equal(t, "extra1.jar,extra2.jar", cfg.AuxJars())
	assert.Equal(t, ".keytabs/cache", cfg.KeytabDir())
	assert.Equal(t, "cache.keytab", cfg.Keytab())
	assert.Equal(t, "cache@EXAMPLE.COM", cfg.Principal())
	assert.True(t, cfg.UseDefaultKeytab())
}

func TestProcessSyntaxErrors(t *testing.T) {
	for _, argv := range [][]string{
		{"--bogus", "1"},
		{"-i", "2", "--name"},
		{"-i", "2", "--hiveconf", "noequals"},
		{"-i", "2", "--hiveconf", "=value"},
		{"-i", "2", "stray"},
		{"-i", "2", "--help=later"},
		{"---instances", "2"},
	} {
		p, _ := newTestProcessor(nil)
		cfg, err := p.Process(argv)
		assert.Nil(t, cfg, "argv: %v", argv)

		var serr *SyntaxError
		assert.ErrorAs(t, err, &serr, "argv: %v", argv)
	}
}

func TestProcessEqualsForms(t *testing.T) {
	p, _ := newTestProcessor(nil)
	cfg, err := p.Process([]string{"-i=4", "--name=mycluster", "--cache=512m"})
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Instances())
	assert.Equal(t, "mycluster", cfg.Name())
	assert.Equal(t, int64(536870912), cfg.CacheSize())
}

func TestProcessEnvFallback(t *testing.T) {
	p, _ := newTestProcessor(map[string]string{
		"GRIDLAUNCH_INSTANCES": "2",
		"GRIDLAUNCH_NAME":      "envcluster",
	})
	cfg, err := p.Process(nil)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Instances())
	assert.Equal(t, "envcluster", cfg.Name())
}

func TestProcessEnvFallbackPrecedence(t *testing.T) {
	p, _ := newTestProcessor(map[string]string{
		"GRIDLAUNCH_NAME": "envcluster",
	})
	cfg, err := p.Process([]string{"-i", "1", "--name", "argcluster"})
	require.NoError(t, err)

	assert.Equal(t, "argcluster", cfg.Name())
}

func TestProcessIndependentCalls(t *testing.T) {
	p, _ := newTestProcessor(nil)

	cfg1, err := p.Process([]string{"-i", "1", "--hiveconf", "a=1"})
	require.NoError(t, err)
	cfg2, err := p.Process([]string{"-i", "2"})
	require.NoError(t, err)

	assert.Equal(t, 1, cfg1.Instances())
	assert.Equal(t, map[string]string{"a": "1"}, cfg1.Properties())
	assert.Equal(t, 2, cfg2.Instances())
	assert.Empty(t, cfg2.Properties())
}

func TestProcessTerminator(t *testing.T) {
	p, _ := newTestProcessor(nil)
	cfg, err := p.Process([]string{"-i", "2", "--"})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Instances())

	cfg, err = p.Process([]string{"-i", "2", "--", "stray"})
	assert.Nil(t, cfg)
	var serr *SyntaxError
	assert.ErrorAs(t, err, &serr)
}

func TestProcessErrorKinds(t *testing.T) {
	p, _ := newTestProcessor(nil)

	_, err := p.Process([]string{"--wat"})
	var serr *SyntaxError
	assert.ErrorAs(t, err, &serr)
	var ferr *FormatError
	assert.False(t, errors.As(err, &ferr))

	_, err = p.Process([]string{"-i", "nope"})
	assert.ErrorAs(t, err, &ferr)
	assert.False(t, errors.As(err, &serr))
}
