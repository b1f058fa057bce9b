package cli

import (
	"bytes"
	"errors"
	"os"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/AntonioJCosta/apache/internal/adapters/oscommand"
	"github.com/AntonioJCosta/apache/internal/adapters/probecatalog"
	"github.com/AntonioJCosta/apache/internal/core/domain/probe"
	"github.com/AntonioJCosta/apache/internal/core/ports"
	"github.com/AntonioJCosta/apache/internal/core/services/dispatch"
	"github.com/AntonioJCosta/apache/internal/core/testutil"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type harness struct {
	root   *cobra.Command
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newHarness(t *testing.T, catalog ports.ProbeCatalog, executor ports.ProcessExecutor) *harness {
	t.Helper()
	if catalog == nil {
		var err error
		catalog, err = probecatalog.NewYAMLProvider(nil)
		require.NoError(t, err)
	}
	factory := func(opts RunOptions) (Runtime, error) {
		return Runtime{
			Catalog:    catalog,
			Dispatcher: dispatch.NewService(catalog, executor, opts.Presenter, nil),
		}, nil
	}
	h := &harness{
		root:   NewRootCommand("test", catalog, factory),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	h.root.SetOut(h.stdout)
	h.root.SetErr(h.stderr)
	return h
}

func (h *harness) run(args ...string) int {
	if args == nil {
		args = []string{}
	}
	h.root.SetArgs(args)
	return Execute(h.root)
}

func stubExecutor(output string) *testutil.MockProcessExecutor {
	return &testutil.MockProcessExecutor{
		ExecuteFunc: func(string) (string, error) { return output, nil },
	}
}

func TestRoot_EveryProbePrintsStubOutputVerbatim(t *testing.T) {
	catalog, err := probecatalog.NewYAMLProvider(nil)
	require.NoError(t, err)

	payload := "Configured Capacity: 1000 (1 KB)\n\tDFS Used%: 12.5%\n"
	for _, def := range catalog.Definitions() {
		if def.RequiresParam() {
			continue
		}
		for _, arg := range []string{"--" + string(def.ID), "-" + def.Shorthand} {
			t.Run(arg, func(t *testing.T) {
				executor := stubExecutor(payload)
				h := newHarness(t, catalog, executor)

				code := h.run(arg)

				assert.Equal(t, 0, code)
				assert.Equal(t, payload+"\n", h.stdout.String())
				assert.Empty(t, h.stderr.String())
				assert.Equal(t, []string{def.Command}, executor.Calls)
			})
		}
	}
}

func TestRoot_OutputLargerThanOneChunk(t *testing.T) {
	payload := strings.Repeat("Live datanodes (3):\n", 400) // 8000 bytes
	h := newHarness(t, nil, stubExecutor(payload))

	require.Equal(t, 0, h.run("--hdfs"))
	assert.Equal(t, payload+"\n", h.stdout.String())
}

func TestRoot_RealExecutorLargeOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}
	script := "i=0; while [ $i -lt 500 ]; do echo topology-$i ACTIVE; i=$((i+1)); done"
	catalog, err := probecatalog.NewYAMLProvider(map[string]string{"storm": script})
	require.NoError(t, err)
	h := newHarness(t, catalog, oscommand.NewOSCommandExecutor(oscommand.Config{}, nil))

	require.Equal(t, 0, h.run("--storm"))

	var want strings.Builder
	for i := 0; i < 500; i++ {
		want.WriteString("topology-")
		want.WriteString(strconv.Itoa(i))
		want.WriteString(" ACTIVE\n")
	}
	want.WriteString("\n")
	assert.Greater(t, want.Len(), oscommand.DefaultChunkSize)
	assert.Equal(t, want.String(), h.stdout.String())
}

func TestRoot_EmptyOutputPrintsEmptyLine(t *testing.T) {
	h := newHarness(t, nil, stubExecutor(""))

	require.Equal(t, 0, h.run("--pig"))
	assert.Equal(t, "\n", h.stdout.String())
	assert.Empty(t, h.stderr.String())
}

func TestRoot_ExecutorFailureGoesToStderr(t *testing.T) {
	executor := &testutil.MockProcessExecutor{
		ExecuteFunc: func(string) (string, error) {
			return "", &oscommand.ExecError{Stage: oscommand.StageRead, Command: "hdfs dfsadmin -report", Err: oscommand.ErrRead}
		},
	}
	h := newHarness(t, nil, executor)

	require.Equal(t, 0, h.run("--hdfs"))
	assert.Empty(t, h.stdout.String())
	assert.Equal(t, "Error executing command: hdfs dfsadmin -report\n", h.stderr.String())
}

func TestRoot_FlinkWithoutPort(t *testing.T) {
	for _, args := range [][]string{{"--flink"}, {"-f"}, {"--flink", "--port=jobmanager"}, {"--flink", "--port="}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			executor := stubExecutor("unused")
			h := newHarness(t, nil, executor)

			require.Equal(t, 0, h.run(args...))
			assert.Equal(t, "Port is not specified correctly. Please specify it using the --port option.\n", h.stdout.String())
			assert.Empty(t, executor.Calls)
		})
	}
}

func TestRoot_FlinkWithPort(t *testing.T) {
	for _, args := range [][]string{
		{"--flink", "--port=2181"},
		{"--port", "2181", "--flink"},
		{"-f", "-P", "2181"},
		{"-fP2181"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			executor := stubExecutor("No running jobs.")
			h := newHarness(t, nil, executor)

			require.Equal(t, 0, h.run(args...))
			assert.Equal(t, []string{"flink list -m localhost:2181"}, executor.Calls)
			assert.Equal(t, "No running jobs.\n", h.stdout.String())
		})
	}
}

func TestRoot_AllRunsFixedSequenceDespiteFailure(t *testing.T) {
	wantCalls := []string{
		"sudo systemctl status atlas",
		"sudo ranger-admin status",
		"hbase shell -c 'status'",
		"hdfs dfsadmin -report",
		"sudo systemctl status presto",
		"spark-shell --master yarn",
		"storm list",
		"yarn node -list",
		`kafka-run-class.sh kafka.tools.JmxTool --object-name "kafka.server:type=KafkaServer,name=BrokerState" --attributes Value --one-time true`,
		"oozie admin -status",
		"yarn application -list -appTypes TEZ",
		"sudo systemctl status hue",
		"pig -version",
	}

	for _, arg := range []string{"--all", "-A"} {
		t.Run(arg, func(t *testing.T) {
			calls := 0
			executor := &testutil.MockProcessExecutor{}
			executor.ExecuteFunc = func(commandLine string) (string, error) {
				calls++
				if calls == 4 {
					return "", errors.New("spawn failed")
				}
				return commandLine, nil
			}
			h := newHarness(t, nil, executor)

			require.Equal(t, 0, h.run(arg))
			assert.Equal(t, wantCalls, executor.Calls)
			assert.Equal(t, "Error executing command: hdfs dfsadmin -report\n", h.stderr.String())

			var wantOut strings.Builder
			for i, c := range wantCalls {
				if i == 3 {
					continue
				}
				wantOut.WriteString(c + "\n")
			}
			assert.Equal(t, wantOut.String(), h.stdout.String())
		})
	}
}

func TestRoot_ProbesRunInCommandLineOrder(t *testing.T) {
	executor := stubExecutor("ok")
	h := newHarness(t, nil, executor)

	require.Equal(t, 0, h.run("--pig", "--hdfs", "-yz", "--pig"))
	assert.Equal(t, []string{
		"pig -version",
		"hdfs dfsadmin -report",
		"yarn node -list",
		"echo stat | nc localhost 2181",
		"pig -version",
	}, executor.Calls)
}

func TestRoot_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown long flag", args: []string{"--hdfs", "--cassandra"}, want: "unknown flag: --cassandra"},
		{name: "unknown shorthand", args: []string{"-x"}, want: "unknown shorthand flag"},
		{name: "excess argument", args: []string{"--hdfs", "extra"}, want: `too many command-line arguments (first is "extra")`},
		{name: "port without value", args: []string{"--flink", "--port"}, want: "flag needs an argument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executor := stubExecutor("unused")
			h := newHarness(t, nil, executor)

			code := h.run(tt.args...)

			assert.NotEqual(t, 0, code)
			assert.Contains(t, h.stderr.String(), tt.want)
			assert.Contains(t, h.stderr.String(), "Try apache --help for more information.")
			assert.Empty(t, executor.Calls)
			assert.Empty(t, h.stdout.String())
		})
	}
}

func TestRoot_Help(t *testing.T) {
	for _, args := range [][]string{{"--help"}, {"-?"}, {}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			executor := stubExecutor("unused")
			h := newHarness(t, nil, executor)

			require.Equal(t, 0, h.run(args...))
			out := h.stdout.String()
			assert.Contains(t, out, "Usage:")
			assert.Contains(t, out, "-h, --hdfs")
			assert.Contains(t, out, "-A, --all")
			assert.Contains(t, out, "-P, --port string")
			assert.Contains(t, out, "-?, --help")
			assert.Empty(t, executor.Calls)
		})
	}
}

func TestRoot_List(t *testing.T) {
	executor := stubExecutor("unused")
	h := newHarness(t, nil, executor)

	require.Equal(t, 0, h.run("--list"))
	out := h.stdout.String()
	assert.Contains(t, out, "Available probes:")
	assert.Contains(t, out, "sudo ranger-admin status")
	assert.Contains(t, out, "-f, --flink (needs --port)")
	assert.Empty(t, executor.Calls)
}

func TestRoot_Summary(t *testing.T) {
	executor := &testutil.MockProcessExecutor{
		ExecuteFunc: func(commandLine string) (string, error) {
			if commandLine == "pig -version" {
				return "", errors.New("not found")
			}
			return "ok", nil
		},
	}
	h := newHarness(t, nil, executor)

	require.Equal(t, 0, h.run("--summary", "--hue", "--pig", "--flink"))
	assert.Equal(t, "ok\nPort is not specified correctly. Please specify it using the --port option.\n", h.stdout.String())

	errOut := h.stderr.String()
	assert.Contains(t, errOut, "Error executing command: pig -version")
	assert.Contains(t, errOut, "Probe summary:")
	assert.Contains(t, errOut, string(probe.StatusFailed))
	assert.Contains(t, errOut, string(probe.StatusSkipped))
	assert.Contains(t, errOut, "2 of 3 probe(s) did not complete.")
}

func TestRoot_RuntimeFactoryError(t *testing.T) {
	catalog, err := probecatalog.NewYAMLProvider(nil)
	require.NoError(t, err)
	root := NewRootCommand("test", catalog, func(RunOptions) (Runtime, error) {
		return Runtime{}, errors.New("read config: bad yaml")
	})
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"--hdfs"})

	assert.Equal(t, 1, Execute(root))
	assert.Contains(t, stderr.String(), "could not initialize: read config: bad yaml")
	assert.Empty(t, stdout.String())
}
