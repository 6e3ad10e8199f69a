package readiness

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/readiness/pkg/check"
	"github.com/vertti/readiness/pkg/cmdcheck"
	"github.com/vertti/readiness/pkg/output"
	"github.com/vertti/readiness/pkg/resourcecheck"
	"github.com/vertti/readiness/pkg/testutil"
)

func TestMain(m *testing.M) {
	output.DisableColor()
	os.Exit(m.Run())
}

const gb = resourcecheck.GB

type fakeSys struct {
	arch  string
	err   error
	panic bool
}

func (f *fakeSys) OS() string { return "linux" }
func (f *fakeSys) Arch(context.Context) (string, error) {
	if f.panic {
		panic("host info exploded")
	}
	return f.arch, f.err
}

type fakeResources struct {
	memory uint64
	disk   uint64
	cpuErr error
}

func (f *fakeResources) TotalMemory(context.Context) (uint64, error) { return f.memory, nil }
func (f *fakeResources) FreeDisk(context.Context, string) (uint64, error) {
	return f.disk, nil
}
func (f *fakeResources) CPU(context.Context) (resourcecheck.CPUInfo, error) {
	return resourcecheck.CPUInfo{Model: "Test CPU", LogicalCores: 8}, f.cpuErr
}

type fakeHost struct {
	sys       *fakeSys
	resources *fakeResources
	onPath    map[string]string
	python    string
	venvErr   error
	dialErr   error
	headCode  int
}

func healthyHost() *fakeHost {
	return &fakeHost{
		sys:       &fakeSys{arch: "x86_64"},
		resources: &fakeResources{memory: 16 * gb, disk: 100 * gb},
		onPath: map[string]string{
			"/bin/bash": "/bin/bash",
			"python":    "/usr/bin/python",
		},
		python:   "Python 3.11.7",
		headCode: http.StatusOK,
	}
}

func (h *fakeHost) options(out *bytes.Buffer) []Option {
	runner := &cmdcheck.MockRunner{
		LookPathFunc: func(file string) (string, error) {
			if p, ok := h.onPath[file]; ok {
				return p, nil
			}
			return "", errors.New("executable file not found in $PATH")
		},
		RunCommandFunc: func(_ context.Context, name string, args ...string) (string, string, error) {
			switch {
			case name == "/bin/bash":
				return "GNU bash, version 5.2.21(1)-release", "", nil
			case len(args) == 1 && args[0] == "--version":
				return h.python, "", nil
			case h.venvErr != nil:
				return "", "No module named venv", h.venvErr
			default:
				return "usage: venv", "", nil
			}
		},
	}
	dialer := &mockDialer{err: h.dialErr}
	client := &testutil.MockHTTPClient{DoFunc: func(*http.Request) (*http.Response, error) {
		return testutil.MockResponse(h.headCode, ""), nil
	}}

	return []Option{
		WithOutput(out),
		WithPlatform("linux", func(k string) string {
			if k == "SHELL" {
				return "/bin/bash"
			}
			return ""
		}),
		WithSysInfo(h.sys),
		WithResources(h.resources),
		WithRunner(runner),
		WithDialer(dialer),
		WithHTTPClient(client),
	}
}

type mockDialer struct {
	err error
}

func (m *mockDialer) DialContext(context.Context, string, string) (net.Conn, error) {
	if m.err != nil {
		return nil, m.err
	}
	client, server := net.Pipe()
	_ = server.Close()
	return client, nil
}

func run(t *testing.T, cfg Config, h *fakeHost) (Report, string) {
	t.Helper()
	var out bytes.Buffer
	report := New(cfg, h.options(&out)...).Run(context.Background())
	return report, out.String()
}

func configWithHost() Config {
	cfg := DefaultConfig()
	cfg.APIHost = "api.example.com"
	return cfg
}

func statusOf(t *testing.T, report Report, prefix string) check.Status {
	t.Helper()
	for _, r := range report.Results {
		if strings.HasPrefix(r.Name, prefix) {
			return r.Status
		}
	}
	t.Fatalf("no result named %q in %+v", prefix, report.Results)
	return ""
}

func TestRun_AllPass(t *testing.T) {
	report, out := run(t, configWithHost(), healthyHost())

	assert.True(t, report.Ready())
	assert.Empty(t, report.Failed())
	require.Len(t, report.Results, 8)
	assert.Contains(t, out, "Overall readiness: PASS")
	assert.NotContains(t, out, "[FAIL]")
	assert.Contains(t, out, "[OK] OS 64-bit - linux/x86_64")
	assert.Contains(t, out, "[INFO] CPU - Test CPU, 8 logical cores")
	assert.Contains(t, out, "[OK] RAM - 16.00 GB installed (required: 8 GB)")
	assert.Contains(t, out, "[OK] Python - Python 3.11.7")
	assert.Contains(t, out, "[OK] API reachability (api.example.com) - connected to api.example.com:443")
}

func TestRun_OutputOrder(t *testing.T) {
	_, out := run(t, configWithHost(), healthyHost())

	labels := []string{
		"Environment readiness check",
		"OS 64-bit",
		"Shell version",
		"CPU",
		"RAM",
		"Free disk (/)",
		"Python -",
		"Python venv module",
		"API reachability",
		"Overall readiness",
	}
	last := -1
	for _, l := range labels {
		idx := strings.Index(out, l)
		require.GreaterOrEqual(t, idx, 0, "missing %q in output:\n%s", l, out)
		assert.Greater(t, idx, last, "%q printed out of order:\n%s", l, out)
		last = idx
	}
}

func TestRun_DiskBelowThreshold(t *testing.T) {
	h := healthyHost()
	h.resources.disk = 10 * gb

	report, out := run(t, configWithHost(), h)

	assert.False(t, report.Ready())
	require.Len(t, report.Failed(), 1)
	assert.Contains(t, out, "[FAIL] Free disk (/) - 10.00 GB free (required: 20 GB)")
	assert.Contains(t, out, "Overall readiness: FAIL")
}

func TestRun_Thresholds(t *testing.T) {
	h := healthyHost()
	h.resources.memory = 12 * gb
	h.resources.disk = 50 * gb

	cfg := configWithHost()
	cfg.RequiredRAMGB = 12
	cfg.RequiredFreeDiskGB = 51

	report, _ := run(t, cfg, h)

	assert.Equal(t, check.StatusOK, statusOf(t, report, "RAM"))
	assert.Equal(t, check.StatusFail, statusOf(t, report, "Free disk"))
}

func TestRun_PythonMissingSkipsVenv(t *testing.T) {
	h := healthyHost()
	delete(h.onPath, "python")

	report, out := run(t, configWithHost(), h)

	assert.False(t, report.Ready())
	assert.Equal(t, check.StatusFail, statusOf(t, report, "Python"))
	assert.Equal(t, check.StatusSkip, statusOf(t, report, "Python venv module"))
	assert.Contains(t, out, "install Python 3")
	assert.Contains(t, out, "[SKIP] Python venv module")
	require.Len(t, report.Failed(), 1)
}

func TestRun_OldPython(t *testing.T) {
	h := healthyHost()
	h.python = "Python 2.7.18"

	report, out := run(t, configWithHost(), h)

	assert.False(t, report.Ready())
	assert.Contains(t, out, "[FAIL] Python - Python 2.7.18 is too old")
}

func TestRun_UnparseablePython(t *testing.T) {
	h := healthyHost()
	h.python = "Python"

	report, out := run(t, configWithHost(), h)

	assert.False(t, report.Ready())
	assert.Contains(t, out, `could not parse version from "Python"`)
}

func TestRun_VenvMissing(t *testing.T) {
	h := healthyHost()
	h.venvErr = errors.New("exit status 1")

	report, out := run(t, configWithHost(), h)

	assert.False(t, report.Ready())
	assert.Contains(t, out, "[FAIL] Python venv module")
}

func TestRun_NoHostSkipsNetwork(t *testing.T) {
	h := healthyHost()
	h.dialErr = errors.New("should not dial")

	report, out := run(t, DefaultConfig(), h)

	assert.True(t, report.Ready())
	assert.Contains(t, out, "[SKIP] API reachability")
	assert.Contains(t, out, "Overall readiness: PASS")
}

func TestRun_NetworkFallback(t *testing.T) {
	h := healthyHost()
	h.dialErr = errors.New("connection refused")
	h.headCode = http.StatusForbidden

	report, out := run(t, configWithHost(), h)

	assert.True(t, report.Ready())
	assert.Contains(t, out, "returned 403")
}

func TestRun_NetworkUnreachable(t *testing.T) {
	h := healthyHost()
	h.dialErr = errors.New("connection refused")
	h.headCode = http.StatusBadGateway

	report, _ := run(t, configWithHost(), h)

	assert.False(t, report.Ready())
	assert.Equal(t, check.StatusFail, statusOf(t, report, "API reachability"))
}

func TestRun_CPUErrorDoesNotBlock(t *testing.T) {
	h := healthyHost()
	h.resources.cpuErr = errors.New("no cpuinfo")

	report, out := run(t, configWithHost(), h)

	assert.True(t, report.Ready())
	assert.Contains(t, out, "[WARN] CPU - could not query CPU info: no cpuinfo")
}

func TestRun_DataSourceErrorFailsButContinues(t *testing.T) {
	h := healthyHost()
	h.sys.err = errors.New("host query failed")

	report, out := run(t, configWithHost(), h)

	assert.False(t, report.Ready())
	assert.Len(t, report.Results, 8)
	assert.Contains(t, out, "[FAIL] OS 64-bit - could not determine OS architecture: host query failed")
	assert.Contains(t, out, "Overall readiness: FAIL")
}

func TestRun_PanicIsContained(t *testing.T) {
	h := healthyHost()
	h.sys.panic = true

	report, out := run(t, configWithHost(), h)

	require.Len(t, report.Results, 8)
	assert.Equal(t, check.StatusFail, report.Results[0].Status)
	assert.Equal(t, "OS 64-bit", report.Results[0].Name)
	assert.Contains(t, out, "check panicked: host info exploded")
	assert.Contains(t, out, "[OK] API reachability")
	assert.Contains(t, out, "Overall readiness: FAIL")
	assert.False(t, report.Ready())
}

func TestRun_LogsFailures(t *testing.T) {
	h := healthyHost()
	h.resources.disk = gb

	var out, logs bytes.Buffer
	opts := append(h.options(&out), WithLogger(newTestLogger(&logs)))
	New(configWithHost(), opts...).Run(context.Background())

	assert.Contains(t, logs.String(), "check did not pass")
	assert.Contains(t, logs.String(), "Free disk")
}
