package cmd

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"go.yaml.in/yaml/v3"

	"github.com/kbukum/utl/errors"
	"github.com/kbukum/utl/version"
)

const testConfig = `
logging:
  level: warn
  format: json
strings:
  output: text
`

type result struct {
	code   int
	stdout string
	stderr string
}

// runCLI executes the command tree against a private config file.
func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	return runCLIWithConfig(t, testConfig, stdin, args...)
}

func runCLIWithConfig(t *testing.T, cfg, stdin string, args ...string) result {
	t.Helper()
	path := filepath.Join(t.TempDir(), "utl.yml")
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var stdout, stderr bytes.Buffer
	a := &app{}
	root := newRootCmd(a)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", path}, args...))

	code := execute(context.Background(), a, root)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write([]byte(s)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestCommands_Text(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"trim match", "", []string{"trim", "--text", "xyzHelloxyz", "--match", "xyz"}, "Hello\n"},
		{"trim default whitespace", "", []string{"trim", "--text", " \thi \t"}, "hi\n"},
		{"trim left", "", []string{"trim", "--left", "--text", "  hi  "}, "hi  \n"},
		{"trim right", "", []string{"trim", "--right", "--text", "  hi  "}, "  hi\n"},
		{"trim stdin lines", "  a \n b\r\n", []string{"trim"}, "a\nb\n"},
		{"group", "", []string{"group", "--match", " ", "--text", "a   b  c"}, "a b c\n"},
		{"group replace", "", []string{"group", "--match", "-_", "--replace", "--text", "a_-_b"}, "a-b\n"},
		{"split match", "", []string{"split", "--text", "a,b,,c", "--match", ","}, "a\nb\nc\n"},
		{"split include empty", "", []string{"split", "--text", "a,b,,c", "-m", ",", "--include-empty"}, "a\nb\n\nc\n"},
		{"split pattern", "", []string{"split", "--text", "1XY2XY3", "--pattern", "XY"}, "1\n2\n3\n"},
		{"split unique", "", []string{"split", "--text", "b a b c a", "-m", " ", "--unique"}, "b\na\nc\n"},
		{"find first", "", []string{"find", "--text", "aaaxaaayaaaz", "--match", "xyz"}, "3\n"},
		{"find first from offset", "", []string{"find", "--text", "aaaxaaayaaaz", "-m", "xyz", "--offset", "4"}, "7\n"},
		{"find last", "", []string{"find", "--text", "aaaxaaayaaaz", "-m", "xyz", "--last"}, "11\n"},
		{"find last pattern", "", []string{"find", "--text", "aaaxaaayaaaz", "-p", "aaa", "--last"}, "8\n"},
		{"find none", "", []string{"find", "--text", "abc", "-m", "z"}, "-1\n"},
		{"remove match", "", []string{"remove", "--text", "a1b2c3", "--match", "123"}, "abc\n"},
		{"remove pattern", "", []string{"remove", "--text", "XYXYX", "--pattern", "XY"}, "X\n"},
		{"replace", "", []string{"replace", "--pattern", "foo", "--with", "bar", "--text", "foo food"}, "bar bard\n"},
		{"replace delete", "", []string{"replace", "-p", "o", "--text", "foo"}, "f\n"},
		{"case upper", "", []string{"case", "upper", "--text", "Hello"}, "HELLO\n"},
		{"case lower", "", []string{"case", "lower", "--text", "Hello"}, "hello\n"},
		{"case reverse", "", []string{"case", "reverse", "--text", "abc"}, "cba\n"},
		{"empty input", "", []string{"trim"}, ""},
		{"skip blank", "a\n\nb\n", []string{"case", "upper", "--skip-blank"}, "A\nB\n"},
		{"keep blank", "a\n\nb\n", []string{"case", "upper"}, "A\n\nB\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, tt.stdin, tt.args...)
			if res.code != errors.ExitOK {
				t.Fatalf("exit code = %d, stderr = %q", res.code, res.stderr)
			}
			if res.stdout != tt.want {
				t.Errorf("stdout = %q, want %q", res.stdout, tt.want)
			}
		})
	}
}

func TestCommands_JSON(t *testing.T) {
	res := runCLI(t, "xxaxx\nbxx\n", "trim", "--match", "x", "--output", "json")
	if res.code != errors.ExitOK {
		t.Fatalf("exit code = %d, stderr = %q", res.code, res.stderr)
	}

	var got []editRecord
	if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("decode %q: %v", res.stdout, err)
	}
	want := []editRecord{
		{Line: 1, Text: "a", Removed: 4},
		{Line: 2, Text: "b", Removed: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestCommands_JSONEmptyInput(t *testing.T) {
	res := runCLI(t, "", "find", "-m", "x", "-o", "json")
	if res.code != errors.ExitOK {
		t.Fatalf("exit code = %d, stderr = %q", res.code, res.stderr)
	}
	if strings.TrimSpace(res.stdout) != "[]" {
		t.Errorf("stdout = %q, want []", res.stdout)
	}
}

func TestCommands_YAML(t *testing.T) {
	res := runCLI(t, "", "split", "--text", "a,,b", "-m", ",", "--include-empty", "-o", "yaml")
	if res.code != errors.ExitOK {
		t.Fatalf("exit code = %d, stderr = %q", res.code, res.stderr)
	}

	var got []splitRecord
	if err := yaml.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("decode %q: %v", res.stdout, err)
	}
	want := []splitRecord{{Line: 1, Count: 3, Spans: []string{"a", "", "b"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestCommands_FindJSON(t *testing.T) {
	res := runCLI(t, "abc\nxyz\n", "find", "-p", "bc", "-o", "json")
	if res.code != errors.ExitOK {
		t.Fatalf("exit code = %d, stderr = %q", res.code, res.stderr)
	}

	var got []findRecord
	if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []findRecord{
		{Line: 1, Index: 1, Found: true},
		{Line: 2, Index: -1, Found: false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestCommands_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"match and pattern", []string{"remove", "-m", "a", "-p", "b", "--text", "ab"}, errors.ExitUsage},
		{"replace without pattern", []string{"replace", "--text", "ab"}, errors.ExitUsage},
		{"non ascii match", []string{"trim", "--match", "é", "--text", "ab"}, errors.ExitUsage},
		{"left and right", []string{"trim", "--left", "--right", "--text", "ab"}, errors.ExitUsage},
		{"negative offset", []string{"find", "-m", "a", "--offset", "-1", "--text", "ab"}, errors.ExitUsage},
		{"bad output", []string{"trim", "-o", "xml", "--text", "ab"}, errors.ExitUsage},
		{"bad case op", []string{"case", "title", "--text", "ab"}, errors.ExitUsage},
		{"unknown flag", []string{"trim", "--bogus"}, errors.ExitUsage},
		{"unknown command", []string{"frobnicate"}, errors.ExitUsage},
		{"text and file", []string{"trim", "--text", "a", "--file", "x.txt"}, errors.ExitUsage},
		{"missing input file", []string{"trim", "--file", "does-not-exist.txt"}, errors.ExitNoInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, "", tt.args...)
			if res.code != tt.want {
				t.Errorf("exit code = %d, want %d (stderr %q)", res.code, tt.want, res.stderr)
			}
			if !strings.Contains(res.stderr, "utl: ") {
				t.Errorf("stderr = %q, want an error message", res.stderr)
			}
			if res.stdout != "" {
				t.Errorf("stdout = %q, want empty", res.stdout)
			}
		})
	}
}

func TestCommands_CompressedInput(t *testing.T) {
	gz := gzipBytes(t, "--a--\n-b-\n")

	res := runCLI(t, string(gz), "trim", "-m", "-")
	if res.code != errors.ExitOK {
		t.Fatalf("exit code = %d, stderr = %q", res.code, res.stderr)
	}
	if res.stdout != "a\nb\n" {
		t.Errorf("stdout = %q", res.stdout)
	}

	path := filepath.Join(t.TempDir(), "input.txt.gz")
	if err := os.WriteFile(path, gz, 0o600); err != nil {
		t.Fatal(err)
	}
	res = runCLI(t, "", "case", "upper", "--file", path)
	if res.code != errors.ExitOK {
		t.Fatalf("exit code = %d, stderr = %q", res.code, res.stderr)
	}
	if res.stdout != "--A--\n-B-\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestCommands_MissingConfig(t *testing.T) {
	var stderr bytes.Buffer
	a := &app{}
	root := newRootCmd(a)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&stderr)
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yml"), "trim", "--text", "a"})

	if code := execute(context.Background(), a, root); code != errors.ExitNoInput {
		t.Errorf("exit code = %d, want %d", code, errors.ExitNoInput)
	}
	if !strings.Contains(stderr.String(), "config file") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestCommands_VerboseLogsRunID(t *testing.T) {
	res := runCLI(t, "", "-v", "trim", "--text", "  a  ")
	if res.code != errors.ExitOK {
		t.Fatalf("exit code = %d, stderr = %q", res.code, res.stderr)
	}
	if res.stdout != "a\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
	for _, want := range []string{`"run_id"`, `"operation":"trim"`, `"bytes_removed":4`, `"component":"cli"`} {
		if !strings.Contains(res.stderr, want) {
			t.Errorf("stderr missing %s:\n%s", want, res.stderr)
		}
	}
}

func TestCommands_QuietByDefault(t *testing.T) {
	res := runCLI(t, "", "trim", "--text", "a")
	if res.stderr != "" {
		t.Errorf("stderr = %q, want no logs below warn", res.stderr)
	}
}

func TestVersionCmd(t *testing.T) {
	res := runCLI(t, "", "version")
	if res.code != errors.ExitOK {
		t.Fatalf("exit code = %d", res.code)
	}
	if res.stdout != version.Get().String()+"\n" {
		t.Errorf("stdout = %q", res.stdout)
	}

	res = runCLI(t, "", "version", "-o", "json")
	var info version.Info
	if err := json.Unmarshal([]byte(res.stdout), &info); err != nil {
		t.Fatalf("decode %q: %v", res.stdout, err)
	}
	if info.Version != version.Version {
		t.Errorf("version = %q, want %q", info.Version, version.Version)
	}
}

// collector counts OTLP export requests per path.
type collector struct {
	mu       sync.Mutex
	requests map[string]int
}

func newCollector(t *testing.T) (*collector, string) {
	t.Helper()
	c := &collector{requests: map[string]int{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		c.mu.Lock()
		c.requests[r.URL.Path]++
		c.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return c, strings.TrimPrefix(srv.URL, "http://")
}

func (c *collector) count(path string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requests[path]
}

func TestCommands_FailedRunExportsTelemetry(t *testing.T) {
	c, endpoint := newCollector(t)
	cfg := testConfig + `
telemetry:
  enabled: true
  endpoint: ` + endpoint + `
  insecure: true
`
	gz := gzipBytes(t, "--a--\n-b-\n")
	truncated := gz[:len(gz)-4]

	res := runCLIWithConfig(t, cfg, string(truncated), "trim", "-m", "-")
	if res.code != errors.ExitIOError {
		t.Fatalf("exit code = %d, want %d (stderr %q)", res.code, errors.ExitIOError, res.stderr)
	}
	if c.count("/v1/metrics") == 0 {
		t.Error("expected metrics to be exported for a failed run")
	}
	if c.count("/v1/traces") == 0 {
		t.Error("expected the error span to be exported for a failed run")
	}
}

func TestCommands_FailedRunReport(t *testing.T) {
	gz := gzipBytes(t, "--a--\n-b-\n")
	res := runCLI(t, string(gz[:len(gz)-4]), "trim", "-m", "-")
	if res.code != errors.ExitIOError {
		t.Fatalf("exit code = %d, want %d", res.code, errors.ExitIOError)
	}

	if !strings.Contains(res.stderr, "utl: Failed to read input: ") {
		t.Errorf("stderr = %q, want the message joined to its cause", res.stderr)
	}
	if strings.Contains(res.stderr, ".:") {
		t.Errorf("stderr = %q, want no period before the cause", res.stderr)
	}

	var logLine string
	for _, line := range strings.Split(res.stderr, "\n") {
		if strings.Contains(line, "operation failed") {
			logLine = line
		}
	}
	if logLine == "" {
		t.Fatalf("no error log in stderr %q", res.stderr)
	}
	if n := strings.Count(logLine, `"operation":`); n != 1 {
		t.Errorf("operation field written %d times in %s", n, logLine)
	}
	if !strings.Contains(logLine, `"error":`) {
		t.Errorf("error field missing in %s", logLine)
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"with cause", errors.IO("read input", io.ErrUnexpectedEOF), "Failed to read input: unexpected EOF"},
		{"without cause", errors.NotFound("config file", "x.yml"), "The requested config file was not found."},
		{"plain", io.EOF, "EOF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorMessage(tt.err); got != tt.want {
				t.Errorf("errorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
