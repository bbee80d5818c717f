package runbook

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/lvlgrid/solution"
)

// Runbook is a decoded runbook file.
type Runbook struct {
	// Dir is the directory input paths are resolved against.
	Dir     string
	Logging Logging
	Checks  []Check
}

// Logging selects the logger built by Runbook.Logger.
type Logging struct {
	Level  string
	Format string
}

// Check runs one registered problem on one input.
type Check struct {
	Name    string
	Problem string
	// Exactly one of Input (a path) and Text (inline input) is set.
	Input string
	Text  string
	// Expect is the wanted answer text; meaningful only when HasExpect.
	Expect    string
	HasExpect bool
}

// hclFile is the decoding schema of a runbook.
type hclFile struct {
	Logging *hclLogging `hcl:"logging,block"`
	Checks  []*hclCheck `hcl:"check,block"`
}

type hclLogging struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

type hclCheck struct {
	Name    string    `hcl:"name,label"`
	Problem string    `hcl:"problem,optional"`
	Input   string    `hcl:"input,optional"`
	Text    string    `hcl:"text,optional"`
	Expect  cty.Value `hcl:"expect,optional"`
}

// Load reads and decodes the runbook at path.
func Load(path string) (*Runbook, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, diags)
	}
	return decode(file, path)
}

// Parse decodes a runbook from src. filename is used in diagnostics and to
// resolve relative input paths.
func Parse(src []byte, filename string) (*Runbook, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, filename, diags)
	}
	return decode(file, filename)
}

func decode(file *hcl.File, filename string) (*Runbook, error) {
	var raw hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, filename, diags)
	}

	rb := &Runbook{Dir: filepath.Dir(filename)}
	if raw.Logging != nil {
		rb.Logging = Logging{Level: raw.Logging.Level, Format: raw.Logging.Format}
	}
	if _, ok := solution.ParseLevel(rb.Logging.Level); !ok && rb.Logging.Level != "" {
		return nil, fmt.Errorf("%w: %s: unknown log level %q", ErrDecode, filename, rb.Logging.Level)
	}
	if !solution.KnownFormat(rb.Logging.Format) && rb.Logging.Format != "" {
		return nil, fmt.Errorf("%w: %s: unknown log format %q", ErrDecode, filename, rb.Logging.Format)
	}

	seen := make(map[string]bool, len(raw.Checks))
	for _, c := range raw.Checks {
		if seen[c.Name] {
			return nil, fmt.Errorf("%w: %s: duplicate check %q", ErrDecode, filename, c.Name)
		}
		seen[c.Name] = true
		if (c.Input == "") == (c.Text == "") {
			return nil, fmt.Errorf("%w: %s: check %q needs exactly one of input or text", ErrDecode, filename, c.Name)
		}

		chk := Check{Name: c.Name, Problem: c.Problem, Input: c.Input, Text: c.Text}
		if chk.Problem == "" {
			chk.Problem = c.Name
		}
		if !c.Expect.IsNull() {
			want, err := render(c.Expect)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: check %q: %w", ErrDecode, filename, c.Name, err)
			}
			chk.Expect, chk.HasExpect = want, true
		}
		rb.Checks = append(rb.Checks, chk)
	}

	return rb, nil
}

var errUnknownExpect = errors.New("expect must be a constant")

// render turns an expect value into the text an answer is compared against.
func render(v cty.Value) (string, error) {
	if !v.IsWhollyKnown() {
		return "", errUnknownExpect
	}
	switch ty := v.Type(); {
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Bool:
		var b bool
		if err := gocty.FromCtyValue(v, &b); err != nil {
			return "", err
		}
		return strconv.FormatBool(b), nil
	case ty == cty.Number:
		var i int64
		if err := gocty.FromCtyValue(v, &i); err == nil {
			return strconv.FormatInt(i, 10), nil
		}
		return v.AsBigFloat().Text('f', -1), nil
	default:
		return "", fmt.Errorf("expect must be a number, string or bool, got %s", ty.FriendlyName())
	}
}

// Logger builds the logger described by the logging block.
func (rb *Runbook) Logger(w io.Writer) *slog.Logger {
	return solution.NewLogger(rb.Logging.Level, rb.Logging.Format, w)
}

// ReadInput returns the raw input of c, reading Input relative to dir.
func (c Check) ReadInput(dir string) (string, error) {
	if c.Input == "" {
		return c.Text, nil
	}
	path := c.Input
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
