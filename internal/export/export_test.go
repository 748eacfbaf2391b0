package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/google/go-cmp/cmp"
	"github.com/joho/godotenv"
)

type props map[string]string

func (p props) Props() map[string]string { return p }

var sample = props{
	"url":     "https://produrl.vidar.com",
	"creds":   "it's secret",
	"RETRIES": "3",
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats() {
		got, err := ParseFormat(string(f))
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %q, %v", f, got, err)
		}
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	tests := []struct {
		format Format
		decode func([]byte) (map[string]string, error)
	}{
		{
			format: Dotenv,
			decode: func(b []byte) (map[string]string, error) {
				return godotenv.Unmarshal(string(b))
			},
		},
		{
			format: TOML,
			decode: func(b []byte) (map[string]string, error) {
				m := map[string]string{}
				_, err := toml.Decode(string(b), &m)
				return m, err
			},
		},
		{
			format: JSON,
			decode: func(b []byte) (map[string]string, error) {
				m := map[string]string{}
				err := json.Unmarshal(b, &m)
				return m, err
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, tt.format, sample); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			decoded, err := tt.decode(buf.Bytes())
			if err != nil {
				t.Fatalf("failed to decode output %q: %v", buf.String(), err)
			}
			if diff := cmp.Diff(map[string]string(sample), decoded); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWrite_Shell(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Shell, sample); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "export RETRIES='3'\n" +
		"export creds='it'\\''s secret'\n" +
		"export url='https://produrl.vidar.com'\n"
	if diff := cmp.Diff(expected, buf.String()); diff != "" {
		t.Errorf("shell output mismatch (-want +got):\n%s", diff)
	}

	if err := Write(&buf, Shell, props{"not-a-name": "x"}); err == nil {
		t.Error("expected error for invalid shell name")
	}
}

func TestWrite_Systemd(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Systemd, props{"url": "https://x/?q=1", "msg": `say "hi" 100%`}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"[Service]",
		`Environment="msg=say \"hi\" 100%%"`,
		`Environment="url=https://x/?q=1"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
	if strings.Index(out, "msg=") > strings.Index(out, "url=") {
		t.Errorf("keys not sorted in %q", out)
	}

	if err := Write(&buf, Systemd, props{"bad key": "x"}); err == nil {
		t.Error("expected error for key with whitespace")
	}
}

func TestWrite_Empty(t *testing.T) {
	for _, f := range Formats() {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, f, props{}); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
