package naming

import (
	"strings"
	"testing"

	"github.com/formshape/formshape/parser"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"single lowercase word", "gateway", "Gateway"},
		{"single capitalized word", "Gateway", "Gateway"},
		{"camelCase", "maxRetries", "Max Retries"},
		{"PascalCase", "GatewayListener", "Gateway Listener"},
		{"leading acronym", "TCPRoute", "TCP Route"},
		{"lowercase then acronym word", "httpsProxy", "Https Proxy"},
		{"two letter acronym", "IPAddress", "IP Address"},
		{"all caps stays intact", "HTTP", "HTTP"},
		{"trailing acronym", "routeTCP", "Route TCP"},
		{"acronym in middle", "minTLSVersion", "Min TLS Version"},
		{"three words", "backendRefWeight", "Backend Ref Weight"},
		{"hyphenated value", "connect-failure", "Connect-failure"},
		{"digit does not split", "v2Config", "V2Config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.input); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatIdempotentOnLabels(t *testing.T) {
	// A label that is already space-separated with a leading capital passes
	// through unchanged.
	label := Format("GatewayListener")
	if again := Format(label); again != label {
		t.Errorf("Format(%q) = %q, expected label to be stable", label, again)
	}
}

func TestDescribeReturnsExistingDescription(t *testing.T) {
	schema := &parser.Schema{Description: "Already documented."}
	if got := Describe("RetryPolicy", schema); got != "Already documented." {
		t.Errorf("Describe = %q, want existing description", got)
	}
}

func TestDescribeSynthesizesFromName(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		want     string
	}{
		{
			"no pattern match",
			"LogLevel",
			"Log Level configuration.",
		},
		{
			"policy suffix",
			"RetryPolicy",
			"Retry Policy configuration. Defines policy behavior applied to matching traffic.",
		},
		{
			"backend suffix",
			"BackendRef",
			"Backend Ref configuration. Configures how connections reach upstream services.",
		},
		{
			"route suffix",
			"TCPRoute",
			"TCP Route configuration. Controls how requests are matched and forwarded.",
		},
		{
			"listener suffix",
			"GatewayListener",
			"Gateway Listener configuration. Configures how incoming connections are accepted.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.typeName, &parser.Schema{}); got != tt.want {
				t.Errorf("Describe(%q) = %q, want %q", tt.typeName, got, tt.want)
			}
		})
	}
}

func TestDescribeAppliesEverySuffixInOrder(t *testing.T) {
	got := Describe("BackendRoutePolicy", nil)

	// All three matching rules apply, in table order: policy, backend, route.
	wantOrder := []string{
		"Backend Route Policy configuration.",
		"Defines policy behavior",
		"Configures how connections",
		"Controls how requests",
	}
	pos := -1
	for _, fragment := range wantOrder {
		idx := strings.Index(got, fragment)
		if idx < 0 {
			t.Fatalf("Describe(%q) = %q, missing %q", "BackendRoutePolicy", got, fragment)
		}
		if idx < pos {
			t.Errorf("Describe(%q) = %q, fragment %q out of order", "BackendRoutePolicy", got, fragment)
		}
		pos = idx
	}
}

func TestDescribeNilSchema(t *testing.T) {
	if got := Describe("Gateway", nil); got != "Gateway configuration." {
		t.Errorf("Describe with nil schema = %q", got)
	}
}
