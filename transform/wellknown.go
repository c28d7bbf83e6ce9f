package transform

// DefaultFieldDescriptions maps well-known property names to human
// descriptions. The enhancer consults this table for properties that reach
// the output with no description of their own. Callers may extend or replace
// the table through configuration; keys match property names exactly.
var DefaultFieldDescriptions = map[string]string{
	"name":        "Unique name identifying this resource within its scope.",
	"namespace":   "Namespace the referenced resource belongs to.",
	"targetRef":   "Resource this policy or configuration attaches to.",
	"port":        "Network port number to bind or connect to.",
	"protocol":    "Application or transport protocol for this endpoint.",
	"hostname":    "Fully qualified DNS host name.",
	"address":     "IP address or host name used to reach this endpoint.",
	"timeout":     "Maximum duration to wait before the operation is abandoned.",
	"weight":      "Relative share of traffic this entry receives.",
	"enabled":     "Whether this feature is active.",
	"labels":      "Free-form key/value pairs attached to this resource.",
	"tls":         "Transport layer security settings for this endpoint.",
	"backendRefs": "Upstream services that receive the matched traffic.",
	"listeners":   "Network endpoints this gateway accepts connections on.",
	"logLevel":    "Minimum severity for emitted log entries.",
}
