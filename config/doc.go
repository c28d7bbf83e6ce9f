// Package config defines the generation configuration: output categories,
// collaborator override fragments, and extra field descriptions.
//
// Configuration files are YAML or JSON; the format is detected
// automatically.
//
// # Quick Start
//
// Load and validate a configuration file:
//
//	cfg, err := config.Load("formshape.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if errs := cfg.Validate(); len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Fprintln(os.Stderr, e)
//	    }
//	    os.Exit(1)
//	}
//
// # Configuration Document Structure
//
// A configuration document contains:
//   - categories: Ordered list of output categories (required)
//   - overrides: Definition names mapped to wholesale replacement fragments
//   - fieldDescriptions: Additions to the well-known field description table
//
// Example configuration:
//
//	categories:
//	  - key: gateways
//	    name: Gateways
//	    description: Entry points that accept traffic.
//	    itemType: Gateway
//	    typePatterns: [Gateway, Listener]
//	    exclude: [GatewayStatus]
//	  - key: routes
//	    name: Routes
//	    typePatterns: [Route]
//	overrides:
//	  TLSConfig:
//	    type: object
//	    title: TLS
//	    properties:
//	      mode: {type: string}
//	fieldDescriptions:
//	  replicas: Number of desired instances.
//
// # Categories
//
// Each category names an explicit item type, an ordered list of
// name-substring patterns, and an exclusion list. The discovery package
// resolves a category against a parsed document's definitions table; see
// [github.com/formshape/formshape/discovery].
//
// # Overrides
//
// An override replaces the named definition's fragment wholesale during
// extraction. Overridden fragments skip the enhancement pass, so they are
// emitted exactly as written here. They still pass through normalization
// and sanitization with the rest of the document.
package config
