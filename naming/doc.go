// Package naming converts identifier-style type and value names into
// human-readable labels and fallback descriptions.
//
// Schema documents produced by code generation carry type and field names in
// concatenated-word style (PascalCase, camelCase, acronym runs). Form
// renderers need readable labels. [Format] splits such names on case
// boundaries while keeping acronyms intact, and [Describe] synthesizes a
// fallback description for a named type when its schema supplies none.
//
//	naming.Format("TCPRoute")    // "TCP Route"
//	naming.Format("httpsProxy")  // "Https Proxy"
//	naming.Format("maxRetries")  // "Max Retries"
//
// Both functions are pure and total: any input string yields a defined
// output, and the empty string maps to the empty string.
package naming
