package parser

// DocumentStats contains statistical information about a schema document
type DocumentStats struct {
	DefinitionCount int // Number of entries in the root $defs table
	SchemaCount     int // Total number of schema fragments in the tree
	RefCount        int // Number of $ref keywords
	EnumCount       int // Number of fragments carrying an enum keyword
	MaxDepth        int // Deepest nesting level observed (root is depth 1)
}

// GetDocumentStats returns statistics for a parsed schema document
func GetDocumentStats(doc *Schema) DocumentStats {
	stats := DocumentStats{}
	if doc == nil {
		return stats
	}

	stats.DefinitionCount = len(doc.Defs)
	countSchema(doc, 1, &stats)
	return stats
}

// countSchema accumulates stats for one fragment and recurses into its
// children. Parsed documents are trees, so no cycle guard is needed here.
func countSchema(s *Schema, depth int, stats *DocumentStats) {
	if s == nil {
		return
	}

	stats.SchemaCount++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	if s.Ref != "" {
		stats.RefCount++
	}
	if len(s.Enum) > 0 {
		stats.EnumCount++
	}

	for _, child := range s.Defs {
		countSchema(child, depth+1, stats)
	}
	for _, child := range s.Properties {
		countSchema(child, depth+1, stats)
	}
	for _, child := range s.PatternProperties {
		countSchema(child, depth+1, stats)
	}
	for _, child := range s.DependentSchemas {
		countSchema(child, depth+1, stats)
	}
	if items, ok := s.ItemsSchema(); ok {
		countSchema(items, depth+1, stats)
	}
	for _, child := range s.PrefixItems {
		countSchema(child, depth+1, stats)
	}
	countSchema(s.Contains, depth+1, stats)
	countSchema(s.PropertyNames, depth+1, stats)
	if ap, ok := s.AdditionalPropertiesSchema(); ok {
		countSchema(ap, depth+1, stats)
	}
	if up, ok := s.UnevaluatedProperties.(*Schema); ok {
		countSchema(up, depth+1, stats)
	}
	countSchema(s.If, depth+1, stats)
	countSchema(s.Then, depth+1, stats)
	countSchema(s.Else, depth+1, stats)
	for _, child := range s.AllOf {
		countSchema(child, depth+1, stats)
	}
	for _, child := range s.AnyOf {
		countSchema(child, depth+1, stats)
	}
	for _, child := range s.OneOf {
		countSchema(child, depth+1, stats)
	}
	countSchema(s.Not, depth+1, stats)
}
