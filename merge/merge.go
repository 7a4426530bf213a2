package merge

import (
	"github.com/0xalexb/hjarta-config/document"
)

// Fold merges a resolution chain, oldest ancestor first, into one effective
// tree. Inputs are not mutated. An empty chain folds to an empty mapping.
//
// The fold is associative: folding pairwise from oldest to newest produces
// the same tree as folding the whole chain at once.
func Fold(docs []*document.Document) *document.Value {
	if len(docs) == 0 {
		return document.Mapping()
	}

	effective := docs[0].Root()
	for _, doc := range docs[1:] {
		effective = Values(effective, doc.Root())
	}

	return effective
}

// Values merges a descendant value over an ancestor value.
//
// Only two mappings merge recursively. In every other case the descendant
// replaces the ancestor wholesale: an explicit null clears, scalars and
// sequences substitute, and mismatched kinds are not reconciled. Absent keys
// never reach this function; absence is handled at the mapping level, where
// the ancestor's value passes through unchanged.
func Values(ancestor, descendant *document.Value) *document.Value {
	if ancestor == nil {
		return descendant
	}

	if descendant == nil {
		return ancestor
	}

	if ancestor.Kind() != document.KindMapping || descendant.Kind() != document.KindMapping {
		return descendant
	}

	fields := make([]document.Field, 0, ancestor.Len()+descendant.Len())

	for _, key := range ancestor.Keys() {
		ancestorField, _ := ancestor.Field(key)

		descendantField, present := descendant.Field(key)
		if !present {
			// Inherit: the ancestor's value passes through, nulls included.
			fields = append(fields, document.Field{Key: key, Value: ancestorField})

			continue
		}

		fields = append(fields, document.Field{Key: key, Value: Values(ancestorField, descendantField)})
	}

	for _, key := range descendant.Keys() {
		if _, present := ancestor.Field(key); present {
			continue
		}

		descendantField, _ := descendant.Field(key)
		fields = append(fields, document.Field{Key: key, Value: descendantField})
	}

	return document.Mapping(fields...)
}
