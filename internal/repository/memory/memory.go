// Package memory provides in-memory repositories for tests and local runs without PostgreSQL.
package memory

import (
	"encoding/json"
	"slices"
)

// clone copies a document so callers never share backing arrays with the store.
func clone(b json.RawMessage) json.RawMessage {
	if b == nil {
		return nil
	}
	return slices.Clone(b)
}

func removeID(ids []string, id string) []string {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(ids, i, i+1)
	}
	return ids
}
