package core

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry   = make(map[string]DatasetDefinition)
	registryMu sync.RWMutex
)

// Register adds a dataset definition to the registry.
// Panics if a dataset with the same key is already registered.
func Register(def DatasetDefinition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.Info.Key]; exists {
		panic(fmt.Sprintf("dataset already registered: %s", def.Info.Key))
	}

	// Populate Columns from FieldSpecs if not set
	if len(def.Info.Columns) == 0 && len(def.FieldSpecs) > 0 {
		def.Info.Columns = make([]string, len(def.FieldSpecs))
		for i, spec := range def.FieldSpecs {
			def.Info.Columns[i] = spec.Name
		}
	}

	registry[def.Info.Key] = def
}

// Get returns a dataset definition by key.
func Get(key string) (DatasetDefinition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[key]
	return def, ok
}

// All returns all registered dataset definitions sorted by key.
func All() []DatasetDefinition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]DatasetDefinition, 0, len(registry))
	for _, def := range registry {
		result = append(result, def)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Info.Key < result[j].Info.Key
	})

	return result
}

// DatasetCount returns the number of registered datasets.
func DatasetCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// value reads one field of row according to the dataset's lookup rule and
// applies the field normalizer.
func (d DatasetDefinition) value(row RawRow, spec FieldSpec) string {
	var v string
	if d.CaseInsensitive {
		v = row.Lookup(spec.Name)
	} else {
		v = row.Get(spec.Name)
	}
	if spec.Normalizer != nil {
		v = spec.Normalizer(v)
	}
	return v
}

// Record extracts every declared field of row, keyed by column name.
// Absent columns are present with "".
func (d DatasetDefinition) Record(row RawRow) map[string]string {
	out := make(map[string]string, len(d.FieldSpecs))
	for _, spec := range d.FieldSpecs {
		out[spec.Name] = d.value(row, spec)
	}
	return out
}
