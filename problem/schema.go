package problem

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Decoder reconstructs a concrete Problem from its variant tuple and
// opaque data payload. Concrete problem packages register one Decoder
// per problem name at init time (mirroring the teacher's static
// registration discipline).
type Decoder func(variant VariantTuple, data json.RawMessage) (Problem, error)

var (
	schemaMu  sync.RWMutex
	schemas   = map[string]Decoder{}
	categories = map[string]string{}
	docPaths   = map[string]string{}
)

// RegisterSchema records the decoder used to reconstruct instances of
// the named problem from JSON. It panics on a duplicate registration,
// the same static-misuse-is-a-programming-error policy as variant.Register.
func RegisterSchema(name string, decode Decoder) {
	schemaMu.Lock()
	defer schemaMu.Unlock()
	if _, exists := schemas[name]; exists {
		panic(fmt.Errorf("problem: schema already registered for %q", name))
	}
	schemas[name] = decode
}

// RegisterCategory records the short classification string (spec.md
// §4.9) used by the reduction-graph JSON export, e.g. "graph",
// "satisfiability", "set", "optimization", "specialized".
func RegisterCategory(problemName, category string) {
	schemaMu.Lock()
	defer schemaMu.Unlock()
	categories[problemName] = category
}

// CategoryOf returns the registered classification for problemName, or
// "other" if none was registered.
func CategoryOf(problemName string) string {
	schemaMu.RLock()
	defer schemaMu.RUnlock()
	if c, ok := categories[problemName]; ok {
		return c
	}
	return "other"
}

// RegisterDocPath records the source location (package-qualified type
// name, e.g. "problems.MaximumIndependentSet") a node's JSON export
// (spec.md §4.9) points documentation tooling at.
func RegisterDocPath(problemName, docPath string) {
	schemaMu.Lock()
	defer schemaMu.Unlock()
	docPaths[problemName] = docPath
}

// DocPathOf returns the registered doc path for problemName, or "" if
// none was registered.
func DocPathOf(problemName string) string {
	schemaMu.RLock()
	defer schemaMu.RUnlock()
	return docPaths[problemName]
}

// instanceJSON is the canonical wire envelope for a problem instance
// (spec.md §6): {"type": <name>, "variant": {<category>: <value>, ...}, "data": <payload>}.
type instanceJSON struct {
	Type    string            `json:"type"`
	Variant map[string]string `json:"variant,omitempty"`
	Data    json.RawMessage   `json:"data"`
}

// EncodeInstance renders p as its canonical JSON envelope.
func EncodeInstance(p Problem) ([]byte, error) {
	data, err := p.MarshalData()
	if err != nil {
		return nil, fmt.Errorf("problem: marshal data for %s: %w", p.Name(), err)
	}
	env := instanceJSON{Type: p.Name(), Data: data}
	if v := p.Variant(); len(v) > 0 {
		env.Variant = make(map[string]string, len(v))
		for _, e := range v {
			env.Variant[e.Category] = e.Value
		}
	}
	return json.Marshal(env)
}

// DecodeInstance reconstructs a Problem from its canonical JSON
// envelope, dispatching to the Decoder registered under the envelope's
// "type" field. When the envelope omits "variant", the problem's
// registered default variant rule does not apply here — instead the
// decoder itself is responsible for filling in its declared default,
// since only the concrete problem type knows what that default is
// (spec.md §6: "when absent it defaults to the problem's declared
// variant").
func DecodeInstance(raw []byte) (Problem, error) {
	var env instanceJSON
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("problem: decode envelope: %w", err)
	}
	schemaMu.RLock()
	decode, ok := schemas[env.Type]
	schemaMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProblem, env.Type)
	}
	var vt VariantTuple
	if len(env.Variant) > 0 {
		keys := make([]string, 0, len(env.Variant))
		for k := range env.Variant {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			vt = append(vt, VariantEntry{Category: k, Value: env.Variant[k]})
		}
	}
	return decode(vt, env.Data)
}

// ErrUnknownProblem is returned when a name matches no registered schema
// (spec.md §7: UnknownProblem).
var ErrUnknownProblem = fmt.Errorf("problem: unknown problem name")
