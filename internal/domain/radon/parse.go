package radon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Asset kinds accepted by ParseAsset
const (
	KindRetrieval = "retrieval"
	KindScript    = "script"
	KindReducer   = "reducer"
	KindFilter    = "filter"
)

type assetEnvelope struct {
	Kind    string            `json:"kind"`
	Method  json.RawMessage   `json:"method,omitempty"`
	URL     string            `json:"url,omitempty"`
	Body    string            `json:"body,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Script  []json.RawMessage `json:"script,omitempty"`
	Ops     []json.RawMessage `json:"ops,omitempty"`
	Opcode  uint8             `json:"opcode,omitempty"`
	Filters []filterJSON      `json:"filters,omitempty"`
	Args    any               `json:"args,omitempty"`
}

type filterJSON struct {
	Opcode uint8 `json:"opcode"`
	Args   any   `json:"args,omitempty"`
}

// ParseAsset decodes a JSON asset description tagged by its "kind" field.
func ParseAsset(data []byte) (Asset, error) {
	var env assetEnvelope
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to parse radon asset: %w", err)
	}

	switch env.Kind {
	case KindRetrieval:
		method, err := parseMethod(env.Method)
		if err != nil {
			return nil, err
		}
		retrieval := Retrieval{
			Method:  method,
			URL:     env.URL,
			Body:    env.Body,
			Headers: sortedHeaders(env.Headers),
		}
		if env.Script != nil {
			script, err := parseOperators(env.Script)
			if err != nil {
				return nil, err
			}
			retrieval.Script = &Script{Ops: script}
		}
		return retrieval, nil

	case KindScript:
		ops, err := parseOperators(env.Ops)
		if err != nil {
			return nil, err
		}
		return Script{Ops: ops}, nil

	case KindReducer:
		reducer := Reducer{Opcode: env.Opcode}
		for _, f := range env.Filters {
			reducer.Filters = append(reducer.Filters, Filter{Opcode: f.Opcode, Args: normalizeArg(f.Args)})
		}
		return reducer, nil

	case KindFilter:
		return Filter{Opcode: env.Opcode, Args: normalizeArg(env.Args)}, nil

	default:
		return nil, fmt.Errorf("unknown radon asset kind: %q", env.Kind)
	}
}

func parseMethod(raw json.RawMessage) (RetrievalMethod, error) {
	if len(raw) == 0 {
		return MethodHTTPGet, nil
	}

	var code uint8
	if err := json.Unmarshal(raw, &code); err == nil {
		return RetrievalMethod(code), nil
	}

	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return MethodUnknown, fmt.Errorf("invalid retrieval method: %s", string(raw))
	}
	return ParseRetrievalMethod(name)
}

// parseOperators reads operators written either as a bare opcode or as [opcode, args...].
func parseOperators(raw []json.RawMessage) ([]Operator, error) {
	ops := make([]Operator, 0, len(raw))
	for i, item := range raw {
		var opcode uint8
		if err := json.Unmarshal(item, &opcode); err == nil {
			ops = append(ops, Operator{Opcode: opcode})
			continue
		}

		var call []json.RawMessage
		if err := json.Unmarshal(item, &call); err != nil || len(call) == 0 {
			return nil, fmt.Errorf("invalid radon operator at position %d: %s", i, string(item))
		}
		if err := json.Unmarshal(call[0], &opcode); err != nil {
			return nil, fmt.Errorf("invalid radon opcode at position %d: %w", i, err)
		}

		op := Operator{Opcode: opcode}
		for _, rawArg := range call[1:] {
			var arg any
			dec := json.NewDecoder(bytes.NewReader(rawArg))
			dec.UseNumber()
			if err := dec.Decode(&arg); err != nil {
				return nil, fmt.Errorf("invalid radon operator argument at position %d: %w", i, err)
			}
			op.Args = append(op.Args, normalizeArg(arg))
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func sortedHeaders(headers map[string]string) []Header {
	if len(headers) == 0 {
		return nil
	}
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]Header, 0, len(keys))
	for _, k := range keys {
		result = append(result, Header{k, headers[k]})
	}
	return result
}

// normalizeArg turns JSON numbers into integers whenever they are integral, so
// that they serialize as CBOR integers rather than floats.
func normalizeArg(arg any) any {
	switch v := arg.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case []any:
		for i := range v {
			v[i] = normalizeArg(v[i])
		}
		return v
	case map[string]any:
		for k := range v {
			v[k] = normalizeArg(v[k])
		}
		return v
	default:
		return v
	}
}
