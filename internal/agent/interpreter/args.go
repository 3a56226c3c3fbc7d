package interpreter

import (
	"encoding/json"
	"regexp"
	"strings"

	"reminder-ai/internal/agent"
)

// parseFlatArgs accepts a plain key to value JSON object. A payload whose
// values are themselves objects is not flat and is left for parseTaggedArgs.
func parseFlatArgs(raw json.RawMessage) (agent.Args, bool) {
	if len(raw) == 0 {
		return agent.Args{}, true
	}

	var args map[string]interface{}
	if err := json.Unmarshal(raw, &args); err != nil {
		// Some transports hand the args back as one quoted key=value string.
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && strings.Contains(s, "=") {
			return parseKeyValuePairs(s), true
		}
		return nil, false
	}

	for _, v := range args {
		if _, nested := v.(map[string]interface{}); nested {
			return nil, false
		}
	}
	return agent.Args(args), true
}

// parseTaggedArgs unwraps the protobuf-style payload where every value is
// wrapped with a type tag: {"date": {"string_value": "tomorrow"}}. Lists of
// tagged strings become plain string slices.
func parseTaggedArgs(raw json.RawMessage) (agent.Args, bool) {
	var tagged map[string]map[string]interface{}
	if err := json.Unmarshal(raw, &tagged); err != nil {
		return nil, false
	}

	args := agent.Args{}
	for key, wrapper := range tagged {
		if v, ok := wrapper["string_value"]; ok {
			args[key] = v
			continue
		}
		if v, ok := wrapper["bool_value"]; ok {
			args[key] = v
			continue
		}
		if v, ok := wrapper["number_value"]; ok {
			args[key] = v
			continue
		}
		if v, ok := wrapper["list_value"]; ok {
			args[key] = unwrapList(v)
			continue
		}
	}
	if len(args) == 0 {
		return nil, false
	}
	return args, true
}

func unwrapList(v interface{}) []interface{} {
	list, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	values, ok := list["values"].([]interface{})
	if !ok {
		return nil
	}

	out := make([]interface{}, 0, len(values))
	for _, item := range values {
		if wrapper, isTagged := item.(map[string]interface{}); isTagged {
			if s, hasStr := wrapper["string_value"]; hasStr {
				out = append(out, s)
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

var pseudoCallRe = regexp.MustCompile(`(\w+)\(([^)]*)\)`)

// parsePseudoCall scans reply text for a call-like pattern such as
// add_reminder(message="buy milk", date="tomorrow"). Only known operation
// names are accepted.
func parsePseudoCall(text string) (agent.Operation, agent.Args, bool) {
	for _, match := range pseudoCallRe.FindAllStringSubmatch(text, -1) {
		name := match[1]
		if !agent.KnownOperation(name) {
			continue
		}
		return agent.Operation(name), parseKeyValuePairs(match[2]), true
	}
	return agent.OperationNone, nil, false
}

func parseKeyValuePairs(s string) agent.Args {
	args := agent.Args{}
	for _, pair := range strings.Split(s, ",") {
		if !strings.Contains(pair, "=") {
			continue
		}
		parts := strings.SplitN(pair, "=", 2)
		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)
		if key != "" {
			args[key] = value
		}
	}
	return args
}
