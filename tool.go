package goliteral

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ============================================================
// MCP Tool Interface
// ============================================================

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// HandleToolCall runs one tool request. Expression parameters are given
// either as text ("input") or as a JSON expression object ("expr").
func HandleToolCall(req ToolRequest) ToolResponse {
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("param %s must be a string", key)
		}
		return s, nil
	}
	getExpr := func() (Expr, error) {
		if _, ok := req.Params["input"]; ok {
			text, err := getString("input")
			if err != nil {
				return nil, err
			}
			return Parse(text)
		}
		v, ok := req.Params["expr"]
		if !ok {
			return nil, fmt.Errorf("missing param: input or expr")
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("invalid type for param expr")
		}
		return FromJSON(m)
	}
	errResp := func(err error) ToolResponse { return ToolResponse{Error: err.Error()} }
	exprResp := func(e Expr) ToolResponse {
		return ToolResponse{Result: e.toJSON(), String: String(e), LaTeX: e.LaTeX()}
	}

	switch req.Tool {
	case "parse":
		text, err := getString("input")
		if err != nil {
			return errResp(err)
		}
		e, err := Parse(text)
		if err != nil {
			return errResp(err)
		}
		return exprResp(e)

	case "reduce":
		e, err := getExpr()
		if err != nil {
			return errResp(err)
		}
		return exprResp(Reduce(e))

	case "evaluate":
		e, err := getExpr()
		if err != nil {
			return errResp(err)
		}
		v, err := Evaluate(e)
		if err != nil {
			return errResp(err)
		}
		return ToolResponse{Result: v, String: formatFloat(v)}

	case "tokenize":
		text, err := getString("input")
		if err != nil {
			return errResp(err)
		}
		tokens, err := Tokenize(text)
		if err != nil {
			return errResp(err)
		}
		return ToolResponse{Result: tokens}

	case "to_latex":
		e, err := getExpr()
		if err != nil {
			return errResp(err)
		}
		return ToolResponse{Result: e.LaTeX(), LaTeX: e.LaTeX()}

	case "is_known":
		e, err := getExpr()
		if err != nil {
			return errResp(err)
		}
		return ToolResponse{Result: IsKnown(e), String: String(e)}

	case "mcp_spec":
		return ToolResponse{Result: json.RawMessage(MCPToolSpec())}
	}
	return ToolResponse{Error: unknownTool(req.Tool)}
}

// ToolNames lists the tools HandleToolCall understands.
var ToolNames = []string{"parse", "reduce", "evaluate", "tokenize", "to_latex", "is_known", "mcp_spec"}

func unknownTool(name string) string {
	msg := fmt.Sprintf("unknown tool: %s", name)
	if match := ClosestMatch(name, ToolNames); match != "" {
		msg += fmt.Sprintf(" (did you mean %s?)", match)
	}
	return msg
}

// ClosestMatch returns the candidate that best fuzzy-matches target, or ""
// when none contains target's characters in order.
func ClosestMatch(target string, candidates []string) string {
	if target == "" || len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

// ============================================================
// MCP spec
// ============================================================

func MCPToolSpec() string {
	exprProps := map[string]string{"input": "string", "expr": "object"}
	tools := []map[string]interface{}{
		ts("parse", "Parse a literal expression such as '2x(4 + 3x)' into its tree", []string{"input"}, map[string]string{"input": "string"}),
		ts("reduce", "Collect like terms, expand products and powers, simplify fractions", []string{}, exprProps),
		ts("evaluate", "Numeric value of an expression without letters", []string{}, exprProps),
		ts("tokenize", "Normalized symbol list, with implicit multiplications made explicit", []string{"input"}, map[string]string{"input": "string"}),
		ts("to_latex", "Convert to LaTeX", []string{}, exprProps),
		ts("is_known", "Whether the expression contains no letter", []string{}, exprProps),
		ts("mcp_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
