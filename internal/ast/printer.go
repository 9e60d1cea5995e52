package ast

import (
	"encoding/json"
	"fmt"
)

const (
	colorYellow = "\033[33m"
	colorReset  = "\033[0m"
)

// toJSON converts a single node into a JSON-friendly map/slice tree,
// dispatching with a type switch rather than the Visitor/Accept pattern
// (see the package doc comment).
func toJSON(node any) any {
	switch n := node.(type) {
	case LitInt:
		return map[string]any{"type": "LitInt", "value": n.Value}
	case Var:
		return map[string]any{"type": "Var", "name": n.Name}
	case Binary:
		return map[string]any{
			"type":  "Binary",
			"op":    n.Op.String(),
			"left":  toJSON(n.Left),
			"right": toJSON(n.Right),
		}
	case Unary:
		return map[string]any{
			"type": "Unary",
			"op":   n.Op.String(),
			"sub":  toJSON(n.Sub),
		}
	case SeqInit:
		elems := make([]any, 0, len(n.Elems))
		for _, e := range n.Elems {
			elems = append(elems, toJSON(e))
		}
		return map[string]any{"type": "SeqInit", "elems": elems}
	case Print:
		return map[string]any{"type": "Print", "expr": toJSON(n.Expr)}
	case Compound:
		stmts := make([]any, 0, len(n.Stmts))
		for _, s := range n.Stmts {
			stmts = append(stmts, toJSON(s))
		}
		return map[string]any{"type": "Compound", "stmts": stmts}
	case If:
		return map[string]any{"type": "If", "cond": toJSON(n.Cond), "body": toJSON(n.Body)}
	case While:
		return map[string]any{"type": "While", "cond": toJSON(n.Cond), "body": toJSON(n.Body)}
	case Push:
		return map[string]any{"type": "Push", "seq": toJSON(n.Seq), "val": toJSON(n.Val)}
	case Assign:
		var idx any
		if n.Index != nil {
			idx = toJSON(n.Index)
		}
		return map[string]any{"type": "Assign", "name": n.Name, "index": idx, "rhs": toJSON(n.Rhs)}
	default:
		return fmt.Sprintf("<unknown node %T>", node)
	}
}

// PrintJSON renders statements as prettified JSON and writes it to
// stdout, bracketed with the same yellow banner the teacher's AST
// printer used.
func PrintJSON(statements []Stmt) (string, error) {
	out := make([]any, 0, len(statements))
	for _, s := range statements {
		out = append(out, toJSON(s))
	}
	bytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}

	jsonStr := string(bytes)
	fmt.Println(colorYellow + "----- AST JSON -----")
	fmt.Println(colorYellow + jsonStr)
	fmt.Println(colorYellow + "-----" + colorReset)
	fmt.Println()
	return jsonStr, nil
}
