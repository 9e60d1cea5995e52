package ast

import (
	"encoding/json"
	"testing"
)

func TestPrintJSONPrintLiteral(t *testing.T) {
	stmts := []Stmt{
		Print{Expr: LitInt{Value: 42}},
	}

	jsonStr, err := PrintJSON(stmts)
	if err != nil {
		t.Fatalf("PrintJSON error: %v", err)
	}

	var out []map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &out); err != nil {
		t.Fatalf("unmarshal json: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(out))
	}

	node := out[0]
	if typ, _ := node["type"].(string); typ != "Print" {
		t.Fatalf("expected type Print, got %v", node["type"])
	}
	expr, _ := node["expr"].(map[string]any)
	if num, ok := expr["value"].(float64); !ok || num != 42 {
		t.Fatalf("expected expr.value 42, got %v", expr["value"])
	}
}

func TestPrintJSONAssignWithAndWithoutIndex(t *testing.T) {
	stmts := []Stmt{
		Assign{Name: "x", Rhs: LitInt{Value: 1}},
		Assign{Name: "a", Index: LitInt{Value: 0}, Rhs: LitInt{Value: 9}},
	}

	jsonStr, err := PrintJSON(stmts)
	if err != nil {
		t.Fatalf("PrintJSON error: %v", err)
	}

	var out []map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &out); err != nil {
		t.Fatalf("unmarshal json: %v", err)
	}
	if out[0]["index"] != nil {
		t.Fatalf("plain assignment should have nil index, got %v", out[0]["index"])
	}
	if out[1]["index"] == nil {
		t.Fatalf("indexed assignment should have non-nil index")
	}
}
