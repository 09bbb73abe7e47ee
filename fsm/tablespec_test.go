package fsm

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/fsmparse"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const exprTableJSON = `{
  "start": "E",
  "rules": { "E": 1, "T": 4 },
  "states": [
    {},
    { "NUM": { "call": 4, "shift": 2 } },
    { "+": { "shift": 3 }, "<any>": { "accept": "list" } },
    { "NUM": { "call": 4, "shift": 2 } },
    { "NUM": { "accept": "number" } }
  ]
}`

func TestTableSpecBuild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsmparse.fsm")
	defer teardown()
	//
	spec, err := ReadTableSpec(strings.NewReader(exprTableJSON))
	if err != nil {
		t.Fatal(err)
	}
	table, err := spec.Build(Builtins().With(Registry{"number": number}))
	if err != nil {
		t.Fatal(err)
	}
	if table.StateCount() != 5 {
		t.Errorf("expected 5 states, have %d", table.StateCount())
	}
	p := NewParser(table, fsmparse.Tokens(num(1), plusTok, num(2)))
	result, err := p.Parse("")
	if err != nil {
		t.Fatal(err)
	}
	l, ok := result.([]interface{})
	if !ok || len(l) != 3 || l[0] != 1 || l[1] != plusTok || l[2] != 2 {
		t.Errorf("expected result list [1 + 2], have %v", result)
	}
}

func TestTableSpecErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsmparse.fsm")
	defer teardown()
	//
	for i, test := range []struct {
		json string
		msg  string
	}{
		{`{"rules": {}, "states": [{"A": {"accept": "nope"}}]}`, "unknown action function"},
		{`{"rules": {}, "states": [{"A": {"call": 0}}]}`, "either shift or accept"},
		{`{"rules": {}, "states": [{"A": {"shift": 0, "accept": "list"}}]}`, "either shift or accept"},
		{`{"rules": {}, "states": [{"A": {"shift": 3}}]}`, "undefined state"},
		{`{"rules": {}, "states": [{"A": {"call": -1, "shift": 0}}]}`, "undefined state"},
		{`{"rules": {}, "states": [{"A": {"call": -1, "accept": "list"}}]}`, "undefined state"},
		{`{"start": "S", "rules": {}, "states": [{}]}`, "unknown rule"},
	} {
		spec, err := ReadTableSpec(strings.NewReader(test.json))
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		_, err = spec.Build(Builtins())
		if err == nil || !strings.Contains(err.Error(), test.msg) {
			t.Errorf("test %d: expected error containing %q, have %v", i, test.msg, err)
		}
	}
	_, err := ReadTableSpec(strings.NewReader(`{"rules": {}, "stats": []}`))
	if err == nil {
		t.Errorf("expected unknown field to be rejected")
	}
	spec, _ := ReadTableSpec(strings.NewReader(`{"rules": {}, "states": [{"A": {"shift": 3}}]}`))
	if _, err := spec.Build(Builtins()); !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected invalid state error, have %v", err)
	}
	spec, _ = ReadTableSpec(strings.NewReader(`{"rules": {}, "states": [{"A": {"call": 0, "accept": "x"}}]}`))
	_, err = spec.Build(Registry{"x": nil})
	if err == nil || !strings.Contains(err.Error(), "unknown action function") {
		t.Errorf("expected nil action function to be rejected, have %v", err)
	}
}

func TestTableSpecFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsmparse.fsm")
	defer teardown()
	//
	spec1, _ := ReadTableSpec(strings.NewReader(exprTableJSON))
	spec2, _ := ReadTableSpec(strings.NewReader(exprTableJSON))
	h1, err := spec1.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	h2, _ := spec2.Fingerprint()
	if h1 != h2 {
		t.Errorf("expected equal tables to have equal fingerprints")
	}
	spec2.Start = "T"
	if h3, _ := spec2.Fingerprint(); h3 == h1 {
		t.Errorf("expected different tables to have different fingerprints")
	}
}

func TestBuiltins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fsmparse.fsm")
	defer teardown()
	//
	reg := Builtins()
	values := []interface{}{fsmparse.MakeToken("NAME", "ab"), 7, fsmparse.MakeToken("NAME", "c")}
	if v, _ := reg["first"](nil, values); v != values[0] {
		t.Errorf("first: have %v", v)
	}
	if v, _ := reg["last"](nil, values); v != values[2] {
		t.Errorf("last: have %v", v)
	}
	if v, _ := reg["first"](nil, nil); v != nil {
		t.Errorf("first of nothing: have %v", v)
	}
	if v, _ := reg["none"](nil, values); v != nil {
		t.Errorf("none: have %v", v)
	}
	if v, _ := reg["text"](nil, values); v != "abc" {
		t.Errorf("text: have %v", v)
	}
	if v, _ := reg["list"](nil, values); len(v.([]interface{})) != 3 {
		t.Errorf("list: have %v", v)
	}
	reg = reg.With(Registry{"first": last})
	if v, _ := reg["first"](nil, values); v != values[2] {
		t.Errorf("expected registry override, have %v", v)
	}
}
