package extension

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/athapong/vtt-mcp/pkg/ast"
)

// DecodeInvocation reads an invocation document of the form
//
//	{"name": "vtt", "arg": "interview.md", "options": {...}, "body": [...]}
//
// The body may be a node array, a single node, or a string holding
// JSON, HTML or plain text.
func DecodeInvocation(raw []byte) (Invocation, error) {
	if !gjson.ValidBytes(raw) {
		return Invocation{}, errors.New("invocation is not valid JSON")
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return Invocation{}, errors.New("invocation must be a JSON object")
	}

	name := doc.Get("name")
	if name.Type != gjson.String || name.String() == "" {
		return Invocation{}, schemaErrorf("", "name", "must be a non-empty string")
	}
	inv := Invocation{Name: name.String()}

	if arg := doc.Get("arg"); arg.Exists() {
		if arg.Type != gjson.String {
			return Invocation{}, schemaErrorf(inv.Name, "arg", "must be a string")
		}
		inv.Arg = arg.String()
	}

	if opts := doc.Get("options"); opts.Exists() {
		if !opts.IsObject() {
			return Invocation{}, schemaErrorf(inv.Name, "options", "must be an object")
		}
		inv.Options = make(map[string]interface{})
		opts.ForEach(func(key, value gjson.Result) bool {
			inv.Options[key.String()] = value.Value()
			return true
		})
	}

	body := doc.Get("body")
	var err error
	switch {
	case !body.Exists() || body.Type == gjson.Null:
	case body.Type == gjson.String:
		inv.Body, err = ast.DecodeBody(body.String())
	default:
		inv.Body, err = ast.DecodeNodes([]byte(body.Raw))
	}
	if err != nil {
		return Invocation{}, errors.Wrapf(err, "%s: failed to decode body", inv.Name)
	}
	return inv, nil
}
