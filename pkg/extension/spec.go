// Package extension declares the named extensions exposed to a document
// pipeline and validates invocations against their declared shapes before
// handing typed options to the pure transforms.
package extension

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/athapong/vtt-mcp/pkg/ast"
)

// Kind separates block directives from inline roles
type Kind string

const (
	KindDirective Kind = "directive"
	KindRole      Kind = "role"
)

// ArgSpec declares the positional argument of a directive
type ArgSpec struct {
	Type     string `json:"type"`
	Doc      string `json:"doc,omitempty"`
	Required bool   `json:"required"`
}

// OptionSpec declares one named option
type OptionSpec struct {
	Type string `json:"type"`
	Doc  string `json:"doc,omitempty"`
}

// BodySpec declares the body an extension accepts
type BodySpec struct {
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// Spec is the registration metadata of an extension
type Spec struct {
	Name    string                `json:"name"`
	Aliases []string              `json:"alias,omitempty"`
	Kind    Kind                  `json:"kind"`
	Doc     string                `json:"doc,omitempty"`
	Arg     *ArgSpec              `json:"arg,omitempty"`
	Options map[string]OptionSpec `json:"options,omitempty"`
	Body    BodySpec              `json:"body"`
}

// Names returns the name followed by the aliases
func (s Spec) Names() []string {
	return append([]string{s.Name}, s.Aliases...)
}

// Invocation is one use of an extension inside a document
type Invocation struct {
	Name    string                 `json:"name"`
	Arg     string                 `json:"arg,omitempty"`
	Options map[string]interface{} `json:"options,omitempty"`
	// Body is nil when the invocation carried no body at all
	Body []*ast.Node `json:"body"`
}

// Result is the outcome of a successful invocation
type Result struct {
	Nodes []*ast.Node
	// Counters hold per-run figures such as matched segments
	Counters map[string]int
}

// Extension is a registered transform
type Extension interface {
	Spec() Spec
	// Run is only called with invocations that passed Validate
	Run(inv Invocation) Result
}

// Validate checks inv against the declared spec. It does not look at the
// content of the body, only at its presence.
func Validate(spec Spec, inv Invocation) error {
	switch {
	case spec.Arg == nil && inv.Arg != "":
		return schemaErrorf(inv.Name, "arg", "is not accepted")
	case spec.Arg != nil && spec.Arg.Required && inv.Arg == "":
		return schemaErrorf(inv.Name, "arg", "is required")
	}

	given := mapset.NewSetFromMapKeys(inv.Options)
	declared := mapset.NewSetFromMapKeys(spec.Options)
	if unknown := given.Difference(declared).ToSlice(); len(unknown) > 0 {
		sort.Strings(unknown)
		return schemaErrorf(inv.Name, "options."+unknown[0], "is not a declared option")
	}
	for name, value := range inv.Options {
		if value == nil {
			continue
		}
		if spec.Options[name].Type == "string" {
			if _, ok := value.(string); !ok {
				return schemaErrorf(inv.Name, "options."+name, "must be a string, got %T", value)
			}
		}
	}

	if spec.Body.Required && inv.Body == nil {
		return schemaErrorf(inv.Name, "body", "is required")
	}
	return nil
}

func stringOption(inv Invocation, name string) string {
	s, _ := inv.Options[name].(string)
	return s
}
