// Package grammarfile loads lexical grammars from YAML definitions, so
// tokenizers can be described declaratively instead of built in Go code.
//
// A grammar file names its entry state and defines each state as an ordered
// rule list:
//
//	root: ini
//	states:
//	  ini:
//	    inherit: [common]
//	    rules:
//	      - {action: push, pattern: '\[', state: section, type: section-open}
//	      - {action: match, pattern: '[A-Za-z_][A-Za-z0-9_.-]*', type: key}
//	  section:
//	    rules:
//	      - {action: match, pattern: '[A-Za-z_][A-Za-z0-9_.-]*', type: section-name}
//	      - {action: pop, pattern: '\]', type: section-close}
//	    else: {pop: true}
//
// Rule order within a state is significant: the first matching rule wins.
package grammarfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/stacklex/lex"
	"github.com/dhamidi/stacklex/rx"
)

// File is the YAML shape of a grammar definition.
type File struct {
	Root   string           `yaml:"root"`
	States map[string]State `yaml:"states"`
}

// State is one lexical state: its rules in order, the states it inherits
// from, and an optional fallback taken when nothing matches.
type State struct {
	Inherit []string `yaml:"inherit"`
	Rules   []Rule   `yaml:"rules"`
	Else    *Else    `yaml:"else"`
}

// Rule is one pattern-to-action mapping.
type Rule struct {
	Action      string `yaml:"action"`
	Pattern     string `yaml:"pattern"`
	Type        string `yaml:"type"`
	State       string `yaml:"state"`
	Insensitive bool   `yaml:"insensitive"`
	Stay        bool   `yaml:"stay"`
}

// Else is a state's default fallback: pop, or push into another state.
type Else struct {
	Pop  bool   `yaml:"pop"`
	Push string `yaml:"push"`
}

// Load reads and builds the grammar defined in the file at path.
func Load(path string) (*lex.Grammar[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read grammar file: %w", err)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Parse builds the grammar defined by the YAML document in data. State
// references may be forward and may form cycles; every reference must
// resolve, every pattern must compile, and stay is only accepted on push
// and pop rules.
func Parse(data []byte) (*lex.Grammar[string], error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse grammar file: %w", err)
	}
	return file.Build()
}

// Build constructs the grammar graph described by the file.
func (f *File) Build() (*lex.Grammar[string], error) {
	if f.Root == "" {
		return nil, fmt.Errorf("grammar file has no root state")
	}
	if _, ok := f.States[f.Root]; !ok {
		return nil, fmt.Errorf("root state %q is not defined", f.Root)
	}

	root := lex.NewGrammar[string]().Named(f.Root)
	states := map[string]*lex.Grammar[string]{f.Root: root}
	for name := range f.States {
		if name == f.Root {
			continue
		}
		states[name] = root.Sub().Named(name)
	}

	for name, def := range f.States {
		if err := f.buildState(states, name, def); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func (f *File) buildState(states map[string]*lex.Grammar[string], name string, def State) error {
	g := states[name]

	for _, parent := range def.Inherit {
		pg, ok := states[parent]
		if !ok {
			return fmt.Errorf("state %q inherits unknown state %q", name, parent)
		}
		g.Inherit(pg)
	}

	for i, rd := range def.Rules {
		rule, typed, err := f.buildRule(states, name, i, rd)
		if err != nil {
			return err
		}
		if typed {
			g.Def(rule, rd.Type)
		} else {
			g.Def(rule)
		}
	}

	if def.Else != nil {
		if def.Else.Pop && def.Else.Push != "" {
			return fmt.Errorf("state %q: else cannot both pop and push", name)
		}
		switch {
		case def.Else.Pop:
			g.ElsePop()
		case def.Else.Push != "":
			target, ok := states[def.Else.Push]
			if !ok {
				return fmt.Errorf("state %q: else pushes unknown state %q", name, def.Else.Push)
			}
			g.ElsePush(target)
		default:
			return fmt.Errorf("state %q: else must set pop or push", name)
		}
	}
	return nil
}

func (f *File) buildRule(states map[string]*lex.Grammar[string], state string, i int, rd Rule) (*lex.Rule[string], bool, error) {
	where := fmt.Sprintf("state %q rule %d", state, i+1)

	// Validate the pattern through rx before handing it to the panicking
	// rule builders, so file errors surface as errors.
	if _, err := rx.Compile(rd.Pattern, rd.Insensitive); err != nil {
		return nil, false, fmt.Errorf("%s: %w", where, err)
	}

	var rule *lex.Rule[string]
	switch rd.Action {
	case "ignore":
		rule = lex.Ignore[string](rd.Pattern)
	case "match":
		rule = lex.Match[string](rd.Pattern)
	case "push":
		if rd.State == "" {
			return nil, false, fmt.Errorf("%s: push rule needs a state", where)
		}
		target, ok := states[rd.State]
		if !ok {
			return nil, false, fmt.Errorf("%s: push rule targets unknown state %q", where, rd.State)
		}
		rule = lex.Push(rd.Pattern, target)
	case "pop":
		rule = lex.Pop[string](rd.Pattern)
	default:
		return nil, false, fmt.Errorf("%s: unknown action %q", where, rd.Action)
	}

	if rd.State != "" && rd.Action != "push" {
		return nil, false, fmt.Errorf("%s: state is only valid on push rules", where)
	}
	if rd.Insensitive {
		rule = rule.ICase()
	}
	if rd.Stay {
		if rd.Action != "push" && rd.Action != "pop" {
			return nil, false, fmt.Errorf("%s: stay is only valid on push and pop rules", where)
		}
		rule = rule.Stay()
	}
	return rule, rd.Type != "", nil
}
