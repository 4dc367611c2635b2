package tables

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

var (
	commandIndex     = index(commandList, func(c *Command) string { return c.Name })
	entityIndex      = index(entityList, func(e *Entity) string { return e.Name })
	functionIndex    = index(functionList, func(f *Function) string { return f.Name })
	environmentIndex = index(environmentList, func(e *Environment) string { return e.Name })
	fenceIndex       = index(fenceList, func(f *Fence) string { return f.Name })
	symbolIndex      = index(symbolList, func(s *Symbol) string { return s.Name })

	// controlNames is the sorted vocabulary used for suggestions.
	controlNames = collectControlNames()
)

func index[T any](list []T, key func(*T) string) map[string]*T {
	m := make(map[string]*T, len(list))
	for i := range list {
		m[key(&list[i])] = &list[i]
	}
	return m
}

// LookupCommand finds a command by name.
func LookupCommand(name string) (*Command, bool) {
	c, ok := commandIndex[name]
	return c, ok
}

// LookupEntity finds an entity by name.
func LookupEntity(name string) (*Entity, bool) {
	e, ok := entityIndex[name]
	return e, ok
}

// LookupFunction finds a function by name.
func LookupFunction(name string) (*Function, bool) {
	f, ok := functionIndex[name]
	return f, ok
}

// LookupEnvironment finds an environment by name.
func LookupEnvironment(name string) (*Environment, bool) {
	e, ok := environmentIndex[name]
	return e, ok
}

// LookupFence finds a delimiter by its source text: a character such as
// "(", a control symbol such as "\{", or a bare name such as "langle".
func LookupFence(name string) (*Fence, bool) {
	f, ok := fenceIndex[name]
	return f, ok
}

// LookupSymbol finds a punctuation symbol by its source text.
func LookupSymbol(name string) (*Symbol, bool) {
	s, ok := symbolIndex[name]
	return s, ok
}

// Resolve classifies a control name. Commands take precedence over
// entities, entities over functions.
func Resolve(name string) Control {
	if c, ok := commandIndex[name]; ok {
		return Control{Kind: ControlCommand, Name: name, Command: c}
	}
	if e, ok := entityIndex[name]; ok {
		return Control{Kind: ControlEntity, Name: name, Entity: e}
	}
	if f, ok := functionIndex[name]; ok {
		return Control{Kind: ControlFunction, Name: name, Function: f}
	}
	return Control{Kind: ControlUnknown, Name: name}
}

// Suggest returns the known control name closest to name, if any is close
// enough to be useful.
func Suggest(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	// Prefer names that contain the input as a subsequence ("alph" -> "alpha").
	ranks := fuzzy.RankFindFold(name, controlNames)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target, true
	}

	// Otherwise fall back to edit distance for typos ("farc" -> "frac").
	best, bestDistance := "", maxSuggestDistance+1
	for _, candidate := range controlNames {
		d := fuzzy.LevenshteinDistance(name, candidate)
		if d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	if bestDistance > maxSuggestDistance {
		return "", false
	}
	return best, true
}

const maxSuggestDistance = 2

func collectControlNames() []string {
	names := make([]string, 0, len(commandList)+len(entityList)+len(functionList))
	for _, c := range commandList {
		names = append(names, c.Name)
	}
	for _, e := range entityList {
		names = append(names, e.Name)
	}
	for _, f := range functionList {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}
