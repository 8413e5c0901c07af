package internal

import (
	"fmt"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"

	tt "github.com/gnolang/hlin/internal/types"
	"github.com/gnolang/hlin/matcher"
	"github.com/gnolang/hlin/tree"
	"github.com/gnolang/hlin/typepat"
)

// Engine manages the analysis: it owns the rule registry and applies every
// enabled rule to the tree dumps it is handed.
type Engine struct {
	rules        map[string]Rule
	ignoredRules map[string]bool
	eval         *matcher.Evaluator

	// watch mode state, see watch.go
	watcher    *fsnotify.Watcher
	watchDirs  []string
	isWatching bool
	report     func(filename string, issues []tt.Issue)
}

// NewEngine creates an engine with the default rules, adjusted by the
// per-rule configuration.
func NewEngine(rules map[string]tt.ConfigRule) (*Engine, error) {
	e := &Engine{
		rules:        make(map[string]Rule),
		ignoredRules: make(map[string]bool),
		eval:         matcher.New(matcher.WithTypeMatcher(typepat.Matcher)),
	}
	if err := e.applyRules(rules); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) applyRules(config map[string]tt.ConfigRule) error {
	for _, r := range defaultRules() {
		e.rules[r.Name] = r
	}

	// apply configured severities on top of the defaults
	for name, cfg := range config {
		r, ok := e.rules[name]
		if !ok {
			return fmt.Errorf("unknown rule %q in configuration", name)
		}
		if cfg.Severity == tt.SeverityOff {
			e.IgnoreRule(name)
			continue
		}
		r.Severity = cfg.Severity
		e.rules[name] = r
	}
	return nil
}

// IgnoreRule disables the named rule for this engine.
func (e *Engine) IgnoreRule(rule string) {
	e.ignoredRules[rule] = true
}

// Rules returns the registered rules sorted by name, ignored ones included.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, 0, len(e.rules))
	for _, r := range e.rules {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Run applies all enabled rules to the dump file and returns the issues.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	dump, err := tree.Load(filename)
	if err != nil {
		return nil, err
	}
	return e.check(filename, dump), nil
}

// RunSource applies all enabled rules to an in-memory YAML dump.
func (e *Engine) RunSource(source []byte) ([]tt.Issue, error) {
	dump, err := tree.Parse(source)
	if err != nil {
		return nil, err
	}
	return e.check(dump.Module, dump), nil
}

// check walks the tree once per rule; rules run concurrently since both
// the patterns and the tree are read-only.
func (e *Engine) check(filename string, dump *tree.Dump) []tt.Issue {
	var wg sync.WaitGroup
	var mu sync.Mutex

	var allIssues []tt.Issue
	for _, rule := range e.rules {
		if e.ignoredRules[rule.Name] {
			continue
		}
		wg.Add(1)
		go func(r Rule) {
			defer wg.Done()
			var issues []tt.Issue
			tree.Inspect(dump.Root, func(n *tree.Node) bool {
				if e.eval.Eval(r.Pattern, n) {
					issues = append(issues, r.issueAt(filename, n))
				}
				return true
			})
			mu.Lock()
			allIssues = append(allIssues, issues...)
			mu.Unlock()
		}(rule)
	}
	wg.Wait()

	sort.Slice(allIssues, func(i, j int) bool {
		a, b := allIssues[i], allIssues[j]
		if a.Start.Line != b.Start.Line {
			return a.Start.Line < b.Start.Line
		}
		if a.Start.Column != b.Start.Column {
			return a.Start.Column < b.Start.Column
		}
		return a.Rule < b.Rule
	})
	return allIssues
}
