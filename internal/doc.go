// Package internal provides the analysis engine behind hlin.
//
// The engine owns the rule registry: each rule couples a pattern built from
// pattern/ast with the message and severity it reports. Running a rule means
// walking a tree dump and handing every node to the matcher; a match becomes
// an Issue at that node's source span.
//
// Key components:
//
// Engine: coordinates the analysis. It applies the configured severities on
// top of the default rules, walks dumps once per enabled rule, and collects
// issues sorted by position.
//
// Rule: a named pattern with reporting metadata. The default registry lives
// in rules.go.
//
// The engine also supports a watch mode (watch.go) that re-checks dump
// files whenever they change on disk.
//
// Usage:
//
//	engine, err := internal.NewEngine(nil)
//	if err != nil {
//	    // handle error
//	}
//	issues, err := engine.Run("Example.Main.yaml")
package internal
