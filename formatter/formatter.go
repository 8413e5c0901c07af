// Package formatter renders issues for humans and machines.
package formatter

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	tt "github.com/gnolang/hlin/internal/types"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgHiYellow, color.Bold)
	infoStyle    = color.New(color.FgHiBlue, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	noteStyle    = color.New(color.FgGreen, color.Bold)
)

// Format renders issues grouped by file, sorted by position within each
// file, as a colored human-readable report.
func Format(issues []tt.Issue) string {
	byFile := make(map[string][]tt.Issue)
	for _, issue := range issues {
		byFile[issue.Filename] = append(byFile[issue.Filename], issue)
	}

	files := make([]string, 0, len(byFile))
	for filename := range byFile {
		files = append(files, filename)
	}
	sort.Strings(files)

	var builder strings.Builder
	for _, filename := range files {
		for _, issue := range byFile[filename] {
			builder.WriteString(formatIssue(issue))
		}
	}
	return builder.String()
}

func formatIssue(issue tt.Issue) string {
	var builder strings.Builder
	builder.WriteString(severityStyle(issue.Severity).Sprintf("%s: ", issue.Severity))
	builder.WriteString(ruleStyle.Sprint(issue.Rule) + "\n")
	builder.WriteString(lineStyle.Sprint(" --> "))
	builder.WriteString(fileStyle.Sprint(issue.Filename))
	builder.WriteString(lineStyle.Sprintf(":%s\n", issue.Start))
	builder.WriteString(fmt.Sprintf("  = %s\n", issue.Message))
	if issue.Note != "" {
		builder.WriteString(noteStyle.Sprint("  note: ") + issue.Note + "\n")
	}
	builder.WriteString("\n")
	return builder.String()
}

func severityStyle(s tt.Severity) *color.Color {
	switch s {
	case tt.SeverityWarning:
		return warningStyle
	case tt.SeverityInfo:
		return infoStyle
	default:
		return errorStyle
	}
}

// JSON renders issues grouped by file as indented JSON.
func JSON(issues []tt.Issue) ([]byte, error) {
	byFile := make(map[string][]tt.Issue)
	for _, issue := range issues {
		byFile[issue.Filename] = append(byFile[issue.Filename], issue)
	}
	return json.MarshalIndent(byFile, "", "  ")
}
