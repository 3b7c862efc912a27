package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/bizvalid/bizvalid/schema"
)

// markerPair locates a report section inside a message: the literal
// start marker and an optional literal end marker.
type markerPair struct {
	start string
	end   string
}

type section struct {
	title       string
	patterns    []markerPair
	placeholder string
}

// Sections in fixed report order. Each tries its primary pattern
// first, then its fallback; the first pattern that matches any
// message wins and later alternatives are not tried.
var _reportSections = []section{
	{
		title: "Market Research",
		patterns: []markerPair{
			{start: "### MARKET RESEARCHER"},
			{start: "MARKET SIZE:"},
		},
		placeholder: "(No MarketResearcher output found.)",
	},
	{
		title: "Competitive Analysis",
		patterns: []markerPair{
			{start: "### COMPETITOR SCOUT"},
			{start: "DIRECT COMPETITORS:"},
		},
		placeholder: "(No CompetitorScout output found.)",
	},
	{
		title: "Clarified Business Idea",
		patterns: []markerPair{
			{start: "CLARIFIED IDEA:", end: "BUSINESS MODEL:"},
		},
		placeholder: "(No Clarifier output found.)",
	},
	{
		title: "SWOT Analysis",
		patterns: []markerPair{
			{start: "### SWOT ANALYSIS"},
			{start: "STRENGTHS:"},
		},
		placeholder: "(No SWOTAnalyst output found.)",
	},
	{
		title: "Strategic Feedback",
		patterns: []markerPair{
			{start: "STRATEGIC FEEDBACK:", end: schema.TerminationToken},
		},
		placeholder: "(No FeedbackAgent output found.)",
	},
}

const _reportFooter = `
## Recommendations
Based on the analysis above, consider the following next steps:
1. Validate assumptions with potential customers
2. Create a minimum viable product (MVP)
3. Test the business model with early adopters
4. Refine the value proposition based on feedback
5. Develop a go-to-market strategy

---
*Report generated by Business Validator AI Agent with real-time web research*
`

// findAgentResponse scans the transcript from most recent to oldest,
// restricted to assistant messages, for the first message containing
// start. With an end marker it returns the substring from start
// through the first occurrence of end after it, inclusive; an end
// marker that never appears degrades to the whole message, which may
// carry trailing content past the logical boundary. That is accepted
// output, not an error.
func findAgentResponse(transcript []schema.Message, start, end string) (string, bool) {
	for i := len(transcript) - 1; i >= 0; i-- {
		m := transcript[i]
		if !m.IsAssistant() {
			continue
		}
		idx := strings.Index(m.Content, start)
		if idx < 0 {
			continue
		}
		if end != "" {
			if endIdx := strings.Index(m.Content[idx:], end); endIdx >= 0 {
				return m.Content[idx : idx+endIdx+len(end)], true
			}
		}
		return m.Content, true
	}
	return "", false
}

func extractSection(transcript []schema.Message, s section) string {
	for _, p := range s.patterns {
		if content, ok := findAgentResponse(transcript, p.start, p.end); ok {
			return content
		}
	}
	return s.placeholder
}

// BuildReport assembles the markdown report from a finished
// transcript. The transcript is read only, never mutated; sections
// whose markers are missing get their placeholder line.
func BuildReport(idea string, transcript []schema.Message, now time.Time) string {
	var b strings.Builder
	b.WriteString("\n# Business Validation Report\n")
	fmt.Fprintf(&b, "**Business Idea:** %s\n", idea)
	fmt.Fprintf(&b, "**Date:** %s\n", now.Format("2006-01-02 15:04:05"))
	b.WriteString(`
## Executive Summary
This report provides a comprehensive validation analysis of the business idea using a multi-agent AI system with real-time web research.

## Analysis Results
`)
	for _, s := range _reportSections {
		fmt.Fprintf(&b, "\n### %s\n%s\n", s.title, extractSection(transcript, s))
	}
	b.WriteString(_reportFooter)
	return b.String()
}
