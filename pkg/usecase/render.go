package usecase

import (
	"fmt"
	"strings"

	"github.com/secmon-lab/hearsight/pkg/domain/model"
)

// docLinkSnippetLength bounds the snippet excerpt shown per doc link in the
// further reading section
const docLinkSnippetLength = 150

// RenderIssueTitle renders the tracker item title for an insight. It is a
// pure function: the same insight always yields byte-identical output.
func RenderIssueTitle(insight model.Insight) string {
	return fmt.Sprintf("%s [%s] %s", insight.Severity.Marker(), insight.Category.Label(), insight.Title)
}

// RenderIssueBody renders the tracker item body for an insight and its
// enrichment. Sections are always present; absent enrichment renders
// explicit placeholders so a reader can tell "nothing found" from an
// omitted section.
func RenderIssueBody(insight model.Insight, docs []model.DocResult, implementationGuide string) string {
	var sb strings.Builder

	sb.WriteString("## User Story\n")
	fmt.Fprintf(&sb, "As a user, I want to %s so that %s.\n\n",
		strings.ToLower(insight.SuggestedAction), strings.ToLower(insight.Description))

	sb.WriteString("## Evidence from Interview\n")
	fmt.Fprintf(&sb, "> \"%s\"\n", insight.EvidenceQuote)
	fmt.Fprintf(&sb, "— Speaker %s\n\n", insight.Speaker)

	sb.WriteString("## Acceptance Criteria\n")
	fmt.Fprintf(&sb, "- [ ] %s\n", insight.SuggestedAction)
	sb.WriteString("- [ ] Verify fix addresses the reported issue\n")
	sb.WriteString("- [ ] Add tests for the new behavior\n\n")

	sb.WriteString("## 📚 Relevant Documentation\n")
	if len(docs) == 0 {
		sb.WriteString("_No relevant documentation found._\n\n")
	} else {
		limit := len(docs)
		if limit > model.MaxDocsPerInsight {
			limit = model.MaxDocsPerInsight
		}
		for _, d := range docs[:limit] {
			snippet := model.TruncateTo(d.Snippet, docLinkSnippetLength)
			fmt.Fprintf(&sb, "- [%s](%s) — \"%s...\"\n", d.Title, d.URL, snippet)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Implementation Guide\n")
	if implementationGuide == "" {
		sb.WriteString("_No implementation guidance generated._\n\n")
	} else {
		sb.WriteString(implementationGuide)
		sb.WriteString("\n\n")
	}

	sb.WriteString("## Metadata\n")
	sb.WriteString("| Field | Value |\n")
	sb.WriteString("|-------|-------|\n")
	fmt.Fprintf(&sb, "| Category | `%s` |\n", insight.Category)
	fmt.Fprintf(&sb, "| Severity | `%s` |\n", insight.Severity)
	fmt.Fprintf(&sb, "| Insight ID | `%s` |\n\n", insight.ID)

	sb.WriteString("---\n_Auto-generated from user interview analysis_\n")

	return sb.String()
}

// renderDraft builds the submission-ready draft for one enriched insight.
// The two leading labels are the literal category and severity values; they
// must already exist in the target tracker.
func (uc *UseCases) renderDraft(item model.EnrichedInsight) *model.IssueDraft {
	labels := []string{item.Insight.Category.String(), item.Insight.Severity.String()}
	labels = append(labels, uc.extraLabels...)

	return &model.IssueDraft{
		Title:  RenderIssueTitle(item.Insight),
		Body:   RenderIssueBody(item.Insight, item.Docs, item.ImplementationGuide),
		Labels: labels,
	}
}
