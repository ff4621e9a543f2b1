package notiontracker

import (
	"context"
	"strings"

	"github.com/jomei/notionapi"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hearsight/pkg/domain/model"
)

// Notion limits one rich text object to 2000 characters
const maxRichTextLength = 2000

// client implements Service interface
type client struct {
	api        *notionapi.Client
	databaseID string
}

// New creates a new Notion tracker service with the provided API token
func New(token, databaseID string) (Service, error) {
	if token == "" {
		return nil, goerr.New("Notion API token is required")
	}
	if databaseID == "" {
		return nil, goerr.New("Notion database ID is required")
	}

	return &client{
		api: notionapi.NewClient(
			notionapi.Token(token),
			notionapi.WithRetry(3), // Retry up to 3 times on rate limit (HTTP 429)
		),
		databaseID: databaseID,
	}, nil
}

// Name identifies this tracker
func (c *client) Name() string {
	return "notion"
}

// CreateIssue creates one page in the configured database
func (c *client) CreateIssue(ctx context.Context, draft *model.IssueDraft) (*model.IssueRef, error) {
	properties := notionapi.Properties{
		"Name": notionapi.TitleProperty{
			Title: []notionapi.RichText{{
				Text: &notionapi.Text{Content: draft.Title},
			}},
		},
	}

	// Labels are rendered as [category, severity] by the materializer
	if len(draft.Labels) > 0 {
		properties["Category"] = notionapi.SelectProperty{
			Select: notionapi.Option{Name: draft.Labels[0]},
		}
	}
	if len(draft.Labels) > 1 {
		properties["Severity"] = notionapi.SelectProperty{
			Select: notionapi.Option{Name: draft.Labels[1]},
		}
	}

	page, err := c.api.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(c.databaseID),
		},
		Properties: properties,
		Children:   bodyBlocks(draft.Body),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Notion page",
			goerr.V("databaseID", c.databaseID), goerr.V("title", draft.Title))
	}

	return &model.IssueRef{URL: page.URL}, nil
}

// bodyBlocks converts the rendered markdown body into paragraph blocks,
// chunked to Notion's rich text length limit
func bodyBlocks(body string) []notionapi.Block {
	var blocks []notionapi.Block

	for _, paragraph := range strings.Split(body, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		for _, chunk := range chunkText(paragraph, maxRichTextLength) {
			blocks = append(blocks, &notionapi.ParagraphBlock{
				BasicBlock: notionapi.BasicBlock{
					Object: notionapi.ObjectTypeBlock,
					Type:   notionapi.BlockTypeParagraph,
				},
				Paragraph: notionapi.Paragraph{
					RichText: []notionapi.RichText{{
						Text: &notionapi.Text{Content: chunk},
					}},
				},
			})
		}
	}

	return blocks
}

func chunkText(s string, size int) []string {
	if len(s) <= size {
		return []string{s}
	}
	var chunks []string
	for len(s) > size {
		chunk := model.TruncateTo(s, size)
		if chunk == "" {
			// not valid UTF-8, fall back to a plain byte split
			chunk = s[:size]
		}
		chunks = append(chunks, chunk)
		s = s[len(chunk):]
	}
	if s != "" {
		chunks = append(chunks, s)
	}
	return chunks
}
