package github

import (
	"context"
	"net/http"
	"os"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hearsight/pkg/domain/model"
	"github.com/shurcooL/githubv4"
)

type client struct {
	gql   *githubv4.Client
	owner string
	repo  string
}

// New creates a new GitHub Service using GitHub App authentication.
// privateKey can be a PEM string or a file path to a PEM file.
func New(appID, installationID int64, privateKey, owner, repo string) (Service, error) {
	if owner == "" || repo == "" {
		return nil, goerr.New("GitHub owner and repo are required")
	}

	var key []byte

	// Try reading as file path first
	// #nosec G304 -- path comes from CLI flag, not user input
	if data, err := os.ReadFile(privateKey); err == nil {
		key = data
	} else {
		// Treat as PEM string
		key = []byte(privateKey)
	}

	tr, err := ghinstallation.New(http.DefaultTransport, appID, installationID, key)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub App transport")
	}

	httpClient := &http.Client{Transport: tr}
	gql := githubv4.NewClient(httpClient)

	return &client{gql: gql, owner: owner, repo: repo}, nil
}

// Name identifies this tracker
func (c *client) Name() string {
	return "github"
}

// CreateIssue creates one issue via the GraphQL createIssue mutation.
// Label names are resolved to node IDs first; an unresolvable label is an
// error and no issue is created.
func (c *client) CreateIssue(ctx context.Context, draft *model.IssueDraft) (*model.IssueRef, error) {
	repoID, labelIDs, err := c.resolveIDs(ctx, draft.Labels)
	if err != nil {
		return nil, err
	}

	var m struct {
		CreateIssue struct {
			Issue struct {
				Number githubv4.Int
				URL    githubv4.URI
			}
		} `graphql:"createIssue(input: $input)"`
	}

	body := githubv4.String(draft.Body)
	input := githubv4.CreateIssueInput{
		RepositoryID: repoID,
		Title:        githubv4.String(draft.Title),
		Body:         &body,
	}
	if len(labelIDs) > 0 {
		input.LabelIDs = &labelIDs
	}

	if err := c.gql.Mutate(ctx, &m, input, nil); err != nil {
		return nil, goerr.Wrap(err, "failed to create issue",
			goerr.V("owner", c.owner), goerr.V("repo", c.repo), goerr.V("title", draft.Title))
	}

	return &model.IssueRef{
		URL:    m.CreateIssue.Issue.URL.String(),
		Number: int(m.CreateIssue.Issue.Number),
	}, nil
}

// resolveIDs looks up the repository node ID and the node IDs of the given
// label names
func (c *client) resolveIDs(ctx context.Context, labels []string) (githubv4.ID, []githubv4.ID, error) {
	var q struct {
		Repository struct {
			ID     githubv4.ID
			Labels struct {
				Nodes []struct {
					ID   githubv4.ID
					Name githubv4.String
				}
			} `graphql:"labels(first: 100)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	variables := map[string]interface{}{
		"owner": githubv4.String(c.owner),
		"name":  githubv4.String(c.repo),
	}

	if err := c.gql.Query(ctx, &q, variables); err != nil {
		return nil, nil, goerr.Wrap(err, "failed to query repository",
			goerr.V("owner", c.owner), goerr.V("repo", c.repo))
	}

	byName := make(map[string]githubv4.ID, len(q.Repository.Labels.Nodes))
	for _, node := range q.Repository.Labels.Nodes {
		byName[string(node.Name)] = node.ID
	}

	labelIDs := make([]githubv4.ID, 0, len(labels))
	for _, name := range labels {
		id, ok := byName[name]
		if !ok {
			return nil, nil, goerr.New("label not found in repository",
				goerr.V("owner", c.owner), goerr.V("repo", c.repo), goerr.V("label", name))
		}
		labelIDs = append(labelIDs, id)
	}

	return q.Repository.ID, labelIDs, nil
}
