package outbound

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v69/github"

	"github.com/droverhq/drover/pkg/webhook"
)

// gitHubClient posts back to the issue or pull request that triggered the
// event.
type gitHubClient struct {
	api *github.Client
}

func newGitHubClient(token string) *gitHubClient {
	return &gitHubClient{api: github.NewClient(nil).WithAuthToken(token)}
}

// githubRef locates the entity an event refers to.
type githubRef struct {
	owner     string
	repo      string
	number    int
	commentID int64
}

func githubRefFrom(payload map[string]any) (githubRef, error) {
	fullName := webhook.LookupString(payload, "repository.full_name")
	owner, repo, ok := strings.Cut(fullName, "/")
	if !ok {
		return githubRef{}, fmt.Errorf("payload missing repository.full_name")
	}

	ref := githubRef{owner: owner, repo: repo}
	for _, path := range []string{"issue.number", "pull_request.number"} {
		if value, found := webhook.LookupPath(payload, path); found {
			if n, isNum := value.(float64); isNum {
				ref.number = int(n)
				break
			}
		}
	}
	if ref.number == 0 {
		return githubRef{}, fmt.Errorf("payload has no issue or pull request number")
	}

	if value, found := webhook.LookupPath(payload, "comment.id"); found {
		if id, isNum := value.(float64); isNum {
			ref.commentID = int64(id)
		}
	}
	return ref, nil
}

func (c *gitHubClient) Comment(ctx context.Context, payload map[string]any, text string) error {
	ref, err := githubRefFrom(payload)
	if err != nil {
		return err
	}
	_, _, err = c.api.Issues.CreateComment(ctx, ref.owner, ref.repo, ref.number, &github.IssueComment{
		Body: github.Ptr(text),
	})
	if err != nil {
		return fmt.Errorf("creating github comment: %w", err)
	}
	return nil
}

// React targets the triggering comment when the event has one, otherwise the
// issue itself.
func (c *gitHubClient) React(ctx context.Context, payload map[string]any, emoji string) error {
	ref, err := githubRefFrom(payload)
	if err != nil {
		return err
	}

	content := githubReaction(emoji)
	if ref.commentID != 0 {
		_, _, err = c.api.Reactions.CreateIssueCommentReaction(ctx, ref.owner, ref.repo, ref.commentID, content)
	} else {
		_, _, err = c.api.Reactions.CreateIssueReaction(ctx, ref.owner, ref.repo, ref.number, content)
	}
	if err != nil {
		return fmt.Errorf("creating github reaction: %w", err)
	}
	return nil
}

func (c *gitHubClient) Label(ctx context.Context, payload map[string]any, labels []string) error {
	ref, err := githubRefFrom(payload)
	if err != nil {
		return err
	}
	_, _, err = c.api.Issues.AddLabelsToIssue(ctx, ref.owner, ref.repo, ref.number, labels)
	if err != nil {
		return fmt.Errorf("adding github labels: %w", err)
	}
	return nil
}

// githubReaction maps an emoji name onto GitHub's fixed reaction set.
func githubReaction(emoji string) string {
	switch emoji {
	case "+1", "-1", "laugh", "confused", "heart", "hooray", "rocket", "eyes":
		return emoji
	case "thumbsup":
		return "+1"
	case "thumbsdown":
		return "-1"
	case "tada":
		return "hooray"
	default:
		return "eyes"
	}
}
