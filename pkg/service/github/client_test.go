package github_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hearsight/pkg/service/github"
)

func TestNew_Validation(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		_, err := github.New(0, 0, "", "owner", "repo")
		gt.Error(t, err)
	})

	t.Run("missing repository coordinates", func(t *testing.T) {
		_, err := github.New(123, 456, "unused", "", "")
		gt.Error(t, err)
	})

	t.Run("malformed private key", func(t *testing.T) {
		_, err := github.New(123, 456, "not a pem", "owner", "repo")
		gt.Error(t, err)
	})
}
