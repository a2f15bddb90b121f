package preflight

import (
	stdErrors "errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/security-e/security-e.github.io/internal/config"
	"github.com/security-e/security-e.github.io/internal/foundation/errors"
)

const originRemote = "origin"

// checkGitRemote compares the origin remote with organization_name/project_name.
// Projects outside a git repository are skipped.
func checkGitRemote(cfg *config.Config, root string, r *Report) {
	if cfg.OrganizationName == "" || cfg.ProjectName == "" {
		return
	}
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if stdErrors.Is(err, git.ErrRepositoryNotExists) {
			r.add(Finding{Check: CheckGit, Severity: SeverityInfo, Target: root,
				Message: "not a git repository; skipping remote check"})
			return
		}
		r.add(Finding{Check: CheckGit, Severity: SeverityWarning, Target: root,
			Message: fmt.Sprintf("open git repository: %v", err),
			Err:     errors.WrapError(err, errors.CategoryGit, "open git repository").
				WithContext("path", root).Warning().Build()})
		return
	}

	want := cfg.OrganizationName + "/" + cfg.ProjectName
	remote, err := repo.Remote(originRemote)
	if err != nil {
		r.add(Finding{Check: CheckGit, Severity: SeverityWarning, Target: originRemote,
			Message: fmt.Sprintf("no %s remote; deployment expects %s", originRemote, want),
			Err:     errors.GitError(fmt.Sprintf("remote %s not configured", originRemote)).
				WithContext("remote", originRemote).Warning().Build()})
		return
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return
	}
	if got := repoSlug(urls[0]); !strings.EqualFold(got, want) {
		r.add(Finding{Check: CheckGit, Severity: SeverityWarning, Field: "organization_name", Target: urls[0],
			Message: fmt.Sprintf("%s remote points at %s, deployment expects %s", originRemote, got, want)})
	}
}

// repoSlug extracts "owner/name" from https, ssh and scp-style remote URLs.
func repoSlug(remoteURL string) string {
	s := strings.TrimSuffix(strings.TrimRight(strings.TrimSpace(remoteURL), "/"), ".git")
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
		if j := strings.Index(s, "/"); j >= 0 {
			s = s[j+1:]
		}
	} else if i := strings.Index(s, ":"); i >= 0 {
		s = s[i+1:]
	}
	parts := strings.Split(s, "/")
	if len(parts) < 2 {
		return s
	}
	return parts[len(parts)-2] + "/" + parts[len(parts)-1]
}
