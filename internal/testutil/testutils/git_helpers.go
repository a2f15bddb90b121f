package helpers

import (
	"testing"

	"github.com/go-git/go-git/v5"
	ggitcfg "github.com/go-git/go-git/v5/config"
)

// InitGitRepo initializes a git repository in dir. When remoteURLs are given
// they become the URLs of the origin remote.
func InitGitRepo(t *testing.T, dir string, remoteURLs ...string) *git.Repository {
	t.Helper()

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("failed to initialize git repo: %v", err)
	}
	if len(remoteURLs) == 0 {
		return repo
	}
	if _, err := repo.CreateRemote(&ggitcfg.RemoteConfig{Name: "origin", URLs: remoteURLs}); err != nil {
		t.Fatalf("failed to create origin remote: %v", err)
	}
	return repo
}
