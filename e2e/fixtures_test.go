//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type fixtureRepo struct {
	Name                string            `json:"name"`
	Description         string            `json:"description"`
	StargazersCount     int               `json:"stargazers_count"`
	WeekStargazersCount int               `json:"week_stargazers_count"`
	CreatedAt           string            `json:"github_created_at"`
	LastCommitAt        string            `json:"last_commit_at"`
	GithubURL           string            `json:"github_url"`
	Owner               map[string]string `json:"owner"`
	ImageURLs           []string          `json:"image_urls"`
	Valid               bool              `json:"valid"`
}

// CreateTestWorkspace creates a temporary directory the app runs in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// CreateCatalog writes a JSON catalog of n generated schemes plus "gruvbox"
// into the workspace and returns its path. Stars decrease with the index, so
// scheme-01 is the most starred.
func (tf *TUITestFramework) CreateCatalog(n int) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	repos := make([]fixtureRepo, 0, n+1)
	for i := 1; i <= n; i++ {
		repos = append(repos, fixtureRepo{
			Name:                fmt.Sprintf("scheme-%02d", i),
			Description:         fmt.Sprintf("Generated scheme number %d", i),
			StargazersCount:     1000 - i,
			WeekStargazersCount: i,
			CreatedAt:           base.AddDate(0, 0, i).Format(time.RFC3339),
			LastCommitAt:        base.AddDate(1, 0, -i).Format(time.RFC3339),
			GithubURL:           fmt.Sprintf("https://github.com/someone/scheme-%02d", i),
			Owner:               map[string]string{"name": "someone"},
			ImageURLs:           []string{fmt.Sprintf("https://example.com/scheme-%02d.png", i)},
			Valid:               true,
		})
	}
	repos = append(repos, fixtureRepo{
		Name:            "gruvbox",
		Description:     "Retro groove color scheme",
		StargazersCount: 5,
		CreatedAt:       "2012-09-02T13:10:19Z",
		LastCommitAt:    "2023-08-14T10:00:00Z",
		GithubURL:       "https://github.com/morhetz/gruvbox",
		Owner:           map[string]string{"name": "morhetz"},
		ImageURLs:       []string{"https://example.com/gruvbox.png"},
		Valid:           true,
	})

	data, err := json.MarshalIndent(map[string]any{"platform": "vim", "repositories": repos}, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(tf.workspace, "catalog.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// StartWithCatalog creates a workspace with a catalog of n schemes and starts the app on path
func (tf *TUITestFramework) StartWithCatalog(n int, args ...string) error {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return err
	}
	catalog, err := tf.CreateCatalog(n)
	if err != nil {
		return err
	}
	return tf.StartApp(append([]string{"--file", catalog, "--log-file", filepath.Join(tf.workspace, "schemegrip.log")}, args...)...)
}
