package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/araddon/dateparse"
	"go.uber.org/zap"

	"schemegrip/internal/domain"
)

// fileRecord is one repository document of a JSON catalog export.
// Timestamps are kept as strings because exports disagree on their format.
type fileRecord struct {
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	StargazersCount     int      `json:"stargazers_count"`
	WeekStargazersCount int      `json:"week_stargazers_count"`
	CreatedAt           string   `json:"github_created_at"`
	LastCommitAt        string   `json:"last_commit_at"`
	GithubURL           string   `json:"github_url"`
	Owner               struct {
		Name string `json:"name"`
	} `json:"owner"`
	FeaturedImage string   `json:"featured_image"`
	ImageURLs     []string `json:"image_urls"`
	Valid         *bool    `json:"valid"`
}

type fileCatalog struct {
	Platform     string       `json:"platform"`
	Repositories []fileRecord `json:"repositories"`
}

// FileSource serves the catalog from a JSON export on disk.
// The file is re-read on every query so edits show up on the next page load.
type FileSource struct {
	path     string
	platform string
}

// NewFileSource creates a file-backed source. platform is used when the file doesn't name one.
func NewFileSource(path, platform string) *FileSource {
	return &FileSource{path: path, platform: platform}
}

// Path returns the catalog file path
func (s *FileSource) Path() string {
	return s.path
}

// Page implements Source
func (s *FileSource) Page(ctx context.Context, q Query) (domain.PageData, error) {
	if err := ctx.Err(); err != nil {
		return domain.PageData{}, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return domain.PageData{}, fmt.Errorf("failed to read catalog file: %w", err)
	}

	cat, err := decodeCatalog(data)
	if err != nil {
		return domain.PageData{}, fmt.Errorf("failed to parse catalog file %s: %w", s.path, err)
	}

	all := make([]domain.Repository, 0, len(cat.Repositories))
	for _, rec := range cat.Repositories {
		if !rec.listed() {
			continue
		}
		all = append(all, rec.toDomain())
	}
	sortRepositories(all, q.Sort)

	platform := cat.Platform
	if platform == "" {
		platform = s.platform
	}

	return domain.PageData{
		TotalCount:      len(all),
		Repositories:    window(all, q.Skip, q.Limit),
		AllRepositories: all,
		Platform:        platform,
	}, nil
}

// Close implements Source
func (s *FileSource) Close(context.Context) error {
	return nil
}

// decodeCatalog accepts either {"platform": ..., "repositories": [...]} or a bare array of repositories
func decodeCatalog(data []byte) (fileCatalog, error) {
	var cat fileCatalog
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		err := json.Unmarshal(trimmed, &cat.Repositories)
		return cat, err
	}
	err := json.Unmarshal(trimmed, &cat)
	return cat, err
}

// listed mirrors the catalog filter: repositories flagged valid that have at least one image.
// A record without the flag is not listed.
func (r fileRecord) listed() bool {
	if r.Valid == nil || !*r.Valid {
		return false
	}
	for _, u := range r.ImageURLs {
		if u != "" {
			return true
		}
	}
	return false
}

func (r fileRecord) toDomain() domain.Repository {
	repo := domain.Repository{
		Name:                r.Name,
		Description:         r.Description,
		StargazersCount:     r.StargazersCount,
		WeekStargazersCount: r.WeekStargazersCount,
		CreatedAt:           parseTimestamp(r.CreatedAt),
		LastCommitAt:        parseTimestamp(r.LastCommitAt),
		GithubURL:           r.GithubURL,
		Owner:               domain.Owner{Name: r.Owner.Name},
		FeaturedImage:       r.FeaturedImage,
	}
	for _, u := range r.ImageURLs {
		if u != "" {
			repo.Images = append(repo.Images, u)
		}
	}
	if repo.FeaturedImage == "" && len(repo.Images) > 0 {
		repo.FeaturedImage = repo.Images[0]
	}
	return repo
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		zap.L().Warn("catalog: unparseable timestamp", zap.String("value", s), zap.Error(err))
		return time.Time{}
	}
	return t
}
