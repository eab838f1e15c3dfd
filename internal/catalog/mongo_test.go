package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"schemegrip/internal/domain"
)

func TestListingFilter(t *testing.T) {
	assert.Equal(t, bson.M{
		"valid":      true,
		"image_urls": bson.M{"$ne": ""},
	}, listingFilter())
}

func TestSortSpec(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "stargazers_count", Value: -1}}, sortSpec(domain.SortStargazers))
	assert.Equal(t, bson.D{{Key: "week_stargazers_count", Value: -1}}, sortSpec(""))
}

func TestMongoRecordDecoding(t *testing.T) {
	created := time.Date(2019, 4, 1, 12, 0, 0, 0, time.UTC)
	raw, err := bson.Marshal(bson.M{
		"name":                  "tokyonight.nvim",
		"description":           "A clean, dark Neovim theme",
		"stargazers_count":      5000,
		"week_stargazers_count": 120,
		"github_created_at":     created,
		"github_url":            "https://github.com/folke/tokyonight.nvim",
		"owner":                 bson.M{"name": "folke"},
		"image_urls":            bson.A{"", "https://example.com/tokyo.png"},
		"valid":                 true,
	})
	assert.NoError(t, err)

	var rec mongoRecord
	assert.NoError(t, bson.Unmarshal(raw, &rec))

	repo := rec.toDomain()
	assert.Equal(t, "tokyonight.nvim", repo.Name)
	assert.Equal(t, "folke", repo.Owner.Name)
	assert.Equal(t, 120, repo.WeekStargazersCount)
	assert.True(t, repo.CreatedAt.Equal(created))
	assert.Equal(t, []string{"https://example.com/tokyo.png"}, repo.Images)
	assert.Equal(t, "https://example.com/tokyo.png", repo.FeaturedImage)
	assert.Equal(t, "repository-folke-tokyonight.nvim", repo.Key())
}
