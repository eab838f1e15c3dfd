package catalog

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"schemegrip/internal/domain"
)

// mongoRecord is one document of the repositories collection
type mongoRecord struct {
	Name                string    `bson:"name"`
	Description         string    `bson:"description"`
	StargazersCount     int       `bson:"stargazers_count"`
	WeekStargazersCount int       `bson:"week_stargazers_count"`
	CreatedAt           time.Time `bson:"github_created_at"`
	LastCommitAt        time.Time `bson:"last_commit_at"`
	GithubURL           string    `bson:"github_url"`
	Owner               struct {
		Name string `bson:"name"`
	} `bson:"owner"`
	FeaturedImage string   `bson:"featured_image"`
	ImageURLs     []string `bson:"image_urls"`
}

// MongoSource serves the catalog from a MongoDB collection
type MongoSource struct {
	client   *mongo.Client
	col      *mongo.Collection
	platform string
	timeout  time.Duration
}

// ConnectMongo establishes a client, verifies it with a ping and wires the collection.
//
// Expected schema:
//
//	repositories
//	  { name, description, stargazers_count, week_stargazers_count,
//	    github_created_at: Date, last_commit_at: Date, github_url,
//	    owner: { name }, featured_image, image_urls: [string], valid: bool }
func ConnectMongo(ctx context.Context, uri, database, collection, platform string, timeout time.Duration) (*MongoSource, error) {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		// Don't leak sockets when the server is unreachable
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	zap.L().Info("catalog: connected to mongo",
		zap.String("database", database),
		zap.String("collection", collection))

	return &MongoSource{
		client:   client,
		col:      client.Database(database).Collection(collection),
		platform: platform,
		timeout:  timeout,
	}, nil
}

// listingFilter selects the repositories that belong in the gallery
func listingFilter() bson.M {
	return bson.M{
		"valid":      true,
		"image_urls": bson.M{"$ne": ""},
	}
}

// sortSpec orders documents by field, descending
func sortSpec(field domain.SortField) bson.D {
	if field == "" {
		field = domain.DefaultAction.SortField
	}
	return bson.D{{Key: string(field), Value: -1}}
}

// Page implements Source. The count, the page and the full listing are
// fetched concurrently; the first failure cancels the others.
func (s *MongoSource) Page(ctx context.Context, q Query) (domain.PageData, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	filter := listingFilter()
	sort := sortSpec(q.Sort)

	var (
		total int64
		page  []mongoRecord
		all   []mongoRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.col.CountDocuments(gctx, filter)
		if err != nil {
			return fmt.Errorf("count repositories: %w", err)
		}
		total = n
		return nil
	})
	g.Go(func() error {
		opts := options.Find().
			SetSort(sort).
			SetSkip(int64(q.Skip)).
			SetLimit(int64(q.Limit))
		recs, err := s.find(gctx, filter, opts)
		if err != nil {
			return fmt.Errorf("find page: %w", err)
		}
		page = recs
		return nil
	})
	g.Go(func() error {
		recs, err := s.find(gctx, filter, options.Find().SetSort(sort))
		if err != nil {
			return fmt.Errorf("find all: %w", err)
		}
		all = recs
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.PageData{}, err
	}

	return domain.PageData{
		TotalCount:      int(total),
		Repositories:    toDomain(page),
		AllRepositories: toDomain(all),
		Platform:        s.platform,
	}, nil
}

func (s *MongoSource) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]mongoRecord, error) {
	cur, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var recs []mongoRecord
	if err := cur.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// Close implements Source
func (s *MongoSource) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func toDomain(recs []mongoRecord) []domain.Repository {
	repos := make([]domain.Repository, 0, len(recs))
	for _, r := range recs {
		repos = append(repos, r.toDomain())
	}
	return repos
}

func (r mongoRecord) toDomain() domain.Repository {
	repo := domain.Repository{
		Name:                r.Name,
		Description:         r.Description,
		StargazersCount:     r.StargazersCount,
		WeekStargazersCount: r.WeekStargazersCount,
		CreatedAt:           r.CreatedAt,
		LastCommitAt:        r.LastCommitAt,
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
