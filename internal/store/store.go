package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	pgxvector "github.com/pgvector/pgvector-go/pgx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/company-analyst/internal/embedding"
	"github.com/jonathan/company-analyst/internal/types"
)

// Store wraps a PostgreSQL connection pool plus the embedding provider used
// to vectorize text on the way in and out.
type Store struct {
	pool     *pgxpool.Pool
	embedder embedding.Provider
	logger   *zap.Logger
}

// Connect establishes a connection pool to the database and registers the
// pgvector types on every connection.
func Connect(ctx context.Context, databaseURL string, embedder embedding.Provider, logger *zap.Logger) (*Store, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return pgxvector.RegisterTypes(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{pool: pool, embedder: embedder, logger: logger.Named("store")}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Embed exposes the store's embedding provider
func (s *Store) Embed(ctx context.Context, text string) ([]float32, error) {
	return s.embedder.Embed(ctx, text)
}

// ingestConcurrency caps in-flight embedding calls per result page
const ingestConcurrency = 4

// IngestResults embeds and inserts every result of one sub-query page.
// Chunks are embedded and inserted concurrently; the first failure cancels
// the remaining chunks (no transactional grouping).
func (s *Store) IngestResults(ctx context.Context, results []types.SearchResult, company string) error {
	chunks := BuildChunks(results, company, time.Now().UTC())

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(ingestConcurrency)
	for _, chunk := range chunks {
		chunk := chunk
		g.Go(func() error {
			vec, err := s.embedder.Embed(ctx, chunk.Content)
			if err != nil {
				return fmt.Errorf("failed to embed chunk %d of %s: %w", chunk.ChunkIndex, chunk.URL, err)
			}
			chunk.Embedding = vec
			return s.insertChunk(ctx, chunk)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	s.logger.Debug("ingested result page",
		zap.String("company", company),
		zap.Int("chunks", len(chunks)))
	return nil
}

func (s *Store) insertChunk(ctx context.Context, chunk types.StoredChunk) error {
	metadata, err := json.Marshal(chunk.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal chunk metadata: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO site_pages (url, chunk_number, title, summary, content, company_name, metadata, embedding)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		chunk.URL, chunk.ChunkIndex, chunk.Title, chunk.Summary, chunk.Content,
		chunk.Company, metadata, pgvector.NewVector(chunk.Embedding),
	)
	if err != nil {
		return fmt.Errorf("failed to insert chunk %d of %s: %w", chunk.ChunkIndex, chunk.URL, err)
	}
	return nil
}

// Retrieve embeds the query text and returns stored chunks above the cosine
// similarity threshold, ranked by descending similarity. Zero matches yield
// an empty slice; only a backend failure is an error.
func (s *Store) Retrieve(ctx context.Context, query string, threshold float64, limit int) ([]types.StoredChunk, error) {
	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed retrieval query: %w", err)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT url, chunk_number, title, summary, content, COALESCE(company_name, ''), COALESCE(metadata, '{}'),
		        1 - (embedding <=> $1) AS similarity
		 FROM site_pages
		 WHERE 1 - (embedding <=> $1) > $2
		 ORDER BY embedding <=> $1
		 LIMIT $3`,
		pgvector.NewVector(queryVec), threshold, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("similarity search failed: %w", err)
	}
	defer rows.Close()

	chunks := make([]types.StoredChunk, 0, limit)
	for rows.Next() {
		var chunk types.StoredChunk
		var metadata []byte
		if err := rows.Scan(&chunk.URL, &chunk.ChunkIndex, &chunk.Title, &chunk.Summary,
			&chunk.Content, &chunk.Company, &metadata, &chunk.Similarity); err != nil {
			return nil, fmt.Errorf("failed to scan chunk row: %w", err)
		}
		if err := json.Unmarshal(metadata, &chunk.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode chunk metadata: %w", err)
		}
		chunks = append(chunks, chunk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("similarity search failed: %w", err)
	}
	return chunks, nil
}
