package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreLoadsCatalogs(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)

	assert.NotEmpty(t, s.ArticleSummaries())
	assert.NotEmpty(t, s.CortexArticleSummaries())
	assert.NotEmpty(t, s.EndpointSummaries())
}

func TestArticlesByIDs(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)

	got := s.ArticlesByIDs([]string{"how-to-get-nft-metadata", "no-such-article", "how-to-get-token-price"})
	require.Len(t, got, 2)
	assert.Equal(t, "how-to-get-nft-metadata", got[0].ID)
	assert.Equal(t, "how-to-get-token-price", got[1].ID)
	assert.NotEmpty(t, got[0].Content)
}

func TestEndpointsByIDs(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)

	got := s.EndpointsByIDs([]string{"getNFTMetadata"})
	require.Len(t, got, 1)
	assert.Equal(t, "GET", got[0].Method)
	assert.NotEmpty(t, got[0].Params)
}

func TestLookupsReturnEmptyOnMiss(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)

	assert.Empty(t, s.ArticlesByIDs([]string{"nope"}))
	assert.Empty(t, s.CortexArticlesByIDs(nil))
	assert.Empty(t, s.EndpointsByIDs([]string{""}))
}
