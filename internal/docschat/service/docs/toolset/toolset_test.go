package toolset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moralisweb3/docschat/internal/docschat/service/docs"
)

func newRegistry(t *testing.T) *Registry {
	t.Helper()
	store, err := docs.NewStore()
	require.NoError(t, err)
	return New(store)
}

func TestRegistryHasAllTools(t *testing.T) {
	r := newRegistry(t)

	names := []string{
		ToolArticlesList,
		ToolArticles,
		ToolAPIEndpointsList,
		ToolAPIEndpoints,
		ToolCortexArticlesList,
		ToolCortexArticles,
	}
	assert.Equal(t, len(names), r.Len())
	for _, name := range names {
		_, ok := r.Resolve(name)
		assert.True(t, ok, "missing tool %q", name)
	}

	_, ok := r.Resolve("get_moralis_everything")
	assert.False(t, ok)
}

func TestDescriptorsMatchRegistrationOrder(t *testing.T) {
	r := newRegistry(t)

	infos, err := r.Descriptors(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 6)
	assert.Equal(t, ToolArticlesList, infos[0].Name)
	assert.Equal(t, ToolCortexArticles, infos[5].Name)
	for _, info := range infos {
		assert.NotEmpty(t, info.Desc)
	}
}

func TestListToolIgnoresArguments(t *testing.T) {
	r := newRegistry(t)
	tl, _ := r.Resolve(ToolArticlesList)

	out, err := tl.InvokableRun(context.Background(), "{}")
	require.NoError(t, err)
	assert.Contains(t, out, "how-to-get-nft-metadata")
	assert.NotContains(t, out, "\"content\"")
}

func TestFetchToolFiltersByIDs(t *testing.T) {
	r := newRegistry(t)
	tl, _ := r.Resolve(ToolAPIEndpoints)

	out, err := tl.InvokableRun(context.Background(), `{"ids":["getTokenPrice"]}`)
	require.NoError(t, err)
	assert.Contains(t, out, "getTokenPrice")
	assert.NotContains(t, out, "getNFTMetadata")
}

func TestFetchToolEmptyResultIsJSONArray(t *testing.T) {
	r := newRegistry(t)
	tl, _ := r.Resolve(ToolCortexArticles)

	out, err := tl.InvokableRun(context.Background(), `{"ids":["missing"]}`)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestFetchToolRejectsMalformedJSON(t *testing.T) {
	r := newRegistry(t)
	tl, _ := r.Resolve(ToolArticles)

	_, err := tl.InvokableRun(context.Background(), `{"ids":`)
	assert.Error(t, err)
}
