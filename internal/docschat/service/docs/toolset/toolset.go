// Package toolset exposes the documentation corpus to the completion
// service as a fixed registry of callable tools. Each tool implements
// Eino's tool.InvokableTool: Info declares the argument schema advertised
// to the model, InvokableRun parses the arguments JSON and returns a
// JSON-serialized result. Empty result sets are returned as [], never as
// errors.
package toolset

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"github.com/moralisweb3/docschat/internal/docschat/service/docs"
	"github.com/moralisweb3/docschat/pkg/utils/json"
)

// Tool names advertised to the completion service.
const (
	ToolArticlesList       = "get_moralis_articles_list"
	ToolArticles           = "get_moralis_articles"
	ToolAPIEndpointsList   = "get_moralis_api_endpoints_list"
	ToolAPIEndpoints       = "get_moralis_api_endpoints"
	ToolCortexArticlesList = "get_moralis_cortex_articles_list"
	ToolCortexArticles     = "get_moralis_cortex_articles"
)

// fetchArgs is the parsed argument shape of the fetch-by-ids tools.
type fetchArgs struct {
	IDs []string `json:"ids"`
}

func idsParams(desc string) *schema.ParamsOneOf {
	return schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
		"ids": {
			Type:     schema.Array,
			Desc:     desc,
			Required: true,
			ElemInfo: &schema.ParameterInfo{Type: schema.String},
		},
	})
}

func noParams() *schema.ParamsOneOf {
	return schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{})
}

// corpusTool is the uniform shape of every registry entry: a static
// descriptor plus a synchronous lookup over the corpus store.
type corpusTool struct {
	info *schema.ToolInfo
	run  func(args fetchArgs) (interface{}, error)
}

var _ tool.InvokableTool = (*corpusTool)(nil)

func (t *corpusTool) Info(_ context.Context) (*schema.ToolInfo, error) {
	return t.info, nil
}

func (t *corpusTool) InvokableRun(_ context.Context, argumentsInJSON string, _ ...tool.Option) (string, error) {
	var args fetchArgs
	if argumentsInJSON != "" && argumentsInJSON != "{}" {
		if err := json.UnmarshalString(argumentsInJSON, &args); err != nil {
			return "", fmt.Errorf("unmarshal arguments for %q: %w", t.info.Name, err)
		}
	}

	result, err := t.run(args)
	if err != nil {
		return "", err
	}

	out, err := json.MarshalString(result)
	if err != nil {
		return "", fmt.Errorf("marshal result of %q: %w", t.info.Name, err)
	}
	return out, nil
}

// Registry is the fixed name→tool mapping. Read-only after New.
type Registry struct {
	tools map[string]tool.InvokableTool
	order []string
}

// New builds the registry over the given corpus store.
func New(store *docs.Store) *Registry {
	r := &Registry{tools: make(map[string]tool.InvokableTool)}

	r.register(&corpusTool{
		info: &schema.ToolInfo{
			Name:        ToolArticlesList,
			Desc:        "List all Moralis documentation articles (id, title, subject, summary).",
			ParamsOneOf: noParams(),
		},
		run: func(fetchArgs) (interface{}, error) { return store.ArticleSummaries(), nil },
	})
	r.register(&corpusTool{
		info: &schema.ToolInfo{
			Name:        ToolArticles,
			Desc:        "Fetch full Moralis documentation articles by their ids.",
			ParamsOneOf: idsParams("Article ids to fetch."),
		},
		run: func(args fetchArgs) (interface{}, error) { return store.ArticlesByIDs(args.IDs), nil },
	})
	r.register(&corpusTool{
		info: &schema.ToolInfo{
			Name:        ToolAPIEndpointsList,
			Desc:        "List all Moralis Web3 Data API endpoints (id, name, group).",
			ParamsOneOf: noParams(),
		},
		run: func(fetchArgs) (interface{}, error) { return store.EndpointSummaries(), nil },
	})
	r.register(&corpusTool{
		info: &schema.ToolInfo{
			Name:        ToolAPIEndpoints,
			Desc:        "Fetch Moralis Web3 Data API endpoint details (method, path, params) by endpoint ids.",
			ParamsOneOf: idsParams("Endpoint ids to fetch."),
		},
		run: func(args fetchArgs) (interface{}, error) { return store.EndpointsByIDs(args.IDs), nil },
	})
	r.register(&corpusTool{
		info: &schema.ToolInfo{
			Name:        ToolCortexArticlesList,
			Desc:        "List all Moralis Cortex articles (id, title, subject, summary).",
			ParamsOneOf: noParams(),
		},
		run: func(fetchArgs) (interface{}, error) { return store.CortexArticleSummaries(), nil },
	})
	r.register(&corpusTool{
		info: &schema.ToolInfo{
			Name:        ToolCortexArticles,
			Desc:        "Fetch full Moralis Cortex articles by their ids.",
			ParamsOneOf: idsParams("Cortex article ids to fetch."),
		},
		run: func(args fetchArgs) (interface{}, error) { return store.CortexArticlesByIDs(args.IDs), nil },
	})

	return r
}

func (r *Registry) register(t *corpusTool) {
	r.tools[t.info.Name] = t
	r.order = append(r.order, t.info.Name)
}

// Resolve looks up a tool by name.
func (r *Registry) Resolve(name string) (tool.InvokableTool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Descriptors returns the tool descriptors to advertise to the completion
// service, in registration order.
func (r *Registry) Descriptors(ctx context.Context) ([]*schema.ToolInfo, error) {
	infos := make([]*schema.ToolInfo, 0, len(r.order))
	for _, name := range r.order {
		info, err := r.tools[name].Info(ctx)
		if err != nil {
			return nil, fmt.Errorf("descriptor for %q: %w", name, err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Len returns the number of registered tools.
func (r *Registry) Len() int { return len(r.tools) }
