// Package searchtool exposes exact substring search as Model Context Protocol
// tools.
//
// Two tools are registered:
//
//   - kmp_search: every (overlapping) offset of a pattern in a text
//   - kmp_failure_table: the failure table of a pattern
//
// Compiled patterns are kept in an LRU cache, so repeated searches for the
// same pattern reuse its failure table.
package searchtool

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scottcagno/kmp/pkg/cache"
	"github.com/scottcagno/kmp/pkg/logger"
	"github.com/scottcagno/kmp/pkg/search"
)

const (
	SearchToolName       = "kmp_search"
	FailureTableToolName = "kmp_failure_table"
)

var ErrTextTooLarge = errors.New("searchtool: text too large")

type SearchArgs struct {
	Text    string `json:"text" jsonschema:"the text to search"`
	Pattern string `json:"pattern" jsonschema:"the exact pattern to find; an empty pattern never matches"`
}

type SearchOutput struct {
	Matches []int `json:"matches" jsonschema:"ascending byte offsets of every occurrence, overlaps included"`
	Count   int   `json:"count" jsonschema:"number of occurrences"`
}

type FailureTableArgs struct {
	Pattern string `json:"pattern" jsonschema:"the pattern to analyze"`
}

type FailureTableOutput struct {
	Table []int `json:"table" jsonschema:"longest proper prefix that is also a suffix, per prefix length"`
}

// Tools holds the state shared by the tool handlers.
type Tools struct {
	conf     *ServerConfig
	patterns *cache.LRU[string, *search.Pattern[byte]]
	log      *logger.Logger
}

func NewTools(conf *ServerConfig) *Tools {
	conf = checkServerConfig(conf)
	return &Tools{
		conf:     conf,
		patterns: cache.NewLRU[string, *search.Pattern[byte]](conf.CacheSize),
		log:      conf.Logger,
	}
}

// NewServer returns an MCP server with the search tools registered.
func NewServer(conf *ServerConfig) *mcp.Server {
	return NewTools(conf).Server()
}

func (t *Tools) Server() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    t.conf.Name,
		Version: t.conf.Version,
	}, nil)
	mcp.AddTool(server, &mcp.Tool{
		Name:        SearchToolName,
		Description: "Find every start offset of an exact pattern in a text (Knuth-Morris-Pratt, overlapping matches included).",
	}, t.handleSearch)
	mcp.AddTool(server, &mcp.Tool{
		Name:        FailureTableToolName,
		Description: "Compute the Knuth-Morris-Pratt failure table of a pattern.",
	}, t.handleFailureTable)
	return server
}

// CacheStats reports how often compiled patterns were reused.
func (t *Tools) CacheStats() cache.Stats {
	return t.patterns.Stats()
}

func (t *Tools) compile(pattern string) *search.Pattern[byte] {
	return t.patterns.GetOrLoad(pattern, search.CompileString)
}

// checkLen rejects inputs over MaxTextLen before they reach the pattern cache.
func (t *Tools) checkLen(tool, field, s string) error {
	if len(s) <= t.conf.MaxTextLen {
		return nil
	}
	t.log.Warnf("%s: rejected %s of %d bytes", tool, field, len(s))
	return fmt.Errorf("%w: %s is %d bytes (max %d)", ErrTextTooLarge, field, len(s), t.conf.MaxTextLen)
}

func (t *Tools) handleSearch(ctx context.Context, req *mcp.CallToolRequest, args SearchArgs) (*mcp.CallToolResult, SearchOutput, error) {
	if err := t.checkLen(SearchToolName, "text", args.Text); err != nil {
		return nil, SearchOutput{}, err
	}
	if err := t.checkLen(SearchToolName, "pattern", args.Pattern); err != nil {
		return nil, SearchOutput{}, err
	}
	matches := t.compile(args.Pattern).IndexAll([]byte(args.Text))
	if matches == nil {
		matches = []int{}
	}
	t.log.Debugf("%s: pattern=%d bytes text=%d bytes matches=%d", SearchToolName, len(args.Pattern), len(args.Text), len(matches))
	return nil, SearchOutput{Matches: matches, Count: len(matches)}, nil
}

func (t *Tools) handleFailureTable(ctx context.Context, req *mcp.CallToolRequest, args FailureTableArgs) (*mcp.CallToolResult, FailureTableOutput, error) {
	if err := t.checkLen(FailureTableToolName, "pattern", args.Pattern); err != nil {
		return nil, FailureTableOutput{}, err
	}
	table := t.compile(args.Pattern).Table()
	t.log.Debugf("%s: pattern=%d bytes", FailureTableToolName, len(args.Pattern))
	return nil, FailureTableOutput{Table: table}, nil
}

// ServeStdio runs server over stdin/stdout until the client disconnects or
// ctx is cancelled.
func ServeStdio(ctx context.Context, server *mcp.Server) error {
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("searchtool: serve stdio: %w", err)
	}
	return nil
}
