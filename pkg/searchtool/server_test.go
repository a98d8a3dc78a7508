package searchtool

import (
	"bytes"
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scottcagno/kmp/pkg/logger"
)

func connect(t *testing.T, tools *Tools) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := tools.Server().Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect failed: %v", err)
	}
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "searchtool-test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect failed: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func quietTools(conf *ServerConfig) (*Tools, *bytes.Buffer) {
	var buf bytes.Buffer
	l := logger.NewWriterLogger(&buf)
	l.SetLevel(logger.LevelDebug)
	if conf == nil {
		conf = new(ServerConfig)
	}
	conf.Logger = l
	return NewTools(conf), &buf
}

func decode(t *testing.T, res *mcp.CallToolResult, v any) {
	t.Helper()
	if res.IsError {
		t.Fatalf("unexpected tool error: %+v", res.Content)
	}
	b, err := json.Marshal(res.StructuredContent)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("unmarshal structured content: %v", err)
	}
}

func TestListTools(t *testing.T) {
	tools, _ := quietTools(nil)
	session := connect(t, tools)
	res, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools failed: %v", err)
	}
	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	for _, want := range []string{SearchToolName, FailureTableToolName} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
			}
		}
		if !found {
			t.Errorf("tool %q not listed in %v", want, names)
		}
	}
}

func TestSearchTool(t *testing.T) {
	tools, logs := quietTools(nil)
	session := connect(t, tools)
	ctx := context.Background()

	tests := []struct {
		text, pattern string
		want          []int
	}{
		{"AAAAA", "AA", []int{0, 1, 2, 3}},
		{"ABCABCD", "ABCD", []int{3}},
		{"ABCDEF", "XYZ", []int{}},
		{"ABC", "", []int{}},
		{"AB", "ABC", []int{}},
	}
	for _, tt := range tests {
		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      SearchToolName,
			Arguments: map[string]any{"text": tt.text, "pattern": tt.pattern},
		})
		if err != nil {
			t.Fatalf("CallTool failed: %v", err)
		}
		var out SearchOutput
		decode(t, res, &out)
		if !reflect.DeepEqual(out.Matches, tt.want) || out.Count != len(tt.want) {
			t.Errorf("search(%q, %q): expected=%v, got=%+v", tt.text, tt.pattern, tt.want, out)
		}
	}
	if !strings.Contains(logs.String(), SearchToolName) {
		t.Errorf("expected debug logging, got:\n%s", logs.String())
	}
}

func TestSearchToolReusesPatterns(t *testing.T) {
	tools, _ := quietTools(nil)
	session := connect(t, tools)
	ctx := context.Background()
	for _, text := range []string{"ABAB", "BABA", "AAAA"} {
		_, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      SearchToolName,
			Arguments: map[string]any{"text": text, "pattern": "AB"},
		})
		if err != nil {
			t.Fatalf("CallTool failed: %v", err)
		}
	}
	if s := tools.CacheStats(); s.Misses != 1 || s.Hits != 2 {
		t.Errorf("expected 1 miss and 2 hits, got %+v", s)
	}
}

func TestSearchToolTextTooLarge(t *testing.T) {
	tools, _ := quietTools(&ServerConfig{MaxTextLen: 4})
	session := connect(t, tools)
	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      SearchToolName,
		Arguments: map[string]any{"text": "ABCDEFGH", "pattern": "A"},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected a tool error, got %+v", res)
	}
	var msg string
	for _, c := range res.Content {
		if text, ok := c.(*mcp.TextContent); ok {
			msg += text.Text
		}
	}
	if !strings.Contains(msg, "text too large") {
		t.Errorf("expected error text to mention the size limit, got %q", msg)
	}
}

func TestPatternTooLarge(t *testing.T) {
	tools, _ := quietTools(&ServerConfig{MaxTextLen: 4})
	session := connect(t, tools)
	long := strings.Repeat("A", 1000)
	calls := []*mcp.CallToolParams{
		{Name: SearchToolName, Arguments: map[string]any{"text": "AAAA", "pattern": long}},
		{Name: FailureTableToolName, Arguments: map[string]any{"pattern": long}},
	}
	for _, params := range calls {
		res, err := session.CallTool(context.Background(), params)
		if err != nil {
			t.Fatalf("CallTool(%s) failed: %v", params.Name, err)
		}
		if !res.IsError {
			t.Errorf("%s: expected a tool error for a %d byte pattern", params.Name, len(long))
		}
	}
	if s := tools.CacheStats(); s.Hits != 0 || s.Misses != 0 {
		t.Errorf("rejected patterns reached the cache: %+v", s)
	}
}

func TestFailureTableTool(t *testing.T) {
	tools, _ := quietTools(nil)
	session := connect(t, tools)
	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      FailureTableToolName,
		Arguments: map[string]any{"pattern": "AABAACAABAA"},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	var out FailureTableOutput
	decode(t, res, &out)
	if want := []int{0, 1, 0, 1, 2, 0, 1, 2, 3, 4, 5}; !reflect.DeepEqual(out.Table, want) {
		t.Errorf("expected=%v, got=%v", want, out.Table)
	}
}

func TestCheckServerConfig(t *testing.T) {
	conf := checkServerConfig(nil)
	if conf.Name != defaultName || conf.Version != defaultVersion ||
		conf.CacheSize != defaultCacheSize || conf.MaxTextLen != defaultMaxTextLen || conf.Logger == nil {
		t.Errorf("defaults not applied: %+v", conf)
	}
}
