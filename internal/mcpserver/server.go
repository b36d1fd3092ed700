// Package mcpserver exposes the parser and the client generator as MCP tools
// over stdio.
package mcpserver

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/doITmagic/lsrc2gen/internal/codetypes"
	"github.com/doITmagic/lsrc2gen/internal/phpsig"
	"github.com/doITmagic/lsrc2gen/internal/pipeline"
	"github.com/doITmagic/lsrc2gen/internal/pyclient"
)

const templateURI = "lsrc2gen://template/python_client.py"

// SourceInput selects the PHP text to process. Source wins over Path.
type SourceInput struct {
	Source string `json:"source,omitempty"`
	Path   string `json:"path,omitempty"`
}

// ParameterInfo is a parameter descriptor flattened to plain strings.
type ParameterInfo struct {
	Name       string `json:"name"`
	PyName     string `json:"py_name"`
	Type       string `json:"type,omitempty"`
	HasDefault bool   `json:"has_default"`
	Default    string `json:"default,omitempty"`
}

// FunctionInfo describes one documented RemoteControl function.
type FunctionInfo struct {
	Name       string          `json:"name"`
	Doc        string          `json:"doc"`
	Parameters []ParameterInfo `json:"parameters"`
}

// ParseOutput is returned by parse_php_signatures.
type ParseOutput struct {
	Functions []FunctionInfo `json:"functions"`
	Warnings  []string       `json:"warnings"`
}

// GenerateOutput is returned by generate_python_client.
type GenerateOutput struct {
	Client    string   `json:"client"`
	Functions int      `json:"functions"`
	Warnings  []string `json:"warnings"`
}

// Handlers holds the tool implementations.
type Handlers struct {
	pipeline *pipeline.Pipeline
	log      *zap.Logger
}

// NewHandlers returns tool handlers backed by p.
func NewHandlers(p *pipeline.Pipeline, log *zap.Logger) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handlers{pipeline: p, log: log}
}

// New builds an MCP server with both tools and the template resource
// registered.
func New(p *pipeline.Pipeline, log *zap.Logger, version string) *mcp.Server {
	h := NewHandlers(p, log)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "lsrc2gen",
		Version: version,
	}, nil)

	mcp.AddTool[SourceInput, ParseOutput](server, &mcp.Tool{
		Name: "parse_php_signatures",
		Description: "Extract the documented public methods of a LimeSurvey RemoteControl PHP handler " +
			"as descriptors (name, doc, parameters with Python names, types and defaults).",
	}, h.Parse)

	mcp.AddTool[SourceInput, GenerateOutput](server, &mcp.Tool{
		Name: "generate_python_client",
		Description: "Generate the Python RemoteControl client module for a LimeSurvey PHP handler. " +
			"Pass the PHP text in source or a file path in path.",
	}, h.Generate)

	server.AddResource(&mcp.Resource{
		URI:         templateURI,
		Name:        "python_client.py",
		Title:       "Python client template",
		Description: "Embedded template the generated methods are inserted into",
		MIMEType:    "text/x-python",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      templateURI,
					MIMEType: "text/x-python",
					Text:     pyclient.DefaultTemplate(),
				},
			},
		}, nil
	})

	return server
}

// Serve runs the server on stdio until ctx is cancelled or the client
// disconnects.
func Serve(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

// Parse implements parse_php_signatures.
func (h *Handlers) Parse(ctx context.Context, req *mcp.CallToolRequest, in SourceInput) (*mcp.CallToolResult, ParseOutput, error) {
	src, err := readSource(in)
	if err != nil {
		return nil, ParseOutput{}, err
	}
	res, err := h.pipeline.Parse(src)
	if err != nil {
		h.log.Warn("parse_php_signatures failed", zap.Error(err))
		return nil, ParseOutput{}, err
	}
	out := ParseOutput{
		Functions: make([]FunctionInfo, 0, len(res.Functions)),
		Warnings:  warningStrings(res.Warnings),
	}
	for _, fn := range res.Functions {
		out.Functions = append(out.Functions, functionInfo(fn))
	}
	return nil, out, nil
}

// Generate implements generate_python_client.
func (h *Handlers) Generate(ctx context.Context, req *mcp.CallToolRequest, in SourceInput) (*mcp.CallToolResult, GenerateOutput, error) {
	src, err := readSource(in)
	if err != nil {
		return nil, GenerateOutput{}, err
	}
	res, err := h.pipeline.Transform(src)
	if err != nil {
		h.log.Warn("generate_python_client failed", zap.Error(err))
		return nil, GenerateOutput{}, err
	}
	return nil, GenerateOutput{
		Client:    res.Client,
		Functions: len(res.Functions),
		Warnings:  warningStrings(res.Warnings),
	}, nil
}

func readSource(in SourceInput) (string, error) {
	if in.Source != "" {
		return in.Source, nil
	}
	if in.Path == "" {
		return "", errors.New("either source or path is required")
	}
	data, err := os.ReadFile(in.Path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", in.Path)
	}
	return string(data), nil
}

func functionInfo(fn codetypes.Function) FunctionInfo {
	info := FunctionInfo{
		Name:       fn.Name,
		Doc:        fn.Doc,
		Parameters: make([]ParameterInfo, 0, len(fn.Parameters)),
	}
	for _, p := range fn.Parameters {
		info.Parameters = append(info.Parameters, ParameterInfo{
			Name:       p.SourceName,
			PyName:     p.TargetName,
			Type:       p.Type.String(),
			HasDefault: p.HasDefault(),
			Default:    pyclient.Literal(p.Default),
		})
	}
	return info
}

func warningStrings(ws []phpsig.Warning) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.String())
	}
	return out
}
