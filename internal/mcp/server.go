package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"fablecraft/internal/story"
)

type Server struct {
	engine *story.Engine
	mcp    *sdk.Server
}

func NewServer(engine *story.Engine, version string) *Server {
	s := &Server{
		engine: engine,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "fablecraft",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
