package codec

import (
	"context"
	"fmt"

	pb "github.com/satyasetu/go-engine/gen/modelserve"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/satyasetu/go-engine/internal/stages"
	"github.com/satyasetu/go-engine/internal/state"
)

// #region client-struct
// ModelClient wraps the gRPC connection to the Python model service. It
// satisfies both collaborator interfaces the pipeline stages consume.
type ModelClient struct {
	conn   *grpc.ClientConn
	client pb.ModelServiceClient
	topK   int
}

var (
	_ stages.ContextRetriever  = (*ModelClient)(nil)
	_ stages.ResponseGenerator = (*ModelClient)(nil)
)

// #endregion client-struct

// #region constructor
// NewModelClient connects to the model service gRPC server.
func NewModelClient(addr string, topK int) (*ModelClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &ModelClient{
		conn:   conn,
		client: pb.NewModelServiceClient(conn),
		topK:   topK,
	}, nil
}

// NewModelClientWithService creates a ModelClient with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewModelClientWithService(svc pb.ModelServiceClient, topK int) *ModelClient {
	return &ModelClient{client: svc, topK: topK}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *ModelClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region retrieve
// Retrieve asks the model service for context documents matching the query.
func (c *ModelClient) Retrieve(ctx context.Context, intent state.Intent, queryText string) ([]state.ContextDoc, error) {
	resp, err := c.client.Retrieve(ctx, &pb.RetrieveRequest{
		Intent:    string(intent),
		QueryText: queryText,
		TopK:      int32(c.topK),
	})
	if err != nil {
		return nil, fmt.Errorf("retrieve rpc: %w", err)
	}

	docs := make([]state.ContextDoc, len(resp.Docs))
	for i, d := range resp.Docs {
		docs[i] = state.ContextDoc{
			Content:    d.Content,
			Source:     d.Source,
			Confidence: d.Confidence,
		}
	}
	return docs, nil
}

// #endregion retrieve

// #region generate
// Generate sends the assembled prompt to the model service.
func (c *ModelClient) Generate(ctx context.Context, req stages.GenerateRequest) (stages.GenerateResult, error) {
	resp, err := c.client.Generate(ctx, &pb.GenerateRequest{
		Prompt:    req.Prompt,
		QueryText: req.QueryText,
		Intent:    string(req.Intent),
		Language:  string(req.Language),
		Evidence:  req.Evidence,
	})
	if err != nil {
		return stages.GenerateResult{}, fmt.Errorf("generate rpc: %w", err)
	}

	return stages.GenerateResult{
		Text:       resp.Text,
		Confidence: resp.Confidence,
	}, nil
}

// #endregion generate
