package codec

import (
	"context"
	"errors"
	"strings"
	"testing"

	pb "github.com/satyasetu/go-engine/gen/modelserve"
	"google.golang.org/grpc"

	"github.com/satyasetu/go-engine/internal/stages"
	"github.com/satyasetu/go-engine/internal/state"
)

// #region mock
type mockModelService struct {
	pb.ModelServiceClient

	retrieveReq  *pb.RetrieveRequest
	retrieveResp *pb.RetrieveResponse
	retrieveErr  error

	generateReq  *pb.GenerateRequest
	generateResp *pb.GenerateResponse
	generateErr  error
}

func (m *mockModelService) Retrieve(_ context.Context, req *pb.RetrieveRequest, _ ...grpc.CallOption) (*pb.RetrieveResponse, error) {
	m.retrieveReq = req
	return m.retrieveResp, m.retrieveErr
}

func (m *mockModelService) Generate(_ context.Context, req *pb.GenerateRequest, _ ...grpc.CallOption) (*pb.GenerateResponse, error) {
	m.generateReq = req
	return m.generateResp, m.generateErr
}

// #endregion mock

// #region constructor-tests
func TestNewModelClientWithService(t *testing.T) {
	c := NewModelClientWithService(&mockModelService{}, 3)
	if c == nil {
		t.Fatal("expected non-nil client")
	}
	if c.client == nil {
		t.Fatal("expected non-nil internal client")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close without connection: %v", err)
	}
}

// #endregion constructor-tests

// #region retrieve-tests
func TestRetrieve_Success(t *testing.T) {
	mock := &mockModelService{
		retrieveResp: &pb.RetrieveResponse{
			Docs: []*pb.ContextDoc{
				{Content: "doc one", Source: "s1", Confidence: 0.95},
				{Content: "doc two", Source: "s2", Confidence: 0.80},
			},
		},
	}
	c := NewModelClientWithService(mock, 3)

	docs, err := c.Retrieve(context.Background(), state.IntentSchemeLookup, "pm kisan status")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(docs))
	}
	if docs[0].Content != "doc one" || docs[0].Source != "s1" || docs[0].Confidence != 0.95 {
		t.Errorf("doc 0 mismatch: %+v", docs[0])
	}
	if mock.retrieveReq.Intent != "scheme_lookup" {
		t.Errorf("expected intent forwarded, got %q", mock.retrieveReq.Intent)
	}
	if mock.retrieveReq.TopK != 3 {
		t.Errorf("expected top_k 3, got %d", mock.retrieveReq.TopK)
	}
}

func TestRetrieve_Error(t *testing.T) {
	mock := &mockModelService{
		retrieveErr: errors.New("rpc failed"),
	}
	c := NewModelClientWithService(mock, 3)

	_, err := c.Retrieve(context.Background(), state.IntentSchemeLookup, "query")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, mock.retrieveErr) {
		t.Errorf("expected wrapped rpc error, got: %v", err)
	}
}

// #endregion retrieve-tests

// #region generate-tests
func TestGenerate_Success(t *testing.T) {
	mock := &mockModelService{
		generateResp: &pb.GenerateResponse{
			Text:       "PM-KISAN pays ₹6000 per year.",
			Confidence: 0.9,
		},
	}
	c := NewModelClientWithService(mock, 3)

	result, err := c.Generate(context.Background(), stages.GenerateRequest{
		Prompt:    "prompt",
		QueryText: "what is pm kisan",
		Intent:    state.IntentSchemeLookup,
		Language:  state.LangEnglish,
		Evidence:  []string{"ev1", "ev2"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Text != "PM-KISAN pays ₹6000 per year." {
		t.Errorf("unexpected text: %q", result.Text)
	}
	if result.Confidence != 0.9 {
		t.Errorf("expected confidence 0.9, got %f", result.Confidence)
	}
	if len(mock.generateReq.Evidence) != 2 {
		t.Errorf("expected evidence forwarded, got %v", mock.generateReq.Evidence)
	}
	if mock.generateReq.Language != "en" {
		t.Errorf("expected language 'en', got %q", mock.generateReq.Language)
	}
}

func TestGenerate_Error(t *testing.T) {
	mock := &mockModelService{
		generateErr: errors.New("rpc failed"),
	}
	c := NewModelClientWithService(mock, 3)

	_, err := c.Generate(context.Background(), stages.GenerateRequest{Prompt: "prompt"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, mock.generateErr) {
		t.Errorf("expected wrapped rpc error, got: %v", err)
	}
}

// #endregion generate-tests

// #region static-tests
func TestStaticRetriever(t *testing.T) {
	r := NewStaticRetriever()

	docs, err := r.Retrieve(context.Background(), state.IntentSchemeLookup, "pm kisan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 canned docs, got %d", len(docs))
	}
	if docs[0].Source != "PM_Kisan_Guidelines.pdf" {
		t.Errorf("unexpected source: %q", docs[0].Source)
	}

	docs, err = r.Retrieve(context.Background(), state.IntentGeneralQuestion, "anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected no docs for general questions, got %d", len(docs))
	}
}

func TestStaticGenerator(t *testing.T) {
	g := NewStaticGenerator()

	tests := []struct {
		intent   state.Intent
		contains string
	}{
		{state.IntentSchemeLookup, "PM-KISAN"},
		{state.IntentScamVerify, "cybercrime.gov.in"},
		{state.IntentGeneralQuestion, "verify messages"},
		{state.IntentOfflineFallback, "verify messages"},
	}
	for _, tt := range tests {
		result, err := g.Generate(context.Background(), stages.GenerateRequest{Intent: tt.intent})
		if err != nil {
			t.Fatalf("intent %s: unexpected error: %v", tt.intent, err)
		}
		if result.Confidence != 0.85 {
			t.Errorf("intent %s: expected confidence 0.85, got %f", tt.intent, result.Confidence)
		}
		if result.Text == "" {
			t.Fatalf("intent %s: empty response", tt.intent)
		}
		if !strings.Contains(result.Text, tt.contains) {
			t.Errorf("intent %s: response %q missing %q", tt.intent, result.Text, tt.contains)
		}
	}
}

// #endregion static-tests
