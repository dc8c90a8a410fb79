// Package mcp exposes the gardening responder as Model Context Protocol
// tools so assistants can query it over stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/alexanderramin/smartfarm/internal/domain"
	"github.com/alexanderramin/smartfarm/internal/knowledge"
	"github.com/alexanderramin/smartfarm/internal/responder"
	"github.com/alexanderramin/smartfarm/internal/service"
)

// Server wraps the responder and exposes it as MCP tools. Calls are
// stateless: nothing is written to the chat history.
type Server struct {
	server    *gomcp.Server
	responder *responder.Responder
	profiles  service.ProfileService
	now       func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithClock replaces the wall clock used for the default month.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// NewServer creates the MCP server. profiles may be nil, in which case
// every call starts from an empty profile.
func NewServer(r *responder.Responder, profiles service.ProfileService, version string, opts ...Option) *Server {
	if version == "" {
		version = "dev"
	}
	s := &Server{responder: r, profiles: profiles, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	s.server = gomcp.NewServer(&gomcp.Implementation{Name: "smartfarm", Version: version}, nil)
	s.registerTools()
	return s
}

// Run serves over stdio until the client disconnects or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying server for in-memory transports.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type askInput struct {
	Question   string `json:"question" jsonschema:"the gardening question in plain language"`
	Month      *int   `json:"month,omitempty" jsonschema:"calendar month 0 (January) to 11 (December); defaults to the current month"`
	Name       string `json:"name,omitempty" jsonschema:"gardener name, overrides the stored profile"`
	Location   string `json:"location,omitempty" jsonschema:"gardener location, overrides the stored profile"`
	Experience string `json:"experience,omitempty" jsonschema:"beginner, intermediate or advanced"`
	GardenType string `json:"garden_type,omitempty" jsonschema:"indoor, outdoor, urban or farm"`
}

type askOutput struct {
	Answer  string `json:"answer"`
	Topic   string `json:"topic,omitempty"`
	Matched bool   `json:"matched"`
}

type topicInput struct {
	TopicID string `json:"topic_id" jsonschema:"one of the ids returned by list_topics"`
	Month   *int   `json:"month,omitempty" jsonschema:"calendar month 0 (January) to 11 (December); defaults to the current month"`
}

type topicOutput struct {
	Topic  string `json:"topic"`
	Answer string `json:"answer"`
}

type listTopicsInput struct{}

type listTopicsOutput struct {
	Topics []string `json:"topics"`
	Count  int      `json:"count"`
}

type reminderInput struct {
	Month *int `json:"month,omitempty" jsonschema:"calendar month 0 (January) to 11 (December); defaults to the current month"`
}

type reminderOutput struct {
	Reminder string `json:"reminder"`
	Season   string `json:"season"`
	Advice   string `json:"advice"`
	Month    int    `json:"month"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "ask",
		Description: "Answer a gardening or farming question, personalized to the gardener's experience, garden type and the season.",
	}, s.handleAsk)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "topic",
		Description: "Get the personalized overview for one knowledge topic.",
	}, s.handleTopic)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_topics",
		Description: "List the knowledge topic ids in matching order.",
	}, s.handleListTopics)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "seasonal_reminder",
		Description: "Get the seasonal gardening reminder for a month.",
	}, s.handleSeasonalReminder)
}

// --- Tool handlers ---

func (s *Server) handleAsk(ctx context.Context, _ *gomcp.CallToolRequest, input askInput) (*gomcp.CallToolResult, askOutput, error) {
	profile, err := s.profileFor(ctx, input)
	if err != nil {
		return errorResult(err.Error()), askOutput{}, nil
	}

	month := s.month(input.Month)
	m := s.responder.Match(input.Question)
	return nil, askOutput{
		Answer:  s.responder.GenerateResponse(input.Question, profile, month),
		Topic:   m.TopicID,
		Matched: m.Matched,
	}, nil
}

func (s *Server) handleTopic(ctx context.Context, _ *gomcp.CallToolRequest, input topicInput) (*gomcp.CallToolResult, topicOutput, error) {
	if input.TopicID == "" {
		return errorResult("topic_id is required"), topicOutput{}, nil
	}
	profile, err := s.storedProfile(ctx)
	if err != nil {
		return errorResult(err.Error()), topicOutput{}, nil
	}

	answer, err := s.responder.TopicResponse(input.TopicID, profile, s.month(input.Month))
	if errors.Is(err, responder.ErrUnknownTopic) {
		return errorResult(fmt.Sprintf("%s; known topics: %v", err, s.responder.TopicIDs())), topicOutput{}, nil
	}
	if err != nil {
		return errorResult(err.Error()), topicOutput{}, nil
	}
	return nil, topicOutput{Topic: input.TopicID, Answer: answer}, nil
}

func (s *Server) handleListTopics(_ context.Context, _ *gomcp.CallToolRequest, _ listTopicsInput) (*gomcp.CallToolResult, listTopicsOutput, error) {
	ids := s.responder.TopicIDs()
	return nil, listTopicsOutput{Topics: ids, Count: len(ids)}, nil
}

func (s *Server) handleSeasonalReminder(_ context.Context, _ *gomcp.CallToolRequest, input reminderInput) (*gomcp.CallToolResult, reminderOutput, error) {
	month := knowledge.NormalizeMonth(s.month(input.Month))
	entry := s.responder.Season(month)
	return nil, reminderOutput{
		Reminder: s.responder.SeasonalReminder(month),
		Season:   entry.Season,
		Advice:   entry.Advice,
		Month:    month,
	}, nil
}

// --- Helpers ---

func (s *Server) month(m *int) int {
	if m != nil {
		return *m
	}
	return knowledge.MonthIndex(s.now())
}

func (s *Server) storedProfile(ctx context.Context) (domain.UserProfile, error) {
	if s.profiles == nil {
		return domain.UserProfile{}, nil
	}
	p, err := s.profiles.Current(ctx)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("loading profile: %w", err)
	}
	return p, nil
}

// profileFor overlays the per-call fields onto the stored profile.
func (s *Server) profileFor(ctx context.Context, input askInput) (domain.UserProfile, error) {
	p, err := s.storedProfile(ctx)
	if err != nil {
		return p, err
	}
	p.Name = domain.CoalesceTrimmed(input.Name, p.Name)
	p.Location = domain.CoalesceTrimmed(input.Location, p.Location)
	if input.Experience != "" {
		p.Experience = domain.Experience(input.Experience)
	}
	if input.GardenType != "" {
		p.GardenType = domain.GardenType(input.GardenType)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
