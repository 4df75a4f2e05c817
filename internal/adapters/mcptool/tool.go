// Package mcptool exposes the recommendation flow over the MCP tool
// protocol. It validates request parameters before any downstream
// component runs and assembles the single response payload.
package mcptool

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"findbgm/internal/core/domain"
	"findbgm/internal/core/services"
)

// API status values reported in search_info.
const (
	StatusActive   = "active"
	StatusMockMode = "mock_mode"
)

// Handler dispatches recommend_background_music calls.
type Handler struct {
	analyzer    *services.Analyzer
	recommender *services.Recommender
	apiStatus   string
	log         *slog.Logger
}

// NewHandler wires the dispatcher to the core services.
func NewHandler(analyzer *services.Analyzer, recommender *services.Recommender, apiStatus string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		analyzer:    analyzer,
		recommender: recommender,
		apiStatus:   apiStatus,
		log:         logger,
	}
}

// Register adds the server's tools.
func Register(s *server.MCPServer, h *Handler) {
	s.AddTool(recommendTool(), h.HandleRecommend)

	s.AddTool(
		mcp.NewTool("ping", mcp.WithDescription("Health check, returns pong")),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)
}

func recommendTool() mcp.Tool {
	return mcp.NewTool("recommend_background_music",
		mcp.WithDescription("Analyze a short-video script and recommend background music tracks matching its mood, theme, and pacing"),
		mcp.WithString("script",
			mcp.Required(),
			mcp.Description("The video script/content text"),
		),
		mcp.WithNumber("duration",
			mcp.Required(),
			mcp.Description("Duration of the short in seconds (15-60)"),
			mcp.Min(domain.MinRequestDuration),
			mcp.Max(domain.MaxRequestDuration),
		),
		mcp.WithString("genre_preference",
			mcp.Description("Optional genre preference"),
			mcp.Enum(domain.Genres...),
			mcp.DefaultString("any"),
		),
		mcp.WithString("mood_preference",
			mcp.Description("Optional mood preference"),
			mcp.Enum(domain.Moods...),
			mcp.DefaultString("any"),
		),
		mcp.WithString("content_type",
			mcp.Description("Type of content being created"),
			mcp.Enum(domain.ContentTypes...),
			mcp.DefaultString("other"),
		),
	)
}

// HandleRecommend validates the request, runs analysis and
// recommendation, and returns the combined payload. Validation
// failures come back as structured tool errors without touching the
// catalog; nothing here is ever fatal to the process.
func (h *Handler) HandleRecommend(ctx context.Context, call mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, err := parseRequest(call.GetArguments())
	if err != nil {
		h.log.Warn("rejected request", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := req.Validate(); err != nil {
		h.log.Warn("rejected request", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	requestID := uuid.NewString()
	h.log.Info("processing request",
		"request_id", requestID,
		"content_type", req.ContentType,
		"duration", req.Duration,
	)

	analysis := h.analyzer.Analyze(req.Script)
	h.log.Info("analysis complete",
		"request_id", requestID,
		"mood", analysis.DetectedMood,
		"theme", analysis.DetectedTheme,
		"pacing", analysis.Pacing,
	)

	recommendations, err := h.recommender.Recommend(ctx, analysis, req)
	if err != nil {
		h.log.Warn("recommendation failed", "request_id", requestID, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("recommendation failed: %v", err)), nil
	}

	payload := response{
		Analysis:        analysis,
		Recommendations: recommendations,
		InputParameters: inputParameters{
			ScriptLength:    len(req.Script),
			Duration:        req.Duration,
			GenrePreference: req.GenrePreference,
			MoodPreference:  req.MoodPreference,
			ContentType:     req.ContentType,
		},
		SearchInfo: searchInfo{
			SearchTermsUsed:      h.recommender.SearchTerms(analysis, req),
			TotalRecommendations: len(recommendations),
			APIStatus:            h.apiStatus,
		},
	}

	body, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode response: %v", err)), nil
	}

	h.log.Info("returning recommendations", "request_id", requestID, "count", len(recommendations))
	return mcp.NewToolResultText(string(body)), nil
}

// parseRequest pulls typed values out of the raw argument map,
// applying the schema defaults for optional fields.
func parseRequest(args map[string]any) (domain.RecommendationRequest, error) {
	script, err := stringArg(args, "script", "")
	if err != nil {
		return domain.RecommendationRequest{}, err
	}
	if _, present := args["script"]; !present {
		return domain.RecommendationRequest{}, domain.ValidationError{Field: "script", Reason: "required"}
	}

	duration, err := intArg(args, "duration")
	if err != nil {
		return domain.RecommendationRequest{}, err
	}

	genre, err := stringArg(args, "genre_preference", "any")
	if err != nil {
		return domain.RecommendationRequest{}, err
	}
	mood, err := stringArg(args, "mood_preference", "any")
	if err != nil {
		return domain.RecommendationRequest{}, err
	}
	contentType, err := stringArg(args, "content_type", "other")
	if err != nil {
		return domain.RecommendationRequest{}, err
	}

	return domain.RecommendationRequest{
		Script:          script,
		Duration:        duration,
		GenrePreference: genre,
		MoodPreference:  mood,
		ContentType:     contentType,
	}, nil
}

func stringArg(args map[string]any, key, fallback string) (string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return fallback, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", domain.ValidationError{Field: key, Reason: "must be a string"}
	}
	return s, nil
}

func intArg(args map[string]any, key string) (int, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return 0, domain.ValidationError{Field: key, Reason: "required"}
	}
	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, domain.ValidationError{Field: key, Reason: "must be an integer"}
		}
		return int(v), nil
	case int:
		return v, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, domain.ValidationError{Field: key, Reason: "must be an integer"}
		}
		return int(n), nil
	default:
		return 0, domain.ValidationError{Field: key, Reason: "must be an integer"}
	}
}
