package advisor

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"taxguide/internal/calculation"
	"taxguide/internal/domain"
	"taxguide/internal/output"
)

// SessionConfig tunes one conversation.
type SessionConfig struct {
	FiscalYear  string
	Temperature float32
	Knowledge   []KnowledgeFile
}

// Reply is one advisor turn. Result is non-nil when the model invoked the
// calculation tool, in which case Text already contains the rendered report.
type Reply struct {
	Text   string
	Result *domain.TaxComparisonResult
}

// Session owns a single conversation: the running history, the generation
// config, and the tax engine that backs the calculation tool. Tool calls are
// resolved locally and the rendered report is spliced into the history as a
// model turn, so the transcript the model sees stays plain text.
type Session struct {
	client  Client
	engine  *calculation.Engine
	genCfg  *genai.GenerateContentConfig
	opening []*genai.Content
	history []*genai.Content
	log     *zap.Logger
}

// NewSession builds a fresh conversation against the given client.
func NewSession(client Client, engine *calculation.Engine, cfg SessionConfig, log *zap.Logger) *Session {
	if engine == nil {
		engine = calculation.NewEngine()
	}
	if log == nil {
		log = zap.NewNop()
	}
	fiscalYear := cfg.FiscalYear
	if fiscalYear == "" {
		fiscalYear = engine.Rules.FiscalYear
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.4
	}

	s := &Session{
		client: client,
		engine: engine,
		genCfg: &genai.GenerateContentConfig{
			Temperature: genai.Ptr(temperature),
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: SystemPrompt(fiscalYear)}},
			},
			Tools: []*genai.Tool{CalculateTaxTool()},
		},
		log: log,
	}

	if len(cfg.Knowledge) > 0 {
		parts := []*genai.Part{{Text: "Reference documents you may draw on when answering:"}}
		for _, kf := range cfg.Knowledge {
			parts = append(parts, &genai.Part{
				FileData: &genai.FileData{FileURI: kf.URI, MIMEType: kf.MIMEType},
			})
		}
		s.opening = []*genai.Content{{Role: genai.RoleUser, Parts: parts}}
	}
	s.Reset()
	return s
}

// Send delivers one user message and returns the advisor's turn. When the
// model calls the calculation tool, the engine runs locally and the markdown
// report is returned in place of model text.
func (s *Session) Send(ctx context.Context, text string) (*Reply, error) {
	s.history = append(s.history, &genai.Content{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: text}},
	})

	resp, err := s.client.GenerateContent(ctx, s.history, s.genCfg)
	if err != nil {
		s.history = s.history[:len(s.history)-1]
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		s.history = s.history[:len(s.history)-1]
		return nil, fmt.Errorf("model returned no candidates")
	}

	if call := findFunctionCall(resp, CalculateTaxToolName); call != nil {
		reply, err := s.runCalculation(resp, call)
		if err != nil {
			s.history = s.history[:len(s.history)-1]
			return nil, err
		}
		return reply, nil
	}

	replyText := resp.Text()
	if strings.TrimSpace(replyText) == "" {
		s.history = s.history[:len(s.history)-1]
		return nil, fmt.Errorf("model returned an empty response")
	}

	s.history = append(s.history, &genai.Content{
		Role:  genai.RoleModel,
		Parts: []*genai.Part{{Text: replyText}},
	})
	return &Reply{Text: replyText}, nil
}

func (s *Session) runCalculation(resp *genai.GenerateContentResponse, call *genai.FunctionCall) (*Reply, error) {
	in, err := DecodeTaxInput(call.Args)
	if err != nil {
		return nil, fmt.Errorf("model sent unusable calculation arguments: %w", err)
	}

	result := s.engine.Compare(in)
	report, err := (&output.MarkdownFormatter{}).Format(&result)
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	s.log.Info("calculation tool invoked",
		zap.String("recommended", string(result.RecommendedRegime)),
		zap.String("savings", result.Savings.String()))

	var sb strings.Builder
	if lead := strings.TrimSpace(resp.Text()); lead != "" {
		sb.WriteString(lead)
		sb.WriteString("\n\n")
	}
	sb.Write(report)
	replyText := sb.String()

	s.history = append(s.history, &genai.Content{
		Role:  genai.RoleModel,
		Parts: []*genai.Part{{Text: replyText}},
	})
	return &Reply{Text: replyText, Result: &result}, nil
}

// Reset clears the conversation, keeping any knowledge preamble.
func (s *Session) Reset() {
	s.history = append([]*genai.Content(nil), s.opening...)
}

// History exposes the transcript for inspection.
func (s *Session) History() []*genai.Content {
	return s.history
}

func findFunctionCall(resp *genai.GenerateContentResponse, name string) *genai.FunctionCall {
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.FunctionCall != nil && part.FunctionCall.Name == name {
			return part.FunctionCall
		}
	}
	return nil
}
