package agent

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"pirate-server/internal/domain"
	"pirate-server/pkg/api"
	"pirate-server/pkg/logger"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// LLMCaptain — капитан на языковой модели. Получает те же доклады, что и
// скриптованный, упаковывает их в короткий брифинг и просит у модели приказ
// в грамматике оригинала: "@<дистанция><N|S|E|W>". Любая ошибка модели —
// откат на эвристику, партия не должна вставать из-за сети.
type LLMCaptain struct {
	model    *genai.GenerativeModel
	client   *genai.Client
	fallback ScriptedCaptain
}

var orderRe = regexp.MustCompile(`@([1-3])([NSEW])`)

// NewLLMCaptain подключается к Gemini. apiKey обязателен.
func NewLLMCaptain(ctx context.Context, apiKey, modelName string) (*LLMCaptain, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}
	return &LLMCaptain{
		model:  client.GenerativeModel(modelName),
		client: client,
	}, nil
}

func (c *LLMCaptain) Close() error {
	return c.client.Close()
}

func (c *LLMCaptain) DecideMove(status domain.Status, scan domain.ScanReport, moves []domain.MoveOption) (api.MovePayload, bool) {
	prompt := c.buildBriefing(status, scan, moves)

	resp, err := c.model.GenerateContent(context.Background(), genai.Text(prompt))
	if err != nil {
		logger.Log.WithError(err).Warn("LLM captain unavailable, falling back to scripted captain")
		return c.fallback.DecideMove(status, scan, moves)
	}

	order := extractText(resp)
	if payload, ok := parseOrder(order, moves); ok {
		logger.Log.WithField("order", strings.TrimSpace(order)).Info("LLM captain gave an order")
		return payload, true
	}

	logger.Log.WithField("order", order).Warn("LLM captain gave an unparseable order, falling back")
	return c.fallback.DecideMove(status, scan, moves)
}

func (c *LLMCaptain) buildBriefing(status domain.Status, scan domain.ScanReport, moves []domain.MoveOption) string {
	var b strings.Builder
	b.WriteString("You are the captain of a pirate ship on a grid map.\n")
	fmt.Fprintf(&b, "Position %s, lives %d, cannonballs %d, treasures %d/%d, score %d.\n",
		status.ShipPosition, status.Lives, status.Cannonballs,
		status.TreasuresCollected, status.TotalTreasures, status.Score)
	fmt.Fprintf(&b, "Navigator report: %s\n", scan.Summary)
	b.WriteString("Available orders:\n")
	for _, m := range moves {
		if m.CanMove {
			fmt.Fprintf(&b, "  %s (%d miles %s) — %s\n", m.CommandFormat, m.Distance, m.Direction, m.RiskAssessment)
		}
	}
	b.WriteString("Answer with exactly one order, e.g. @2N. Collect treasures, avoid monsters.\n")
	return b.String()
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}

// parseOrder достает "@2N" из ответа и сверяет с реально доступными ходами.
func parseOrder(order string, moves []domain.MoveOption) (api.MovePayload, bool) {
	m := orderRe.FindStringSubmatch(order)
	if m == nil {
		return api.MovePayload{}, false
	}
	dist, _ := strconv.Atoi(m[1])

	var dx, dy int
	switch m[2] {
	case "N":
		dy = -dist
	case "S":
		dy = dist
	case "E":
		dx = dist
	case "W":
		dx = -dist
	}

	for _, option := range moves {
		if option.Dx == dx && option.Dy == dy && option.CanMove {
			return api.MovePayload{Dx: dx, Dy: dy}, true
		}
	}
	return api.MovePayload{}, false
}
