package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"style_server/core/domain"
	"style_server/pkg/apperr"
)

type fakeProfiles struct {
	styles     []domain.StylePreference
	stylesErr  error
	palette    *domain.ColorPalette
	paletteErr error
}

func (f *fakeProfiles) GetStyleProfile(ctx context.Context, userID int64) ([]domain.StylePreference, error) {
	if f.stylesErr != nil {
		return nil, f.stylesErr
	}
	if f.styles == nil {
		return domain.DefaultStyleProfile(), nil
	}
	return f.styles, nil
}

func (f *fakeProfiles) ReplaceStyleProfile(ctx context.Context, userID int64, prefs []domain.StylePreference) error {
	return nil
}

func (f *fakeProfiles) GetColorPalette(ctx context.Context, userID int64) (*domain.ColorPalette, error) {
	if f.paletteErr != nil {
		return nil, f.paletteErr
	}
	if f.palette == nil {
		return nil, apperr.NotFound("Color palette not found")
	}
	return f.palette, nil
}

func (f *fakeProfiles) ReplaceColorPalette(ctx context.Context, palette *domain.ColorPalette) error {
	return nil
}

type fakeGenerator struct {
	reply      string
	err        error
	lastPrompt string
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.lastPrompt = prompt
	return g.reply, g.err
}

type memHistory struct {
	mu        sync.Mutex
	rows      []domain.ChatExchange
	appendErr error
	ctxErrs   []error
}

func (h *memHistory) Append(ctx context.Context, ex *domain.ChatExchange) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ctxErrs = append(h.ctxErrs, ctx.Err())
	if h.appendErr != nil {
		return h.appendErr
	}
	h.rows = append(h.rows, *ex)
	return nil
}

func (h *memHistory) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.ChatExchange, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []domain.ChatExchange
	for i := len(h.rows) - 1; i >= 0 && len(out) < limit; i-- {
		if h.rows[i].UserID == userID {
			out = append(out, h.rows[i])
		}
	}
	return out, nil
}

func TestSendMessage_Success(t *testing.T) {
	gen := &fakeGenerator{reply: "Pair the olive hoodie with dark denim."}
	hist := &memHistory{}
	profiles := &fakeProfiles{palette: &domain.ColorPalette{Colors: [domain.PaletteSize]domain.ColorShare{
		{Color: "#112233", Percentage: 40}, {Color: "#445566", Percentage: 30}, {Color: "", Percentage: 0}, {Color: "#778899", Percentage: 10},
	}}}
	svc := NewService(profiles, gen, hist, Config{})

	reply, err := svc.SendMessage(context.Background(), 1, "  What goes with an olive hoodie? ")
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if reply.Response != gen.reply {
		t.Errorf("Response = %q", reply.Response)
	}
	if reply.Context.PreferredStyles != "Casual, Minimalist, Streetwear, Bohemian" {
		t.Errorf("PreferredStyles = %q", reply.Context.PreferredStyles)
	}
	if reply.Context.PreferredColors != "#112233, #445566, #778899" {
		t.Errorf("PreferredColors = %q", reply.Context.PreferredColors)
	}

	for _, want := range []string{"named Glambot", "help with: What goes with an olive hoodie?", "Preferred Colors: #112233"} {
		if !strings.Contains(gen.lastPrompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, gen.lastPrompt)
		}
	}

	if len(hist.rows) != 1 || hist.rows[0].Message != "What goes with an olive hoodie?" || hist.rows[0].Response != gen.reply {
		t.Errorf("exchange not recorded: %+v", hist.rows)
	}
}

func TestSendMessage_GeneratorFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("upstream 503")}
	hist := &memHistory{}
	svc := NewService(&fakeProfiles{}, gen, hist, Config{})

	reply, err := svc.SendMessage(context.Background(), 1, "hello")
	if err != nil {
		t.Fatalf("SendMessage() must not fail on generator error, got %v", err)
	}
	if reply.Response != FallbackResponse {
		t.Errorf("Response = %q, want fallback", reply.Response)
	}
	if len(hist.ctxErrs) != 0 {
		t.Error("fallback replies must not be recorded")
	}
}

func TestSendMessage_NotSpecifiedContext(t *testing.T) {
	gen := &fakeGenerator{reply: "ok"}
	profiles := &fakeProfiles{
		stylesErr:  apperr.PersistenceFailure("Failed to fetch style profile", errors.New("db down")),
		paletteErr: apperr.PersistenceFailure("Failed to fetch color palette", errors.New("db down")),
	}
	svc := NewService(profiles, gen, &memHistory{}, Config{AssistantName: "Stylo"})

	reply, err := svc.SendMessage(context.Background(), 1, "hi")
	if err != nil {
		t.Fatal(err)
	}
	if reply.Context.PreferredStyles != "Not specified" || reply.Context.PreferredColors != "Not specified" {
		t.Errorf("Context = %+v", reply.Context)
	}
	if !strings.Contains(gen.lastPrompt, "named Stylo") {
		t.Error("assistant name not applied")
	}
}

func TestSendMessage_RecordFailureIsNotSurfaced(t *testing.T) {
	hist := &memHistory{appendErr: errors.New("disk full")}
	svc := NewService(&fakeProfiles{}, &fakeGenerator{reply: "answer"}, hist, Config{})

	reply, err := svc.SendMessage(context.Background(), 1, "hi")
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if reply.Response != "answer" {
		t.Errorf("Response = %q", reply.Response)
	}
}

func TestSendMessage_RecordOutlivesRequest(t *testing.T) {
	hist := &memHistory{}
	svc := NewService(&fakeProfiles{}, &fakeGenerator{reply: "answer"}, hist, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.SendMessage(ctx, 1, "hi"); err != nil {
		t.Fatal(err)
	}
	if len(hist.ctxErrs) != 1 || hist.ctxErrs[0] != nil {
		t.Errorf("append context errors = %v, want a live context", hist.ctxErrs)
	}
}

func TestSendMessage_EmptyMessage(t *testing.T) {
	svc := NewService(&fakeProfiles{}, &fakeGenerator{}, &memHistory{}, Config{})

	if _, err := svc.SendMessage(context.Background(), 1, "   "); !apperr.IsCode(err, apperr.CodeValidationFailed) {
		t.Errorf("error = %v, want VALIDATION_FAILED", err)
	}
}

func TestHistory_NewestFirst(t *testing.T) {
	hist := &memHistory{}
	gen := &fakeGenerator{}
	svc := NewService(&fakeProfiles{}, gen, hist, Config{HistoryLimit: 2})
	ctx := context.Background()

	for _, msg := range []string{"first", "second", "third"} {
		gen.reply = "re: " + msg
		if _, err := svc.SendMessage(ctx, 7, msg); err != nil {
			t.Fatal(err)
		}
	}

	got, err := svc.History(ctx, 7, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want limit 2", len(got))
	}
	if got[0].Message != "third" || got[1].Message != "second" {
		t.Errorf("order = %s, %s", got[0].Message, got[1].Message)
	}
}

func TestJoinOrNotSpecified(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, "Not specified"},
		{[]string{" ", ""}, "Not specified"},
		{[]string{"Casual"}, "Casual"},
		{[]string{"Casual", " Boho "}, "Casual, Boho"},
	}
	for _, tt := range tests {
		if got := joinOrNotSpecified(tt.in); got != tt.want {
			t.Errorf("joinOrNotSpecified(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSaveExchange(t *testing.T) {
	tests := []struct {
		name      string
		exchange  domain.ChatExchange
		appendErr error
		wantCode  string
	}{
		{"saved", domain.ChatExchange{UserID: 4, Message: " what shoes? ", Response: "White sneakers."}, nil, ""},
		{"bad user", domain.ChatExchange{Message: "q", Response: "a"}, nil, apperr.CodeBadRequest},
		{"missing message", domain.ChatExchange{UserID: 4, Response: "a"}, nil, apperr.CodeMissingField},
		{"missing response", domain.ChatExchange{UserID: 4, Message: "q", Response: "  "}, nil, apperr.CodeMissingField},
		{"store down", domain.ChatExchange{UserID: 4, Message: "q", Response: "a"}, errors.New("disk full"), apperr.CodePersistenceFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hist := &memHistory{appendErr: tt.appendErr}
			svc := NewService(&fakeProfiles{}, &fakeGenerator{}, hist, Config{})

			ex := tt.exchange
			err := svc.SaveExchange(context.Background(), &ex)
			if tt.wantCode != "" {
				if !apperr.IsCode(err, tt.wantCode) {
					t.Fatalf("error = %v, want %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(hist.rows) != 1 || hist.rows[0].Message != "what shoes?" || hist.rows[0].Timestamp.IsZero() {
				t.Errorf("stored %+v", hist.rows)
			}
		})
	}
}
