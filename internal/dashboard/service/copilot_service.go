package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/dashboard/repository"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"
	"golang-stock-sentiment/pkg/telegram"
	"golang-stock-sentiment/pkg/utils"

	"github.com/google/uuid"
)

const (
	OutcomeNeedsClarification = "needs_clarification"
	OutcomeComplete           = "complete"
	OutcomeFailed             = "failed"

	ConversationIdle             = "idle"
	ConversationAwaitingResponse = "awaiting_response"
)

// JobSink receives every job the copilot creates.
type JobSink interface {
	Deliver(ctx context.Context, job entity.Job) error
}

type streamJobSink struct {
	repo repository.JobStreamRepository
}

// NewStreamJobSink delivers jobs to the job stream.
func NewStreamJobSink(repo repository.JobStreamRepository) JobSink {
	return &streamJobSink{repo: repo}
}

func (s *streamJobSink) Deliver(ctx context.Context, job entity.Job) error {
	return s.repo.Publish(ctx, job)
}

type telegramJobSink struct {
	notifier telegram.Notifier
}

// NewTelegramJobSink announces jobs in the configured Telegram chat.
func NewTelegramJobSink(notifier telegram.Notifier) JobSink {
	return &telegramJobSink{notifier: notifier}
}

func (s *telegramJobSink) Deliver(_ context.Context, job entity.Job) error {
	return s.notifier.SendMessage(telegram.FormatJobCreated(job))
}

// CopilotService runs trading copilot conversations. Each submitted message
// is one round trip to the chat backend and yields exactly one assistant
// message.
type CopilotService interface {
	StartConversation(ctx context.Context, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error)
	SendMessage(ctx context.Context, id string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	GetConversation(ctx context.Context, id string) (*dto.ConversationResponse, error)
	EndConversation(ctx context.Context, id string) error
}

type conversation struct {
	id     string
	ticker string

	mu           sync.Mutex
	messages     []entity.Message
	jobs         []entity.Job
	pending      int
	needsDetails bool
}

type copilotService struct {
	chatRepo     repository.ChatRepository
	sinks        []JobSink
	historyTurns int
	logger       *logger.Logger
	now          func() time.Time

	mu            sync.RWMutex
	conversations map[string]*conversation
}

// NewCopilotService creates a new copilot service. historyTurns is how many
// transcript messages accompany each request; zero sends only the new
// message. Nil sinks are ignored.
func NewCopilotService(chatRepo repository.ChatRepository, historyTurns int, log *logger.Logger, sinks ...JobSink) CopilotService {
	s := &copilotService{
		chatRepo:      chatRepo,
		historyTurns:  historyTurns,
		logger:        log,
		now:           time.Now,
		conversations: make(map[string]*conversation),
	}
	for _, sink := range sinks {
		if sink != nil {
			s.sinks = append(s.sinks, sink)
		}
	}
	return s
}

func (s *copilotService) StartConversation(_ context.Context, req *dto.CreateConversationRequest) (*dto.ConversationResponse, error) {
	ticker := strings.ToUpper(strings.TrimSpace(req.Ticker))
	if ticker == "" {
		return nil, ErrNoTicker
	}

	conv := &conversation{id: uuid.NewString(), ticker: ticker}
	s.mu.Lock()
	s.conversations[conv.id] = conv
	s.mu.Unlock()

	s.logger.Info("Conversation started", logger.StringField("conversation_id", conv.id), logger.StringField("ticker", ticker))
	return conv.snapshot(), nil
}

func (s *copilotService) GetConversation(_ context.Context, id string) (*dto.ConversationResponse, error) {
	conv, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return conv.snapshot(), nil
}

func (s *copilotService) EndConversation(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.conversations[id]; !ok {
		return fmt.Errorf("conversation %s: %w", id, ErrViewNotFound)
	}
	delete(s.conversations, id)
	return nil
}

// SendMessage appends the user's text, performs one chat round trip and
// appends the reply. Blank text is rejected before anything is appended.
// Concurrent calls are independent round trips; their messages interleave
// in completion order.
func (s *copilotService) SendMessage(ctx context.Context, id string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyMessage
	}
	conv, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	conv.mu.Lock()
	conv.messages = append(conv.messages, entity.Message{
		Role:      entity.RoleUser,
		Content:   content,
		CreatedAt: s.now(),
	})
	conv.pending++
	turns := s.history(conv.messages)
	conv.mu.Unlock()

	reply, err := s.chatRepo.Chat(ctx, turns)
	if err != nil {
		s.logger.Error("Copilot round trip failed", logger.ErrorField(err), logger.StringField("conversation_id", id))
		reply = entity.Failed{Reason: err.Error()}
	}

	resp := &dto.SendMessageResponse{}
	assistant := entity.Message{Role: entity.RoleAssistant, CreatedAt: s.now()}

	conv.mu.Lock()
	conv.pending--
	switch r := reply.(type) {
	case entity.NeedsClarification:
		assistant.Content = r.Message
		assistant.Specify = utils.ToPointer(true)
		conv.needsDetails = true
		resp.Outcome = OutcomeNeedsClarification
	case entity.Complete:
		assistant.Content = r.Message
		assistant.Specify = utils.ToPointer(false)
		job := entity.Job{
			ID:             uuid.NewString(),
			ConversationID: conv.id,
			Instruction:    r.Instruction,
			Status:         entity.JobStatusPending,
			CreatedAt:      assistant.CreatedAt,
		}
		conv.jobs = append(conv.jobs, job)
		conv.needsDetails = false
		resp.Outcome = OutcomeComplete
		resp.Job = &job
	default:
		assistant.Content = common.ChatGenericErrorReply
		resp.Outcome = OutcomeFailed
	}
	conv.messages = append(conv.messages, assistant)
	conv.mu.Unlock()

	resp.Reply = assistant
	if resp.Job != nil {
		s.logger.Info("Copilot job created",
			logger.StringField("conversation_id", id),
			logger.StringField("job_id", resp.Job.ID),
			logger.StringField("instruction", resp.Job.Instruction.Summary()))
		s.deliver(context.WithoutCancel(ctx), *resp.Job)
	}
	return resp, nil
}

// deliver hands job to every sink. Sink failures are logged only.
func (s *copilotService) deliver(ctx context.Context, job entity.Job) {
	for _, sink := range s.sinks {
		if err := sink.Deliver(ctx, job); err != nil {
			s.logger.Warn("Failed to deliver job", logger.ErrorField(err), logger.StringField("job_id", job.ID))
		}
	}
}

// history returns the turns sent with a request: the newest message plus
// up to historyTurns earlier ones.
func (s *copilotService) history(messages []entity.Message) []entity.Message {
	n := s.historyTurns + 1
	if n > len(messages) {
		n = len(messages)
	}
	turns := make([]entity.Message, n)
	copy(turns, messages[len(messages)-n:])
	return turns
}

func (s *copilotService) lookup(id string) (*conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conv, ok := s.conversations[id]
	if !ok {
		return nil, fmt.Errorf("conversation %s: %w", id, ErrViewNotFound)
	}
	return conv, nil
}

func (c *conversation) snapshot() *dto.ConversationResponse {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp := &dto.ConversationResponse{
		ID:           c.id,
		Ticker:       c.ticker,
		State:        ConversationIdle,
		NeedsDetails: c.needsDetails,
		Messages:     append([]entity.Message{}, c.messages...),
		Jobs:         append([]entity.Job{}, c.jobs...),
	}
	if c.pending > 0 {
		resp.State = ConversationAwaitingResponse
	}
	if c.needsDetails {
		resp.InputPlaceholder = "Please provide more details..."
	} else {
		resp.InputPlaceholder = fmt.Sprintf("Ask about %s stock...", c.ticker)
	}
	return resp
}
