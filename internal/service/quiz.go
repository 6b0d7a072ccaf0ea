package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/parser"
	"quiz-forge/internal/prompt"
	"quiz-forge/internal/textproc"
	"quiz-forge/internal/util"
	"quiz-forge/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// QuizService defines the interface for the document-to-quiz pipeline
type QuizService interface {
	ProcessDocument(ctx context.Context, path, mimeType, sourceName string) (*domain.Session, error)
	GenerateQuiz(ctx context.Context, sessionID string, req *dto.GenerateQuizRequest) (*domain.Session, error)
	GetQuiz(ctx context.Context, sessionID string) (*domain.QuizResult, error)
	ValidateQuiz(draft *domain.QuizDraft) error
}

// quizService implements QuizService
type quizService struct {
	extractor domain.TextExtractor
	generator domain.TextGenerator
	sessions  domain.SessionStore
	validator *validation.Validator
	cfg       *config.Config
	newID     func() string
	group     singleflight.Group
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	extractor domain.TextExtractor,
	generator domain.TextGenerator,
	sessions domain.SessionStore,
	validator *validation.Validator,
	cfg *config.Config,
) QuizService {
	if validator == nil {
		validator = validation.NewValidatorWithLimits(cfg.Quiz.MinQuestions, cfg.Quiz.MaxQuestions)
	}
	return &quizService{
		extractor: extractor,
		generator: generator,
		sessions:  sessions,
		validator: validator,
		cfg:       cfg,
		newID:     util.NewULID,
	}
}

// ProcessDocument implements QuizService
func (s *quizService) ProcessDocument(ctx context.Context, path, mimeType, sourceName string) (*domain.Session, error) {
	if err := s.extractor.Validate(path, s.cfg.MaxUploadBytes()); err != nil {
		return nil, err
	}

	raw, err := s.extractor.Extract(ctx, path, mimeType)
	if err != nil {
		logger.Get().Warn("QuizService: text extraction failed",
			zap.String("source", sourceName), zap.String("mimeType", mimeType), zap.Error(err))
		return nil, err
	}

	text, err := textproc.Normalize(raw)
	if err != nil {
		return nil, err
	}

	session := domain.NewSession(s.newID(), sourceName, text)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, domain.NewInternalError("Failed to store session", err)
	}

	logger.Get().Info("QuizService: document processed",
		zap.String("sessionID", session.ID),
		zap.String("source", sourceName),
		zap.Int("textLength", utf8.RuneCountInString(text)))
	return session, nil
}

// GenerateQuiz implements QuizService. Identical concurrent requests for the
// same session share a single generation run. The shared run keeps the
// first caller's values but not its cancellation, so one caller giving up does
// not fail the others; the optional model timeout still bounds it.
func (s *quizService) GenerateQuiz(ctx context.Context, sessionID string, req *dto.GenerateQuizRequest) (*domain.Session, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("request body is required")
	}
	if err := s.validator.ValidateSessionID(sessionID); err != nil {
		return nil, err
	}
	difficulty, err := s.validator.ValidateGenerateRequest(req.NumMCQ, req.NumTF, req.Difficulty)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s:%d:%d:%s", sessionID, req.NumMCQ, req.NumTF, difficulty)
	runCtx := context.WithoutCancel(ctx)
	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		return s.generate(runCtx, sessionID, req.NumMCQ, req.NumTF, difficulty)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Get().Debug("QuizService: joined in-flight generation", zap.String("sessionID", sessionID))
	}
	return v.(*domain.Session), nil
}

func (s *quizService) generate(ctx context.Context, sessionID string, numMCQ, numTF int, difficulty domain.Difficulty) (*domain.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	mcq, err := s.generateKind(ctx, session, domain.KindMultipleChoice, numMCQ, difficulty)
	if err != nil {
		return nil, err
	}
	tf, err := s.generateKind(ctx, session, domain.KindTrueFalse, numTF, difficulty)
	if err != nil {
		return nil, err
	}

	draft := &domain.QuizDraft{
		MultipleChoice: mcq,
		TrueFalse:      tf,
		Metadata: domain.QuizMetadata{
			Difficulty:     difficulty,
			TotalQuestions: numMCQ + numTF,
			SourceLength:   utf8.RuneCountInString(session.NormalizedText),
		},
	}

	if s.cfg.Quiz.StrictValidation {
		if err := s.validator.ValidateQuiz(draft); err != nil {
			logger.Get().Warn("QuizService: generated quiz failed validation",
				zap.String("sessionID", sessionID), zap.Error(err))
			return nil, err
		}
	}

	quiz, err := draft.ToResult()
	if err != nil {
		logger.Get().Warn("QuizService: generated quiz cannot be stored",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil, err
	}
	updated := session.WithQuiz(quiz)
	if err := s.sessions.Save(ctx, updated); err != nil {
		return nil, domain.NewInternalError("Failed to store session", err)
	}

	logger.Get().Info("QuizService: quiz generated",
		zap.String("sessionID", sessionID),
		zap.String("difficulty", string(difficulty)),
		zap.Int("requested", numMCQ+numTF),
		zap.Int("generated", quiz.QuestionCount()))
	return updated, nil
}

// generateKind sends one prompt and parses the reply. The model is called
// exactly once per kind.
func (s *quizService) generateKind(ctx context.Context, session *domain.Session, kind domain.QuestionKind, count int, difficulty domain.Difficulty) ([]domain.QuestionRecord, error) {
	callCtx := ctx
	if s.cfg.LLM.RequestTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.cfg.LLM.RequestTimeout)
		defer cancel()
	}

	reply, err := s.generator.Generate(callCtx, prompt.Build(kind, session.NormalizedText, count, difficulty), domain.GenerationOptions{
		Temperature:     s.cfg.LLM.Temperature,
		MaxOutputTokens: s.cfg.LLM.MaxOutputTokens,
	})
	if err != nil {
		logger.Get().Error("QuizService: model call failed",
			zap.String("sessionID", session.ID), zap.String("kind", string(kind)), zap.Error(err))
		return nil, domain.NewGenerationError(kind, err)
	}

	result := parser.Parse(reply, kind)
	fields := []zap.Field{
		zap.String("sessionID", session.ID),
		zap.String("kind", string(kind)),
		zap.String("source", result.Source.String()),
		zap.Int("questions", len(result.Questions)),
	}
	if result.Err != nil {
		logger.Get().Warn("QuizService: reply was not valid JSON, used line fallback", append(fields, zap.Error(result.Err))...)
	} else {
		logger.Get().Debug("QuizService: reply parsed", fields...)
	}
	return result.Questions, nil
}

// GetQuiz implements QuizService
func (s *quizService) GetQuiz(ctx context.Context, sessionID string) (*domain.QuizResult, error) {
	if err := s.validator.ValidateSessionID(sessionID); err != nil {
		return nil, err
	}
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.LastQuiz == nil {
		return nil, domain.NewQuizNotFoundError(sessionID)
	}
	return session.LastQuiz, nil
}

// ValidateQuiz implements QuizService
func (s *quizService) ValidateQuiz(draft *domain.QuizDraft) error {
	return s.validator.ValidateQuiz(draft)
}
