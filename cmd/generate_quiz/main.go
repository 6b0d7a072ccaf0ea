package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"quiz-forge/internal/adapter/extractor"
	"quiz-forge/internal/adapter/llm"
	"quiz-forge/internal/adapter/session"
	"quiz-forge/internal/config"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/export"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/service"
	"quiz-forge/internal/validation"

	"go.uber.org/zap"
)

type options struct {
	file       string
	numMCQ     int
	numTF      int
	difficulty string
	format     string
	out        string
}

func main() {
	var opts options
	flag.StringVar(&opts.file, "file", "", "PDF or TXT document to generate questions from (required)")
	flag.IntVar(&opts.numMCQ, "mcq", 5, "number of multiple choice questions")
	flag.IntVar(&opts.numTF, "tf", 5, "number of true/false questions")
	flag.StringVar(&opts.difficulty, "difficulty", "Medium", "Easy, Medium or Hard")
	flag.StringVar(&opts.format, "format", "json", "output format: json, csv, txt, html or xlsx")
	flag.StringVar(&opts.out, "out", "", "output file (default stdout)")
	flag.Parse()

	if opts.file == "" {
		flag.Usage()
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, opts); err != nil {
		logger.Get().Error("Quiz generation failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, opts options) error {
	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	generator, err := llm.NewTextGenerator(ctx, cfg.LLM)
	if err != nil {
		return err
	}
	if closer, ok := generator.(io.Closer); ok {
		defer closer.Close()
	}

	validator := validation.NewValidatorWithLimits(cfg.Quiz.MinQuestions, cfg.Quiz.MaxQuestions)
	quizService := service.NewQuizService(
		extractor.NewDocumentExtractor(),
		generator,
		session.NewMemoryStore(0),
		validator,
		cfg,
	)

	// An empty MIME type lets the extractor decide from the file extension.
	sess, err := quizService.ProcessDocument(ctx, opts.file, "", filepath.Base(opts.file))
	if err != nil {
		return err
	}
	logger.Get().Info("Document processed",
		zap.String("file", opts.file),
		zap.Int("textLength", len([]rune(sess.NormalizedText))))

	sess, err = quizService.GenerateQuiz(ctx, sess.ID, &dto.GenerateQuizRequest{
		NumMCQ:     opts.numMCQ,
		NumTF:      opts.numTF,
		Difficulty: opts.difficulty,
	})
	if err != nil {
		return err
	}

	doc, err := export.NewExporter().Export(sess.LastQuiz, format)
	if err != nil {
		return err
	}

	if opts.out == "" {
		_, err = os.Stdout.Write(doc.Body)
		return err
	}
	if err := os.WriteFile(opts.out, doc.Body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.out, err)
	}
	logger.Get().Info("Quiz written",
		zap.String("out", opts.out),
		zap.String("format", string(format)),
		zap.Int("questions", sess.LastQuiz.QuestionCount()))
	return nil
}
