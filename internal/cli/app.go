package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/stemsi/quizforge/internal/config"
	"github.com/stemsi/quizforge/internal/database"
	"github.com/stemsi/quizforge/internal/handler"
	"github.com/stemsi/quizforge/internal/logger"
	"github.com/stemsi/quizforge/internal/repository"
	"github.com/stemsi/quizforge/internal/service"
	"github.com/stemsi/quizforge/internal/validator"
)

// handlers is every boundary operation, wired over one storage handle.
type handlers struct {
	subjects    *handler.SubjectHandler
	topics      *handler.TopicHandler
	questions   *handler.QuestionHandler
	quizzes     *handler.QuizHandler
	exams       *handler.ExamHandler
	attempts    *handler.AttemptHandler
	performance *handler.PerformanceHandler
	media       *handler.MediaHandler
}

// app is opened lazily by the first command that needs storage and closed
// once the command tree returns.
type app struct {
	cfg *config.Config
	log zerolog.Logger
	db  *database.Handle
	h   *handlers
}

// open loads configuration, applies flag overrides and wires the layers.
func (a *app) open(cmd *cobra.Command) (*handlers, error) {
	if a.h != nil {
		return a.h, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, cfg)

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())

	db, err := database.Open(cmd.Context(), cfg.DatabasePath, log)
	if err != nil {
		return nil, err
	}

	// ── Repositories ──
	subjectRepo := repository.NewSubjectRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	quizRepo := repository.NewQuizRepository(db)
	examRepo := repository.NewExamRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	performanceRepo := repository.NewPerformanceRepository(db)

	// ── Services ──
	subjectService := service.NewSubjectService(subjectRepo, log)
	topicService := service.NewTopicService(topicRepo, log)
	questionService := service.NewQuestionService(questionRepo, log)
	quizService := service.NewQuizService(quizRepo, log)
	examService := service.NewExamService(examRepo, log)
	attemptService := service.NewAttemptService(attemptRepo, log)
	performanceService := service.NewPerformanceService(performanceRepo)
	mediaService := service.NewMediaService(cfg, log)

	// ── Handlers ──
	v := validator.New()
	a.h = &handlers{
		subjects:    handler.NewSubjectHandler(subjectService, v, log),
		topics:      handler.NewTopicHandler(topicService, v, log),
		questions:   handler.NewQuestionHandler(questionService, v, log),
		quizzes:     handler.NewQuizHandler(quizService, v, log),
		exams:       handler.NewExamHandler(examService, v, log),
		attempts:    handler.NewAttemptHandler(attemptService, v, log),
		performance: handler.NewPerformanceHandler(performanceService, log),
		media:       handler.NewMediaHandler(mediaService, log),
	}
	a.cfg, a.log, a.db = cfg, log, db
	return a.h, nil
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// applyFlags lets --data-dir, --db and --log-level override the environment.
// A new data dir moves the database with it unless QUIZFORGE_DB pins it.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		cfg.DataDir = dir
		if os.Getenv("QUIZFORGE_DB") == "" {
			cfg.DatabasePath = config.DatabasePathIn(dir)
		}
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DatabasePath = p
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
}

// withStorage adapts a handler call into a cobra RunE.
func (a *app) withStorage(fn func(cmd *cobra.Command, h *handlers, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		h, err := a.open(cmd)
		if err != nil {
			return err
		}
		return fn(cmd, h, args)
	}
}
