package main

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"questionnaire-service/internal/app/config"
	"questionnaire-service/internal/app/drivers/database"
	"questionnaire-service/internal/app/drivers/logger"
	"questionnaire-service/internal/app/services/core/questionnaires"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/dto/schema"
)

var rootCmd = &cobra.Command{
	Use:   "questionnaire",
	Short: "Questionnaire definition tooling",
	Long: `Manage questionnaire definitions: import versioned documents,
export them back out, and lint deployed questionnaires for
configuration problems before subjects hit them.`,
	SilenceUsage: true,
}

var importCmd = &cobra.Command{
	Use:   "import <document.json>",
	Short: "Import a questionnaire definition document",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export <questionnaire-id>",
	Short: "Export a questionnaire as a definition document",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var lintFile string

var lintCmd = &cobra.Command{
	Use:   "lint [questionnaire-id]",
	Short: "Report configuration problems in a questionnaire",
	Long: `Lint a deployed questionnaire by id, or lint a definition
document offline with --file before it ever reaches storage.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLint,
}

func main() {
	lintCmd.Flags().StringVarP(&lintFile, "file", "f", "", "lint a definition document instead of a deployed questionnaire")
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(lintCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type cliDeps struct {
	Questionnaires questionnaires.QuestionnaireUsecase
	Zap            *zap.Logger
	Logrus         *logrus.Logger
}

func buildDeps(offline bool) *cliDeps {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	logrusLogger := logger.NewLogrusLogger(internalConfig)

	var repo questionnaires.QuestionnaireRepository
	if offline {
		repo = questionnaires.NewQuestionnaireMemoryRepository()
	} else {
		mongoClient := database.NewMongoDB(driverConfig)
		repo = questionnaires.NewQuestionnaireMongoRepository(mongoClient, driverConfig.MongoDB.DbName)
	}
	usecase := questionnaires.NewQuestionnaireUsecase(repo, zapLogger, internalConfig.Questionnaire.ExtraQuestionTypes)

	return &cliDeps{
		Questionnaires: usecase,
		Zap:            zapLogger,
		Logrus:         logrusLogger,
	}
}

func readDocument(path string) (*schema.QuestionnaireDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var document schema.QuestionnaireDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("cannot parse document %s: %w", path, err)
	}
	return &document, nil
}

func runImport(cmd *cobra.Command, args []string) error {
	deps := buildDeps(false)
	defer deps.Zap.Sync()

	document, err := readDocument(args[0])
	if err != nil {
		return err
	}

	questionnaire, err := deps.Questionnaires.Import(context.Background(), document)
	if err != nil {
		return err
	}
	deps.Logrus.WithField("questionnaire_id", questionnaire.ID).Info("Questionnaire imported")
	fmt.Println(questionnaire.ID)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	deps := buildDeps(false)
	defer deps.Zap.Sync()

	document, err := deps.Questionnaires.Export(context.Background(), args[0], constvars.SchemaVersionCurrent)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func runLint(cmd *cobra.Command, args []string) error {
	offline := lintFile != ""
	if !offline && len(args) == 0 {
		return fmt.Errorf("either a questionnaire id or --file is required")
	}

	deps := buildDeps(offline)
	defer deps.Zap.Sync()
	ctx := context.Background()

	questionnaireID := ""
	if offline {
		document, err := readDocument(lintFile)
		if err != nil {
			return err
		}
		questionnaire, err := deps.Questionnaires.Import(ctx, document)
		if err != nil {
			return err
		}
		questionnaireID = questionnaire.ID
	} else {
		questionnaireID = args[0]
	}

	findings, err := deps.Questionnaires.Lint(ctx, questionnaireID)
	if err != nil {
		return err
	}
	if len(findings) == 0 {
		deps.Logrus.Info("No configuration problems found")
		return nil
	}
	for _, finding := range findings {
		fmt.Println(finding)
	}
	return fmt.Errorf("%d configuration problem(s) found", len(findings))
}
