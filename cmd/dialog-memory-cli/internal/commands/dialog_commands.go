package commands

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/dialog-memory/internal/app"
	"github.com/MGTheTrain/dialog-memory/internal/domain/statements"
	"github.com/MGTheTrain/dialog-memory/internal/infrastructure/persistence"
	"github.com/MGTheTrain/dialog-memory/internal/pkg/config"
	"github.com/MGTheTrain/dialog-memory/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// DialogCommandHandler encapsulates the services used by the dialog commands.
type DialogCommandHandler struct {
	db               *gorm.DB
	statementService statements.StatementService
	responseService  statements.ResponseService
	logger           logger.Logger
}

// NewDialogCommandHandler opens the database described by settings, migrates it
// and wires the statement and response services.
func NewDialogCommandHandler(settings config.DatabaseSettings, logLevel string) (*DialogCommandHandler, error) {
	loggerInstance, err := setupLogger(logLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	db, err := persistence.NewDBConnection(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		_ = persistence.CloseDB(db)
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	statementRepo, err := persistence.NewGormStatementRepository(db, loggerInstance)
	if err != nil {
		return nil, err
	}

	responseRepo, err := persistence.NewGormResponseRepository(db, loggerInstance)
	if err != nil {
		return nil, err
	}

	statementService, err := app.NewStatementService(statementRepo, loggerInstance)
	if err != nil {
		return nil, err
	}

	responseService, err := app.NewResponseService(statementRepo, responseRepo, loggerInstance)
	if err != nil {
		return nil, err
	}

	return &DialogCommandHandler{
		db:               db,
		statementService: statementService,
		responseService:  responseService,
		logger:           loggerInstance,
	}, nil
}

// Close releases the database connection.
func (h *DialogCommandHandler) Close() error {
	return persistence.CloseDB(h.db)
}

// LearnCmd records the second argument as a reply to the first one
func (h *DialogCommandHandler) LearnCmd(cmd *cobra.Command, args []string) error {
	response, err := h.responseService.Learn(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
		"response":   response.String(),
		"occurrence": response.Occurrence,
	})
}

// ShowCmd prints the serialized form of a statement
func (h *DialogCommandHandler) ShowCmd(cmd *cobra.Command, args []string) error {
	statement, err := h.statementService.GetByText(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), statement.Serialize())
}

// CountCmd prints how often the second argument followed the first one
func (h *DialogCommandHandler) CountCmd(cmd *cobra.Command, args []string) error {
	statement, err := h.statementService.GetByText(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), statement.GetResponseCount(args[1]))
	return err
}

// ResponsesCmd lists the replies of a statement, most frequent first
func (h *DialogCommandHandler) ResponsesCmd(cmd *cobra.Command, args []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("invalid limit flag: %w", err)
	}

	statement, err := h.statementService.GetByText(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	responses, err := h.responseService.ListResponses(cmd.Context(), statement.ID, limit)
	if err != nil {
		return err
	}

	serialized := make([]statements.SerializedResponse, 0, len(responses))
	for _, response := range responses {
		serialized = append(serialized, response.Serialize())
	}
	return writeJSON(cmd.OutOrStdout(), serialized)
}

// ForgetCmd removes the reply given as second argument from the first statement
func (h *DialogCommandHandler) ForgetCmd(cmd *cobra.Command, args []string) error {
	statement, err := h.statementService.GetByText(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	removed, err := h.responseService.RemoveResponse(cmd.Context(), statement.ID, args[1])
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), removed)
	return err
}

// AnnotateCmd sets an extra data entry; the value is stored as JSON when it parses as such
func (h *DialogCommandHandler) AnnotateCmd(cmd *cobra.Command, args []string) error {
	statement, err := h.statementService.GetOrCreate(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	statement, err = h.statementService.AddExtraData(cmd.Context(), statement.ID, args[1], parseValue(args[2]))
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), statement.Serialize())
}

// NewRootCmd builds the dialog-memory-cli command tree. The database is opened
// before each sub-command runs, once the flags are parsed.
func NewRootCmd() *cobra.Command {
	var handler *DialogCommandHandler

	rootCmd := &cobra.Command{
		Use:   "dialog-memory-cli",
		Short: "Inspect and train a dialog memory store",
		Long: `dialog-memory-cli records which statements follow one another in a
conversation and how often, backed by a SQLite file or a PostgreSQL database.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" {
				return nil
			}

			settings, logLevel, err := settingsFromFlags(cmd)
			if err != nil {
				return err
			}

			handler, err = NewDialogCommandHandler(settings, logLevel)
			return err
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.String(flagDBType, config.SqliteDbType, "Database type (sqlite or postgres)")
	flags.String(flagDSN, "", "SQLite file path or PostgreSQL connection string (sqlite defaults to "+defaultSQLiteDSN+")")
	flags.String(flagDBName, "", "PostgreSQL database to create and use")
	flags.String(flagLogLevel, config.LogLevelError, "Log level (debug, info, warning, error, critical)")

	// run defers to the handler built in PersistentPreRunE and closes it afterwards
	run := func(fn func(*DialogCommandHandler, *cobra.Command, []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			defer func() {
				if err := handler.Close(); err != nil {
					handler.logger.Warn("failed to close database: ", err)
				}
			}()
			return fn(handler, cmd, args)
		}
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "learn <statement> <response>",
		Short: "Record a response to a statement",
		Args:  cobra.ExactArgs(2),
		RunE:  run((*DialogCommandHandler).LearnCmd),
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "show <statement>",
		Short: "Print a statement with its responses",
		Args:  cobra.ExactArgs(1),
		RunE:  run((*DialogCommandHandler).ShowCmd),
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "count <statement> <response>",
		Short: "Print how often a response followed a statement",
		Args:  cobra.ExactArgs(2),
		RunE:  run((*DialogCommandHandler).CountCmd),
	})

	responsesCmd := &cobra.Command{
		Use:   "responses <statement>",
		Short: "List the responses of a statement, most frequent first",
		Args:  cobra.ExactArgs(1),
		RunE:  run((*DialogCommandHandler).ResponsesCmd),
	}
	responsesCmd.Flags().Int("limit", 0, "Maximum number of responses, 0 lists all")
	rootCmd.AddCommand(responsesCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "forget <statement> <response>",
		Short: "Remove a response from a statement",
		Args:  cobra.ExactArgs(2),
		RunE:  run((*DialogCommandHandler).ForgetCmd),
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "annotate <statement> <key> <value>",
		Short: "Set an extra data entry of a statement",
		Args:  cobra.ExactArgs(3),
		RunE:  run((*DialogCommandHandler).AnnotateCmd),
	})

	return rootCmd
}

func settingsFromFlags(cmd *cobra.Command) (config.DatabaseSettings, string, error) {
	var settings config.DatabaseSettings
	var errs []error

	dbType, err := cmd.Flags().GetString(flagDBType)
	errs = append(errs, err)
	dsn, err := cmd.Flags().GetString(flagDSN)
	errs = append(errs, err)
	dbName, err := cmd.Flags().GetString(flagDBName)
	errs = append(errs, err)
	logLevel, err := cmd.Flags().GetString(flagLogLevel)
	errs = append(errs, err)

	if err := errors.Join(errs...); err != nil {
		return settings, "", fmt.Errorf("invalid flags: %w", err)
	}

	if dsn == "" && dbType == config.SqliteDbType {
		dsn = defaultSQLiteDSN
	}

	settings = config.DatabaseSettings{
		Type:   dbType,
		DSN:    dsn,
		DBName: dbName,
	}
	return settings, logLevel, nil
}
