package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bikeshare/client/config"
	"bikeshare/communication"
	"bikeshare/display"
	"bikeshare/domain/entities/filter"
	"bikeshare/explorer"
	"bikeshare/loader"
)

const (
	configKey   = "config"
	logLevelKey = "log_level"
	dataDirKey  = "data_dir"
)

// session groups what every command needs once flags, env and config file are resolved
type session struct {
	settings     *viper.Viper
	clientConfig *config.ClientConfig
}

func newRootCommand() *cobra.Command {
	s := &session{settings: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "client",
		Short: "Explore US bikeshare data",
		Long: `client loads the trips of a city, filtered by month and day of the week,
and prints statistics about travel times, stations, trip duration and users.

Example usage:
  client                                       # Interactive session
  client report --city chicago --month march   # Print the report of a selection`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withExplorer(cmd, func(ctx context.Context, e *explorer.Explorer) error {
				return e.Run(ctx)
			})
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", fmt.Sprintf("config file (default is %s)", config.DefaultConfigFilepath))
	flags.String("log-level", "", "log level: trace, debug, info, warn, error")
	flags.String("data-dir", "", "directory with the city files, overrides data_dir of the config file")

	_ = s.settings.BindPFlag(configKey, flags.Lookup("config"))
	_ = s.settings.BindPFlag(logLevelKey, flags.Lookup("log-level"))
	_ = s.settings.BindPFlag(dataDirKey, flags.Lookup("data-dir"))
	_ = s.settings.BindEnv(configKey, "BIKESHARE_CONFIG")
	_ = s.settings.BindEnv(logLevelKey, "LOG_LEVEL")
	_ = s.settings.BindEnv(dataDirKey, "BIKESHARE_DATA_DIR")

	rootCmd.AddCommand(newReportCommand(s))
	return rootCmd
}

func newReportCommand(s *session) *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print the statistics of a selection without prompting",
		Long: `Print the statistics of one city, month and day without asking anything.

Examples:
  client report --city washington
  client report --city "new york city" --month june --day sunday`,
		RunE: func(cmd *cobra.Command, args []string) error {
			city, _ := cmd.Flags().GetString("city")
			month, _ := cmd.Flags().GetString("month")
			day, _ := cmd.Flags().GetString("day")

			return s.withExplorer(cmd, func(ctx context.Context, e *explorer.Explorer) error {
				selection, err := e.Selection(city, month, day)
				if err != nil {
					return err
				}
				return e.RunOnce(ctx, selection)
			})
		},
	}

	reportCmd.Flags().String("city", "", "city to analyze")
	reportCmd.Flags().String("month", filter.AllFilter, "month to filter by, or all")
	reportCmd.Flags().String("day", filter.AllFilter, "day of week to filter by, or all")
	_ = reportCmd.MarkFlagRequired("city")

	return reportCmd
}

// setup sets up the logger and loads the config file. The log level given by flag or env
// has priority over the one of the config file
func (s *session) setup() error {
	logLevel := s.settings.GetString(logLevelKey)
	if err := InitLogger(levelOrDefault(logLevel, "info")); err != nil {
		return err
	}

	clientConfig, err := config.LoadConfig(s.settings.GetString(configKey))
	if err != nil {
		return fmt.Errorf("error loading client config: %w", err)
	}

	if dataDir := s.settings.GetString(dataDirKey); dataDir != "" {
		clientConfig.DataDir = dataDir
	}

	if logLevel == "" {
		if err := InitLogger(clientConfig.LogLevel); err != nil {
			return err
		}
	}

	log.Debugf("[component: client][method: setup][status: OK] config loaded: data dir %s, cities %v", clientConfig.DataDir, clientConfig.CityNames())
	s.clientConfig = clientConfig
	return nil
}

// withExplorer builds an explorer over the command streams, runs action and closes the publisher
func (s *session) withExplorer(cmd *cobra.Command, action func(context.Context, *explorer.Explorer) error) error {
	publisher := s.newPublisher()
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Errorf("[component: client][method: withExplorer][status: ERROR] error closing publisher: %s", err.Error())
		}
	}()

	printer := display.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), display.ResolveColors())
	prompter := explorer.NewPrompter(cmd.InOrStdin(), printer)
	e := explorer.NewExplorer(s.clientConfig, loader.NewLoader(s.clientConfig), prompter, printer, publisher)

	return action(cmd.Context(), e)
}

// newPublisher connects to RabbitMQ when publishing is enabled. A broker that cannot be
// reached disables publishing for the run
func (s *session) newPublisher() communication.ReportPublisher {
	publisherConfig := s.clientConfig.Publisher
	if !publisherConfig.Enabled {
		return communication.NoopReportPublisher{}
	}

	publisher, err := communication.NewRabbitReportPublisher(publisherConfig.RabbitURL, publisherConfig.Queue, publisherConfig.PublishTimeout)
	if err != nil {
		log.Warnf("[component: client][method: newPublisher][status: ERROR] reports will not be published: %s", err.Error())
		return communication.NoopReportPublisher{}
	}
	return publisher
}

func levelOrDefault(level string, defaultLevel string) string {
	if level == "" {
		return defaultLevel
	}
	return level
}
