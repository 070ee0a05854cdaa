package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"bikeshare/communication"
	"bikeshare/domain/entities/filter"
	"bikeshare/utils"
)

const (
	DefaultConfigFilepath = "./client/config/config.yaml"
	defaultPageSize       = 5
	defaultPublishTimeout = 5 * time.Second
	defaultLogLevel       = "info"
)

var ErrUnknownCity = errors.New("city without configured data source")

var defaultTimestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.000",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// CityConfig contains the data sources of a city
// + File: CSV with the trips of the city
// + StationsFile: optional CSV with name, latitude and longitude of each station
type CityConfig struct {
	File         string `yaml:"file" validate:"required"`
	StationsFile string `yaml:"stations_file"`
}

// ColumnsConfig contains the header name of each field to analyze
type ColumnsConfig struct {
	StartTime    string `yaml:"start_time" validate:"required"`
	EndTime      string `yaml:"end_time"`
	TripDuration string `yaml:"trip_duration" validate:"required"`
	StartStation string `yaml:"start_station" validate:"required"`
	EndStation   string `yaml:"end_station" validate:"required"`
	UserType     string `yaml:"user_type" validate:"required"`
	Gender       string `yaml:"gender"`
	BirthYear    string `yaml:"birth_year"`
}

// PublisherConfig contains the parameters to publish reports in RabbitMQ
type PublisherConfig struct {
	Enabled        bool                                 `yaml:"enabled"`
	RabbitURL      string                               `yaml:"rabbit_url" validate:"required_if=Enabled true"`
	PublishTimeout time.Duration                        `yaml:"publish_timeout" validate:"gte=0"`
	Queue          communication.QueueDeclarationConfig `yaml:"queue"`
}

type ClientConfig struct {
	DataDir          string                `yaml:"data_dir"`
	LogLevel         string                `yaml:"log_level"`
	PageSize         int                   `yaml:"page_size" validate:"gte=0"`
	TimestampLayouts []string              `yaml:"timestamp_layouts"`
	Months           []string              `yaml:"months" validate:"dive,required"`
	Days             []string              `yaml:"days" validate:"dive,required"`
	Cities           map[string]CityConfig `yaml:"cities" validate:"required,min=1,dive"`
	Columns          ColumnsConfig         `yaml:"columns"`
	Publisher        PublisherConfig       `yaml:"publisher"`
}

// LoadConfig reads the config file, applies default values and validates the result
func LoadConfig(configFilepath string) (*ClientConfig, error) {
	if configFilepath == "" {
		configFilepath = DefaultConfigFilepath
	}

	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	return ParseConfig(configFile)
}

// ParseConfig parses a YAML config, applies default values and validates the result
func ParseConfig(content []byte) (*ClientConfig, error) {
	var clientConfig ClientConfig
	err := yaml.Unmarshal(content, &clientConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing client config file: %w", err)
	}

	clientConfig.setDefaults()

	err = validator.New().Struct(clientConfig)
	if err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	if clientConfig.Publisher.Enabled && clientConfig.Publisher.Queue.Name == "" {
		return nil, fmt.Errorf("invalid client config: publisher queue name is required")
	}

	return &clientConfig, nil
}

func (c *ClientConfig) setDefaults() {
	if c.PageSize == 0 {
		c.PageSize = defaultPageSize
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if len(c.TimestampLayouts) == 0 {
		c.TimestampLayouts = defaultTimestampLayouts
	}
	if len(c.Months) == 0 {
		c.Months = filter.DefaultMonths
	}
	if len(c.Days) == 0 {
		c.Days = filter.DefaultDays
	}
	if c.Publisher.PublishTimeout == 0 {
		c.Publisher.PublishTimeout = defaultPublishTimeout
	}

	// city names are matched in lower case
	cities := make(map[string]CityConfig, len(c.Cities))
	for name, cityConfig := range c.Cities {
		cities[normalizeName(name)] = cityConfig
	}
	c.Cities = cities
}

// CityNames returns the configured cities sorted by name
func (c *ClientConfig) CityNames() []string {
	names := make([]string, 0, len(c.Cities))
	for name := range c.Cities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SourcePath returns the path to the trips file of the city
func (c *ClientConfig) SourcePath(city string) (string, error) {
	cityConfig, ok := c.Cities[normalizeName(city)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCity, city)
	}
	return c.resolve(cityConfig.File), nil
}

// StationsPath returns the path to the stations file of the city, or an empty string if it has none
func (c *ClientConfig) StationsPath(city string) (string, error) {
	cityConfig, ok := c.Cities[normalizeName(city)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCity, city)
	}
	if cityConfig.StationsFile == "" {
		return "", nil
	}
	return c.resolve(cityConfig.StationsFile), nil
}

func (c *ClientConfig) resolve(path string) string {
	if filepath.IsAbs(path) || c.DataDir == "" {
		return path
	}
	return filepath.Join(c.DataDir, path)
}

func normalizeName(name string) string {
	return filter.NewSelection(name, "", "").City
}
