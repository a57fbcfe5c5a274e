package shared

import (
	"strings"

	"github.com/go-playground/validator"
)

type Config struct {
	Sqlite      SqliteConfig      `mapstructure:"sqlite" validate:"required"`
	Aidline     AidlineConfig     `mapstructure:"aidline" validate:"required"`
	SOS         SOSConfig         `mapstructure:"sos"`
	AddressBook AddressBookConfig `mapstructure:"addressBook"`
	Location    LocationConfig    `mapstructure:"location"`
	Gemini      GeminiConfig      `mapstructure:"gemini"`
	Twilio      TwilioConfig      `mapstructure:"twilio"`
	Google      GoogleConfig      `mapstructure:"google"`
	Log         LogConfig         `mapstructure:"log"`
}

type SqliteConfig struct {
	PassPhrase string `mapstructure:"passPhrase" validate:"required"`
}

type AidlineConfig struct {
	PrivateKeyPem     string         `mapstructure:"privateKeyPem" validate:"required"`
	OwnerPasswordHash string         `mapstructure:"ownerPasswordHash"`
	DataDir           string         `mapstructure:"dataDir"`
	Cron              CronConfig     `mapstructure:"cron" validate:"required"`
	Listener          ListenerConfig `mapstructure:"listener" validate:"required"`
}

type SOSConfig struct {
	EmergencyNumber string `mapstructure:"emergencyNumber"`
	Platform        string `mapstructure:"platform" validate:"omitempty,oneof=web android ios"`
	Dispatcher      string `mapstructure:"dispatcher" validate:"omitempty,oneof=intent twilio"`
	MessageDelayMs  int    `mapstructure:"messageDelayMs" validate:"min=0"`
}

type AddressBookConfig struct {
	Path string `mapstructure:"path"`
}

type LocationConfig struct {
	GeoIPDbPath string `mapstructure:"geoipDbPath"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"apiKey"`
	Model  string `mapstructure:"model"`
}

type TwilioConfig struct {
	AccountSid          string `mapstructure:"accountSid" validate:"required_with=AuthToken"`
	AuthToken           string `mapstructure:"authToken"`
	MessagingServiceSid string `mapstructure:"messagingServiceSid"`
	Number              string `mapstructure:"number"`
}

type GoogleConfig struct {
	ApplicationCredentials string        `mapstructure:"applicationCredentials"`
	Storage                StorageConfig `mapstructure:"storage"`
}

type CronConfig struct {
	TimeZone string `mapstructure:"timeZone" validate:"required"`
}

type ListenerConfig struct {
	Port int `mapstructure:"port" validate:"required"`
}

type StorageConfig struct {
	Bucket                    string `mapstructure:"bucket" validate:"required_with=EnableSqliteBackupAndSync"`
	Prefix                    string `mapstructure:"prefix" validate:"required_with=EnableSqliteBackupAndSync"`
	SqliteBackupSchedule      string `mapstructure:"sqliteBackupSchedule" validate:"required_with=EnableSqliteBackupAndSync"`
	EnableSqliteBackupAndSync bool   `mapstructure:"enableSqliteBackupAndSync"`
}

type LogConfig struct {
	File      string `mapstructure:"file"`
	ToConsole bool   `mapstructure:"toConsole"`
}

const (
	DEFAULT_EMERGENCY_NUMBER = "9311314442"
	DEFAULT_GEMINI_MODEL     = "gemini-2.0-flash"
	DEFAULT_MESSAGE_DELAY_MS = 500
)

// ApplyDefaults fills in values left empty in the config file.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.SOS.EmergencyNumber) == "" {
		c.SOS.EmergencyNumber = DEFAULT_EMERGENCY_NUMBER
	}

	if c.SOS.Platform == "" {
		c.SOS.Platform = "android"
	}

	if c.SOS.Dispatcher == "" {
		c.SOS.Dispatcher = "intent"
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = DEFAULT_GEMINI_MODEL
	}
}

// Validate checks the config against its struct tags.
func (c *Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
