/*
Copyright © 2021 Edmond Cotterell

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Daskott/aidline/app"
	"github.com/Daskott/aidline/chat"
	"github.com/Daskott/aidline/colors"
	devConfig "github.com/Daskott/aidline/dev/config"
	"github.com/Daskott/aidline/googleservice"
	"github.com/Daskott/aidline/models"
	"github.com/Daskott/aidline/server/auth/key"
	"github.com/Daskott/aidline/server/logger"
	"github.com/Daskott/aidline/shared"
	"github.com/Daskott/aidline/version"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const CONFIG_FILE_NAME = "config.yml"

var (
	cfgFile  string
	isDevEnv bool

	validate = validator.New()

	// geminiAPI replaces the real completion API when set, for tests
	geminiAPI googleservice.GeminiAPIInterface
)

// rootCmd represents the base command when called without any subcommands
var rootCmd *cobra.Command

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd = createRootCmd()
	rootCmd.Version = fmt.Sprintf("v%s", version.String())

	rootCmd.AddCommand(
		createServerCmd(),
		createProfileCmd(),
		createContactsCmd(),
		createSOSCmd(),
		createChatCmd(),
		createTokenCmd(),
		createPasswdCmd(),
	)
}

func createRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "aidline",
		Short: `aidline keeps your medical profile & emergency contacts close,
and gets help fast when something goes wrong.

Pressing SOS texts your location to your emergency contacts and then calls
emergency services. A health assistant can answer questions with your
medical profile in mind.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/aidline/config.yml)")
	cmd.PersistentFlags().BoolVarP(&isDevEnv, "dev", "", false, "run in development mode")

	return cmd
}

// loadConfig reads in the config file, .env & ENV variables, then validates
// the result. A default config file is created if none exists.
func loadConfig() (shared.Config, error) {
	result := shared.Config{}

	// A missing .env is fine, it's only a convenience for secrets
	_ = godotenv.Load()

	config := viper.New()

	if cfgFile != "" {
		// Use config file from the flag.
		config.SetConfigFile(cfgFile)
	} else {
		configDir, err := shared.ConfigDirectory(isDevEnv)
		if err != nil {
			return result, err
		}

		// If config file is not found, create one using defaultConfigValue
		configFilePath := filepath.Join(configDir, CONFIG_FILE_NAME)
		if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
			content, err := defaultConfigValue()
			if err != nil {
				return result, err
			}

			err = ioutil.WriteFile(configFilePath, []byte(content), 0600)
			if err != nil {
				return result, err
			}
		}

		config.SetConfigFile(configFilePath)
	}

	config.SetDefault("sos.messageDelayMs", shared.DEFAULT_MESSAGE_DELAY_MS)
	config.SetDefault("aidline.cron.timeZone", "UTC")
	config.SetDefault("aidline.listener.port", 3000)

	// Secrets can live in the ENV instead of the config file.
	// FYI: The env var overrides whatever is in the config file
	config.BindEnv("gemini.apiKey", "GEMINI_API_KEY")
	config.BindEnv("twilio.authToken", "TWILIO_AUTH_TOKEN")
	config.BindEnv("sqlite.passPhrase", "SQLITE_PASSPHRASE")
	config.BindEnv("google.applicationCredentials", "GOOGLE_APPLICATION_CREDENTIALS")

	config.SetEnvPrefix("aidline")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv() // read in environment variables that match

	if err := config.ReadInConfig(); err != nil {
		return result, fmt.Errorf("error reading config file: %v", err)
	}

	if err := config.Unmarshal(&result); err != nil {
		return result, fmt.Errorf("unable to decode config: %v", err)
	}

	result.ApplyDefaults()
	if err := result.Validate(); err != nil {
		return result, formattedError("invalid config in %s: %v", config.ConfigFileUsed(), err)
	}

	if result.Log.File != "" {
		logger.SetOutput(result.Log.File, result.Log.ToConsole)
	}

	return result, nil
}

// setupApp loads the config, opens the db & wires the app for commands that
// need more than the config
func setupApp(ctx context.Context) (*app.App, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, err
	}

	dataDir, err := config.DataDirectory(isDevEnv)
	if err != nil {
		return nil, err
	}

	// Release any db opened by a previous command in the same process
	models.Close()

	err = models.AutoMigrate(config.Sqlite.PassPhrase, dataDir)
	if err != nil {
		return nil, err
	}

	a, err := app.New(ctx, config)
	if err != nil {
		return nil, err
	}

	if geminiAPI != nil {
		a.Gemini = geminiAPI
		a.Chat = chat.NewSession(geminiAPI, models.FindProfile)
	}

	return a, nil
}

// defaultConfigValue returns the default content for config.yml, with a
// fresh signing key & db pass phrase
func defaultConfigValue() (string, error) {
	privateKeyPem, err := key.GeneratePem()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(devConfig.CONFIG_YML_TEMPLATE, strconv.Quote(string(privateKeyPem)), strconv.Quote(uuid.NewString())), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func formattedError(format string, a ...interface{}) error {
	return fmt.Errorf(colors.Red(format), a...)
}
