package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// BotConfig holds the configuration for the bot.
type BotConfig struct {
	ApiId        int32   // ApiId is the Telegram API ID.
	ApiHash      string  // ApiHash is the Telegram API hash.
	Token        string  // Token is the bot token.
	MongoUri     string  // MongoUri is the MongoDB connection string.
	DbName       string  // DbName is the name of the database.
	OwnerId      int64   // OwnerId is the user ID of the bot owner.
	LoggerId     int64   // LoggerId is the group ID of the bot logger.
	ApiUrl       string  // ApiUrl is the URL of the music resolver API.
	ApiKey       string  // ApiKey is the music resolver API key.
	DownloadsDir string  // DownloadsDir is the directory where downloads are stored.
	MaxFileSize  int64   // MaxFileSize is the maximum file size for downloads.
	DEVS         []int64 // DEVS is a list of developer user IDs.
}

// Conf is the global configuration for the bot.
var Conf *BotConfig

// LoadConfig loads the configuration from environment variables and sets the global Conf.
// It returns an error if a required value is missing.
func LoadConfig() error {
	_ = godotenv.Load()

	Conf = &BotConfig{
		ApiId:        getEnvInt32("API_ID", 0),
		ApiHash:      os.Getenv("API_HASH"),
		Token:        os.Getenv("TOKEN"),
		MongoUri:     os.Getenv("MONGO_URI"),
		DbName:       getEnvStr("DB_NAME", "GroupGuard"),
		OwnerId:      getEnvInt64("OWNER_ID", 0),
		LoggerId:     getEnvInt64("LOGGER_ID", 0),
		ApiUrl:       strings.TrimRight(getEnvStr("API_URL", "https://tgmusic.fallenapi.fun"), "/"),
		ApiKey:       os.Getenv("API_KEY"),
		DownloadsDir: getEnvStr("DOWNLOADS_DIR", "downloads"),
		MaxFileSize:  getEnvInt64("MAX_FILE_SIZE", 500*1024*1024),
	}

	// Parse DEVS list
	devsEnv := os.Getenv("DEVS")
	if devsEnv != "" {
		for _, idStr := range strings.Fields(devsEnv) {
			if id, err := strconv.ParseInt(idStr, 10, 64); err == nil {
				Conf.DEVS = append(Conf.DEVS, id)
			}
		}
	}
	if Conf.OwnerId != 0 && !containsInt(Conf.DEVS, Conf.OwnerId) {
		Conf.DEVS = append(Conf.DEVS, Conf.OwnerId)
	}

	if err := Conf.validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(Conf.DownloadsDir, 0o750); err != nil {
		return fmt.Errorf("failed to create the downloads directory: %w", err)
	}
	return nil
}

// validate checks that every required configuration value is present.
func (c *BotConfig) validate() error {
	switch {
	case c.ApiId == 0:
		return fmt.Errorf("API_ID is required")
	case c.ApiHash == "":
		return fmt.Errorf("API_HASH is required")
	case c.Token == "":
		return fmt.Errorf("TOKEN is required")
	case c.MongoUri == "":
		return fmt.Errorf("MONGO_URI is required")
	case c.OwnerId == 0:
		return fmt.Errorf("OWNER_ID is required")
	}
	return nil
}
