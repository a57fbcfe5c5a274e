package models

import (
	"os"
)

const TEST_PASS_PHRASE = "test-pass-phrase"

// InitializeTestDb opens a fresh db in a temp directory, for use in tests
func InitializeTestDb() string {
	if db != nil {
		Close()
	}

	dir, err := os.MkdirTemp("", "aidline-test-")
	if err != nil {
		logg.Panic(err)
	}

	err = AutoMigrate(TEST_PASS_PHRASE, dir)
	if err != nil {
		logg.Panic(err)
	}

	return dir
}
