package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/Daskott/aidline/models"
	"github.com/Daskott/aidline/server/gstorage"
	"github.com/Daskott/aidline/server/work"
	"github.com/Daskott/aidline/utils"
)

const BACKUP_SQLITE_DB_JOB = "backupSqliteDb"

// backupSqliteDb uploads the encrypted db file to google storage
func backupSqliteDb(map[string]interface{}) error {
	if storage == nil {
		return fmt.Errorf("backupSqliteDb: storage is not configured")
	}

	err := models.Checkpoint()
	if err != nil {
		return fmt.Errorf("backupSqliteDb: %v", err)
	}

	dbFilePath, err := models.DbFilePath(dataDir)
	if err != nil {
		return err
	}

	return storage.UploadFile(context.Background(), storageConf.Bucket, gstorage.ObjectName(storageConf.Prefix, models.DB_NAME), dbFilePath)
}

// restoreSqliteDb pulls the db backup from google storage, if there's no
// local db yet
func restoreSqliteDb(ctx context.Context) error {
	dbFilePath, err := models.DbFilePath(dataDir)
	if err != nil {
		return err
	}

	if utils.FileExist(dbFilePath) {
		return nil
	}

	err = storage.DownloadFile(ctx, storageConf.Bucket, gstorage.ObjectName(storageConf.Prefix, models.DB_NAME), dbFilePath)
	if errors.Is(err, gstorage.ErrObjectNotExist) {
		logg.Info("No db backup found, starting with a new db")
		return nil
	}

	return err
}

func registerJobHandlers(wpa *work.WorkerPoolAdapter) error {
	if !storageConf.EnableSqliteBackupAndSync {
		return nil
	}

	return wpa.Register(BACKUP_SQLITE_DB_JOB, backupSqliteDb)
}

func enqueueJobs(wpa *work.WorkerPoolAdapter) error {
	if !storageConf.EnableSqliteBackupAndSync {
		return nil
	}

	return wpa.PeriodicallyPerform(storageConf.SqliteBackupSchedule, work.JobParams{
		Name:    BACKUP_SQLITE_DB_JOB,
		Handler: BACKUP_SQLITE_DB_JOB,
		Args:    map[string]interface{}{},
	})
}
