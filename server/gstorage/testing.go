package gstorage

import (
	"context"
	"os"
	"sync"
)

// StorageStub keeps objects in memory
type StorageStub struct {
	mu      sync.Mutex
	Objects map[string][]byte
}

func NewStorageStub() *StorageStub {
	return &StorageStub{Objects: map[string][]byte{}}
}

func (s *StorageStub) UploadFile(ctx context.Context, bucket, object, filePath string) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Objects[bucket+"/"+object] = content
	return nil
}

func (s *StorageStub) DownloadFile(ctx context.Context, bucket, object, destFileName string) error {
	s.mu.Lock()
	content, ok := s.Objects[bucket+"/"+object]
	s.mu.Unlock()

	if !ok {
		return ErrObjectNotExist
	}
	return os.WriteFile(destFileName, content, 0600)
}
