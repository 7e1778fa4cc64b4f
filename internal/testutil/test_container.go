//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

var (
	sharedContainer     *MongoDBContainer
	sharedContainerErr  error
	sharedContainerOnce sync.Once
	sharedContainerMu   sync.RWMutex
)

// GetSharedMongoDB returns a MongoDB container shared by all tests in a
// package. The container is created on first use; call CleanupSharedMongoDB
// in TestMain after m.Run().
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedContainerOnce.Do(func() {
		sharedContainerMu.Lock()
		defer sharedContainerMu.Unlock()

		sharedContainer, sharedContainerErr = SetupMongoDB(ctx)
	})

	sharedContainerMu.RLock()
	defer sharedContainerMu.RUnlock()

	if sharedContainerErr != nil {
		return nil, sharedContainerErr
	}
	return sharedContainer, nil
}

// CleanupSharedMongoDB terminates the shared MongoDB container.
func CleanupSharedMongoDB(ctx context.Context) error {
	sharedContainerMu.Lock()
	defer sharedContainerMu.Unlock()

	if sharedContainer != nil {
		return sharedContainer.Cleanup(ctx)
	}
	return nil
}

// SetupTestMainWithMongoDB runs a package's tests against a shared MongoDB
// container. Usage:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedMongoDB(ctx); err != nil {
		panic(err)
	}

	code := m.Run()

	if err := CleanupSharedMongoDB(ctx); err != nil {
		// Container will still be reaped by Docker eventually
		_, _ = os.Stderr.WriteString("Warning: failed to cleanup shared MongoDB container: " + err.Error() + "\n")
	}

	return code
}

// GetSharedContainerURI returns the URI of the shared MongoDB container.
// Panics if the container is not initialized.
func GetSharedContainerURI() string {
	sharedContainerMu.RLock()
	defer sharedContainerMu.RUnlock()

	if sharedContainer == nil {
		panic("shared MongoDB container not initialized - call GetSharedMongoDB first")
	}
	return sharedContainer.URI
}

// SanitizeDBName turns a test name into a valid MongoDB database name:
// path separators become underscores, the name is truncated to 50 characters
// and a counter suffix keeps concurrent tests isolated.
func SanitizeDBName(testName string) string {
	sanitized := strings.NewReplacer("/", "_", "\\", "_").Replace(testName)

	if len(sanitized) > 50 {
		sanitized = sanitized[:50]
	}

	return sanitized + "_" + fmt.Sprintf("%d", time.Now().UnixNano()%1000000)
}
