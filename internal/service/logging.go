package service

import (
	"context"

	"github.com/munchbox/shipment-service/internal/domain/model"
	"github.com/munchbox/shipment-service/internal/repository"
)

// LoggingService persists request and audit log entries.
type LoggingService interface {
	// CreateLog stores a single log entry.
	CreateLog(ctx context.Context, entry *model.LogEntry) error

	// CreateLogs stores multiple log entries in bulk.
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error

	// QueryLogs retrieves log entries matching the query options.
	QueryLogs(ctx context.Context, opts repository.LogQueryOptions) ([]model.LogEntry, error)

	// CountLogs returns the count of log entries matching the query options.
	CountLogs(ctx context.Context, opts repository.LogQueryOptions) (int64, error)
}

// LoggingServiceImpl implements LoggingService on top of the logs repository.
type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
}

// NewLoggingService creates a new logging service implementation.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{repo: repo}
}

func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	return s.repo.Create(ctx, s.toDocument(entry))
}

func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]*repository.LogEntryDocument, len(entries))
	for i, entry := range entries {
		docs[i] = s.toDocument(entry)
	}
	return s.repo.CreateMany(ctx, docs)
}

func (s *LoggingServiceImpl) QueryLogs(ctx context.Context, opts repository.LogQueryOptions) ([]model.LogEntry, error) {
	docs, err := s.repo.Query(ctx, opts)
	if err != nil {
		return nil, err
	}

	entries := make([]model.LogEntry, len(docs))
	for i, doc := range docs {
		entries[i] = *s.fromDocument(doc)
	}
	return entries, nil
}

func (s *LoggingServiceImpl) CountLogs(ctx context.Context, opts repository.LogQueryOptions) (int64, error) {
	return s.repo.Count(ctx, opts)
}

func (s *LoggingServiceImpl) toDocument(entry *model.LogEntry) *repository.LogEntryDocument {
	return &repository.LogEntryDocument{
		ID:         entry.ID,
		Timestamp:  entry.Timestamp,
		Level:      entry.Level,
		Message:    entry.Message,
		RequestID:  entry.RequestID,
		Method:     entry.Method,
		Path:       entry.Path,
		StatusCode: entry.StatusCode,
		Duration:   entry.Duration,
		IP:         entry.IP,
		UserAgent:  entry.UserAgent,
		Error:      entry.Error,
		Subject:    entry.Subject,
		ActionType: entry.ActionType,
		Fields:     entry.Fields,
	}
}

func (s *LoggingServiceImpl) fromDocument(doc *repository.LogEntryDocument) *model.LogEntry {
	return &model.LogEntry{
		ID:         doc.ID,
		Timestamp:  doc.Timestamp,
		Level:      doc.Level,
		Message:    doc.Message,
		RequestID:  doc.RequestID,
		Method:     doc.Method,
		Path:       doc.Path,
		StatusCode: doc.StatusCode,
		Duration:   doc.Duration,
		IP:         doc.IP,
		UserAgent:  doc.UserAgent,
		Error:      doc.Error,
		Subject:    doc.Subject,
		ActionType: doc.ActionType,
		Fields:     doc.Fields,
	}
}
