// Package middleware provides audit logging utilities.
package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/munchbox/shipment-service/internal/domain/model"
	"github.com/munchbox/shipment-service/internal/service"
)

// AuditLog logs an action for audit purposes. Used for catalog mutations and
// other state-changing operations.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := buildAuditEntry(c, actionType, message, fields)
	entry.Level = "info"

	// Store asynchronously to avoid blocking
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}

// AuditLogError logs a failed action for audit purposes.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := buildAuditEntry(c, actionType, message, fields)
	entry.Level = "error"
	if err != nil {
		entry.Error = err.Error()
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}

func buildAuditEntry(c *gin.Context, actionType string, message string, fields map[string]interface{}) *model.LogEntry {
	return &model.LogEntry{
		Timestamp:  time.Now(),
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Subject:    GetSubject(c),
		ActionType: actionType,
		Fields:     fields,
	}
}
