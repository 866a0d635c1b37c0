// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() *SecurityLogger {
	return l.security
}

// SecurityLogger emits audit-grade events on a dedicated logger so they can
// be routed to a separate sink by log level and the "event" field.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "sys_shutdown"))
}

func (s *SecurityLogger) AccessDenied(subject, tenantID, reason string) {
	s.l.Warn(
		"access denied",
		zap.String("event", "access_denied"),
		zap.String("subject", subject),
		zap.String("tenant_id", tenantID),
		zap.String("reason", reason),
	)
}

// IsolationFault records a cross-tenant binding mismatch. This is an
// internal-consistency bug, not a client error, hence error level.
func (s *SecurityLogger) IsolationFault(requestTenantID, boundTenantID string) {
	s.l.Error(
		"tenant isolation fault",
		zap.String("event", "isolation_fault"),
		zap.String("request_tenant_id", requestTenantID),
		zap.String("bound_tenant_id", boundTenantID),
	)
}

func NewLogger(level string) *Logger {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	securityCfg := zap.NewProductionConfig()
	securityCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	sl, err := securityCfg.Build()
	if err != nil {
		panic(err)
	}

	return &Logger{
		SugaredLogger: l.Sugar(),
		security:      &SecurityLogger{l: sl.Named("security")},
	}
}
