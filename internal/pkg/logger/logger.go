package logger

import (
	"context"

	"go.uber.org/zap"

	"github.com/HotelkaWants/ASMR-UK/internal/pkg/constants"
)

var global = zap.Must(zap.NewProduction()).Sugar()

// Init replaces the global logger, dev=true включает человекочитаемый вывод.
func Init(dev bool) {
	if dev {
		global = zap.Must(zap.NewDevelopment()).Sugar()
		return
	}
	global = zap.Must(zap.NewProduction()).Sugar()
}

// Sync flushes buffered entries, для defer в main.
func Sync() {
	_ = global.Sync()
}

func fromCtx(ctx context.Context) *zap.SugaredLogger {
	l := global
	if ctx == nil {
		return l
	}
	if reqID, ok := ctx.Value(constants.CtxKeyRequestID).(string); ok && reqID != "" {
		l = l.With("request_id", reqID)
	}
	if userID, ok := ctx.Value(constants.CtxKeyUserID).(int64); ok {
		l = l.With("user_id", userID)
	}
	return l
}

func Debug(ctx context.Context, args ...any) { fromCtx(ctx).Debug(args...) }

func Debugf(ctx context.Context, format string, args ...any) { fromCtx(ctx).Debugf(format, args...) }

func Info(ctx context.Context, args ...any) { fromCtx(ctx).Info(args...) }

func Infof(ctx context.Context, format string, args ...any) { fromCtx(ctx).Infof(format, args...) }

func Error(ctx context.Context, args ...any) { fromCtx(ctx).Error(args...) }

func Errorf(ctx context.Context, format string, args ...any) { fromCtx(ctx).Errorf(format, args...) }

func Fatal(ctx context.Context, args ...any) { fromCtx(ctx).Fatal(args...) }
