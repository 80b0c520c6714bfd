// API request logs
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fatih/color"
	"github.com/hypernetix/crtime/libs/logging"
	"go.uber.org/zap"
)

var LoggerConfigKey = "api"

// Initially set to main logger, can be overridden by config
var logger *logging.Logger = logging.MainLogger.WithField(logging.ServiceField, "api")

func logAPIRequest(req *http.Request, reqID string) {
	fields := []zap.Field{
		zap.String("request_id", reqID),
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.String("remote", req.RemoteAddr),
	}

	if logger.ConsoleLevel >= logging.DebugLevel {
		method := color.MagentaString(req.Method)
		uri := color.CyanString(req.URL.RequestURI())
		from := req.RemoteAddr
		msg := fmt.Sprintf("API request:  %s %s from %s", method, uri, from)
		logger.ConsoleLogger.Debug(msg)
	}
	if logger.FileLevel >= logging.InfoLevel {
		logger.FileLogger.With(fields...).Info("API request")
	}
}

// API response logs
func logAPIResponse(req *http.Request, w http.ResponseWriter, reqID string, duration float64) {
	recorder, ok := w.(*responseRecorder)
	if !ok {
		logger.Error("Failed to cast response writer to responseRecorder")
		return
	}

	var prettyJSON bytes.Buffer

	fields := []zap.Field{
		zap.String("request_id", reqID),
		zap.Int("status", recorder.Status()),
		zap.Float64("duration", duration),
	}
	if logger.FileLevel >= logging.DebugLevel {
		err := json.Indent(&prettyJSON, recorder.body.Bytes(), "", "  ")
		if err != nil {
			prettyJSON.Write(recorder.body.Bytes())
		}
		fields = append(fields, zap.String("body", prettyJSON.String()))
	}
	if logger.ConsoleLevel >= logging.InfoLevel {
		method := color.MagentaString(req.Method)
		uri := color.CyanString(req.URL.RequestURI())
		from := req.RemoteAddr
		statusCode := recorder.Status()
		statusStr := strconv.Itoa(statusCode)
		sizeStr := color.BlueString(fmt.Sprintf("%6dB", recorder.BytesWritten()))
		durationStr := color.GreenString(fmt.Sprintf("%.6fs", duration))
		if statusCode >= 200 && statusCode < 300 {
			statusStr = color.GreenString(statusStr)
		} else if statusCode >= 300 && statusCode < 400 {
			statusStr = color.YellowString(statusStr)
		} else {
			statusStr = color.RedString(statusStr)
		}
		msg := fmt.Sprintf("API response: %s %s from %s - %3s %s in %s", method, uri, from, statusStr, sizeStr, durationStr)
		if logger.ConsoleLevel >= logging.DebugLevel && prettyJSON.Len() > 0 {
			msg += " body: " + prettyJSON.String()
			logger.ConsoleLogger.Debug(msg)
		} else {
			logger.ConsoleLogger.Info(msg)
		}
	}
	if logger.FileLevel >= logging.InfoLevel {
		logger.FileLogger.With(fields...).Info("API response")
	}
}
