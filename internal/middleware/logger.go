package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/storefront/internal/pkg/logger"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
)

// LoggerConfig controls what the request logger writes.
type LoggerConfig struct {
	Log             *logger.Logger
	EnableColors    bool
	LogRequestBody  bool
	LogResponseBody bool
	MaxBodySize     int64 // bytes captured per body
	SkipPaths       []string
}

// DefaultLoggerConfig logs request bodies and only error response bodies.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Log:             logger.Default().Named("http"),
		EnableColors:    true,
		LogRequestBody:  true,
		LogResponseBody: false,
		MaxBodySize:     2048,
		SkipPaths:       []string{"/health", "/metrics"},
	}
}

func Logger() gin.HandlerFunc {
	return LoggerWithConfig(DefaultLoggerConfig())
}

func LoggerWithConfig(config LoggerConfig) gin.HandlerFunc {
	if config.Log == nil {
		config.Log = logger.Default().Named("http")
	}
	skip := make(map[string]struct{}, len(config.SkipPaths))
	for _, p := range config.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if _, ok := skip[path]; ok {
			c.Next()
			return
		}

		method := c.Request.Method
		contentType := c.GetHeader("Content-Type")

		var requestBody string
		if config.LogRequestBody && c.Request.Body != nil && c.Request.ContentLength > 0 {
			if c.Request.ContentLength > config.MaxBodySize {
				requestBody = "[body too large]"
			} else {
				bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, config.MaxBodySize))
				if err == nil {
					c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
					requestBody = sanitizeBody(string(bodyBytes), contentType)
				}
			}
		}

		writer := &limitedResponseWriter{ResponseWriter: c.Writer, maxSize: config.MaxBodySize}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		line := fmt.Sprintf("%s %s %s %s %v %s ip=%s",
			colorize(config.EnableColors, methodColor(method), method),
			path,
			colorize(config.EnableColors, statusColor(status), fmt.Sprint(status)),
			formatSize(writer.size),
			time.Since(start).Round(time.Microsecond),
			subjectLabel(c),
			c.ClientIP(),
		)
		if q := c.Request.URL.RawQuery; q != "" {
			line += " query=" + truncateString(q, 100)
		}
		if requestBody != "" {
			line += " body=" + requestBody
		}
		if writer.body.Len() > 0 && (config.LogResponseBody || status >= 400) {
			line += " response=" + truncateString(compactJSON(writer.body.Bytes()), 300)
		}

		switch {
		case status >= 500:
			config.Log.Error("%s", line)
		case status >= 400:
			config.Log.Warn("%s", line)
		default:
			config.Log.Info("%s", line)
		}
	}
}

// limitedResponseWriter captures at most maxSize bytes of the response for logging.
type limitedResponseWriter struct {
	gin.ResponseWriter
	body    bytes.Buffer
	size    int64
	maxSize int64
}

func (w *limitedResponseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	if w.size+int64(len(b)) <= w.maxSize {
		w.body.Write(b[:n])
	}
	w.size += int64(n)
	return n, err
}

func subjectLabel(c *gin.Context) string {
	userID := c.GetString(userIDKey)
	if userID == "" {
		return "subject=-"
	}
	if c.GetBool(isAdminKey) {
		return "subject=" + userID + "(admin)"
	}
	return "subject=" + userID
}

func colorize(enabled bool, color, s string) string {
	if !enabled {
		return s
	}
	return color + s + ColorReset
}

func formatSize(bytes int64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%dB", bytes)
	} else if bytes < 1024*1024 {
		return fmt.Sprintf("%.1fKB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%.1fMB", float64(bytes)/(1024*1024))
}

func methodColor(method string) string {
	switch method {
	case "GET":
		return ColorGreen
	case "POST":
		return ColorBlue
	case "PUT":
		return ColorYellow
	case "DELETE":
		return ColorRed
	case "PATCH":
		return ColorPurple
	default:
		return ColorWhite
	}
}

func statusColor(status int) string {
	switch {
	case status >= 200 && status < 300:
		return ColorGreen
	case status >= 300 && status < 400:
		return ColorCyan
	case status >= 400 && status < 500:
		return ColorYellow
	case status >= 500:
		return ColorRed
	default:
		return ColorWhite
	}
}

func sanitizeBody(body, contentType string) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) > 1024 {
		return "[body too large]"
	}
	if strings.Contains(contentType, "application/json") {
		var data interface{}
		if json.Unmarshal([]byte(body), &data) == nil {
			if out, err := json.Marshal(hideSensitiveFields(data)); err == nil {
				return string(out)
			}
		}
	}
	return truncateString(body, 200)
}

// hideSensitiveFields masks credentials and access tokens anywhere in a JSON document.
func hideSensitiveFields(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, value := range v {
			if isSensitiveField(strings.ToLower(key)) {
				result[key] = "********"
			} else {
				result[key] = hideSensitiveFields(value)
			}
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = hideSensitiveFields(item)
		}
		return result
	default:
		return v
	}
}

func isSensitiveField(field string) bool {
	for _, s := range []string{"password", "token", "secret", "key", "auth", "credential"} {
		if strings.Contains(field, s) {
			return true
		}
	}
	return false
}

func compactJSON(body []byte) string {
	var data interface{}
	if json.Unmarshal(body, &data) == nil {
		if out, err := json.Marshal(hideSensitiveFields(data)); err == nil {
			return string(out)
		}
	}
	return string(body)
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
