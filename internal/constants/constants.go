package constants

import "time"

var InputLimits = struct {
	MaxTextLength int
}{
	MaxTextLength: 500,
}

var Interpretation = struct {
	ConfidenceFloor  float64
	KeywordScore     float64
	FullMatchScore   float64
	ChatScore        float64
	NoMatchThreshold float64
}{
	ConfidenceFloor:  0.75,
	KeywordScore:     0.6,
	FullMatchScore:   1.0,
	ChatScore:        0.4,
	NoMatchThreshold: 0.3,
}

var Dialog = struct {
	MaxConfirmAttempts int
	MaxQuestionRepeats int
}{
	MaxConfirmAttempts: 3,
	MaxQuestionRepeats: 3,
}

var CacheTTL = struct {
	CommandMap  time.Duration
	LastCommand time.Duration
}{
	CommandMap:  10 * time.Minute,
	LastCommand: 30 * time.Minute,
}

var RedisDefaults = struct {
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxRetries   int
	PoolSize     int
}{
	DialTimeout:  5 * time.Second,
	ReadTimeout:  3 * time.Second,
	WriteTimeout: 3 * time.Second,
	MaxRetries:   3,
	PoolSize:     10,
}

var HubConfig = struct {
	FailureThreshold int
	ResetTimeout     time.Duration
	PublishTimeout   time.Duration
}{
	FailureThreshold: 3,
	ResetTimeout:     30 * time.Second,
	PublishTimeout:   3 * time.Second,
}

var GatewayConfig = struct {
	WriteTimeout   time.Duration
	PongTimeout    time.Duration
	PingInterval   time.Duration
	MaxMessageSize int64
}{
	WriteTimeout:   10 * time.Second,
	PongTimeout:    60 * time.Second,
	PingInterval:   30 * time.Second,
	MaxMessageSize: 64 * 1024,
}
