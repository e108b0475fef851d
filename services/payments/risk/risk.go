package risk

import (
	"context"
	"time"

	"github.com/dukapay/dukapay/internal/pkg/constants"
	"github.com/dukapay/dukapay/internal/pkg/logger"
	"github.com/dukapay/dukapay/internal/pkg/models"
	"github.com/dukapay/dukapay/internal/pkg/requestcontext"
)

// Counter is the sliding-window attempt counter backing velocity scoring.
// Satisfied by the Redis client.
type Counter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Gate is the synchronous pre-charge risk assessment. It fails open: a
// disabled gate, a timeout, or a counter error all yield an allow with the
// degradation recorded in the snapshot reasons.
type Gate struct {
	cfg     models.RiskConfig
	counter Counter
	logger  *logger.ZapLogger
}

// NewGate creates a risk gate
func NewGate(cfg models.RiskConfig, counter Counter, zapLogger *logger.ZapLogger) *Gate {
	return &Gate{
		cfg:     cfg,
		counter: counter,
		logger:  zapLogger,
	}
}

// Assess scores the transaction and classifies it against the block and
// challenge thresholds. It always returns a usable assessment.
func (g *Gate) Assess(ctx context.Context, txn models.RiskTransaction, reqCtx *requestcontext.RequestContext) models.RiskAssessment {
	assessment := models.RiskAssessment{
		Enabled:   g.cfg.Enabled,
		Action:    models.RiskActionAllow,
		CheckedAt: time.Now(),
	}
	if reqCtx != nil {
		assessment.SessionID = reqCtx.SessionID
		assessment.RequestID = reqCtx.RequestID
	}

	if !g.cfg.Enabled {
		assessment.Reasons = append(assessment.Reasons, "fraud_detection_disabled")
		return assessment
	}

	timeout := time.Duration(g.cfg.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 500 * time.Millisecond
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	score := 0
	window := time.Duration(g.cfg.VelocityWindowSec) * time.Second

	userAttempts, err := g.counter.IncrWindow(ctx, constants.KeyRiskAttemptsUser+txn.UserID, window)
	if err != nil {
		g.logger.Warn("Risk velocity counter unavailable, failing open",
			logger.Err(err),
			logger.String("user_id", txn.UserID))
		assessment.Reasons = append(assessment.Reasons, "fraud_check_error")
	} else if userAttempts > int64(g.cfg.VelocityMaxAttempts) {
		score += 40
		assessment.Reasons = append(assessment.Reasons, "user attempt velocity exceeded")
	}

	if reqCtx != nil && reqCtx.IP != "" {
		ipAttempts, err := g.counter.IncrWindow(ctx, constants.KeyRiskAttemptsIP+reqCtx.IP, window)
		if err != nil {
			g.logger.Warn("Risk velocity counter unavailable, failing open",
				logger.Err(err),
				logger.String("ip", reqCtx.IP))
		} else if ipAttempts > int64(g.cfg.VelocityMaxAttempts) {
			score += 30
			assessment.Reasons = append(assessment.Reasons, "ip attempt velocity exceeded")
		}
	}

	if g.cfg.HighAmountMinor > 0 && txn.Amount >= g.cfg.HighAmountMinor {
		score += 25
		assessment.Reasons = append(assessment.Reasons, "high transaction amount")
	}

	if reqCtx == nil || reqCtx.DeviceID == "" {
		score += 10
		assessment.Reasons = append(assessment.Reasons, "missing device signal")
	}

	assessment.Score = score
	switch {
	case score >= g.cfg.BlockThreshold:
		assessment.Action = models.RiskActionBlock
	case score >= g.cfg.ChallengeThreshold:
		assessment.Action = models.RiskActionChallenge
	}

	g.logger.Debug("Risk assessment complete",
		logger.String("order_id", txn.OrderID),
		logger.Int("score", score),
		logger.String("action", string(assessment.Action)))

	return assessment
}
